package service

import (
	"bytes"
	"fmt"

	"pdf-word-converter/internal/domain"

	"github.com/ledongthuc/pdf"
)

// PureExtractor recovers text and page structure with a pure-Go PDF
// reader. Used when the MuPDF binding is unavailable.
type PureExtractor struct {
	logger domain.Logger
}

// NewPureExtractor creates the pure-Go extractor.
func NewPureExtractor(logger domain.Logger) *PureExtractor {
	return &PureExtractor{logger: logger}
}

// Name identifies the extraction method in the response payload.
func (e *PureExtractor) Name() string {
	return "purego"
}

// Extract parses the container and recovers the full text stream. The
// underlying reader panics on some malformed files, so the parse is fenced
// with a recover that maps to the corrupt-input error.
func (e *PureExtractor) Extract(data []byte) (result domain.ExtractionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.ExtractionResult{}
			err = fmt.Errorf("%w: %v", domain.ErrCorruptInput, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("%w: %v", domain.ErrCorruptInput, err)
	}

	pageCount := reader.NumPage()
	producer := documentProducer(reader)

	var buf bytes.Buffer
	plain, err := reader.GetPlainText()
	if err != nil {
		// No usable text stream is a modeled outcome, not an error.
		e.logger.Warn("Failed to recover text stream", "error", err)
	} else if _, err := buf.ReadFrom(plain); err != nil {
		e.logger.Warn("Failed to read text stream", "error", err)
		buf.Reset()
	}

	normalized := NormalizeExtractedText(buf.String())

	return domain.ExtractionResult{
		Text:      normalized,
		PageCount: pageCount,
		Succeeded: TextRecovered(normalized),
		Method:    e.Name(),
		Producer:  producer,
	}, nil
}

// documentProducer reads the Producer (or Creator) entry from the
// document information dictionary, when present.
func documentProducer(reader *pdf.Reader) string {
	info := reader.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return ""
	}
	for _, key := range []string{"Producer", "Creator"} {
		if v := info.Key(key); v.Kind() == pdf.String && v.RawString() != "" {
			return v.RawString()
		}
	}
	return ""
}
