package service

import (
	"fmt"
	"strings"

	"pdf-word-converter/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// FitzExtractor recovers text and page structure through the MuPDF binding.
type FitzExtractor struct {
	logger domain.Logger
}

// NewFitzExtractor creates the MuPDF-backed extractor.
func NewFitzExtractor(logger domain.Logger) *FitzExtractor {
	return &FitzExtractor{logger: logger}
}

// Name identifies the extraction method in the response payload.
func (e *FitzExtractor) Name() string {
	return "mupdf"
}

// ProbeFitz reports whether the MuPDF binding can open a document in this
// process. Called once at wiring time; never during a request.
func ProbeFitz() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	doc, err := fitz.NewFromMemory([]byte(probePDF))
	if err != nil {
		return false
	}
	doc.Close()
	return true
}

// Extract parses the container and walks every page for text. The page
// count comes from the page table, so it survives a failed text walk.
func (e *FitzExtractor) Extract(data []byte) (domain.ExtractionResult, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("%w: %v", domain.ErrCorruptInput, err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()

	metadata := doc.Metadata()
	producer := metadata["producer"]
	if producer == "" {
		producer = metadata["creator"]
	}

	var sb strings.Builder
	for pageNum := 0; pageNum < pageCount; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", pageCount, "error", err)
			continue
		}
		sb.WriteString(text)
		sb.WriteByte('\f')
	}

	normalized := NormalizeExtractedText(sb.String())

	return domain.ExtractionResult{
		Text:      normalized,
		PageCount: pageCount,
		Succeeded: TextRecovered(normalized),
		Method:    e.Name(),
		Producer:  producer,
	}, nil
}
