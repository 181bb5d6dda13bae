package service

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"pdf-word-converter/internal/domain"

	"github.com/google/uuid"
)

// toolID identifies this converter in the emitted header blocks.
const toolID = "ToolBox PDF a Word"

// ConversionService runs the full pipeline:
// extract → classify → reformat → emit both formats → persist.
// Each call is synchronous and self-contained; concurrent requests share
// nothing but the storage collaborator.
type ConversionService struct {
	extractor  domain.TextExtractor
	storage    domain.FileStorage
	classifier *LineClassifier
	rtf        *RTFEmitter
	docx       *DocxEmitter
	logger     domain.Logger
	now        func() time.Time
}

// NewConversionService wires the pipeline. The extractor is resolved by
// the caller (capability probe or test stub); the service never probes.
func NewConversionService(extractor domain.TextExtractor, storage domain.FileStorage, logger domain.Logger) *ConversionService {
	return &ConversionService{
		extractor:  extractor,
		storage:    storage,
		classifier: NewLineClassifier(DefaultClassifierConfig()),
		rtf:        NewRTFEmitter(logger),
		docx:       NewDocxEmitter(logger),
		logger:     logger,
		now:        time.Now,
	}
}

// Convert runs one document through the pipeline. A container that cannot
// be parsed at all fails with domain.ErrCorruptInput; a document with no
// usable text degrades into the fallback narrative instead, so the caller
// always gets two downloadable outputs.
func (s *ConversionService) Convert(ctx context.Context, doc domain.SourceDocument) (*domain.ConversionResult, error) {
	extraction, err := s.extractor.Extract(doc.Bytes)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Extraction finished",
		"file", doc.Filename,
		"pages", extraction.PageCount,
		"succeeded", extraction.Succeeded,
		"method", extraction.Method,
	)

	meta := domain.EmissionMeta{
		Title:        titleFromFilename(doc.Filename),
		OriginalName: doc.Filename,
		ConvertedAt:  s.now(),
		Tool:         toolID,
	}

	var flatBody string
	var markup domain.MarkupDocument
	if extraction.Succeeded {
		classified := s.classifier.Classify(extraction.Text)
		markup = Reformat(classified)
		flatBody = extraction.Text
	} else {
		s.logger.Info("No usable text layer, emitting fallback narrative",
			"file", doc.Filename, "producer", extraction.Producer)
		flatBody, markup = FallbackNarrative(doc.Filename, extraction.PageCount, extraction.Producer)
	}

	rtfOut, err := s.rtf.Emit(flatBody, meta)
	if err != nil {
		return nil, err
	}
	docxOut, err := s.docx.Emit(markup, meta, extraction.PageCount, extraction.Succeeded)
	if err != nil {
		return nil, err
	}

	stem := outputStem(doc.Filename)
	docxURL, err := s.storage.Put(docxOut.Bytes, stem+".docx")
	if err != nil {
		return nil, err
	}
	rtfURL, err := s.storage.Put(rtfOut.Bytes, stem+".rtf")
	if err != nil {
		return nil, err
	}

	return &domain.ConversionResult{
		Success:           true,
		OriginalName:      doc.Filename,
		ConvertedURL:      docxURL,
		AlternativeURL:    rtfURL,
		ConvertedFormat:   "docx",
		AlternativeFormat: "rtf",
		OriginalSize:      len(doc.Bytes),
		ConvertedSize:     docxOut.SizeBytes(),
		AlternativeSize:   rtfOut.SizeBytes(),
		PageCount:         extraction.PageCount,
		TextExtracted:     extraction.Succeeded,
		ExtractionMethod:  extraction.Method,
	}, nil
}

// titleFromFilename derives a display title from the uploaded name.
func titleFromFilename(name string) string {
	base := strings.TrimSpace(strings.TrimSuffix(name, filepath.Ext(name)))
	if base == "" {
		return "Documento convertido"
	}
	return base
}

var unsafeNamePattern = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// outputStem builds a unique, filesystem-safe base name for both outputs
// of one request. Uniqueness is what makes concurrent requests safe to
// share the storage directory.
func outputStem(originalName string) string {
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	base = unsafeNamePattern.ReplaceAllString(base, "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "documento"
	}
	if len(base) > 48 {
		base = base[:48]
	}
	return uuid.New().String() + "_" + base
}
