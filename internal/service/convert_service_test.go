package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pdf-word-converter/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
}

func newTestService(extractor domain.TextExtractor, storage domain.FileStorage) *ConversionService {
	s := NewConversionService(extractor, storage, newNopLogger())
	s.now = fixedNow
	return s
}

func TestConvert_SuccessfulExtraction(t *testing.T) {
	storage := newMemoryStorage()
	extractor := &stubExtractor{result: domain.ExtractionResult{
		Text:      "CAPITULO UNO\n\neste es el contenido principal del documento de prueba.",
		PageCount: 2,
		Succeeded: true,
		Method:    "stub",
	}}

	result, err := newTestService(extractor, storage).Convert(context.Background(), domain.SourceDocument{
		Bytes:    []byte("%PDF-1.4 fake"),
		Filename: "contrato.pdf",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success || !result.TextExtracted {
		t.Fatalf("expected successful extraction flags, got %+v", result)
	}
	if result.PageCount != 2 {
		t.Fatalf("expected page count 2, got %d", result.PageCount)
	}
	if result.ExtractionMethod != "stub" {
		t.Fatalf("expected extraction method stub, got %s", result.ExtractionMethod)
	}
	if result.ConvertedFormat != "docx" || result.AlternativeFormat != "rtf" {
		t.Fatalf("unexpected formats: %+v", result)
	}
	if result.ConvertedURL == "" || result.AlternativeURL == "" {
		t.Fatalf("expected both download URLs, got %+v", result)
	}
	if result.ConvertedSize <= 0 || result.AlternativeSize <= 0 {
		t.Fatalf("expected non-empty outputs, got %+v", result)
	}
	if result.OriginalSize != len("%PDF-1.4 fake") {
		t.Fatalf("expected original size to match upload, got %d", result.OriginalSize)
	}
	if len(storage.files) != 2 {
		t.Fatalf("expected 2 stored files, got %d", len(storage.files))
	}
}

func TestConvert_FallbackNarrativeOnNoText(t *testing.T) {
	storage := newMemoryStorage()
	extractor := &stubExtractor{result: domain.ExtractionResult{
		Text:      "",
		PageCount: 3,
		Succeeded: false,
		Method:    "stub",
	}}

	result, err := newTestService(extractor, storage).Convert(context.Background(), domain.SourceDocument{
		Bytes:    []byte("fake"),
		Filename: "escaneo.pdf",
	})
	if err != nil {
		t.Fatalf("expected graceful degradation, got error: %v", err)
	}

	if result.TextExtracted {
		t.Fatalf("expected textExtracted=false, got %+v", result)
	}
	if result.PageCount != 3 {
		t.Fatalf("expected page count 3 despite failed extraction, got %d", result.PageCount)
	}
	if result.ConvertedURL == "" || result.AlternativeURL == "" {
		t.Fatalf("expected both URLs on fallback, got %+v", result)
	}

	rtf := string(storage.get(".rtf"))
	if !strings.Contains(rtf, "POSIBLES CAUSAS") || !strings.Contains(rtf, "RECOMENDACIONES") {
		t.Fatalf("expected fallback narrative markers in rich-text output:\n%s", rtf)
	}
	if !strings.Contains(rtf, "escaneo.pdf") {
		t.Fatalf("expected filename in rich-text header:\n%s", rtf)
	}
	if !strings.Contains(rtf, "15/03/2024 10:30") {
		t.Fatalf("expected timestamp in rich-text header:\n%s", rtf)
	}
}

func TestConvert_FallbackVariants(t *testing.T) {
	flatScan, _ := FallbackNarrative("doc.pdf", 1, "")
	if !strings.Contains(flatScan, "OCR") {
		t.Fatalf("expected OCR guidance for the scan hypothesis:\n%s", flatScan)
	}

	flatWord, _ := FallbackNarrative("doc.pdf", 1, "Microsoft Word 2019")
	if !strings.Contains(flatWord, "procesador de textos") {
		t.Fatalf("expected re-export guidance for word-processor sources:\n%s", flatWord)
	}
	if strings.Contains(flatWord, "OCR (") {
		t.Fatalf("expected no OCR remedy for word-processor sources:\n%s", flatWord)
	}
}

func TestConvert_CorruptInputIsTerminal(t *testing.T) {
	storage := newMemoryStorage()
	extractor := &stubExtractor{err: domain.ErrCorruptInput}

	_, err := newTestService(extractor, storage).Convert(context.Background(), domain.SourceDocument{
		Bytes:    []byte("not a pdf"),
		Filename: "roto.pdf",
	})
	if !errors.Is(err, domain.ErrCorruptInput) {
		t.Fatalf("expected ErrCorruptInput, got %v", err)
	}
	if len(storage.files) != 0 {
		t.Fatalf("expected no stored files on terminal failure, got %d", len(storage.files))
	}
}

// Running the pipeline twice over identical input yields identical
// rendered content (timestamps pinned by the injected clock).
func TestConvert_Idempotent(t *testing.T) {
	extractor := &stubExtractor{result: domain.ExtractionResult{
		Text:      "TITULO\n\ncontenido del documento con suficiente texto.",
		PageCount: 1,
		Succeeded: true,
		Method:    "stub",
	}}

	first := newMemoryStorage()
	second := newMemoryStorage()
	doc := domain.SourceDocument{Bytes: []byte("same"), Filename: "mismo.pdf"}

	if _, err := newTestService(extractor, first).Convert(context.Background(), doc); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if _, err := newTestService(extractor, second).Convert(context.Background(), doc); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if string(first.get(".rtf")) != string(second.get(".rtf")) {
		t.Fatalf("rich-text outputs differ between identical runs")
	}
	if string(first.get(".docx")) != string(second.get(".docx")) {
		t.Fatalf("structured outputs differ between identical runs")
	}
}

func TestOutputStem(t *testing.T) {
	stem := outputStem("../../etc/Mi Contrato (v2).pdf")
	if strings.Contains(stem, "/") || strings.Contains(stem, " ") || strings.Contains(stem, "(") {
		t.Fatalf("expected sanitized stem, got %q", stem)
	}
	if !strings.HasSuffix(stem, "_Mi_Contrato_v2") {
		t.Fatalf("expected original name to survive sanitized, got %q", stem)
	}

	other := outputStem("Mi Contrato (v2).pdf")
	if stem == other {
		t.Fatalf("expected unique stems per call")
	}
}
