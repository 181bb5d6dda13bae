package service

import (
	"strings"
	"unicode/utf8"

	"pdf-word-converter/internal/domain"
)

// minTextLength is the extraction-success threshold: a document whose
// normalized text trims to this many characters or fewer is treated as
// having no real text layer (incidental metadata noise only).
const minTextLength = 20

// NormalizeExtractedText collapses line-ending variants (CR, CRLF, form
// feed) to LF and tabs to single spaces. Every extractor runs its raw
// output through this before the success threshold is applied.
func NormalizeExtractedText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\f", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	return text
}

// TextRecovered reports whether normalized text clears the success
// threshold. Exactly minTextLength characters is still a failure.
func TextRecovered(normalized string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(normalized)) > minTextLength
}

// SelectExtractor resolves the extractor strategy once, at wiring time.
// mode "mupdf" and "purego" pin an implementation; "auto" (or anything
// else) probes the MuPDF binding and falls back to the pure-Go reader.
func SelectExtractor(mode string, logger domain.Logger) domain.TextExtractor {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "mupdf":
		return NewFitzExtractor(logger)
	case "purego":
		return NewPureExtractor(logger)
	}

	if ProbeFitz() {
		logger.Info("extractor probe: MuPDF binding available")
		return NewFitzExtractor(logger)
	}
	logger.Warn("extractor probe: MuPDF binding unavailable, using pure-Go reader")
	return NewPureExtractor(logger)
}

// probePDF is a minimal single-page document used only to verify that the
// MuPDF binding can open anything at all in this process.
const probePDF = "%PDF-1.4\n" +
	"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n" +
	"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n" +
	"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n" +
	"xref\n0 4\n" +
	"0000000000 65535 f \n" +
	"0000000009 00000 n \n" +
	"0000000058 00000 n \n" +
	"0000000116 00000 n \n" +
	"trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n187\n%%EOF\n"
