package service

import (
	"strings"
	"testing"
)

func TestNormalizeExtractedText(t *testing.T) {
	in := "uno\r\ndos\rtres\ftab\taquí"
	want := "uno\ndos\ntres\ntab aquí"
	if got := NormalizeExtractedText(in); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

// The success threshold is strict: exactly 20 characters is still a
// failure, 21 is a success.
func TestTextRecovered_Boundary(t *testing.T) {
	exactly20 := strings.Repeat("a", 20)
	if TextRecovered(exactly20) {
		t.Fatalf("expected 20 characters to fail the threshold")
	}
	if TextRecovered("  " + exactly20 + "  ") {
		t.Fatalf("expected padded 20 characters to fail the threshold")
	}
	if !TextRecovered(strings.Repeat("a", 21)) {
		t.Fatalf("expected 21 characters to pass the threshold")
	}
}

func TestTextRecovered_CountsRunes(t *testing.T) {
	// 21 multibyte runes must pass even though the byte length differs.
	if !TextRecovered(strings.Repeat("ñ", 21)) {
		t.Fatalf("expected 21 runes to pass the threshold")
	}
	if TextRecovered(strings.Repeat("ñ", 20)) {
		t.Fatalf("expected 20 runes to fail the threshold")
	}
}

func TestSelectExtractor_PinnedModes(t *testing.T) {
	logger := newNopLogger()

	if got := SelectExtractor("mupdf", logger).Name(); got != "mupdf" {
		t.Fatalf("expected pinned mupdf extractor, got %s", got)
	}
	if got := SelectExtractor("purego", logger).Name(); got != "purego" {
		t.Fatalf("expected pinned purego extractor, got %s", got)
	}
	if got := SelectExtractor(" PureGo ", logger).Name(); got != "purego" {
		t.Fatalf("expected mode to be case-insensitive, got %s", got)
	}
}
