package service

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"pdf-word-converter/internal/domain"
)

func readDocxPart(t *testing.T, archive []byte, name string) string {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("part %s not found in archive", name)
	return ""
}

func TestDocxEmitter_PackageParts(t *testing.T) {
	out, err := NewDocxEmitter(newNopLogger()).Emit(domain.MarkupDocument{"hola"}, testMeta(), 1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.MimeType != docxMimeType {
		t.Fatalf("expected mime %s, got %s", docxMimeType, out.MimeType)
	}

	for _, part := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
	} {
		readDocxPart(t, out.Bytes, part)
	}
}

func TestDocxEmitter_StyledBlocks(t *testing.T) {
	markup := domain.MarkupDocument{
		"# Titulo Principal",
		"## Seccion",
		"### Subseccion",
		"**NOTA: revisar antes de firmar**",
		"*Fecha: 01/02/2024*",
		"campo | otro | más",
		"• elemento de lista",
		"párrafo normal",
	}

	out, err := NewDocxEmitter(newNopLogger()).Emit(markup, testMeta(), 2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := readDocxPart(t, out.Bytes, "word/document.xml")
	for _, want := range []string{
		`<w:pStyle w:val="Heading1"/>`,
		`<w:pStyle w:val="Heading2"/>`,
		`<w:pStyle w:val="Heading3"/>`,
		`<w:b/></w:rPr><w:t xml:space="preserve">NOTA: revisar antes de firmar</w:t>`,
		`<w:i/></w:rPr><w:t xml:space="preserve">Fecha: 01/02/2024</w:t>`,
		`Courier New`,
		`<w:ind w:left="360"/>`,
		`>párrafo normal</w:t>`,
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected document.xml to contain %q, got:\n%s", want, doc)
		}
	}
}

func TestDocxEmitter_InfoBlockAndFlag(t *testing.T) {
	emitter := NewDocxEmitter(newNopLogger())

	ok, err := emitter.Emit(domain.MarkupDocument{"x"}, testMeta(), 3, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := readDocxPart(t, ok.Bytes, "word/document.xml")
	if !strings.Contains(doc, `<w:color w:val="2E7D32"/>`) {
		t.Fatalf("expected green extraction flag, got:\n%s", doc)
	}
	if !strings.Contains(doc, "Páginas: 3") {
		t.Fatalf("expected page count in info block, got:\n%s", doc)
	}
	if !strings.Contains(doc, "contrato.pdf") {
		t.Fatalf("expected original filename in info block")
	}

	failed, err := emitter.Emit(domain.MarkupDocument{"x"}, testMeta(), 3, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc = readDocxPart(t, failed.Bytes, "word/document.xml")
	if !strings.Contains(doc, `<w:color w:val="C62828"/>`) {
		t.Fatalf("expected red extraction flag, got:\n%s", doc)
	}
}

// Malformed markup must degrade to plain paragraphs, never fail.
func TestDocxEmitter_FailOpenOnUnknownMarkup(t *testing.T) {
	markup := domain.MarkupDocument{"#sin espacio", "***", "texto"}

	out, err := NewDocxEmitter(newNopLogger()).Emit(markup, testMeta(), 1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := readDocxPart(t, out.Bytes, "word/document.xml")
	if !strings.Contains(doc, ">#sin espacio</w:t>") {
		t.Fatalf("expected unknown prefix to render as plain text, got:\n%s", doc)
	}
}

// Spacing kicks in by character count, not encoded byte count.
func TestDocxEmitter_SpacingThresholdCountsRunes(t *testing.T) {
	emitter := NewDocxEmitter(newNopLogger())

	short := strings.Repeat("á", 120) // 240 bytes, 120 runes
	out, err := emitter.Emit(domain.MarkupDocument{short}, testMeta(), 1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := readDocxPart(t, out.Bytes, "word/document.xml")
	if strings.Contains(doc, `<w:spacing w:before="120"`) {
		t.Fatalf("expected no paragraph spacing under the threshold, got:\n%s", doc)
	}

	long := strings.Repeat("á", 160)
	out, err = emitter.Emit(domain.MarkupDocument{long}, testMeta(), 1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc = readDocxPart(t, out.Bytes, "word/document.xml")
	if !strings.Contains(doc, `<w:spacing w:before="120"`) {
		t.Fatalf("expected paragraph spacing above the threshold, got:\n%s", doc)
	}
}

func TestDocxEmitter_EscapesXML(t *testing.T) {
	out, err := NewDocxEmitter(newNopLogger()).Emit(domain.MarkupDocument{"a < b & c > d"}, testMeta(), 1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := readDocxPart(t, out.Bytes, "word/document.xml")
	if !strings.Contains(doc, "a &lt; b &amp; c &gt; d") {
		t.Fatalf("expected escaped text, got:\n%s", doc)
	}
}
