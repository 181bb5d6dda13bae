package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"unicode/utf8"

	"pdf-word-converter/internal/domain"
)

const docxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DocxEmitter renders the structured word-processor output. It re-parses
// the markup document's own prefixes instead of carrying role tags
// through; any line with no known prefix degrades to a plain paragraph.
type DocxEmitter struct {
	logger domain.Logger
}

// NewDocxEmitter creates the structured emitter.
func NewDocxEmitter(logger domain.Logger) *DocxEmitter {
	return &DocxEmitter{logger: logger}
}

// Emit assembles the .docx package: an information block (filename, page
// count, timestamp, extraction flag) followed by the styled body.
func (e *DocxEmitter) Emit(markup domain.MarkupDocument, meta domain.EmissionMeta, pageCount int, extracted bool) (domain.EmissionOutput, error) {
	var body strings.Builder

	// Information block.
	body.WriteString(headingParagraph(1, meta.Title))
	body.WriteString(italicParagraph("Archivo original: " + meta.OriginalName))
	body.WriteString(italicParagraph(fmt.Sprintf("Páginas: %d", pageCount)))
	body.WriteString(italicParagraph("Convertido: " + meta.ConvertedAt.Format("02/01/2006 15:04")))
	if extracted {
		body.WriteString(coloredParagraph("Texto extraído correctamente", "2E7D32"))
	} else {
		body.WriteString(coloredParagraph("No se encontró capa de texto", "C62828"))
	}
	body.WriteString(emptyParagraph())

	for _, line := range markup {
		body.WriteString(e.renderLine(line))
	}

	document := documentXMLHeader + body.String() + documentXMLFooter

	archive, err := packDocx(document)
	if err != nil {
		return domain.EmissionOutput{}, err
	}
	if len(archive) == 0 {
		return domain.EmissionOutput{}, domain.ErrEmptyEmission
	}

	return domain.EmissionOutput{Bytes: archive, MimeType: docxMimeType}, nil
}

// renderLine maps one markup line back onto a styled block. The prefix
// checks mirror the reformatter's rendering table; precedence matters for
// lines that could read as several things.
func (e *DocxEmitter) renderLine(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return emptyParagraph()
	case strings.HasPrefix(trimmed, "### "):
		return headingParagraph(3, strings.TrimPrefix(trimmed, "### "))
	case strings.HasPrefix(trimmed, "## "):
		return headingParagraph(2, strings.TrimPrefix(trimmed, "## "))
	case strings.HasPrefix(trimmed, "# "):
		return headingParagraph(1, strings.TrimPrefix(trimmed, "# "))
	case strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**") && len(trimmed) > 4:
		return boldParagraph(strings.TrimSuffix(strings.TrimPrefix(trimmed, "**"), "**"))
	case strings.HasPrefix(trimmed, "*") && strings.HasSuffix(trimmed, "*") && len(trimmed) > 2:
		return italicParagraph(strings.TrimSuffix(strings.TrimPrefix(trimmed, "*"), "*"))
	case strings.Contains(trimmed, " | "):
		return monospaceParagraph(trimmed)
	case bulletPattern.MatchString(trimmed):
		return indentedParagraph(trimmed)
	case utf8.RuneCountInString(trimmed) > longParagraphChars:
		return spacedParagraph(trimmed)
	default:
		return plainParagraph(trimmed)
	}
}

func headingParagraph(level int, text string) string {
	return fmt.Sprintf(`<w:p><w:pPr><w:pStyle w:val="Heading%d"/></w:pPr><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		level, escapeXML(text))
}

func boldParagraph(text string) string {
	return `<w:p><w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">` + escapeXML(text) + `</w:t></w:r></w:p>`
}

func italicParagraph(text string) string {
	return `<w:p><w:r><w:rPr><w:i/></w:rPr><w:t xml:space="preserve">` + escapeXML(text) + `</w:t></w:r></w:p>`
}

func coloredParagraph(text, color string) string {
	return `<w:p><w:r><w:rPr><w:b/><w:color w:val="` + color + `"/></w:rPr><w:t xml:space="preserve">` + escapeXML(text) + `</w:t></w:r></w:p>`
}

func monospaceParagraph(text string) string {
	return `<w:p><w:r><w:rPr><w:rFonts w:ascii="Courier New" w:hAnsi="Courier New"/><w:sz w:val="18"/></w:rPr><w:t xml:space="preserve">` + escapeXML(text) + `</w:t></w:r></w:p>`
}

func indentedParagraph(text string) string {
	return `<w:p><w:pPr><w:ind w:left="360"/></w:pPr><w:r><w:t xml:space="preserve">` + escapeXML(text) + `</w:t></w:r></w:p>`
}

func spacedParagraph(text string) string {
	return `<w:p><w:pPr><w:spacing w:before="120" w:after="240"/></w:pPr><w:r><w:t xml:space="preserve">` + escapeXML(text) + `</w:t></w:r></w:p>`
}

func plainParagraph(text string) string {
	return `<w:p><w:r><w:t xml:space="preserve">` + escapeXML(text) + `</w:t></w:r></w:p>`
}

func emptyParagraph() string {
	return `<w:p/>`
}

func escapeXML(text string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(text))
	return buf.String()
}

// packDocx assembles the OOXML package. Word caches part names, so the
// entry order (content types first) is kept stable.
func packDocx(documentXML string) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", documentXML},
		{"word/styles.xml", stylesXML},
	}

	for _, part := range parts {
		f, err := w.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close docx archive: %w", err)
	}
	return buf.Bytes(), nil
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const documentXMLHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const documentXMLFooter = `<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr></w:body></w:document>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:rPr><w:sz w:val="22"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="240" w:after="120"/></w:pPr><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="200" w:after="100"/></w:pPr><w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="160" w:after="80"/></w:pPr><w:rPr><w:b/><w:sz w:val="26"/></w:rPr></w:style>
</w:styles>`
