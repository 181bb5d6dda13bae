package service

import (
	"fmt"
	"regexp"
	"strings"

	"pdf-word-converter/internal/domain"
)

const rtfMimeType = "application/rtf"

// allCapsLabelPattern is the single styling rule of the flat output: a
// line opening with an ALL-CAPS label and a colon renders bold.
var allCapsLabelPattern = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑÜ][A-ZÁÉÍÓÚÑÜ \-]*:`)

var paragraphGapPattern = regexp.MustCompile(`\n{2,}`)

// RTFEmitter renders the universal rich-text output. It works on the
// pre-classification plain text on purpose: this output must stay visually
// flat, with no markup syntax leaking through to the reader.
type RTFEmitter struct {
	logger domain.Logger
}

// NewRTFEmitter creates the rich-text emitter.
func NewRTFEmitter(logger domain.Logger) *RTFEmitter {
	return &RTFEmitter{logger: logger}
}

// Emit assembles the RTF document: fixed header block, then the body with
// double line breaks as paragraph breaks and single ones as line breaks.
func (e *RTFEmitter) Emit(rawText string, meta domain.EmissionMeta) (domain.EmissionOutput, error) {
	var sb strings.Builder

	sb.WriteString(`{\rtf1\ansi\ansicpg1252\deff0{\fonttbl{\f0\froman Times New Roman;}}`)
	sb.WriteString("\n\\f0\\fs24\n")

	sb.WriteString(`{\b\fs32 ` + escapeRTF(meta.Title) + `}\par` + "\n")
	sb.WriteString(`{\i Archivo original: ` + escapeRTF(meta.OriginalName) + `}\par` + "\n")
	sb.WriteString(`{\i Convertido: ` + escapeRTF(meta.ConvertedAt.Format("02/01/2006 15:04")) + `}\par` + "\n")
	sb.WriteString(`{\i Herramienta: ` + escapeRTF(meta.Tool) + `}\par\par` + "\n")

	paragraphs := paragraphGapPattern.Split(rawText, -1)
	for pi, para := range paragraphs {
		lines := strings.Split(para, "\n")
		for li, line := range lines {
			rendered := escapeRTF(line)
			if allCapsLabelPattern.MatchString(strings.TrimSpace(line)) {
				rendered = `{\b ` + rendered + `}`
			}
			sb.WriteString(rendered)
			if li < len(lines)-1 {
				sb.WriteString("\\line ")
			}
		}
		if pi < len(paragraphs)-1 {
			sb.WriteString("\\par\\par\n")
		}
	}

	sb.WriteString("\n}")

	out := []byte(sb.String())
	if len(out) == 0 {
		// Unreachable given the fixed header, but downstream consumers
		// assume a non-empty file.
		return domain.EmissionOutput{}, domain.ErrEmptyEmission
	}

	return domain.EmissionOutput{Bytes: out, MimeType: rtfMimeType}, nil
}

// escapeRTF escapes the format-reserved characters and encodes non-ASCII
// runes as signed 16-bit unicode control words.
func escapeRTF(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == '{':
			sb.WriteString(`\{`)
		case r == '}':
			sb.WriteString(`\}`)
		case r > 127:
			code := int32(r)
			if code > 32767 {
				code -= 65536
			}
			sb.WriteString(fmt.Sprintf(`\u%d?`, code))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
