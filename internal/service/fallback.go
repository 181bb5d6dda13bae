package service

import (
	"fmt"
	"strings"

	"pdf-word-converter/internal/domain"
)

// FallbackNarrative builds the deterministic body both emitters receive
// when no text layer was recovered. It returns the flat text for the
// rich-text output and the same content in markup form for the structured
// one. The remediation section depends on whether the container metadata
// points at a word processor (re-export guidance) or at the generic
// scanned-document hypothesis (OCR guidance).
func FallbackNarrative(originalName string, pageCount int, producer string) (string, domain.MarkupDocument) {
	wordProcessed := producerIsWordProcessor(producer)

	intro := fmt.Sprintf(
		"El archivo %s (%d páginas) no contiene una capa de texto que se pueda recuperar. "+
			"Se generó este documento de diagnóstico en su lugar.",
		originalName, pageCount)

	causes := []string{
		"El documento proviene de un escáner o de una fotografía, por lo que cada página es una imagen.",
		"El PDF fue generado sin texto incrustado (solo trazos o mapas de bits).",
	}
	if wordProcessed {
		causes = append(causes,
			fmt.Sprintf("El generador del documento (%s) exportó el contenido como imagen en lugar de texto.", producer))
	}

	var remedies []string
	if wordProcessed {
		remedies = []string{
			"Abrir el documento original en su procesador de textos y volver a exportarlo a PDF conservando el texto.",
			"Verificar que la opción de \"imprimir como imagen\" esté desactivada al exportar.",
		}
	} else {
		remedies = []string{
			"Aplicar una herramienta de OCR (reconocimiento óptico de caracteres) al documento antes de convertirlo.",
			"Si se dispone del documento original, exportarlo de nuevo a PDF con la capa de texto incluida.",
		}
	}

	var flat strings.Builder
	flat.WriteString("DOCUMENTO SIN TEXTO EXTRAÍBLE:\n\n")
	flat.WriteString(intro)
	flat.WriteString("\n\nPOSIBLES CAUSAS:\n")
	for _, c := range causes {
		flat.WriteString("- " + c + "\n")
	}
	flat.WriteString("\nRECOMENDACIONES:\n")
	for _, r := range remedies {
		flat.WriteString("- " + r + "\n")
	}

	markup := domain.MarkupDocument{"# Documento sin texto extraíble", "", intro, ""}
	markup = append(markup, "## Posibles causas", "")
	for _, c := range causes {
		markup = append(markup, "- "+c)
	}
	markup = append(markup, "", "## Recomendaciones", "")
	for _, r := range remedies {
		markup = append(markup, "- "+r)
	}

	return flat.String(), markup
}

// producerIsWordProcessor reports whether container metadata points at a
// common word processor or office suite.
func producerIsWordProcessor(producer string) bool {
	p := strings.ToLower(producer)
	for _, marker := range []string{"word", "office", "writer", "libre", "docs", "pages"} {
		if strings.Contains(p, marker) {
			return true
		}
	}
	return false
}
