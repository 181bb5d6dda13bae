package service

import (
	"strings"
	"unicode/utf8"

	"pdf-word-converter/internal/domain"
)

// longParagraphChars is the length past which a paragraph earns breathing
// room around it in both the markup and the structured output.
const longParagraphChars = 150

// Reformat renders classified lines into the markdown-like intermediate
// document consumed by the structured emitter. Each role maps to a fixed
// template; spacing rules depend only on the immediate neighbors.
func Reformat(lines []domain.ClassifiedLine) domain.MarkupDocument {
	var out []string

	appendBlank := func() {
		if len(out) > 0 && out[len(out)-1] != "" {
			out = append(out, "")
		}
	}

	for i, line := range lines {
		var prev, next *domain.ClassifiedLine
		if i > 0 {
			prev = &lines[i-1]
		}
		if i+1 < len(lines) {
			next = &lines[i+1]
		}

		switch line.Role {
		case domain.RoleEmpty:
			appendBlank()

		case domain.RoleTitle:
			appendBlank()
			out = append(out, "# "+line.Content, "")

		case domain.RoleHeader:
			appendBlank()
			out = append(out, "## "+line.Content, "")

		case domain.RoleNumberedHeader:
			appendBlank()
			marker := "## "
			if line.Level == 3 {
				marker = "### "
			}
			out = append(out, marker+line.Content, "")

		case domain.RoleListItem:
			if prev != nil && prev.Role != domain.RoleListItem && prev.Role != domain.RoleEmpty {
				appendBlank()
			}
			out = append(out, line.Content)
			if next != nil && next.Role != domain.RoleListItem && next.Role != domain.RoleEmpty {
				out = append(out, "")
			}

		case domain.RoleNote:
			appendBlank()
			out = append(out, "**"+line.Content+"**", "")

		case domain.RoleMetadata:
			out = append(out, "*"+line.Content+"*")

		case domain.RoleTableRow:
			out = append(out, strings.Join(splitTableFields(line.Content), " | "))

		default: // paragraph
			spaced := utf8.RuneCountInString(line.Content) > longParagraphChars
			if spaced && prev != nil && prev.Role != domain.RoleEmpty && prev.Role != domain.RoleParagraph {
				appendBlank()
			}
			out = append(out, line.Content)
			if spaced && next != nil && next.Role != domain.RoleEmpty && next.Role != domain.RoleParagraph {
				out = append(out, "")
			}
		}
	}

	return tidyMarkup(out)
}

// splitTableFields splits a table row on runs of 3+ spaces.
func splitTableFields(content string) []string {
	fields := wideGapPattern.Split(content, -1)
	trimmed := make([]string, 0, len(fields))
	for _, f := range fields {
		trimmed = append(trimmed, strings.TrimSpace(f))
	}
	return trimmed
}

// tidyMarkup normalizes the assembled document: blank runs collapse to a
// single blank line, a heading or bold note directly after content gets a
// separating blank, and the document is trimmed at both ends.
func tidyMarkup(lines []string) domain.MarkupDocument {
	collapsed := make([]string, 0, len(lines))
	blanks := 0
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			blanks++
			continue
		}
		if blanks > 0 && len(collapsed) > 0 {
			collapsed = append(collapsed, "")
		}
		blanks = 0
		collapsed = append(collapsed, l)
	}

	var result []string
	for _, l := range collapsed {
		needsLead := strings.HasPrefix(l, "#") || strings.HasPrefix(l, "**")
		if needsLead && len(result) > 0 && result[len(result)-1] != "" {
			result = append(result, "")
		}
		result = append(result, l)
	}

	return domain.MarkupDocument(result)
}
