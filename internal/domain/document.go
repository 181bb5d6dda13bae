package domain

import "time"

// LineRole is the structural role assigned to a single line of extracted text.
type LineRole string

const (
	RoleEmpty          LineRole = "empty"
	RoleTitle          LineRole = "title"
	RoleHeader         LineRole = "header"
	RoleNumberedHeader LineRole = "numbered_header"
	RoleListItem       LineRole = "list_item"
	RoleNote           LineRole = "note"
	RoleMetadata       LineRole = "metadata"
	RoleTableRow       LineRole = "table_row"
	RoleParagraph      LineRole = "paragraph"
)

// SourceDocument is an uploaded file, fully buffered in memory.
// It is owned by the request that uploaded it and discarded afterwards.
type SourceDocument struct {
	Bytes     []byte
	Filename  string
	MediaType string
}

// ExtractionResult is the outcome of a single text-extraction pass.
// Succeeded is true only when the normalized text carries more than the
// minimum threshold of real content. PageCount is recovered from the
// container's page table independently of the text walk.
type ExtractionResult struct {
	Text      string `json:"text"`
	PageCount int    `json:"page_count"`
	Succeeded bool   `json:"succeeded"`
	Method    string `json:"method"`
	Producer  string `json:"producer"`
}

// ClassifiedLine is one line of text with its structural role.
// Level is only meaningful for numbered headers (2 or 3).
type ClassifiedLine struct {
	Content string   `json:"content"`
	Role    LineRole `json:"role"`
	Level   int      `json:"level"`
}

// MarkupDocument is the markdown-like intermediate representation produced
// between classification and the structured emission.
type MarkupDocument []string

// EmissionOutput is one rendered output document.
type EmissionOutput struct {
	Bytes    []byte
	MimeType string
}

// SizeBytes returns the rendered size in bytes.
func (e EmissionOutput) SizeBytes() int {
	return len(e.Bytes)
}

// EmissionMeta is the header block prepended by both emitters.
type EmissionMeta struct {
	Title        string
	OriginalName string
	ConvertedAt  time.Time
	Tool         string
}

// ConversionResult is the payload returned to the caller after a full
// pipeline run. Both URLs are always present, even when no text layer was
// found in the source.
type ConversionResult struct {
	Success           bool   `json:"success"`
	OriginalName      string `json:"originalName"`
	ConvertedURL      string `json:"convertedUrl"`
	AlternativeURL    string `json:"alternativeUrl"`
	ConvertedFormat   string `json:"convertedFormat"`
	AlternativeFormat string `json:"alternativeFormat"`
	OriginalSize      int    `json:"originalSize"`
	ConvertedSize     int    `json:"convertedSize"`
	AlternativeSize   int    `json:"alternativeSize"`
	PageCount         int    `json:"pageCount"`
	TextExtracted     bool   `json:"textExtracted"`
	ExtractionMethod  string `json:"extractionMethod"`
}
