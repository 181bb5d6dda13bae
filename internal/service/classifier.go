package service

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"pdf-word-converter/internal/domain"
)

// ClassifierConfig tunes the language-dependent parts of line
// classification. The defaults follow the Spanish-leaning documents this
// tool mostly sees, mixed with English labels.
type ClassifierConfig struct {
	// FunctionWords disqualify a line from the plain Header role.
	FunctionWords []string
	// CalloutKeywords start a Note line when followed by a colon.
	CalloutKeywords []string
}

// DefaultClassifierConfig returns the built-in word lists.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		FunctionWords: []string{
			"de", "la", "el", "en", "y", "a", "los", "las", "del", "al",
			"con", "por", "para", "un", "una", "que", "se", "su",
			"the", "of", "and", "to", "in", "for", "on", "with",
		},
		CalloutKeywords: []string{
			"NOTE", "NOTA", "IMPORTANT", "IMPORTANTE",
			"ATTENTION", "ATENCIÓN", "ATENCION",
			"OBSERVATION", "OBSERVACIÓN", "OBSERVACION",
			"WARNING", "ADVERTENCIA", "TIP", "CONSEJO", "ADVICE",
		},
	}
}

// classifierRule pairs a role with its predicate. The predicate returns
// whether the trimmed line matches and, for numbered headers, the level.
type classifierRule struct {
	role  domain.LineRole
	match func(trimmed string) (bool, int)
}

// LineClassifier assigns a structural role to each line of normalized text
// in a single deterministic forward pass. Rules are evaluated strictly in
// slice order; the first match wins and no line is ever re-classified.
type LineClassifier struct {
	functionWords map[string]bool
	callouts      map[string]bool
	rules         []classifierRule
}

var (
	uppercaseLinePattern = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑÜ0-9][A-ZÁÉÍÓÚÑÜ0-9 \-]*$`)
	numberedHeadPattern  = regexp.MustCompile(`^(\d+(?:\.\d+)*|[IVXLCDM]+|[A-Za-z])[.)]?\s+[A-ZÁÉÍÓÚÑÜ]`)
	decimalHeadPattern   = regexp.MustCompile(`^\d+\.\d+`)
	bulletPattern        = regexp.MustCompile(`^([-•–—*▪]\s+|\d+\.\s+|[a-z]\)\s+)`)
	datePattern          = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}`)
	metaLabelPattern     = regexp.MustCompile(`^(Date|Fecha|Version|Versión)\s*:`)
	wideGapPattern       = regexp.MustCompile(`\s{3,}`)
)

// NewLineClassifier builds the rule table in precedence order.
func NewLineClassifier(cfg ClassifierConfig) *LineClassifier {
	if len(cfg.FunctionWords) == 0 && len(cfg.CalloutKeywords) == 0 {
		cfg = DefaultClassifierConfig()
	}

	c := &LineClassifier{
		functionWords: make(map[string]bool, len(cfg.FunctionWords)),
		callouts:      make(map[string]bool, len(cfg.CalloutKeywords)),
	}
	for _, w := range cfg.FunctionWords {
		c.functionWords[strings.ToLower(w)] = true
	}
	for _, k := range cfg.CalloutKeywords {
		c.callouts[strings.ToUpper(k)] = true
	}

	// Precedence order is load-bearing: a line can match several rules and
	// must always take the first.
	c.rules = []classifierRule{
		{domain.RoleEmpty, c.matchEmpty},
		{domain.RoleTitle, c.matchTitle},
		{domain.RoleHeader, c.matchHeader},
		{domain.RoleNumberedHeader, c.matchNumberedHeader},
		{domain.RoleListItem, c.matchListItem},
		{domain.RoleNote, c.matchNote},
		{domain.RoleMetadata, c.matchMetadata},
		{domain.RoleTableRow, c.matchTableRow},
	}
	return c
}

// Classify segments normalized text into lines and assigns each one a
// role. It never fails: anything unrecognized falls through to Paragraph.
func (c *LineClassifier) Classify(normalizedText string) []domain.ClassifiedLine {
	prepared := PrepareForClassification(normalizedText)
	rawLines := strings.Split(prepared, "\n")

	classified := make([]domain.ClassifiedLine, 0, len(rawLines))
	for _, raw := range rawLines {
		trimmed := strings.TrimSpace(raw)

		role := domain.RoleParagraph
		level := 0
		for _, rule := range c.rules {
			if ok, lvl := rule.match(trimmed); ok {
				role = rule.role
				level = lvl
				break
			}
		}

		content := trimmed
		if role == domain.RoleTableRow {
			// Keep the wide gaps so the reformatter can split fields.
			content = strings.TrimRight(raw, " ")
			content = strings.TrimLeft(content, " ")
		}
		if role == domain.RoleEmpty {
			content = ""
		}

		classified = append(classified, domain.ClassifiedLine{
			Content: content,
			Role:    role,
			Level:   level,
		})
	}
	return classified
}

// PrepareForClassification compensates for layout-driven extraction
// artifacts: concatenated words (lost spaces), letters glued to digits,
// and sentence boundaries with the whitespace dropped entirely.
func PrepareForClassification(text string) string {
	text = missingSpaceLower.ReplaceAllString(text, "$1 $2")
	text = missingSpaceDigit.ReplaceAllString(text, "$1 $2")
	text = missingSpaceAfterDigit.ReplaceAllString(text, "$1 $2")
	text = glueSentencePattern.ReplaceAllString(text, "$1\n\n$2")
	return text
}

var (
	missingSpaceLower      = regexp.MustCompile(`([a-záéíóúñü])([A-ZÁÉÍÓÚÑÜ])`)
	missingSpaceDigit      = regexp.MustCompile(`([a-zA-Záéíóúñü])(\d)`)
	missingSpaceAfterDigit = regexp.MustCompile(`(\d)([a-zA-ZÁÉÍÓÚÑÜáéíóúñü])`)
	glueSentencePattern    = regexp.MustCompile(`([.!?])([A-ZÁÉÍÓÚÑÜ])`)
)

func (c *LineClassifier) matchEmpty(trimmed string) (bool, int) {
	return trimmed == "", 0
}

func (c *LineClassifier) matchTitle(trimmed string) (bool, int) {
	if trimmed == "" || utf8.RuneCountInString(trimmed) >= 50 {
		return false, 0
	}
	if !uppercaseLinePattern.MatchString(trimmed) {
		return false, 0
	}
	words := strings.Fields(trimmed)
	if len(words) > 8 {
		return false, 0
	}
	// A sentence opening with a stray single-letter abbreviation is not a
	// title ("A CONTINUACIÓN SE DETALLAN..." style extraction noise).
	if len(words) > 1 && utf8.RuneCountInString(words[0]) == 1 && !unicode.IsDigit(rune(words[0][0])) {
		return false, 0
	}
	return true, 0
}

func (c *LineClassifier) matchHeader(trimmed string) (bool, int) {
	if trimmed == "" || utf8.RuneCountInString(trimmed) >= 60 {
		return false, 0
	}
	if strings.Contains(trimmed, "**") {
		return false, 0
	}
	// Label lines ("NOTA:", "Fecha:") and enumerator-started lines
	// ("IV. Resultados") belong to the later rules.
	if strings.ContainsRune(trimmed, ':') {
		return false, 0
	}
	if numberedHeadPattern.MatchString(trimmed) {
		return false, 0
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	if last == '.' || last == '!' || last == '?' {
		return false, 0
	}
	first, _ := utf8.DecodeRuneInString(trimmed)
	if !unicode.IsUpper(first) {
		return false, 0
	}
	words := strings.Fields(trimmed)
	if len(words) > 6 {
		return false, 0
	}
	for _, w := range words {
		if c.functionWords[strings.ToLower(strings.Trim(w, ".,;:"))] {
			return false, 0
		}
	}
	return true, 0
}

func (c *LineClassifier) matchNumberedHeader(trimmed string) (bool, int) {
	if !numberedHeadPattern.MatchString(trimmed) {
		return false, 0
	}
	if decimalHeadPattern.MatchString(trimmed) {
		return true, 3
	}
	return true, 2
}

func (c *LineClassifier) matchListItem(trimmed string) (bool, int) {
	return bulletPattern.MatchString(trimmed), 0
}

func (c *LineClassifier) matchNote(trimmed string) (bool, int) {
	idx := strings.Index(trimmed, ":")
	if idx <= 0 {
		return false, 0
	}
	return c.callouts[strings.ToUpper(strings.TrimSpace(trimmed[:idx]))], 0
}

func (c *LineClassifier) matchMetadata(trimmed string) (bool, int) {
	return datePattern.MatchString(trimmed) || metaLabelPattern.MatchString(trimmed), 0
}

func (c *LineClassifier) matchTableRow(trimmed string) (bool, int) {
	if !wideGapPattern.MatchString(trimmed) {
		return false, 0
	}
	return len(wideGapPattern.Split(trimmed, -1)) >= 3, 0
}
