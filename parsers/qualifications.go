package parsers

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// QualificationEntry is one detected education line.
type QualificationEntry struct {
	Text        string             `json:"text"`
	Level       QualificationLevel `json:"level"`
	Institution string             `json:"institution,omitempty"`
	Field       string             `json:"field,omitempty"`
	DateRange   string             `json:"date_range,omitempty"`
	Confidence  float64            `json:"confidence"`
}

// QualificationSet aggregates every qualification found in a document.
type QualificationSet struct {
	HighestQualification string               `json:"highest_qualification"`
	QualificationLevel   QualificationLevel   `json:"qualification_level"`
	Entries              []QualificationEntry `json:"entries"`
	Institutions         []string             `json:"institutions"`
	FieldsOfStudy        []string             `json:"fields_of_study"`
}

// QualificationExtractor finds education entries inside the education section
// and assigns each an ordered qualification level.
type QualificationExtractor struct {
	tax   *Taxonomy
	title cases.Caser
}

var (
	educationStartKeywords = []string{
		"education", "qualifications", "academic", "degrees",
		"educational background", "academic qualifications",
	}
	educationEndKeywords = []string{
		"experience", "work experience", "employment",
		"skills", "projects", "certifications", "professional",
	}
)

func NewQualificationExtractor(tax *Taxonomy) *QualificationExtractor {
	return &QualificationExtractor{tax: tax, title: cases.Title(language.English)}
}

// Extract scans the education section line by line. Exactly one level is
// assigned per line: the level rules run in priority order and the first rule
// with a matching pattern wins.
func (e *QualificationExtractor) Extract(text string) QualificationSet {
	set := QualificationSet{}
	scanner := newSectionScanner(educationStartKeywords, educationEndKeywords)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !scanner.observe(line) || line == "" {
			continue
		}
		if entry, ok := e.extractEntry(line); ok {
			set.Entries = append(set.Entries, entry)
		}
	}

	// Highest qualification by level priority; earlier entries win ties.
	best := -1
	for i, entry := range set.Entries {
		if best < 0 || entry.Level.Priority() > set.Entries[best].Level.Priority() {
			best = i
		}
		if entry.Institution != "" {
			set.Institutions = append(set.Institutions, entry.Institution)
		}
		if entry.Field != "" {
			set.FieldsOfStudy = append(set.FieldsOfStudy, entry.Field)
		}
	}
	if best >= 0 {
		set.HighestQualification = set.Entries[best].Text
		set.QualificationLevel = set.Entries[best].Level
	}
	return set
}

func (e *QualificationExtractor) extractEntry(line string) (QualificationEntry, bool) {
	level := e.detectLevel(line)
	if level == LevelNone {
		return QualificationEntry{}, false
	}

	institution := e.extractInstitution(line)
	field := e.extractField(line)
	dates := extractDateRange(e.tax, line)

	confidence := 0.6
	if institution != "" {
		confidence += 0.2
	}
	if field != "" {
		confidence += 0.1
	}
	if dates != "" {
		confidence += 0.1
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	return QualificationEntry{
		Text:        line,
		Level:       level,
		Institution: institution,
		Field:       field,
		DateRange:   dates,
		Confidence:  confidence,
	}, true
}

func (e *QualificationExtractor) detectLevel(line string) QualificationLevel {
	lower := strings.ToLower(line)
	for _, rule := range e.tax.QualificationRules {
		for _, pattern := range rule.Patterns {
			if pattern.MatchString(lower) {
				return rule.Level
			}
		}
	}
	return LevelNone
}

func (e *QualificationExtractor) extractInstitution(line string) string {
	for _, pattern := range e.tax.InstitutionPatterns {
		if match := pattern.FindString(line); match != "" {
			return strings.TrimSpace(match)
		}
	}
	return ""
}

func (e *QualificationExtractor) extractField(line string) string {
	lower := strings.ToLower(line)
	for _, field := range e.tax.FieldsOfStudy {
		if strings.Contains(lower, field) {
			return e.title.String(field)
		}
	}
	return ""
}

// extractDateRange returns the first date range found in the text, trying the
// taxonomy's date patterns in order.
func extractDateRange(tax *Taxonomy, text string) string {
	for _, pattern := range tax.DatePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return ""
}
