package parsers

import (
	"regexp"
	"sort"
	"strings"
)

// SkillEntry is one taxonomy skill found in the document.
type SkillEntry struct {
	Skill      string  `json:"skill"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Frequency  int     `json:"frequency"`
}

// SkillProfile is the aggregated skill view of a candidate.
type SkillProfile struct {
	SkillsByCategory  map[string][]SkillEntry `json:"skills_by_category"`
	TotalSkills       int                     `json:"total_skills"`
	SkillDiversity    int                     `json:"skill_diversity"`
	TotalOccurrences  int                     `json:"total_occurrences"`
	TopSkills         []SkillEntry            `json:"top_skills"`
	CategoriesPresent []string                `json:"categories_present"`
}

const topSkillLimit = 15

// skillMatcher holds the compiled patterns for a single taxonomy keyword.
type skillMatcher struct {
	skill     string
	category  string
	wordRe    *regexp.Regexp
	sectionRe *regexp.Regexp
	bulletRe  *regexp.Regexp
}

// SkillExtractor matches text against the fixed skill taxonomy. All patterns
// are compiled once at construction; the extractor itself is read-only and
// safe for concurrent use.
type SkillExtractor struct {
	tax      *Taxonomy
	matchers []skillMatcher
}

func NewSkillExtractor(tax *Taxonomy) *SkillExtractor {
	e := &SkillExtractor{tax: tax}
	for _, category := range tax.CategoryOrder {
		for _, skill := range tax.SkillCategories[category] {
			quoted := regexp.QuoteMeta(skill)
			e.matchers = append(e.matchers, skillMatcher{
				skill:     skill,
				category:  category,
				wordRe:    regexp.MustCompile(`\b` + quoted + `\b`),
				sectionRe: regexp.MustCompile(`(?s)(skills|technical skills|competencies).*?` + quoted),
				bulletRe:  regexp.MustCompile(`[•\-*]\s*.*` + quoted),
			})
		}
	}
	return e
}

// Extract performs whole-word, case-insensitive matching over the full text.
func (e *SkillExtractor) Extract(text string) SkillProfile {
	lower := strings.ToLower(text)

	profile := SkillProfile{SkillsByCategory: make(map[string][]SkillEntry)}
	for _, m := range e.matchers {
		frequency := len(m.wordRe.FindAllString(lower, -1))
		if frequency == 0 {
			continue
		}
		entry := SkillEntry{
			Skill:      m.skill,
			Category:   m.category,
			Confidence: e.confidence(m, lower, frequency),
			Frequency:  frequency,
		}
		profile.SkillsByCategory[m.category] = append(profile.SkillsByCategory[m.category], entry)
		profile.TotalSkills++
		profile.TotalOccurrences += frequency
	}

	profile.SkillDiversity = len(profile.SkillsByCategory)
	for _, category := range e.tax.CategoryOrder {
		if len(profile.SkillsByCategory[category]) > 0 {
			profile.CategoriesPresent = append(profile.CategoriesPresent, category)
		}
	}
	profile.TopSkills = topSkills(e.tax, profile.SkillsByCategory)
	return profile
}

// confidence weights a raw keyword hit: base 0.5, +0.3 when the skill appears
// after a skills heading, +0.1 when it sits next to a bullet marker, plus a
// small frequency bonus, capped at 1.0.
func (e *SkillExtractor) confidence(m skillMatcher, lower string, frequency int) float64 {
	confidence := 0.5
	if m.sectionRe.MatchString(lower) {
		confidence += 0.3
	}
	if m.bulletRe.MatchString(lower) {
		confidence += 0.1
	}
	if frequency > 1 {
		bonus := float64(frequency) * 0.05
		if bonus > 0.1 {
			bonus = 0.1
		}
		confidence += bonus
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// topSkills ranks every found skill by confidence×frequency and keeps the
// strongest 15. Category order breaks score ties so output stays stable.
func topSkills(tax *Taxonomy, byCategory map[string][]SkillEntry) []SkillEntry {
	var all []SkillEntry
	for _, category := range tax.CategoryOrder {
		all = append(all, byCategory[category]...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		si := all[i].Confidence * float64(all[i].Frequency)
		sj := all[j].Confidence * float64(all[j].Frequency)
		return si > sj
	})
	if len(all) > topSkillLimit {
		all = all[:topSkillLimit]
	}
	return all
}
