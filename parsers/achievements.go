package parsers

import "strings"

// AchievementRecord is one award, certification, honor, publication or patent
// line found anywhere in the document.
type AchievementRecord struct {
	Category   AchievementCategory `json:"category"`
	Text       string              `json:"text"`
	Confidence float64             `json:"confidence"`
}

// AchievementSet groups records by category in taxonomy order.
type AchievementSet struct {
	Records []AchievementRecord `json:"records"`
}

// achievementConfidence is fixed: indicator keywords are strong signals and
// carry no further weighting.
const achievementConfidence = 0.8

// ByCategory returns the records in one category, preserving document order.
func (s AchievementSet) ByCategory(category AchievementCategory) []AchievementRecord {
	var out []AchievementRecord
	for _, r := range s.Records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Total is the overall record count across categories. A line matching two
// category keyword sets counts once per category.
func (s AchievementSet) Total() int {
	return len(s.Records)
}

// AchievementExtractor scans every line against the five achievement category
// keyword sets.
type AchievementExtractor struct {
	tax *Taxonomy
}

func NewAchievementExtractor(tax *Taxonomy) *AchievementExtractor {
	return &AchievementExtractor{tax: tax}
}

func (e *AchievementExtractor) Extract(text string) AchievementSet {
	set := AchievementSet{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, rule := range e.tax.AchievementRules {
			for _, indicator := range rule.Indicators {
				if strings.Contains(lower, indicator) {
					set.Records = append(set.Records, AchievementRecord{
						Category:   rule.Category,
						Text:       line,
						Confidence: achievementConfidence,
					})
					break
				}
			}
		}
	}
	return set
}
