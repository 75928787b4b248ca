package parsers

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ExperiencePosition is one employment entry reconstructed from the
// experience section.
type ExperiencePosition struct {
	Title         string  `json:"title"`
	Company       string  `json:"company"`
	DateRange     string  `json:"date_range"`
	DurationYears float64 `json:"duration_years"`
	Description   string  `json:"description"`
}

// ExperienceProfile aggregates a candidate's employment history.
type ExperienceProfile struct {
	TotalExperienceYears float64              `json:"total_experience_years"`
	ExperienceLevel      string               `json:"experience_level"`
	IndustrySectors      []string             `json:"industry_sectors"`
	KeyAchievements      []string             `json:"key_achievements"`
	Positions            []ExperiencePosition `json:"positions"`
	CompaniesWorked      []string             `json:"companies_worked"`
	PositionsHeld        []string             `json:"positions_held"`
	CareerGapCount       int                  `json:"career_gap_count"`
	Trajectory           string               `json:"trajectory"`
}

// Experience level labels.
const (
	ExperienceEntry     = "Entry Level"
	ExperienceJunior    = "Junior Level"
	ExperienceMid       = "Mid Level"
	ExperienceSenior    = "Senior Level"
	ExperienceExecutive = "Executive Level"
)

// Career trajectory labels.
const (
	TrajectoryEarlyCareer = "Early Career"
	TrajectoryRapid       = "Rapid Movement"
	TrajectorySteady      = "Steady Growth"
	TrajectoryStable      = "Stable Progression"
)

// maxExperienceYears caps the plain-sum total. Overlapping positions are not
// merged, so the sum can otherwise run away on concurrent roles.
const maxExperienceYears = 50

// shortPositionYears marks a position as a potential career gap.
const shortPositionYears = 0.5

var (
	experienceStartKeywords = []string{
		"experience", "work experience", "employment", "career",
		"professional experience", "work history",
	}
	experienceEndKeywords = []string{
		"education", "skills", "projects", "certifications",
		"awards", "references", "personal",
	}

	bulletPrefix = regexp.MustCompile(`^[•\-*\s]+`)
	spaceRun     = regexp.MustCompile(`\s+`)
)

// captureRule is one (pattern, min, max) step of an ordered extraction
// cascade; the first rule whose capture group yields a string inside the
// length bounds wins.
type captureRule struct {
	re       *regexp.Regexp
	min, max int
}

func (r captureRule) apply(text string) string {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	candidate := strings.TrimSpace(m[1])
	if len(candidate) > r.min && len(candidate) < r.max {
		return candidate
	}
	return ""
}

// ExperienceExtractor reconstructs positions, total experience, trajectory,
// achievements and industry exposure from the experience section.
type ExperienceExtractor struct {
	tax          *Taxonomy
	titleRules   []captureRule
	companyRules []captureRule
	presentRe    *regexp.Regexp
	now          func() time.Time
}

func NewExperienceExtractor(tax *Taxonomy, now func() time.Time) *ExperienceExtractor {
	if now == nil {
		now = time.Now
	}
	return &ExperienceExtractor{
		tax: tax,
		titleRules: []captureRule{
			{regexp.MustCompile(`^(.*?)\s*(?:\bat\b|,|\d)`), 3, 100},
			{regexp.MustCompile(`(?i)(?:position|role|title)[:\s]+(\S+)`), 3, 100},
			{regexp.MustCompile(`^(.*?)\s*-\s*`), 3, 100},
		},
		companyRules: []captureRule{
			{regexp.MustCompile(`(?i)\bat\s+([^\s,]+)`), 2, 100},
			{regexp.MustCompile(`,\s+([^\s,]+)`), 2, 100},
			{regexp.MustCompile(`-\s+([^\s,]+)`), 2, 100},
			{regexp.MustCompile(`(?i)company[:\s]+(\S+)`), 2, 100},
		},
		presentRe: regexp.MustCompile(`(?i)present|current|now`),
		now:       now,
	}
}

// Extract walks the experience section. A line carrying a date range opens a
// new position (closing any pending one); other lines attach to the open
// position's description. Achievement lines and industry keywords are
// collected along the way.
func (e *ExperienceExtractor) Extract(text string) ExperienceProfile {
	profile := ExperienceProfile{}
	scanner := newSectionScanner(experienceStartKeywords, experienceEndKeywords)

	var positions []ExperiencePosition
	var current *ExperiencePosition
	seenSector := map[string]bool{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !scanner.observe(line) || line == "" {
			continue
		}

		if dates := extractDateRange(e.tax, line); dates != "" {
			if current != nil {
				positions = append(positions, *current)
			}
			current = &ExperiencePosition{
				Title:         e.extractTitle(line),
				Company:       e.extractCompany(line),
				DateRange:     dates,
				DurationYears: e.positionDuration(dates),
				Description:   line,
			}
		} else if current != nil {
			current.Description += "\n" + line
		}

		if e.isAchievement(line) {
			if cleaned := cleanAchievement(line); cleaned != "" {
				profile.KeyAchievements = append(profile.KeyAchievements, cleaned)
			}
		}
		if sector := e.detectSector(line); sector != "" && !seenSector[sector] {
			seenSector[sector] = true
			profile.IndustrySectors = append(profile.IndustrySectors, sector)
		}
	}
	if current != nil {
		positions = append(positions, *current)
	}

	profile.Positions = positions
	profile.CompaniesWorked = uniqueNonEmpty(positions, func(p ExperiencePosition) string { return p.Company })
	profile.PositionsHeld = uniqueNonEmpty(positions, func(p ExperiencePosition) string { return p.Title })
	profile.TotalExperienceYears = totalExperience(positions)
	profile.ExperienceLevel = ExperienceLevelLabel(profile.TotalExperienceYears)
	profile.CareerGapCount = careerGaps(positions)
	profile.Trajectory = trajectory(positions)
	return profile
}

func (e *ExperienceExtractor) extractTitle(line string) string {
	for _, rule := range e.titleRules {
		if title := rule.apply(line); title != "" {
			return title
		}
	}
	return ""
}

func (e *ExperienceExtractor) extractCompany(line string) string {
	for _, rule := range e.companyRules {
		if company := rule.apply(line); company != "" {
			return company
		}
	}
	return ""
}

// positionDuration derives years from the year tokens in a date range. An
// open-ended range ("2019 - Present") runs to the current year; fewer than
// two usable tokens means the duration is unknown and counts as zero.
func (e *ExperienceExtractor) positionDuration(dates string) float64 {
	years := e.tax.YearPattern.FindAllString(dates, -1)
	if len(years) == 0 {
		return 0
	}
	start, err := strconv.Atoi(years[0])
	if err != nil {
		return 0
	}
	end := 0
	if len(years) >= 2 {
		end, _ = strconv.Atoi(years[1])
	} else if e.presentRe.MatchString(dates) {
		end = e.now().Year()
	} else {
		return 0
	}
	duration := float64(end - start)
	if duration < 0 {
		return 0
	}
	return duration
}

func (e *ExperienceExtractor) isAchievement(line string) bool {
	lower := strings.ToLower(line)
	for _, verb := range e.tax.AchievementVerbs {
		if verb.MatchString(lower) {
			return true
		}
	}
	return false
}

func (e *ExperienceExtractor) detectSector(line string) string {
	lower := strings.ToLower(line)
	for _, sector := range e.tax.SectorOrder {
		for _, keyword := range e.tax.IndustrySectors[sector] {
			if strings.Contains(lower, keyword) {
				return sector
			}
		}
	}
	return ""
}

// cleanAchievement strips leading bullet markers and drops fragments too
// short to mean anything.
func cleanAchievement(line string) string {
	cleaned := bulletPrefix.ReplaceAllString(strings.TrimSpace(line), "")
	cleaned = spaceRun.ReplaceAllString(cleaned, " ")
	if len(cleaned) <= 10 {
		return ""
	}
	return cleaned
}

func uniqueNonEmpty(positions []ExperiencePosition, pick func(ExperiencePosition) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range positions {
		v := pick(p)
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// totalExperience is a plain sum of position durations capped at 50 years.
// Overlapping date ranges are not merged.
func totalExperience(positions []ExperiencePosition) float64 {
	total := 0.0
	for _, p := range positions {
		if p.DurationYears > 0 {
			total += p.DurationYears
		}
	}
	if total > maxExperienceYears {
		return maxExperienceYears
	}
	return total
}

// ExperienceLevelLabel buckets total years into a seniority label.
func ExperienceLevelLabel(years float64) string {
	switch {
	case years < 1:
		return ExperienceEntry
	case years < 3:
		return ExperienceJunior
	case years < 7:
		return ExperienceMid
	case years < 15:
		return ExperienceSenior
	default:
		return ExperienceExecutive
	}
}

func careerGaps(positions []ExperiencePosition) int {
	if len(positions) < 2 {
		return 0
	}
	count := 0
	for _, p := range positions {
		if p.DurationYears < shortPositionYears {
			count++
		}
	}
	return count
}

func trajectory(positions []ExperiencePosition) string {
	if len(positions) < 2 {
		return TrajectoryEarlyCareer
	}
	sum := 0.0
	for _, p := range positions {
		sum += p.DurationYears
	}
	avg := sum / float64(len(positions))
	switch {
	case avg >= 3.0:
		return TrajectoryStable
	case avg >= 1.5:
		return TrajectorySteady
	default:
		return TrajectoryRapid
	}
}
