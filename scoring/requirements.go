package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"hirescreen/parsers"
)

// JobRequirements is the transient structured view of a free-text job
// requirement. It is re-derived on every scoring call and never persisted.
type JobRequirements struct {
	Skills             []string
	MinYears           int
	SeniorityLevel     string
	ManagementRequired bool
	QualificationLevel parsers.QualificationLevel
	Industries         []string
	Fields             []string
	CultureIndicators  []string
}

var (
	minYearsRe  = regexp.MustCompile(`(\d+)\+?\s*years?\s*experience`)
	seniorityRe = regexp.MustCompile(`senior|junior|mid-level|entry-level|executive|lead|principal`)
	managerRe   = regexp.MustCompile(`management|manager|leadership|director|head of`)
)

// defaultRequiredYears applies when a job states neither a year count nor a
// seniority keyword.
const defaultRequiredYears = 2

// requirementParser derives JobRequirements from job text using the same
// taxonomy the candidate-side extractors use, so both sides of a match always
// speak the same skill vocabulary.
type requirementParser struct {
	tax    *parsers.Taxonomy
	skills *parsers.SkillExtractor
	words  map[string]*regexp.Regexp
}

func newRequirementParser(tax *parsers.Taxonomy, skills *parsers.SkillExtractor) *requirementParser {
	// Level and field keywords include short tokens ("ma", "cs") that would
	// false-positive as substrings, so they match on word boundaries only.
	words := map[string]*regexp.Regexp{}
	for _, rule := range tax.JobLevelKeywords {
		for _, keyword := range rule.Keywords {
			words[keyword] = regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
		}
	}
	for _, rule := range tax.JobFieldKeywords {
		for _, keyword := range rule.Keywords {
			words[keyword] = regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
		}
	}
	return &requirementParser{tax: tax, skills: skills, words: words}
}

func (p *requirementParser) containsWord(lower, keyword string) bool {
	if re, ok := p.words[keyword]; ok {
		return re.MatchString(lower)
	}
	return strings.Contains(lower, keyword)
}

func (p *requirementParser) parse(jobText string) JobRequirements {
	lower := strings.ToLower(jobText)

	req := JobRequirements{
		Skills:            p.jobSkills(jobText),
		Industries:        p.jobIndustries(lower),
		Fields:            p.jobFields(lower),
		CultureIndicators: p.cultureIndicators(lower),
	}

	if m := minYearsRe.FindStringSubmatch(lower); m != nil {
		req.MinYears, _ = strconv.Atoi(m[1])
	}
	req.SeniorityLevel = seniorityRe.FindString(lower)
	req.ManagementRequired = managerRe.MatchString(lower)
	if req.MinYears == 0 {
		if years, ok := p.tax.SeniorityYears[req.SeniorityLevel]; ok {
			req.MinYears = years
		} else {
			req.MinYears = defaultRequiredYears
		}
	}

	for _, rule := range p.tax.JobLevelKeywords {
		if req.QualificationLevel != parsers.LevelNone {
			break
		}
		for _, keyword := range rule.Keywords {
			if p.containsWord(lower, keyword) {
				req.QualificationLevel = rule.Level
				break
			}
		}
	}
	return req
}

// jobSkills runs the whole-word taxonomy scan over the job text. Order
// follows the taxonomy category order, keeping downstream gap lists stable.
func (p *requirementParser) jobSkills(jobText string) []string {
	profile := p.skills.Extract(jobText)
	var out []string
	for _, category := range p.tax.CategoryOrder {
		for _, entry := range profile.SkillsByCategory[category] {
			out = append(out, entry.Skill)
		}
	}
	return out
}

func (p *requirementParser) jobIndustries(lower string) []string {
	var out []string
	for _, sector := range p.tax.SectorOrder {
		for _, keyword := range p.tax.IndustrySectors[sector] {
			if strings.Contains(lower, keyword) {
				out = append(out, sector)
				break
			}
		}
	}
	return out
}

func (p *requirementParser) jobFields(lower string) []string {
	var out []string
	for _, rule := range p.tax.JobFieldKeywords {
		for _, keyword := range rule.Keywords {
			if p.containsWord(lower, keyword) {
				out = append(out, rule.Field)
				break
			}
		}
	}
	return out
}

func (p *requirementParser) cultureIndicators(lower string) []string {
	var out []string
	for _, keyword := range p.tax.CultureKeywords {
		if strings.Contains(lower, keyword) {
			out = append(out, keyword)
		}
	}
	return out
}
