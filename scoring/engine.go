package scoring

import (
	"fmt"
	"math"
	"strings"

	"hirescreen/parsers"
)

// Weights are the top-level composite weights. They must sum to 1 so the
// overall score stays inside [0,100].
type Weights struct {
	Skill         float64
	Experience    float64
	Qualification float64
	Cultural      float64
	Achievements  float64
}

func DefaultWeights() Weights {
	return Weights{
		Skill:         0.40,
		Experience:    0.30,
		Qualification: 0.15,
		Cultural:      0.10,
		Achievements:  0.05,
	}
}

// Tunables collects the scoring constants that are worth adjusting without
// touching the formulas.
type Tunables struct {
	// RelatedSkillCredit is the partial credit an adjacent skill earns
	// relative to an exact match.
	RelatedSkillCredit float64
	// MinSkillConfidence filters low-confidence extraction noise out of the
	// candidate skill pool before matching.
	MinSkillConfidence float64
	// AchievementPoints is the per-achievement contribution, capped at 100.
	AchievementPoints float64
	// LeadershipPoints is the per-signal leadership contribution, capped at 100.
	LeadershipPoints float64
	// CultureAlignmentPoints scales each detected culture indicator.
	CultureAlignmentPoints float64
}

func DefaultTunables() Tunables {
	return Tunables{
		RelatedSkillCredit:     0.7,
		MinSkillConfidence:     0.3,
		AchievementPoints:      15,
		LeadershipPoints:       20,
		CultureAlignmentPoints: 10,
	}
}

// Recommendation tier and interview priority thresholds, highest first.
const (
	tierTop       = 90
	tierStrong    = 80
	tierRecommend = 70
	tierFocused   = 60
	tierBorder    = 50

	priorityHigh   = 85
	priorityMedium = 70
	priorityLow    = 55
)

// CategoryMatch reports per-taxonomy-category match strength.
type CategoryMatch struct {
	Category        string   `json:"category"`
	MatchCount      int      `json:"match_count"`
	TotalSkills     int      `json:"total_skills"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
}

// SkillAnalysis is the detailed skill-fit breakdown.
type SkillAnalysis struct {
	MatchPercentage              float64         `json:"match_percentage"`
	ComprehensiveMatchPercentage float64         `json:"comprehensive_match_percentage"`
	ExactMatches                 []string        `json:"exact_matches"`
	RelatedSkills                []string        `json:"related_skills"`
	SkillGaps                    []string        `json:"skill_gaps"`
	DiversityScore               int             `json:"diversity_score"`
	TotalSkills                  int             `json:"total_skills"`
	CategoryBreakdown            []CategoryMatch `json:"category_breakdown"`
	StrengthIndex                float64         `json:"strength_index"`
}

// ExperienceAnalysis is the detailed experience-fit breakdown. Only the
// sufficiency score feeds the composite; the rest are explanatory signals.
type ExperienceAnalysis struct {
	Sufficient         bool    `json:"sufficient"`
	SufficiencyScore   float64 `json:"sufficiency_score"`
	ProgressionScore   float64 `json:"progression_score"`
	IndustryRelevance  float64 `json:"industry_relevance"`
	LeadershipScore    float64 `json:"leadership_score"`
	StabilityScore     float64 `json:"stability_score"`
	AchievementDensity float64 `json:"achievement_density"`
	RequiredYears      int     `json:"required_years"`
	ActualYears        float64 `json:"actual_years"`
}

// QualificationAnalysis is the detailed education-fit breakdown.
type QualificationAnalysis struct {
	Sufficient     bool                       `json:"sufficient"`
	Gap            float64                    `json:"gap"`
	CandidateScore float64                    `json:"candidate_score"`
	RequiredScore  float64                    `json:"required_score"`
	FieldRelevance float64                    `json:"field_relevance"`
	CandidateLevel parsers.QualificationLevel `json:"candidate_level"`
	RequiredLevel  parsers.QualificationLevel `json:"required_level"`
}

// CulturalAnalysis is the cultural/organizational fit breakdown.
type CulturalAnalysis struct {
	CultureAlignment   float64 `json:"culture_alignment"`
	AdaptabilityScore  float64 `json:"adaptability_score"`
	LongevityPotential float64 `json:"longevity_potential"`
	TeamFit            float64 `json:"team_fit"`
	Composite          float64 `json:"composite"`
}

// AchievementsAnalysis summarizes award/certification impact.
type AchievementsAnalysis struct {
	Score             float64 `json:"score"`
	Total             int     `json:"total"`
	HasAwards         bool    `json:"has_awards"`
	HasCertifications bool    `json:"has_certifications"`
	HasPublications   bool    `json:"has_publications"`
}

// StrengthsWeaknesses lists the headline talking points for a candidate.
type StrengthsWeaknesses struct {
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	DevelopmentAreas []string `json:"development_areas"`
}

// Engine combines a candidate profile and a job requirement text into a
// weighted compatibility report. It is pure over its inputs: identical
// profile and job text always produce an identical report.
type Engine struct {
	tax     *parsers.Taxonomy
	weights Weights
	tun     Tunables
	parser  *requirementParser
}

func NewEngine(tax *parsers.Taxonomy) *Engine {
	return NewEngineWith(tax, DefaultWeights(), DefaultTunables())
}

func NewEngineWith(tax *parsers.Taxonomy, weights Weights, tun Tunables) *Engine {
	return &Engine{
		tax:     tax,
		weights: weights,
		tun:     tun,
		parser:  newRequirementParser(tax, parsers.NewSkillExtractor(tax)),
	}
}

// Score produces the full report for one (profile, job text) pairing.
// Scoring is closed-form arithmetic over bounded inputs and never fails.
func (e *Engine) Score(profile *parsers.CandidateProfile, jobText string) ScoreReport {
	req := e.parser.parse(jobText)

	skill := e.analyzeSkillFit(profile, req)
	experience := e.analyzeExperienceFit(profile, req)
	qualification := e.analyzeQualificationFit(profile, req)
	cultural := e.analyzeCulturalFit(profile, req, skill, experience)
	achievements := e.analyzeAchievements(profile)

	overall := e.composite(
		skill.ComprehensiveMatchPercentage,
		experience.SufficiencyScore,
		qualification.CandidateScore,
		cultural.Composite,
		achievements.Score)

	return e.assembleReport(profile, overall, skill, experience, qualification, cultural, achievements)
}

// composite applies the top-level weights to the normalized sub-scores.
func (e *Engine) composite(skill, experience, qualification, cultural, achievements float64) float64 {
	return round2(skill*e.weights.Skill +
		experience*e.weights.Experience +
		qualification*e.weights.Qualification +
		cultural*e.weights.Cultural +
		achievements*e.weights.Achievements)
}

func (e *Engine) analyzeSkillFit(profile *parsers.CandidateProfile, req JobRequirements) SkillAnalysis {
	candidate := e.flattenSkills(profile.Skills)
	candidateSet := map[string]bool{}
	for _, s := range candidate {
		candidateSet[s] = true
	}

	var exact, gaps []string
	for _, jobSkill := range req.Skills {
		if candidateSet[jobSkill] {
			exact = append(exact, jobSkill)
		} else {
			gaps = append(gaps, jobSkill)
		}
	}
	related := e.relatedSkills(candidateSet, req.Skills)

	var matchPct, comprehensive float64
	if len(req.Skills) > 0 {
		matchPct = float64(len(exact)) / float64(len(req.Skills)) * 100
		comprehensive = (float64(len(exact)) + float64(len(related))*e.tun.RelatedSkillCredit) /
			float64(len(req.Skills)) * 100
	}
	if comprehensive > 100 {
		comprehensive = 100
	}

	return SkillAnalysis{
		MatchPercentage:              round2(matchPct),
		ComprehensiveMatchPercentage: round2(comprehensive),
		ExactMatches:                 exact,
		RelatedSkills:                related,
		SkillGaps:                    gaps,
		DiversityScore:               profile.Skills.SkillDiversity,
		TotalSkills:                  profile.Skills.TotalSkills,
		CategoryBreakdown:            e.categoryBreakdown(profile.Skills, req.Skills),
		StrengthIndex:                skillStrengthIndex(e.tax, profile.Skills),
	}
}

// flattenSkills pools candidate skills across categories, dropping entries
// below the confidence floor.
func (e *Engine) flattenSkills(skills parsers.SkillProfile) []string {
	var out []string
	for _, category := range e.tax.CategoryOrder {
		for _, entry := range skills.SkillsByCategory[category] {
			if entry.Confidence > e.tun.MinSkillConfidence {
				out = append(out, entry.Skill)
			}
		}
	}
	return out
}

// relatedSkills walks the fixed adjacency table: a candidate skill counts as
// related when a required skill links to it.
func (e *Engine) relatedSkills(candidate map[string]bool, jobSkills []string) []string {
	required := map[string]bool{}
	for _, s := range jobSkills {
		required[s] = true
	}
	seen := map[string]bool{}
	var out []string
	for _, root := range e.tax.RelationshipOrder {
		if !required[root] {
			continue
		}
		for _, neighbor := range e.tax.SkillRelationships[root] {
			if candidate[neighbor] && !seen[neighbor] {
				seen[neighbor] = true
				out = append(out, neighbor)
			}
		}
	}
	return out
}

func (e *Engine) categoryBreakdown(skills parsers.SkillProfile, jobSkills []string) []CategoryMatch {
	required := map[string]bool{}
	for _, s := range jobSkills {
		required[s] = true
	}

	var out []CategoryMatch
	for _, category := range e.tax.CategoryOrder {
		entries := skills.SkillsByCategory[category]
		if len(entries) == 0 {
			continue
		}
		match := CategoryMatch{Category: category, TotalSkills: len(entries)}
		for _, entry := range entries {
			if required[entry.Skill] {
				match.MatchCount++
				match.MatchedSkills = append(match.MatchedSkills, entry.Skill)
			}
		}
		if len(jobSkills) > 0 {
			match.MatchPercentage = round2(float64(match.MatchCount) / float64(len(jobSkills)) * 100)
		}
		out = append(out, match)
	}
	return out
}

// skillStrengthIndex averages confidence×frequency across every found skill,
// scaled to 100.
func skillStrengthIndex(tax *parsers.Taxonomy, skills parsers.SkillProfile) float64 {
	total, count := 0.0, 0
	for _, category := range tax.CategoryOrder {
		for _, entry := range skills.SkillsByCategory[category] {
			total += entry.Confidence * float64(entry.Frequency)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return round2(total / float64(count) * 100)
}

func (e *Engine) analyzeExperienceFit(profile *parsers.CandidateProfile, req JobRequirements) ExperienceAnalysis {
	exp := profile.Experience
	actual := exp.TotalExperienceYears

	var sufficiency float64
	switch {
	case actual >= float64(req.MinYears):
		sufficiency = 100
	case req.MinYears > 0:
		sufficiency = math.Min(100, actual/float64(req.MinYears)*100)
	default:
		sufficiency = 50
	}

	density := 0.0
	if len(exp.KeyAchievements) > 0 {
		density = float64(len(exp.KeyAchievements)) / math.Max(1, actual)
	}

	return ExperienceAnalysis{
		Sufficient:         actual >= float64(req.MinYears),
		SufficiencyScore:   round2(sufficiency),
		ProgressionScore:   progressionScore(exp),
		IndustryRelevance:  e.industryRelevance(exp, req),
		LeadershipScore:    e.leadershipScore(exp),
		StabilityScore:     stabilityScore(exp),
		AchievementDensity: round2(density),
		RequiredYears:      req.MinYears,
		ActualYears:        actual,
	}
}

// progressionScore blends stability (max 40), breadth (max 30) and a
// trajectory bonus (15 or 30).
func progressionScore(exp parsers.ExperienceProfile) float64 {
	if len(exp.Positions) == 0 {
		return 0
	}
	avgDuration := exp.TotalExperienceYears / float64(len(exp.Positions))
	stability := math.Min(1, avgDuration/2.5) * 40
	breadth := math.Min(1, float64(len(exp.Positions))/8) * 30
	bonus := 15.0
	if exp.Trajectory == parsers.TrajectoryStable {
		bonus = 30
	}
	return round2(stability + breadth + bonus)
}

func (e *Engine) industryRelevance(exp parsers.ExperienceProfile, req JobRequirements) float64 {
	if len(req.Industries) == 0 || len(exp.IndustrySectors) == 0 {
		return 50
	}
	candidate := map[string]bool{}
	for _, s := range exp.IndustrySectors {
		candidate[s] = true
	}
	overlap := 0
	for _, s := range req.Industries {
		if candidate[s] {
			overlap++
		}
	}
	relevance := float64(overlap)/float64(len(req.Industries))*100 +
		math.Min(20, float64(len(exp.IndustrySectors))*5)
	return round2(math.Min(relevance, 100))
}

// leadershipScore counts leadership evidence: description keywords score one
// point, leadership titles two, each worth LeadershipPoints, capped at 100.
func (e *Engine) leadershipScore(exp parsers.ExperienceProfile) float64 {
	evidence := 0
	for _, position := range exp.Positions {
		description := strings.ToLower(position.Description)
		for _, keyword := range e.tax.LeadershipKeywords {
			if strings.Contains(description, keyword) {
				evidence++
				break
			}
		}
		title := strings.ToLower(position.Title)
		for _, role := range e.tax.LeadershipTitles {
			if strings.Contains(title, role) {
				evidence += 2
				break
			}
		}
	}
	return math.Min(100, float64(evidence)*e.tun.LeadershipPoints)
}

func stabilityScore(exp parsers.ExperienceProfile) float64 {
	if len(exp.Positions) == 0 {
		return 50
	}
	shortTerm := 0
	for _, p := range exp.Positions {
		if p.DurationYears < 1.0 {
			shortTerm++
		}
	}
	ratio := float64(len(exp.Positions)-shortTerm) / float64(len(exp.Positions))
	return round2(ratio * 100)
}

func (e *Engine) analyzeQualificationFit(profile *parsers.CandidateProfile, req JobRequirements) QualificationAnalysis {
	candidateLevel := profile.Qualifications.QualificationLevel
	candidateScore := float64(parsers.LevelScore(candidateLevel))

	// An unstated requirement is neutral, not "no qualification".
	requiredScore := 50.0
	if req.QualificationLevel != parsers.LevelNone {
		requiredScore = float64(parsers.LevelScore(req.QualificationLevel))
	}

	return QualificationAnalysis{
		Sufficient:     candidateScore >= requiredScore,
		Gap:            math.Max(0, requiredScore-candidateScore),
		CandidateScore: candidateScore,
		RequiredScore:  requiredScore,
		FieldRelevance: fieldRelevance(profile.Qualifications, req),
		CandidateLevel: candidateLevel,
		RequiredLevel:  req.QualificationLevel,
	}
}

func fieldRelevance(quals parsers.QualificationSet, req JobRequirements) float64 {
	if len(req.Fields) == 0 || len(quals.FieldsOfStudy) == 0 {
		return 50
	}
	candidate := map[string]bool{}
	for _, f := range quals.FieldsOfStudy {
		candidate[strings.ToLower(f)] = true
	}
	overlap := 0
	for _, f := range req.Fields {
		if candidate[f] {
			overlap++
		}
	}
	relevance := float64(overlap) / float64(len(req.Fields)) * 100
	if len(quals.FieldsOfStudy) > 1 {
		relevance += math.Min(20, float64(len(quals.FieldsOfStudy)-1)*5)
	}
	return round2(math.Min(relevance, 100))
}

func (e *Engine) analyzeCulturalFit(profile *parsers.CandidateProfile, req JobRequirements,
	skill SkillAnalysis, experience ExperienceAnalysis) CulturalAnalysis {

	alignment := math.Min(100, float64(len(req.CultureIndicators))*e.tun.CultureAlignmentPoints)
	adaptability := adaptabilityScore(profile)

	return CulturalAnalysis{
		CultureAlignment:   alignment,
		AdaptabilityScore:  adaptability,
		LongevityPotential: longevityPotential(profile.Experience),
		TeamFit:            round2((skill.ComprehensiveMatchPercentage + experience.SufficiencyScore) / 2),
		Composite:          round2((alignment + adaptability) / 2),
	}
}

func adaptabilityScore(profile *parsers.CandidateProfile) float64 {
	score := 50.0
	score += math.Min(20, float64(len(profile.Experience.IndustrySectors))*5)
	score += math.Min(20, float64(profile.Skills.SkillDiversity)*2)
	if len(profile.Experience.Positions) > 0 {
		score += 10
	}
	score += math.Min(10, float64(len(profile.Experience.CompaniesWorked))*2)
	return math.Min(score, 100)
}

func longevityPotential(exp parsers.ExperienceProfile) float64 {
	if exp.TotalExperienceYears < 2 {
		return 40
	}
	if len(exp.Positions) == 0 {
		return 50
	}
	avg := exp.TotalExperienceYears / float64(len(exp.Positions))
	switch {
	case avg >= 3.0:
		return 90
	case avg >= 2.0:
		return 75
	case avg >= 1.0:
		return 60
	default:
		return 45
	}
}

func (e *Engine) analyzeAchievements(profile *parsers.CandidateProfile) AchievementsAnalysis {
	total := profile.Achievements.Total()
	return AchievementsAnalysis{
		Score:             math.Min(100, float64(total)*e.tun.AchievementPoints),
		Total:             total,
		HasAwards:         len(profile.Achievements.ByCategory(parsers.CategoryAward)) > 0,
		HasCertifications: len(profile.Achievements.ByCategory(parsers.CategoryCertification)) > 0,
		HasPublications:   len(profile.Achievements.ByCategory(parsers.CategoryPublication)) > 0,
	}
}

// recommendation maps the overall score to a hiring tier. The 60s band
// branches on whether skills or experience carry the candidate.
func recommendation(overall float64, skill SkillAnalysis) string {
	switch {
	case overall >= tierTop:
		return "Top candidate - exceptional match with outstanding skills and experience; immediate interview recommended"
	case overall >= tierStrong:
		return "Strong recommend - excellent skills alignment with sufficient experience"
	case overall >= tierRecommend:
		return "Recommend - good overall fit with solid qualifications; worth interviewing"
	case overall >= tierFocused:
		if skill.ComprehensiveMatchPercentage >= 70 {
			return "Skill-focused candidate - strong skills match but limited experience; consider for specialized roles"
		}
		return "Experienced candidate - good experience but some skill gaps; training potential"
	case overall >= tierBorder:
		return "Borderline candidate - moderate fit with development areas; consider for junior positions"
	default:
		return "Not recommended - significant mismatches with role requirements"
	}
}

func interviewPriority(overall float64) string {
	switch {
	case overall >= priorityHigh:
		return "High priority - schedule immediately"
	case overall >= priorityMedium:
		return "Medium priority - schedule within the week"
	case overall >= priorityLow:
		return "Low priority - consider if other candidates are unavailable"
	default:
		return "Not recommended - significant gaps identified"
	}
}

const maxInterviewQuestions = 6

// interviewQuestions builds up to six targeted questions: skill gaps first,
// then experience, career, achievement and industry probes, padded with
// behavioral fallbacks.
func interviewQuestions(profile *parsers.CandidateProfile, skill SkillAnalysis) []string {
	var questions []string

	if len(skill.SkillGaps) > 0 {
		limit := len(skill.SkillGaps)
		if limit > 2 {
			limit = 2
		}
		questions = append(questions, fmt.Sprintf(
			"How would you approach developing skills in %s to meet our requirements?",
			strings.Join(skill.SkillGaps[:limit], ", ")))
	}
	if profile.Experience.TotalExperienceYears < 3 {
		questions = append(questions,
			"What strategies would you use to quickly ramp up in this role given your experience level?")
	}
	if len(profile.Experience.Positions) > 0 {
		questions = append(questions,
			"Can you walk us through your career progression and what motivated your key transitions?")
	}
	if len(profile.Experience.KeyAchievements) > 0 {
		questions = append(questions,
			"Which of your professional achievements are you most proud of and how do they relate to this role?")
	}
	if len(profile.Experience.IndustrySectors) > 0 {
		questions = append(questions, fmt.Sprintf(
			"How has your experience in %s prepared you for this position?",
			profile.Experience.IndustrySectors[0]))
	}
	questions = append(questions,
		"Describe a challenging project you worked on and how you overcame obstacles.",
		"How do you stay current with industry trends and technologies?",
		"What attracted you to this particular role and our company?")

	if len(questions) > maxInterviewQuestions {
		questions = questions[:maxInterviewQuestions]
	}
	return questions
}

const (
	maxStrengths        = 4
	maxWeaknesses       = 3
	maxDevelopmentAreas = 3
)

func strengthsWeaknesses(profile *parsers.CandidateProfile, skill SkillAnalysis) StrengthsWeaknesses {
	var strengths, weaknesses []string

	if skill.ComprehensiveMatchPercentage >= 70 {
		strengths = append(strengths, fmt.Sprintf(
			"Strong skills alignment (%.2f%% match)", skill.ComprehensiveMatchPercentage))
	} else {
		limit := len(skill.SkillGaps)
		if limit > 3 {
			limit = 3
		}
		if limit > 0 {
			weaknesses = append(weaknesses,
				"Skill gaps in: "+strings.Join(skill.SkillGaps[:limit], ", "))
		}
	}

	if profile.Experience.TotalExperienceYears >= 3 {
		strengths = append(strengths, fmt.Sprintf(
			"Substantial professional experience (%.0f years)", profile.Experience.TotalExperienceYears))
	} else {
		weaknesses = append(weaknesses, "Limited professional experience")
	}

	level := profile.Qualifications.QualificationLevel
	if level == parsers.LevelMasters || level == parsers.LevelPhD {
		strengths = append(strengths, "Advanced educational qualifications")
	}
	if profile.Experience.Trajectory == parsers.TrajectoryStable {
		strengths = append(strengths, "Stable career progression")
	}

	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	if len(weaknesses) > maxWeaknesses {
		weaknesses = weaknesses[:maxWeaknesses]
	}
	development := skill.SkillGaps
	if len(development) > maxDevelopmentAreas {
		development = development[:maxDevelopmentAreas]
	}
	return StrengthsWeaknesses{
		Strengths:        strengths,
		Weaknesses:       weaknesses,
		DevelopmentAreas: development,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
