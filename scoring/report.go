package scoring

import (
	"math"

	"hirescreen/parsers"
)

// SectionScores rates how well each resume section is developed.
type SectionScores struct {
	Experience   float64 `json:"experience"`
	Skills       float64 `json:"skills"`
	Education    float64 `json:"education"`
	Achievements float64 `json:"achievements"`
}

// QualityAssessment rates the document itself, independent of any job.
type QualityAssessment struct {
	OverallScore     float64       `json:"overall_score"`
	SectionScores    SectionScores `json:"section_scores"`
	Strengths        []string      `json:"strengths"`
	Improvements     []string      `json:"improvements"`
	ATSCompatibility float64       `json:"ats_compatibility"`
}

// ScoreReport is the complete explainable screening result for one candidate
// against one job. It is produced fresh per pairing and never cached here.
type ScoreReport struct {
	ContactCode        string `json:"contact_code"`
	ConfidentialLookup string `json:"confidential_lookup"`

	OverallScore       float64 `json:"overall_score"`
	SkillMatch         float64 `json:"skill_match"`
	ExperienceMatch    float64 `json:"experience_match"`
	QualificationMatch float64 `json:"qualification_match"`
	CulturalFit        float64 `json:"cultural_fit"`
	AchievementsImpact float64 `json:"achievements_impact"`

	MatchingSkills    []string        `json:"matching_skills"`
	MissingSkills     []string        `json:"missing_skills"`
	CategoryBreakdown []CategoryMatch `json:"category_breakdown"`

	Recommendation     string              `json:"recommendation"`
	InterviewPriority  string              `json:"interview_priority"`
	InterviewQuestions []string            `json:"interview_questions"`
	Assessment         StrengthsWeaknesses `json:"strengths_weaknesses"`

	Skill          SkillAnalysis         `json:"skill_analysis"`
	Experience     ExperienceAnalysis    `json:"experience_analysis"`
	Qualification  QualificationAnalysis `json:"qualification_analysis"`
	Cultural       CulturalAnalysis      `json:"cultural_analysis"`
	Achievements   AchievementsAnalysis  `json:"achievements_analysis"`
	Quality        QualityAssessment     `json:"quality_assessment"`
	CandidateBrief string                `json:"candidate_brief"`
}

// Quality scoring constants.
const (
	qualityBase      = 65.0
	atsCompatibility = 80.0
)

func (e *Engine) assembleReport(profile *parsers.CandidateProfile, overall float64,
	skill SkillAnalysis, experience ExperienceAnalysis, qualification QualificationAnalysis,
	cultural CulturalAnalysis, achievements AchievementsAnalysis) ScoreReport {

	return ScoreReport{
		ContactCode:        profile.ContactCode,
		ConfidentialLookup: "Use phone number with resume code: " + profile.ContactCode,

		OverallScore:       overall,
		SkillMatch:         skill.ComprehensiveMatchPercentage,
		ExperienceMatch:    experience.SufficiencyScore,
		QualificationMatch: qualification.CandidateScore,
		CulturalFit:        cultural.Composite,
		AchievementsImpact: achievements.Score,

		MatchingSkills:    skill.ExactMatches,
		MissingSkills:     skill.SkillGaps,
		CategoryBreakdown: skill.CategoryBreakdown,

		Recommendation:     recommendation(overall, skill),
		InterviewPriority:  interviewPriority(overall),
		InterviewQuestions: interviewQuestions(profile, skill),
		Assessment:         strengthsWeaknesses(profile, skill),

		Skill:          skill,
		Experience:     experience,
		Qualification:  qualification,
		Cultural:       cultural,
		Achievements:   achievements,
		Quality:        assessQuality(profile),
		CandidateBrief: profile.Summary,
	}
}

// assessQuality rates the document on its own merits: base 65, with bonuses
// for experience depth, skill count, qualifications and achievements, capped
// at 100.
func assessQuality(profile *parsers.CandidateProfile) QualityAssessment {
	score := qualityBase

	years := profile.Experience.TotalExperienceYears
	if years > 2 {
		score += 10
	}
	if years > 5 {
		score += 5
	}

	totalSkills := profile.Skills.TotalSkills
	if totalSkills > 10 {
		score += 10
	}
	if totalSkills > 20 {
		score += 5
	}

	hasQualification := profile.Qualifications.HighestQualification != ""
	if hasQualification {
		score += 10
	}

	notable := len(profile.Achievements.ByCategory(parsers.CategoryAward)) +
		len(profile.Achievements.ByCategory(parsers.CategoryCertification)) +
		len(profile.Achievements.ByCategory(parsers.CategoryHonor))
	if notable > 0 {
		score += math.Min(10, float64(notable)*2)
	}
	score = math.Min(score, 100)

	educationScore := 50.0
	if hasQualification {
		educationScore = 100
	}

	return QualityAssessment{
		OverallScore: score,
		SectionScores: SectionScores{
			Experience:   math.Min(100, years*8+40),
			Skills:       math.Min(100, float64(totalSkills)*3),
			Education:    educationScore,
			Achievements: math.Min(100, float64(notable)*20),
		},
		Strengths:        resumeStrengths(profile),
		Improvements:     resumeImprovements(profile),
		ATSCompatibility: atsCompatibility,
	}
}

func resumeStrengths(profile *parsers.CandidateProfile) []string {
	var strengths []string
	if profile.Experience.TotalExperienceYears >= 3 {
		strengths = append(strengths, "Clear career progression and substantial experience")
	}
	if profile.Skills.TotalSkills >= 15 {
		strengths = append(strengths, "Diverse and comprehensive skill set")
	}
	if profile.Qualifications.HighestQualification != "" {
		strengths = append(strengths, "Well-documented educational background")
	}
	if len(profile.Achievements.ByCategory(parsers.CategoryAward)) > 0 ||
		len(profile.Achievements.ByCategory(parsers.CategoryCertification)) > 0 {
		strengths = append(strengths, "Notable professional achievements and certifications")
	}
	return strengths
}

func resumeImprovements(profile *parsers.CandidateProfile) []string {
	var improvements []string
	if profile.Experience.TotalExperienceYears < 2 {
		improvements = append(improvements, "Could benefit from more detailed project descriptions")
	}
	if profile.Skills.TotalSkills < 8 {
		improvements = append(improvements, "Consider expanding technical and professional skills section")
	}
	if profile.Qualifications.HighestQualification == "" {
		improvements = append(improvements, "Include educational qualifications if applicable")
	}
	return improvements
}
