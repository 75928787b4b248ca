package scoring

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hirescreen/parsers"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)
	}
}

func extractProfile(t *testing.T, text string) *parsers.CandidateProfile {
	t.Helper()
	extractor := parsers.NewProfileExtractor(parsers.DefaultTaxonomy(), fixedClock())
	profile, err := extractor.ExtractProfile(text)
	if err != nil {
		t.Fatalf("Extraction failed: %v", err)
	}
	return profile
}

const strongResume = `Phone: 0772345678

EDUCATION
Master of Science in Computer Science, University of Zimbabwe, 2010 - 2012

SKILLS
• Python
• SQL
• Docker
• Leadership

WORK EXPERIENCE
Engineering Manager at Econet, 2012 - 2018
Led a team of twelve engineers and managed delivery
Achieved a 30% reduction in infrastructure costs
Principal Engineer at Cassava, 2018 - Present
Developed the payments platform

Best Innovator Award 2021
AWS Certified Solutions Architect`

func TestEngine_SkillMatchFraction(t *testing.T) {
	engine := NewEngine(parsers.DefaultTaxonomy())
	profile := extractProfile(t, "SKILLS\n• Python")

	report := engine.Score(profile, "Looking for python, sql and excel proficiency")

	assert.InDelta(t, 33.33, report.Skill.MatchPercentage, 0.01)
	assert.InDelta(t, 33.33, report.SkillMatch, 0.01)
	assert.Equal(t, []string{"python"}, report.MatchingSkills)
	assert.Equal(t, []string{"sql", "excel"}, report.MissingSkills)
}

func TestEngine_RelatedSkillCredit(t *testing.T) {
	engine := NewEngine(parsers.DefaultTaxonomy())
	profile := extractProfile(t, "SKILLS\n• Django\n• Flask")

	report := engine.Score(profile, "We require python experience")

	// No exact match, two related skills at 0.7 credit each over one
	// required skill, capped at 100.
	assert.Equal(t, 0.0, report.Skill.MatchPercentage)
	assert.InDelta(t, 100.0, report.Skill.ComprehensiveMatchPercentage, 0.01)
	assert.ElementsMatch(t, []string{"django", "flask"}, report.Skill.RelatedSkills)
}

func TestEngine_CompositeWeights(t *testing.T) {
	engine := NewEngine(parsers.DefaultTaxonomy())

	got := engine.composite(80, 60, 70, 50, 40)
	assert.Equal(t, 67.5, got)

	assert.Equal(t, 100.0, engine.composite(100, 100, 100, 100, 100))
	assert.Equal(t, 0.0, engine.composite(0, 0, 0, 0, 0))
}

func TestEngine_NeutralDefaults(t *testing.T) {
	engine := NewEngine(parsers.DefaultTaxonomy())
	profile := extractProfile(t, "General helper based in town")

	report := engine.Score(profile, "General position available")

	// Nothing extracted, nothing required: only the neutral qualification
	// score (30 at weight 0.15) and cultural midpoint (25 at weight 0.10)
	// contribute.
	assert.InDelta(t, 7.0, report.OverallScore, 0.01)
	assert.Equal(t, 2, report.Experience.RequiredYears)
	assert.Equal(t, 50.0, report.Qualification.RequiredScore)
	assert.Equal(t, parsers.LevelNone, report.Qualification.RequiredLevel)
}

func TestEngine_ScoreBounds(t *testing.T) {
	engine := NewEngine(parsers.DefaultTaxonomy())

	resumes := []string{
		"General helper based in town",
		strongResume,
		"SKILLS\n• Python\n• Java\n• SQL\n• Docker\n• AWS",
	}
	jobs := []string{
		"General position available",
		"Senior python developer, 5+ years experience, degree in computer science, fast-paced collaborative startup",
		"We need a certified manager with an mba and 10+ years experience in banking",
	}
	for _, resume := range resumes {
		for _, job := range jobs {
			report := engine.Score(extractProfile(t, resume), job)
			assert.GreaterOrEqual(t, report.OverallScore, 0.0)
			assert.LessOrEqual(t, report.OverallScore, 100.0)
			assert.GreaterOrEqual(t, report.CulturalFit, 0.0)
			assert.LessOrEqual(t, report.CulturalFit, 100.0)
		}
	}
}

func TestEngine_Deterministic(t *testing.T) {
	engine := NewEngine(parsers.DefaultTaxonomy())
	profile := extractProfile(t, strongResume)
	job := "Senior python developer, 5+ years experience, degree in computer science"

	first := engine.Score(profile, job)
	for i := 0; i < 5; i++ {
		again := engine.Score(profile, job)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Run %d produced a different report", i)
		}
	}
}

func TestEngine_StrongCandidate(t *testing.T) {
	engine := NewEngine(parsers.DefaultTaxonomy())
	profile := extractProfile(t, strongResume)

	report := engine.Score(profile, "Senior python developer, 5+ years experience, degree in computer science")

	assert.True(t, report.Experience.Sufficient)
	assert.Equal(t, 100.0, report.ExperienceMatch)
	assert.Equal(t, 85.0, report.QualificationMatch)
	assert.True(t, report.Qualification.Sufficient)
	assert.Greater(t, report.Experience.LeadershipScore, 0.0)
	assert.True(t, report.Achievements.HasAwards)
	assert.True(t, report.Achievements.HasCertifications)
	assert.Contains(t, report.ConfidentialLookup, report.ContactCode)
	assert.NotEmpty(t, report.InterviewQuestions)
	assert.LessOrEqual(t, len(report.InterviewQuestions), maxInterviewQuestions)
}

func TestRecommendationTiers(t *testing.T) {
	strongSkills := SkillAnalysis{ComprehensiveMatchPercentage: 80}
	weakSkills := SkillAnalysis{ComprehensiveMatchPercentage: 30}

	cases := []struct {
		overall float64
		skill   SkillAnalysis
		prefix  string
	}{
		{95, strongSkills, "Top candidate"},
		{90, strongSkills, "Top candidate"},
		{85, strongSkills, "Strong recommend"},
		{75, weakSkills, "Recommend"},
		{65, strongSkills, "Skill-focused candidate"},
		{65, weakSkills, "Experienced candidate"},
		{55, weakSkills, "Borderline candidate"},
		{40, weakSkills, "Not recommended"},
	}
	for _, c := range cases {
		got := recommendation(c.overall, c.skill)
		assert.Containsf(t, got, c.prefix, "overall %.0f", c.overall)
	}
}

func TestInterviewPriorityTiers(t *testing.T) {
	assert.Contains(t, interviewPriority(92), "High priority")
	assert.Contains(t, interviewPriority(85), "High priority")
	assert.Contains(t, interviewPriority(70), "Medium priority")
	assert.Contains(t, interviewPriority(60), "Low priority")
	assert.Contains(t, interviewPriority(40), "Not recommended")
}
