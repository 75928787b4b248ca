package parsers

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const sampleResume = `Tawanda Moyo
Harare, Zimbabwe
Phone: 0772345678

EDUCATION
Bachelor of Science in Computer Science, University of Zimbabwe, 2012 - 2016

SKILLS
• Python
• SQL
• Docker

WORK EXPERIENCE
Software Engineer at Econet, 2016 - 2020
Developed billing integrations for mobile money
Senior Engineer at Cassava, 2020 - Present
Led a platform team of five engineers

Best Innovator Award 2022
AWS Certified Solutions Architect`

func profileClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	}
}

func TestProfileExtractor_FullResume(t *testing.T) {
	extractor := NewProfileExtractor(DefaultTaxonomy(), profileClock())

	profile, err := extractor.ExtractProfile(sampleResume)
	if err != nil {
		t.Fatalf("Extraction failed: %v", err)
	}

	if profile.PhoneReference != "0772345678" {
		t.Errorf("Expected phone '0772345678', got '%s'", profile.PhoneReference)
	}
	if !strings.HasPrefix(profile.ContactCode, "CV-") {
		t.Errorf("Expected a contact code, got '%s'", profile.ContactCode)
	}
	if profile.Qualifications.QualificationLevel != LevelBachelors {
		t.Errorf("Expected bachelors, got '%s'", profile.Qualifications.QualificationLevel)
	}
	if profile.Skills.TotalSkills == 0 {
		t.Error("Expected skills to be extracted")
	}
	if len(profile.Experience.Positions) != 2 {
		t.Errorf("Expected 2 positions, got %d", len(profile.Experience.Positions))
	}
	if profile.Experience.TotalExperienceYears != 8 {
		t.Errorf("Expected 8 total years, got %f", profile.Experience.TotalExperienceYears)
	}
	if profile.Achievements.Total() == 0 {
		t.Error("Expected achievements to be extracted")
	}
	if !profile.ExtractedAt.Equal(profileClock()()) {
		t.Errorf("Expected the fixed clock timestamp, got %v", profile.ExtractedAt)
	}
}

func TestProfileExtractor_Summary(t *testing.T) {
	extractor := NewProfileExtractor(DefaultTaxonomy(), profileClock())

	profile, err := extractor.ExtractProfile(sampleResume)
	if err != nil {
		t.Fatalf("Extraction failed: %v", err)
	}

	summary := profile.Summary
	if !strings.Contains(summary, "Bachelors qualified professional") {
		t.Errorf("Expected qualification in summary, got '%s'", summary)
	}
	if !strings.Contains(summary, "8 years") {
		t.Errorf("Expected experience years in summary, got '%s'", summary)
	}
	if !strings.Contains(summary, "python") {
		t.Errorf("Expected top skills in summary, got '%s'", summary)
	}
}

func TestProfileExtractor_EmptyText(t *testing.T) {
	extractor := NewProfileExtractor(DefaultTaxonomy(), profileClock())

	for _, text := range []string{"", "   ", "\n\t\n"} {
		_, err := extractor.ExtractProfile(text)
		if err == nil {
			t.Fatalf("Expected an error for %q", text)
		}
		var extractionErr *ExtractionError
		if !errors.As(err, &extractionErr) {
			t.Errorf("Expected ExtractionError, got %T", err)
		}
	}
}

func TestProfileExtractor_ExcerptBound(t *testing.T) {
	extractor := NewProfileExtractor(DefaultTaxonomy(), profileClock())

	long := strings.Repeat("python developer experience ", 200)
	profile, err := extractor.ExtractProfile(long)
	if err != nil {
		t.Fatalf("Extraction failed: %v", err)
	}
	if len(profile.RawTextExcerpt) != excerptLimit {
		t.Errorf("Expected excerpt of %d bytes, got %d", excerptLimit, len(profile.RawTextExcerpt))
	}
}

func TestProfileExtractor_DeterministicProfiles(t *testing.T) {
	extractor := NewProfileExtractor(DefaultTaxonomy(), profileClock())

	first, err := extractor.ExtractProfile(sampleResume)
	if err != nil {
		t.Fatalf("Extraction failed: %v", err)
	}
	second, err := extractor.ExtractProfile(sampleResume)
	if err != nil {
		t.Fatalf("Extraction failed: %v", err)
	}

	if first.ContactCode != second.ContactCode {
		t.Error("Contact code changed between runs")
	}
	if first.Summary != second.Summary {
		t.Error("Summary changed between runs")
	}
	if first.Experience.TotalExperienceYears != second.Experience.TotalExperienceYears {
		t.Error("Experience total changed between runs")
	}
}
