package parsers

import "testing"

func TestSkillExtractor_BasicMatch(t *testing.T) {
	extractor := NewSkillExtractor(DefaultTaxonomy())

	profile := extractor.Extract("Built services in Python and Java, deployed on AWS.")

	languages := profile.SkillsByCategory["programming_languages"]
	if len(languages) != 2 {
		t.Fatalf("Expected 2 programming languages, got %d", len(languages))
	}
	found := map[string]bool{}
	for _, entry := range languages {
		found[entry.Skill] = true
	}
	if !found["python"] || !found["java"] {
		t.Errorf("Expected python and java, got %v", found)
	}
	if len(profile.SkillsByCategory["cloud_platforms"]) != 1 {
		t.Errorf("Expected aws in cloud_platforms, got %v", profile.SkillsByCategory["cloud_platforms"])
	}
}

func TestSkillExtractor_WholeWordOnly(t *testing.T) {
	extractor := NewSkillExtractor(DefaultTaxonomy())

	// "r" must not match inside other words, "java" not inside "javascript".
	profile := extractor.Extract("A keen reader of literature and nothing more")
	for category, entries := range profile.SkillsByCategory {
		for _, entry := range entries {
			t.Errorf("Unexpected skill '%s' in %s", entry.Skill, category)
		}
	}

	profile = extractor.Extract("Expert in javascript")
	for _, entry := range profile.SkillsByCategory["programming_languages"] {
		if entry.Skill == "java" {
			t.Error("'java' must not match inside 'javascript'")
		}
	}
}

func TestSkillExtractor_FrequencyAndConfidence(t *testing.T) {
	extractor := NewSkillExtractor(DefaultTaxonomy())

	text := `SKILLS
• Python
Used python daily on production workloads.`

	profile := extractor.Extract(text)
	languages := profile.SkillsByCategory["programming_languages"]
	if len(languages) != 1 {
		t.Fatalf("Expected 1 language, got %d", len(languages))
	}

	entry := languages[0]
	if entry.Frequency != 2 {
		t.Errorf("Expected frequency 2, got %d", entry.Frequency)
	}
	// Base 0.5 + section 0.3 + bullet 0.1 + capped frequency bonus 0.1 = 1.0.
	if entry.Confidence != 1.0 {
		t.Errorf("Expected confidence 1.0, got %f", entry.Confidence)
	}
}

func TestSkillExtractor_ConfidenceWithoutContext(t *testing.T) {
	extractor := NewSkillExtractor(DefaultTaxonomy())

	profile := extractor.Extract("Maintains some fortran once a year")
	languages := profile.SkillsByCategory["programming_languages"]
	if len(languages) != 1 {
		t.Fatalf("Expected 1 language, got %d", len(languages))
	}
	if languages[0].Confidence != 0.5 {
		t.Errorf("Expected bare confidence 0.5, got %f", languages[0].Confidence)
	}
}

func TestSkillExtractor_DiversityAndTotals(t *testing.T) {
	extractor := NewSkillExtractor(DefaultTaxonomy())

	profile := extractor.Extract("Python developer with docker, postgresql and strong leadership")

	if profile.TotalSkills != 4 {
		t.Errorf("Expected 4 skills, got %d", profile.TotalSkills)
	}
	if profile.SkillDiversity != 4 {
		t.Errorf("Expected 4 categories, got %d", profile.SkillDiversity)
	}
	if profile.TotalOccurrences != 4 {
		t.Errorf("Expected 4 occurrences, got %d", profile.TotalOccurrences)
	}
	if len(profile.CategoriesPresent) != 4 {
		t.Errorf("Expected 4 categories present, got %v", profile.CategoriesPresent)
	}
}

func TestSkillExtractor_TopSkillsLimitAndOrder(t *testing.T) {
	extractor := NewSkillExtractor(DefaultTaxonomy())

	text := `SKILLS
python java javascript typescript sql html css react angular docker
kubernetes aws azure jenkins jira excel terraform mysql mongodb redis
python python python`

	profile := extractor.Extract(text)
	if len(profile.TopSkills) != topSkillLimit {
		t.Fatalf("Expected %d top skills, got %d", topSkillLimit, len(profile.TopSkills))
	}
	if profile.TopSkills[0].Skill != "python" {
		t.Errorf("Expected python first by confidence×frequency, got '%s'", profile.TopSkills[0].Skill)
	}
	for i := 1; i < len(profile.TopSkills); i++ {
		prev := profile.TopSkills[i-1]
		cur := profile.TopSkills[i]
		if prev.Confidence*float64(prev.Frequency) < cur.Confidence*float64(cur.Frequency) {
			t.Errorf("Top skills out of order at %d: %v before %v", i, prev, cur)
		}
	}
}

func TestSkillExtractor_Deterministic(t *testing.T) {
	extractor := NewSkillExtractor(DefaultTaxonomy())
	text := "python sql excel docker leadership communication"

	first := extractor.Extract(text)
	for i := 0; i < 5; i++ {
		again := extractor.Extract(text)
		if len(again.TopSkills) != len(first.TopSkills) {
			t.Fatal("Top skill count changed between runs")
		}
		for j := range first.TopSkills {
			if again.TopSkills[j] != first.TopSkills[j] {
				t.Fatalf("Run %d: top skill %d changed: %v vs %v", i, j, again.TopSkills[j], first.TopSkills[j])
			}
		}
		if len(again.CategoriesPresent) != len(first.CategoriesPresent) {
			t.Fatal("Category count changed between runs")
		}
		for j := range first.CategoriesPresent {
			if again.CategoriesPresent[j] != first.CategoriesPresent[j] {
				t.Fatal("Category order changed between runs")
			}
		}
	}
}
