package parsers

import "testing"

func TestAchievementExtractor_Categories(t *testing.T) {
	extractor := NewAchievementExtractor(DefaultTaxonomy())

	text := `Best Employee Award 2022
AWS Certified Solutions Architect
Published a paper in an accounting journal
Dean's List, 2016`

	set := extractor.Extract(text)

	if len(set.ByCategory(CategoryAward)) != 1 {
		t.Errorf("Expected 1 award, got %v", set.ByCategory(CategoryAward))
	}
	if len(set.ByCategory(CategoryCertification)) != 1 {
		t.Errorf("Expected 1 certification, got %v", set.ByCategory(CategoryCertification))
	}
	if len(set.ByCategory(CategoryPublication)) != 1 {
		t.Errorf("Expected 1 publication, got %v", set.ByCategory(CategoryPublication))
	}
	if len(set.ByCategory(CategoryHonor)) != 1 {
		t.Errorf("Expected 1 honor, got %v", set.ByCategory(CategoryHonor))
	}
	if len(set.ByCategory(CategoryPatent)) != 0 {
		t.Errorf("Expected no patents, got %v", set.ByCategory(CategoryPatent))
	}

	for _, record := range set.Records {
		if record.Confidence != achievementConfidence {
			t.Errorf("Expected fixed confidence %f, got %f", achievementConfidence, record.Confidence)
		}
	}
}

func TestAchievementExtractor_MultiCategoryLine(t *testing.T) {
	extractor := NewAchievementExtractor(DefaultTaxonomy())

	// One line hitting two categories counts once per category.
	set := extractor.Extract("Received an award for a certified training program")
	if set.Total() != 2 {
		t.Fatalf("Expected 2 records, got %d", set.Total())
	}
	if len(set.ByCategory(CategoryAward)) != 1 || len(set.ByCategory(CategoryCertification)) != 1 {
		t.Errorf("Expected one award and one certification, got %v", set.Records)
	}
}

func TestAchievementExtractor_Empty(t *testing.T) {
	extractor := NewAchievementExtractor(DefaultTaxonomy())

	set := extractor.Extract("Worked on internal tooling for three years")
	if set.Total() != 0 {
		t.Errorf("Expected no records, got %v", set.Records)
	}
}
