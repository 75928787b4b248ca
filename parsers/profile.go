package parsers

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// excerptLimit bounds the raw text kept on the profile for audit.
const excerptLimit = 1500

// ExtractionError reports that a document's text was empty or unusable. It is
// a plain error value so batch callers can skip the document and continue.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}

// CandidateProfile is the immutable structured view of one resume. The
// contact code replaces all personally identifying data in downstream
// reports; the phone reference exists only for duplicate detection and
// confidential lookup.
type CandidateProfile struct {
	ContactCode    string            `json:"contact_code"`
	PhoneReference string            `json:"phone_reference,omitempty"`
	Qualifications QualificationSet  `json:"qualifications"`
	Skills         SkillProfile      `json:"skills"`
	Experience     ExperienceProfile `json:"experience"`
	Achievements   AchievementSet    `json:"achievements"`
	Summary        string            `json:"summary"`
	RawTextExcerpt string            `json:"raw_text_excerpt"`
	ExtractedAt    time.Time         `json:"extracted_at"`
}

// ProfileExtractor runs the full text-to-profile pipeline. It holds only
// read-only configuration and is safe for concurrent use across a worker
// pool.
type ProfileExtractor struct {
	redactor       *IdentityRedactor
	qualifications *QualificationExtractor
	skills         *SkillExtractor
	experience     *ExperienceExtractor
	achievements   *AchievementExtractor
	title          cases.Caser
	now            func() time.Time
}

// NewProfileExtractor wires every extractor over one shared taxonomy. Pass a
// nil clock for production use.
func NewProfileExtractor(tax *Taxonomy, now func() time.Time) *ProfileExtractor {
	if now == nil {
		now = time.Now
	}
	return &ProfileExtractor{
		redactor:       NewIdentityRedactor(tax, now),
		qualifications: NewQualificationExtractor(tax),
		skills:         NewSkillExtractor(tax),
		experience:     NewExperienceExtractor(tax, now),
		achievements:   NewAchievementExtractor(tax),
		title:          cases.Title(language.English),
		now:            now,
	}
}

// ExtractProfile turns raw document text into a CandidateProfile. Empty or
// whitespace-only text yields an ExtractionError, never a panic.
func (p *ProfileExtractor) ExtractProfile(text string) (*CandidateProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ExtractionError{Reason: "document text is empty"}
	}

	phone := p.redactor.ExtractPhone(text)
	profile := &CandidateProfile{
		ContactCode:    p.redactor.ContactCode(phone, text),
		PhoneReference: phone,
		Qualifications: p.qualifications.Extract(text),
		Skills:         p.skills.Extract(text),
		Experience:     p.experience.Extract(text),
		Achievements:   p.achievements.Extract(text),
		ExtractedAt:    p.now(),
	}
	profile.Summary = p.summarize(profile)

	excerpt := text
	if len(excerpt) > excerptLimit {
		excerpt = excerpt[:excerptLimit]
	}
	profile.RawTextExcerpt = excerpt
	return profile, nil
}

// summarize builds the one-line professional summary shown with reports.
func (p *ProfileExtractor) summarize(profile *CandidateProfile) string {
	var parts []string

	if level := profile.Qualifications.QualificationLevel; level != LevelNone {
		display := p.title.String(strings.ReplaceAll(string(level), "_", " "))
		parts = append(parts, fmt.Sprintf("%s qualified professional", display))
	}
	if years := profile.Experience.TotalExperienceYears; years > 0 {
		parts = append(parts, fmt.Sprintf("with %.0f years of %s experience",
			years, strings.ToLower(profile.Experience.ExperienceLevel)))
	}
	if top := profile.Skills.TopSkills; len(top) > 0 {
		limit := len(top)
		if limit > 5 {
			limit = 5
		}
		names := make([]string, 0, limit)
		for _, s := range top[:limit] {
			names = append(names, s.Skill)
		}
		parts = append(parts, "specializing in "+strings.Join(names, ", "))
	}
	if sectors := profile.Experience.IndustrySectors; len(sectors) > 0 {
		limit := len(sectors)
		if limit > 3 {
			limit = 3
		}
		parts = append(parts, "across "+strings.Join(sectors[:limit], ", ")+" sectors")
	}
	if len(profile.Achievements.ByCategory(CategoryAward)) > 0 ||
		len(profile.Achievements.ByCategory(CategoryCertification)) > 0 {
		parts = append(parts, "with notable achievements and certifications")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + "."
}
