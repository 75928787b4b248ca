package parsers

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"time"
)

// IdentityRedactor derives an anonymized, stable reference code for a resume
// so raw names and emails never surface in reports. The same phone number on
// the same calendar day always yields the same code, which is what makes
// duplicate detection work downstream. Codes are deliberately time-sensitive:
// a new day produces a new suffix for phone-based codes.
type IdentityRedactor struct {
	patterns []*regexp.Regexp
	nonDigit *regexp.Regexp
	now      func() time.Time
}

// NewIdentityRedactor builds a redactor over the taxonomy's phone pattern
// cascade. The clock is injectable for deterministic tests.
func NewIdentityRedactor(tax *Taxonomy, now func() time.Time) *IdentityRedactor {
	if now == nil {
		now = time.Now
	}
	return &IdentityRedactor{
		patterns: tax.PhonePatterns,
		nonDigit: regexp.MustCompile(`[^\d+]`),
		now:      now,
	}
}

// ExtractPhone finds the first plausible phone number in the text. Patterns
// are tried most specific first; a candidate wins when its normalized digit
// form is between 7 and 15 characters. Returns "" when nothing qualifies.
func (r *IdentityRedactor) ExtractPhone(text string) string {
	for _, pattern := range r.patterns {
		for _, match := range pattern.FindAllString(text, -1) {
			clean := r.nonDigit.ReplaceAllString(match, "")
			if len(clean) >= 7 && len(clean) <= 15 {
				return clean
			}
		}
	}
	return ""
}

// ContactCode produces the confidential resume code. Phone-based codes carry
// an MMDD suffix; the text-hash fallback does not.
func (r *IdentityRedactor) ContactCode(phone, text string) string {
	if phone != "" {
		sum := sha256.Sum256([]byte(phone))
		digest := strings.ToUpper(hex.EncodeToString(sum[:]))[:8]
		return "CV-" + digest + "-" + r.now().Format("0102")
	}
	prefix := text
	if len(prefix) > 500 {
		prefix = prefix[:500]
	}
	sum := md5.Sum([]byte(prefix))
	return "CV-" + strings.ToUpper(hex.EncodeToString(sum[:]))[:8]
}
