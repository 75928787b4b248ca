package parsers

import "strings"

// headingMaxLen disambiguates a section heading from a sentence that merely
// contains a heading keyword.
const headingMaxLen = 50

// sectionScanner walks resume lines and tracks whether the scan is currently
// inside one labeled section. Each extractor runs its own independent pass
// with its own start/end keyword sets; sections never nest, and a later start
// keyword re-opens a previously closed section (extraction is append-only, so
// re-opening is harmless).
type sectionScanner struct {
	startKeywords []string
	endKeywords   []string
	inSection     bool
}

func newSectionScanner(startKeywords, endKeywords []string) *sectionScanner {
	return &sectionScanner{startKeywords: startKeywords, endKeywords: endKeywords}
}

// observe consumes one trimmed line and reports whether it belongs to the
// section body. Heading lines themselves are not part of the body.
func (s *sectionScanner) observe(line string) bool {
	lower := strings.ToLower(line)

	for _, kw := range s.startKeywords {
		if strings.Contains(lower, kw) {
			s.inSection = true
			return false
		}
	}
	if s.inSection && len(line) < headingMaxLen {
		for _, kw := range s.endKeywords {
			if strings.Contains(lower, kw) {
				s.inSection = false
				return false
			}
		}
	}
	return s.inSection
}
