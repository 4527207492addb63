package classify

import (
	"fmt"
	"strings"
)

// exclusionOverlapAllowlist names exclusion phrases that intentionally
// contain a universal relevance keyword. Each entry was reviewed: the
// full phrase is agent intake speech even though a keyword appears
// inside it ("does that time work" vs "time", "get you scheduled" vs
// "schedule", and so on).
var exclusionOverlapAllowlist = map[string]bool{
	"good morning":             true,
	"good afternoon":           true,
	"good evening":             true,
	"how do you spell":         true,
	"when were you born":       true,
	"when would you like":      true,
	"what time works":          true,
	"does that time work":      true,
	"morning or afternoon":     true,
	"looking at a time":        true,
	"let me get you scheduled": true,
	"get you scheduled":        true,
	"service address":          true,
	"form of payment":          true,
	"how does that sound":      true,
}

// ValidateTables sanity-checks the static lexicons. The exclusion and
// pain tables are configuration data, and an exclusion phrase that
// shadows a legitimate customer question silently eats content topics,
// so keyword overlaps must be declared in the allowlist rather than
// slip in unreviewed.
func ValidateTables(universalKeywords []string) error {
	seen := make(map[string]bool, len(excludedQuestionPhrases))
	for _, phrase := range excludedQuestionPhrases {
		if phrase == "" {
			return fmt.Errorf("classify: empty exclusion phrase")
		}
		if phrase != strings.ToLower(phrase) {
			return fmt.Errorf("classify: exclusion phrase %q must be lower case", phrase)
		}
		if seen[phrase] {
			return fmt.Errorf("classify: duplicate exclusion phrase %q", phrase)
		}
		seen[phrase] = true
	}

	for _, phrase := range excludedQuestionPhrases {
		if exclusionOverlapAllowlist[phrase] {
			continue
		}
		for _, kw := range universalKeywords {
			if len(kw) >= 4 && strings.Contains(phrase, kw) {
				return fmt.Errorf(
					"classify: exclusion phrase %q contains relevance keyword %q; add to allowlist if intentional",
					phrase, kw)
			}
		}
	}

	for _, phrase := range irrelevantDomainPhrases {
		if phrase == "" || phrase != strings.ToLower(phrase) {
			return fmt.Errorf("classify: bad irrelevant-domain phrase %q", phrase)
		}
	}

	return nil
}
