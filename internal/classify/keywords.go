package classify

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fieldscout/interactionintel/internal/models"
	"github.com/fieldscout/interactionintel/internal/vocabulary"
)

// MatchKeywords scans the whole interaction text and returns one hit per
// distinct vocabulary term found. Occurrence counting happens at the
// aggregator, not here.
func MatchKeywords(text string, vocab vocabulary.Vocabulary) []string {
	return vocab.MatchAll(text)
}

// MatchServices extracts structured service mentions from the whole
// interaction text. The resolved industry's catalog is used when known;
// otherwise every catalog applies, in fixed industry order. A generic
// "need X repaired" fallback runs either way.
func MatchServices(text string, vocab vocabulary.Vocabulary) []models.ServiceMention {
	lower := strings.ToLower(text)

	patterns := patternsFor(vocab)

	var services []models.ServiceMention
	for _, pattern := range patterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			label := joinGroups(match)
			if len(label) > 3 {
				services = append(services, models.ServiceMention{ServiceLabel: titleCase(label)})
			}
		}
	}

	for _, match := range genericServicePattern.FindAllStringSubmatch(lower, -1) {
		label := strings.TrimSpace(match[1])
		if len(label) > 3 {
			services = append(services, models.ServiceMention{ServiceLabel: titleCase(label)})
		}
	}

	return services
}

func patternsFor(vocab vocabulary.Vocabulary) []*regexp.Regexp {
	if industry, ok := vocab.Industry(); ok {
		if patterns, exists := servicePatterns[industry]; exists {
			return patterns
		}
	}

	var all []*regexp.Regexp
	for _, industry := range vocabulary.KnownIndustries() {
		all = append(all, servicePatterns[industry]...)
	}
	return all
}

// joinGroups builds the label from the regex capture groups, skipping
// the full match and empty optional groups.
func joinGroups(match []string) string {
	var parts []string
	for _, group := range match[1:] {
		group = strings.TrimSpace(group)
		if group != "" {
			parts = append(parts, group)
		}
	}
	return strings.Join(parts, " ")
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
