package classify

import (
	"regexp"
	"strings"

	"github.com/fieldscout/interactionintel/internal/models"
)

// Pain statements shorter than this are noise; longer than the max they
// are run-on segments unlikely to be one coherent complaint.
const (
	MinPainPointLength = 20
	MaxPainPointLength = 150
)

var painIndicators = []*regexp.Regexp{
	regexp.MustCompile(`\b(problem|issue|trouble|broken|not working|failed|failing)\b`),
	regexp.MustCompile(`\b(frustrated|annoyed|upset|worried|concerned|scared)\b`),
	regexp.MustCompile(`\b(expensive|costly|too much|afford|budget)\b`),
	regexp.MustCompile(`\b(emergency|urgent|asap|immediately|right away)\b`),
	regexp.MustCompile(`\b(bad|terrible|awful|horrible|worst)\b`),
	regexp.MustCompile(`\b(don't understand|confused|unsure|not sure)\b`),
	regexp.MustCompile(`\b(waited|waiting|delayed|slow)\b`),
	regexp.MustCompile(`\b(scam|rip off|overcharged|dishonest)\b`),
	regexp.MustCompile(`\b(stopped working|quit working|won't start|won't turn on)\b`),
	regexp.MustCompile(`\b(leaking|leak|water damage|flooding)\b`),
	regexp.MustCompile(`\b(no heat|no cooling|no air|not cooling|not heating)\b`),
	regexp.MustCompile(`\b(loud noise|strange noise|making noise)\b`),
}

// ClassifyPainPoint decides whether one cleaned segment expresses a
// customer concern. Agent speech and out-of-domain content (legal,
// courts, custody) are rejected before the indicator patterns run.
func ClassifyPainPoint(seg models.Segment, rec models.InteractionRecord) (models.PainPoint, bool) {
	if isAgentSpeech(seg) {
		return models.PainPoint{}, false
	}

	text := strings.TrimSpace(seg.Text)
	if len(text) < MinPainPointLength || len(text) > MaxPainPointLength {
		return models.PainPoint{}, false
	}

	lower := strings.ToLower(text)
	for _, phrase := range irrelevantDomainPhrases {
		if strings.Contains(lower, phrase) {
			return models.PainPoint{}, false
		}
	}

	for _, pattern := range painIndicators {
		if pattern.MatchString(lower) {
			return models.PainPoint{
				Description: text,
				Source:      rec.Source,
			}, true
		}
	}

	return models.PainPoint{}, false
}
