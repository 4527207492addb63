// Package sentiment classifies whole-interaction polarity. The coarse
// word-count label is the authoritative, fully deterministic signal; the
// VADER compound score rides along as severity context for pain points.
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/fieldscout/interactionintel/internal/models"
)

const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

var positiveWords = []string{
	"thank", "great", "excellent", "happy", "satisfied",
	"recommend", "best", "wonderful", "appreciate",
}

var negativeWords = []string{
	"problem", "issue", "terrible", "awful", "worst",
	"frustrated", "angry", "disappointed", "horrible",
}

var analyzer = govader.NewSentimentIntensityAnalyzer()

// Score classifies the full interaction text. Positive requires the
// positive-word count to beat the negative count by more than one, and
// the reverse for negative; everything else is neutral.
func Score(text string) models.SentimentResult {
	lower := strings.ToLower(text)

	var positive, negative int
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}

	label := LabelNeutral
	switch {
	case positive > negative+1:
		label = LabelPositive
	case negative > positive+1:
		label = LabelNegative
	}

	result := models.SentimentResult{Label: label}
	if strings.TrimSpace(text) != "" {
		result.Compound = analyzer.PolarityScores(text).Compound
	}
	return result
}
