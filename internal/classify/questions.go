// Package classify holds the deterministic rule classifiers: customer
// questions, pain points, and keyword/service matching.
package classify

import (
	"regexp"
	"strings"

	"github.com/fieldscout/interactionintel/internal/models"
	"github.com/fieldscout/interactionintel/internal/segment"
	"github.com/fieldscout/interactionintel/internal/vocabulary"
)

// MinQuestionLength is the floor (after speaker-label stripping) below
// which a segment cannot be a meaningful question.
const MinQuestionLength = 15

var questionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(how much|how long|how do|how can|how does)\b`),
	regexp.MustCompile(`\b(what is|what are|what does|what do|what's)\b`),
	regexp.MustCompile(`\b(when do|when can|when will|when should)\b`),
	regexp.MustCompile(`\b(where do|where can|where is)\b`),
	regexp.MustCompile(`\b(why do|why does|why is|why should)\b`),
	regexp.MustCompile(`\b(can you|can i|could you|could i|will you)\b`),
	regexp.MustCompile(`\b(do you|does it|is it|is there|are there)\b`),
	regexp.MustCompile(`\b(should i|would you|is this)\b`),
	regexp.MustCompile(`\?`),
}

// QuestionClassifier applies the four ordered gates that separate real
// customer questions from intake scripts and off-topic chatter. Raw
// "looks like a question" heuristics drown in agent noise ("What is your
// phone number?"); the exclusion and relevance gates are what make the
// output usable as content topics.
type QuestionClassifier struct {
	vocab vocabulary.Vocabulary
}

func NewQuestionClassifier(vocab vocabulary.Vocabulary) *QuestionClassifier {
	return &QuestionClassifier{vocab: vocab}
}

// Classify runs one cleaned segment through the gates. The first failing
// gate rejects it; a pass emits a normalized ExtractedQuestion.
func (c *QuestionClassifier) Classify(seg models.Segment, rec models.InteractionRecord) (models.ExtractedQuestion, bool) {
	text := strings.TrimSpace(seg.Text)
	if len(text) < MinQuestionLength {
		return models.ExtractedQuestion{}, false
	}

	lower := strings.ToLower(text)
	for _, phrase := range excludedQuestionPhrases {
		if strings.Contains(lower, phrase) {
			return models.ExtractedQuestion{}, false
		}
	}

	if !matchesQuestionPattern(lower) {
		return models.ExtractedQuestion{}, false
	}

	if !c.vocab.Contains(lower) {
		return models.ExtractedQuestion{}, false
	}

	if !strings.HasSuffix(text, "?") {
		text += "?"
	}

	return models.ExtractedQuestion{
		Question:  text,
		Source:    rec.Source,
		SourceID:  rec.ID,
		Timestamp: rec.Timestamp,
	}, true
}

func matchesQuestionPattern(lower string) bool {
	for _, pattern := range questionPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

// isAgentSpeech reports whether a segment belongs to the business side:
// labeled agent speech or a canned greeting.
func isAgentSpeech(seg models.Segment) bool {
	if segment.IsAgent(seg.Speaker) {
		return true
	}
	lower := strings.ToLower(seg.Text)
	for _, greeting := range cannedGreetings {
		if strings.Contains(lower, greeting) {
			return true
		}
	}
	return false
}
