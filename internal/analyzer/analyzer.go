// Package analyzer composes the classifiers over one interaction.
package analyzer

import (
	"github.com/fieldscout/interactionintel/internal/classify"
	"github.com/fieldscout/interactionintel/internal/models"
	"github.com/fieldscout/interactionintel/internal/segment"
	"github.com/fieldscout/interactionintel/internal/sentiment"
	"github.com/fieldscout/interactionintel/internal/vocabulary"
)

// Analyzer holds the resolved vocabulary and classifiers for one
// analysis run. Construct it explicitly with New and share it read-only;
// there is no package-level default instance.
type Analyzer struct {
	vocab     vocabulary.Vocabulary
	questions *classify.QuestionClassifier
}

// New builds an Analyzer for an optional industry string. Unknown or
// missing industries fall back to the union vocabulary, so construction
// cannot fail.
func New(industry string) *Analyzer {
	vocab := vocabulary.Resolve(industry)
	return &Analyzer{
		vocab:     vocab,
		questions: classify.NewQuestionClassifier(vocab),
	}
}

// Vocabulary exposes the resolved relevance vocabulary.
func (a *Analyzer) Vocabulary() vocabulary.Vocabulary { return a.vocab }

// Analyze runs every classifier over one interaction. It never fails:
// empty or unsegmentable text yields an analysis with empty collections.
func (a *Analyzer) Analyze(rec models.InteractionRecord) models.InteractionAnalysis {
	analysis := models.InteractionAnalysis{
		Sentiment: sentiment.Score(rec.Text),
	}

	for _, seg := range segment.SplitInteraction(rec) {
		if q, ok := a.questions.Classify(seg, rec); ok {
			analysis.Questions = append(analysis.Questions, q)
		}
		if p, ok := classify.ClassifyPainPoint(seg, rec); ok {
			analysis.PainPoints = append(analysis.PainPoints, p)
		}
	}

	// Keyword and service matching run over the whole text; hit density
	// benefits from context that single segments lose.
	analysis.Keywords = classify.MatchKeywords(rec.Text, a.vocab)
	analysis.Services = classify.MatchServices(rec.Text, a.vocab)

	return analysis
}
