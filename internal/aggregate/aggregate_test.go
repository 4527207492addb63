package aggregate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldscout/interactionintel/internal/models"
)

func TestTallyGroupsCaseInsensitively(t *testing.T) {
	tally := NewTally()
	tally.Add("Roof Repair", models.SourceCall)
	tally.Add("roof repair", models.SourceChat)
	tally.Add("  ROOF REPAIR  ", models.SourceCall)

	ranked := tally.Ranked(0)
	require.Len(t, ranked, 1)
	assert.Equal(t, "Roof Repair", ranked[0].Item, "first-seen casing wins")
	assert.Equal(t, 3, ranked[0].Count)
	assert.Equal(t, []models.SourceType{models.SourceCall, models.SourceChat}, ranked[0].Sources)
}

func TestTallyIgnoresEmptyItems(t *testing.T) {
	tally := NewTally()
	tally.Add("", models.SourceCall)
	tally.Add("   ", models.SourceCall)
	assert.Zero(t, tally.Len())
}

func TestRankedOrdering(t *testing.T) {
	tally := NewTally()
	tally.Add("beta", models.SourceCall)
	tally.Add("alpha", models.SourceCall)
	tally.Add("alpha", models.SourceCall)
	tally.Add("gamma", models.SourceCall)

	ranked := tally.Ranked(0)

	require.Len(t, ranked, 3)
	assert.Equal(t, "alpha", ranked[0].Item, "highest count first")
	assert.Equal(t, "beta", ranked[1].Item, "ties keep first-seen order")
	assert.Equal(t, "gamma", ranked[2].Item)
}

func TestRankedCap(t *testing.T) {
	tally := NewTally()
	for i := 0; i < 50; i++ {
		tally.Add(fmt.Sprintf("keyword-%02d", i), models.SourceForm)
	}

	assert.Len(t, tally.Ranked(TopKeywordsCap), TopKeywordsCap)
	assert.Len(t, tally.Ranked(0), 50, "zero limit means uncapped")
}

func analysisWithKeyword(kw string) models.InteractionAnalysis {
	return models.InteractionAnalysis{Keywords: []string{kw}}
}

func TestCombineSkipsFailedSources(t *testing.T) {
	results := []SourceResult{
		{
			Source: models.SourceCall,
			Interactions: []AnalyzedInteraction{
				{Index: 0, Source: models.SourceCall, Analysis: analysisWithKeyword("roof")},
			},
		},
		{
			Source: models.SourceChat,
			Err:    errors.New("chat export unavailable"),
		},
		{Source: models.SourceForm},
	}

	agg := Combine(results)

	assert.Equal(t, 1, agg.TotalInteractions)
	assert.Equal(t, 1, agg.SkippedSources)
	require.Len(t, agg.Insights.TopKeywords, 1)
	assert.Equal(t, "roof", agg.Insights.TopKeywords[0].Item)
}

func TestCombineTieBreaksOnOriginalOrder(t *testing.T) {
	// The call batch holds records 0 and 2, the chat batch record 1.
	// However the batches are arranged, ties must resolve by the original
	// record order: "first" (index 1) before "second" (index 2).
	results := []SourceResult{
		{
			Source: models.SourceCall,
			Interactions: []AnalyzedInteraction{
				{Index: 2, Source: models.SourceCall, Analysis: analysisWithKeyword("second")},
				{Index: 0, Source: models.SourceCall, Analysis: analysisWithKeyword("winner")},
			},
		},
		{
			Source: models.SourceChat,
			Interactions: []AnalyzedInteraction{
				{Index: 1, Source: models.SourceChat, Analysis: analysisWithKeyword("first")},
			},
		},
	}
	results[0].Interactions[1].Analysis.Keywords = append(
		results[0].Interactions[1].Analysis.Keywords, "winner")

	agg := Combine(results)

	require.Len(t, agg.Insights.TopKeywords, 3)
	assert.Equal(t, "winner", agg.Insights.TopKeywords[0].Item)
	assert.Equal(t, "first", agg.Insights.TopKeywords[1].Item)
	assert.Equal(t, "second", agg.Insights.TopKeywords[2].Item)
}

func TestCombineEmpty(t *testing.T) {
	agg := Combine(nil)

	assert.Zero(t, agg.TotalInteractions)
	assert.Zero(t, agg.SkippedSources)
	assert.Empty(t, agg.Insights.TopQuestions)
	assert.Empty(t, agg.Insights.TopKeywords)
	assert.Empty(t, agg.Insights.TopServices)
	assert.Empty(t, agg.Insights.TopPainPoints)
}

func TestAddAnalysisFoldsEveryCollection(t *testing.T) {
	questions := NewTally()
	keywords := NewTally()
	services := NewTally()
	painPoints := NewTally()

	AddAnalysis(questions, keywords, services, painPoints, models.SourceForm, models.InteractionAnalysis{
		Questions:  []models.ExtractedQuestion{{Question: "How much does it cost?"}},
		PainPoints: []models.PainPoint{{Description: "the unit keeps failing"}},
		Keywords:   []string{"cost", "repair"},
		Services:   []models.ServiceMention{{ServiceLabel: "Roof Repair"}},
	})

	assert.Equal(t, 1, questions.Len())
	assert.Equal(t, 2, keywords.Len())
	assert.Equal(t, 1, services.Len())
	assert.Equal(t, 1, painPoints.Len())
}
