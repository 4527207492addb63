// Package aggregate merges per-interaction analyses across sources,
// counting and ranking normalized items.
package aggregate

import (
	"sort"
	"strings"

	"github.com/fieldscout/interactionintel/internal/models"
)

// Output caps for the combined insights, applied after sorting.
const (
	TopQuestionsCap  = 25
	TopKeywordsCap   = 40
	TopServicesCap   = 15
	TopPainPointsCap = 10
)

// AnalyzedInteraction pairs one interaction's analysis with its position
// in the original record list. Tie-breaking by first-seen order is
// defined against that original ordering, never worker-completion order.
type AnalyzedInteraction struct {
	Index    int
	Source   models.SourceType
	Analysis models.InteractionAnalysis
}

// SourceResult is one source's analysis outcome. A failed source carries
// its error and is skipped by Combine, which counts the skip instead of
// swallowing it.
type SourceResult struct {
	Source       models.SourceType
	Interactions []AnalyzedInteraction
	Err          error
}

// Aggregation is the combined, ranked view over every Ok source.
type Aggregation struct {
	Insights          models.CombinedInsights
	TotalInteractions int
	SkippedSources    int
}

// Tally counts normalized items while remembering first-seen order and
// first-seen display casing. Ranking is a stable sort over insertion
// order, so ties keep first-seen order. Opportunity titles derive from
// rank position and must not wobble between runs.
type Tally struct {
	order   []string
	entries map[string]*tallyEntry
}

type tallyEntry struct {
	display string
	count   int
	sources map[models.SourceType]struct{}
}

func NewTally() *Tally {
	return &Tally{entries: make(map[string]*tallyEntry)}
}

// Add records one occurrence of item from the given source. The
// lower-cased text is the grouping key; the original casing of the first
// occurrence is kept for display.
func (t *Tally) Add(item string, source models.SourceType) {
	key := strings.ToLower(strings.TrimSpace(item))
	if key == "" {
		return
	}

	e, ok := t.entries[key]
	if !ok {
		e = &tallyEntry{
			display: strings.TrimSpace(item),
			sources: make(map[models.SourceType]struct{}),
		}
		t.entries[key] = e
		t.order = append(t.order, key)
	}
	e.count++
	e.sources[source] = struct{}{}
}

// AddAnalysis folds every extracted item of one analysis into the four
// tallies.
func AddAnalysis(questions, keywords, services, painPoints *Tally, src models.SourceType, analysis models.InteractionAnalysis) {
	for _, q := range analysis.Questions {
		questions.Add(q.Question, src)
	}
	for _, p := range analysis.PainPoints {
		painPoints.Add(p.Description, src)
	}
	for _, kw := range analysis.Keywords {
		keywords.Add(kw, src)
	}
	for _, svc := range analysis.Services {
		services.Add(svc.ServiceLabel, src)
	}
}

// Ranked returns the insights sorted descending by count, first-seen
// order breaking ties, capped at limit (0 means uncapped).
func (t *Tally) Ranked(limit int) []models.AggregatedInsight {
	insights := make([]models.AggregatedInsight, 0, len(t.order))
	for _, key := range t.order {
		e := t.entries[key]
		insights = append(insights, models.AggregatedInsight{
			Item:    e.display,
			Count:   e.count,
			Sources: orderedSources(e.sources),
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Count > insights[j].Count
	})

	if limit > 0 && len(insights) > limit {
		insights = insights[:limit]
	}
	return insights
}

// Len reports the number of distinct items.
func (t *Tally) Len() int { return len(t.order) }

func orderedSources(set map[models.SourceType]struct{}) []models.SourceType {
	var out []models.SourceType
	for _, src := range models.AllSources {
		if _, ok := set[src]; ok {
			out = append(out, src)
		}
	}
	return out
}

// Combine folds every Ok source into one ranked Aggregation. Interactions
// are re-ordered by their original index before counting, so first-seen
// ordering (and therefore every tie-break) matches the input record
// order regardless of how the sources were batched or parallelized.
func Combine(results []SourceResult) Aggregation {
	agg := Aggregation{}

	var ordered []AnalyzedInteraction
	for _, res := range results {
		if res.Err != nil {
			agg.SkippedSources++
			continue
		}
		ordered = append(ordered, res.Interactions...)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})
	agg.TotalInteractions = len(ordered)

	questions := NewTally()
	keywords := NewTally()
	services := NewTally()
	painPoints := NewTally()
	for _, in := range ordered {
		AddAnalysis(questions, keywords, services, painPoints, in.Source, in.Analysis)
	}

	agg.Insights = models.CombinedInsights{
		TopQuestions:  questions.Ranked(TopQuestionsCap),
		TopKeywords:   keywords.Ranked(TopKeywordsCap),
		TopServices:   services.Ranked(TopServicesCap),
		TopPainPoints: painPoints.Ranked(TopPainPointsCap),
	}
	return agg
}
