// Package report orchestrates one full intelligence run: analyze every
// interaction, aggregate across sources, cluster topics, and generate
// content opportunities.
package report

import (
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fieldscout/interactionintel/internal/aggregate"
	"github.com/fieldscout/interactionintel/internal/analyzer"
	"github.com/fieldscout/interactionintel/internal/cluster"
	"github.com/fieldscout/interactionintel/internal/models"
	"github.com/fieldscout/interactionintel/internal/opportunity"
)

// Per-source breakdown caps (the combined insights use the aggregate
// package caps).
const (
	sourceTopQuestions  = 10
	sourceTopPainPoints = 5
)

// Request describes one analysis run. Records are already selected by
// the caller (including any day window); display context is supplied,
// never fetched.
type Request struct {
	ClientID     string
	BusinessName string
	Geo          string
	Industry     string
	PeriodDays   int
	Records      []models.InteractionRecord
}

// Build produces the IntelligenceReport for a request. It never fails:
// malformed or empty records degrade to empty collections and unknown
// industries fall back to the union vocabulary.
func Build(req Request) models.IntelligenceReport {
	a := analyzer.New(runIndustry(req))
	analyzed := analyzeAll(a, req.Records)

	bySource := make(map[models.SourceType][]aggregate.AnalyzedInteraction)
	for _, in := range analyzed {
		bySource[in.Source] = append(bySource[in.Source], in)
	}

	results := make([]aggregate.SourceResult, 0, len(models.AllSources))
	for _, src := range models.AllSources {
		results = append(results, aggregate.SourceResult{
			Source:       src,
			Interactions: bySource[src],
		})
	}

	agg := aggregate.Combine(results)
	clusters := cluster.Cluster(agg.Insights.TopQuestions)
	opportunities := opportunity.Generate(agg.Insights, clusters, opportunity.ClientContext{
		BusinessName: req.BusinessName,
		Geo:          req.Geo,
	})

	rep := models.IntelligenceReport{
		ClientID:          req.ClientID,
		PeriodDays:        req.PeriodDays,
		GeneratedAt:       time.Now().UTC(),
		Sources:           sourceBreakdowns(results),
		CombinedInsights:  agg.Insights,
		Clusters:          clusters,
		Opportunities:     opportunities,
		TotalInteractions: agg.TotalInteractions,
		SkippedSources:    agg.SkippedSources,
	}

	slog.Info("[Report] Intelligence report built",
		slog.String("client_id", req.ClientID),
		slog.Int("interactions", rep.TotalInteractions),
		slog.Int("questions", len(rep.CombinedInsights.TopQuestions)),
		slog.Int("opportunities", len(rep.Opportunities)))

	return rep
}

// runIndustry picks the industry string for a run. The request-level
// value wins; when it is absent, the first per-record hint in input
// order stands in. Records tagged by different upstream collectors can
// disagree, and taking the first keeps the choice deterministic.
func runIndustry(req Request) string {
	if strings.TrimSpace(req.Industry) != "" {
		return req.Industry
	}
	for _, rec := range req.Records {
		if strings.TrimSpace(rec.IndustryHint) != "" {
			return rec.IndustryHint
		}
	}
	return ""
}

// analyzeAll maps the analyzer over every record. Each record is
// independent, so the batch fans out over a small worker pool; results
// land in an index-addressed slice and aggregation only starts after
// the join, which keeps first-seen ordering tied to the input order.
func analyzeAll(a *analyzer.Analyzer, records []models.InteractionRecord) []aggregate.AnalyzedInteraction {
	if len(records) == 0 {
		return nil
	}

	analyses := make([]models.InteractionAnalysis, len(records))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(records) {
		workers = len(records)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				analyses[i] = a.Analyze(records[i])
			}
		}()
	}
	for i := range records {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	out := make([]aggregate.AnalyzedInteraction, 0, len(records))
	for i, rec := range records {
		out = append(out, aggregate.AnalyzedInteraction{
			Index:    i,
			Source:   rec.Source,
			Analysis: analyses[i],
		})
	}
	return out
}

// sourceBreakdowns builds the stable per-source slice: every source type
// appears, zero-counted when absent, so downstream consumers can rely on
// the schema.
func sourceBreakdowns(results []aggregate.SourceResult) []models.SourceBreakdown {
	breakdowns := make([]models.SourceBreakdown, 0, len(results))
	for _, res := range results {
		breakdown := models.SourceBreakdown{Source: res.Source}
		if res.Err != nil {
			breakdowns = append(breakdowns, breakdown)
			continue
		}

		questions := aggregate.NewTally()
		keywords := aggregate.NewTally()
		services := aggregate.NewTally()
		painPoints := aggregate.NewTally()
		for _, in := range res.Interactions {
			aggregate.AddAnalysis(questions, keywords, services, painPoints, in.Source, in.Analysis)
		}

		breakdown.Count = len(res.Interactions)
		breakdown.TopQuestions = questions.Ranked(sourceTopQuestions)
		breakdown.TopPainPoints = painPoints.Ranked(sourceTopPainPoints)
		breakdowns = append(breakdowns, breakdown)
	}
	return breakdowns
}
