package opportunity

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldscout/interactionintel/internal/models"
)

func questionInsights(n int) []models.AggregatedInsight {
	out := make([]models.AggregatedInsight, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.AggregatedInsight{
			Item:  fmt.Sprintf("How much does option %d cost?", i),
			Count: n - i,
		})
	}
	return out
}

func TestGenerateEmptyInsights(t *testing.T) {
	assert.Empty(t, Generate(models.CombinedInsights{}, nil, ClientContext{}))
}

func TestGenerateFAQPage(t *testing.T) {
	insights := models.CombinedInsights{TopQuestions: questionInsights(5)}

	opportunities := Generate(insights, nil, ClientContext{BusinessName: "Acme Roofing"})

	require.Len(t, opportunities, 1)
	faq := opportunities[0]
	assert.Equal(t, models.OpportunityFAQPage, faq.Type)
	assert.Equal(t, 10, faq.Priority)
	assert.Equal(t, "Frequently Asked Questions | Acme Roofing", faq.Title)
	assert.Len(t, faq.SupportingData, 5)
}

func TestGenerateFAQPageBelowThreshold(t *testing.T) {
	insights := models.CombinedInsights{TopQuestions: questionInsights(4)}
	assert.Empty(t, Generate(insights, nil, ClientContext{}))
}

func TestGenerateFAQPageCapsSupportingQuestions(t *testing.T) {
	insights := models.CombinedInsights{TopQuestions: questionInsights(20)}

	opportunities := Generate(insights, nil, ClientContext{})

	var faq models.ContentOpportunity
	for _, opp := range opportunities {
		if opp.Type == models.OpportunityFAQPage {
			faq = opp
		}
	}
	assert.Len(t, faq.SupportingData, 15)
	assert.Contains(t, faq.Description, "20 real questions")
}

func TestGenerateDefaultBusinessName(t *testing.T) {
	insights := models.CombinedInsights{TopQuestions: questionInsights(5)}

	opportunities := Generate(insights, nil, ClientContext{})

	require.NotEmpty(t, opportunities)
	assert.Equal(t, "Frequently Asked Questions | Your Business", opportunities[0].Title)
}

func TestGenerateBlogPostsFromClusters(t *testing.T) {
	clusters := []models.TopicCluster{
		{TopicLabel: "cost", SuggestedTitle: "Cost Guide", Questions: []string{"a?", "b?"}},
		{TopicLabel: "time", SuggestedTitle: "Time Guide", Questions: []string{"c?", "d?"}},
	}

	opportunities := Generate(models.CombinedInsights{}, clusters, ClientContext{})

	require.Len(t, opportunities, 2)
	assert.Equal(t, models.OpportunityBlogPost, opportunities[0].Type)
	assert.Equal(t, 9, opportunities[0].Priority)
	assert.Equal(t, "Cost Guide", opportunities[0].Title)
	assert.Equal(t, 8, opportunities[1].Priority)
	assert.Equal(t, "Time Guide", opportunities[1].Title)
}

func TestGenerateBlogPostClusterCap(t *testing.T) {
	clusters := make([]models.TopicCluster, 7)
	for i := range clusters {
		clusters[i] = models.TopicCluster{SuggestedTitle: fmt.Sprintf("Guide %d", i)}
	}

	opportunities := Generate(models.CombinedInsights{}, clusters, ClientContext{})

	assert.Len(t, opportunities, 5)
}

func TestGeneratePainPointPosts(t *testing.T) {
	insights := models.CombinedInsights{
		TopPainPoints: []models.AggregatedInsight{
			{Item: "no heat upstairs", Count: 4},
			{Item: "long wait times", Count: 2},
		},
	}

	opportunities := Generate(insights, nil, ClientContext{Geo: "in Austin"})

	require.Len(t, opportunities, 2)
	assert.Equal(t, models.OpportunityPainPointPost, opportunities[0].Type)
	assert.Equal(t, 7, opportunities[0].Priority)
	assert.Equal(t, "How to Solve No Heat Upstairs in Austin", opportunities[0].Title)
	assert.Equal(t, 6, opportunities[1].Priority)
}

func TestGeneratePainPointTitleTrimmedWithoutGeo(t *testing.T) {
	insights := models.CombinedInsights{
		TopPainPoints: []models.AggregatedInsight{{Item: "no heat upstairs", Count: 1}},
	}

	opportunities := Generate(insights, nil, ClientContext{})

	require.Len(t, opportunities, 1)
	assert.Equal(t, "How to Solve No Heat Upstairs", opportunities[0].Title)
}

func TestGenerateServicePages(t *testing.T) {
	insights := models.CombinedInsights{
		TopServices: []models.AggregatedInsight{
			{Item: "Roof Repair", Count: 6},
			{Item: "Gutter Cleaning", Count: 3},
		},
	}

	opportunities := Generate(insights, nil, ClientContext{})

	require.Len(t, opportunities, 2)
	for _, opp := range opportunities {
		assert.Equal(t, models.OpportunityServicePage, opp.Type)
		assert.Equal(t, 6, opp.Priority)
	}
	assert.Equal(t, "Roof Repair Services", opportunities[0].Title)
}

func TestGenerateBlogSeries(t *testing.T) {
	insights := models.CombinedInsights{TopQuestions: questionInsights(10)}

	opportunities := Generate(insights, nil, ClientContext{Geo: "Austin"})

	var series models.ContentOpportunity
	for _, opp := range opportunities {
		if opp.Type == models.OpportunityBlogSeries {
			series = opp
		}
	}
	require.NotZero(t, series.Priority)
	assert.Equal(t, 8, series.Priority)
	assert.Equal(t, 2, series.TotalPosts)
	assert.Equal(t, "Real Questions from Austin Customers", series.Title)
}

func TestGenerateBlogSeriesPostCap(t *testing.T) {
	insights := models.CombinedInsights{TopQuestions: questionInsights(70)}

	opportunities := Generate(insights, nil, ClientContext{})

	for _, opp := range opportunities {
		if opp.Type == models.OpportunityBlogSeries {
			assert.Equal(t, 12, opp.TotalPosts)
		}
	}
}

func TestGeneratePriorityOrdering(t *testing.T) {
	insights := models.CombinedInsights{
		TopQuestions: questionInsights(10),
		TopPainPoints: []models.AggregatedInsight{
			{Item: "no heat upstairs", Count: 3},
			{Item: "long wait times", Count: 2},
		},
		TopServices: []models.AggregatedInsight{{Item: "Roof Repair", Count: 5}},
	}
	clusters := []models.TopicCluster{
		{SuggestedTitle: "Cost Guide"},
		{SuggestedTitle: "Time Guide"},
	}

	opportunities := Generate(insights, clusters, ClientContext{})

	priorities := make([]int, 0, len(opportunities))
	for _, opp := range opportunities {
		priorities = append(priorities, opp.Priority)
	}
	assert.True(t, sort.SliceIsSorted(priorities, func(i, j int) bool {
		return priorities[i] > priorities[j]
	}), "opportunities must be sorted by descending priority, got %v", priorities)

	assert.Equal(t, models.OpportunityFAQPage, opportunities[0].Type)

	// Priority 8 tie: the cluster blog post was generated before the
	// series and stays ahead of it.
	assert.Equal(t, models.OpportunityBlogPost, opportunities[2].Type)
	assert.Equal(t, models.OpportunityBlogSeries, opportunities[3].Type)
}

func TestGenerateDeterministic(t *testing.T) {
	insights := models.CombinedInsights{
		TopQuestions:  questionInsights(12),
		TopServices:   []models.AggregatedInsight{{Item: "Roof Repair", Count: 2}},
		TopPainPoints: []models.AggregatedInsight{{Item: "slow service", Count: 2}},
	}

	first := Generate(insights, nil, ClientContext{BusinessName: "Acme", Geo: "Austin"})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Generate(insights, nil, ClientContext{BusinessName: "Acme", Geo: "Austin"}))
	}
}
