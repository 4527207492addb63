package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldscout/interactionintel/internal/models"
)

func TestReportToDynamoDBItem(t *testing.T) {
	rep := models.IntelligenceReport{
		ClientID:          "client-42",
		PeriodDays:        30,
		GeneratedAt:       time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		TotalInteractions: 7,
		SkippedSources:    2,
		CombinedInsights: models.CombinedInsights{
			TopQuestions: []models.AggregatedInsight{
				{Item: "How much does a new roof cost?", Count: 3},
			},
		},
	}

	item, err := ReportToDynamoDBItem(rep)
	require.NoError(t, err)

	clientID, ok := item["client_id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "client-42", clientID.Value)

	total, ok := item["total_interactions"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "7", total.Value)

	// Skipped sources is a count, stored as a number.
	skipped, ok := item["skipped_sources"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "2", skipped.Value)

	insights, ok := item["combined_insights"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	var decoded models.CombinedInsights
	require.NoError(t, json.Unmarshal([]byte(insights.Value), &decoded))
	require.Len(t, decoded.TopQuestions, 1)
	assert.Equal(t, "How much does a new roof cost?", decoded.TopQuestions[0].Item)
}

func TestReportToDynamoDBItemOmitsZeroSkippedSources(t *testing.T) {
	item, err := ReportToDynamoDBItem(models.IntelligenceReport{ClientID: "client-7"})
	require.NoError(t, err)

	_, present := item["skipped_sources"]
	assert.False(t, present)
}

func TestOpportunityToDynamoDBItem(t *testing.T) {
	opp := models.ContentOpportunity{
		Type:           models.OpportunityBlogSeries,
		Priority:       8,
		Title:          "Real Questions from Austin Customers",
		Description:    "Monthly blog series answering real customer questions",
		SupportingData: []string{"How much does a new roof cost?"},
		Outline:        []string{"Introduction", "H2: Key Takeaways"},
		TotalPosts:     4,
	}

	item, err := OpportunityToDynamoDBItem("client-42", 3, opp)
	require.NoError(t, err)

	id, ok := item["opportunity_id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "client-42#003", id.Value)

	kind, ok := item["type"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "blog_series", kind.Value)

	priority, ok := item["priority"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "8", priority.Value)

	outline, ok := item["outline"].(*types.AttributeValueMemberL)
	require.True(t, ok)
	require.Len(t, outline.Value, 2)

	posts, ok := item["total_posts"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "4", posts.Value)
}

func TestOpportunityToDynamoDBItemOmitsEmptyOptionals(t *testing.T) {
	item, err := OpportunityToDynamoDBItem("client-42", 0, models.ContentOpportunity{
		Type:        models.OpportunityServicePage,
		Priority:    6,
		Title:       "Roof Repair Services",
		Description: "Enhance service page with a customer Q&A section",
	})
	require.NoError(t, err)

	for _, key := range []string{"supporting_data", "outline", "total_posts"} {
		_, present := item[key]
		assert.False(t, present, "optional attribute %q should be absent", key)
	}
}
