// Package opportunity turns aggregated insights and topic clusters into
// a prioritized list of typed content opportunities.
package opportunity

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fieldscout/interactionintel/internal/models"
)

// Rule thresholds and caps.
const (
	faqMinQuestions     = 5
	faqMaxQuestions     = 15
	blogPostMaxClusters = 5
	painPostMax         = 3
	servicePageMax      = 5
	seriesMinQuestions  = 10
	seriesMaxPosts      = 12
)

// ClientContext is display context supplied by the caller; nothing is
// fetched here.
type ClientContext struct {
	BusinessName string
	Geo          string
}

// Generate evaluates each rule independently and returns the union,
// sorted descending by priority with generation order breaking ties.
// Given fixed inputs the output ordering is byte-identical across runs.
func Generate(insights models.CombinedInsights, clusters []models.TopicCluster, client ClientContext) []models.ContentOpportunity {
	business := client.BusinessName
	if business == "" {
		business = "Your Business"
	}

	var opportunities []models.ContentOpportunity

	if len(insights.TopQuestions) >= faqMinQuestions {
		questions := make([]string, 0, faqMaxQuestions)
		for i, q := range insights.TopQuestions {
			if i >= faqMaxQuestions {
				break
			}
			questions = append(questions, q.Item)
		}
		opportunities = append(opportunities, models.ContentOpportunity{
			Type:           models.OpportunityFAQPage,
			Priority:       10,
			Title:          fmt.Sprintf("Frequently Asked Questions | %s", business),
			Description:    fmt.Sprintf("FAQ page with %d real questions from customers", len(insights.TopQuestions)),
			SupportingData: questions,
		})
	}

	for i, c := range clusters {
		if i >= blogPostMaxClusters {
			break
		}
		opportunities = append(opportunities, models.ContentOpportunity{
			Type:           models.OpportunityBlogPost,
			Priority:       9 - i,
			Title:          c.SuggestedTitle,
			Description:    fmt.Sprintf("Blog answering %d related customer questions", len(c.Questions)),
			SupportingData: append([]string(nil), c.Questions...),
			Outline:        append([]string(nil), c.Outline...),
		})
	}

	for i, pain := range insights.TopPainPoints {
		if i >= painPostMax {
			break
		}
		opportunities = append(opportunities, models.ContentOpportunity{
			Type:           models.OpportunityPainPointPost,
			Priority:       7 - i,
			Title:          strings.TrimSpace(fmt.Sprintf("How to Solve %s %s", cases.Title(language.English).String(pain.Item), client.Geo)),
			Description:    fmt.Sprintf("Address common customer pain point: %s", pain.Item),
			SupportingData: []string{pain.Item},
		})
	}

	for i, svc := range insights.TopServices {
		if i >= servicePageMax {
			break
		}
		opportunities = append(opportunities, models.ContentOpportunity{
			Type:        models.OpportunityServicePage,
			Priority:    6,
			Title:       strings.TrimSpace(fmt.Sprintf("%s Services %s", svc.Item, client.Geo)),
			Description: "Enhance service page with a customer Q&A section",
			SupportingData: []string{
				"What Customers Ask",
				"Common Concerns",
				"What to Expect",
				"Pricing FAQ",
			},
		})
	}

	if len(insights.TopQuestions) >= seriesMinQuestions {
		totalPosts := len(insights.TopQuestions) / 5
		if totalPosts > seriesMaxPosts {
			totalPosts = seriesMaxPosts
		}
		opportunities = append(opportunities, models.ContentOpportunity{
			Type:        models.OpportunityBlogSeries,
			Priority:    8,
			Title:       strings.TrimSpace(fmt.Sprintf("Real Questions from %s Customers", client.Geo)),
			Description: "Monthly blog series answering real customer questions",
			TotalPosts:  totalPosts,
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].Priority > opportunities[j].Priority
	})
	return opportunities
}
