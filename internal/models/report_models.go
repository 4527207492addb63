package models

import "time"

// AggregatedInsight is one normalized item (question, pain point, keyword
// or service) counted across every analyzed interaction. Item keeps the
// first-seen original casing for display.
type AggregatedInsight struct {
	Item    string       `json:"item"`
	Count   int          `json:"count"`
	Sources []SourceType `json:"sources"`
}

// SourceBreakdown is the per-source slice of the report. Absent sources
// still get an entry with a zero count so the schema stays stable.
type SourceBreakdown struct {
	Source        SourceType          `json:"source"`
	Count         int                 `json:"count"`
	TopQuestions  []AggregatedInsight `json:"top_questions"`
	TopPainPoints []AggregatedInsight `json:"top_pain_points"`
}

// CombinedInsights merges every source after aggregation.
type CombinedInsights struct {
	TopQuestions  []AggregatedInsight `json:"top_questions"`
	TopKeywords   []AggregatedInsight `json:"top_keywords"`
	TopServices   []AggregatedInsight `json:"top_services"`
	TopPainPoints []AggregatedInsight `json:"top_pain_points"`
}

// TopicCluster groups >= 2 aggregated questions sharing a topic keyword
// set, with a synthesized title and outline for one blog post.
type TopicCluster struct {
	TopicLabel     string   `json:"topic_label"`
	Questions      []string `json:"member_questions"`
	Keywords       []string `json:"keywords"`
	SuggestedTitle string   `json:"suggested_title"`
	Outline        []string `json:"outline"`
}

// OpportunityType enumerates the content recommendation kinds.
type OpportunityType string

const (
	OpportunityFAQPage       OpportunityType = "faq_page"
	OpportunityBlogPost      OpportunityType = "blog_post"
	OpportunityBlogSeries    OpportunityType = "blog_series"
	OpportunityServicePage   OpportunityType = "service_page"
	OpportunityPainPointPost OpportunityType = "pain_point_post"
)

// ContentOpportunity is a typed, prioritized recommendation derived from
// the aggregated insights. Priority runs 1-10, 10 highest.
type ContentOpportunity struct {
	Type           OpportunityType `json:"type"`
	Priority       int             `json:"priority"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	SupportingData []string        `json:"supporting_data,omitempty"`
	Outline        []string        `json:"outline,omitempty"`
	TotalPosts     int             `json:"total_posts,omitempty"`
}

// IntelligenceReport is the top-level pipeline output.
type IntelligenceReport struct {
	ClientID          string               `json:"client_id"`
	PeriodDays        int                  `json:"period_days"`
	GeneratedAt       time.Time            `json:"generated_at"`
	Sources           []SourceBreakdown    `json:"sources"`
	CombinedInsights  CombinedInsights     `json:"combined_insights"`
	Clusters          []TopicCluster       `json:"clusters"`
	Opportunities     []ContentOpportunity `json:"content_opportunities"`
	TotalInteractions int                  `json:"total_interactions"`
	SkippedSources    int                  `json:"skipped_sources"`
}

// AnalysisRequest is the wire shape consumed from the analysis-requests
// topic. Records are selected (including any day window) by the caller.
type AnalysisRequest struct {
	RequestID    string              `json:"request_id"`
	ClientID     string              `json:"client_id"`
	BusinessName string              `json:"business_name"`
	Geo          string              `json:"geo,omitempty"`
	Industry     string              `json:"industry,omitempty"`
	PeriodDays   int                 `json:"period_days,omitempty"`
	Records      []InteractionRecord `json:"records"`
}
