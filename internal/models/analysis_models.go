package models

import "time"

// ExtractedQuestion is a customer question that survived all four
// classifier gates.
type ExtractedQuestion struct {
	Question  string     `json:"question"`
	Source    SourceType `json:"source"`
	SourceID  string     `json:"source_id"`
	Timestamp time.Time  `json:"timestamp"`
}

// PainPoint is a customer concern or problem statement.
type PainPoint struct {
	Description string     `json:"description"`
	Source      SourceType `json:"source"`
}

// ServiceMention is a normalized, title-cased service label matched from
// the industry service catalog or the generic fallback pattern.
type ServiceMention struct {
	ServiceLabel string `json:"service_label"`
}

// SentimentResult carries the authoritative coarse label plus the VADER
// compound score as advisory severity context.
type SentimentResult struct {
	Label    string  `json:"label"` // positive, neutral, negative
	Compound float64 `json:"compound"`
}

// InteractionAnalysis is the output of analyzing one interaction.
type InteractionAnalysis struct {
	Questions  []ExtractedQuestion `json:"questions"`
	PainPoints []PainPoint         `json:"pain_points"`
	Keywords   []string            `json:"keywords"`
	Services   []ServiceMention    `json:"services"`
	Sentiment  SentimentResult     `json:"sentiment"`
}
