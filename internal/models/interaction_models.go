package models

import "time"

// SourceType tags where a customer interaction came from.
type SourceType string

const (
	SourceCall SourceType = "call"
	SourceChat SourceType = "chat"
	SourceForm SourceType = "form"
)

// AllSources in fixed report order. The per-source breakdown always
// carries an entry for each of these, even when the count is zero.
var AllSources = []SourceType{SourceCall, SourceChat, SourceForm}

// InteractionRecord is one customer-facing text artifact. It is created
// upstream and never mutated by the pipeline.
type InteractionRecord struct {
	ID           string     `json:"id"`
	Source       SourceType `json:"source"`
	Text         string     `json:"text"`
	Timestamp    time.Time  `json:"timestamp"`
	IndustryHint string     `json:"industry_hint,omitempty"`
}

// Segment is one cleaned sentence-like unit of an interaction. Speaker
// holds the stripped label ("agent", "caller", ...) when one was present.
type Segment struct {
	Text    string `json:"text"`
	Speaker string `json:"speaker,omitempty"`
}
