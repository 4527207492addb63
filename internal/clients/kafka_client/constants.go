package kafka_client

import "time"

const (
	// KAFKA_TOPIC_ANALYSIS_REQUESTS carries AnalysisRequest batches from
	// the intake services (call, chat and lead-form collectors).
	KAFKA_TOPIC_ANALYSIS_REQUESTS = "analysis-requests"
	// KAFKA_TOPIC_INTELLIGENCE_REPORTS carries finished reports to the
	// content-generation and presentation consumers.
	KAFKA_TOPIC_INTELLIGENCE_REPORTS = "intelligence-reports"
)

const (
	MAX_RETRIES = 5
	RETRY_DELAY = 2 * time.Second
)
