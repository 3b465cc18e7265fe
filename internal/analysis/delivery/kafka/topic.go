// Package kafka holds the broker topology of the analysis domain.
package kafka

const (
	// TopicAnalysisJobs carries enqueued analysis runs to the consumer.
	TopicAnalysisJobs = "voice.analysis.jobs"
	// TopicAnalysisResults announces finished runs.
	TopicAnalysisResults = "voice.analysis.results"
)
