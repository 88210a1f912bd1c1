package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	MessagesProcessed  prometheus.Counter
	ResultsIngested    prometheus.Counter
	DuplicateResults   prometheus.Counter
	CommandsProcessed  prometheus.Counter
	NotifSent          prometheus.Counter
	NotifFailed        prometheus.Counter
	IngestDuration     prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
