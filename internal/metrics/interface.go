package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMessagesProcessed()
	IncResultsIngested()
	IncDuplicateResults()
	IncCommandsProcessed()
	IncNotifSent()
	IncNotifFailed()
	ObserveIngestDuration(duration float64)
	SetStartupTime(duration float64)
}
