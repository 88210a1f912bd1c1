package processor

import "github.com/clarkio/discord-wordle-bot/internal/metrics"

// Processor drives the ingestion pipeline for parsed game results.
type Processor struct {
	store    Store
	notifier Notifier
	metrics  metrics.Metrics
}
