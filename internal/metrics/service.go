package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		MessagesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_messages_processed_total",
			Help: "The total number of channel messages seen by the bot.",
		}),
		ResultsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_results_ingested_total",
			Help: "The total number of wordle results persisted.",
		}),
		DuplicateResults: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_duplicate_results_total",
			Help: "The total number of re-submitted results ignored as duplicates.",
		}),
		CommandsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_commands_processed_total",
			Help: "The total number of bot commands dispatched.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_notifications_sent_total",
			Help: "The total number of Discord notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_notifications_failed_total",
			Help: "The total number of Discord notifications that failed to send.",
		}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordle_ingest_duration_seconds",
			Help:    "The duration of individual result ingestions.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wordle_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MessagesProcessed,
		s.ResultsIngested,
		s.DuplicateResults,
		s.CommandsProcessed,
		s.NotifSent,
		s.NotifFailed,
		s.IngestDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMessagesProcessed() {
	s.MessagesProcessed.Inc()
}

func (s *Service) IncResultsIngested() {
	s.ResultsIngested.Inc()
}

func (s *Service) IncDuplicateResults() {
	s.DuplicateResults.Inc()
}

func (s *Service) IncCommandsProcessed() {
	s.CommandsProcessed.Inc()
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) ObserveIngestDuration(duration float64) {
	s.IngestDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
