package http

import (
	"net/http"

	"github.com/clarkio/discord-wordle-bot/internal/config"
	"github.com/clarkio/discord-wordle-bot/internal/metrics"
	"github.com/clarkio/discord-wordle-bot/internal/wordle"
)

func NewServer(store wordle.ScoreStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.Router.Handle("GET /wordle/{userId}", Chain(s.UserScoresHandler(), paramsMiddleware))
	s.Router.Handle("GET /wordle/{userId}/{gameNumber}", Chain(s.UserGameScoreHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
