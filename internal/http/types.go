package http

import (
	"net/http"

	"github.com/clarkio/discord-wordle-bot/internal/config"
	"github.com/clarkio/discord-wordle-bot/internal/metrics"
	"github.com/clarkio/discord-wordle-bot/internal/wordle"
)

type Server struct {
	Store          wordle.ScoreStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
