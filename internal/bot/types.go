package bot

import (
	"github.com/clarkio/discord-wordle-bot/internal/commands"
	"github.com/clarkio/discord-wordle-bot/internal/metrics"
)

// Bot routes channel messages to the ingestion pipeline or the command
// registry.
type Bot struct {
	session       session
	processor     ResultProcessor
	registry      *commands.Registry
	metrics       metrics.Metrics
	channelID     string
	commandPrefix string
}
