package notifier

import "github.com/clarkio/discord-wordle-bot/internal/wordle"

// Notifier defines a high-level interface for announcing business events to
// the chat channel. This decouples the rest of the application from the
// specific chat provider (e.g., Discord).
type Notifier interface {
	// SendWinnerAnnouncement posts the current winner set for a game.
	SendWinnerAnnouncement(gameNumber int, winners []wordle.Score, minAttempts string) error
}
