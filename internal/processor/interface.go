package processor

import "github.com/clarkio/discord-wordle-bot/internal/wordle"

// Store defines the persistence operations the processor needs.
type Store interface {
	CreateWordle(gameNumber int) bool
	CreatePlayer(discordID, discordName string) bool
	CreateScore(discordID string, gameNumber int, attempts string, isWin, isTie bool) *wordle.Score
	UpdateScore(discordID string, gameNumber int, attempts string, isWin, isTie bool) bool
	GetScoresByNumber(gameNumber int) ([]wordle.Score, error)
}

// Notifier defines the announcement operations the processor needs.
type Notifier interface {
	SendWinnerAnnouncement(gameNumber int, winners []wordle.Score, minAttempts string) error
}
