package wordle

import (
	"database/sql"
	"sync"
)

// store handles all database operations for wordle results.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player represents a chat participant.
type Player struct {
	DiscordID   string `json:"discord_id"`
	DiscordName string `json:"discord_name"`
	IsOptedIn   bool   `json:"is_opted_in"`
}

// Score represents one player's result for one game.
// Attempts is "1" through "6", or "X" when the player failed to solve.
type Score struct {
	DiscordID  string  `json:"discord_id"`
	GameNumber int     `json:"game_number"`
	Attempts   string  `json:"attempts"`
	IsWin      bool    `json:"is_win"`
	IsTie      bool    `json:"is_tie"`
	Player     *Player `json:"player,omitempty"`
}

// Result is a wordle score parsed out of a chat message.
type Result struct {
	DiscordID   string
	DiscordName string
	GameNumber  int
	Attempts    string
}

// LeaderboardEntry is the per-player aggregate across all games.
type LeaderboardEntry struct {
	DiscordID        string  `json:"discord_id"`
	DiscordName      string  `json:"discord_name"`
	Wins             int     `json:"wins"`
	WinPercent       float64 `json:"win_percent"`
	Losses           int     `json:"losses"`
	LossPercent      float64 `json:"loss_percent"`
	Ties             int     `json:"ties"`
	TiePercent       float64 `json:"tie_percent"`
	Failures         int     `json:"failures"`
	FailurePercent   float64 `json:"failure_percent"`
	AvgAttempts      float64 `json:"avg_attempts"`
	TotalGames       int     `json:"total_games"`
	LongestWinStreak int     `json:"longest_win_streak"`
}
