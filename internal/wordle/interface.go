package wordle

// ScoreStore defines the interface for persisting and querying wordle
// results. Mutations swallow backend errors and report failure through
// their return values; callers must check those, nothing is propagated.
type ScoreStore interface {
	// CreateWordle inserts the game row if missing. It reports whether the
	// row is present afterwards.
	CreateWordle(gameNumber int) bool
	// CreatePlayer inserts the player row if missing.
	CreatePlayer(discordID, discordName string) bool
	// UpdatePlayerOptIn sets the leaderboard visibility flag. It reports
	// whether the update was applied, false when the player was already in
	// the requested state.
	UpdatePlayerOptIn(discordID string, optedIn bool) bool
	// CreateScore inserts a score for (player, game). It returns the created
	// row with its player joined, or nil when a score already existed or the
	// insert failed.
	CreateScore(discordID string, gameNumber int, attempts string, isWin, isTie bool) *Score
	// UpdateScore unconditionally updates the score identified by the
	// composite key.
	UpdateScore(discordID string, gameNumber int, attempts string, isWin, isTie bool) bool
	// GetScoresByNumber returns all scores for one game, each with its
	// player joined.
	GetScoresByNumber(gameNumber int) ([]Score, error)
	// GetScoresByID returns all scores for a player ordered by game number.
	GetScoresByID(discordID string, ascending bool) ([]Score, error)
	// GetScoreByIDAndNumber returns a single score, or nil when none exists.
	// A gameNumber of 0 matches any game; the ascending flag then selects the
	// player's first or latest result.
	GetScoreByIDAndNumber(discordID string, gameNumber int, ascending bool) (*Score, error)
	// GetLeaderboard returns the cross-game aggregate for every opted-in
	// player, sorted by wins descending.
	GetLeaderboard() ([]LeaderboardEntry, error)
}
