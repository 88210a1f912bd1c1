package wordle

import (
	"database/sql"
	"math"

	"github.com/charmbracelet/log"
)

// New creates a new ScoreStore backed by the given database.
func New(db *sql.DB) ScoreStore {
	return &store{
		db: db,
	}
}

func (s *store) CreateWordle(gameNumber int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("INSERT OR IGNORE INTO wordles (game_number) VALUES (?)", gameNumber)
	if err != nil {
		log.Error("Failed to create wordle", "error", err, "gameNumber", gameNumber)
		return false
	}
	return true
}

func (s *store) CreatePlayer(discordID, discordName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("INSERT OR IGNORE INTO players (discord_id, discord_name) VALUES (?, ?)", discordID, discordName)
	if err != nil {
		log.Error("Failed to create player", "error", err, "discordID", discordID)
		return false
	}
	return true
}

func (s *store) UpdatePlayerOptIn(discordID string, optedIn bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("UPDATE players SET is_opted_in = ? WHERE discord_id = ? AND is_opted_in != ?", optedIn, discordID, optedIn)
	if err != nil {
		log.Error("Failed to update player opt-in", "error", err, "discordID", discordID)
		return false
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Error("Failed to read affected rows for opt-in update", "error", err, "discordID", discordID)
		return false
	}
	return affected > 0
}

func (s *store) CreateScore(discordID string, gameNumber int, attempts string, isWin, isTie bool) *Score {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		INSERT OR IGNORE INTO scores (discord_id, game_number, attempts, is_win, is_tie)
		VALUES (?, ?, ?, ?, ?)
	`, discordID, gameNumber, attempts, isWin, isTie)
	if err != nil {
		log.Error("Failed to create score", "error", err, "discordID", discordID, "gameNumber", gameNumber)
		return nil
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Error("Failed to read affected rows for score insert", "error", err, "discordID", discordID, "gameNumber", gameNumber)
		return nil
	}
	if affected == 0 {
		// A score already exists for this (player, game); callers treat nil
		// as "no-op, pre-existing".
		return nil
	}

	score, err := s.getScoreLocked(discordID, gameNumber, false)
	if err != nil {
		log.Error("Failed to read back created score", "error", err, "discordID", discordID, "gameNumber", gameNumber)
		return nil
	}
	return score
}

func (s *store) UpdateScore(discordID string, gameNumber int, attempts string, isWin, isTie bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		UPDATE scores SET attempts = ?, is_win = ?, is_tie = ?
		WHERE discord_id = ? AND game_number = ?
	`, attempts, isWin, isTie, discordID, gameNumber)
	if err != nil {
		log.Error("Failed to update score", "error", err, "discordID", discordID, "gameNumber", gameNumber)
		return false
	}
	return true
}

const scoreColumns = `
	s.discord_id, s.game_number, s.attempts, s.is_win, s.is_tie,
	p.discord_id, p.discord_name, p.is_opted_in
`

func (s *store) GetScoresByNumber(gameNumber int) ([]Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT `+scoreColumns+`
		FROM scores s
		JOIN players p ON p.discord_id = s.discord_id
		WHERE s.game_number = ?
	`, gameNumber)
	if err != nil {
		log.Error("Failed to query scores by game number", "error", err, "gameNumber", gameNumber)
		return nil, err
	}
	defer rows.Close()

	return scanScores(rows)
}

func (s *store) GetScoresByID(discordID string, ascending bool) ([]Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT `+scoreColumns+`
		FROM scores s
		JOIN players p ON p.discord_id = s.discord_id
		WHERE s.discord_id = ?
		ORDER BY s.game_number `+order(ascending), discordID)
	if err != nil {
		log.Error("Failed to query scores by player", "error", err, "discordID", discordID)
		return nil, err
	}
	defer rows.Close()

	return scanScores(rows)
}

func (s *store) GetScoreByIDAndNumber(discordID string, gameNumber int, ascending bool) (*Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getScoreLocked(discordID, gameNumber, ascending)
}

func (s *store) getScoreLocked(discordID string, gameNumber int, ascending bool) (*Score, error) {
	query := `
		SELECT ` + scoreColumns + `
		FROM scores s
		JOIN players p ON p.discord_id = s.discord_id
		WHERE s.discord_id = ?`
	args := []any{discordID}
	if gameNumber > 0 {
		query += " AND s.game_number = ?"
		args = append(args, gameNumber)
	}
	query += " ORDER BY s.game_number " + order(ascending) + " LIMIT 1"

	var score Score
	var player Player
	err := s.db.QueryRow(query, args...).Scan(
		&score.DiscordID, &score.GameNumber, &score.Attempts, &score.IsWin, &score.IsTie,
		&player.DiscordID, &player.DiscordName, &player.IsOptedIn,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Error("Failed to query score", "error", err, "discordID", discordID, "gameNumber", gameNumber)
		return nil, err
	}
	score.Player = &player
	return &score, nil
}

// GetLeaderboard aggregates every opted-in player's history: win/loss/tie/
// failure counts and rates, average attempts over solved games, and the
// longest run of consecutive-by-game-number wins.
func (s *store) GetLeaderboard() ([]LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT
			s.discord_id,
			p.discord_name,
			COUNT(*) AS total_games,
			SUM(CASE WHEN s.is_win = 1 AND s.is_tie = 0 THEN 1 ELSE 0 END) AS wins,
			SUM(CASE WHEN s.is_win = 0 AND s.is_tie = 0 AND s.attempts != 'X' THEN 1 ELSE 0 END) AS losses,
			SUM(CASE WHEN s.is_tie = 1 THEN 1 ELSE 0 END) AS ties,
			SUM(CASE WHEN s.attempts = 'X' THEN 1 ELSE 0 END) AS failures,
			COALESCE(AVG(CASE WHEN s.attempts != 'X' THEN CAST(s.attempts AS REAL) END), 0) AS avg_attempts
		FROM scores s
		JOIN players p ON p.discord_id = s.discord_id
		WHERE p.is_opted_in = 1
		GROUP BY s.discord_id, p.discord_name
		ORDER BY wins DESC
	`)
	if err != nil {
		log.Error("Failed to query leaderboard", "error", err)
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		var avg float64
		if err := rows.Scan(&e.DiscordID, &e.DiscordName, &e.TotalGames, &e.Wins, &e.Losses, &e.Ties, &e.Failures, &avg); err != nil {
			log.Error("Failed to scan leaderboard row", "error", err)
			return nil, err
		}
		if e.TotalGames > 0 {
			e.WinPercent = round2(float64(e.Wins) / float64(e.TotalGames) * 100)
			e.LossPercent = round2(float64(e.Losses) / float64(e.TotalGames) * 100)
			e.TiePercent = round2(float64(e.Ties) / float64(e.TotalGames) * 100)
			e.FailurePercent = round2(float64(e.Failures) / float64(e.TotalGames) * 100)
		}
		e.AvgAttempts = round2(avg)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	streaks, err := s.longestWinStreaksLocked()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].LongestWinStreak = streaks[entries[i].DiscordID]
	}
	return entries, nil
}

// longestWinStreaksLocked computes, per player, the longest chain of wins in
// consecutive game numbers. Ties do not extend a streak.
func (s *store) longestWinStreaksLocked() (map[string]int, error) {
	rows, err := s.db.Query(`
		SELECT discord_id, game_number
		FROM scores
		WHERE is_win = 1
		ORDER BY discord_id, game_number ASC
	`)
	if err != nil {
		log.Error("Failed to query win streaks", "error", err)
		return nil, err
	}
	defer rows.Close()

	streaks := make(map[string]int)
	var prevID string
	var prevGame, current int
	for rows.Next() {
		var id string
		var game int
		if err := rows.Scan(&id, &game); err != nil {
			return nil, err
		}
		if id == prevID && game == prevGame+1 {
			current++
		} else {
			current = 1
		}
		if current > streaks[id] {
			streaks[id] = current
		}
		prevID, prevGame = id, game
	}
	return streaks, rows.Err()
}

func order(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func scanScores(rows *sql.Rows) ([]Score, error) {
	var scores []Score
	for rows.Next() {
		var score Score
		var player Player
		if err := rows.Scan(
			&score.DiscordID, &score.GameNumber, &score.Attempts, &score.IsWin, &score.IsTie,
			&player.DiscordID, &player.DiscordName, &player.IsOptedIn,
		); err != nil {
			log.Error("Failed to scan score row", "error", err)
			return nil, err
		}
		score.Player = &player
		scores = append(scores, score)
	}
	return scores, rows.Err()
}
