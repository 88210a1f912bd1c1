package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clarkio/discord-wordle-bot/internal/config"
	"github.com/clarkio/discord-wordle-bot/internal/metrics"
	"github.com/clarkio/discord-wordle-bot/internal/wordle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(store *wordle.MockStore) *Server {
	return NewServer(store, metrics.NewMock(), http.NotFoundHandler(), config.Config{})
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheckHandler(t *testing.T) {
	rec := get(t, newTestServer(wordle.NewMock()), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK!", rec.Body.String())
}

func TestStatsHandler(t *testing.T) {
	t.Run("returns the leaderboard", func(t *testing.T) {
		store := wordle.NewMock()
		store.GetLeaderboardFunc = func() ([]wordle.LeaderboardEntry, error) {
			return []wordle.LeaderboardEntry{
				{DiscordID: "u1", DiscordName: "alice", Wins: 3, TotalGames: 5},
			}, nil
		}

		rec := get(t, newTestServer(store), "/stats")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var entries []wordle.LeaderboardEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "alice", entries[0].DiscordName)
		assert.Equal(t, 3, entries[0].Wins)
	})

	t.Run("empty leaderboard yields an empty array", func(t *testing.T) {
		rec := get(t, newTestServer(wordle.NewMock()), "/stats")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("store failure yields 500", func(t *testing.T) {
		store := wordle.NewMock()
		store.GetLeaderboardFunc = func() ([]wordle.LeaderboardEntry, error) {
			return nil, errors.New("db closed")
		}

		rec := get(t, newTestServer(store), "/stats")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestUserScoresHandler(t *testing.T) {
	t.Run("returns all scores for a player", func(t *testing.T) {
		store := wordle.NewMock()
		store.GetScoresByIDFunc = func(discordID string, ascending bool) ([]wordle.Score, error) {
			assert.Equal(t, "u1", discordID)
			assert.False(t, ascending)
			return []wordle.Score{
				{DiscordID: "u1", GameNumber: 101, Attempts: "3"},
				{DiscordID: "u1", GameNumber: 100, Attempts: "X"},
			}, nil
		}

		rec := get(t, newTestServer(store), "/wordle/u1")
		require.Equal(t, http.StatusOK, rec.Code)

		var scores []wordle.Score
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scores))
		require.Len(t, scores, 2)
		assert.Equal(t, 101, scores[0].GameNumber)
	})

	t.Run("unknown player yields an empty array", func(t *testing.T) {
		rec := get(t, newTestServer(wordle.NewMock()), "/wordle/ghost")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})
}

func TestUserGameScoreHandler(t *testing.T) {
	t.Run("returns the score for a specific game", func(t *testing.T) {
		store := wordle.NewMock()
		store.GetScoreByIDAndNumberFunc = func(discordID string, gameNumber int, ascending bool) (*wordle.Score, error) {
			assert.Equal(t, "u1", discordID)
			assert.Equal(t, 942, gameNumber)
			return &wordle.Score{DiscordID: "u1", GameNumber: 942, Attempts: "4", IsWin: true}, nil
		}

		rec := get(t, newTestServer(store), "/wordle/u1/942")
		require.Equal(t, http.StatusOK, rec.Code)

		var score wordle.Score
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &score))
		assert.Equal(t, "4", score.Attempts)
		assert.True(t, score.IsWin)
	})

	t.Run("missing score yields 404", func(t *testing.T) {
		rec := get(t, newTestServer(wordle.NewMock()), "/wordle/u1/942")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Unable to get Wordle result.", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("non-numeric game number yields 400", func(t *testing.T) {
		rec := get(t, newTestServer(wordle.NewMock()), "/wordle/u1/latest")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
