package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/clarkio/discord-wordle-bot/internal/wordle"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// StatsHandler returns the public leaderboard for all opted-in players.
func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := s.Store.GetLeaderboard()
		if err != nil {
			log.Error("Failed to get leaderboard", "error", err)
			http.Error(w, "Failed to get leaderboard", http.StatusInternalServerError)
			return
		}
		if entries == nil {
			entries = []wordle.LeaderboardEntry{}
		}
		writeJSON(w, entries)
	}
}

// UserScoresHandler returns every stored score for one player, most recent
// game first. An unknown player yields an empty list, not a 404.
func (s *Server) UserScoresHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.PathValue("userId")
		scores, err := s.Store.GetScoresByID(userID, false)
		if err != nil {
			log.Error("Failed to get scores for user", "error", err, "userID", userID)
			http.Error(w, "Failed to get Wordle results", http.StatusInternalServerError)
			return
		}
		if scores == nil {
			scores = []wordle.Score{}
		}
		writeJSON(w, scores)
	}
}

// UserGameScoreHandler returns one player's score for one specific game.
func (s *Server) UserGameScoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.PathValue("userId")
		gameNumber, err := strconv.Atoi(r.PathValue("gameNumber"))
		if err != nil || gameNumber <= 0 {
			http.Error(w, "Invalid game number", http.StatusBadRequest)
			return
		}

		score, err := s.Store.GetScoreByIDAndNumber(userID, gameNumber, false)
		if err != nil {
			log.Error("Failed to get score", "error", err, "userID", userID, "gameNumber", gameNumber)
			http.Error(w, "Failed to get Wordle result", http.StatusInternalServerError)
			return
		}
		if score == nil {
			http.Error(w, "Unable to get Wordle result.", http.StatusNotFound)
			return
		}
		writeJSON(w, score)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
