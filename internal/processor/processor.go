package processor

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/clarkio/discord-wordle-bot/internal/metrics"
	"github.com/clarkio/discord-wordle-bot/internal/wordle"
)

// New creates a new Processor.
func New(store Store, notifier Notifier, metrics metrics.Metrics) *Processor {
	return &Processor{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
	}
}

// ProcessResult runs one parsed result through the ingestion pipeline:
// record the score at most once, reclassify the full round from the store,
// and announce only when the submitting player is among the current winners.
func (p *Processor) ProcessResult(result wordle.Result) {
	startTime := time.Now()
	defer func() {
		p.metrics.ObserveIngestDuration(time.Since(startTime).Seconds())
	}()

	log.Info("Processing Wordle result", "player", result.DiscordName, "gameNumber", result.GameNumber, "attempts", result.Attempts)

	existing, err := p.store.GetScoresByNumber(result.GameNumber)
	if err != nil {
		log.Error("Failed to load scores for game", "error", err, "gameNumber", result.GameNumber)
		return
	}

	if hasScore(existing, result.DiscordID) {
		p.metrics.IncDuplicateResults()
		log.Info("Result already exists", "player", result.DiscordName, "gameNumber", result.GameNumber)
	} else {
		p.store.CreatePlayer(result.DiscordID, result.DiscordName)
		if len(existing) == 0 {
			p.store.CreateWordle(result.GameNumber)
		}
		if score := p.store.CreateScore(result.DiscordID, result.GameNumber, result.Attempts, false, false); score == nil {
			log.Error("Failed to record score", "player", result.DiscordName, "gameNumber", result.GameNumber)
			return
		}
		p.metrics.IncResultsIngested()
		log.Info("Result added to the database", "player", result.DiscordName, "gameNumber", result.GameNumber)
	}

	// The winner set can change retroactively as late results arrive, so the
	// whole round is re-read and reclassified on every submission.
	scores, err := p.store.GetScoresByNumber(result.GameNumber)
	if err != nil {
		log.Error("Failed to reload scores for game", "error", err, "gameNumber", result.GameNumber)
		return
	}

	outcome := wordle.ResolveRound(scores)
	for _, score := range outcome.Classified {
		p.store.UpdateScore(score.DiscordID, score.GameNumber, score.Attempts, score.IsWin, score.IsTie)
	}

	if !outcome.IsWinner(result.DiscordID) {
		log.Info("No winner change so no message to send", "gameNumber", result.GameNumber)
		return
	}
	if err := p.notifier.SendWinnerAnnouncement(result.GameNumber, outcome.Winners, outcome.MinAttempts); err != nil {
		log.Error("Failed to announce winners", "error", err, "gameNumber", result.GameNumber)
	}
}

func hasScore(scores []wordle.Score, discordID string) bool {
	for _, score := range scores {
		if score.DiscordID == discordID {
			return true
		}
	}
	return false
}
