package processor

import (
	"errors"
	"testing"

	"github.com/clarkio/discord-wordle-bot/internal/metrics"
	"github.com/clarkio/discord-wordle-bot/internal/notifier"
	"github.com/clarkio/discord-wordle-bot/internal/wordle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	processor *Processor
	store     *wordle.MockStore
	notifier  *notifier.Mock
	metrics   *metrics.Mock
}

// newFixture wires a processor against an in-memory score list so the
// pipeline sees its own inserts on the re-read.
func newFixture(initial ...wordle.Score) *fixture {
	scores := append([]wordle.Score{}, initial...)

	store := wordle.NewMock()
	store.GetScoresByNumberFunc = func(gameNumber int) ([]wordle.Score, error) {
		out := make([]wordle.Score, 0, len(scores))
		for _, s := range scores {
			if s.GameNumber == gameNumber {
				out = append(out, s)
			}
		}
		return out, nil
	}
	store.CreateScoreFunc = func(discordID string, gameNumber int, attempts string, isWin, isTie bool) *wordle.Score {
		s := wordle.Score{DiscordID: discordID, GameNumber: gameNumber, Attempts: attempts, IsWin: isWin, IsTie: isTie}
		scores = append(scores, s)
		return &s
	}

	notif := notifier.NewMock()
	metr := metrics.NewMock()
	return &fixture{
		processor: New(store, notif, metr),
		store:     store,
		notifier:  notif,
		metrics:   metr,
	}
}

func result(id, name string, gameNumber int, attempts string) wordle.Result {
	return wordle.Result{DiscordID: id, DiscordName: name, GameNumber: gameNumber, Attempts: attempts}
}

func score(id string, gameNumber int, attempts string) wordle.Score {
	return wordle.Score{DiscordID: id, GameNumber: gameNumber, Attempts: attempts}
}

func TestProcessResult(t *testing.T) {
	t.Run("first result creates round, player, and score", func(t *testing.T) {
		f := newFixture()

		f.processor.ProcessResult(result("u1", "alice", 100, "4"))

		require.Len(t, f.store.CreatePlayerCalls, 1)
		assert.Equal(t, "u1", f.store.CreatePlayerCalls[0].DiscordID)
		assert.Equal(t, "alice", f.store.CreatePlayerCalls[0].DiscordName)
		assert.Equal(t, []int{100}, f.store.CreateWordleCalls)
		require.Len(t, f.store.CreateScoreCalls, 1)
		assert.Equal(t, 1, f.metrics.ResultsIngested())

		// Sole submitter is the current winner.
		require.Len(t, f.store.UpdateScoreCalls, 1)
		assert.True(t, f.store.UpdateScoreCalls[0].IsWin)
		assert.False(t, f.store.UpdateScoreCalls[0].IsTie)
		require.Len(t, f.notifier.SendWinnerAnnouncementCalls, 1)
		assert.Equal(t, 100, f.notifier.SendWinnerAnnouncementCalls[0].GameNumber)
		assert.Equal(t, "4", f.notifier.SendWinnerAnnouncementCalls[0].MinAttempts)
	})

	t.Run("existing round is not recreated", func(t *testing.T) {
		f := newFixture(score("u1", 100, "4"))

		f.processor.ProcessResult(result("u2", "bob", 100, "5"))

		assert.Empty(t, f.store.CreateWordleCalls)
		require.Len(t, f.store.CreateScoreCalls, 1)
	})

	t.Run("duplicate submission is not re-recorded", func(t *testing.T) {
		f := newFixture(score("u1", 100, "4"))

		f.processor.ProcessResult(result("u1", "alice", 100, "4"))

		assert.Empty(t, f.store.CreateScoreCalls)
		assert.Empty(t, f.store.CreatePlayerCalls)
		assert.Equal(t, 1, f.metrics.DuplicateResults())
		assert.Equal(t, 0, f.metrics.ResultsIngested())

		// The round is still reclassified and the standing winner re-announced.
		require.Len(t, f.store.UpdateScoreCalls, 1)
		assert.True(t, f.store.UpdateScoreCalls[0].IsWin)
		assert.Len(t, f.notifier.SendWinnerAnnouncementCalls, 1)
	})

	t.Run("late better result displaces the winner", func(t *testing.T) {
		f := newFixture(score("u1", 100, "5"))

		f.processor.ProcessResult(result("u2", "bob", 100, "3"))

		byPlayer := map[string]wordle.Score{}
		for _, call := range f.store.UpdateScoreCalls {
			byPlayer[call.DiscordID] = call
		}
		require.Len(t, byPlayer, 2)
		assert.False(t, byPlayer["u1"].IsWin)
		assert.False(t, byPlayer["u1"].IsTie)
		assert.True(t, byPlayer["u2"].IsWin)
		assert.False(t, byPlayer["u2"].IsTie)

		require.Len(t, f.notifier.SendWinnerAnnouncementCalls, 1)
		call := f.notifier.SendWinnerAnnouncementCalls[0]
		require.Len(t, call.Winners, 1)
		assert.Equal(t, "u2", call.Winners[0].DiscordID)
		assert.Equal(t, "3", call.MinAttempts)
	})

	t.Run("worse result is recorded but not announced", func(t *testing.T) {
		f := newFixture(score("u1", 100, "3"))

		f.processor.ProcessResult(result("u2", "bob", 100, "5"))

		require.Len(t, f.store.CreateScoreCalls, 1)
		assert.Len(t, f.store.UpdateScoreCalls, 2)
		assert.Empty(t, f.notifier.SendWinnerAnnouncementCalls)
	})

	t.Run("matching lowest score is announced as a tie", func(t *testing.T) {
		f := newFixture(score("u1", 100, "4"))

		f.processor.ProcessResult(result("u2", "bob", 100, "4"))

		byPlayer := map[string]wordle.Score{}
		for _, call := range f.store.UpdateScoreCalls {
			byPlayer[call.DiscordID] = call
		}
		require.Len(t, byPlayer, 2)
		assert.True(t, byPlayer["u1"].IsTie)
		assert.True(t, byPlayer["u2"].IsTie)
		assert.False(t, byPlayer["u1"].IsWin)

		require.Len(t, f.notifier.SendWinnerAnnouncementCalls, 1)
		assert.Len(t, f.notifier.SendWinnerAnnouncementCalls[0].Winners, 2)
	})

	t.Run("store read failure aborts the pipeline", func(t *testing.T) {
		f := newFixture()
		f.store.GetScoresByNumberFunc = func(gameNumber int) ([]wordle.Score, error) {
			return nil, errors.New("db closed")
		}

		f.processor.ProcessResult(result("u1", "alice", 100, "4"))

		assert.Empty(t, f.store.CreateScoreCalls)
		assert.Empty(t, f.store.UpdateScoreCalls)
		assert.Empty(t, f.notifier.SendWinnerAnnouncementCalls)
	})

	t.Run("ingest duration is observed", func(t *testing.T) {
		f := newFixture()

		f.processor.ProcessResult(result("u1", "alice", 100, "4"))

		assert.Len(t, f.metrics.IngestDurations(), 1)
	})
}
