package wordle

// failedRank is the numeric rank for a failed solve. "X" sorts worse than
// any real attempt count but still participates in ties.
const failedRank = 7

// AttemptRank maps an attempts string to its numeric rank: "1"-"6" map to
// themselves, "X" maps to 7.
func AttemptRank(attempts string) int {
	if attempts == "X" {
		return failedRank
	}
	return int(attempts[0] - '0')
}

// RoundOutcome is the classification of every score in a round after
// winner resolution.
type RoundOutcome struct {
	// MinAttempts is the attempts string shared by the winner set.
	MinAttempts string
	// Winners are the scores with the minimal attempts rank.
	Winners []Score
	// Classified holds every input score with IsWin/IsTie set to its new
	// classification, winners and losers alike.
	Classified []Score
}

// IsWinner reports whether the given player is part of the winner set.
func (o RoundOutcome) IsWinner(discordID string) bool {
	for _, w := range o.Winners {
		if w.DiscordID == discordID {
			return true
		}
	}
	return false
}

// ResolveRound determines the winner set for one round's scores and
// reclassifies every score. A single minimal score is a win; two or more
// minimal scores are a tie; everything else is a loss. Losers are always
// reclassified too, since a previously recorded winner can be displaced by
// a later, better submission for the same round.
func ResolveRound(scores []Score) RoundOutcome {
	if len(scores) == 0 {
		return RoundOutcome{}
	}

	minRank := failedRank
	for _, s := range scores {
		if r := AttemptRank(s.Attempts); r < minRank {
			minRank = r
		}
	}

	var outcome RoundOutcome
	for _, s := range scores {
		if AttemptRank(s.Attempts) == minRank {
			outcome.Winners = append(outcome.Winners, s)
		}
	}
	outcome.MinAttempts = outcome.Winners[0].Attempts

	tie := len(outcome.Winners) > 1
	for _, s := range scores {
		winner := AttemptRank(s.Attempts) == minRank
		s.IsWin = winner && !tie
		s.IsTie = winner && tie
		outcome.Classified = append(outcome.Classified, s)
	}
	return outcome
}
