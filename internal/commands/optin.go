package commands

import "github.com/clarkio/discord-wordle-bot/internal/wordle"

// optInCommand re-enables the calling player in the public leaderboard.
type optInCommand struct{}

func (c *optInCommand) Name() string { return "optin" }

func (c *optInCommand) Description() string {
	return "Opt-in for your stats to show in the public leaderboard data"
}

func (c *optInCommand) Execute(msg Message, args []string, reply ReplyFunc, store wordle.ScoreStore) error {
	updated := store.UpdatePlayerOptIn(msg.AuthorID, true)
	if !updated {
		return reply("<@" + msg.AuthorID + "> you have already opted in for showing up in the public leaderboard data")
	}
	return reply("<@" + msg.AuthorID + "> you have successfully opted in for showing up in the public leaderboard data")
}
