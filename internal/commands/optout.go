package commands

import "github.com/clarkio/discord-wordle-bot/internal/wordle"

// optOutCommand hides the calling player from the public leaderboard.
type optOutCommand struct{}

func (c *optOutCommand) Name() string { return "optout" }

func (c *optOutCommand) Description() string {
	return "Opt-out of your stats from showing in the public leaderboard data"
}

func (c *optOutCommand) Execute(msg Message, args []string, reply ReplyFunc, store wordle.ScoreStore) error {
	updated := store.UpdatePlayerOptIn(msg.AuthorID, false)
	if !updated {
		return reply("<@" + msg.AuthorID + "> you have already opted out for showing up in the public leaderboard data")
	}
	return reply("<@" + msg.AuthorID + "> you have successfully opted out for showing up in the public leaderboard data")
}
