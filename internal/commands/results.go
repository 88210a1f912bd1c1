package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clarkio/discord-wordle-bot/internal/wordle"
)

// resultsCommand reports the calling player's stored result. With no
// arguments it returns the most recent score; "first" returns the earliest;
// a game number returns that specific round.
type resultsCommand struct{}

func (c *resultsCommand) Name() string { return "results" }

func (c *resultsCommand) Description() string {
	return "Get your own Wordle results"
}

func (c *resultsCommand) Execute(msg Message, args []string, reply ReplyFunc, store wordle.ScoreStore) error {
	gameNumber := 0
	ascending := false
	matched := true

	if len(args) > 0 {
		arg := strings.ToLower(args[0])
		if arg == "first" {
			ascending = true
		} else if n, err := strconv.Atoi(arg); err == nil && n >= 0 {
			gameNumber = n
		} else {
			matched = false
		}
	}

	var score *wordle.Score
	if matched {
		var err error
		score, err = store.GetScoreByIDAndNumber(msg.AuthorID, gameNumber, ascending)
		if err != nil {
			return err
		}
	}

	if score == nil {
		return reply("No results found")
	}
	return reply(fmt.Sprintf("Your Wordle result for game #%s is %s/6",
		wordle.FormatGameNumber(score.GameNumber), score.Attempts))
}
