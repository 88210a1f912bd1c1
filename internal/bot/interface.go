package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/clarkio/discord-wordle-bot/internal/wordle"
)

// ResultProcessor ingests parsed game results.
type ResultProcessor interface {
	ProcessResult(result wordle.Result)
}

// session is the subset of discordgo.Session methods the bot uses.
// This allows for easy mocking in tests.
type session interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}
