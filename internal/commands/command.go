package commands

import "github.com/clarkio/discord-wordle-bot/internal/wordle"

// Message carries the author and channel context a command executes under.
type Message struct {
	AuthorID   string
	AuthorName string
	ChannelID  string
}

// ReplyFunc sends a response back to the channel the command came from.
type ReplyFunc func(content string) error

// Command is a single chat command. Execute is given the parsed arguments
// (command name already stripped), a reply sink, and the score store.
type Command interface {
	Name() string
	Description() string
	Execute(msg Message, args []string, reply ReplyFunc, store wordle.ScoreStore) error
}
