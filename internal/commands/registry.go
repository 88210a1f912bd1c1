package commands

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/clarkio/discord-wordle-bot/internal/wordle"
)

var commandNamePattern = regexp.MustCompile(`(?i)^[a-z0-9]+$`)

// Registry maps command names to handlers. The command set is fixed at
// construction time.
type Registry struct {
	commands map[string]Command
	store    wordle.ScoreStore
}

// NewRegistry builds a registry over the default command set.
func NewRegistry(store wordle.ScoreStore) *Registry {
	r := &Registry{
		commands: make(map[string]Command),
		store:    store,
	}
	r.register(&resultsCommand{})
	r.register(&optInCommand{})
	r.register(&optOutCommand{})
	return r
}

func (r *Registry) register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Dispatch parses the message content (prefix already stripped) and runs the
// matching command. Every path produces a user-visible reply, including
// malformed names, unknown commands, and handler errors.
func (r *Registry) Dispatch(msg Message, content string, reply ReplyFunc) {
	fields := strings.Fields(content)
	if len(fields) == 0 || !commandNamePattern.MatchString(fields[0]) {
		if err := reply("Invalid command."); err != nil {
			log.Error("Failed to send command reply", "error", err)
		}
		return
	}

	name := strings.ToLower(fields[0])
	cmd, ok := r.commands[name]
	if !ok {
		if err := reply("Unknown command: " + name); err != nil {
			log.Error("Failed to send command reply", "error", err)
		}
		return
	}

	if err := cmd.Execute(msg, fields[1:], reply, r.store); err != nil {
		log.Error("Command execution failed", "command", name, "author", msg.AuthorID, "error", err)
		if err := reply("There was an error executing that command."); err != nil {
			log.Error("Failed to send command reply", "error", err)
		}
	}
}
