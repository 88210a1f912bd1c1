package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/clarkio/discord-wordle-bot/internal/commands"
	"github.com/clarkio/discord-wordle-bot/internal/metrics"
	"github.com/clarkio/discord-wordle-bot/internal/wordle"
)

// NewSession creates a Discord gateway session with the intents the bot
// needs to read channel messages.
func NewSession(botToken string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	return s, nil
}

// New creates a new Bot. When channelID is non-empty, messages from other
// channels are ignored.
func New(session session, processor ResultProcessor, registry *commands.Registry, metrics metrics.Metrics, channelID, commandPrefix string) *Bot {
	return &Bot{
		session:       session,
		processor:     processor,
		registry:      registry,
		metrics:       metrics,
		channelID:     channelID,
		commandPrefix: commandPrefix,
	}
}

// Start registers the message handler and opens the gateway connection.
func (b *Bot) Start() error {
	b.session.AddHandler(b.handleMessageCreate)
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord gateway connection: %w", err)
	}
	log.Info("Discord bot connected", "channel", b.channelID)
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) handleMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if b.channelID != "" && m.ChannelID != b.channelID {
		return
	}

	b.processMessage(commands.Message{
		AuthorID:   m.Author.ID,
		AuthorName: m.Author.Username,
		ChannelID:  m.ChannelID,
	}, m.Content)
}

// processMessage classifies a message as a game result, a command, or noise.
func (b *Bot) processMessage(msg commands.Message, content string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic while handling message", "author", msg.AuthorID, "panic", r)
		}
	}()

	b.metrics.IncMessagesProcessed()

	if result, ok := wordle.ParseResult(msg.AuthorID, msg.AuthorName, content); ok {
		b.processor.ProcessResult(result)
		return
	}

	if strings.HasPrefix(content, b.commandPrefix) {
		b.metrics.IncCommandsProcessed()
		b.registry.Dispatch(msg, strings.TrimPrefix(content, b.commandPrefix), b.replyTo(msg.ChannelID))
		return
	}

	log.Debug("Message not intended for the bot", "author", msg.AuthorID)
}

func (b *Bot) replyTo(channelID string) commands.ReplyFunc {
	return func(content string) error {
		_, err := b.session.ChannelMessageSend(channelID, content)
		return err
	}
}
