package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/clarkio/discord-wordle-bot/internal/commands"
	"github.com/clarkio/discord-wordle-bot/internal/metrics"
	"github.com/clarkio/discord-wordle-bot/internal/wordle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	sent     []string
	channels []string
}

func (f *fakeSession) AddHandler(handler interface{}) func() { return func() {} }
func (f *fakeSession) Open() error                           { return nil }
func (f *fakeSession) Close() error                          { return nil }

func (f *fakeSession) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent = append(f.sent, content)
	f.channels = append(f.channels, channelID)
	return &discordgo.Message{Content: content}, nil
}

type fakeProcessor struct {
	results []wordle.Result
}

func (f *fakeProcessor) ProcessResult(result wordle.Result) {
	f.results = append(f.results, result)
}

func newTestBot() (*Bot, *fakeSession, *fakeProcessor, *metrics.Mock) {
	session := &fakeSession{}
	proc := &fakeProcessor{}
	metr := metrics.NewMock()
	registry := commands.NewRegistry(wordle.NewMock())
	b := New(session, proc, registry, metr, "chan-1", "!")
	return b, session, proc, metr
}

func message(authorID, authorName, channelID, content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			Author:    &discordgo.User{ID: authorID, Username: authorName},
			ChannelID: channelID,
			Content:   content,
		},
	}
}

func TestHandleMessageCreate(t *testing.T) {
	t.Run("routes a game result to the processor", func(t *testing.T) {
		b, session, proc, _ := newTestBot()

		b.handleMessageCreate(nil, message("u1", "alice", "chan-1", "Wordle 1,234 4/6\n\n🟩🟩🟩🟩🟩"))

		require.Len(t, proc.results, 1)
		assert.Equal(t, "u1", proc.results[0].DiscordID)
		assert.Equal(t, "alice", proc.results[0].DiscordName)
		assert.Equal(t, 1234, proc.results[0].GameNumber)
		assert.Equal(t, "4", proc.results[0].Attempts)
		assert.Empty(t, session.sent)
	})

	t.Run("routes a prefixed message to the command registry", func(t *testing.T) {
		b, session, proc, metr := newTestBot()

		b.handleMessageCreate(nil, message("u1", "alice", "chan-1", "!optin"))

		assert.Empty(t, proc.results)
		require.Len(t, session.sent, 1)
		assert.Contains(t, session.sent[0], "opted in")
		assert.Equal(t, []string{"chan-1"}, session.channels)
		assert.Equal(t, 1, metr.CommandsProcessed())
	})

	t.Run("ignores ordinary chatter", func(t *testing.T) {
		b, session, proc, metr := newTestBot()

		b.handleMessageCreate(nil, message("u1", "alice", "chan-1", "good morning everyone"))

		assert.Empty(t, proc.results)
		assert.Empty(t, session.sent)
		assert.Equal(t, 1, metr.MessagesProcessed())
	})

	t.Run("ignores bot authors", func(t *testing.T) {
		b, session, proc, metr := newTestBot()
		m := message("b1", "botto", "chan-1", "Wordle 942 3/6")
		m.Author.Bot = true

		b.handleMessageCreate(nil, m)

		assert.Empty(t, proc.results)
		assert.Empty(t, session.sent)
		assert.Equal(t, 0, metr.MessagesProcessed())
	})

	t.Run("ignores other channels", func(t *testing.T) {
		b, _, proc, metr := newTestBot()

		b.handleMessageCreate(nil, message("u1", "alice", "chan-2", "Wordle 942 3/6"))

		assert.Empty(t, proc.results)
		assert.Equal(t, 0, metr.MessagesProcessed())
	})

	t.Run("watches all channels when none is configured", func(t *testing.T) {
		session := &fakeSession{}
		proc := &fakeProcessor{}
		registry := commands.NewRegistry(wordle.NewMock())
		b := New(session, proc, registry, metrics.NewMock(), "", "!")

		b.handleMessageCreate(nil, message("u1", "alice", "chan-2", "Wordle 942 3/6"))

		assert.Len(t, proc.results, 1)
	})

	t.Run("result takes precedence over command prefix", func(t *testing.T) {
		b, _, proc, _ := newTestBot()

		b.handleMessageCreate(nil, message("u1", "alice", "chan-1", "!look Wordle 942 3/6"))

		assert.Len(t, proc.results, 1)
	})
}
