package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/clarkio/discord-wordle-bot/internal/metrics"
	"github.com/clarkio/discord-wordle-bot/internal/notifier"
	"github.com/clarkio/discord-wordle-bot/internal/wordle"
)

// discordSession is the subset of discordgo.Session methods we use.
// This allows for easy mocking in tests.
type discordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to a Discord channel.
type Notifier struct {
	session     discordSession
	channelID   string
	userTagging bool
	metrics     metrics.Metrics
}

// NewNotifier creates a new Notifier posting through the given session.
// When userTagging is enabled, winners are referenced by <@id> mention
// instead of display name.
func NewNotifier(session discordSession, channelID string, userTagging bool, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		session:     session,
		channelID:   channelID,
		userTagging: userTagging,
		metrics:     metrics,
	}
}

// SendWinnerAnnouncement posts the current winner set for a game to the
// configured channel.
func (n *Notifier) SendWinnerAnnouncement(gameNumber int, winners []wordle.Score, minAttempts string) error {
	message := n.formatWinnerAnnouncement(gameNumber, winners, minAttempts)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		n.metrics.IncNotifFailed()
		log.Error("Failed to send winner announcement", "error", err, "channel", n.channelID)
		return fmt.Errorf("failed to send winner announcement: %w", err)
	}

	n.metrics.IncNotifSent()
	log.Info("Sent winner announcement", "channel", n.channelID, "gameNumber", gameNumber)
	return nil
}

func (n *Notifier) formatWinnerAnnouncement(gameNumber int, winners []wordle.Score, minAttempts string) string {
	names := make([]string, 0, len(winners))
	for _, w := range winners {
		names = append(names, n.displayName(w))
	}

	plural := ""
	if len(winners) > 1 {
		plural = "s"
	}
	return fmt.Sprintf("Current Winner%s for Wordle %s with %s: %s",
		plural, wordle.FormatGameNumber(gameNumber), attemptsPhrase(minAttempts), strings.Join(names, ", "))
}

func (n *Notifier) displayName(score wordle.Score) string {
	if n.userTagging {
		return "<@" + score.DiscordID + ">"
	}
	if score.Player != nil && score.Player.DiscordName != "" {
		return score.Player.DiscordName
	}
	return score.DiscordID
}

func attemptsPhrase(attempts string) string {
	if attempts == "X" {
		return "no successful attempts"
	}
	if attempts == "1" {
		return "1 attempt"
	}
	return attempts + " attempts"
}
