package notifier

import (
	"sync"

	"github.com/clarkio/discord-wordle-bot/internal/wordle"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendWinnerAnnouncementFunc func(gameNumber int, winners []wordle.Score, minAttempts string) error

	SendWinnerAnnouncementCalls []WinnerAnnouncementCall
}

// WinnerAnnouncementCall holds the arguments for a call to SendWinnerAnnouncement.
type WinnerAnnouncementCall struct {
	GameNumber  int
	Winners     []wordle.Score
	MinAttempts string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendWinnerAnnouncementCalls = nil
}

func (m *Mock) SendWinnerAnnouncement(gameNumber int, winners []wordle.Score, minAttempts string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendWinnerAnnouncementCalls = append(m.SendWinnerAnnouncementCalls, WinnerAnnouncementCall{
		GameNumber:  gameNumber,
		Winners:     winners,
		MinAttempts: minAttempts,
	})
	if m.SendWinnerAnnouncementFunc != nil {
		return m.SendWinnerAnnouncementFunc(gameNumber, winners, minAttempts)
	}
	return nil
}
