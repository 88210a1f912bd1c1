package wordle

import "sync"

// MockStore is a mock implementation of the ScoreStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateWordleFunc          func(gameNumber int) bool
	CreatePlayerFunc          func(discordID, discordName string) bool
	UpdatePlayerOptInFunc     func(discordID string, optedIn bool) bool
	CreateScoreFunc           func(discordID string, gameNumber int, attempts string, isWin, isTie bool) *Score
	UpdateScoreFunc           func(discordID string, gameNumber int, attempts string, isWin, isTie bool) bool
	GetScoresByNumberFunc     func(gameNumber int) ([]Score, error)
	GetScoresByIDFunc         func(discordID string, ascending bool) ([]Score, error)
	GetScoreByIDAndNumberFunc func(discordID string, gameNumber int, ascending bool) (*Score, error)
	GetLeaderboardFunc        func() ([]LeaderboardEntry, error)

	// Call records
	CreateWordleCalls      []int
	CreatePlayerCalls      []Player
	UpdatePlayerOptInCalls []struct {
		DiscordID string
		OptedIn   bool
	}
	CreateScoreCalls []Score
	UpdateScoreCalls []Score
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateWordleCalls = nil
	m.CreatePlayerCalls = nil
	m.UpdatePlayerOptInCalls = nil
	m.CreateScoreCalls = nil
	m.UpdateScoreCalls = nil
}

func (m *MockStore) CreateWordle(gameNumber int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateWordleCalls = append(m.CreateWordleCalls, gameNumber)
	if m.CreateWordleFunc != nil {
		return m.CreateWordleFunc(gameNumber)
	}
	return true
}

func (m *MockStore) CreatePlayer(discordID, discordName string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePlayerCalls = append(m.CreatePlayerCalls, Player{DiscordID: discordID, DiscordName: discordName})
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(discordID, discordName)
	}
	return true
}

func (m *MockStore) UpdatePlayerOptIn(discordID string, optedIn bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdatePlayerOptInCalls = append(m.UpdatePlayerOptInCalls, struct {
		DiscordID string
		OptedIn   bool
	}{discordID, optedIn})
	if m.UpdatePlayerOptInFunc != nil {
		return m.UpdatePlayerOptInFunc(discordID, optedIn)
	}
	return true
}

func (m *MockStore) CreateScore(discordID string, gameNumber int, attempts string, isWin, isTie bool) *Score {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateScoreCalls = append(m.CreateScoreCalls, Score{DiscordID: discordID, GameNumber: gameNumber, Attempts: attempts, IsWin: isWin, IsTie: isTie})
	if m.CreateScoreFunc != nil {
		return m.CreateScoreFunc(discordID, gameNumber, attempts, isWin, isTie)
	}
	return &Score{DiscordID: discordID, GameNumber: gameNumber, Attempts: attempts, IsWin: isWin, IsTie: isTie}
}

func (m *MockStore) UpdateScore(discordID string, gameNumber int, attempts string, isWin, isTie bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateScoreCalls = append(m.UpdateScoreCalls, Score{DiscordID: discordID, GameNumber: gameNumber, Attempts: attempts, IsWin: isWin, IsTie: isTie})
	if m.UpdateScoreFunc != nil {
		return m.UpdateScoreFunc(discordID, gameNumber, attempts, isWin, isTie)
	}
	return true
}

func (m *MockStore) GetScoresByNumber(gameNumber int) ([]Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetScoresByNumberFunc != nil {
		return m.GetScoresByNumberFunc(gameNumber)
	}
	return nil, nil
}

func (m *MockStore) GetScoresByID(discordID string, ascending bool) ([]Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetScoresByIDFunc != nil {
		return m.GetScoresByIDFunc(discordID, ascending)
	}
	return nil, nil
}

func (m *MockStore) GetScoreByIDAndNumber(discordID string, gameNumber int, ascending bool) (*Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetScoreByIDAndNumberFunc != nil {
		return m.GetScoreByIDAndNumberFunc(discordID, gameNumber, ascending)
	}
	return nil, nil
}

func (m *MockStore) GetLeaderboard() ([]LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetLeaderboardFunc != nil {
		return m.GetLeaderboardFunc()
	}
	return nil, nil
}
