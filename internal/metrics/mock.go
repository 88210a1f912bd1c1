package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	messagesProcessed int
	resultsIngested   int
	duplicateResults  int
	commandsProcessed int
	notifSent         int
	notifFailed       int
	ingestDurations   []float64
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		ingestDurations: make([]float64, 0),
	}
}

func (m *Mock) IncMessagesProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messagesProcessed++
}

func (m *Mock) IncResultsIngested() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resultsIngested++
}

func (m *Mock) IncDuplicateResults() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duplicateResults++
}

func (m *Mock) IncCommandsProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandsProcessed++
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) ObserveIngestDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ingestDurations = append(m.ingestDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MessagesProcessed returns the number of times IncMessagesProcessed was called.
func (m *Mock) MessagesProcessed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.messagesProcessed
}

// ResultsIngested returns the number of times IncResultsIngested was called.
func (m *Mock) ResultsIngested() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resultsIngested
}

// DuplicateResults returns the number of times IncDuplicateResults was called.
func (m *Mock) DuplicateResults() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duplicateResults
}

// CommandsProcessed returns the number of times IncCommandsProcessed was called.
func (m *Mock) CommandsProcessed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commandsProcessed
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailed returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}

// IngestDurations returns all durations passed to ObserveIngestDuration.
func (m *Mock) IngestDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.ingestDurations...)
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
