package runlog

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity matches the scanner UI's historical in-memory window.
const DefaultCapacity = 50

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Entry is one recorded scan run.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"ts"`
	User      string    `json:"user"`
	Benchmark string    `json:"benchmark"`
	Outcome   string    `json:"outcome"`
}

// Log is a fixed-capacity, newest-first record of scan runs. Entries live
// only in process memory; restarting the server starts an empty log.
type Log struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
	now      func() time.Time
}

// New returns a log holding at most capacity entries. Non-positive
// capacities get DefaultCapacity.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		capacity: capacity,
		now:      time.Now,
	}
}

// Record prepends a run entry, evicting the oldest once the log is full.
// Blank fields are defaulted rather than rejected.
func (l *Log) Record(user, benchmark, outcome string) Entry {
	user = strings.TrimSpace(user)
	if user == "" {
		user = "user"
	}
	benchmark = strings.TrimSpace(benchmark)

	switch strings.ToLower(strings.TrimSpace(outcome)) {
	case OutcomeError:
		outcome = OutcomeError
	default:
		outcome = OutcomeSuccess
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: l.now().UTC(),
		User:      user,
		Benchmark: benchmark,
		Outcome:   outcome,
	}

	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
	return entry
}

// Entries returns a newest-first snapshot.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Entry(nil), l.entries...)
}

// Len reports the number of retained entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
