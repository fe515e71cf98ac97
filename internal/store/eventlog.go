package store

import (
	"context"
	"sync"

	"github.com/serroba/linkledger/internal/shortener"
)

// MemoryEventLog is an append-only, in-memory shortener.EventLog.
type MemoryEventLog struct {
	mu     sync.RWMutex
	events []shortener.Event
}

// NewMemoryEventLog creates an empty event log.
func NewMemoryEventLog() *MemoryEventLog {
	return &MemoryEventLog{}
}

// Append assigns the next sequence number and records the event.
func (l *MemoryEventLog) Append(_ context.Context, event shortener.Event) (shortener.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	event.Sequence = uint64(len(l.events)) + 1
	l.events = append(l.events, event)

	return event, nil
}

// Events returns a copy of the log in sequence order.
func (l *MemoryEventLog) Events(_ context.Context) ([]shortener.Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]shortener.Event, len(l.events))
	copy(out, l.events)

	return out, nil
}

// Len returns the number of recorded events.
func (l *MemoryEventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.events)
}

// Compile-time check.
var _ shortener.EventLog = (*MemoryEventLog)(nil)
