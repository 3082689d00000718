// Package history stores per-candidate outcomes of training runs so past
// comparisons can be inspected after the fact.
package history

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/core"
)

// MemoryStore is an in-memory implementation of the RunRecorder interface.
// Entries live for the duration of the process only.
type MemoryStore struct {
	mu      sync.Mutex
	entries []core.RunEntry
	logger  *zap.Logger
}

// NewMemoryStore creates a new in-memory run recorder.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		logger: logger,
	}
}

// Record appends one candidate outcome.
func (s *MemoryStore) Record(ctx context.Context, entry *core.RunEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *entry)
	return nil
}

// Entries returns a copy of everything recorded so far.
func (s *MemoryStore) Entries() []core.RunEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.RunEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
