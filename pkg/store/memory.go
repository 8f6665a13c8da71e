package store

import (
	"context"
	"sync"

	"github.com/goliatone/go-loandocs/pkg/canonical"
)

// Memory is the process-local RecordStore. It does not survive restarts and
// does not scale past one process; deployments behind multiple servers should
// use the Redis store instead.
type Memory struct {
	mu      sync.RWMutex
	records map[string]canonical.Record
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]canonical.Record),
	}
}

// Load implements RecordStore.
func (m *Memory) Load(_ context.Context, sessionID string) (canonical.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[sessionID]
	if !ok {
		return canonical.Record{}, ErrNotFound
	}
	return rec.Clone(), nil
}

// Save implements RecordStore.
func (m *Memory) Save(_ context.Context, sessionID string, rec canonical.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[sessionID] = rec.Clone()
	return nil
}

// Delete implements RecordStore.
func (m *Memory) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, sessionID)
	return nil
}
