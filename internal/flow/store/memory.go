package store

import (
	"context"
	"sync"

	"github.com/odyssey-erp/finflow/internal/flow"
)

// Memory keeps the encoded snapshot in process.
type Memory struct {
	mu       sync.Mutex
	payload  []byte
	revision int64
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load decodes the stored snapshot.
func (m *Memory) Load(ctx context.Context) (flow.Snapshot, error) {
	m.mu.Lock()
	payload := m.payload
	m.mu.Unlock()
	if payload == nil {
		return flow.Initial(), flow.ErrSnapshotNotFound
	}
	return flow.Decode(payload)
}

// Save replaces the stored snapshot.
func (m *Memory) Save(ctx context.Context, s flow.Snapshot) error {
	payload, err := flow.Encode(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.payload = payload
	m.mu.Unlock()
	return nil
}

// SaveRevision stores payload when revision is newer than the last one written.
func (m *Memory) SaveRevision(ctx context.Context, payload []byte, revision int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if revision <= m.revision {
		return false, nil
	}
	m.payload = append([]byte(nil), payload...)
	m.revision = revision
	return true, nil
}
