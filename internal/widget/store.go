package widget

import (
	"context"
	"sync"
)

// StateStore is the shared key/value map between the host app and its
// widgets. Implementations must make WriteState atomic from the reader's
// point of view: a ReadState never observes a mix of old and new fields.
type StateStore interface {
	ReadState(ctx context.Context) (State, error)
	WriteState(ctx context.Context, s State) error
}

// MemoryStore is an in-process StateStore.
type MemoryStore struct {
	mu    sync.RWMutex
	state State
	set   bool
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) ReadState(ctx context.Context) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return DefaultState(), nil
	}
	out := m.state
	if out.LastEntryContent != nil {
		out.LastEntryContent = StringPtr(*out.LastEntryContent)
	}
	return out, nil
}

func (m *MemoryStore) WriteState(ctx context.Context, s State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.LastEntryContent != nil {
		s.LastEntryContent = StringPtr(*s.LastEntryContent)
	}
	m.mu.Lock()
	m.state = s
	m.set = true
	m.mu.Unlock()
	return nil
}
