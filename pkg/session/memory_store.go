package session

import (
	"context"
	"sync"
)

// MemoryStore is a process-local FlagStore. Flags are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	flags map[string]map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{flags: make(map[string]map[string]bool)}
}

func (m *MemoryStore) Get(_ context.Context, sessionID, flag string) (bool, error) {
	if err := checkArgs(sessionID, flag); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[sessionID][flag], nil
}

func (m *MemoryStore) Set(_ context.Context, sessionID, flag string, value bool) error {
	if err := checkArgs(sessionID, flag); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.flags[sessionID] == nil {
		m.flags[sessionID] = make(map[string]bool)
	}
	m.flags[sessionID][flag] = value
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID, flag string) error {
	if err := checkArgs(sessionID, flag); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flags[sessionID], flag)
	if len(m.flags[sessionID]) == 0 {
		delete(m.flags, sessionID)
	}
	return nil
}
