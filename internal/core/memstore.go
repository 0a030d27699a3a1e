package core

import (
	"context"
	"sync"
)

// MemStore is an in-process HighScoreStore and VictoryStore. It backs
// sessions started without a database and engine tests.
type MemStore struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]int)}
}

func (m *MemStore) HighScore(_ context.Context, key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *MemStore) SaveHighScore(_ context.Context, key string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.values[key] {
		m.values[key] = score
	}
	return nil
}

func (m *MemStore) Victories(_ context.Context, key string) (int, error) {
	return m.HighScore(context.Background(), key)
}

func (m *MemStore) AddVictory(_ context.Context, key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key]++
	return m.values[key], nil
}
