package game

import "sync"

// BestScoreStore persists the best score across sessions.
// The controller reads it once at construction and writes it only when the
// score beats the last known best.
type BestScoreStore interface {
	Get() (int, error)
	Set(score int) error
}

// MemoryBest keeps the best score in memory. Used when no database is
// available and in tests.
type MemoryBest struct {
	mu    sync.Mutex
	score int
	sets  int
}

// NewMemoryBest creates a store holding score.
func NewMemoryBest(score int) *MemoryBest {
	return &MemoryBest{score: score}
}

// Get returns the stored score.
func (m *MemoryBest) Get() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// Set replaces the stored score.
func (m *MemoryBest) Set(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	m.sets++
	return nil
}

// Sets returns how many times Set was called.
func (m *MemoryBest) Sets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}
