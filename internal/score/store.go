// Package score persists best scores outside the game engine.
package score

import (
	"errors"
	"sync"
	"time"
)

// ErrNegativeScore is returned when saving a record with a negative score.
var ErrNegativeScore = errors.New("score: negative score")

// Record is the best result stored for one game key.
type Record struct {
	Score int       `json:"score"`
	RunID string    `json:"run_id,omitempty"`
	SetAt time.Time `json:"set_at,omitempty"`
}

// Store reads and writes best-score records keyed by game identity.
type Store interface {
	Load(key string) (Record, error)
	Save(key string, rec Record) error
}

// MemoryStore keeps records in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	recs map[string]Record
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: make(map[string]Record)}
}

// Load returns the record for key, or a zero Record when none exists.
func (m *MemoryStore) Load(key string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recs[key], nil
}

// Save replaces the record for key.
func (m *MemoryStore) Save(key string, rec Record) error {
	if rec.Score < 0 {
		return ErrNegativeScore
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs[key] = rec
	return nil
}
