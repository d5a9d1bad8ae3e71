// internal/store/memory.go
//
// In-memory round store keyed by session ID.
//
// Characteristics:
//   - At most one *game.Round per session; Replace swaps it wholesale.
//   - Update runs a mutation under the store lock so requests from the same
//     session never interleave inside a round operation.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/langr/internal/game"
)

// ErrNotFound is returned when a session has no active round.
var ErrNotFound = errors.New("not found")

// Store defines the round persistence interface.
type Store interface {
	// Replace installs r as the session's only round, discarding any previous one.
	Replace(ctx context.Context, sessionID string, r *game.Round) error

	// Get returns a snapshot of the session's round.
	Get(ctx context.Context, sessionID string) (game.Round, error)

	// Update applies fn to the session's round under the store lock and
	// returns a snapshot taken after fn.
	Update(ctx context.Context, sessionID string, fn func(*game.Round)) (game.Round, error)
}

// memory is a map-based Store implementation.
type memory struct {
	mu     sync.Mutex             // guards rounds and every round it holds
	rounds map[string]*game.Round // keyed by session ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Round)}
}

func (m *memory) Replace(ctx context.Context, sessionID string, r *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[sessionID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, sessionID string) (game.Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rounds[sessionID]
	if !ok {
		return game.Round{}, ErrNotFound
	}
	return snapshot(r), nil
}

func (m *memory) Update(ctx context.Context, sessionID string, fn func(*game.Round)) (game.Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rounds[sessionID]
	if !ok {
		return game.Round{}, ErrNotFound
	}
	fn(r)
	return snapshot(r), nil
}

// snapshot copies r so callers can read it after the lock is released.
func snapshot(r *game.Round) game.Round {
	c := *r
	c.Guesses = append([]string{}, r.Guesses...)
	return c
}
