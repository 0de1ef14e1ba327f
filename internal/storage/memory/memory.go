// Package memory provides a volatile, in-process implementation of the
// storage.Store interface. Nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/cardledger/internal/models"
	"github.com/mmynk/cardledger/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store holds one snapshot pointer behind a RWMutex.
type Store struct {
	mu      sync.RWMutex
	current *models.AppState
	closed  bool
}

// New creates a Store that starts out publishing initial.
// A nil initial is replaced by an empty dark-theme state.
func New(initial *models.AppState) *Store {
	if initial == nil {
		initial = &models.AppState{Theme: models.ThemeDark}
	}
	return &Store{current: initial}
}

// Current returns the published snapshot.
func (s *Store) Current(ctx context.Context) (*models.AppState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, storage.ErrClosed
	}
	return s.current, nil
}

// Swap publishes next if prev is still current.
func (s *Store) Swap(ctx context.Context, prev, next *models.AppState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrClosed
	}
	if s.current != prev {
		return storage.ErrStaleSnapshot
	}
	s.current = next
	return nil
}

// Reset publishes state unconditionally.
func (s *Store) Reset(ctx context.Context, state *models.AppState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrClosed
	}
	s.current = state
	return nil
}

// Close drops the snapshot. Closing twice is harmless.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.current = nil
	return nil
}
