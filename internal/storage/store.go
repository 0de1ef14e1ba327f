// Package storage provides abstractions for holding the published ledger snapshot.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/cardledger/internal/models"
)

var (
	// ErrStaleSnapshot is returned by Swap when another writer published first.
	ErrStaleSnapshot = errors.New("snapshot is stale")

	// ErrClosed is returned by every method once the store has been closed.
	ErrClosed = errors.New("store is closed")
)

// Store defines the interface for snapshot storage.
// This abstraction lets the service layer publish snapshots without knowing
// where they live.
type Store interface {
	// Current returns the published snapshot. Callers must treat it as
	// read-only.
	Current(ctx context.Context) (*models.AppState, error)

	// Swap publishes next if prev is still the current snapshot.
	// Returns ErrStaleSnapshot otherwise.
	Swap(ctx context.Context, prev, next *models.AppState) error

	// Reset publishes state unconditionally.
	Reset(ctx context.Context, state *models.AppState) error

	// Close releases any resources held by the store.
	Close() error
}
