package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/cardledger/internal/models"
	"github.com/mmynk/cardledger/internal/seed"
	"github.com/mmynk/cardledger/internal/storage"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	initial := seed.State(models.ThemeDark)
	store := New(initial)
	defer store.Close()

	t.Run("Current returns the initial snapshot", func(t *testing.T) {
		got, err := store.Current(ctx)
		require.NoError(t, err)
		assert.Same(t, initial, got)
	})

	t.Run("Swap publishes when prev is current", func(t *testing.T) {
		next := initial.Clone()
		next.Theme = models.ThemeLight

		require.NoError(t, store.Swap(ctx, initial, next))

		got, err := store.Current(ctx)
		require.NoError(t, err)
		assert.Same(t, next, got)
	})

	t.Run("Swap rejects a stale prev", func(t *testing.T) {
		err := store.Swap(ctx, initial, initial.Clone())
		assert.ErrorIs(t, err, storage.ErrStaleSnapshot)
	})

	t.Run("Reset replaces unconditionally", func(t *testing.T) {
		empty := seed.Empty(models.ThemeDark)
		require.NoError(t, store.Reset(ctx, empty))

		got, err := store.Current(ctx)
		require.NoError(t, err)
		assert.Same(t, empty, got)
	})
}

func TestStore_NilInitial(t *testing.T) {
	got, err := New(nil).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, got.Theme)
	assert.Empty(t, got.Cards)
}

func TestStore_Closed(t *testing.T) {
	ctx := context.Background()
	store := New(nil)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	_, err := store.Current(ctx)
	assert.ErrorIs(t, err, storage.ErrClosed)
	assert.ErrorIs(t, store.Swap(ctx, nil, nil), storage.ErrClosed)
	assert.ErrorIs(t, store.Reset(ctx, nil), storage.ErrClosed)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Current(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_ConcurrentSwapsHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	initial := seed.Empty(models.ThemeDark)
	store := New(initial)

	const writers = 16
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.Swap(ctx, initial, initial.Clone()) == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}
