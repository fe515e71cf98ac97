package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/serroba/linkledger/internal/shortener"
	"github.com/serroba/linkledger/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEventLog_Append(t *testing.T) {
	t.Run("assigns gapless sequence numbers", func(t *testing.T) {
		log := store.NewMemoryEventLog()
		ctx := context.Background()

		first, err := log.Append(ctx, shortener.NewLinkCreated("abc123", "https://example.com", time.Now()))
		require.NoError(t, err)

		second, err := log.Append(ctx, shortener.NewLinkRedirected("abc123", time.Now()))
		require.NoError(t, err)

		assert.Equal(t, uint64(1), first.Sequence)
		assert.Equal(t, uint64(2), second.Sequence)
		assert.Equal(t, 2, log.Len())
	})

	t.Run("keeps append order", func(t *testing.T) {
		log := store.NewMemoryEventLog()
		ctx := context.Background()

		_, _ = log.Append(ctx, shortener.NewLinkCreated("abc123", "https://example.com", time.Now()))
		_, _ = log.Append(ctx, shortener.NewLinkRedirected("abc123", time.Now()))

		events, err := log.Events(ctx)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, shortener.EventLinkCreated, events[0].Kind)
		assert.Equal(t, shortener.EventLinkRedirected, events[1].Kind)
	})
}

func TestMemoryEventLog_Events(t *testing.T) {
	t.Run("returns a copy", func(t *testing.T) {
		log := store.NewMemoryEventLog()
		ctx := context.Background()
		_, _ = log.Append(ctx, shortener.NewLinkCreated("abc123", "https://example.com", time.Now()))

		events, _ := log.Events(ctx)
		events[0].URL = "https://tampered.com"

		again, _ := log.Events(ctx)
		assert.Equal(t, shortener.URL("https://example.com"), again[0].URL)
	})

	t.Run("empty log returns no events", func(t *testing.T) {
		log := store.NewMemoryEventLog()

		events, err := log.Events(context.Background())

		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
