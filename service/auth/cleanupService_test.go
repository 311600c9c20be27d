package authsvc

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCleaner_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTokenStore()
	require.NoError(t, s.Put(ctx, "old", "admin", time.Now().Add(-time.Minute)))
	require.NoError(t, s.Put(ctx, "new", "admin", time.Now().Add(time.Hour)))
	require.NoError(t, s.Put(ctx, "forever", "admin", time.Time{}))

	c := NewCleaner(s, slog.New(slog.NewTextHandler(io.Discard, nil)))
	n, err := c.PurgeExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.Equal(t, 2, s.Len())
}

func TestCleaner_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewMemoryTokenStore()
	require.NoError(t, s.Put(ctx, "old", "admin", time.Now().Add(-time.Minute)))

	done := make(chan struct{})
	go func() {
		NewCleaner(s, slog.New(slog.NewTextHandler(io.Discard, nil))).Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleaner did not stop")
	}
}
