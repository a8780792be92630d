package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherTriggersDebouncedRebuild(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "oss"), 0o755))

	rebuilt := make(chan struct{}, 1)
	w, err := New(src, func() error {
		select {
		case rebuilt <- struct{}{}:
		default:
		}
		return nil
	})
	require.NoError(t, err)
	w.debounceTime = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register directories.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(src, "oss", "a.md"), []byte("page"), 0o644))

	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a rebuild after source change")
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcherRejectsMissingRoot(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing"), func() error { return nil })
	require.NoError(t, err)

	err = w.Run(context.Background())
	require.Error(t, err)
}
