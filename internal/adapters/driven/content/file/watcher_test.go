package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Give the run loop a moment to start before touching the file.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"books": []}`), 0o644))

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("change callback never fired")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644))

	select {
	case <-changed:
		t.Fatal("callback fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_RunStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	w, err := NewWatcher(path, func() {})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("run loop did not stop on cancel")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "corpus.json"), func() {})
	assert.Error(t, err)
}

func TestWatcher_MatchEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	w, err := NewWatcher(path, func() {})
	require.NoError(t, err)
	defer w.Close()

	assert.True(t, w.matches(fsnotify.Event{Name: path, Op: fsnotify.Write}))
	assert.True(t, w.matches(fsnotify.Event{Name: path, Op: fsnotify.Create}))
	assert.False(t, w.matches(fsnotify.Event{Name: filepath.Join(dir, "other.json"), Op: fsnotify.Write}))
	assert.False(t, w.matches(fsnotify.Event{Name: path, Op: fsnotify.Chmod}))
}
