package refresh

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWatchedFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	trigger := filepath.Join(dir, "reload")
	other := filepath.Join(dir, "unrelated")

	changed := make(chan string, 16)
	w, err := Watch([]string{trigger}, func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))
	require.NoError(t, Touch(trigger))

	want, err := filepath.Abs(trigger)
	require.NoError(t, err)
	select {
	case p := <-changed:
		require.Equal(t, want, p)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchCreatesMissingDirectories(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "a", "b", "widget_state.json")
	w, err := Watch([]string{path}, func(string) {})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.DirExists(t, filepath.Dir(path))
}
