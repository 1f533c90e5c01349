package refresh

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a fixed set of files. It watches their parent
// directories, which also catches files that are replaced by rename.
type Watcher struct {
	fw       *fsnotify.Watcher
	names    map[string]struct{}
	onChange func(path string)
}

// Watch starts watching paths. Missing parent directories are created.
func Watch(paths []string, onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("new watcher: %w", err)
	}
	w := &Watcher{fw: fw, names: map[string]struct{}{}, onChange: onChange}
	dirs := map[string]struct{}{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, err
		}
		w.names[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run delivers change notifications until ctx is done or Close is called.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if _, ok := w.names[name]; ok {
				w.onChange(name)
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("warn: watch: %v", err)
		}
	}
}

func (w *Watcher) Close() error { return w.fw.Close() }

// Touch writes the current time into path so watchers of it fire. It is how
// a separate process asks running widgets to reload.
func Touch(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	stamp := strconv.FormatInt(time.Now().UnixNano(), 10)
	return os.WriteFile(path, []byte(stamp+"\n"), 0o600)
}
