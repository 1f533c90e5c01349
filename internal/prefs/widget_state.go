package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jundev/oneline/internal/widget"
)

const stateFile = "widget_state.json"

// DefaultPath is the shared preferences file under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "oneline", stateFile), nil
}

type stateDoc struct {
	HasWrittenToday  bool    `json:"hasWrittenToday"`
	CurrentStreak    int     `json:"currentStreak"`
	LastEntryContent *string `json:"lastEntryContent,omitempty"`
}

// FileStore keeps the widget snapshot in a flat JSON object, the file-system
// counterpart of platform shared preferences. Writes go to a temp file that is
// renamed over the target, so readers in other processes see either the old
// or the new snapshot.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// Path is the file the store reads and writes.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) ReadState(ctx context.Context) (widget.State, error) {
	if err := ctx.Err(); err != nil {
		return widget.DefaultState(), err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return widget.DefaultState(), nil
		}
		return widget.DefaultState(), fmt.Errorf("read widget state: %w", err)
	}
	var doc stateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return widget.DefaultState(), fmt.Errorf("decode widget state: %w", err)
	}
	return widget.State{
		HasWrittenToday:  doc.HasWrittenToday,
		CurrentStreak:    doc.CurrentStreak,
		LastEntryContent: doc.LastEntryContent,
	}.Normalized(), nil
}

func (s *FileStore) WriteState(ctx context.Context, st widget.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := stateDoc{HasWrittenToday: st.HasWrittenToday, CurrentStreak: st.CurrentStreak}
	if st.LastEntryContent != nil && *st.LastEntryContent != "" {
		doc.LastEntryContent = st.LastEntryContent
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir prefs dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, stateFile+".*.tmp")
	if err != nil {
		return fmt.Errorf("write widget state: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write widget state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write widget state: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Clear deletes the preferences file; the next read returns defaults.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
