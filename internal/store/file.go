// Package store provides the concrete Store implementations: a JSON file
// store, a SQLite store, and an in-memory store for tests and embedding.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/storyboard/pkg/types"
)

// StateFileName is the JSON state document inside the data directory.
const StateFileName = "state.json"

// FileStore persists the whole state as a single JSON document. Writes go
// through a temp file, fsync, rename so a subsequent Load never observes a
// partial write.
type FileStore struct {
	path string
}

// NewFileStore creates a file store backed by the given path. The file is
// not touched until Load or Persist; use Init to lay down an empty state.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Init writes an empty state document if the file does not exist yet.
// Idempotent: an existing file is left alone.
func (s *FileStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", types.ErrIO, s.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: create data directory: %v", types.ErrIO, err)
	}
	return s.Persist(types.NewState())
}

// Load reads the full document and deserializes it. An unreadable path is
// ErrIO; content that does not parse into the expected schema is ErrBadFormat.
func (s *FileStore) Load() (types.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return types.State{}, fmt.Errorf("%w: read %s: %v", types.ErrIO, s.path, err)
	}

	var state types.State
	if err := json.Unmarshal(data, &state); err != nil {
		return types.State{}, fmt.Errorf("%w: parse %s: %v", types.ErrBadFormat, s.path, err)
	}
	normalize(&state)
	if err := state.Validate(); err != nil {
		return types.State{}, fmt.Errorf("%w: %w", types.ErrBadFormat, err)
	}
	return state, nil
}

// Persist serializes the state and atomically replaces the backing file.
func (s *FileStore) Persist(state types.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrBadFormat, err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", types.ErrIO, s.path, err)
	}
	return nil
}

// normalize allocates any maps or slices the decoder left nil so callers can
// index and append without nil checks.
func normalize(state *types.State) {
	if state.Epics == nil {
		state.Epics = make(map[string]types.Epic)
	}
	if state.Stories == nil {
		state.Stories = make(map[string]types.Story)
	}
	for id, e := range state.Epics {
		if e.Stories == nil {
			e.Stories = []string{}
			state.Epics[id] = e
		}
	}
}

// writeFileAtomic writes data to path using the temp-file, fsync, rename
// pattern.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".state-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
