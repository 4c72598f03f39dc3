// Shared helpers for storyboard CLI commands.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/mesh-intelligence/storyboard/internal/store"
	"github.com/mesh-intelligence/storyboard/pkg/types"
)

// openStore constructs the Store selected by cfg.Backend. The returned close
// function releases backend resources and must be called when done; for
// backends without resources to release it is a no-op.
func openStore(cfg types.Config) (types.Store, func() error, error) {
	switch cfg.Backend {
	case types.BackendJSON:
		fs := store.NewFileStore(filepath.Join(cfg.DataDir, store.StateFileName))
		if err := fs.Init(); err != nil {
			return nil, nil, err
		}
		return fs, noopClose, nil

	case types.BackendSQLite:
		ss, err := store.NewSQLiteStore(filepath.Join(cfg.DataDir, store.DatabaseFileName))
		if err != nil {
			return nil, nil, err
		}
		return ss, ss.Close, nil

	case types.BackendMemory:
		return store.NewMemoryStore(), noopClose, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}
}

func noopClose() error { return nil }
