package types

import "errors"

// Store is the persistence capability behind the repository. Every repository
// operation performs a full Load, mutates the returned snapshot, and writes
// it back with Persist; implementations never see partial updates.
type Store interface {
	// Load returns the last-persisted state.
	Load() (State, error)

	// Persist replaces the stored state with the given snapshot. From the
	// caller's perspective the write is atomic: a subsequent Load observes
	// either the previous state or the new one, never a partial write.
	Persist(State) error
}

// Store and entity errors. Callers match these with errors.Is; the concrete
// message carries the offending ID or path.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrIO            = errors.New("storage unreadable or unwritable")
	ErrBadFormat     = errors.New("persisted state is malformed")
	ErrInvalidStatus = errors.New("invalid status value")
	ErrCorrupt       = errors.New("state corrupted")
)
