package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/storyboard/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// DatabaseFileName is the SQLite database inside the data directory.
const DatabaseFileName = "storyboard.db"

// metaKeyLastItemID is the meta-table key holding State.LastItemID.
const metaKeyLastItemID = "last_item_id"

// SQLiteStore persists the state in a SQLite database. Load materializes the
// full state from the tables; Persist rewrites every table inside one
// transaction, mirroring the whole-document semantics of the file store.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// schema exists. The caller must Close the store when done.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data directory: %v", types.ErrIO, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", types.ErrIO, path, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: apply schema: %v", types.ErrIO, err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

// Close releases the database handle. Idempotent.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("%w: close %s: %v", types.ErrIO, s.path, err)
	}
	return nil
}

// Load builds the full state from the epics, stories, epic_stories, and meta
// tables. Row data that does not form a well-formed state is ErrBadFormat.
func (s *SQLiteStore) Load() (types.State, error) {
	state := types.NewState()

	rows, err := s.db.Query("SELECT epic_id, name, description, status FROM epics")
	if err != nil {
		return types.State{}, fmt.Errorf("%w: query epics: %v", types.ErrIO, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var e types.Epic
		if err := rows.Scan(&id, &e.Name, &e.Description, &e.Status); err != nil {
			return types.State{}, fmt.Errorf("%w: scan epic: %v", types.ErrIO, err)
		}
		e.Stories = []string{}
		state.Epics[id] = e
	}
	if err := rows.Err(); err != nil {
		return types.State{}, fmt.Errorf("%w: iterate epics: %v", types.ErrIO, err)
	}

	storyRows, err := s.db.Query("SELECT story_id, name, description, status FROM stories")
	if err != nil {
		return types.State{}, fmt.Errorf("%w: query stories: %v", types.ErrIO, err)
	}
	defer storyRows.Close()
	for storyRows.Next() {
		var id string
		var st types.Story
		if err := storyRows.Scan(&id, &st.Name, &st.Description, &st.Status); err != nil {
			return types.State{}, fmt.Errorf("%w: scan story: %v", types.ErrIO, err)
		}
		state.Stories[id] = st
	}
	if err := storyRows.Err(); err != nil {
		return types.State{}, fmt.Errorf("%w: iterate stories: %v", types.ErrIO, err)
	}

	memberRows, err := s.db.Query(
		"SELECT epic_id, story_id FROM epic_stories ORDER BY epic_id, position")
	if err != nil {
		return types.State{}, fmt.Errorf("%w: query epic_stories: %v", types.ErrIO, err)
	}
	defer memberRows.Close()
	for memberRows.Next() {
		var epicID, storyID string
		if err := memberRows.Scan(&epicID, &storyID); err != nil {
			return types.State{}, fmt.Errorf("%w: scan epic_stories: %v", types.ErrIO, err)
		}
		e, ok := state.Epics[epicID]
		if !ok {
			return types.State{}, fmt.Errorf("%w: membership row for missing epic %s", types.ErrBadFormat, epicID)
		}
		e.Stories = append(e.Stories, storyID)
		state.Epics[epicID] = e
	}
	if err := memberRows.Err(); err != nil {
		return types.State{}, fmt.Errorf("%w: iterate epic_stories: %v", types.ErrIO, err)
	}

	var lastItemID string
	err = s.db.QueryRow("SELECT value FROM meta WHERE key = ?", metaKeyLastItemID).Scan(&lastItemID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return types.State{}, fmt.Errorf("%w: query meta: %v", types.ErrIO, err)
	}
	state.LastItemID = lastItemID

	if err := state.Validate(); err != nil {
		return types.State{}, fmt.Errorf("%w: %w", types.ErrBadFormat, err)
	}
	return state, nil
}

// Persist rewrites every table from the given snapshot in one transaction.
func (s *SQLiteStore) Persist(state types.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", types.ErrIO, err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM epic_stories",
		"DELETE FROM stories",
		"DELETE FROM epics",
		"DELETE FROM meta",
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrIO, stmt, err)
		}
	}

	for id, e := range state.Epics {
		if _, err := tx.Exec(
			"INSERT INTO epics (epic_id, name, description, status) VALUES (?, ?, ?, ?)",
			id, e.Name, e.Description, string(e.Status)); err != nil {
			return fmt.Errorf("%w: insert epic %s: %v", types.ErrIO, id, err)
		}
	}
	for id, st := range state.Stories {
		if _, err := tx.Exec(
			"INSERT INTO stories (story_id, name, description, status) VALUES (?, ?, ?, ?)",
			id, st.Name, st.Description, string(st.Status)); err != nil {
			return fmt.Errorf("%w: insert story %s: %v", types.ErrIO, id, err)
		}
	}
	for epicID, e := range state.Epics {
		for pos, storyID := range e.Stories {
			if _, err := tx.Exec(
				"INSERT INTO epic_stories (epic_id, story_id, position) VALUES (?, ?, ?)",
				epicID, storyID, pos); err != nil {
				return fmt.Errorf("%w: insert membership %s/%s: %v", types.ErrIO, epicID, storyID, err)
			}
		}
	}
	if _, err := tx.Exec(
		"INSERT INTO meta (key, value) VALUES (?, ?)",
		metaKeyLastItemID, state.LastItemID); err != nil {
		return fmt.Errorf("%w: insert meta: %v", types.ErrIO, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", types.ErrIO, err)
	}
	return nil
}
