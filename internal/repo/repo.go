// Package repo implements the data layer over a Store. It owns every
// create/read/update/delete operation on epics and stories and maintains
// referential integrity between the two: deleting an epic removes the stories
// it references, and deleting a story removes it from its owning epic's list.
//
// Every operation is an independent load-mutate-persist cycle. There is no
// cached copy between calls, so two sequential calls always observe each
// other's effects through the store.
package repo

import (
	"fmt"

	"github.com/mesh-intelligence/storyboard/pkg/types"
)

// Repository mediates all reads and writes of the aggregate state.
type Repository struct {
	store types.Store
	newID IDGenerator
}

// New creates a repository over the given store. A nil generator selects the
// default short random-alphanumeric scheme.
func New(store types.Store, gen IDGenerator) *Repository {
	if gen == nil {
		gen = ShortID
	}
	return &Repository{store: store, newID: gen}
}

// State returns the current persisted state. Pages use this for read-only
// rendering; the returned snapshot is the caller's to keep.
func (r *Repository) State() (types.State, error) {
	return r.store.Load()
}

// CreateEpic adds a new epic with StatusOpen and no stories, records its id
// as the last touched item, and returns the generated id.
func (r *Repository) CreateEpic(name, description string) (string, error) {
	state, err := r.store.Load()
	if err != nil {
		return "", err
	}

	id := r.newID()
	state.Epics[id] = types.NewEpic(name, description)
	state.LastItemID = id

	if err := r.store.Persist(state); err != nil {
		return "", err
	}
	return id, nil
}

// CreateStory adds a new story with StatusOpen under the given epic and
// returns the generated id. Fails with ErrNotFound if the epic does not
// exist; the failed call leaves the persisted state untouched.
func (r *Repository) CreateStory(name, description, epicID string) (string, error) {
	state, err := r.store.Load()
	if err != nil {
		return "", err
	}

	epic, ok := state.Epics[epicID]
	if !ok {
		return "", fmt.Errorf("%w: epic %s", types.ErrNotFound, epicID)
	}

	id := r.newID()
	state.Stories[id] = types.NewStory(name, description)
	epic.Stories = append(epic.Stories, id)
	state.Epics[epicID] = epic
	state.LastItemID = id

	if err := r.store.Persist(state); err != nil {
		return "", err
	}
	return id, nil
}

// DeleteEpic removes the epic and every story it references.
func (r *Repository) DeleteEpic(epicID string) error {
	state, err := r.store.Load()
	if err != nil {
		return err
	}

	epic, ok := state.Epics[epicID]
	if !ok {
		return fmt.Errorf("%w: epic %s", types.ErrNotFound, epicID)
	}

	for _, storyID := range epic.Stories {
		delete(state.Stories, storyID)
	}
	delete(state.Epics, epicID)
	state.LastItemID = epicID

	return r.store.Persist(state)
}

// DeleteStory removes the story from the global story table and from the
// given epic's reference list. The story must exist globally and the epic
// must exist; a story absent from that epic's list is not itself an error,
// the list removal is simply a no-op.
func (r *Repository) DeleteStory(epicID, storyID string) error {
	state, err := r.store.Load()
	if err != nil {
		return err
	}

	if _, ok := state.Stories[storyID]; !ok {
		return fmt.Errorf("%w: story %s", types.ErrNotFound, storyID)
	}
	epic, ok := state.Epics[epicID]
	if !ok {
		return fmt.Errorf("%w: epic %s", types.ErrNotFound, epicID)
	}

	kept := epic.Stories[:0]
	for _, id := range epic.Stories {
		if id != storyID {
			kept = append(kept, id)
		}
	}
	epic.Stories = kept
	state.Epics[epicID] = epic

	delete(state.Stories, storyID)
	state.LastItemID = storyID

	return r.store.Persist(state)
}

// UpdateEpicStatus sets the status of an existing epic.
func (r *Repository) UpdateEpicStatus(epicID string, status types.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidStatus, status)
	}

	state, err := r.store.Load()
	if err != nil {
		return err
	}

	epic, ok := state.Epics[epicID]
	if !ok {
		return fmt.Errorf("%w: epic %s", types.ErrNotFound, epicID)
	}
	epic.Status = status
	state.Epics[epicID] = epic

	return r.store.Persist(state)
}

// UpdateStoryStatus sets the status of an existing story.
func (r *Repository) UpdateStoryStatus(storyID string, status types.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidStatus, status)
	}

	state, err := r.store.Load()
	if err != nil {
		return err
	}

	story, ok := state.Stories[storyID]
	if !ok {
		return fmt.Errorf("%w: story %s", types.ErrNotFound, storyID)
	}
	story.Status = status
	state.Stories[storyID] = story

	return r.store.Persist(state)
}

// GetEpic returns a copy of the epic with the given id.
func (r *Repository) GetEpic(epicID string) (types.Epic, error) {
	state, err := r.store.Load()
	if err != nil {
		return types.Epic{}, err
	}

	epic, ok := state.Epics[epicID]
	if !ok {
		return types.Epic{}, fmt.Errorf("%w: epic %s", types.ErrNotFound, epicID)
	}
	return epic.Clone(), nil
}

// GetEpicStory returns a copy of the story with the given id, scoped to the
// given epic: the story must appear in that epic's reference list, not merely
// in the global table. A story referenced by the epic but missing from the
// global table indicates corruption and is reported as ErrCorrupt.
func (r *Repository) GetEpicStory(epicID, storyID string) (types.Story, error) {
	state, err := r.store.Load()
	if err != nil {
		return types.Story{}, err
	}

	epic, ok := state.Epics[epicID]
	if !ok {
		return types.Story{}, fmt.Errorf("%w: epic %s", types.ErrNotFound, epicID)
	}
	if !epic.References(storyID) {
		return types.Story{}, fmt.Errorf("%w: story %s in epic %s", types.ErrNotFound, storyID, epicID)
	}

	story, ok := state.Stories[storyID]
	if !ok {
		return types.Story{}, fmt.Errorf("%w: epic %s references missing story %s",
			types.ErrCorrupt, epicID, storyID)
	}
	return story, nil
}
