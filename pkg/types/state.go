package types

import "fmt"

// State is the full snapshot of tracked work: every epic, every story, and
// the ID most recently touched by a mutating operation. Epic IDs and story
// IDs share one textual ID space but the two maps are independent namespaces.
type State struct {
	Epics      map[string]Epic  `json:"epics"`
	Stories    map[string]Story `json:"stories"`
	LastItemID string           `json:"last_item_id"`
}

// NewState returns an empty state with allocated maps.
func NewState() State {
	return State{
		Epics:   make(map[string]Epic),
		Stories: make(map[string]Story),
	}
}

// Clone returns a deep copy of the state. Stores hand out clones so that
// callers never share map or slice memory with persisted data.
func (s State) Clone() State {
	cp := State{
		Epics:      make(map[string]Epic, len(s.Epics)),
		Stories:    make(map[string]Story, len(s.Stories)),
		LastItemID: s.LastItemID,
	}
	for id, e := range s.Epics {
		cp.Epics[id] = e.Clone()
	}
	for id, st := range s.Stories {
		cp.Stories[id] = st
	}
	return cp
}

// Validate checks that the state is well-formed: every status is a recognized
// value and every story referenced by an epic exists in the global story map.
// Stores run this after deserializing untrusted content.
func (s State) Validate() error {
	for id, e := range s.Epics {
		if !e.Status.Valid() {
			return fmt.Errorf("%w: epic %s has status %q", ErrInvalidStatus, id, e.Status)
		}
		for _, storyID := range e.Stories {
			if _, ok := s.Stories[storyID]; !ok {
				return fmt.Errorf("%w: epic %s references missing story %s", ErrCorrupt, id, storyID)
			}
		}
	}
	for id, st := range s.Stories {
		if !st.Status.Valid() {
			return fmt.Errorf("%w: story %s has status %q", ErrInvalidStatus, id, st.Status)
		}
	}
	return nil
}
