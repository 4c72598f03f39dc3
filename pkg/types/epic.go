package types

// Epic is a top-level work item owning zero or more stories by reference.
// Stories holds story IDs in creation order; an epic never embeds story data.
type Epic struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Stories     []string `json:"stories"`
}

// NewEpic creates an epic with StatusOpen and no stories.
func NewEpic(name, description string) Epic {
	return Epic{
		Name:        name,
		Description: description,
		Status:      StatusOpen,
		Stories:     []string{},
	}
}

// Clone returns a deep copy of the epic. The Stories slice is copied so the
// caller cannot mutate repository state through the result.
func (e Epic) Clone() Epic {
	cp := e
	cp.Stories = make([]string, len(e.Stories))
	copy(cp.Stories, e.Stories)
	return cp
}

// References reports whether storyID appears in the epic's story list.
func (e Epic) References(storyID string) bool {
	for _, id := range e.Stories {
		if id == storyID {
			return true
		}
	}
	return false
}
