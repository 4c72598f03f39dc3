package types

// Story is a leaf work item belonging to exactly one epic. The owning epic
// tracks membership; the story itself carries no back-reference.
type Story struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// NewStory creates a story with StatusOpen.
func NewStory(name, description string) Story {
	return Story{
		Name:        name,
		Description: description,
		Status:      StatusOpen,
	}
}
