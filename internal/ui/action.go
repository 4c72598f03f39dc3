// Package ui implements the page contract and the interactive loop that
// drives it. Pages are stateless views over the repository: Render writes the
// current view, Interpret classifies one line of input into an Action, and a
// Navigator executes Actions by calling the repository and switching pages.
package ui

// ActionKind identifies what an interpreted input line asks for.
type ActionKind int

const (
	ActionNavigateToEpicDetail ActionKind = iota
	ActionNavigateToStoryDetail
	ActionNavigateToPreviousPage
	ActionCreateEpic
	ActionUpdateEpicStatus
	ActionDeleteEpic
	ActionCreateStory
	ActionUpdateStoryStatus
	ActionDeleteStory
	ActionExit
)

// Action is a typed request emitted by Page.Interpret and executed by the
// Navigator. EpicID and StoryID are set only where the kind needs them.
type Action struct {
	Kind    ActionKind
	EpicID  string
	StoryID string
}
