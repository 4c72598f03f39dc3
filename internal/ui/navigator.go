package ui

import (
	"fmt"

	"github.com/mesh-intelligence/storyboard/internal/repo"
)

// Navigator owns the page stack and executes Actions. It is the only UI
// component that calls mutating repository operations; pages themselves stay
// read-only.
type Navigator struct {
	pages   []Page
	repo    *repo.Repository
	prompts *Prompts
}

// NewNavigator creates a navigator with the home page on the stack.
func NewNavigator(r *repo.Repository, prompts *Prompts) *Navigator {
	return &Navigator{
		pages:   []Page{NewHomePage(r)},
		repo:    r,
		prompts: prompts,
	}
}

// CurrentPage returns the top of the page stack, or nil after Exit.
func (n *Navigator) CurrentPage() Page {
	if len(n.pages) == 0 {
		return nil
	}
	return n.pages[len(n.pages)-1]
}

// Depth returns the number of pages on the stack.
func (n *Navigator) Depth() int {
	return len(n.pages)
}

// HandleAction executes one Action: navigation changes the page stack,
// mutations go through the repository, and destructive or parameterized
// mutations consult the prompts first.
func (n *Navigator) HandleAction(action Action) error {
	switch action.Kind {
	case ActionNavigateToEpicDetail:
		n.push(NewEpicDetailPage(n.repo, action.EpicID))

	case ActionNavigateToStoryDetail:
		n.push(NewStoryDetailPage(n.repo, action.EpicID, action.StoryID))

	case ActionNavigateToPreviousPage:
		n.pop()

	case ActionCreateEpic:
		name, description := n.prompts.CreateEpic()
		if _, err := n.repo.CreateEpic(name, description); err != nil {
			return fmt.Errorf("create epic: %w", err)
		}

	case ActionUpdateEpicStatus:
		status, ok := n.prompts.UpdateStatus()
		if !ok {
			return nil
		}
		if err := n.repo.UpdateEpicStatus(action.EpicID, status); err != nil {
			return fmt.Errorf("update epic status: %w", err)
		}

	case ActionDeleteEpic:
		if !n.prompts.DeleteEpic() {
			return nil
		}
		if err := n.repo.DeleteEpic(action.EpicID); err != nil {
			return fmt.Errorf("delete epic: %w", err)
		}
		n.pop()

	case ActionCreateStory:
		name, description := n.prompts.CreateStory()
		if _, err := n.repo.CreateStory(name, description, action.EpicID); err != nil {
			return fmt.Errorf("create story: %w", err)
		}

	case ActionUpdateStoryStatus:
		status, ok := n.prompts.UpdateStatus()
		if !ok {
			return nil
		}
		if err := n.repo.UpdateStoryStatus(action.StoryID, status); err != nil {
			return fmt.Errorf("update story status: %w", err)
		}

	case ActionDeleteStory:
		if !n.prompts.DeleteStory() {
			return nil
		}
		if err := n.repo.DeleteStory(action.EpicID, action.StoryID); err != nil {
			return fmt.Errorf("delete story: %w", err)
		}
		n.pop()

	case ActionExit:
		n.pages = nil

	default:
		return fmt.Errorf("unknown action kind %d", action.Kind)
	}
	return nil
}

func (n *Navigator) push(p Page) {
	n.pages = append(n.pages, p)
}

// pop removes the top page. The home page is never popped; backing out of it
// is handled by ActionExit.
func (n *Navigator) pop() {
	if len(n.pages) > 1 {
		n.pages = n.pages[:len(n.pages)-1]
	}
}
