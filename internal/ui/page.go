package ui

import (
	"fmt"
	"io"
	"sort"

	"github.com/mesh-intelligence/storyboard/internal/repo"
	"github.com/mesh-intelligence/storyboard/pkg/types"
)

// Page is one leaf view of the navigation stack. Render writes the view for
// the current repository state; Interpret classifies one trimmed line of
// input into an Action, or nil when the input means nothing on this page.
// Interpret never mutates state.
type Page interface {
	Render(w io.Writer) error
	Interpret(input string) (*Action, error)
}

// HomePage lists every epic with id, name, and status.
type HomePage struct {
	repo   *repo.Repository
	styles *Styles
}

// NewHomePage creates the epic listing page.
func NewHomePage(r *repo.Repository) *HomePage {
	return &HomePage{repo: r, styles: DefaultStyles()}
}

func (p *HomePage) Render(w io.Writer) error {
	state, err := p.repo.State()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, p.styles.Title.Render("----------------------------- EPICS -----------------------------"))
	fmt.Fprintln(w, p.styles.Header.Render("     id     |               name               |      status     "))
	fmt.Fprintln(w)

	ids := make([]string, 0, len(state.Epics))
	for id := range state.Epics {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		epic := state.Epics[id]
		fmt.Fprintf(w, " %s | %s | %s \n",
			columnString(id, 10),
			columnString(epic.Name, 30),
			columnString(epic.Status.Display(), 15))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.styles.HintBar.Render("[q] quit | [c] create epic | [:id:] navigate to epic"))
	return nil
}

func (p *HomePage) Interpret(input string) (*Action, error) {
	switch input {
	case "q":
		return &Action{Kind: ActionExit}, nil
	case "c":
		return &Action{Kind: ActionCreateEpic}, nil
	}

	state, err := p.repo.State()
	if err != nil {
		return nil, err
	}
	if _, ok := state.Epics[input]; ok {
		return &Action{Kind: ActionNavigateToEpicDetail, EpicID: input}, nil
	}
	return nil, nil
}

// EpicDetailPage shows one epic and the stories it references.
type EpicDetailPage struct {
	epicID string
	repo   *repo.Repository
	styles *Styles
}

// NewEpicDetailPage creates a detail page bound to epicID. The id is not
// checked here; Render and Interpret fail with ErrNotFound once it no longer
// resolves.
func NewEpicDetailPage(r *repo.Repository, epicID string) *EpicDetailPage {
	return &EpicDetailPage{epicID: epicID, repo: r, styles: DefaultStyles()}
}

func (p *EpicDetailPage) Render(w io.Writer) error {
	state, err := p.repo.State()
	if err != nil {
		return err
	}
	epic, ok := state.Epics[p.epicID]
	if !ok {
		return fmt.Errorf("%w: epic %s", types.ErrNotFound, p.epicID)
	}

	fmt.Fprintln(w, p.styles.Title.Render("------------------------------ EPIC ------------------------------"))
	fmt.Fprintln(w, p.styles.Header.Render("  id  |     name     |         description         |    status    "))
	fmt.Fprintf(w, " %s | %s | %s | %s \n",
		columnString(p.epicID, 5),
		columnString(epic.Name, 13),
		columnString(epic.Description, 28),
		columnString(epic.Status.Display(), 13))

	fmt.Fprintln(w)
	fmt.Fprintln(w, p.styles.Title.Render("---------------------------- STORIES ----------------------------"))
	fmt.Fprintln(w, p.styles.Header.Render("     id     |               name               |      status      "))

	for _, storyID := range epic.Stories {
		story, ok := state.Stories[storyID]
		if !ok {
			return fmt.Errorf("%w: epic %s references missing story %s",
				types.ErrCorrupt, p.epicID, storyID)
		}
		fmt.Fprintf(w, " %s | %s | %s \n",
			columnString(storyID, 10),
			columnString(story.Name, 30),
			columnString(story.Status.Display(), 16))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.styles.HintBar.Render("[p] previous | [u] update epic | [d] delete epic | [c] create story | [:id:] navigate to story"))
	return nil
}

func (p *EpicDetailPage) Interpret(input string) (*Action, error) {
	epic, err := p.repo.GetEpic(p.epicID)
	if err != nil {
		return nil, err
	}

	switch input {
	case "p":
		return &Action{Kind: ActionNavigateToPreviousPage}, nil
	case "u":
		return &Action{Kind: ActionUpdateEpicStatus, EpicID: p.epicID}, nil
	case "d":
		return &Action{Kind: ActionDeleteEpic, EpicID: p.epicID}, nil
	case "c":
		return &Action{Kind: ActionCreateStory, EpicID: p.epicID}, nil
	}

	if epic.References(input) {
		return &Action{Kind: ActionNavigateToStoryDetail, EpicID: p.epicID, StoryID: input}, nil
	}
	return nil, nil
}

// StoryDetailPage shows one story's fields.
type StoryDetailPage struct {
	epicID  string
	storyID string
	repo    *repo.Repository
	styles  *Styles
}

// NewStoryDetailPage creates a detail page bound to a story within its epic.
func NewStoryDetailPage(r *repo.Repository, epicID, storyID string) *StoryDetailPage {
	return &StoryDetailPage{epicID: epicID, storyID: storyID, repo: r, styles: DefaultStyles()}
}

func (p *StoryDetailPage) Render(w io.Writer) error {
	story, err := p.repo.GetEpicStory(p.epicID, p.storyID)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, p.styles.Title.Render("------------------------------ STORY ------------------------------"))
	fmt.Fprintln(w, p.styles.Header.Render("  id  |     name     |         description         |    status    "))
	fmt.Fprintf(w, " %s | %s | %s | %s \n",
		columnString(p.storyID, 5),
		columnString(story.Name, 13),
		columnString(story.Description, 28),
		columnString(story.Status.Display(), 13))

	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.styles.HintBar.Render("[p] previous | [u] update story | [d] delete story"))
	return nil
}

func (p *StoryDetailPage) Interpret(input string) (*Action, error) {
	switch input {
	case "p":
		return &Action{Kind: ActionNavigateToPreviousPage}, nil
	case "u":
		return &Action{Kind: ActionUpdateStoryStatus, StoryID: p.storyID}, nil
	case "d":
		return &Action{Kind: ActionDeleteStory, EpicID: p.epicID, StoryID: p.storyID}, nil
	}
	return nil, nil
}
