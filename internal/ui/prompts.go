package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/storyboard/pkg/types"
)

// Prompts supplies the interactive questions the Navigator asks while
// executing actions. The fields are functions so tests can stub them without
// a terminal.
type Prompts struct {
	// CreateEpic and CreateStory return the name and description for a new item.
	CreateEpic  func() (name, description string)
	CreateStory func() (name, description string)

	// DeleteEpic and DeleteStory return true when the user confirms deletion.
	DeleteEpic  func() bool
	DeleteStory func() bool

	// UpdateStatus returns the selected status; ok is false when the
	// selection was invalid or abandoned.
	UpdateStatus func() (status types.Status, ok bool)
}

// DefaultPrompts reads answers line by line from in, writing questions to out.
func DefaultPrompts(in *bufio.Reader, out io.Writer) *Prompts {
	return &Prompts{
		CreateEpic: func() (string, string) {
			name := ask(in, out, "Epic Name: ")
			description := ask(in, out, "Epic Description: ")
			return name, description
		},
		CreateStory: func() (string, string) {
			name := ask(in, out, "Story Name: ")
			description := ask(in, out, "Story Description: ")
			return name, description
		},
		DeleteEpic: func() bool {
			answer := ask(in, out, "Are you sure you want to delete this epic? All stories in this epic will also be deleted [Y/n]: ")
			return answer == "Y" || answer == "y"
		},
		DeleteStory: func() bool {
			answer := ask(in, out, "Are you sure you want to delete this story? [Y/n]: ")
			return answer == "Y" || answer == "y"
		},
		UpdateStatus: func() (types.Status, bool) {
			answer := ask(in, out, "New Status (1 - OPEN, 2 - IN PROGRESS, 3 - RESOLVED, 4 - CLOSED): ")
			switch answer {
			case "1":
				return types.StatusOpen, true
			case "2":
				return types.StatusInProgress, true
			case "3":
				return types.StatusResolved, true
			case "4":
				return types.StatusClosed, true
			default:
				return "", false
			}
		},
	}
}

// ask prints a prompt and returns the next input line, trimmed. An input
// error reads as an empty answer.
func ask(in *bufio.Reader, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
