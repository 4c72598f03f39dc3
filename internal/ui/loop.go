package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// clearScreen is the ANSI erase-display + cursor-home sequence printed before
// each render.
const clearScreen = "\x1b[2J\x1b[H"

// Run drives the interactive session: render the current page, read a line,
// interpret it, hand any resulting Action to the navigator. Render, interpret,
// and action failures are reported to the user and the loop continues; the
// session ends when the page stack empties or input reaches EOF.
//
// The reader must be the same one the navigator's prompts read from, so that
// prompt answers and page input share a single buffer.
func Run(nav *Navigator, in *bufio.Reader, out io.Writer) error {
	styles := DefaultStyles()

	for {
		page := nav.CurrentPage()
		if page == nil {
			return nil
		}

		fmt.Fprint(out, clearScreen)
		if err := page.Render(out); err != nil {
			reportError(in, out, styles, fmt.Errorf("rendering page: %w", err))
		}

		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return nil
		}
		input := strings.TrimSpace(line)

		action, ierr := page.Interpret(input)
		if ierr != nil {
			reportError(in, out, styles, fmt.Errorf("reading input: %w", ierr))
			continue
		}
		if action != nil {
			if aerr := nav.HandleAction(*action); aerr != nil {
				reportError(in, out, styles, aerr)
			}
		}

		if err != nil {
			// Last line before EOF has been processed.
			return nil
		}
	}
}

// reportError prints the error and waits for Enter so the user sees it before
// the next render clears the screen.
func reportError(in *bufio.Reader, out io.Writer, styles *Styles, err error) {
	fmt.Fprintln(out, styles.Error.Render(fmt.Sprintf("Error: %v", err)))
	fmt.Fprintln(out, "Press Enter to continue...")
	_, _ = in.ReadString('\n')
}
