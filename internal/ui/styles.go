package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles shared by all pages.
type Styles struct {
	Title   lipgloss.Style // section banner (EPICS, EPIC, STORIES, STORY)
	Header  lipgloss.Style // table column header row
	HintBar lipgloss.Style // bottom key-binding bar
	Error   lipgloss.Style // error messages in the loop
}

// DefaultStyles returns the standard terminal styling.
func DefaultStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Header:  lipgloss.NewStyle().Faint(true),
		HintBar: lipgloss.NewStyle().Faint(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
