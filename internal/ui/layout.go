package ui

import "strings"

// columnString fits text into a fixed-width table cell. Shorter text is
// right-padded with spaces, longer text is truncated with a trailing "...".
// Widths below 4 cannot hold an ellipsis and render as that many dots.
func columnString(text string, width int) string {
	runes := []rune(text)
	switch {
	case width == 0:
		return ""
	case len(runes) == 0:
		return strings.Repeat(" ", width)
	case len(runes) == width:
		return text
	case width < 4:
		return strings.Repeat(".", width)
	case len(runes) < width:
		return text + strings.Repeat(" ", width-len(runes))
	default:
		return string(runes[:width-3]) + "..."
	}
}
