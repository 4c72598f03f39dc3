package ui

import "testing"

func TestColumnString(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"width 0 is empty", "thisisatest", 0, ""},
		{"width 1 is a single dot", "thisisatest", 1, "."},
		{"width 2 is two dots", "thisisatest", 2, ".."},
		{"width 3 is three dots", "thisisatest", 3, "..."},
		{"width 4 keeps one char", "thisisatest", 4, "t..."},
		{"empty text pads to width", "", 6, "      "},
		{"short text pads right", "this", 6, "this  "},
		{"exact fit unchanged", "thisisatest", 11, "thisisatest"},
		{"long text truncates with ellipsis", "thisisatest", 6, "thi..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := columnString(tt.text, tt.width); got != tt.want {
				t.Errorf("columnString(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
