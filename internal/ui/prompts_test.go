package ui

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/storyboard/pkg/types"
)

func promptsOver(input string) (*Prompts, *bytes.Buffer) {
	var out bytes.Buffer
	return DefaultPrompts(bufio.NewReader(strings.NewReader(input)), &out), &out
}

func TestDefaultPromptsCreateEpic(t *testing.T) {
	p, out := promptsOver("My Epic\nMy Description\n")
	name, description := p.CreateEpic()
	assert.Equal(t, "My Epic", name)
	assert.Equal(t, "My Description", description)
	assert.Contains(t, out.String(), "Epic Name: ")
}

func TestDefaultPromptsDeleteConfirmation(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"Y\n", true},
		{"y\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		p, _ := promptsOver(tt.answer)
		assert.Equal(t, tt.want, p.DeleteEpic(), "answer %q", tt.answer)
	}
}

func TestDefaultPromptsUpdateStatus(t *testing.T) {
	tests := []struct {
		answer string
		want   types.Status
		ok     bool
	}{
		{"1\n", types.StatusOpen, true},
		{"2\n", types.StatusInProgress, true},
		{"3\n", types.StatusResolved, true},
		{"4\n", types.StatusClosed, true},
		{"5\n", "", false},
		{"x\n", "", false},
		{"\n", "", false},
	}

	for _, tt := range tests {
		p, _ := promptsOver(tt.answer)
		got, ok := p.UpdateStatus()
		assert.Equal(t, tt.ok, ok, "answer %q", tt.answer)
		assert.Equal(t, tt.want, got, "answer %q", tt.answer)
	}
}
