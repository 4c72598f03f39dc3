package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/storyboard/internal/repo"
	"github.com/mesh-intelligence/storyboard/internal/store"
	"github.com/mesh-intelligence/storyboard/pkg/types"
)

func newTestRepo(t *testing.T) *repo.Repository {
	t.Helper()
	return repo.New(store.NewMemoryStore(), nil)
}

func seedEpicAndStory(t *testing.T, r *repo.Repository) (epicID, storyID string) {
	t.Helper()
	epicID, err := r.CreateEpic("An Epic", "Epic description")
	require.NoError(t, err)
	storyID, err = r.CreateStory("A Story", "Story description", epicID)
	require.NoError(t, err)
	return epicID, storyID
}

func TestHomePageRender(t *testing.T) {
	r := newTestRepo(t)
	epicID, _ := seedEpicAndStory(t, r)

	var buf bytes.Buffer
	require.NoError(t, NewHomePage(r).Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "EPICS")
	assert.Contains(t, out, epicID)
	assert.Contains(t, out, "An Epic")
	assert.Contains(t, out, "OPEN")
	assert.Contains(t, out, "[q] quit")
}

func TestHomePageRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, NewHomePage(newTestRepo(t)).Render(&buf))
}

func TestHomePageInterpret(t *testing.T) {
	r := newTestRepo(t)
	epicID, _ := seedEpicAndStory(t, r)
	page := NewHomePage(r)

	tests := []struct {
		name  string
		input string
		want  *Action
	}{
		{"q exits", "q", &Action{Kind: ActionExit}},
		{"c creates an epic", "c", &Action{Kind: ActionCreateEpic}},
		{"live epic id navigates", epicID, &Action{Kind: ActionNavigateToEpicDetail, EpicID: epicID}},
		{"unknown id is ignored", "999999", nil},
		{"junk is ignored", "j983f2j", nil},
		{"empty input is ignored", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := page.Interpret(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEpicDetailPageRender(t *testing.T) {
	r := newTestRepo(t)
	epicID, storyID := seedEpicAndStory(t, r)

	var buf bytes.Buffer
	require.NoError(t, NewEpicDetailPage(r, epicID).Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "EPIC")
	assert.Contains(t, out, "STORIES")
	assert.Contains(t, out, storyID)
	assert.Contains(t, out, "A Story")
	assert.Contains(t, out, "[p] previous")
}

func TestEpicDetailPageRenderMissingEpic(t *testing.T) {
	var buf bytes.Buffer
	err := NewEpicDetailPage(newTestRepo(t), "999999").Render(&buf)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestEpicDetailPageInterpret(t *testing.T) {
	r := newTestRepo(t)
	epicID, storyID := seedEpicAndStory(t, r)
	page := NewEpicDetailPage(r, epicID)

	tests := []struct {
		name  string
		input string
		want  *Action
	}{
		{"p goes back", "p", &Action{Kind: ActionNavigateToPreviousPage}},
		{"u updates status", "u", &Action{Kind: ActionUpdateEpicStatus, EpicID: epicID}},
		{"d deletes epic", "d", &Action{Kind: ActionDeleteEpic, EpicID: epicID}},
		{"c creates story", "c", &Action{Kind: ActionCreateStory, EpicID: epicID}},
		{"referenced story id navigates", storyID, &Action{Kind: ActionNavigateToStoryDetail, EpicID: epicID, StoryID: storyID}},
		{"unknown story id is ignored", "999999", nil},
		{"junk is ignored", "j983f2j", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := page.Interpret(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEpicDetailPageInterpretMissingEpic(t *testing.T) {
	r := newTestRepo(t)
	epicID, _ := seedEpicAndStory(t, r)
	page := NewEpicDetailPage(r, epicID)
	require.NoError(t, r.DeleteEpic(epicID))

	_, err := page.Interpret("p")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestEpicDetailPageDoesNotLeakForeignStories(t *testing.T) {
	// A story id belonging to another epic must not navigate from here.
	r := newTestRepo(t)
	epicID, _ := seedEpicAndStory(t, r)
	otherEpicID, err := r.CreateEpic("Other", "")
	require.NoError(t, err)
	foreignStoryID, err := r.CreateStory("Foreign", "", otherEpicID)
	require.NoError(t, err)

	got, err := NewEpicDetailPage(r, epicID).Interpret(foreignStoryID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoryDetailPageRender(t *testing.T) {
	r := newTestRepo(t)
	epicID, storyID := seedEpicAndStory(t, r)

	var buf bytes.Buffer
	require.NoError(t, NewStoryDetailPage(r, epicID, storyID).Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "STORY")
	assert.Contains(t, out, "A Story")
	assert.Contains(t, out, "Story description")
	assert.Contains(t, out, "[d] delete story")
}

func TestStoryDetailPageRenderMissingStory(t *testing.T) {
	r := newTestRepo(t)
	epicID, storyID := seedEpicAndStory(t, r)
	require.NoError(t, r.DeleteStory(epicID, storyID))

	var buf bytes.Buffer
	err := NewStoryDetailPage(r, epicID, storyID).Render(&buf)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestStoryDetailPageInterpret(t *testing.T) {
	r := newTestRepo(t)
	epicID, storyID := seedEpicAndStory(t, r)
	page := NewStoryDetailPage(r, epicID, storyID)

	tests := []struct {
		name  string
		input string
		want  *Action
	}{
		{"p goes back", "p", &Action{Kind: ActionNavigateToPreviousPage}},
		{"u updates status", "u", &Action{Kind: ActionUpdateStoryStatus, StoryID: storyID}},
		{"d deletes story", "d", &Action{Kind: ActionDeleteStory, EpicID: epicID, StoryID: storyID}},
		{"junk is ignored", "j983f2j", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := page.Interpret(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
