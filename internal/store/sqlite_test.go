package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/storyboard/pkg/types"
)

func tempSQLiteStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), DatabaseFileName)
	ss, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() })
	return ss, path
}

func TestSQLiteStoreStartsEmpty(t *testing.T) {
	ss, _ := tempSQLiteStore(t)
	state, err := ss.Load()
	require.NoError(t, err)
	assert.Empty(t, state.Epics)
	assert.Empty(t, state.Stories)
	assert.Equal(t, "", state.LastItemID)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		state types.State
	}{
		{"empty state", types.NewState()},
		{"epic with story", populatedState()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ss, _ := tempSQLiteStore(t)
			require.NoError(t, ss.Persist(tt.state))

			got, err := ss.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.state, got)
		})
	}
}

func TestSQLiteStorePreservesStoryOrder(t *testing.T) {
	ss, _ := tempSQLiteStore(t)

	state := types.NewState()
	order := []string{"s3", "s1", "s2"}
	state.Epics["e1"] = types.Epic{
		Name:    "ordered",
		Status:  types.StatusOpen,
		Stories: append([]string{}, order...),
	}
	for _, id := range order {
		state.Stories[id] = types.Story{Name: id, Status: types.StatusOpen}
	}
	require.NoError(t, ss.Persist(state))

	got, err := ss.Load()
	require.NoError(t, err)
	assert.Equal(t, order, got.Epics["e1"].Stories)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ss, path := tempSQLiteStore(t)
	require.NoError(t, ss.Persist(populatedState()))
	require.NoError(t, ss.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, populatedState(), got)
}

func TestSQLiteStorePersistOverwrites(t *testing.T) {
	ss, _ := tempSQLiteStore(t)
	require.NoError(t, ss.Persist(populatedState()))
	require.NoError(t, ss.Persist(types.NewState()))

	state, err := ss.Load()
	require.NoError(t, err)
	assert.Empty(t, state.Epics)
	assert.Empty(t, state.Stories)
	assert.Equal(t, "", state.LastItemID)
}
