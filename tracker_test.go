package livelists_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaTrader/livelists"
	"github.com/DaTrader/livelists/internal/testsource"
)

func newTracker(t *testing.T) *livelists.Tracker[string, testsource.State] {
	t.Helper()
	differ := livelists.NewDiffer[string, testsource.State](testsource.Source{})
	return livelists.NewTracker(differ)
}

func baseState() testsource.State {
	return testsource.State{
		Order: []string{"a", "b"},
		Texts: map[string]string{"a": "alpha", "b": "bravo"},
	}
}

func TestTracker_UpdateAdvancesVersion(t *testing.T) {
	tracker := newTracker(t)
	require.NoError(t, tracker.Track("list-1", baseState()))

	diff, err := tracker.Update("list-1", baseState().WithOrder("b", "a"))
	require.NoError(t, err)
	assert.Len(t, diff.Items, 1)
	assert.Equal(t, livelists.Version(1), diff.Version)

	version, ok := tracker.Version("list-1")
	require.True(t, ok)
	assert.Equal(t, livelists.Version(1), version)

	// A cycle without patches holds the version.
	diff, err = tracker.Update("list-1", baseState().WithOrder("b", "a"))
	require.NoError(t, err)
	assert.True(t, diff.Empty())
	assert.Equal(t, livelists.Version(1), diff.Version)
}

func TestTracker_Untracked(t *testing.T) {
	tracker := newTracker(t)

	_, err := tracker.Update("nope", baseState())
	assert.ErrorIs(t, err, livelists.ErrUntracked)
}

func TestTracker_Drop(t *testing.T) {
	tracker := newTracker(t)
	require.NoError(t, tracker.Track("list-1", baseState()))

	tracker.Drop("list-1")
	_, ok := tracker.Version("list-1")
	assert.False(t, ok)

	_, err := tracker.Update("list-1", baseState())
	assert.ErrorIs(t, err, livelists.ErrUntracked)

	tracker.Drop("list-1") // dropping twice is fine
}

func TestTracker_SnapshotIsolation(t *testing.T) {
	tracker := newTracker(t)

	state := baseState()
	require.NoError(t, tracker.Track("list-1", state))

	// Mutating the caller's copy after tracking must not corrupt the
	// stored baseline.
	state.Texts["a"] = "mutated"

	diff, err := tracker.Update("list-1", baseState())
	require.NoError(t, err)
	assert.True(t, diff.Empty(), "baseline aliased the caller's map: %v", diff.Items)
}

func TestTracker_ConcurrentLists(t *testing.T) {
	tracker := newTracker(t)

	const lists = 16
	for i := 0; i < lists; i++ {
		require.NoError(t, tracker.Track(fmt.Sprintf("list-%d", i), baseState()))
	}

	var wg sync.WaitGroup
	for i := 0; i < lists; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := tracker.Update(id, baseState().WithOrder("b", "a"))
			assert.NoError(t, err)
			_, err = tracker.Update(id, baseState().WithOrder("a", "b"))
			assert.NoError(t, err)
		}(fmt.Sprintf("list-%d", i))
	}
	wg.Wait()

	for i := 0; i < lists; i++ {
		version, ok := tracker.Version(fmt.Sprintf("list-%d", i))
		require.True(t, ok)
		assert.Equal(t, livelists.Version(2), version)
	}
}
