package livelists

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mitchellh/copystructure"
	"github.com/puzpuzpuz/xsync/v3"
)

// ErrUntracked is returned by Tracker.Update for a list id that was never
// tracked (or was dropped).
var ErrUntracked = errors.New("list not tracked")

// Tracker owns the state and version pair the differ otherwise leaves to
// the caller, for any number of list instances keyed by id. Successive
// diffs of one instance are serialized by a per-entry mutex; distinct
// instances diff concurrently.
//
// The stored baseline is a deep copy of the caller's state, so mutating a
// state value after handing it to the Tracker cannot corrupt later diffs.
type Tracker[K comparable, S any] struct {
	differ *Differ[K, S]
	lists  *xsync.MapOf[string, *trackedList[S]]
}

type trackedList[S any] struct {
	mu      sync.Mutex
	state   S
	version Version
}

// NewTracker builds a Tracker around an existing Differ.
func NewTracker[K comparable, S any](differ *Differ[K, S]) *Tracker[K, S] {
	return &Tracker[K, S]{
		differ: differ,
		lists:  xsync.NewMapOf[string, *trackedList[S]](),
	}
}

// Track registers a list under id with its baseline state. Tracking an
// already-tracked id resets it.
func (t *Tracker[K, S]) Track(id string, baseline S) error {
	snap, err := snapshot(baseline)
	if err != nil {
		return err
	}

	t.lists.Store(id, &trackedList[S]{state: snap, version: InitialVersion})

	return nil
}

// Update diffs the tracked list against the next state and advances the
// stored baseline and version.
func (t *Tracker[K, S]) Update(id string, next S) (*ListDiff, error) {
	entry, ok := t.lists.Load(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUntracked, id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	diff, state, version, err := t.differ.Diff(entry.state, next, entry.version)
	if err != nil {
		return nil, err
	}

	snap, err := snapshot(state)
	if err != nil {
		return nil, err
	}

	entry.state = snap
	entry.version = version

	return diff, nil
}

// Version returns the current version of a tracked list.
func (t *Tracker[K, S]) Version(id string) (Version, bool) {
	entry, ok := t.lists.Load(id)
	if !ok {
		return 0, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.version, true
}

// Drop forgets a tracked list. Dropping an unknown id is a no-op.
func (t *Tracker[K, S]) Drop(id string) {
	t.lists.Delete(id)
}

func snapshot[S any](state S) (S, error) {
	copied, err := copystructure.Copy(state)
	if err != nil {
		var zero S
		return zero, fmt.Errorf("snapshot state: %w", err)
	}

	snap, ok := copied.(S)
	if !ok {
		var zero S
		return zero, fmt.Errorf("snapshot state: copied %T is not the state type", copied)
	}

	return snap, nil
}
