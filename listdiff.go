package livelists

import "fmt"

// UpdateMode tells the client whether the whole container is being
// replaced or patched incrementally.
type UpdateMode uint8

const (
	// UpdatePartial is the incremental append/patch mode.
	UpdatePartial UpdateMode = iota

	// UpdateFull replaces the whole container. It is used when the old
	// key sequence was empty, so anchors are irrelevant and every item is
	// tagged noop.
	UpdateFull
)

func (m UpdateMode) String() string {
	switch m {
	case UpdatePartial:
		return "partial"
	case UpdateFull:
		return "full"
	}

	return fmt.Sprintf("UpdateMode(%d)", uint8(m))
}

func (m UpdateMode) MarshalJSON() ([]byte, error) {
	switch m {
	case UpdatePartial, UpdateFull:
		return []byte(`"` + m.String() + `"`), nil
	}

	return nil, fmt.Errorf("cannot marshal update mode %d", uint8(m))
}

// ListDiff is the outcome of one diff cycle: the per-item patches plus the
// list metadata the client needs to apply them.
type ListDiff struct {
	Items      []Assigns
	UpdateMode UpdateMode
	Version    Version
}

// Empty reports whether the cycle produced no patches.
func (d *ListDiff) Empty() bool {
	return len(d.Items) == 0
}

// Payload lays the diff out under the three conventional assign keys for
// the given component name.
func (d *ListDiff) Payload(name string) map[string]any {
	return map[string]any{
		name + "_list_items":   d.Items,
		name + "_list_update":  d.UpdateMode,
		name + "_list_version": d.Version,
	}
}
