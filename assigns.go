package livelists

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Separator divides the anchor component id from the version stamp in a
// serialized sort instruction. Component ids must never contain it.
const Separator = ":"

// UpdatedKey is the reserved assigns field carrying the per-item patch tag.
const UpdatedKey = "updated"

// ErrComponentID is returned when a caller-generated component id contains
// the separator character. This is a contract violation in the caller's id
// generation, not a runtime condition; the whole diff cycle is aborted.
var ErrComponentID = errors.New("component id contains separator")

// Assigns is the bag of caller-defined fields rendered for one list item.
// The engine adds the reserved "updated" field before emitting it.
type Assigns map[string]any

// Updated returns the patch tag the engine stored under UpdatedKey, if any.
func (a Assigns) Updated() (Updated, bool) {
	u, ok := a[UpdatedKey].(Updated)
	return u, ok
}

// UpdatedKind discriminates the three per-item patch tags.
type UpdatedKind uint8

const (
	// UpdatedNoop marks an item whose markup is (re)rendered in place.
	UpdatedNoop UpdatedKind = iota

	// UpdatedDelete marks an item the client reconciler must remove.
	UpdatedDelete

	// UpdatedSort marks an inserted or moved item that must end up
	// immediately before its anchor.
	UpdatedSort
)

func (k UpdatedKind) String() string {
	switch k {
	case UpdatedNoop:
		return "noop"
	case UpdatedDelete:
		return "delete"
	case UpdatedSort:
		return "sort"
	}

	return fmt.Sprintf("UpdatedKind(%d)", uint8(k))
}

// Updated is the value of the reserved "updated" assigns field.
type Updated struct {
	Kind UpdatedKind

	// Anchor is the component id of the item this one must be placed
	// immediately before. Only meaningful for UpdatedSort.
	Anchor string

	// Version is the cycle version the sort instruction was issued in. It
	// lets the client tell apart two instructions naming the same anchor
	// but issued in different cycles.
	Version Version
}

// SortAttr renders the instruction the way the per-item DOM contract
// carries it: "<anchorComponentId>:<versionBase36>".
func (u Updated) SortAttr() string {
	return u.Anchor + Separator + u.Version.Base36()
}

func (u Updated) MarshalJSON() ([]byte, error) {
	switch u.Kind {
	case UpdatedNoop:
		return []byte(`"noop"`), nil
	case UpdatedDelete:
		return []byte(`"delete"`), nil
	case UpdatedSort:
		return json.Marshal(map[string]string{"sort": u.SortAttr()})
	}

	return nil, fmt.Errorf("cannot marshal updated tag: unknown kind %d", u.Kind)
}

func (u Updated) String() string {
	if u.Kind == UpdatedSort {
		return "sort " + u.SortAttr()
	}

	return u.Kind.String()
}
