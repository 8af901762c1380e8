package livelists

import (
	"reflect"
	"strings"
	"unicode"
)

// Source is the capability set a list kind implements to drive
// reconciliation. The engine is generic over the key type K (opaque,
// comparable, unique within one extracted sequence) and the domain state
// type S (owned by the caller and round-tripped unchanged apart from
// PrepareList adjustments).
type Source[K comparable, S any] interface {
	// PrepareList extracts the ordered item keys from a state snapshot.
	// It may return an adjusted state; the engine diffs against and hands
	// back the adjusted value.
	PrepareList(state S) ([]K, S)

	// ComponentID returns the stable element id for key. The result must
	// not contain the Separator character.
	ComponentID(key K, state S) string

	// ConstructAssigns derives the assigns rendered for one item. The
	// returned map must not contain the reserved "updated" field.
	ConstructAssigns(state S, key K) Assigns
}

// ChangeDetector is an optional Source capability. When implemented, a
// false result skips the whole diff pipeline for that cycle, yielding an
// empty partial diff with the version unchanged.
type ChangeDetector[S any] interface {
	StateChanged(old, new S) bool
}

// Namer is an optional Source capability overriding the component name
// used to build payload keys. Without it the name is derived from the
// source's type name (e.g. TodoSource -> "todo_source").
type Namer interface {
	ComponentName() string
}

func deriveName(source any) string {
	t := reflect.TypeOf(source)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return "list"
	}

	var b strings.Builder
	for i, r := range t.Name() {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}
