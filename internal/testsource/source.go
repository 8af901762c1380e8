// Package testsource provides a small list source shared by integration
// tests and the runnable examples.
package testsource

import (
	"github.com/DaTrader/livelists"
)

// State is a minimal list-owning domain state: an ordered set of string
// keys with a text per key.
type State struct {
	Order []string
	Texts map[string]string
}

// WithText returns a copy of the state with one text replaced.
func (s State) WithText(key, text string) State {
	texts := make(map[string]string, len(s.Texts))
	for k, v := range s.Texts {
		texts[k] = v
	}
	texts[key] = text

	return State{Order: append([]string(nil), s.Order...), Texts: texts}
}

// WithOrder returns a copy of the state with a new key order.
func (s State) WithOrder(order ...string) State {
	return State{Order: order, Texts: s.Texts}
}

// Source implements livelists.Source over State with string keys.
type Source struct{}

func (Source) PrepareList(s State) ([]string, State) {
	return s.Order, s
}

func (Source) ComponentID(key string, _ State) string {
	return "item-" + key
}

func (Source) ConstructAssigns(s State, key string) livelists.Assigns {
	return livelists.Assigns{
		"id":   "item-" + key,
		"text": s.Texts[key],
	}
}

func (Source) ComponentName() string {
	return "items"
}
