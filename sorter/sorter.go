package sorter

import (
	"strings"

	"github.com/DaTrader/livelists"
)

type state uint8

const (
	stateIdle state = iota
	stateCollecting
	stateFinalizing
)

// Instruction pairs the element to move with the element it must end up
// immediately before.
type Instruction struct {
	SourceID      string
	DestinationID string

	raw string
}

// Option allows configuring the behavior of New.
type Option interface {
	applySorter(*sorterConfig)
}

type sorterOptionFunc func(*sorterConfig)

func (f sorterOptionFunc) applySorter(c *sorterConfig) {
	f(c)
}

type sorterConfig struct {
	notify func(Element)
}

// WithRemovalNotifier returns an option that makes Finalize call notify on
// every tombstoned element just before detaching it.
func WithRemovalNotifier(notify func(Element)) Option {
	return sorterOptionFunc(func(c *sorterConfig) {
		c.notify = notify
	})
}

// Sorter tracks one live container across patch cycles. It runs on a
// single-threaded cooperative event loop: the host guarantees Finalize is
// triggered only after every child patched in the cycle has been prepared,
// so collecting and finalizing never interleave.
type Sorter struct {
	sortAttr   string
	deleteAttr string
	notify     func(Element)

	state   state
	pending []Instruction // LIFO, most recently prepared last

	// applied remembers the last instruction replayed per source id, so a
	// re-observed attribute from an earlier cycle is not applied twice.
	// The version stamp inside the attribute is what keeps a genuinely
	// new instruction pointing at a previously seen anchor distinct.
	applied map[string]string
}

// New builds a Sorter for one container. sortAttr names the attribute
// carrying serialized sort instructions, deleteAttr the attribute marking
// tombstoned elements.
func New(sortAttr, deleteAttr string, opts ...Option) *Sorter {
	var config sorterConfig
	for _, opt := range opts {
		opt.applySorter(&config)
	}

	return &Sorter{
		sortAttr:   sortAttr,
		deleteAttr: deleteAttr,
		notify:     config.notify,
		applied:    make(map[string]string),
	}
}

// PrepareForSort records the element's pending move, if it carries one.
// The host must call it once per patched element, in its top-down patch
// order; the destination anchor may not exist yet at that point, which is
// exactly why the move is deferred. Returns nil when there is nothing to
// collect. id maps an element to its component id.
func (s *Sorter) PrepareForSort(el Element, id func(Element) string) *Instruction {
	raw, ok := el.Attr(s.sortAttr)
	if !ok || raw == "" {
		return nil
	}

	source := id(el)
	if s.applied[source] == raw {
		// Same anchor, same version: a stale instruction already replayed
		// in an earlier cycle.
		return nil
	}

	anchor, _, ok := strings.Cut(raw, livelists.Separator)
	if !ok {
		return nil
	}

	instruction := Instruction{
		SourceID:      source,
		DestinationID: anchor,
		raw:           raw,
	}
	s.pending = append(s.pending, instruction)
	s.state = stateCollecting

	return &instruction
}

// Finalize runs the deferred delete and move phases against root's
// subtree. The host must call it exactly once per patch cycle, after every
// element in the subtree has been patched (a sentinel element, guaranteed
// last in patch order, is the usual trigger).
func (s *Sorter) Finalize(root Element) {
	s.state = stateFinalizing

	// Delete phase. Collect first: detaching while walking would skip
	// siblings.
	var doomed []Element
	root.Each(func(el Element) {
		if _, ok := el.Attr(s.deleteAttr); ok {
			doomed = append(doomed, el)
		}
	})
	for _, el := range doomed {
		if s.notify != nil {
			s.notify(el)
		}
		el.Detach()
	}

	// Move phase: drain most recently prepared first. Elements patched
	// later sit deeper in the new order, so replaying them first resolves
	// chains of elements that moved relative to one another within one
	// cycle. An instruction whose source or destination vanished is
	// skipped; elements disappear for unrelated reasons.
	for i := len(s.pending) - 1; i >= 0; i-- {
		instruction := s.pending[i]
		source := root.Find(instruction.SourceID)
		destination := root.Find(instruction.DestinationID)
		if source == nil || destination == nil {
			continue
		}
		source.MoveBefore(destination)
		s.applied[instruction.SourceID] = instruction.raw
	}
	s.pending = s.pending[:0]

	s.state = stateIdle
}

// Collecting reports whether at least one instruction has been prepared
// in the current cycle and Finalize has not run yet.
func (s *Sorter) Collecting() bool {
	return s.state == stateCollecting
}

// Destroy discards the pending instruction list and the applied-history,
// without touching the tree. Call it when the container leaves the page.
func (s *Sorter) Destroy() {
	s.pending = nil
	s.applied = make(map[string]string)
	s.state = stateIdle
}
