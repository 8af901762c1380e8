// Package sorter is the client-side half of the list reconciliation
// protocol: it collects per-element move instructions while the host
// patches a container's children top-down, then deletes tombstoned
// elements and replays the collected moves in one deferred pass.
package sorter

// Element is the minimal view of a live tree node the reconciler needs.
// Implementations must tolerate Detach and MoveBefore on nodes that are
// already detached.
type Element interface {
	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Find returns the element with the given id inside the receiver's
	// subtree (receiver included), or nil.
	Find(id string) Element

	// Each visits every element of the receiver's subtree depth-first,
	// receiver included.
	Each(visit func(Element))

	// Detach removes the element from its parent.
	Detach()

	// MoveBefore detaches the element and reinserts it immediately
	// before dst.
	MoveBefore(dst Element)
}
