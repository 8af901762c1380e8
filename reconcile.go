package livelists

import (
	"fmt"
	"reflect"
	"strings"
)

// assemble walks the edit script from tail to head and renders the final
// patch list. The walk direction matters: an inserted key is anchored to
// the key immediately following it in the new sequence, which is only
// known once the remainder of the script has been processed. Items are
// accumulated in walk order and reversed once at the end, so inserts and
// updates come out in new-sequence order and deletions in old-sequence
// order.
func (d *Differ[K, S]) assemble(script []run[K], oldState, newState S, mode UpdateMode, next Version) ([]Assigns, error) {
	// Keys present in both an insert and a delete run are moves: the sort
	// instruction on the insert repositions the live element, so no delete
	// patch may be emitted for them.
	inserted := make(map[K]struct{})
	for _, r := range script {
		if r.op != opInsert {
			continue
		}
		for _, key := range r.keys {
			inserted[key] = struct{}{}
		}
	}

	var items []Assigns

	// anchor is the key immediately following the walk position in the
	// new sequence. Delete runs are invisible to it.
	var anchor *K

	for i := len(script) - 1; i >= 0; i-- {
		r := script[i]
		switch r.op {
		case opDelete:
			for j := len(r.keys) - 1; j >= 0; j-- {
				key := r.keys[j]
				if _, moved := inserted[key]; moved {
					continue
				}
				assigns := d.source.ConstructAssigns(oldState, key)
				items = append(items, tagged(assigns, Updated{Kind: UpdatedDelete}))
			}

		case opEqual:
			for j := len(r.keys) - 1; j >= 0; j-- {
				key := r.keys[j]
				oldAssigns := d.source.ConstructAssigns(oldState, key)
				newAssigns := d.source.ConstructAssigns(newState, key)
				if !reflect.DeepEqual(oldAssigns, newAssigns) {
					items = append(items, tagged(newAssigns, Updated{Kind: UpdatedNoop}))
				}
				anchor = &key
			}

		case opInsert:
			for j := len(r.keys) - 1; j >= 0; j-- {
				key := r.keys[j]
				updated := Updated{Kind: UpdatedNoop}
				if mode == UpdatePartial && anchor != nil {
					id := d.source.ComponentID(*anchor, newState)
					if strings.Contains(id, Separator) {
						return nil, fmt.Errorf("%w: %q", ErrComponentID, id)
					}
					updated = Updated{Kind: UpdatedSort, Anchor: id, Version: next}
				}
				assigns := d.source.ConstructAssigns(newState, key)
				items = append(items, tagged(assigns, updated))
				anchor = &key
			}
		}
	}

	for l, r := 0, len(items)-1; l < r; l, r = l+1, r-1 {
		items[l], items[r] = items[r], items[l]
	}

	return items, nil
}

func tagged(assigns Assigns, updated Updated) Assigns {
	if assigns == nil {
		assigns = make(Assigns, 1)
	}
	assigns[UpdatedKey] = updated

	return assigns
}
