package livelists

import "log/slog"

// Differ runs the reconciliation pipeline for one list kind. It carries no
// per-list state; the caller threads the domain state and version through
// successive Diff calls (or lets a Tracker do it). A single Differ may be
// used for any number of list instances and from any number of goroutines,
// as long as successive cycles of one instance are serialized.
type Differ[K comparable, S any] struct {
	source  Source[K, S]
	changed func(old, new S) bool
	name    string
	logger  *slog.Logger
}

// NewDiffer builds a Differ over the given source. Optional source
// capabilities (ChangeDetector, Namer) are detected here, once, and
// defaulted when absent: no detector means every cycle recomputes, no
// namer means the name derives from the source's type name.
func NewDiffer[K comparable, S any](source Source[K, S], opts ...Option) *Differ[K, S] {
	var config differConfig
	for _, opt := range opts {
		opt.applyDiffer(&config)
	}

	d := &Differ[K, S]{
		source: source,
		name:   config.name,
		logger: config.logger,
	}

	if d.name == "" {
		if namer, ok := source.(Namer); ok {
			d.name = namer.ComponentName()
		} else {
			d.name = deriveName(source)
		}
	}

	if detector, ok := source.(ChangeDetector[S]); ok {
		d.changed = detector.StateChanged
	}

	return d
}

// Name returns the component name used to build payload keys.
func (d *Differ[K, S]) Name() string {
	return d.name
}

// Diff computes the patches that reconcile the rendered list from the old
// state snapshot to the new one. It returns the diff, the new state after
// PrepareList adjustments, and the version to thread into the next cycle:
// version+1 if the cycle emitted at least one patch, version unchanged
// otherwise.
func (d *Differ[K, S]) Diff(old, new S, version Version) (*ListDiff, S, Version, error) {
	if d.changed != nil && !d.changed(old, new) {
		return &ListDiff{UpdateMode: UpdatePartial, Version: version}, new, version, nil
	}

	oldKeys, oldState := d.source.PrepareList(old)
	newKeys, newState := d.source.PrepareList(new)

	mode := UpdatePartial
	if len(oldKeys) == 0 {
		mode = UpdateFull
	}

	script := diffKeys(oldKeys, newKeys)

	items, err := d.assemble(script, oldState, newState, mode, version+1)
	if err != nil {
		return nil, newState, version, err
	}

	next := version
	if len(items) > 0 {
		next = version + 1
	}

	if d.logger != nil {
		d.logger.Debug("list diff cycle",
			slog.String("component", d.name),
			slog.String("mode", mode.String()),
			slog.Int("patches", len(items)),
			slog.Int64("version", int64(next)))
	}

	return &ListDiff{Items: items, UpdateMode: mode, Version: next}, newState, next, nil
}

// Payload is shorthand for diff.Payload(d.Name()).
func (d *Differ[K, S]) Payload(diff *ListDiff) map[string]any {
	return diff.Payload(d.name)
}
