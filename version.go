package livelists

import (
	"fmt"
	"strconv"
)

// Version is the monotonic counter threaded through successive diff cycles
// of one list instance. It increments by exactly one on every cycle that
// emitted at least one patch and is held otherwise.
type Version int64

// InitialVersion is the version of a list before any patch-producing cycle.
// The first cycle that emits patches stamps version 1.
const InitialVersion Version = 0

// Base36 renders the version the way sort instructions carry it on the wire.
func (v Version) Base36() string {
	return strconv.FormatInt(int64(v), 36)
}

// ParseVersion parses the base36 form produced by Base36.
func ParseVersion(s string) (Version, error) {
	n, err := strconv.ParseInt(s, 36, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", s, err)
	}

	return Version(n), nil
}
