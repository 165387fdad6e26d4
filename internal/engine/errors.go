package engine

import "errors"

// MinItemSize is the smallest effective item size. Measurements and
// estimates below it are clamped up so cumulative offsets stay strictly
// increasing, which the offset-to-index search relies on.
const MinItemSize = 0.001

// Common engine errors.
var (
	// ErrInvalidIndex is returned when an index outside the valid range is
	// passed to an operation that cannot clamp it. The engine's state is
	// never modified by a rejected call.
	ErrInvalidIndex = errors.New("index out of range")
)
