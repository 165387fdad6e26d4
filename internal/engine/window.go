package engine

// Window is the contiguous, inclusive index range [Start, End] the host
// must materialize to fill the viewport. The zero-value semantics live in
// EmptyWindow: an empty sequence or a degenerate viewport yields no range.
type Window struct {
	// Start is the first index to materialize (inclusive).
	Start int

	// End is the last index to materialize (inclusive).
	End int
}

// EmptyWindow is the sentinel returned when there is nothing to render.
var EmptyWindow = Window{Start: -1, End: -1}

// IsEmpty reports whether the window contains no items.
func (w Window) IsEmpty() bool {
	return w.Start < 0
}

// Len returns the number of items in the window.
func (w Window) Len() int {
	if w.IsEmpty() {
		return 0
	}
	return w.End - w.Start + 1
}

// Contains reports whether index i lies inside the window.
func (w Window) Contains(i int) bool {
	return !w.IsEmpty() && i >= w.Start && i <= w.End
}

// Overscan expands the strictly visible range so the host can render extra
// items beyond the viewport edges, masking pop-in during fast scrolling.
// Rows and Pixels compose when both are set.
type Overscan struct {
	// Rows widens the window by a fixed item count on each side.
	Rows int

	// Pixels widens the window by re-querying the position index at the
	// viewport edges pushed out by this many size units.
	Pixels float64
}

// Window computes the index range that must be materialized for the given
// scroll offset and viewport size. The offset is clamped internally for the
// engine's lookups; the caller's value is not mutated. Cost is O(log N)
// regardless of N or overscan.
//
// The range is half-open in offset space: an item whose top edge sits
// exactly at the viewport bottom is not part of the visible range.
func (e *Engine) Window(scrollOffset, viewportSize float64, overscan Overscan) Window {
	n := e.index.Len()
	if n == 0 || viewportSize <= 0 {
		return EmptyWindow
	}

	offset := e.clampOffset(scrollOffset, viewportSize)
	bottom := offset + viewportSize

	start := e.index.IndexAt(offset)
	end := e.index.IndexAt(bottom)
	// An item starting exactly at the viewport bottom is outside the
	// half-open visible span.
	if end > start && e.index.OffsetOf(end) == bottom {
		end--
	}

	if overscan.Pixels > 0 {
		start = e.index.IndexAt(offset - overscan.Pixels)
		end = e.index.IndexAt(bottom + overscan.Pixels)
	}
	if overscan.Rows > 0 {
		start -= overscan.Rows
		end += overscan.Rows
	}

	if start < 0 {
		start = 0
	}
	if end > n-1 {
		end = n - 1
	}
	return Window{Start: start, End: end}
}
