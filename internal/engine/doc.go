// Package engine implements the virtual windowing engine: given an ordered
// sequence of items with variable, asynchronously measured sizes, it
// determines in O(log N) which contiguous index range must be materialized
// to fill a viewport, and keeps that computation jump-free as measurements
// arrive. Key features:
//   - Size model with estimated-to-measured per-index lifecycle
//   - Fenwick-backed position index for O(log N) offset and index lookups
//   - Visible-window calculation with row- and pixel-based overscan
//   - Scroll targeting with start/end/center/auto alignment
//   - Anchor preservation: measuring an item above the viewport yields a
//     scroll-offset correction so on-screen content never jumps
//
// The engine is single-threaded and synchronous: every operation runs to
// completion as a pure function of current state plus its inputs, so it can
// be driven at scroll-event frequency from an event loop without
// debouncing. One engine owns one size model/position index pair; separate
// lists need separate engines.
package engine
