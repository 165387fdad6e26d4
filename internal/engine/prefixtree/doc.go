// Package prefixtree provides a Fenwick (binary indexed) tree over per-item
// sizes, the position index behind the windowing engine. Key properties:
//   - Cumulative offset lookups and point updates in O(log N)
//   - Offset-to-index search via binary-lifting descent in O(log N),
//     never a linear scan
//   - Structural insert/remove via an O(N) rebuild of the flat tree array
//     (structural changes are rare next to scroll and measurement traffic,
//     so the hot paths stay O(log N) while the tree stays a plain slice)
//
// Slot values must be positive. Callers are expected to clamp sizes to a
// minimum epsilon before storing them; the offset-to-index search relies on
// strictly increasing cumulative offsets for uniqueness.
package prefixtree
