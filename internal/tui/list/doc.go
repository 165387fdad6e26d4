// Package listview provides a virtual scrolling list model for Bubble Tea
// applications, backed by the windowing engine. Unlike a fixed-row list,
// items may render to any number of terminal lines: heights are measured
// from the rendered output the first time an item enters the window, and
// the engine's anchor preservation keeps the view from jumping when
// off-screen items are measured. Key features:
//   - O(log N) visible-range computation for 100,000+ item lists
//   - Variable item heights with render-time measurement
//   - Keyboard navigation (arrows, vim keys, pgup/pgdn, home/end)
//   - Configurable overscan to mask pop-in while scrolling
package listview
