package engine

// Measure applies a measured size reported by the host's measurement source
// and returns the scroll-offset correction that keeps the anchor item's
// on-screen position unchanged.
//
// anchorIndex is the topmost visible index at the time the measurement is
// applied. When the measured item lies strictly above the anchor, the
// returned correction equals the size delta: the host adds it to its scroll
// offset so everything at and below the anchor stays put. Measurements at
// or below the anchor only grow or shrink the scrollable extent and return
// a zero correction.
//
// Non-positive sizes are clamped to MinItemSize and logged, never fatal.
// Measurements for indices at or beyond Len() are stale leftovers from a
// structural removal: they are dropped silently apart from a log line.
func (e *Engine) Measure(
	index int,
	actualSize float64,
	anchorIndex int,
	currentScrollOffset float64,
) (correction float64) {
	if index < 0 || index >= e.index.Len() {
		e.logger.Debug().
			Int("index", index).
			Int("count", e.index.Len()).
			Float64("size", actualSize).
			Msg("dropping stale measurement")
		return 0
	}

	if actualSize < MinItemSize {
		e.logger.Warn().
			Int("index", index).
			Float64("size", actualSize).
			Float64("clamped", MinItemSize).
			Msg("non-positive measurement clamped")
	}

	stored := e.sizes.SetMeasured(index, actualSize)
	delta := e.index.Update(index, stored)

	if index < anchorIndex {
		return delta
	}
	return 0
}

// InvalidateMeasurement resets index i to its estimated size, as after a
// content change that voids the host's previous measurement. The position
// index is updated to the estimate in O(log N). Out-of-range indices are a
// no-op.
func (e *Engine) InvalidateMeasurement(i int) {
	if i < 0 || i >= e.index.Len() {
		return
	}
	e.sizes.Invalidate(i)
	e.index.Update(i, e.sizes.SizeOf(i))
}
