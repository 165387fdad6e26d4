package engine

import (
	"github.com/rs/zerolog"

	"github.com/rshade/vport/internal/engine/prefixtree"
)

// DefaultEstimate is the per-item size assumed when no estimate is
// configured. Expressed in the host's size unit (pixels, terminal rows).
const DefaultEstimate = 1.0

// Options configures a new Engine.
type Options struct {
	// DefaultEstimate is the provisional size for unmeasured items when no
	// Estimator is set. Zero means DefaultEstimate (the constant).
	DefaultEstimate float64

	// Estimator resolves per-index provisional sizes. Optional; overrides
	// DefaultEstimate when set.
	Estimator Estimator

	// Logger receives non-fatal diagnostics (clamped measurements, stale
	// measurements). Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Engine owns the size model and position index for one windowed list and
// exposes the windowing operations on top of them. Not safe for concurrent
// use: the engine is single-threaded by contract, and independent lists
// must use independent engines.
type Engine struct {
	sizes  *SizeModel
	index  *prefixtree.Tree
	logger zerolog.Logger
}

// New creates an engine over count items, all initially estimated.
func New(count int, opts Options) *Engine {
	if count < 0 {
		count = 0
	}
	estimate := opts.DefaultEstimate
	if estimate <= 0 {
		estimate = DefaultEstimate
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	sizes := NewSizeModel(count, estimate, opts.Estimator)
	slots := make([]float64, count)
	for i := range slots {
		slots[i] = sizes.SizeOf(i)
	}

	return &Engine{
		sizes:  sizes,
		index:  prefixtree.New(slots),
		logger: logger,
	}
}

// Len returns the number of items.
func (e *Engine) Len() int {
	return e.index.Len()
}

// TotalSize returns the summed size of all items, the scrollable extent.
func (e *Engine) TotalSize() float64 {
	return e.index.Total()
}

// SizeOf returns the effective size of index i (measured or estimated).
// Out-of-range indices return 0.
func (e *Engine) SizeOf(i int) float64 {
	return e.index.Size(i)
}

// IsMeasured reports whether index i holds a measured size.
func (e *Engine) IsMeasured(i int) bool {
	return e.sizes.IsMeasured(i)
}

// OffsetOf returns the top edge of index i: the cumulative size of items
// [0, i). i may be Len(), in which case the result equals TotalSize().
// Indices outside [0, Len()] fail with ErrInvalidIndex.
func (e *Engine) OffsetOf(i int) (float64, error) {
	if i < 0 || i > e.index.Len() {
		return 0, ErrInvalidIndex
	}
	return e.index.OffsetOf(i), nil
}

// IndexAt returns the index whose span contains the given offset, clamped
// to the first/last item for offsets outside [0, TotalSize()). Returns -1
// when the engine holds no items.
func (e *Engine) IndexAt(offset float64) int {
	return e.index.IndexAt(offset)
}

// InsertAt inserts a new estimated item before index i, shifting subsequent
// indices up by one. i equal to Len() appends. Indices outside [0, Len()]
// fail with ErrInvalidIndex.
//
// Structural changes rebuild the position index in O(N); see the prefixtree
// package for the trade-off.
func (e *Engine) InsertAt(i int) error {
	if i < 0 || i > e.index.Len() {
		return ErrInvalidIndex
	}
	e.sizes.InsertAt(i)
	e.index.InsertAt(i, e.sizes.SizeOf(i))
	return nil
}

// RemoveAt removes item i, shifting subsequent indices down by one.
// Indices outside [0, Len()-1] fail with ErrInvalidIndex. Measurements for
// removed bindings that arrive later are dropped as stale by Measure.
func (e *Engine) RemoveAt(i int) error {
	if i < 0 || i >= e.index.Len() {
		return ErrInvalidIndex
	}
	e.sizes.RemoveAt(i)
	e.index.RemoveAt(i)
	return nil
}

// maxScrollOffset returns the largest meaningful scroll offset for the
// given viewport.
func (e *Engine) maxScrollOffset(viewportSize float64) float64 {
	maxOffset := e.index.Total() - viewportSize
	if maxOffset < 0 {
		return 0
	}
	return maxOffset
}

// clampOffset clamps a host-supplied scroll offset into the valid range for
// the engine's own lookups. The host's value is never mutated; transiently
// out-of-range offsets (rubber-banding, in-flight resizes) are tolerated.
func (e *Engine) clampOffset(offset, viewportSize float64) float64 {
	if offset < 0 {
		return 0
	}
	if maxOffset := e.maxScrollOffset(viewportSize); offset > maxOffset {
		return maxOffset
	}
	return offset
}
