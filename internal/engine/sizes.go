package engine

// Estimator supplies a provisional size for an item that has not been
// measured yet. It must be pure and return a non-negative size.
type Estimator func(index int) float64

// SizeModel stores one size per item index: either the authoritative
// measured size reported by the host, or a provisional estimate resolved on
// demand through the configured estimator. Entries move from estimated to
// measured when a measurement arrives and back to estimated when the index
// is structurally invalidated; no other transitions exist.
type SizeModel struct {
	// measured holds the reported size for each index; only meaningful
	// where known is true.
	measured []float64

	// known flags which indices carry a measured size.
	known []bool

	// estimate resolves provisional sizes for unmeasured indices.
	estimate Estimator
}

// NewSizeModel creates a size model for count items, all estimated. The
// estimator may be nil, in which case defaultEstimate is used for every
// unmeasured index.
func NewSizeModel(count int, defaultEstimate float64, estimator Estimator) *SizeModel {
	if count < 0 {
		count = 0
	}
	if estimator == nil {
		estimator = func(int) float64 { return defaultEstimate }
	}
	return &SizeModel{
		measured: make([]float64, count),
		known:    make([]bool, count),
		estimate: estimator,
	}
}

// Len returns the number of item slots.
func (m *SizeModel) Len() int {
	return len(m.known)
}

// SizeOf returns the effective size of index i: the measured size if
// present, else the estimate. The result is floored at MinItemSize.
// Out-of-range indices return 0.
func (m *SizeModel) SizeOf(i int) float64 {
	if i < 0 || i >= len(m.known) {
		return 0
	}
	size := m.measured[i]
	if !m.known[i] {
		size = m.estimate(i)
	}
	if size < MinItemSize {
		size = MinItemSize
	}
	return size
}

// IsMeasured reports whether index i holds a measured size.
func (m *SizeModel) IsMeasured(i int) bool {
	return i >= 0 && i < len(m.known) && m.known[i]
}

// SetMeasured records a measured size for index i and returns the effective
// size actually stored. Sizes below MinItemSize are clamped rather than
// rejected; the caller decides whether the clamp is worth reporting.
// Out-of-range indices are a no-op returning 0.
func (m *SizeModel) SetMeasured(i int, size float64) float64 {
	if i < 0 || i >= len(m.known) {
		return 0
	}
	if size < MinItemSize {
		size = MinItemSize
	}
	m.measured[i] = size
	m.known[i] = true
	return size
}

// Invalidate resets index i to estimated. Out-of-range indices are a no-op.
func (m *SizeModel) Invalidate(i int) {
	if i < 0 || i >= len(m.known) {
		return
	}
	m.measured[i] = 0
	m.known[i] = false
}

// InsertAt inserts a new estimated slot before index i, shifting subsequent
// bindings up by one. i equal to Len() appends.
func (m *SizeModel) InsertAt(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(m.known) {
		i = len(m.known)
	}
	m.measured = append(m.measured, 0)
	copy(m.measured[i+1:], m.measured[i:])
	m.measured[i] = 0
	m.known = append(m.known, false)
	copy(m.known[i+1:], m.known[i:])
	m.known[i] = false
}

// RemoveAt removes slot i, shifting subsequent bindings down by one.
// Out-of-range indices are a no-op.
func (m *SizeModel) RemoveAt(i int) {
	if i < 0 || i >= len(m.known) {
		return
	}
	m.measured = append(m.measured[:i], m.measured[i+1:]...)
	m.known = append(m.known[:i], m.known[i+1:]...)
}
