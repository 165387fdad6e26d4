package prefixtree

// Tree is a Fenwick tree over N float64 slots, one slot per item index.
// Offsets are cumulative sums of slot values: the offset of index i is the
// sum of slots [0, i). Not safe for concurrent use.
type Tree struct {
	// nodes is the 1-indexed Fenwick array; nodes[i] aggregates a
	// power-of-two span of sizes ending at i.
	nodes []float64

	// sizes mirrors the raw slot values for O(1) reads and O(N) rebuilds.
	sizes []float64

	// step is the largest power of two <= len(sizes), the starting stride
	// for the binary-lifting descent in IndexAt.
	step int
}

// New builds a tree over the given slot sizes in O(N).
// The sizes slice is copied; the caller retains ownership of its argument.
func New(sizes []float64) *Tree {
	t := &Tree{sizes: append([]float64(nil), sizes...)}
	t.rebuild()
	return t
}

// Len returns the number of slots.
func (t *Tree) Len() int {
	return len(t.sizes)
}

// Total returns the sum of all slot sizes in O(log N).
func (t *Tree) Total() float64 {
	return t.prefix(len(t.sizes))
}

// Size returns the raw value of slot i. Out-of-range indices return 0.
func (t *Tree) Size(i int) float64 {
	if i < 0 || i >= len(t.sizes) {
		return 0
	}
	return t.sizes[i]
}

// OffsetOf returns the cumulative size of slots [0, i), the top edge of
// slot i. OffsetOf(0) is 0 and OffsetOf(Len()) equals Total(). Indices are
// clamped to [0, Len()].
func (t *Tree) OffsetOf(i int) float64 {
	if i < 0 {
		i = 0
	}
	if i > len(t.sizes) {
		i = len(t.sizes)
	}
	return t.prefix(i)
}

// IndexAt returns the slot index i whose span [OffsetOf(i), OffsetOf(i+1))
// contains offset. Offsets below 0 map to slot 0 and offsets at or beyond
// Total() map to the last slot. Returns -1 when the tree is empty.
//
// The search descends the implicit node hierarchy comparing offset against
// subtree aggregates, so the cost is O(log N) regardless of the answer's
// position.
func (t *Tree) IndexAt(offset float64) int {
	n := len(t.sizes)
	if n == 0 {
		return -1
	}
	if offset < 0 {
		return 0
	}

	// Find the largest pos with prefix(pos) <= offset.
	pos := 0
	rem := offset
	for bit := t.step; bit > 0; bit >>= 1 {
		if next := pos + bit; next <= n && t.nodes[next] <= rem {
			rem -= t.nodes[next]
			pos = next
		}
	}

	if pos >= n {
		pos = n - 1
	}
	return pos
}

// Update sets slot i to size in O(log N) and returns the signed delta
// (new size minus old size). Out-of-range indices are a no-op returning 0.
func (t *Tree) Update(i int, size float64) float64 {
	if i < 0 || i >= len(t.sizes) {
		return 0
	}
	delta := size - t.sizes[i]
	if delta == 0 {
		return 0
	}
	t.sizes[i] = size
	for j := i + 1; j <= len(t.sizes); j += j & (-j) {
		t.nodes[j] += delta
	}
	return delta
}

// InsertAt inserts a new slot with the given size before index i, shifting
// subsequent slots up by one. i equal to Len() appends. This is a
// structural change and rebuilds the tree array in O(N).
func (t *Tree) InsertAt(i int, size float64) {
	if i < 0 {
		i = 0
	}
	if i > len(t.sizes) {
		i = len(t.sizes)
	}
	t.sizes = append(t.sizes, 0)
	copy(t.sizes[i+1:], t.sizes[i:])
	t.sizes[i] = size
	t.rebuild()
}

// RemoveAt removes slot i, shifting subsequent slots down by one. This is a
// structural change and rebuilds the tree array in O(N). Out-of-range
// indices are a no-op.
func (t *Tree) RemoveAt(i int) {
	if i < 0 || i >= len(t.sizes) {
		return
	}
	t.sizes = append(t.sizes[:i], t.sizes[i+1:]...)
	t.rebuild()
}

// prefix returns the sum of slots [0, i) for i in [0, Len()].
func (t *Tree) prefix(i int) float64 {
	var sum float64
	for ; i > 0; i -= i & (-i) {
		sum += t.nodes[i]
	}
	return sum
}

// rebuild reconstructs the Fenwick array from the raw sizes in O(N).
func (t *Tree) rebuild() {
	n := len(t.sizes)
	t.nodes = make([]float64, n+1)
	copy(t.nodes[1:], t.sizes)
	for i := 1; i <= n; i++ {
		if j := i + (i & (-i)); j <= n {
			t.nodes[j] += t.nodes[i]
		}
	}

	t.step = 1
	for t.step*2 <= n {
		t.step *= 2
	}
	if n == 0 {
		t.step = 0
	}
}
