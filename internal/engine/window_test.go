package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vport/internal/engine"
)

// uniformEngine creates an engine over count items estimated at size each.
func uniformEngine(count int, size float64) *engine.Engine {
	return engine.New(count, engine.Options{DefaultEstimate: size})
}

// TestWindow_TopOfListWithOverscan tests the canonical first-page window:
// 1000 items of 50 units, a 500-unit viewport and 5 rows of overscan yield
// indices 0 through 14 (10 visible plus 5 below, clamped at the top).
func TestWindow_TopOfListWithOverscan(t *testing.T) {
	e := uniformEngine(1000, 50)

	w := e.Window(0, 500, engine.Overscan{Rows: 5})
	require.False(t, w.IsEmpty())
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 14, w.End)
	assert.Equal(t, 15, w.Len())
}

// TestWindow_MidListRanges tests window computation at interior offsets.
func TestWindow_MidListRanges(t *testing.T) {
	e := uniformEngine(1000, 50)

	tests := []struct {
		name      string
		offset    float64
		viewport  float64
		overscan  engine.Overscan
		wantStart int
		wantEnd   int
	}{
		{
			name:      "aligned mid-list",
			offset:    5000,
			viewport:  500,
			wantStart: 100,
			wantEnd:   109,
		},
		{
			name:      "partial rows at both edges",
			offset:    5025,
			viewport:  500,
			wantStart: 100,
			wantEnd:   110,
		},
		{
			name:      "pixel overscan expands by items",
			offset:    5000,
			viewport:  500,
			overscan:  engine.Overscan{Pixels: 100},
			wantStart: 98,
			wantEnd:   112,
		},
		{
			name:      "row and pixel overscan compose",
			offset:    5000,
			viewport:  500,
			overscan:  engine.Overscan{Rows: 2, Pixels: 100},
			wantStart: 96,
			wantEnd:   114,
		},
		{
			name:      "overscan clamps at the end",
			offset:    49500,
			viewport:  500,
			overscan:  engine.Overscan{Rows: 5},
			wantStart: 985,
			wantEnd:   999,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := e.Window(tt.offset, tt.viewport, tt.overscan)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
		})
	}
}

// TestWindow_EmptyCases tests the empty-window steady states.
func TestWindow_EmptyCases(t *testing.T) {
	empty := uniformEngine(0, 50)
	w := empty.Window(0, 500, engine.Overscan{})
	assert.True(t, w.IsEmpty())
	assert.Zero(t, w.Len())
	assert.Zero(t, empty.TotalSize())

	// A degenerate viewport also yields the empty window.
	e := uniformEngine(100, 50)
	assert.True(t, e.Window(0, 0, engine.Overscan{}).IsEmpty())
	assert.True(t, e.Window(0, -10, engine.Overscan{}).IsEmpty())
}

// TestWindow_ClampsOutOfRangeOffsets tests that transiently invalid scroll
// offsets are tolerated and clamped internally.
func TestWindow_ClampsOutOfRangeOffsets(t *testing.T) {
	e := uniformEngine(100, 50)

	w := e.Window(-9999, 500, engine.Overscan{})
	assert.Equal(t, 0, w.Start)

	w = e.Window(1e12, 500, engine.Overscan{})
	assert.Equal(t, 99, w.End)
	assert.Equal(t, 90, w.Start, "clamped to the last full viewport")
}

// TestWindow_VariableSizes tests windows over mixed measured/estimated
// sizes.
func TestWindow_VariableSizes(t *testing.T) {
	e := uniformEngine(10, 50)
	// Items: 100, 50, 25, 50, 200, 50...
	e.Measure(0, 100, 0, 0)
	e.Measure(2, 25, 0, 0)
	e.Measure(4, 200, 0, 0)

	// Offsets: 0, 100, 150, 175, 225, 425, 475, ...
	w := e.Window(120, 200, engine.Overscan{})
	assert.Equal(t, 1, w.Start)
	assert.Equal(t, 4, w.End, "viewport bottom at 320 lands inside item 4")
}

// TestWindow_BoundsProperty fuzzes the window-bounds guarantee: Start never
// exceeds End and both stay in [0, N-1].
func TestWindow_BoundsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := engine.New(300, engine.Options{
		Estimator: func(i int) float64 { return 1 + float64(i%37) },
	})

	for step := 0; step < 2000; step++ {
		offset := (rng.Float64() - 0.25) * e.TotalSize() * 1.5
		viewport := rng.Float64() * 400
		over := engine.Overscan{Rows: rng.Intn(20), Pixels: rng.Float64() * 100}

		w := e.Window(offset, viewport, over)
		if viewport <= 0 {
			require.True(t, w.IsEmpty())
			continue
		}
		require.False(t, w.IsEmpty())
		require.LessOrEqual(t, w.Start, w.End)
		require.GreaterOrEqual(t, w.Start, 0)
		require.Less(t, w.End, e.Len())
	}
}

// TestWindow_Contains tests the window membership helper.
func TestWindow_Contains(t *testing.T) {
	w := engine.Window{Start: 3, End: 7}
	assert.True(t, w.Contains(3))
	assert.True(t, w.Contains(7))
	assert.False(t, w.Contains(2))
	assert.False(t, w.Contains(8))
	assert.False(t, engine.EmptyWindow.Contains(0))
}

// BenchmarkWindow_MillionItems measures window computation over a
// million-item engine, the workload a 60Hz scroll burst produces.
func BenchmarkWindow_MillionItems(b *testing.B) {
	e := uniformEngine(1_000_000, 50)
	total := e.TotalSize()

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		offset := float64(i%1000) / 1000 * total
		_ = e.Window(offset, 800, engine.Overscan{Rows: 10})
	}
}
