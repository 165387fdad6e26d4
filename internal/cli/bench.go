package cli

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/vport/internal/engine"
)

// Bench defaults.
const (
	defaultBenchItems = 1_000_000
	defaultBenchOps   = 100
	defaultBenchLists = 4
)

// benchPrinter formats counts with thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var benchPrinter = message.NewPrinter(language.English)

// newBenchCmd creates the `vport bench` command: timed bursts of window
// and measurement operations against large engines.
func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark window computation and remeasurement",
		Long: "Drives bursts of window queries and measurements against one engine\n" +
			"per simulated list. Lists run concurrently on independent engine\n" +
			"instances; each engine itself is single-threaded.",
		RunE: runBench,
	}

	cmd.Flags().Int("items", defaultBenchItems, "items per list")
	cmd.Flags().Int("ops", defaultBenchOps, "window queries per burst")
	cmd.Flags().Int("lists", defaultBenchLists, "concurrent independent lists")

	return cmd
}

// benchResult captures one list's timings.
type benchResult struct {
	build   time.Duration
	windows time.Duration
	measure time.Duration
}

func runBench(cmd *cobra.Command, _ []string) error {
	items, _ := cmd.Flags().GetInt("items")
	ops, _ := cmd.Flags().GetInt("ops")
	lists, _ := cmd.Flags().GetInt("lists")
	if items <= 0 || ops <= 0 || lists <= 0 {
		return fmt.Errorf("items, ops and lists must all be positive")
	}

	logger.Info().
		Int("items", items).
		Int("ops", ops).
		Int("lists", lists).
		Msg("starting benchmark")

	results := make([]benchResult, lists)
	g, _ := errgroup.WithContext(cmd.Context())
	for li := range lists {
		g.Go(func() error {
			results[li] = benchOneList(items, ops, int64(li)+1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printBenchResults(cmd.OutOrStdout(), items, ops, lists, results)
	return nil
}

// benchOneList runs the scenario against a fresh engine: build, a burst of
// window queries at random offsets, then a burst of measurements with the
// anchor held.
func benchOneList(items, ops int, seed int64) benchResult {
	rng := rand.New(rand.NewSource(seed))
	var res benchResult

	start := time.Now()
	eng := engine.New(items, engine.Options{DefaultEstimate: 2})
	res.build = time.Since(start)

	total := eng.TotalSize()
	const viewport = 50.0
	over := engine.Overscan{Rows: 5}

	start = time.Now()
	for range ops {
		offset := rng.Float64() * total
		_ = eng.Window(offset, viewport, over)
	}
	res.windows = time.Since(start)

	start = time.Now()
	for range ops {
		index := rng.Intn(items)
		anchor := rng.Intn(items)
		_ = eng.Measure(index, 1+rng.Float64()*5, anchor, 0)
	}
	res.measure = time.Since(start)

	return res
}

// printBenchResults writes per-phase totals and throughput.
func printBenchResults(out io.Writer, items, ops, lists int, results []benchResult) {
	var build, windows, measure time.Duration
	for _, r := range results {
		build += r.build
		windows += r.windows
		measure += r.measure
	}

	totalOps := ops * lists
	benchPrinter.Fprintf(out, "%d lists × %d items\n", lists, items)
	benchPrinter.Fprintf(out, "  build:    %v total\n", build)
	benchPrinter.Fprintf(out, "  windows:  %d ops in %v (%d ops/s)\n",
		totalOps, windows, opsPerSecond(totalOps, windows))
	benchPrinter.Fprintf(out, "  measures: %d ops in %v (%d ops/s)\n",
		totalOps, measure, opsPerSecond(totalOps, measure))
}

// opsPerSecond guards against a zero elapsed time on coarse clocks.
func opsPerSecond(ops int, elapsed time.Duration) int64 {
	if elapsed <= 0 {
		return 0
	}
	return int64(float64(ops) / elapsed.Seconds())
}
