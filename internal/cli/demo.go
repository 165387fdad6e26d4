package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/vport/internal/tui"
)

// newDemoCmd creates the `vport demo` command: an interactive windowed
// list over a synthetic variable-height dataset.
func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Browse a synthetic variable-height list in the terminal",
		Long: "Runs the windowing engine under a Bubble Tea host: only the visible\n" +
			"window of the dataset is rendered, item heights are measured as they\n" +
			"scroll into view, and the view never jumps when off-screen items are\n" +
			"measured.",
		RunE: runDemo,
	}

	cmd.Flags().Int("items", 0, "item count (0 = config demo.item_count)")
	cmd.Flags().Int64("seed", 0, "dataset seed (0 = config demo.seed)")
	cmd.Flags().Bool("plain", false, "print one window as plain text and exit")

	return cmd
}

// runDemo generates the dataset and runs the interactive program, or
// prints a single window when not attached to a terminal.
func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	count, _ := cmd.Flags().GetInt("items")
	if count <= 0 {
		count = cfg.Demo.ItemCount
	}
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = cfg.Demo.Seed
	}

	logger.Info().Int("items", count).Int64("seed", seed).Msg("starting demo")
	items := tui.GenerateItems(count, seed)
	model := tui.NewDemoModel(items, cfg, logger)

	plain, _ := cmd.Flags().GetBool("plain")
	if tui.DetectOutputMode(plain) == tui.OutputModePlain {
		return renderPlainDemo(cmd, model, count)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("demo program failed: %w", err)
	}
	return nil
}

// renderPlainDemo prints the first viewport window without interactivity,
// for pipes and CI logs.
func renderPlainDemo(cmd *cobra.Command, model *tui.DemoModel, count int) error {
	list := model.List()
	view := list.View() // renders and measures the first window
	window := list.Window()

	fmt.Fprintf(cmd.OutOrStdout(), "%s items, window [%d..%d], %s total rows\n",
		tui.FormatCount(count), window.Start, window.End, tui.FormatRows(list.TotalRows()))
	fmt.Fprintln(cmd.OutOrStdout(), view)
	return nil
}
