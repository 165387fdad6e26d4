package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/vport/internal/config"
	"github.com/rshade/vport/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the vport CLI.
// It wires up config loading, logging, tracing, and the subcommands
// (demo, bench, config).
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:   "vport",
		Short: "Virtual windowing engine demo and tooling",
		Long: "vport: O(log N) windowed scrolling over huge variable-height lists,\n" +
			"with a terminal demo host and engine benchmarks",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging to the console")
	cmd.PersistentFlags().String("config", "", "config file path (default ~/.vport/config.yaml)")
	cmd.AddCommand(newDemoCmd(), newBenchCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse a 100,000-item variable-height list
  vport demo --items 100000

  # Benchmark window computation over a million items
  vport bench --items 1000000 --ops 100

  # Write the default configuration
  vport config init`

// configPath resolves the config file path from the persistent flag.
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	return path
}

// loadConfig loads the configured or default config file, falling back to
// built-in defaults when no file exists.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.LoadOrDefault(configPath(cmd))
}
