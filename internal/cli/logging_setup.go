package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/vport/internal/config"
	"github.com/rshade/vport/internal/logging"
)

// setupLogging configures logging from the config file and CLI flags and
// attaches a session trace ID to the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.Result {
	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
		logCfg.Format = "console"
		logCfg.File = ""
	}

	result := logging.New(logCfg)
	if result.FallbackReason != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open log file: %s\n", result.FallbackReason)
	}

	traceID := logging.GetOrGenerateTraceID(cmd.Context())
	sessionLogger := result.Logger.With().Str("trace_id", traceID).Logger()
	logger = logging.ComponentLogger(sessionLogger, "cli")
	result.Logger = sessionLogger

	cmd.SetContext(logging.ContextWithTraceID(cmd.Context(), traceID))
	return result
}

// cleanupLogging closes the log file handle opened by setupLogging, if any.
func cleanupLogging(result *logging.Result) {
	if result == nil || result.FileHandle == nil {
		return
	}
	_ = result.FileHandle.Close()
}
