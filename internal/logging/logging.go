package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level to emit ("trace" through "panic").
	// Invalid or empty values fall back to "info".
	Level string

	// Format selects "console" (human-readable, default) or "json".
	Format string

	// File, when non-empty, appends JSON log lines to the given path in
	// addition to the primary writer.
	File string
}

// Result describes the logger that was built and where it writes.
type Result struct {
	Logger zerolog.Logger

	// UsingFile reports whether file output was opened successfully.
	UsingFile bool

	// FilePath is the opened log file path when UsingFile is true.
	FilePath string

	// FileHandle is the opened file, retained so the caller can close it
	// on shutdown. Nil when UsingFile is false.
	FileHandle *os.File

	// FallbackReason explains why file output was requested but not used.
	FallbackReason string
}

// New builds a logger per the config. File-open failures are non-fatal:
// logging falls back to the primary writer and the reason is reported in
// the result.
func New(cfg Config) Result {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var primary io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	if cfg.Format == "json" {
		primary = os.Stderr
	}

	result := Result{}
	writers := []io.Writer{primary}

	if cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if openErr != nil {
			result.FallbackReason = openErr.Error()
		} else {
			writers = append(writers, f)
			result.UsingFile = true
			result.FilePath = cfg.File
			result.FileHandle = f
		}
	}

	out := writers[0]
	if len(writers) > 1 {
		out = zerolog.MultiLevelWriter(writers...)
	}

	result.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return result
}

// ComponentLogger returns a child logger tagged with a component field, so
// engine, TUI, and CLI lines are distinguishable in shared output.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
