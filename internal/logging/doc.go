// Package logging provides zerolog-based structured logging for vport.
// It configures console or JSON output with optional file logging, tags
// loggers with a component field, and carries ULID trace IDs on the
// context so a demo session's log lines can be correlated.
package logging
