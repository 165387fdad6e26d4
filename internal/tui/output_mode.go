package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode describes how the demo should present itself.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and redirects.
	OutputModePlain OutputMode = iota

	// OutputModeInteractive runs the full-screen Bubble Tea program.
	OutputModeInteractive
)

// DetectOutputMode picks the output mode for the current process. A forced
// plain flag wins; otherwise interactivity requires stdout to be a
// terminal.
func DetectOutputMode(plain bool) OutputMode {
	if plain {
		return OutputModePlain
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return OutputModeInteractive
	}
	return OutputModePlain
}
