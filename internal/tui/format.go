package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatCount formats an integer with thousand separators.
// Example: FormatCount(1000000) returns "1,000,000".
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatRows formats a row extent with thousand separators and no
// fractional part; engine extents are whole rows in the terminal host.
func FormatRows(rows float64) string {
	return printer.Sprintf("%d", int64(rows))
}
