// Package simpleselect implements the state machine behind an accessible,
// searchable, keyboard-navigable single-selection list.
//
// A Select owns the selected and highlighted indices of its items. Front
// ends feed it normalized key events (KeyEvent), pointer events and item
// changes, attach a Viewport so the highlighted item stays visible, and
// read the per-item Selected/Highlighted flags to draw the list.
//
//	sel := simpleselect.New(items, simpleselect.DefaultSettings())
//	sel.OnChange(func(v any) { fmt.Println("picked", v) })
//	sel.Focus()
//	sel.HandleKey(simpleselect.KeyEvent{Key: "ArrowDown"})
package simpleselect

import (
	"log/slog"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first select is created to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the library logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the library logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger closes the log file opened by SetLogPath, if any.
func CloseLogger() {
	internal.CloseLogger()
}
