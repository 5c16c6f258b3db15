// Package constants defines shared constants, key names, and default values
// used throughout simpleselect.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar overrides the internal log level ("debug", "info", "warn", "error").
const LogLevelEnvVar = "SIMPLESELECT_LOG_LEVEL"

// LogPathEnvVar sets a log file path when SetLogPath was not called.
const LogPathEnvVar = "SIMPLESELECT_LOG_PATH"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Normalized key names. These match the values of KeyboardEvent.key in the
// browser so that events from any front end can share one mapping table.
const (
	KeyBackspace = "Backspace"
	KeyEnter     = "Enter"
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
	KeyEscape    = "Escape"
	KeyPageUp    = "PageUp"
	KeyPageDown  = "PageDown"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyTab       = "Tab"
	KeySpace     = " "
)

// Default timing and layout constants.
const (
	DefaultTypeaheadTimeout = 500 * time.Millisecond // Typeahead buffer lifetime after the last keypress
	DefaultRepeatDelay      = 300 * time.Millisecond // Hold time before a held key starts repeating
	DefaultRepeatInterval   = 50 * time.Millisecond  // Time between repeats of a held key
	ScrollbarAllowance      = 5.0                    // Width reserved for the scrollbar in sideways scrolling
)

// ID prefixes for generated element identifiers.
const (
	SelectIDPrefix = "simple-select"
	OptionIDPrefix = "simple-option"
)
