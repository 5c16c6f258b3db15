package simpleselect

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrInvalidSettings indicates settings could not be decoded or contained
	// values outside the accepted set.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrUnknownLocale indicates a message catalog was requested for a locale
	// tag that could not be parsed.
	ErrUnknownLocale = errors.New("unknown locale")
)

// SettingsError describes a failure while loading or decoding Settings.
// The selection state machine itself never returns errors; these only
// surface at the configuration edge.
type SettingsError struct {
	Op  string // Operation that failed (e.g., "read", "decode", "validate")
	Err error  // Underlying error
}

func (e *SettingsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("simpleselect: settings %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("simpleselect: settings %s", e.Op)
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

// Is reports every SettingsError as ErrInvalidSettings.
func (e *SettingsError) Is(target error) bool {
	return target == ErrInvalidSettings
}

func newSettingsError(op string, err error) *SettingsError {
	return &SettingsError{Op: op, Err: err}
}

// IsSettingsError checks if an error is a settings error.
func IsSettingsError(err error) bool {
	var settingsErr *SettingsError
	return errors.As(err, &settingsErr)
}
