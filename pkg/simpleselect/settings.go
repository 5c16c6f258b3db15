package simpleselect

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/constants"
)

// HighlightSource decides where arrow navigation starts when nothing is
// highlighted yet.
type HighlightSource int

const (
	// HighlightFromSelection starts at the selected index (-1 is before the first item).
	HighlightFromSelection HighlightSource = iota
	// HighlightFromStart starts before the first item for both directions.
	HighlightFromStart
)

func (h HighlightSource) String() string {
	if h == HighlightFromStart {
		return "start"
	}
	return "selection"
}

// MarshalText implements encoding.TextMarshaler.
func (h HighlightSource) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HighlightSource) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "selection":
		*h = HighlightFromSelection
	case "start":
		*h = HighlightFromStart
	default:
		return fmt.Errorf("%w: initial_highlight %q", ErrInvalidSettings, text)
	}
	return nil
}

// Settings configures a Select.
//
// TypeaheadTimeout is how long the typeahead buffer survives after the last keypress.
// InitialHighlight is where arrow navigation starts without a highlight.
// TabConfirms makes Tab commit the highlighted item while still moving focus.
// CloseOnClick blurs the select after an item is clicked.
// Dir is the text direction of the select; items without their own inherit it.
// TabIndex is the tab index reported while enabled.
// Placeholder and AriaLabel feed the accessible label.
// Required and Disabled set the initial form state.
// Locale selects the message catalog for labels and announcements.
// ID is the element id; generated when empty.
//
// Skip, Equal and Clock cannot be set from TOML.
type Settings struct {
	TypeaheadTimeout time.Duration   `toml:"typeahead_timeout"`
	InitialHighlight HighlightSource `toml:"initial_highlight"`
	TabConfirms      bool            `toml:"tab_confirms"`
	CloseOnClick     bool            `toml:"close_on_click"`
	Dir              TextDirection   `toml:"dir"`
	TabIndex         int             `toml:"tab_index"`
	Placeholder      string          `toml:"placeholder"`
	AriaLabel        string          `toml:"aria_label"`
	Required         bool            `toml:"required"`
	Disabled         bool            `toml:"disabled"`
	Locale           string          `toml:"locale"`
	ID               string          `toml:"id"`

	Skip  SkipPredicate    `toml:"-"` // Default: SkipDisabled
	Equal ValueEqual       `toml:"-"` // Default: DefaultValueEqual
	Clock func() time.Time `toml:"-"` // Default: time.Now
}

// DefaultSettings returns the settings a Select uses when none are given.
func DefaultSettings() Settings {
	return Settings{
		TypeaheadTimeout: constants.DefaultTypeaheadTimeout,
		InitialHighlight: HighlightFromSelection,
		CloseOnClick:     true,
		Locale:           language.English.String(),
	}
}

// ParseSettings decodes TOML on top of DefaultSettings. Unknown keys are
// rejected.
func ParseSettings(data []byte) (Settings, error) {
	settings := DefaultSettings()

	md, err := toml.Decode(string(data), &settings)
	if err != nil {
		return Settings{}, newSettingsError("decode", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Settings{}, newSettingsError("decode", fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// LoadSettings reads and decodes a TOML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, newSettingsError("read", err)
	}
	return ParseSettings(data)
}

// Validate checks values that TOML decoding alone cannot.
func (s Settings) Validate() error {
	if s.TypeaheadTimeout < 0 {
		return newSettingsError("validate", fmt.Errorf("typeahead_timeout must not be negative, got %s", s.TypeaheadTimeout))
	}
	if s.Locale != "" {
		if _, err := language.Parse(s.Locale); err != nil {
			return newSettingsError("validate", fmt.Errorf("%w %q: %v", ErrUnknownLocale, s.Locale, err))
		}
	}
	return nil
}

func (s Settings) withDefaults() Settings {
	if s.TypeaheadTimeout <= 0 {
		s.TypeaheadTimeout = constants.DefaultTypeaheadTimeout
	}
	if s.Skip == nil {
		s.Skip = SkipDisabled
	}
	if s.Equal == nil {
		s.Equal = DefaultValueEqual
	}
	if s.Clock == nil {
		s.Clock = time.Now
	}
	return s
}
