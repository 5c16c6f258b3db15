package simpleselect

// IntentKind is the navigation intent a key event maps to.
type IntentKind int

const (
	IntentIgnore      IntentKind = iota // Key has no meaning for the list
	IntentMoveToFirst                   // Home / PageUp
	IntentMoveToLast                    // End / PageDown
	IntentMoveUp                        // ArrowUp
	IntentMoveDown                      // ArrowDown
	IntentConfirm                       // Enter (and Tab when enabled)
	IntentBlur                          // Escape, Alt+ArrowUp, Alt+ArrowDown
	IntentTypeahead                     // Single printable character
)

func (k IntentKind) String() string {
	switch k {
	case IntentMoveToFirst:
		return "move-to-first"
	case IntentMoveToLast:
		return "move-to-last"
	case IntentMoveUp:
		return "move-up"
	case IntentMoveDown:
		return "move-down"
	case IntentConfirm:
		return "confirm"
	case IntentBlur:
		return "blur"
	case IntentTypeahead:
		return "typeahead"
	default:
		return "ignore"
	}
}

// KeyEvent is a normalized keyboard event. Key uses browser key names
// ("ArrowUp", "Enter", "a", ...), see the constants package.
type KeyEvent struct {
	Key  string
	Alt  bool
	Ctrl bool
}

// Intent is the classification of a single KeyEvent.
type Intent struct {
	Kind           IntentKind
	Char           string // Set for IntentTypeahead
	PreventDefault bool   // Whether the platform's default handling must be suppressed
}

// Outcome is what the key manager asks its owner to do for one key event.
// When both are set, the selection of Target happens before the blur.
type Outcome struct {
	Intent Intent
	Target int  // Index to select, -1 when nothing should be selected
	Blur   bool // Whether the owner should blur afterwards
}

// HasTarget reports whether the outcome selects an index.
func (o Outcome) HasTarget() bool {
	return o.Target >= 0
}
