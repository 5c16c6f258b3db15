package simpleselect

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/bidi"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/constants"
)

// TextDirection is the dir setting of a select or an item.
type TextDirection int

const (
	DirDefault TextDirection = iota // No explicit direction; inherit
	DirLTR                          // Left to right
	DirRTL                          // Right to left
	DirAuto                         // Derived from the item texts
)

func (d TextDirection) String() string {
	switch d {
	case DirLTR:
		return "ltr"
	case DirRTL:
		return "rtl"
	case DirAuto:
		return "auto"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d TextDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so TOML settings can
// spell the direction as "ltr", "rtl", "auto" or "".
func (d *TextDirection) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "":
		*d = DirDefault
	case "ltr":
		*d = DirLTR
	case "rtl":
		*d = DirRTL
	case "auto":
		*d = DirAuto
	default:
		return fmt.Errorf("%w: dir %q", ErrInvalidSettings, text)
	}
	return nil
}

// IsRTL reports whether the first strongly directional character of text is
// right-to-left. Neutral characters (digits, punctuation, spaces) are skipped.
func IsRTL(text string) bool {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return false
		case bidi.R, bidi.AL:
			return true
		}
	}
	return false
}

// ResolveDirection resolves an item's direction against its parent's dir.
// An item without its own dir inherits the parent's; "auto" looks at the
// item text.
func ResolveDirection(item, parent TextDirection, text string) TextDirection {
	dir := item
	if dir == DirDefault {
		dir = parent
	}

	switch dir {
	case DirRTL:
		return DirRTL
	case DirAuto:
		if IsRTL(text) {
			return DirRTL
		}
		return DirLTR
	case DirLTR:
		return DirLTR
	default:
		return DirDefault
	}
}

// SidewaysScroll computes the horizontal offset used to reveal the clipped
// tail of a highlighted item whose content is wider than its box. The
// offset is negative for left-to-right items and positive for
// right-to-left ones. The second return is false when nothing overflows.
func SidewaysScroll(clientWidth, scrollWidth float64, dir TextDirection) (float64, bool) {
	// Sub-pixel differences are not overflow.
	if scrollWidth-clientWidth <= 1 {
		return 0, false
	}

	offset := clientWidth - scrollWidth - constants.ScrollbarAllowance
	if dir == DirRTL {
		offset = -offset
	}
	return offset, true
}
