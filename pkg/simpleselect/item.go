package simpleselect

import (
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/constants"
	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/internal"
)

// Item represents a single option in a Select.
// Text is what typeahead matches against, Value is what the select reports
// to its value sink. The selected, highlighted and hovered flags are written
// by the owning Select only and read by the presentation layer.
type Item struct {
	ID    string        // Element id; generated when empty
	Text  string        // Display text, also used for typeahead
	Value any           // Opaque value reported on selection
	Dir   TextDirection // Per-item direction, DirDefault inherits from the select

	disabled    atomic.Bool
	selected    bool
	highlighted bool
	hovered     bool

	clientWidth float64
	overflow    float64
	scrolls     bool
}

// NewItem creates an enabled item with a generated id.
func NewItem(text string, value any) *Item {
	return &Item{
		ID:    internal.NextID(constants.OptionIDPrefix),
		Text:  text,
		Value: value,
	}
}

// NewDisabledItem creates an item that starts disabled.
func NewDisabledItem(text string, value any) *Item {
	item := NewItem(text, value)
	item.SetDisabled(true)
	return item
}

// Disabled reports whether the item is disabled. Safe for concurrent use.
func (it *Item) Disabled() bool {
	return it.disabled.Load()
}

// SetDisabled toggles the disabled flag. Safe for concurrent use.
func (it *Item) SetDisabled(disabled bool) {
	it.disabled.Store(disabled)
}

// Selected reports whether the item is the committed selection.
func (it *Item) Selected() bool {
	return it.selected
}

// Highlighted reports whether the item is the keyboard/pointer candidate.
func (it *Item) Highlighted() bool {
	return it.highlighted
}

// Hovered reports whether the pointer is over the item.
func (it *Item) Hovered() bool {
	return it.hovered
}

// Measure records the rendered box and content widths of the item so the
// presentation layer can scroll long labels sideways while hovered.
// Recalculates only when the box width changed.
func (it *Item) Measure(clientWidth, scrollWidth float64, dir TextDirection) {
	if clientWidth == it.clientWidth {
		return
	}
	it.clientWidth = clientWidth
	it.overflow, it.scrolls = SidewaysScroll(clientWidth, scrollWidth, dir)
}

// SidewaysOffset returns the horizontal offset to apply while the item is
// scrolled sideways, and whether it should scroll at all right now.
func (it *Item) SidewaysOffset() (float64, bool) {
	if !it.highlighted || !it.hovered || !it.scrolls {
		return 0, false
	}
	return it.overflow, true
}

func (it *Item) ensureID() {
	if it.ID == "" {
		it.ID = internal.NextID(constants.OptionIDPrefix)
	}
}

func (it *Item) clearState() {
	it.selected = false
	it.highlighted = false
	it.hovered = false
}
