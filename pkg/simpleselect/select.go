package simpleselect

import (
	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/constants"
	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/internal"
)

// Select is a single-selection list widget core. It owns the selected and
// highlighted indices, applies key and pointer events to them, keeps the
// highlighted item visible and reports committed values.
//
// A Select is not safe for concurrent use; deliver every event from one
// goroutine. Item.SetDisabled is the only call that may come from elsewhere.
type Select struct {
	id       string
	settings Settings

	list   *ListModel
	keys   *KeyManager
	scroll *ScrollManager

	selectedIndex    int
	highlightedIndex int
	value            any

	focused   bool
	mouseOver bool
	touched   bool
	disabled  bool
	required  bool
	submitted bool
	closed    bool

	onChange  func(value any)
	onTouched func()
}

// New creates a blurred Select over items. Nothing is selected or
// highlighted until a value is written or the user navigates.
func New(items []*Item, settings Settings) *Select {
	settings = settings.withDefaults()

	s := &Select{
		id:               settings.ID,
		settings:         settings,
		selectedIndex:    -1,
		highlightedIndex: -1,
		disabled:         settings.Disabled,
		required:         settings.Required,
	}
	if s.id == "" {
		s.id = internal.NextID(constants.SelectIDPrefix)
	}

	s.list = NewListModel(items, settings.Skip)
	s.keys = NewKeyManager(s, settings)
	s.scroll = NewScrollManager(s, nil)

	return s
}

// ID returns the element id of the select.
func (s *Select) ID() string {
	return s.id
}

// Elements implements InteractiveList.
func (s *Select) Elements() []*Item {
	return s.list.Items()
}

// Len implements ScrollableList.
func (s *Select) Len() int {
	return s.list.Len()
}

// SelectedIndex implements InteractiveList.
func (s *Select) SelectedIndex() int {
	return s.selectedIndex
}

// HighlightedIndex implements InteractiveList and ScrollableList.
func (s *Select) HighlightedIndex() int {
	return s.highlightedIndex
}

// SkipItem implements InteractiveList.
func (s *Select) SkipItem(item *Item) bool {
	return s.list.SkipItem(item)
}

// Value returns the bound value. It may name no item when it was written
// before a matching item existed.
func (s *Select) Value() any {
	return s.value
}

// Selected returns the selected item, or nil.
func (s *Select) Selected() *Item {
	return s.list.At(s.selectedIndex)
}

// Highlighted returns the highlighted item, or nil.
func (s *Select) Highlighted() *Item {
	return s.list.At(s.highlightedIndex)
}

// Focused reports whether the list is open.
func (s *Select) Focused() bool {
	return s.focused
}

// Touched reports whether the select has been blurred at least once.
func (s *Select) Touched() bool {
	return s.touched
}

// Disabled reports whether the whole select is disabled.
func (s *Select) Disabled() bool {
	return s.disabled
}

// Required reports whether a value is required.
func (s *Select) Required() bool {
	return s.required
}

// MouseOver reports whether the pointer is over the widget.
func (s *Select) MouseOver() bool {
	return s.mouseOver
}

// SearchBuffer returns the live typeahead buffer.
func (s *Select) SearchBuffer() string {
	return s.keys.Typeahead().Buffer()
}

// Settings returns the effective settings.
func (s *Select) Settings() Settings {
	return s.settings
}

// OnChange registers the callback receiving every committed value, nil
// when the selection is cleared.
func (s *Select) OnChange(fn func(value any)) {
	if s.closed {
		return
	}
	s.onChange = fn
}

// OnTouched registers the callback fired once per blur.
func (s *Select) OnTouched(fn func()) {
	if s.closed {
		return
	}
	s.onTouched = fn
}

// SetViewport attaches the scrollable container showing the items.
func (s *Select) SetViewport(viewport Viewport) {
	if s.closed {
		return
	}
	s.scroll.SetViewport(viewport)
}

// SetDisabled disables or enables the select. Disabling an open select
// blurs it.
func (s *Select) SetDisabled(disabled bool) {
	if s.closed {
		return
	}
	if disabled && s.focused {
		s.Blur()
	}
	s.disabled = disabled
}

// SetRequired marks the select as required.
func (s *Select) SetRequired(required bool) {
	if s.closed {
		return
	}
	s.required = required
}

// MarkSubmitted records that the enclosing form was submitted, which makes
// an invalid select report its error state even when untouched.
func (s *Select) MarkSubmitted() {
	if s.closed {
		return
	}
	s.submitted = true
}

// Focus opens the list. It does nothing while disabled or already focused.
func (s *Select) Focus() {
	if s.closed || s.disabled || s.focused {
		return
	}

	if s.settings.InitialHighlight == HighlightFromSelection {
		s.highlightIndex(s.selectedIndex)
	}
	s.focused = true

	internal.GetLogger().Debug("Select focused",
		"id", s.id,
		"selectedIndex", s.selectedIndex,
		"highlightedIndex", s.highlightedIndex)
}

// Blur closes the list and fires the touched callback. It does nothing
// unless focused.
func (s *Select) Blur() {
	if s.closed || !s.focused {
		return
	}

	if highlighted := s.list.At(s.highlightedIndex); highlighted != nil {
		highlighted.hovered = false
	}
	s.keys.Reset()
	s.focused = false
	s.touched = true

	internal.GetLogger().Debug("Select blurred", "id", s.id, "selectedIndex", s.selectedIndex)

	if s.onTouched != nil {
		s.onTouched()
	}
}

// HandleKey applies a key event to the open list and reports whether the
// platform's default handling of the key must be suppressed.
func (s *Select) HandleKey(event KeyEvent) bool {
	if s.closed || !s.focused {
		return false
	}

	outcome := s.keys.Handle(event)

	if outcome.HasTarget() {
		s.selectIndex(outcome.Target)
	}
	if outcome.Blur {
		s.Blur()
	}

	return outcome.Intent.PreventDefault
}

// SetItems replaces the items. The bound value is matched against the new
// items; without a match the selection is cleared, and the change callback
// receives nil if a value was bound before.
func (s *Select) SetItems(items []*Item) {
	if s.closed {
		return
	}

	for _, item := range s.list.Items() {
		item.clearState()
	}

	s.list = NewListModel(items, s.settings.Skip)
	s.selectedIndex = -1
	s.highlightedIndex = -1
	s.keys.Reset()

	match := -1
	if s.value != nil {
		match = s.list.IndexOfValue(s.value, s.settings.Equal)
	}
	if match >= 0 {
		s.bind(match)
	}

	highlight := max(s.selectedIndex, 0)
	if s.list.Skip(highlight) {
		highlight = s.list.First()
	}
	s.highlightIndex(highlight)

	internal.GetLogger().Debug("Select items rebuilt",
		"id", s.id,
		"count", s.list.Len(),
		"selectedIndex", s.selectedIndex,
		"highlightedIndex", s.highlightedIndex)

	if match < 0 && s.value != nil {
		s.emit()
	}
}

// WriteValue sets the bound value from outside. nil clears the selection.
// A value without a matching item is kept and resolved on the next SetItems.
func (s *Select) WriteValue(value any) {
	if s.closed {
		return
	}

	if value == nil {
		s.selectIndex(-1)
		return
	}

	match := s.list.IndexOfValue(value, s.settings.Equal)
	if match < 0 {
		s.value = value
		internal.GetLogger().Debug("Select value pending", "id", s.id, "value", value)
		return
	}

	changed := match != s.selectedIndex
	s.bind(match)
	s.value = value

	// A bound value may name a skipped item; the highlight never does.
	highlight := match
	if s.list.Skip(highlight) {
		highlight = s.list.First()
	}
	s.highlightIndex(highlight)
	s.scroll.CorrectScroll()
	if changed {
		s.emit()
	}
}

// ItemClicked commits the clicked item and, when CloseOnClick is set,
// closes the list. Clicks on skipped items are ignored.
func (s *Select) ItemClicked(index int) {
	if s.closed || s.disabled || s.list.Skip(index) {
		return
	}

	s.selectIndex(index)
	if s.settings.CloseOnClick {
		s.Blur()
	}
}

// ItemEntered records the pointer entering an item, highlighting it and
// scrolling it into view if it is clipped by the viewport edge.
func (s *Select) ItemEntered(index int) {
	item := s.list.At(index)
	if s.closed || s.disabled || item == nil {
		return
	}

	item.hovered = true
	if !item.highlighted && !s.list.SkipItem(item) {
		s.highlightIndex(index)
		s.scroll.ScrollClipped()
	}
}

// ItemLeft records the pointer leaving an item.
func (s *Select) ItemLeft(index int) {
	if item := s.list.At(index); item != nil && !s.closed {
		item.hovered = false
	}
}

// PointerEntered records the pointer entering the widget.
func (s *Select) PointerEntered() {
	if s.closed {
		return
	}
	s.mouseOver = true
}

// PointerLeft records the pointer leaving the widget.
func (s *Select) PointerLeft() {
	if s.closed {
		return
	}
	s.mouseOver = false
}

// ScrolledOutside closes the list when the surrounding page scrolls while
// the pointer is elsewhere.
func (s *Select) ScrolledOutside() {
	if s.closed {
		return
	}
	if !s.mouseOver && !s.disabled && s.focused {
		s.Blur()
	}
}

// Rendered aligns the highlighted item with the top of the viewport. Call
// it once after the list was first laid out.
func (s *Select) Rendered() {
	if s.closed {
		return
	}
	s.scroll.AlignTop()
}

// Resized brings the highlighted item back into view after the viewport
// changed size.
func (s *Select) Resized() {
	if s.closed {
		return
	}
	s.scroll.CorrectScroll()
}

// Close releases the callbacks and viewport. Every later call is a no-op.
func (s *Select) Close() {
	if s.closed {
		return
	}
	s.keys.Reset()
	s.scroll.SetViewport(nil)
	s.onChange = nil
	s.onTouched = nil
	s.focused = false
	s.closed = true
}

// selectIndex commits index: highlight, then scroll, then notify. The
// change callback fires only when the selected index changed.
func (s *Select) selectIndex(index int) {
	if index != -1 && !s.list.InRange(index) {
		return
	}

	if index == -1 {
		changed := s.selectedIndex != -1 || s.value != nil
		if selected := s.list.At(s.selectedIndex); selected != nil {
			selected.selected = false
		}
		s.selectedIndex = -1
		s.highlightIndex(0)
		if changed {
			s.emit()
		}
		return
	}

	if s.list.Skip(index) {
		return
	}

	changed := index != s.selectedIndex
	if changed {
		s.bind(index)
	}

	s.highlightIndex(index)
	s.scroll.CorrectScroll()

	if changed {
		s.emit()
	}
}

// bind moves the selected flag to index without notifying.
func (s *Select) bind(index int) {
	if selected := s.list.At(s.selectedIndex); selected != nil {
		selected.selected = false
	}
	s.list.At(index).selected = true
	s.selectedIndex = index
}

// highlightIndex moves the highlight to index. Skipped items and out of
// range indices are never highlighted.
func (s *Select) highlightIndex(index int) {
	if index == s.highlightedIndex || s.list.Skip(index) {
		return
	}

	if highlighted := s.list.At(s.highlightedIndex); highlighted != nil {
		highlighted.highlighted = false
	}
	s.list.At(index).highlighted = true
	s.highlightedIndex = index
}

func (s *Select) emit() {
	if selected := s.list.At(s.selectedIndex); selected != nil {
		s.value = selected.Value
	} else {
		s.value = nil
	}

	internal.GetLogger().Debug("Select value changed",
		"id", s.id,
		"selectedIndex", s.selectedIndex,
		"value", s.value)

	if s.onChange != nil {
		s.onChange(s.value)
	}
}
