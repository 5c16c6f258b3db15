package simpleselect

import "reflect"

// SkipPredicate reports whether an item must be skipped by keyboard
// navigation and typeahead.
type SkipPredicate func(item *Item) bool

// SkipDisabled is the default skip predicate.
func SkipDisabled(item *Item) bool {
	return item.Disabled()
}

// InteractiveList is what the key manager needs from its owner.
type InteractiveList interface {
	Elements() []*Item
	SelectedIndex() int
	HighlightedIndex() int
	SkipItem(item *Item) bool
}

// ScrollableList is what the scroll manager needs from its owner.
type ScrollableList interface {
	Len() int
	HighlightedIndex() int
}

// ValueEqual compares two opaque item values.
type ValueEqual func(a, b any) bool

// DefaultValueEqual compares with == when both values are of the same type
// and comparable at runtime, and falls back to reflect.DeepEqual otherwise.
// Slices, maps and structs holding them in interface fields never panic.
func DefaultValueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// ListModel is an ordered snapshot of items. Insertion order is traversal
// order. Indices are only valid for the snapshot they came from.
type ListModel struct {
	items []*Item
	skip  SkipPredicate
}

// NewListModel creates a list over items. A nil skip predicate means
// SkipDisabled. Nil entries are dropped.
func NewListModel(items []*Item, skip SkipPredicate) *ListModel {
	if skip == nil {
		skip = SkipDisabled
	}

	kept := make([]*Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		item.ensureID()
		kept = append(kept, item)
	}

	return &ListModel{items: kept, skip: skip}
}

// Len returns the number of items.
func (l *ListModel) Len() int {
	return len(l.items)
}

// Items returns the underlying items. Callers must not reorder the slice.
func (l *ListModel) Items() []*Item {
	return l.items
}

// At returns the item at index, or nil when out of range.
func (l *ListModel) At(index int) *Item {
	if index < 0 || index >= len(l.items) {
		return nil
	}
	return l.items[index]
}

// InRange reports whether index addresses an item.
func (l *ListModel) InRange(index int) bool {
	return index >= 0 && index < len(l.items)
}

// Skip reports whether the item at index is skipped. Out of range indices
// are always skipped.
func (l *ListModel) Skip(index int) bool {
	item := l.At(index)
	return item == nil || l.skip(item)
}

// SkipItem applies the skip predicate.
func (l *ListModel) SkipItem(item *Item) bool {
	return l.skip(item)
}

// First returns the first eligible index, or -1.
func (l *ListModel) First() int {
	return l.After(-1)
}

// Last returns the last eligible index, or -1.
func (l *ListModel) Last() int {
	return l.Before(len(l.items))
}

// After returns the first eligible index strictly greater than from, or -1.
func (l *ListModel) After(from int) int {
	return firstEligibleAfter(l.items, l.skip, from)
}

// Before returns the first eligible index strictly less than from, or -1.
func (l *ListModel) Before(from int) int {
	return firstEligibleBefore(l.items, l.skip, from)
}

// IndexOfValue returns the index of the first item whose value equals v, or -1.
func (l *ListModel) IndexOfValue(v any, equal ValueEqual) int {
	if equal == nil {
		equal = DefaultValueEqual
	}
	for i, item := range l.items {
		if equal(item.Value, v) {
			return i
		}
	}
	return -1
}

func firstEligibleAfter(items []*Item, skip SkipPredicate, from int) int {
	if from < -1 {
		from = -1
	}
	for i := from + 1; i < len(items); i++ {
		if !skip(items[i]) {
			return i
		}
	}
	return -1
}

func firstEligibleBefore(items []*Item, skip SkipPredicate, from int) int {
	if from > len(items) {
		from = len(items)
	}
	for i := from - 1; i >= 0; i-- {
		if !skip(items[i]) {
			return i
		}
	}
	return -1
}
