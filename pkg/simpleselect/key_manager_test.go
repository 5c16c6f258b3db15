package simpleselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type stubList struct {
	items       []*Item
	selected    int
	highlighted int
}

func newStubList(items ...*Item) *stubList {
	return &stubList{items: items, selected: -1, highlighted: -1}
}

func (l *stubList) Elements() []*Item        { return l.items }
func (l *stubList) SelectedIndex() int       { return l.selected }
func (l *stubList) HighlightedIndex() int    { return l.highlighted }
func (l *stubList) SkipItem(item *Item) bool { return item.Disabled() }

func names(texts ...string) []*Item {
	items := make([]*Item, 0, len(texts))
	for _, text := range texts {
		items = append(items, NewItem(text, text))
	}
	return items
}

func TestClassify(t *testing.T) {
	km := NewKeyManager(newStubList(), DefaultSettings())

	tests := []struct {
		name    string
		event   KeyEvent
		kind    IntentKind
		char    string
		prevent bool
	}{
		{"backspace", KeyEvent{Key: "Backspace"}, IntentIgnore, "", true},
		{"enter", KeyEvent{Key: "Enter"}, IntentConfirm, "", true},
		{"enter with alt", KeyEvent{Key: "Enter", Alt: true}, IntentConfirm, "", true},
		{"alt arrow up", KeyEvent{Key: "ArrowUp", Alt: true}, IntentBlur, "", true},
		{"arrow up", KeyEvent{Key: "ArrowUp"}, IntentMoveUp, "", true},
		{"alt arrow down", KeyEvent{Key: "ArrowDown", Alt: true}, IntentBlur, "", true},
		{"arrow down", KeyEvent{Key: "ArrowDown"}, IntentMoveDown, "", true},
		{"escape", KeyEvent{Key: "Escape"}, IntentBlur, "", true},
		{"page up", KeyEvent{Key: "PageUp"}, IntentMoveToFirst, "", true},
		{"home", KeyEvent{Key: "Home"}, IntentMoveToFirst, "", true},
		{"page down", KeyEvent{Key: "PageDown"}, IntentMoveToLast, "", true},
		{"end", KeyEvent{Key: "End"}, IntentMoveToLast, "", true},
		{"letter", KeyEvent{Key: "a"}, IntentTypeahead, "a", true},
		{"non ascii letter", KeyEvent{Key: "é"}, IntentTypeahead, "é", true},
		{"digit", KeyEvent{Key: "7"}, IntentTypeahead, "7", true},
		{"ctrl letter", KeyEvent{Key: "a", Ctrl: true}, IntentIgnore, "", false},
		{"alt letter", KeyEvent{Key: "a", Alt: true}, IntentIgnore, "", false},
		{"tab without tab confirm", KeyEvent{Key: "Tab"}, IntentIgnore, "", false},
		{"function key", KeyEvent{Key: "F1"}, IntentIgnore, "", false},
		{"lowercase enter is not enter", KeyEvent{Key: "enter"}, IntentIgnore, "", false},
		{"empty", KeyEvent{}, IntentIgnore, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := km.Classify(tt.event)
			require.Equal(t, tt.kind, intent.Kind, "kind was %s", intent.Kind)
			require.Equal(t, tt.char, intent.Char)
			require.Equal(t, tt.prevent, intent.PreventDefault)
		})
	}
}

func TestClassifyTabConfirms(t *testing.T) {
	settings := DefaultSettings()
	settings.TabConfirms = true
	km := NewKeyManager(newStubList(), settings)

	intent := km.Classify(KeyEvent{Key: "Tab"})
	require.Equal(t, IntentConfirm, intent.Kind)
	require.False(t, intent.PreventDefault)
}

func TestHandleSkipsDisabledItems(t *testing.T) {
	items := names("Alice", "Bob", "Clara")
	items[1].SetDisabled(true)
	list := newStubList(items...)
	km := NewKeyManager(list, DefaultSettings())

	list.highlighted = 0
	outcome := km.Handle(KeyEvent{Key: "ArrowDown"})
	require.Equal(t, 2, outcome.Target)
	require.False(t, outcome.Blur)

	list.highlighted = 2
	outcome = km.Handle(KeyEvent{Key: "ArrowUp"})
	require.Equal(t, 0, outcome.Target)
}

func TestHandleNoEligibleItemIsNoop(t *testing.T) {
	items := names("Alice", "Bob")
	for _, item := range items {
		item.SetDisabled(true)
	}
	list := newStubList(items...)
	km := NewKeyManager(list, DefaultSettings())

	for _, key := range []string{"Home", "End", "ArrowUp", "ArrowDown", "a", "b"} {
		outcome := km.Handle(KeyEvent{Key: key})
		require.False(t, outcome.HasTarget(), "key %q", key)
	}
}

func TestHandleEdges(t *testing.T) {
	list := newStubList(names("Alice", "Bob", "Clara")...)
	km := NewKeyManager(list, DefaultSettings())

	list.highlighted = 2
	require.False(t, km.Handle(KeyEvent{Key: "ArrowDown"}).HasTarget())

	list.highlighted = 0
	require.False(t, km.Handle(KeyEvent{Key: "ArrowUp"}).HasTarget())

	require.Equal(t, 0, km.Handle(KeyEvent{Key: "Home"}).Target)
	require.Equal(t, 2, km.Handle(KeyEvent{Key: "End"}).Target)
	require.Equal(t, 0, km.Handle(KeyEvent{Key: "PageUp"}).Target)
	require.Equal(t, 2, km.Handle(KeyEvent{Key: "PageDown"}).Target)
}

func TestHandleConfirm(t *testing.T) {
	list := newStubList(names("Alice", "Bob")...)
	km := NewKeyManager(list, DefaultSettings())

	t.Run("without highlight", func(t *testing.T) {
		outcome := km.Handle(KeyEvent{Key: "Enter"})
		require.False(t, outcome.HasTarget())
		require.True(t, outcome.Blur)
	})

	t.Run("with highlight", func(t *testing.T) {
		list.highlighted = 1
		outcome := km.Handle(KeyEvent{Key: "Enter"})
		require.Equal(t, 1, outcome.Target)
		require.True(t, outcome.Blur)
	})

	t.Run("escape only blurs", func(t *testing.T) {
		outcome := km.Handle(KeyEvent{Key: "Escape"})
		require.False(t, outcome.HasTarget())
		require.True(t, outcome.Blur)
	})
}

func TestInitialHighlightSource(t *testing.T) {
	t.Run("selection", func(t *testing.T) {
		list := newStubList(names("Alice", "Bob", "Clara", "David")...)
		km := NewKeyManager(list, DefaultSettings())

		require.Equal(t, 0, km.Handle(KeyEvent{Key: "ArrowDown"}).Target)
		require.False(t, km.Handle(KeyEvent{Key: "ArrowUp"}).HasTarget())

		list.selected = 2
		require.Equal(t, 3, km.Handle(KeyEvent{Key: "ArrowDown"}).Target)
		require.Equal(t, 1, km.Handle(KeyEvent{Key: "ArrowUp"}).Target)
	})

	t.Run("start", func(t *testing.T) {
		list := newStubList(names("Alice", "Bob", "Clara", "David")...)
		settings := DefaultSettings()
		settings.InitialHighlight = HighlightFromStart
		km := NewKeyManager(list, settings)

		list.selected = 2
		require.Equal(t, 0, km.Handle(KeyEvent{Key: "ArrowDown"}).Target)
		require.Equal(t, 0, km.Handle(KeyEvent{Key: "ArrowUp"}).Target)

		list.highlighted = 1
		require.Equal(t, 2, km.Handle(KeyEvent{Key: "ArrowDown"}).Target)
	})
}
