package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect"
)

func TestKeyEventFromTea(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want simpleselect.KeyEvent
		ok   bool
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, simpleselect.KeyEvent{Key: "ArrowUp"}, true},
		{"alt down", tea.KeyMsg{Type: tea.KeyDown, Alt: true}, simpleselect.KeyEvent{Key: "ArrowDown", Alt: true}, true},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, simpleselect.KeyEvent{Key: "PageDown"}, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, simpleselect.KeyEvent{Key: "Enter"}, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, simpleselect.KeyEvent{Key: "Escape"}, true},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}, simpleselect.KeyEvent{Key: "c"}, true},
		{"pasted runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")}, simpleselect.KeyEvent{}, false},
		{"ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlA}, simpleselect.KeyEvent{Key: "a", Ctrl: true}, true},
		{"function key", tea.KeyMsg{Type: tea.KeyF1}, simpleselect.KeyEvent{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyEventFromTea(tt.msg)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func newTestModel(t *testing.T, rows int) *Model {
	t.Helper()

	items := []*simpleselect.Item{
		simpleselect.NewItem("Alice", "alice"),
		simpleselect.NewDisabledItem("Bob", "bob"),
		simpleselect.NewItem("Clara", "clara"),
		simpleselect.NewItem("David", "david"),
		simpleselect.NewItem("Eve", "eve"),
	}
	sel := simpleselect.New(items, simpleselect.DefaultSettings())
	t.Cleanup(sel.Close)

	messages, err := simpleselect.NewMessages("en")
	require.NoError(t, err)

	m := New(sel, messages, rows)
	require.Nil(t, m.Init())
	return m
}

func requireQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}

func TestModelConfirm(t *testing.T) {
	m := newTestModel(t, 5)
	require.True(t, m.Select().Focused())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Nil(t, cmd)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Nil(t, cmd)
	require.Equal(t, 2, m.Select().HighlightedIndex(), "disabled Bob is skipped")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.Nil(t, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	requireQuit(t, cmd)
	require.Equal(t, "eve", m.Select().Value())
	require.False(t, m.Aborted())
	require.Contains(t, m.View(), "Eve selected")
}

func TestModelAbort(t *testing.T) {
	m := newTestModel(t, 5)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	requireQuit(t, cmd)
	require.True(t, m.Aborted())
	require.Nil(t, m.Select().Value())
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, 5)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	view := m.View()
	require.Contains(t, view, "Select an option")
	for _, name := range []string{"Alice", "Bob", "Clara", "David", "Eve"} {
		require.Contains(t, view, name)
	}
	require.Contains(t, view, "Alice, 1 of 5")
}

func TestModelWindowsRows(t *testing.T) {
	m := newTestModel(t, 5)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 4})

	view := m.View()
	require.Contains(t, view, "Alice")
	require.Contains(t, view, "Bob")
	require.NotContains(t, view, "Clara")

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	view = m.View()
	require.Contains(t, view, "David")
	require.Contains(t, view, "Eve")
	require.NotContains(t, view, "Alice")

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 40})
	require.Equal(t, 7, strings.Count(m.View(), "\n"))
}

func TestModelShrinkKeepsHighlightVisible(t *testing.T) {
	m := newTestModel(t, 5)
	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	require.Contains(t, m.View(), "Alice")

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 4})
	view := m.View()
	require.Contains(t, view, "David")
	require.Contains(t, view, "Eve")
	require.NotContains(t, view, "Alice")
}

func TestModelEmpty(t *testing.T) {
	sel := simpleselect.New(nil, simpleselect.DefaultSettings())
	t.Cleanup(sel.Close)
	messages, err := simpleselect.NewMessages("de")
	require.NoError(t, err)

	m := New(sel, messages, 5)
	m.Init()
	require.Contains(t, m.View(), "Keine Optionen")
}
