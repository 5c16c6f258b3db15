package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect"
)

// Lines used by the label and the status line around the list.
const chromeHeight = 2

// Styles holds the lipgloss styles used to draw the list.
type Styles struct {
	Label       lipgloss.Style
	Item        lipgloss.Style
	Highlighted lipgloss.Style
	Selected    lipgloss.Style
	Disabled    lipgloss.Style
	Status      lipgloss.Style
}

// DefaultStyles returns styles that work on light and dark terminals.
func DefaultStyles() Styles {
	return Styles{
		Label:       lipgloss.NewStyle().Bold(true),
		Item:        lipgloss.NewStyle(),
		Highlighted: lipgloss.NewStyle().Reverse(true),
		Selected:    lipgloss.NewStyle().Bold(true),
		Disabled:    lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Faint(true),
	}
}

// Model shows a focused Select as a scrolling list. It quits once the
// select blurs, either by confirming or dismissing.
type Model struct {
	sel      *simpleselect.Select
	viewport *simpleselect.RowViewport
	messages *simpleselect.Messages
	styles   Styles

	rows    int
	width   int
	aborted bool
}

// New creates a model over sel showing at most visibleRows items. The
// model attaches its own viewport to sel.
func New(sel *simpleselect.Select, messages *simpleselect.Messages, visibleRows int) *Model {
	viewport := simpleselect.NewRowViewport(1, visibleRows, sel.Len)
	sel.SetViewport(viewport)

	return &Model{
		sel:      sel,
		viewport: viewport,
		messages: messages,
		styles:   DefaultStyles(),
		rows:     visibleRows,
	}
}

// SetStyles replaces the styles.
func (m *Model) SetStyles(styles Styles) {
	m.styles = styles
}

// Aborted reports whether the user quit with ctrl+c.
func (m *Model) Aborted() bool {
	return m.aborted
}

// Select returns the driven select.
func (m *Model) Select() *simpleselect.Select {
	return m.sel
}

// Init implements tea.Model. It opens the select and aligns the
// highlighted item with the top of the list.
func (m *Model) Init() tea.Cmd {
	m.sel.Focus()
	m.sel.Rendered()
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Resize(min(m.rows, msg.Height-chromeHeight))
		m.sel.Resized()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.aborted = true
			m.sel.Blur()
			return m, tea.Quit
		}

		event, ok := KeyEventFromTea(msg)
		if !ok {
			return m, nil
		}
		m.sel.HandleKey(event)
		if !m.sel.Focused() {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render(m.messages.Label(m.sel)))
	b.WriteString("\n")

	if m.sel.Len() == 0 {
		b.WriteString(m.styles.Status.Render(m.messages.NoOptions()))
		b.WriteString("\n")
		return b.String()
	}

	for _, line := range m.renderRows() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Status.Render(m.status()))
	b.WriteString("\n")
	return b.String()
}

// status announces the highlighted item while open and the committed item
// once the list was confirmed.
func (m *Model) status() string {
	if selected := m.sel.Selected(); selected != nil && !m.sel.Focused() && !m.aborted {
		return m.messages.Selected(selected.Text)
	}
	return m.messages.Announce(m.sel)
}

func (m *Model) renderRows() []string {
	items := m.sel.Elements()
	start, end := m.viewport.VisibleRange()

	width := 0
	for _, item := range items[start:end] {
		width = max(width, ansi.StringWidth(item.Text))
	}
	width += 2
	if m.width > 0 {
		width = max(min(width, m.width), 3)
	}

	lines := make([]string, 0, end-start)
	for _, item := range items[start:end] {
		marker := "  "
		if item.Selected() {
			marker = "• "
		}

		style := m.styles.Item
		switch {
		case simpleselect.IsEffectivelyDisabled(m.sel.Disabled(), item):
			style = m.styles.Disabled
		case item.Highlighted():
			style = m.styles.Highlighted
		}
		if item.Selected() {
			style = style.Inherit(m.styles.Selected)
		}

		align := lipgloss.Left
		if m.sel.ItemDirection(item) == simpleselect.DirRTL {
			align = lipgloss.Right
		}

		text := ansi.Truncate(item.Text, width-2, "…")
		lines = append(lines, marker+style.Width(width-2).Align(align).Render(text))
	}
	return lines
}
