// Package tui is a bubbletea front end for simpleselect.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect"
	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/constants"
)

var namedKeys = map[tea.KeyType]string{
	tea.KeyUp:        constants.KeyArrowUp,
	tea.KeyDown:      constants.KeyArrowDown,
	tea.KeyHome:      constants.KeyHome,
	tea.KeyEnd:       constants.KeyEnd,
	tea.KeyPgUp:      constants.KeyPageUp,
	tea.KeyPgDown:    constants.KeyPageDown,
	tea.KeyEnter:     constants.KeyEnter,
	tea.KeyEsc:       constants.KeyEscape,
	tea.KeyBackspace: constants.KeyBackspace,
	tea.KeyTab:       constants.KeyTab,
	tea.KeySpace:     constants.KeySpace,
}

// KeyEventFromTea converts a bubbletea key message. The second return is
// false for keys without a normalized name.
func KeyEventFromTea(msg tea.KeyMsg) (simpleselect.KeyEvent, bool) {
	event := simpleselect.KeyEvent{Alt: msg.Alt}

	if name, ok := namedKeys[msg.Type]; ok {
		event.Key = name
		return event, true
	}

	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return simpleselect.KeyEvent{}, false
		}
		event.Key = string(msg.Runes[0])
		return event, true
	}

	// Control combinations arrive as their own key types.
	if name, ok := strings.CutPrefix(msg.String(), "ctrl+"); ok {
		event.Key = name
		event.Ctrl = true
		return event, true
	}

	return simpleselect.KeyEvent{}, false
}
