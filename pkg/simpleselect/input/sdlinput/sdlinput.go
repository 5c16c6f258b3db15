// Package sdlinput converts SDL2 keyboard events into simpleselect key events.
package sdlinput

import (
	"unicode/utf8"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect"
	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/constants"
)

var namedKeys = map[sdl.Keycode]string{
	sdl.K_BACKSPACE: constants.KeyBackspace,
	sdl.K_RETURN:    constants.KeyEnter,
	sdl.K_KP_ENTER:  constants.KeyEnter,
	sdl.K_UP:        constants.KeyArrowUp,
	sdl.K_DOWN:      constants.KeyArrowDown,
	sdl.K_ESCAPE:    constants.KeyEscape,
	sdl.K_PAGEUP:    constants.KeyPageUp,
	sdl.K_PAGEDOWN:  constants.KeyPageDown,
	sdl.K_HOME:      constants.KeyHome,
	sdl.K_END:       constants.KeyEnd,
	sdl.K_TAB:       constants.KeyTab,
}

// FromEvent converts an SDL event into a key event. The second return is
// false for events that carry no key press.
//
// With textInput set, characters are taken from SDL_TEXTINPUT events and
// printable key downs are dropped so each character arrives once. Without
// it, printable ASCII key downs are used directly.
func FromEvent(event sdl.Event, textInput bool) (simpleselect.KeyEvent, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		return fromKeyboardEvent(e, textInput)
	case *sdl.TextInputEvent:
		if !textInput {
			return simpleselect.KeyEvent{}, false
		}
		return fromTextInputEvent(e)
	}
	return simpleselect.KeyEvent{}, false
}

func fromKeyboardEvent(e *sdl.KeyboardEvent, textInput bool) (simpleselect.KeyEvent, bool) {
	if e.Type != sdl.KEYDOWN || e.State != sdl.PRESSED {
		return simpleselect.KeyEvent{}, false
	}

	mod := e.Keysym.Mod
	event := simpleselect.KeyEvent{
		Alt:  mod&sdl.KMOD_ALT != 0,
		Ctrl: mod&sdl.KMOD_CTRL != 0,
	}

	if name, ok := namedKeys[e.Keysym.Sym]; ok {
		event.Key = name
		return event, true
	}

	if textInput {
		return simpleselect.KeyEvent{}, false
	}

	sym := e.Keysym.Sym
	if sym < 32 || sym > 126 {
		return simpleselect.KeyEvent{}, false
	}
	event.Key = string(rune(sym))
	return event, true
}

func fromTextInputEvent(e *sdl.TextInputEvent) (simpleselect.KeyEvent, bool) {
	text := e.GetText()
	if utf8.RuneCountInString(text) != 1 {
		return simpleselect.KeyEvent{}, false
	}
	return simpleselect.KeyEvent{Key: text}, true
}
