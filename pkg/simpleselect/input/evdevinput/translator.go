//go:build linux

// Package evdevinput reads Linux input devices and converts their events
// into simpleselect key events. Keyboards auto-repeat on their own; game pad
// d-pads do not, so held d-pad buttons are repeated here.
package evdevinput

import (
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect"
	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/constants"
	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/internal"
)

// Key event values reported by the kernel.
const (
	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

var namedKeys = map[evdev.EvCode]string{
	evdev.KEY_BACKSPACE: constants.KeyBackspace,
	evdev.KEY_ENTER:     constants.KeyEnter,
	evdev.KEY_KPENTER:   constants.KeyEnter,
	evdev.KEY_UP:        constants.KeyArrowUp,
	evdev.KEY_DOWN:      constants.KeyArrowDown,
	evdev.KEY_ESC:       constants.KeyEscape,
	evdev.KEY_PAGEUP:    constants.KeyPageUp,
	evdev.KEY_PAGEDOWN:  constants.KeyPageDown,
	evdev.KEY_HOME:      constants.KeyHome,
	evdev.KEY_END:       constants.KeyEnd,
	evdev.KEY_TAB:       constants.KeyTab,
	evdev.KEY_SPACE:     constants.KeySpace,
}

// The letter and digit codes are not contiguous, so they are listed.
var charKeys = map[evdev.EvCode]string{
	evdev.KEY_A: "a", evdev.KEY_B: "b", evdev.KEY_C: "c", evdev.KEY_D: "d",
	evdev.KEY_E: "e", evdev.KEY_F: "f", evdev.KEY_G: "g", evdev.KEY_H: "h",
	evdev.KEY_I: "i", evdev.KEY_J: "j", evdev.KEY_K: "k", evdev.KEY_L: "l",
	evdev.KEY_M: "m", evdev.KEY_N: "n", evdev.KEY_O: "o", evdev.KEY_P: "p",
	evdev.KEY_Q: "q", evdev.KEY_R: "r", evdev.KEY_S: "s", evdev.KEY_T: "t",
	evdev.KEY_U: "u", evdev.KEY_V: "v", evdev.KEY_W: "w", evdev.KEY_X: "x",
	evdev.KEY_Y: "y", evdev.KEY_Z: "z",
	evdev.KEY_1: "1", evdev.KEY_2: "2", evdev.KEY_3: "3", evdev.KEY_4: "4",
	evdev.KEY_5: "5", evdev.KEY_6: "6", evdev.KEY_7: "7", evdev.KEY_8: "8",
	evdev.KEY_9: "9", evdev.KEY_0: "0",
}

// Game pad buttons. D-pad directions repeat while held.
var padButtons = map[evdev.EvCode]string{
	evdev.BTN_DPAD_UP:   constants.KeyArrowUp,
	evdev.BTN_DPAD_DOWN: constants.KeyArrowDown,
	evdev.BTN_SOUTH:     constants.KeyEnter,
	evdev.BTN_EAST:      constants.KeyEscape,
	evdev.BTN_TL:        constants.KeyPageUp,
	evdev.BTN_TR:        constants.KeyPageDown,
}

var repeatingButtons = map[evdev.EvCode]bool{
	evdev.BTN_DPAD_UP:   true,
	evdev.BTN_DPAD_DOWN: true,
}

// Translator turns raw input events into key events. It tracks modifier
// state across events and is not safe for concurrent use.
type Translator struct {
	leftAlt, rightAlt   bool
	leftCtrl, rightCtrl bool

	repeat *internal.KeyRepeat
}

// NewTranslator creates a translator with the default d-pad repeat timing.
func NewTranslator() *Translator {
	return &Translator{repeat: internal.NewKeyRepeat()}
}

// NewTranslatorWithTiming creates a translator with custom d-pad repeat
// timing and clock.
func NewTranslatorWithTiming(delay, interval time.Duration, now func() time.Time) *Translator {
	return &Translator{repeat: internal.NewKeyRepeatWithTiming(delay, interval, now)}
}

// Translate converts one input event. The second return is false when the
// event does not produce a key press.
func (t *Translator) Translate(event evdev.InputEvent) (simpleselect.KeyEvent, bool) {
	if event.Type != evdev.EV_KEY {
		return simpleselect.KeyEvent{}, false
	}

	if t.trackModifier(event) {
		return simpleselect.KeyEvent{}, false
	}

	if key, ok := padButtons[event.Code]; ok {
		return t.translateButton(event, key)
	}

	if event.Value != valuePress && event.Value != valueRepeat {
		return simpleselect.KeyEvent{}, false
	}

	key, ok := namedKeys[event.Code]
	if !ok {
		key, ok = charKeys[event.Code]
	}
	if !ok {
		return simpleselect.KeyEvent{}, false
	}

	return simpleselect.KeyEvent{
		Key:  key,
		Alt:  t.leftAlt || t.rightAlt,
		Ctrl: t.leftCtrl || t.rightCtrl,
	}, true
}

// Tick reports a repeated key when a d-pad button has been held long
// enough. Call it regularly.
func (t *Translator) Tick() (simpleselect.KeyEvent, bool) {
	key := t.repeat.Update()
	if key == "" {
		return simpleselect.KeyEvent{}, false
	}
	return simpleselect.KeyEvent{Key: key}, true
}

// Reset releases every held button and modifier.
func (t *Translator) Reset() {
	t.leftAlt, t.rightAlt = false, false
	t.leftCtrl, t.rightCtrl = false, false
	t.repeat.Reset()
}

func (t *Translator) translateButton(event evdev.InputEvent, key string) (simpleselect.KeyEvent, bool) {
	switch event.Value {
	case valuePress:
		if repeatingButtons[event.Code] {
			t.repeat.SetHeld(key, true)
		}
		return simpleselect.KeyEvent{Key: key}, true
	case valueRelease:
		if repeatingButtons[event.Code] {
			t.repeat.SetHeld(key, false)
		}
	}
	return simpleselect.KeyEvent{}, false
}

func (t *Translator) trackModifier(event evdev.InputEvent) bool {
	down := event.Value != valueRelease

	switch event.Code {
	case evdev.KEY_LEFTALT:
		t.leftAlt = down
	case evdev.KEY_RIGHTALT:
		t.rightAlt = down
	case evdev.KEY_LEFTCTRL:
		t.leftCtrl = down
	case evdev.KEY_RIGHTCTRL:
		t.rightCtrl = down
	default:
		return false
	}
	return true
}
