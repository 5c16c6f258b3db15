package simpleselect

import (
	"unicode"
	"unicode/utf8"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/constants"
)

// KeyManager turns key events into navigation outcomes for an
// InteractiveList. It never mutates the list; its owner applies the outcome.
type KeyManager struct {
	list             InteractiveList
	search           *Typeahead
	initialHighlight HighlightSource
	tabConfirms      bool
}

// NewKeyManager creates a key manager over list using the navigation and
// typeahead parts of settings.
func NewKeyManager(list InteractiveList, settings Settings) *KeyManager {
	return &KeyManager{
		list:             list,
		search:           NewTypeahead(settings.TypeaheadTimeout, settings.Clock),
		initialHighlight: settings.InitialHighlight,
		tabConfirms:      settings.TabConfirms,
	}
}

// Typeahead exposes the key manager's search buffer.
func (km *KeyManager) Typeahead() *Typeahead {
	return km.search
}

// Classify maps a key event to an intent. First match wins.
func (km *KeyManager) Classify(event KeyEvent) Intent {
	switch event.Key {
	case "":
		return Intent{Kind: IntentIgnore}
	case constants.KeyBackspace:
		return Intent{Kind: IntentIgnore, PreventDefault: true}
	case constants.KeyEnter:
		return Intent{Kind: IntentConfirm, PreventDefault: true}
	case constants.KeyArrowUp:
		if event.Alt {
			return Intent{Kind: IntentBlur, PreventDefault: true}
		}
		return Intent{Kind: IntentMoveUp, PreventDefault: true}
	case constants.KeyArrowDown:
		if event.Alt {
			return Intent{Kind: IntentBlur, PreventDefault: true}
		}
		return Intent{Kind: IntentMoveDown, PreventDefault: true}
	case constants.KeyEscape:
		return Intent{Kind: IntentBlur, PreventDefault: true}
	case constants.KeyPageUp, constants.KeyHome:
		return Intent{Kind: IntentMoveToFirst, PreventDefault: true}
	case constants.KeyPageDown, constants.KeyEnd:
		return Intent{Kind: IntentMoveToLast, PreventDefault: true}
	case constants.KeyTab:
		if km.tabConfirms {
			// Focus must still move on, so the default is kept.
			return Intent{Kind: IntentConfirm}
		}
	}

	if isPrintableChar(event.Key) && !event.Alt && !event.Ctrl {
		return Intent{Kind: IntentTypeahead, Char: event.Key, PreventDefault: true}
	}

	// The typeahead path only swallows characters it searches for.
	return Intent{Kind: IntentIgnore}
}

// Handle classifies event and resolves it against the current list state.
func (km *KeyManager) Handle(event KeyEvent) Outcome {
	intent := km.Classify(event)
	outcome := Outcome{Intent: intent, Target: -1}

	switch intent.Kind {
	case IntentConfirm:
		if highlighted := km.list.HighlightedIndex(); highlighted >= 0 && highlighted < len(km.list.Elements()) {
			outcome.Target = highlighted
		}
		outcome.Blur = true
	case IntentBlur:
		outcome.Blur = true
	case IntentMoveToFirst:
		outcome.Target = firstEligibleAfter(km.list.Elements(), km.list.SkipItem, -1)
	case IntentMoveToLast:
		elements := km.list.Elements()
		outcome.Target = firstEligibleBefore(elements, km.list.SkipItem, len(elements))
	case IntentMoveUp:
		outcome.Target = km.moveUp()
	case IntentMoveDown:
		outcome.Target = km.moveDown()
	case IntentTypeahead:
		outcome.Target = km.search.Search(intent.Char, km.list)
	}

	return outcome
}

func (km *KeyManager) moveUp() int {
	elements := km.list.Elements()
	origin, ok := km.origin()
	if !ok {
		// No highlight yet and the start policy is active: begin at the top.
		return firstEligibleAfter(elements, km.list.SkipItem, -1)
	}
	return firstEligibleBefore(elements, km.list.SkipItem, origin)
}

func (km *KeyManager) moveDown() int {
	elements := km.list.Elements()
	origin, ok := km.origin()
	if !ok {
		origin = -1
	}
	return firstEligibleAfter(elements, km.list.SkipItem, origin)
}

// origin returns the index arrow navigation starts from. The second return
// is false when there is no highlight and the start policy applies.
func (km *KeyManager) origin() (int, bool) {
	if highlighted := km.list.HighlightedIndex(); highlighted >= 0 {
		return highlighted, true
	}
	if km.initialHighlight == HighlightFromStart {
		return -1, false
	}
	return km.list.SelectedIndex(), true
}

// Reset drops any pending typeahead state.
func (km *KeyManager) Reset() {
	km.search.Reset()
}

func isPrintableChar(key string) bool {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || size != len(key) {
		return false
	}
	return unicode.IsPrint(r)
}
