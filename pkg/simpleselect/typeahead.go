package simpleselect

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/constants"
)

// Typeahead accumulates typed characters into a prefix search over item
// texts. The buffer expires a fixed time after the last keypress; expiry is
// checked lazily on the next keypress so no timer is involved.
type Typeahead struct {
	buffer   string
	deadline time.Time
	timeout  time.Duration
	now      func() time.Time
	upper    cases.Caser
}

// NewTypeahead creates a typeahead with the given expiry. A non-positive
// timeout means the default, a nil clock means time.Now.
func NewTypeahead(timeout time.Duration, now func() time.Time) *Typeahead {
	if timeout <= 0 {
		timeout = constants.DefaultTypeaheadTimeout
	}
	if now == nil {
		now = time.Now
	}
	return &Typeahead{
		timeout: timeout,
		now:     now,
		upper:   cases.Upper(language.Und),
	}
}

// Buffer returns the live search buffer, empty once it has expired.
func (t *Typeahead) Buffer() string {
	if t.expired() {
		return ""
	}
	return t.buffer
}

// Reset clears the buffer and its deadline.
func (t *Typeahead) Reset() {
	t.buffer = ""
	t.deadline = time.Time{}
}

// Search feeds key into the buffer and returns the index of the next
// eligible item whose text starts with the buffer, or -1.
//
// Typing the same character repeatedly cycles through items starting with
// it. Typing a different character extends the prefix.
func (t *Typeahead) Search(key string, list InteractiveList) int {
	elements := list.Elements()
	if len(elements) == 0 {
		return -1
	}

	if t.expired() {
		t.Reset()
	}

	key = t.upper.String(key)
	searchIndex := max(list.HighlightedIndex(), 0)

	if t.buffer != "" && t.buffer != key {
		t.buffer += key
	} else {
		t.buffer = key
		searchIndex++
	}
	t.deadline = t.now().Add(t.timeout)

	skip := list.SkipItem
	for i := searchIndex; i < len(elements); i++ {
		if t.matches(elements[i], skip) {
			return i
		}
	}
	for i := 0; i < searchIndex && i < len(elements); i++ {
		if t.matches(elements[i], skip) {
			return i
		}
	}

	t.buffer = ""
	return -1
}

func (t *Typeahead) matches(item *Item, skip func(*Item) bool) bool {
	if skip(item) {
		return false
	}
	return strings.HasPrefix(t.upper.String(item.Text), t.buffer)
}

func (t *Typeahead) expired() bool {
	return !t.deadline.IsZero() && !t.now().Before(t.deadline)
}
