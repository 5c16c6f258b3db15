package simpleselect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// press runs a search and moves the stub highlight like a select would.
func press(ta *Typeahead, list *stubList, key string) int {
	index := ta.Search(key, list)
	if index >= 0 {
		list.highlighted = index
	}
	return index
}

func TestTypeaheadCyclesThroughSameLetter(t *testing.T) {
	clock := newFakeClock()
	ta := NewTypeahead(500*time.Millisecond, clock.now)
	list := newStubList(names("Apple", "Avocado", "Banana", "Apricot")...)

	var visited []int
	for i := 0; i < 4; i++ {
		visited = append(visited, press(ta, list, "a"))
		clock.advance(100 * time.Millisecond)
	}

	require.Equal(t, []int{1, 3, 0, 1}, visited)
	require.Equal(t, "A", ta.Buffer())
}

func TestTypeaheadSingleMatchStays(t *testing.T) {
	clock := newFakeClock()
	ta := NewTypeahead(0, clock.now)
	list := newStubList(names("Alice", "Bob", "Clara", "David", "Eve")...)
	list.highlighted = 4

	require.Equal(t, 2, press(ta, list, "c"))
	clock.advance(200 * time.Millisecond)
	require.Equal(t, 2, press(ta, list, "c"))
	require.Equal(t, "C", ta.Buffer())
}

func TestTypeaheadNarrowsWithinTimeout(t *testing.T) {
	clock := newFakeClock()
	ta := NewTypeahead(500*time.Millisecond, clock.now)
	list := newStubList(names("Bob", "Barbara", "Bill")...)

	require.Equal(t, 1, press(ta, list, "b"))
	clock.advance(499 * time.Millisecond)
	require.Equal(t, 2, press(ta, list, "i"))
	require.Equal(t, "BI", ta.Buffer())
}

func TestTypeaheadExpires(t *testing.T) {
	items := names("Bob", "Barbara", "Ivy")

	t.Run("after timeout starts fresh", func(t *testing.T) {
		clock := newFakeClock()
		ta := NewTypeahead(500*time.Millisecond, clock.now)
		list := newStubList(items...)

		require.Equal(t, 1, press(ta, list, "b"))
		clock.advance(500 * time.Millisecond)
		require.Equal(t, "", ta.Buffer())
		require.Equal(t, 2, press(ta, list, "i"))
		require.Equal(t, "I", ta.Buffer())
	})

	t.Run("before timeout appends", func(t *testing.T) {
		clock := newFakeClock()
		ta := NewTypeahead(500*time.Millisecond, clock.now)
		list := newStubList(items...)

		require.Equal(t, 1, press(ta, list, "b"))
		clock.advance(499 * time.Millisecond)
		require.Equal(t, -1, press(ta, list, "i"))
		require.Equal(t, "", ta.Buffer())
		require.Equal(t, 1, list.highlighted)
	})
}

func TestTypeaheadSkipsDisabled(t *testing.T) {
	ta := NewTypeahead(0, newFakeClock().now)
	items := names("Alice", "Anna", "Arthur")
	items[1].SetDisabled(true)
	list := newStubList(items...)
	list.highlighted = 0

	require.Equal(t, 2, press(ta, list, "a"))
}

func TestTypeaheadIgnoresCase(t *testing.T) {
	ta := NewTypeahead(0, newFakeClock().now)
	list := newStubList(names("apple", "Éclair", "zebra")...)

	require.Equal(t, 1, ta.Search("é", list))
	ta.Reset()
	require.Equal(t, 2, ta.Search("Z", list))
}

func TestTypeaheadMissAndEmptyList(t *testing.T) {
	clock := newFakeClock()
	ta := NewTypeahead(0, clock.now)

	require.Equal(t, 1, ta.Search("b", newStubList(names("Bob", "Barbara")...)))
	require.Equal(t, "B", ta.Buffer())

	require.Equal(t, -1, ta.Search("x", newStubList()))
	require.Equal(t, "B", ta.Buffer(), "empty list leaves the buffer alone")

	require.Equal(t, -1, ta.Search("z", newStubList(names("Bob")...)))
	require.Equal(t, "", ta.Buffer())
}
