package simpleselect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessagesEnglish(t *testing.T) {
	m, err := NewMessages("")
	require.NoError(t, err)

	require.Equal(t, "en", m.Tag().String(), "empty locale means English")
	require.Equal(t, "Select an option", m.DefaultLabel())
	require.Equal(t, "No options", m.NoOptions())
	require.Equal(t, "Clara, 3 of 5", m.Announcement("Clara", 3, 5))
	require.Equal(t, "Clara selected", m.Selected("Clara"))
}

func TestMessagesGerman(t *testing.T) {
	m, err := NewMessages("de")
	require.NoError(t, err)

	require.Equal(t, "de", m.Tag().String())
	require.Equal(t, "Option auswählen", m.DefaultLabel())
	require.Equal(t, "Keine Optionen", m.NoOptions())
	require.Equal(t, "Clara, 3 von 5", m.Announcement("Clara", 3, 5))
	require.Equal(t, "Clara ausgewählt", m.Selected("Clara"))
}

func TestMessagesFallback(t *testing.T) {
	m, err := NewMessages("fr")
	require.NoError(t, err)
	require.Equal(t, "fr", m.Tag().String())
	require.Equal(t, "Select an option", m.DefaultLabel())

	_, err = NewMessages("!!")
	require.True(t, errors.Is(err, ErrUnknownLocale))
}

func TestMessagesForSelect(t *testing.T) {
	m, err := NewMessages("en")
	require.NoError(t, err)

	s := New(people(), DefaultSettings())
	require.Equal(t, "Select an option", m.Label(s))
	require.Equal(t, "", m.Announce(s))

	s.Focus()
	s.HandleKey(KeyEvent{Key: "End"})
	require.Equal(t, "Eve, 5 of 5", m.Announce(s))

	require.Equal(t, "No options", m.Announce(New(nil, DefaultSettings())))
}
