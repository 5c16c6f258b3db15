package simpleselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEffectiveTabIndex(t *testing.T) {
	require.Equal(t, 3, EffectiveTabIndex(false, 3))
	require.Equal(t, -1, EffectiveTabIndex(true, 3))
}

func TestIsEffectivelyDisabled(t *testing.T) {
	item := NewItem("Alice", 1)
	require.False(t, IsEffectivelyDisabled(false, item))
	require.True(t, IsEffectivelyDisabled(true, item))

	item.SetDisabled(true)
	require.True(t, IsEffectivelyDisabled(false, item))
	require.False(t, IsEffectivelyDisabled(false, nil))
}

func TestErrorState(t *testing.T) {
	require.False(t, ErrorState(false, true, true))
	require.False(t, ErrorState(true, false, false))
	require.True(t, ErrorState(true, true, false))
	require.True(t, ErrorState(true, false, true))
}

func TestSelectAttributes(t *testing.T) {
	settings := DefaultSettings()
	settings.ID = "pets"
	settings.TabIndex = 3
	settings.Placeholder = "Pick a pet"
	settings.Required = true
	s := New(people(), settings)

	attrs := s.Attributes()
	require.Equal(t, "pets", attrs.ID)
	require.Equal(t, "listbox", attrs.Role)
	require.Equal(t, 3, attrs.TabIndex)
	require.Equal(t, "Pick a pet", attrs.Label)
	require.True(t, attrs.Required)
	require.False(t, attrs.Invalid, "untouched controls show no error")
	require.Empty(t, attrs.ActiveDescendant)

	s.Focus()
	s.Blur()
	require.True(t, s.Attributes().Invalid)

	s.WriteValue("bob")
	attrs = s.Attributes()
	require.False(t, attrs.Invalid)
	require.Equal(t, s.Elements()[1].ID, attrs.ActiveDescendant)

	s.SetDisabled(true)
	attrs = s.Attributes()
	require.Equal(t, -1, attrs.TabIndex)
	require.True(t, attrs.Disabled)
}

func TestSelectLabelPrefersAriaLabel(t *testing.T) {
	settings := DefaultSettings()
	settings.Placeholder = "Pick a pet"
	settings.AriaLabel = "Pets"
	require.Equal(t, "Pets", New(nil, settings).Label())
}

func TestSelectSubmittedShowsError(t *testing.T) {
	settings := DefaultSettings()
	settings.Required = true
	s := New(people(), settings)

	require.False(t, s.ErrorState())
	s.MarkSubmitted()
	require.True(t, s.ErrorState())
}

func TestSelectDirection(t *testing.T) {
	settings := DefaultSettings()
	settings.Dir = DirAuto
	s := New(people(), settings)
	require.Equal(t, DirLTR, s.Direction())

	s.SetItems([]*Item{NewItem("Alice", 1), NewItem("مرحبا", 2)})
	require.Equal(t, DirRTL, s.Direction())
	require.Equal(t, DirLTR, s.ItemDirection(s.Elements()[0]))
	require.Equal(t, DirRTL, s.ItemDirection(s.Elements()[1]))

	require.Equal(t, DirDefault, New(people(), DefaultSettings()).Direction())
}
