package simpleselect

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	defaultLabelMessage = &i18n.Message{
		ID:          "SelectDefaultLabel",
		Description: "Label of a select without aria label or placeholder",
		Other:       "Select an option",
	}
	noOptionsMessage = &i18n.Message{
		ID:          "SelectNoOptions",
		Description: "Shown in place of the list when there are no items",
		Other:       "No options",
	}
	announcementMessage = &i18n.Message{
		ID:          "SelectAnnouncement",
		Description: "Spoken when an item is highlighted",
		Other:       "{{.Text}}, {{.Position}} of {{.Count}}",
	}
	selectedMessage = &i18n.Message{
		ID:          "SelectSelected",
		Description: "Spoken when an item is committed",
		Other:       "{{.Text}} selected",
	}
)

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			bundleErr = err
			return
		}
		for _, entry := range entries {
			name := path.Join("locales", entry.Name())
			data, err := localeFS.ReadFile(name)
			if err != nil {
				bundleErr = err
				return
			}
			if _, err := b.ParseMessageFileBytes(data, name); err != nil {
				bundleErr = fmt.Errorf("parse %s: %w", name, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Messages renders the user facing texts of a select in one locale.
// English is built in; other catalogs are embedded.
type Messages struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewMessages creates messages for locale, a BCP 47 tag such as "de" or
// "en-US". Missing translations fall back to English.
func NewMessages(locale string) (*Messages, error) {
	tag := language.English
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrUnknownLocale, locale, err)
		}
		tag = parsed
	}

	b, err := loadBundle()
	if err != nil {
		return nil, err
	}

	return &Messages{
		localizer: i18n.NewLocalizer(b, tag.String(), language.English.String()),
		tag:       tag,
	}, nil
}

// Tag returns the requested locale.
func (m *Messages) Tag() language.Tag {
	return m.tag
}

// DefaultLabel is the label used when a select has no aria label or placeholder.
func (m *Messages) DefaultLabel() string {
	return m.localize(defaultLabelMessage, nil)
}

// NoOptions is the text shown for an empty list.
func (m *Messages) NoOptions() string {
	return m.localize(noOptionsMessage, nil)
}

// Announcement describes a highlighted item and its 1-based position.
func (m *Messages) Announcement(text string, position, count int) string {
	return m.localize(announcementMessage, map[string]any{
		"Text":     text,
		"Position": position,
		"Count":    count,
	})
}

// Selected describes a committed item.
func (m *Messages) Selected(text string) string {
	return m.localize(selectedMessage, map[string]any{"Text": text})
}

// Label returns the accessible label of s, falling back to DefaultLabel.
func (m *Messages) Label(s *Select) string {
	if label := s.Label(); label != "" {
		return label
	}
	return m.DefaultLabel()
}

// Announce describes the highlighted item of s, or the empty list text.
func (m *Messages) Announce(s *Select) string {
	highlighted := s.Highlighted()
	if highlighted == nil {
		if s.Len() == 0 {
			return m.NoOptions()
		}
		return ""
	}
	return m.Announcement(highlighted.Text, s.HighlightedIndex()+1, s.Len())
}

func (m *Messages) localize(message *i18n.Message, data map[string]any) string {
	text, err := m.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: message,
		TemplateData:   data,
	})
	if err != nil {
		// Missing translations still render the default message.
		if text != "" {
			return text
		}
		return message.Other
	}
	return text
}
