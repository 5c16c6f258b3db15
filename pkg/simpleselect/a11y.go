package simpleselect

// Role is the accessibility role of the select element.
const Role = "listbox"

// IsEffectivelyDisabled reports whether item cannot be used, either because
// it is disabled itself or because its select is.
func IsEffectivelyDisabled(selectDisabled bool, item *Item) bool {
	return selectDisabled || (item != nil && item.Disabled())
}

// EffectiveTabIndex returns the tab index to expose: -1 while disabled.
func EffectiveTabIndex(disabled bool, tabIndex int) int {
	if disabled {
		return -1
	}
	return tabIndex
}

// ErrorState reports whether an invalid control should display as erroneous.
// Errors are shown once the user has left the control or the form was
// submitted.
func ErrorState(invalid, touched, submitted bool) bool {
	return invalid && (touched || submitted)
}

// Attributes are the host element attributes of a select.
type Attributes struct {
	ID               string
	Role             string
	TabIndex         int
	Label            string // Empty when neither aria label nor placeholder is set
	Required         bool
	Disabled         bool
	Invalid          bool
	ActiveDescendant string // Id of the selected item, empty without selection
	Dir              TextDirection
}

// Label returns the accessible label: the aria label, else the placeholder.
func (s *Select) Label() string {
	if s.settings.AriaLabel != "" {
		return s.settings.AriaLabel
	}
	return s.settings.Placeholder
}

// Invalid reports whether a required select has no selection.
func (s *Select) Invalid() bool {
	return s.required && s.selectedIndex < 0
}

// ErrorState reports whether the select should render its error state.
func (s *Select) ErrorState() bool {
	return ErrorState(s.Invalid(), s.touched, s.submitted)
}

// Direction resolves the direction of the select. With "auto" it is
// right-to-left as soon as any item text is.
func (s *Select) Direction() TextDirection {
	switch s.settings.Dir {
	case DirAuto:
		for _, item := range s.list.Items() {
			if IsRTL(item.Text) {
				return DirRTL
			}
		}
		return DirLTR
	case DirRTL, DirLTR:
		return s.settings.Dir
	default:
		return DirDefault
	}
}

// ItemDirection resolves the direction of a single item against the select.
func (s *Select) ItemDirection(item *Item) TextDirection {
	return ResolveDirection(item.Dir, s.settings.Dir, item.Text)
}

// Attributes returns the current host attributes.
func (s *Select) Attributes() Attributes {
	attrs := Attributes{
		ID:       s.id,
		Role:     Role,
		TabIndex: EffectiveTabIndex(s.disabled, s.settings.TabIndex),
		Label:    s.Label(),
		Required: s.required,
		Disabled: s.disabled,
		Invalid:  s.ErrorState(),
		Dir:      s.Direction(),
	}
	if selected := s.Selected(); selected != nil {
		attrs.ActiveDescendant = selected.ID
	}
	return attrs
}
