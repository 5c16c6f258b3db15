package simpleselect

// Rect is the vertical extent of a box in viewport coordinates.
type Rect struct {
	Top    float64
	Bottom float64
}

// Height returns the height of the rect.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Contains reports whether other lies fully inside r.
func (r Rect) Contains(other Rect) bool {
	return other.Top >= r.Top && other.Bottom <= r.Bottom
}

// ScrollDirection is the direction of a scroll request.
type ScrollDirection int

const (
	ScrollNone ScrollDirection = iota
	ScrollUp
	ScrollDown
)

func (d ScrollDirection) String() string {
	switch d {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	default:
		return "none"
	}
}

// ScrollDelta is a scroll request applied by the viewport owner.
// Amount is always non-negative.
type ScrollDelta struct {
	Direction ScrollDirection
	Amount    float64
}

// IsZero reports whether the delta does not move the viewport.
func (d ScrollDelta) IsZero() bool {
	return d.Direction == ScrollNone || d.Amount == 0
}

// Signed returns the delta as a signed offset change, positive scrolling down.
func (d ScrollDelta) Signed() float64 {
	switch d.Direction {
	case ScrollUp:
		return -d.Amount
	case ScrollDown:
		return d.Amount
	default:
		return 0
	}
}

func scrollBy(direction ScrollDirection, amount float64) ScrollDelta {
	if amount < 0 {
		amount = -amount
		if direction == ScrollUp {
			direction = ScrollDown
		} else {
			direction = ScrollUp
		}
	}
	if amount == 0 {
		return ScrollDelta{}
	}
	return ScrollDelta{Direction: direction, Amount: amount}
}

// CorrectScroll returns the delta that brings item fully into view.
func CorrectScroll(viewport, item Rect) ScrollDelta {
	switch {
	case item.Bottom > viewport.Bottom:
		return scrollBy(ScrollDown, item.Bottom-viewport.Bottom)
	case item.Top < viewport.Top:
		return scrollBy(ScrollUp, viewport.Top-item.Top)
	default:
		return ScrollDelta{}
	}
}

// ScrollClipped is CorrectScroll restricted to items that are partially
// visible. An item that is entirely outside the viewport is left alone.
func ScrollClipped(viewport, item Rect) ScrollDelta {
	switch {
	case item.Bottom > viewport.Bottom && item.Top < viewport.Bottom:
		return scrollBy(ScrollDown, item.Bottom-viewport.Bottom)
	case item.Top < viewport.Top && item.Bottom > viewport.Top:
		return scrollBy(ScrollUp, viewport.Top-item.Top)
	default:
		return ScrollDelta{}
	}
}

// AlignTop returns the delta that puts the item's top at the viewport's top.
func AlignTop(viewport, item Rect) ScrollDelta {
	return scrollBy(ScrollUp, viewport.Top-item.Top)
}

// Viewport is the scrollable container the scroll manager drives.
type Viewport interface {
	// ViewportRect returns the visible area.
	ViewportRect() Rect
	// ItemRect returns the current rect of the item at index.
	ItemRect(index int) (Rect, bool)
	// ScrollBy applies a scroll request.
	ScrollBy(delta ScrollDelta)
}

// ScrollManager keeps the highlighted item of a list visible.
type ScrollManager struct {
	list     ScrollableList
	viewport Viewport
}

// NewScrollManager creates a scroll manager for list. The viewport may be
// set later; without one every call is a no-op.
func NewScrollManager(list ScrollableList, viewport Viewport) *ScrollManager {
	return &ScrollManager{list: list, viewport: viewport}
}

// SetViewport replaces the driven viewport.
func (sm *ScrollManager) SetViewport(viewport Viewport) {
	sm.viewport = viewport
}

// Viewport returns the driven viewport, or nil.
func (sm *ScrollManager) Viewport() Viewport {
	return sm.viewport
}

// CorrectScroll scrolls so the highlighted item is fully visible.
func (sm *ScrollManager) CorrectScroll() ScrollDelta {
	return sm.apply(CorrectScroll)
}

// ScrollClipped scrolls a partially visible highlighted item into view.
func (sm *ScrollManager) ScrollClipped() ScrollDelta {
	return sm.apply(ScrollClipped)
}

// AlignTop scrolls the highlighted item to the top of the viewport.
func (sm *ScrollManager) AlignTop() ScrollDelta {
	return sm.apply(AlignTop)
}

func (sm *ScrollManager) apply(correct func(viewport, item Rect) ScrollDelta) ScrollDelta {
	if sm.viewport == nil || sm.list == nil {
		return ScrollDelta{}
	}

	index := sm.list.HighlightedIndex()
	if index < 0 || index >= sm.list.Len() {
		return ScrollDelta{}
	}

	item, ok := sm.viewport.ItemRect(index)
	if !ok {
		return ScrollDelta{}
	}

	delta := correct(sm.viewport.ViewportRect(), item)
	if !delta.IsZero() {
		sm.viewport.ScrollBy(delta)
	}
	return delta
}
