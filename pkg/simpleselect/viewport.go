package simpleselect

import "math"

// RowViewport is a Viewport over a list of fixed-height rows, for front
// ends that lay items out on a grid instead of measuring boxes.
// Rects are in content coordinates: row i spans [i*RowHeight, (i+1)*RowHeight)
// and the visible area spans [Offset, Offset+Height).
type RowViewport struct {
	RowHeight float64
	Height    float64
	Offset    float64

	rows func() int
}

// NewRowViewport creates a viewport showing visibleRows rows of height
// rowHeight. rows reports the current number of rows.
func NewRowViewport(rowHeight float64, visibleRows int, rows func() int) *RowViewport {
	if rowHeight <= 0 {
		rowHeight = 1
	}
	if visibleRows < 1 {
		visibleRows = 1
	}
	return &RowViewport{
		RowHeight: rowHeight,
		Height:    rowHeight * float64(visibleRows),
		rows:      rows,
	}
}

// ViewportRect implements Viewport.
func (v *RowViewport) ViewportRect() Rect {
	return Rect{Top: v.Offset, Bottom: v.Offset + v.Height}
}

// ItemRect implements Viewport.
func (v *RowViewport) ItemRect(index int) (Rect, bool) {
	if index < 0 || index >= v.rowCount() {
		return Rect{}, false
	}
	top := float64(index) * v.RowHeight
	return Rect{Top: top, Bottom: top + v.RowHeight}, true
}

// ScrollBy implements Viewport. The offset is clamped to the content.
func (v *RowViewport) ScrollBy(delta ScrollDelta) {
	v.Offset += delta.Signed()
	v.clamp()
}

// Resize changes the number of visible rows and re-clamps the offset.
func (v *RowViewport) Resize(visibleRows int) {
	if visibleRows < 1 {
		visibleRows = 1
	}
	v.Height = v.RowHeight * float64(visibleRows)
	v.clamp()
}

// MaxVisibleRows returns how many whole rows fit in the viewport, at least one.
func (v *RowViewport) MaxVisibleRows() int {
	maxRows := int(v.Height / v.RowHeight)
	if maxRows < 1 {
		maxRows = 1
	}
	return maxRows
}

// VisibleRange returns the half-open range of rows that intersect the
// visible area.
func (v *RowViewport) VisibleRange() (start, end int) {
	rows := v.rowCount()
	if rows == 0 {
		return 0, 0
	}

	start = int(math.Floor(v.Offset / v.RowHeight))
	end = int(math.Ceil((v.Offset + v.Height) / v.RowHeight))

	if start < 0 {
		start = 0
	}
	if end > rows {
		end = rows
	}
	if start > end {
		start = end
	}
	return start, end
}

func (v *RowViewport) clamp() {
	maxOffset := float64(v.rowCount())*v.RowHeight - v.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

func (v *RowViewport) rowCount() int {
	if v.rows == nil {
		return 0
	}
	return v.rows()
}
