package listbox

import (
	"image"

	"github.com/rjkroege/collist/column"
)

// RowMetrics holds the row size reserved by the measurement pass.
type RowMetrics struct {
	rowHeight int
	rowWidth  int
}

// NewRowMetrics creates RowMetrics from a measurement reply.
func NewRowMetrics(reply column.MeasureReply) *RowMetrics {
	return &RowMetrics{
		rowHeight: int(reply.Height),
		rowWidth:  int(reply.Width),
	}
}

// RowHeight returns the height of one row.
func (rm *RowMetrics) RowHeight() int {
	return rm.rowHeight
}

// RowWidth returns the width reserved for the longest row.
func (rm *RowMetrics) RowWidth() int {
	return rm.rowWidth
}

// RowsForHeight returns the number of complete rows that fit in the given
// pixel height.
func (rm *RowMetrics) RowsForHeight(height int) int {
	if rm.rowHeight == 0 {
		return 0
	}
	return height / rm.rowHeight
}

// RowRect returns the rectangle of the n-th visible row in r.
func (rm *RowMetrics) RowRect(r image.Rectangle, n int) image.Rectangle {
	y := r.Min.Y + n*rm.rowHeight
	return image.Rect(r.Min.X, y, r.Max.X, y+rm.rowHeight)
}

// RowAt returns the visible row index of pt in r, or -1 if pt is outside
// r.
func (rm *RowMetrics) RowAt(r image.Rectangle, pt image.Point) int {
	if !pt.In(r) || rm.rowHeight == 0 {
		return -1
	}
	return (pt.Y - r.Min.Y) / rm.rowHeight
}
