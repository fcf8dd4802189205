package column

import (
	"fmt"
	"math"
)

// WidthSelector picks which font width becomes the character cell width.
type WidthSelector int

const (
	AverageWidth WidthSelector = iota
	MaximumWidth
)

func (ws WidthSelector) String() string {
	switch ws {
	case AverageWidth:
		return "average"
	case MaximumWidth:
		return "maximum"
	}
	return fmt.Sprintf("WidthSelector(%d)", int(ws))
}

// cellWidth returns the width from m selected by ws.
func (ws WidthSelector) cellWidth(m Metrics) int {
	if ws == AverageWidth {
		return m.AveCharWidth
	}
	return m.MaxCharInc
}

// MeasureReply is the answer to a measurement request.
type MeasureReply struct {
	Height uint16
	Width  uint16
}

// Pack returns the reply in the host's packed form: the height in the low
// 16 bits and the width in the high 16 bits.
func (mr MeasureReply) Pack() uint32 {
	return uint32(mr.Height) | uint32(mr.Width)<<16
}

// ResolveCellMetrics answers a measurement request for w. It returns the
// row size to reserve for rows of up to maxChars characters and the cell
// width that the draw path must use for this widget.
func ResolveCellMetrics(w Widget, ws WidthSelector, maxChars int) (reply MeasureReply, cellWidth int, err error) {
	if maxChars < 0 {
		return MeasureReply{}, 0, fmt.Errorf("column: negative maxChars %d", maxChars)
	}

	s, err := w.AcquireSurface()
	if err != nil {
		return MeasureReply{}, 0, err
	}
	defer func() {
		if rerr := w.ReleaseSurface(s); rerr != nil && err == nil {
			err = rerr
		}
	}()

	m, err := s.FontMetrics()
	if err != nil {
		return MeasureReply{}, 0, err
	}

	cellWidth = ws.cellWidth(m)
	height := m.MaxBaselineExt
	if height < 0 || height > math.MaxUint16 {
		return MeasureReply{}, 0, fmt.Errorf("%w: height %d", ErrReplyOverflow, height)
	}
	// Checked before multiplying so that a huge maxChars cannot wrap.
	if cellWidth < 0 || (cellWidth > 0 && maxChars > math.MaxUint16/cellWidth) {
		return MeasureReply{}, 0, fmt.Errorf("%w: %d characters of width %d", ErrReplyOverflow, maxChars, cellWidth)
	}
	width := maxChars * cellWidth
	return MeasureReply{Height: uint16(height), Width: uint16(width)}, cellWidth, nil
}
