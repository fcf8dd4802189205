// Package listbox is an owner-drawn list on a draw.Display. It plays the
// host toolkit for package column: it owns the rows, issues the
// measurement and draw requests, and paints the selection highlight
// itself.
package listbox

import (
	"fmt"
	"image"
	"log"
	"unicode/utf8"

	"github.com/rjkroege/collist/column"
	"github.com/rjkroege/collist/draw"
)

const (
	ColBack = iota
	ColText
	ColHigh
	NumColours
)

type item struct {
	text  string
	state column.RowState
}

// List is a vertical list of single-line rows drawn in tab-aligned
// columns.
type List struct {
	display draw.Display
	screen  draw.Image
	font    draw.Font
	r       image.Rectangle
	cols    [NumColours]draw.Image
	layout  *column.Layout
	metrics *RowMetrics
	items   []*item
	origin  int
	debug   bool
}

var _ = column.Widget((*List)(nil))

// Option configures a List.
type Option func(*List)

// OptColors sets the background, text and highlight colours.
func OptColors(cols [NumColours]draw.Image) Option {
	return func(l *List) {
		l.cols = cols
	}
}

// OptDebug logs the redraw decision of every draw request.
func OptDebug(debug bool) Option {
	return func(l *List) {
		l.debug = debug
	}
}

// New creates a list drawn in r on the display's screen image and sizes
// its rows with a measurement request against layout.
func New(display draw.Display, r image.Rectangle, font draw.Font, layout *column.Layout, opts ...Option) (*List, error) {
	l := &List{
		display: display,
		screen:  display.ScreenImage(),
		font:    font,
		r:       r,
		layout:  layout,
	}
	high, err := display.AllocImage(image.Rect(0, 0, 1, 1), l.screen.Pix(), true, draw.Medblue)
	if err != nil {
		return nil, fmt.Errorf("listbox: allocating highlight colour: %w", err)
	}
	l.cols = [NumColours]draw.Image{
		ColBack: display.White(),
		ColText: display.Black(),
		ColHigh: high,
	}
	for _, opt := range opts {
		opt(l)
	}

	reply, err := layout.Measure(l)
	if err != nil {
		return nil, fmt.Errorf("listbox: measuring rows: %w", err)
	}
	l.metrics = NewRowMetrics(reply)
	return l, nil
}

// AcquireSurface returns the surface that rows are drawn on.
func (l *List) AcquireSurface() (column.Surface, error) {
	return &surface{
		dst:  l.screen,
		font: l.font,
		back: l.cols[ColBack],
		text: l.cols[ColText],
	}, nil
}

// ReleaseSurface releases a surface from AcquireSurface.
func (l *List) ReleaseSurface(s column.Surface) error { return nil }

// ItemText returns at most max characters of row id.
func (l *List) ItemText(id, max int) (string, error) {
	if id < 0 || id >= len(l.items) {
		return "", fmt.Errorf("listbox: no row %d", id)
	}
	s := l.items[id].text
	if utf8.RuneCountInString(s) <= max {
		return s, nil
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i], nil
		}
		n++
	}
	return s, nil
}

// Metrics returns the row metrics from the measurement request.
func (l *List) Metrics() *RowMetrics { return l.metrics }

// Size returns the size the list needs to show every row at full width,
// including the one cell gutter left of the first column.
func (l *List) Size() image.Point {
	return image.Pt(l.metrics.RowWidth()+l.layout.CellWidth(), l.metrics.RowHeight()*len(l.items))
}

// Rect returns the list's rectangle.
func (l *List) Rect() image.Rectangle { return l.r }

// Len returns the number of rows.
func (l *List) Len() int { return len(l.items) }

// Append adds a row and returns its index. The row is not drawn until the
// next Redraw.
func (l *List) Append(text string) int {
	l.items = append(l.items, &item{text: text})
	return len(l.items) - 1
}

// Text returns the text of row i.
func (l *List) Text(i int) string { return l.items[i].text }

// State returns the redraw state of row i.
func (l *List) State(i int) column.RowState { return l.items[i].state }

// Selected reports whether row i is selected.
func (l *List) Selected(i int) bool { return l.items[i].state.Current&column.Selected != 0 }

// SetText replaces the text of row i and issues a draw request for it.
//
// SetText does not reset the row's redraw state. A row whose state says
// HighlightOnly, such as a selected row after a repaint, keeps showing its
// old text. Callers that change the text of such a row must also call
// Invalidate.
func (l *List) SetText(i int, text string) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("listbox: no row %d", i)
	}
	l.items[i].text = text
	return l.drawRow(i)
}

// Invalidate forces a full layout of row i.
func (l *List) Invalidate(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("listbox: no row %d", i)
	}
	l.items[i].state.ForceLayout()
	return l.drawRow(i)
}

// Select sets the selection of row i and issues a draw request for it.
func (l *List) Select(i int, on bool) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("listbox: no row %d", i)
	}
	st := &l.items[i].state
	if on {
		st.Current |= column.Selected
	} else {
		st.Current &^= column.Selected
	}
	return l.drawRow(i)
}

// Toggle flips the selection of row i.
func (l *List) Toggle(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("listbox: no row %d", i)
	}
	return l.Select(i, !l.Selected(i))
}

// Redraw repaints the whole list. Every visible row is fully laid out. A
// row that fails to draw is logged and skipped; the first error is
// returned.
func (l *List) Redraw() error {
	l.screen.Draw(l.r, l.cols[ColBack], nil, image.ZP)

	var first error
	for i := l.origin; i < l.origin+l.VisibleRows() && i < len(l.items); i++ {
		l.items[i].state.ForceLayout()
		if err := l.drawRow(i); err != nil && first == nil {
			first = err
		}
	}
	if err := l.display.Flush(); err != nil && first == nil {
		first = err
	}
	return first
}

// Resize moves the list to r and repaints it.
func (l *List) Resize(r image.Rectangle) error {
	l.r = r
	return l.Redraw()
}

// VisibleRows returns the number of rows that fit in the list's rectangle.
func (l *List) VisibleRows() int {
	return l.metrics.RowsForHeight(l.r.Dy())
}

// Origin returns the index of the first visible row.
func (l *List) Origin() int { return l.origin }

// SetOrigin scrolls so that row n is the first visible row and repaints.
func (l *List) SetOrigin(n int) error {
	if n > len(l.items)-1 {
		n = len(l.items) - 1
	}
	if n < 0 {
		n = 0
	}
	l.origin = n
	return l.Redraw()
}

// RowAt returns the row under pt, or -1.
func (l *List) RowAt(pt image.Point) int {
	n := l.metrics.RowAt(l.r, pt)
	if n < 0 || n >= l.VisibleRows() || l.origin+n >= len(l.items) {
		return -1
	}
	return l.origin + n
}

func (l *List) visible(i int) bool {
	return i >= l.origin && i < l.origin+l.VisibleRows()
}

// drawRow issues a draw request for row i and then paints the default
// highlight for its current state.
func (l *List) drawRow(i int) error {
	if !l.visible(i) {
		return nil
	}
	it := l.items[i]
	rect := l.metrics.RowRect(l.r, i-l.origin)
	if l.debug {
		log.Printf("listbox: row %d %+v %v", i, it.state, it.state.Classify())
	}

	s, err := l.AcquireSurface()
	if err != nil {
		return err
	}
	defer func() {
		if rerr := l.ReleaseSurface(s); rerr != nil {
			log.Printf("listbox: row %d: releasing surface: %v", i, rerr)
		}
	}()

	rec := &column.Item{
		Widget:  l,
		Surface: s,
		ID:      i,
		Rect:    rect,
		State:   &it.state,
	}
	if _, err = l.layout.DrawItem(rec); err != nil {
		log.Printf("listbox: row %d: %v", i, err)
	}

	high := l.cols[ColBack]
	if it.state.Current&column.Selected != 0 {
		high = l.cols[ColHigh]
	}
	l.screen.Border(rect, 1, high, image.ZP)
	return err
}
