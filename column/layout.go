package column

// Layout is the per-widget context shared by measurement and drawing: the
// tab stops, the width choice, the resolved cell width and the scratch
// buffer. A Layout is not safe for concurrent use.
type Layout struct {
	stops     TabStops
	ws        WidthSelector
	maxChars  int
	cellWidth int
	measured  bool
	buf       *Buffer
}

// Option configures a Layout.
type Option func(*Layout)

// OptTabStops sets the tab stops. The slice is copied.
func OptTabStops(ts TabStops) Option {
	return func(l *Layout) {
		l.stops = append(TabStops(nil), ts...)
	}
}

// OptWidth selects the average or maximum character width as the cell
// width.
func OptWidth(ws WidthSelector) Option {
	return func(l *Layout) {
		l.ws = ws
	}
}

// OptMaxChars sets the largest number of characters any row displays.
func OptMaxChars(n int) Option {
	return func(l *Layout) {
		l.maxChars = n
	}
}

// OptCapacity sets the expansion buffer capacity in characters.
func OptCapacity(n int) Option {
	return func(l *Layout) {
		l.buf = NewBuffer(n)
	}
}

// New returns a Layout configured by opts. It defaults to average width,
// 80 characters per row and a MaxTextChars buffer.
func New(opts ...Option) (*Layout, error) {
	l := &Layout{
		ws:       AverageWidth,
		maxChars: 80,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.buf == nil {
		l.buf = NewBuffer(MaxTextChars)
	}
	if err := l.stops.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Measure resolves the cell width for w and returns the measurement reply.
func (l *Layout) Measure(w Widget) (MeasureReply, error) {
	reply, cw, err := ResolveCellMetrics(w, l.ws, l.maxChars)
	if err != nil {
		return MeasureReply{}, err
	}
	l.cellWidth = cw
	l.measured = true
	return reply, nil
}

// DrawItem answers a draw request with the layout's stops and cell width.
func (l *Layout) DrawItem(it *Item) (bool, error) {
	if !l.measured {
		return true, ErrNotMeasured
	}
	return DrawRow(it, l.cellWidth, l.stops, l.buf)
}

// CellWidth returns the resolved cell width, or 0 before Measure.
func (l *Layout) CellWidth() int { return l.cellWidth }

// TabStops returns a copy of the layout's tab stops.
func (l *Layout) TabStops() TabStops { return append(TabStops(nil), l.stops...) }

// Width returns the width selector.
func (l *Layout) Width() WidthSelector { return l.ws }

// MaxChars returns the maximum row length in characters.
func (l *Layout) MaxChars() int { return l.maxChars }
