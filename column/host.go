package column

import "image"

// Metrics holds the character-width statistics of a widget's font in
// device units.
type Metrics struct {
	AveCharWidth   int
	MaxCharInc     int
	MaxBaselineExt int
}

// TextFlags select the alignment and rendering behaviour of
// Surface.DrawText.
type TextFlags uint

const (
	Left      TextFlags = 1 << iota // Align the run with the left edge.
	VCenter                         // Centre the run vertically in the rectangle.
	EraseRect                       // Fill the rectangle with the background first.
	TextAttrs                       // Use the surface's current text attributes.
)

// segmentFlags are the flags used for every column segment.
const segmentFlags = Left | VCenter | EraseRect | TextAttrs

// Surface is a drawing surface of the host toolkit.
type Surface interface {
	// FontMetrics reports the metrics of the surface's active font.
	FontMetrics() (Metrics, error)

	// DrawText draws s inside r.
	DrawText(s string, r image.Rectangle, fl TextFlags) error
}

// Widget is the list widget as seen by the core. The core never retains a
// Widget or a Surface beyond a single call.
type Widget interface {
	AcquireSurface() (Surface, error)
	ReleaseSurface(s Surface) error

	// ItemText returns the text of item id, at most max characters long.
	ItemText(id, max int) (string, error)
}

// Item is the draw record for one row.
type Item struct {
	Widget  Widget
	Surface Surface
	ID      int

	// Rect is the row rectangle. DrawRow moves its left edge while drawing
	// and restores it before returning.
	Rect image.Rectangle

	// State is owned by the host and persisted across draw requests.
	State *RowState
}
