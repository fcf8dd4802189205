package column

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// DrawRow answers a draw request for it. Rows classified HighlightOnly are
// left to the host. Otherwise the row's text is fetched, expanded into buf
// and drawn one column segment at a time, segment i starting at
// Rect.Min.X + Start*cellWidth. A row longer than buf holds is rejected with
// ErrCapacity, never truncated. DrawRow always reports the row as handled.
func DrawRow(it *Item, cellWidth int, stops TabStops, buf *Buffer) (bool, error) {
	if it.State == nil {
		return true, errors.New("column: draw record has no row state")
	}
	if it.State.Classify() == HighlightOnly {
		return true, nil
	}

	// One character more than buf holds, so that an over-long row shows.
	raw, err := it.Widget.ItemText(it.ID, buf.Cap()+1)
	if err != nil {
		return true, err
	}
	if n := utf8.RuneCountInString(raw); n > buf.Cap() {
		return true, fmt.Errorf("%w: item %d text has %d characters", ErrCapacity, it.ID, n)
	}
	if err := buf.Expand(raw, stops); err != nil {
		return true, fmt.Errorf("item %d: %w", it.ID, err)
	}

	left := it.Rect.Min.X
	defer func() { it.Rect.Min.X = left }()

	for _, sg := range stops.Segments(buf.Len()) {
		it.Rect.Min.X = left + sg.Start*cellWidth
		if err := it.Surface.DrawText(buf.Slice(sg.Start, sg.Count), it.Rect, segmentFlags); err != nil {
			return true, err
		}
	}

	it.State.settle()
	return true, nil
}
