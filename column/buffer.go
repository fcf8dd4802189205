package column

import (
	"fmt"
	"unicode/utf8"
)

// MaxTextChars is the default capacity of a Buffer in characters.
const MaxTextChars = 256

// Buffer holds the tab-expanded text of one row. Its capacity is fixed
// when it is made and every write is checked against it.
type Buffer struct {
	cells []rune
}

// NewBuffer returns a Buffer holding up to capacity characters.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{cells: make([]rune, 0, capacity)}
}

// Cap returns the capacity of b in characters.
func (b *Buffer) Cap() int { return cap(b.cells) }

// Len returns the number of characters in b.
func (b *Buffer) Len() int { return len(b.cells) }

// Reset empties b.
func (b *Buffer) Reset() { b.cells = b.cells[:0] }

// String returns the contents of b.
func (b *Buffer) String() string { return string(b.cells) }

// Slice returns count characters starting at the 1-based column start,
// clipped to the contents of b.
func (b *Buffer) Slice(start, count int) string {
	lo := start - 1
	if lo < 0 {
		lo = 0
	}
	if lo > len(b.cells) {
		lo = len(b.cells)
	}
	hi := lo + count
	if hi > len(b.cells) {
		hi = len(b.cells)
	}
	return string(b.cells[lo:hi])
}

func (b *Buffer) put(r rune) error {
	if len(b.cells) == cap(b.cells) {
		return fmt.Errorf("%w: more than %d characters", ErrCapacity, cap(b.cells))
	}
	b.cells = append(b.cells, r)
	return nil
}

// Expand replaces the contents of b with raw, tabs expanded against stops.
//
// A tab pads with spaces up to the column before the first stop whose
// position is greater than the current position; a field that exactly
// fills its column gets no padding. A tab that directly follows another
// tab always moves to a later column, leaving an empty column between
// them. A tab past the last stop has no effect. Tabs themselves are never
// stored. On error the contents of b are
// unspecified.
func (b *Buffer) Expand(raw string, stops TabStops) error {
	b.Reset()
	if err := stops.Validate(); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(raw); n > b.Cap() {
		return fmt.Errorf("%w: raw text has %d characters, capacity %d", ErrCapacity, n, b.Cap())
	}

	prev := rune(0)
	for _, r := range raw {
		tab := prev == '\t'
		prev = r
		if r != '\t' {
			if err := b.put(r); err != nil {
				return err
			}
			continue
		}
		col, ok := stops.next(b.Len(), tab)
		if !ok {
			continue
		}
		for b.Len() < col {
			if err := b.put(' '); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExpandTabs returns raw with its tabs expanded against stops, using a
// buffer of MaxTextChars characters.
func ExpandTabs(raw string, stops TabStops) (string, error) {
	b := NewBuffer(MaxTextChars)
	if err := b.Expand(raw, stops); err != nil {
		return "", err
	}
	return b.String(), nil
}
