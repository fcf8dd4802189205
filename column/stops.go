package column

import "fmt"

// TabStops is a list of 1-based character columns at which a column
// boundary occurs. A 0 element terminates the list; so does the end of the
// slice. Positions before the terminator must be non-decreasing.
type TabStops []int

// Validate reports ErrMalformedStops if ts is not a valid stop list.
func (ts TabStops) Validate() error {
	prev := 0
	for i, p := range ts {
		if p == 0 {
			return nil
		}
		if p < 0 {
			return fmt.Errorf("%w: stop %d is negative (%d)", ErrMalformedStops, i, p)
		}
		if p < prev {
			return fmt.Errorf("%w: stop %d (%d) precedes stop %d (%d)", ErrMalformedStops, i, p, i-1, prev)
		}
		prev = p
	}
	return nil
}

// Len returns the number of real stops before the terminator.
func (ts TabStops) Len() int {
	for i, p := range ts {
		if p == 0 {
			return i
		}
	}
	return len(ts)
}

// next returns the 0-based column of the first stop whose 1-based
// position is greater than cursor, so the column may equal cursor. With
// advance set the column must lie beyond cursor. It searches from the
// start of the list every time. ok is false when the list is exhausted.
func (ts TabStops) next(cursor int, advance bool) (col int, ok bool) {
	for _, p := range ts {
		if p == 0 {
			break
		}
		if p > cursor && (!advance || p-1 > cursor) {
			return p - 1, true
		}
	}
	return 0, false
}

// Segment is the run of characters drawn for one column. Start is the
// 1-based column of its first character.
type Segment struct {
	Start int
	Count int
}

// Segments splits n expanded characters into column runs. The walk consumes
// one stop per segment, the terminator standing for "all remaining
// characters", and ends once the text is used up. At least one segment is
// returned, so an empty row still has its background erased.
func (ts TabStops) Segments(n int) []Segment {
	var segs []Segment
	end := n + 1
	prev := 1
	for i := 0; ; i++ {
		stop := 0
		if i < len(ts) {
			stop = ts[i]
		}
		next := end
		if stop > 0 && stop < end {
			next = stop
		}
		count := next - prev
		if count < 0 {
			count = 0
		}
		segs = append(segs, Segment{Start: prev, Count: count})
		if stop == 0 || next >= end {
			return segs
		}
		prev = next
	}
}
