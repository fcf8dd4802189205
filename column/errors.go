package column

import "errors"

var (
	// ErrCapacity reports text that does not fit the expansion buffer.
	ErrCapacity = errors.New("column: text exceeds buffer capacity")

	// ErrMalformedStops reports a tab stop list that is not
	// non-decreasing or holds a negative position.
	ErrMalformedStops = errors.New("column: malformed tab stops")

	// ErrReplyOverflow reports a row size that does not fit the 16-bit
	// fields of a measurement reply.
	ErrReplyOverflow = errors.New("column: measurement exceeds reply range")

	// ErrNotMeasured is returned when a Layout draws before its cell width
	// has been resolved.
	ErrNotMeasured = errors.New("column: layout has not been measured")
)
