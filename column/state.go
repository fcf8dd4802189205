package column

import "fmt"

// StateFlags is a set of host-defined interaction state bits.
type StateFlags uint16

const (
	Selected StateFlags = 1 << iota
	Focused
)

// Redraw is the redraw decision for a row.
type Redraw int

const (
	// NeedsFullLayout means the row's text must be expanded and drawn.
	NeedsFullLayout Redraw = iota

	// HighlightOnly means the host's highlighting is sufficient and the
	// text is left as it is.
	HighlightOnly
)

func (rd Redraw) String() string {
	switch rd {
	case NeedsFullLayout:
		return "full-layout"
	case HighlightOnly:
		return "highlight-only"
	}
	return fmt.Sprintf("Redraw(%d)", int(rd))
}

// RowState is the pair of flag snapshots that drives the redraw decision.
// Current is set by the host. LastDrawn is persisted by the host but
// written only by the core and by ForceLayout.
//
// The decision is keyed on the flags alone, never on the row's text. A
// host that changes a row's text must call ForceLayout before the next
// draw request; otherwise a row whose flags mismatch keeps its old layout
// on screen.
type RowState struct {
	Current   StateFlags
	LastDrawn StateFlags
}

// Classify returns the redraw decision for the next draw request.
func (rs RowState) Classify() Redraw {
	if rs.Current == rs.LastDrawn {
		return NeedsFullLayout
	}
	return HighlightOnly
}

// settle records a completed full layout. A row in a distinguished state
// has LastDrawn cleared so that the next request with unchanged flags is
// classified HighlightOnly.
func (rs *RowState) settle() {
	if rs.Current != 0 {
		rs.LastDrawn = 0
	}
}

// ForceLayout makes the next draw request perform a full layout.
func (rs *RowState) ForceLayout() {
	rs.LastDrawn = rs.Current
}
