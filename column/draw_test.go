package column

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testMetrics = Metrics{AveCharWidth: 7, MaxCharInc: 9, MaxBaselineExt: 16}

func opstrings(ops []textop) []string {
	var s []string
	for _, op := range ops {
		s = append(s, op.String())
	}
	return s
}

func TestDrawRowScenarioA(t *testing.T) {
	w := newFakeWidget(testMetrics, "ab\tcd")
	rs := &RowState{}
	it := &Item{
		Widget:  w,
		Surface: w.surface,
		ID:      0,
		Rect:    image.Rect(10, 20, 200, 36),
		State:   rs,
	}

	handled, err := DrawRow(it, 7, TabStops{5, 10, 0}, NewBuffer(MaxTextChars))
	if err != nil {
		t.Fatalf("DrawRow failed: %v", err)
	}
	if !handled {
		t.Error("DrawRow did not report handled")
	}

	want := []string{
		`"ab  " at (17,20)-(200,36)`,
		`"cd" at (45,20)-(200,36)`,
	}
	if diff := cmp.Diff(want, opstrings(w.surface.ops)); diff != "" {
		t.Errorf("drawn segments mismatch (-want +got):\n%s", diff)
	}
	for _, op := range w.surface.ops {
		if op.fl != Left|VCenter|EraseRect|TextAttrs {
			t.Errorf("segment %q drawn with flags %b", op.s, op.fl)
		}
	}
	if got, want := it.Rect, image.Rect(10, 20, 200, 36); got != want {
		t.Errorf("rectangle not restored: got %v, want %v", got, want)
	}
	if *rs != (RowState{}) {
		t.Errorf("unselected row state changed to %+v", *rs)
	}
}

func TestDrawRowSegmentOrigins(t *testing.T) {
	w := newFakeWidget(testMetrics, "name\tsize\tdate and time")
	it := &Item{
		Widget:  w,
		Surface: w.surface,
		Rect:    image.Rect(0, 0, 400, 16),
		State:   &RowState{},
	}
	if _, err := DrawRow(it, 10, TabStops{8, 16, 0}, NewBuffer(MaxTextChars)); err != nil {
		t.Fatal(err)
	}
	want := []string{
		`"name   " at (10,0)-(400,16)`,
		`"size    " at (80,0)-(400,16)`,
		`"date and time" at (160,0)-(400,16)`,
	}
	if diff := cmp.Diff(want, opstrings(w.surface.ops)); diff != "" {
		t.Errorf("drawn segments mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawRowEmptyText(t *testing.T) {
	w := newFakeWidget(testMetrics, "")
	it := &Item{Widget: w, Surface: w.surface, Rect: image.Rect(0, 0, 100, 16), State: &RowState{}}
	if _, err := DrawRow(it, 7, TabStops{5, 0}, NewBuffer(8)); err != nil {
		t.Fatal(err)
	}
	want := []string{`"" at (7,0)-(100,16)`}
	if diff := cmp.Diff(want, opstrings(w.surface.ops)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// TestDrawRowSkipsRepeatedSelectedDraw checks that a second request with
// unchanged flags does no text work.
func TestDrawRowSkipsRepeatedSelectedDraw(t *testing.T) {
	w := newFakeWidget(testMetrics, "ab\tcd")
	rs := &RowState{Current: Selected, LastDrawn: Selected}
	it := &Item{Widget: w, Surface: w.surface, Rect: image.Rect(0, 0, 100, 16), State: rs}
	buf := NewBuffer(MaxTextChars)
	stops := TabStops{5, 10, 0}

	if _, err := DrawRow(it, 7, stops, buf); err != nil {
		t.Fatal(err)
	}
	if got, want := len(w.surface.ops), 2; got != want {
		t.Fatalf("first draw: %d segments, want %d", got, want)
	}
	if got, want := *rs, (RowState{Current: Selected}); got != want {
		t.Errorf("after full layout state %+v, want %+v", got, want)
	}

	handled, err := DrawRow(it, 7, stops, buf)
	if err != nil || !handled {
		t.Fatalf("second draw: handled %v err %v", handled, err)
	}
	if got, want := len(w.surface.ops), 2; got != want {
		t.Errorf("second draw added segments: %d, want %d", got, want)
	}
	if got, want := w.fetches, 1; got != want {
		t.Errorf("text fetched %d times, want %d", got, want)
	}
}

func TestDrawRowUnselectedAlwaysLaysOut(t *testing.T) {
	w := newFakeWidget(testMetrics, "x")
	it := &Item{Widget: w, Surface: w.surface, Rect: image.Rect(0, 0, 100, 16), State: &RowState{}}
	buf := NewBuffer(MaxTextChars)
	for i := 0; i < 3; i++ {
		if _, err := DrawRow(it, 7, nil, buf); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := w.fetches, 3; got != want {
		t.Errorf("text fetched %d times, want %d", got, want)
	}
}

func TestDrawRowSelectionChange(t *testing.T) {
	w := newFakeWidget(testMetrics, "ab\tcd")
	rs := &RowState{}
	it := &Item{Widget: w, Surface: w.surface, Rect: image.Rect(0, 0, 100, 16), State: rs}
	buf := NewBuffer(MaxTextChars)

	rs.Current = Selected
	if _, err := DrawRow(it, 7, TabStops{5, 0}, buf); err != nil {
		t.Fatal(err)
	}
	if len(w.surface.ops) != 0 || w.fetches != 0 {
		t.Errorf("selection change did text work: %d ops, %d fetches", len(w.surface.ops), w.fetches)
	}
	if got, want := *rs, (RowState{Current: Selected}); got != want {
		t.Errorf("state %+v, want %+v", got, want)
	}

	// Changing the text does not reset the state. Only ForceLayout does.
	w.texts[0] = "changed"
	if _, err := DrawRow(it, 7, TabStops{5, 0}, buf); err != nil {
		t.Fatal(err)
	}
	if len(w.surface.ops) != 0 {
		t.Errorf("stale row was redrawn without ForceLayout")
	}
	rs.ForceLayout()
	if _, err := DrawRow(it, 7, TabStops{5, 0}, buf); err != nil {
		t.Fatal(err)
	}
	want := []string{`"chan" at (7,0)-(100,16)`, `"ged" at (35,0)-(100,16)`}
	if diff := cmp.Diff(want, opstrings(w.surface.ops)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawRowErrors(t *testing.T) {
	stops := TabStops{5, 10, 0}

	t.Run("text fetch failure", func(t *testing.T) {
		w := newFakeWidget(testMetrics)
		rs := &RowState{Current: Selected, LastDrawn: Selected}
		it := &Item{Widget: w, Surface: w.surface, ID: 3, Rect: image.Rect(0, 0, 100, 16), State: rs}
		handled, err := DrawRow(it, 7, stops, NewBuffer(MaxTextChars))
		if err == nil || !handled {
			t.Errorf("handled %v err %v, want true and an error", handled, err)
		}
		if rs.Classify() != NeedsFullLayout {
			t.Errorf("failed draw changed the redraw state to %+v", *rs)
		}
	})

	t.Run("capacity", func(t *testing.T) {
		w := newFakeWidget(testMetrics, "a\tb")
		it := &Item{Widget: w, Surface: w.surface, Rect: image.Rect(0, 0, 100, 16), State: &RowState{}}
		_, err := DrawRow(it, 7, TabStops{20, 0}, NewBuffer(8))
		if !errors.Is(err, ErrCapacity) {
			t.Errorf("got %v, want ErrCapacity", err)
		}
		if len(w.surface.ops) != 0 {
			t.Errorf("overflowing row was drawn")
		}
	})

	t.Run("row one longer than buffer", func(t *testing.T) {
		w := newFakeWidget(testMetrics, "012345678")
		it := &Item{Widget: w, Surface: w.surface, Rect: image.Rect(0, 0, 100, 16), State: &RowState{}}
		if _, err := DrawRow(it, 7, nil, NewBuffer(8)); !errors.Is(err, ErrCapacity) {
			t.Errorf("got %v, want ErrCapacity", err)
		}
		if len(w.surface.ops) != 0 {
			t.Errorf("over-long row was drawn as %v", opstrings(w.surface.ops))
		}
	})

	t.Run("row exactly fills buffer", func(t *testing.T) {
		w := newFakeWidget(testMetrics, "01234567")
		it := &Item{Widget: w, Surface: w.surface, Rect: image.Rect(0, 0, 100, 16), State: &RowState{}}
		if _, err := DrawRow(it, 7, nil, NewBuffer(8)); err != nil {
			t.Fatalf("got %v, want success", err)
		}
		if diff := cmp.Diff([]string{`"01234567" at (7,0)-(100,16)`}, opstrings(w.surface.ops)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("host returns too much text", func(t *testing.T) {
		w := newFakeWidget(testMetrics, strings.Repeat("x", 20))
		it := &Item{Widget: w, Surface: w.surface, Rect: image.Rect(0, 0, 100, 16), State: &RowState{}}
		if _, err := DrawRow(it, 7, nil, NewBuffer(8)); !errors.Is(err, ErrCapacity) {
			t.Errorf("got %v, want ErrCapacity", err)
		}
	})

	t.Run("malformed stops", func(t *testing.T) {
		w := newFakeWidget(testMetrics, "a\tb")
		it := &Item{Widget: w, Surface: w.surface, Rect: image.Rect(0, 0, 100, 16), State: &RowState{}}
		if _, err := DrawRow(it, 7, TabStops{9, 2, 0}, NewBuffer(8)); !errors.Is(err, ErrMalformedStops) {
			t.Errorf("got %v, want ErrMalformedStops", err)
		}
	})

	t.Run("draw failure restores rectangle", func(t *testing.T) {
		w := newFakeWidget(testMetrics, "ab\tcd")
		w.surface.drawerr = errors.New("draw failed")
		it := &Item{Widget: w, Surface: w.surface, Rect: image.Rect(10, 0, 100, 16), State: &RowState{}}
		if _, err := DrawRow(it, 7, stops, NewBuffer(MaxTextChars)); err != w.surface.drawerr {
			t.Errorf("got %v, want the draw error", err)
		}
		if got, want := it.Rect.Min.X, 10; got != want {
			t.Errorf("left edge %d, want %d", got, want)
		}
	})

	t.Run("missing state", func(t *testing.T) {
		w := newFakeWidget(testMetrics, "x")
		it := &Item{Widget: w, Surface: w.surface}
		if handled, err := DrawRow(it, 7, stops, NewBuffer(8)); err == nil || !handled {
			t.Errorf("handled %v err %v", handled, err)
		}
	})
}
