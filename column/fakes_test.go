package column

import (
	"errors"
	"fmt"
	"image"
)

// textop records one DrawText call.
type textop struct {
	s  string
	r  image.Rectangle
	fl TextFlags
}

func (op textop) String() string {
	return fmt.Sprintf("%q at %v", op.s, op.r)
}

type fakeSurface struct {
	m       Metrics
	merr    error
	drawerr error
	ops     []textop
}

func (s *fakeSurface) FontMetrics() (Metrics, error) { return s.m, s.merr }

func (s *fakeSurface) DrawText(str string, r image.Rectangle, fl TextFlags) error {
	if s.drawerr != nil {
		return s.drawerr
	}
	s.ops = append(s.ops, textop{s: str, r: r, fl: fl})
	return nil
}

type fakeWidget struct {
	surface  *fakeSurface
	texts    map[int]string
	acqerr   error
	relerr   error
	acquired int
	released int
	fetches  int
}

// truncate returns at most max characters of s, as a host's text query
// does.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		r = r[:max]
	}
	return string(r)
}

func newFakeWidget(m Metrics, texts ...string) *fakeWidget {
	w := &fakeWidget{
		surface: &fakeSurface{m: m},
		texts:   make(map[int]string),
	}
	for i, s := range texts {
		w.texts[i] = s
	}
	return w
}

func (w *fakeWidget) AcquireSurface() (Surface, error) {
	if w.acqerr != nil {
		return nil, w.acqerr
	}
	w.acquired++
	return w.surface, nil
}

func (w *fakeWidget) ReleaseSurface(s Surface) error {
	w.released++
	return w.relerr
}

func (w *fakeWidget) ItemText(id, max int) (string, error) {
	w.fetches++
	s, ok := w.texts[id]
	if !ok {
		return "", errors.New("no such item")
	}
	return truncate(s, max), nil
}
