// Package drawtest contains a recording mock of the draw package for
// testing code that draws list rows.
package drawtest

import (
	"fmt"
	"image"
	"sync"
	"unicode/utf8"

	"github.com/rjkroege/collist/draw"
)

var _ = draw.Display((*mockDisplay)(nil))

const (
	// FontWidth and FontHeight are the metrics of the font returned by
	// the mock display's OpenFont.
	FontWidth  = 10
	FontHeight = 16
)

// GettableDrawOps display implementations can provide a list of the
// executed draw ops.
type GettableDrawOps interface {
	DrawOps() []string
	Clear()
}

// mockDisplay implements draw.Display.
type mockDisplay struct {
	mu          sync.Mutex
	drawops     []string
	screenimage draw.Image
	fonterr     error
}

// NewDisplay returns a mock draw.Display whose screen image covers r.
func NewDisplay(r image.Rectangle) draw.Display {
	md := &mockDisplay{}
	md.screenimage = newimageimpl(md, "screen", draw.Notacolor, r)
	return md
}

// FailOpenFont makes OpenFont on display fail with err.
func FailOpenFont(display draw.Display, err error) {
	display.(*mockDisplay).fonterr = err
}

func (d *mockDisplay) ScreenImage() draw.Image { return d.screenimage }

func (d *mockDisplay) White() draw.Image {
	return newimageimpl(d, "white", draw.Notacolor, image.Rectangle{})
}
func (d *mockDisplay) Black() draw.Image {
	return newimageimpl(d, "black", draw.Notacolor, image.Rectangle{})
}
func (d *mockDisplay) InitKeyboard() *draw.Keyboardctl { return &draw.Keyboardctl{} }
func (d *mockDisplay) InitMouse() *draw.Mousectl       { return &draw.Mousectl{} }

// NB: to make the recorded ops easier to read, the mock font is fixed
// width so positions are multiples of FontWidth.
func (d *mockDisplay) OpenFont(name string) (draw.Font, error) {
	if d.fonterr != nil {
		return nil, d.fonterr
	}
	return NewFont(FontWidth, FontHeight), nil
}

func (d *mockDisplay) AllocImage(r image.Rectangle, pix draw.Pix, repl bool, val draw.Color) (draw.Image, error) {
	return &mockImage{
		d:    d,
		r:    r,
		c:    val,
		repl: repl,
	}, nil
}

func (d *mockDisplay) Attach(ref int) error { return nil }
func (d *mockDisplay) Flush() error         { return nil }

func (d *mockDisplay) DrawOps() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.drawops...)
}

func (d *mockDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drawops = nil
}

func (d *mockDisplay) record(op string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drawops = append(d.drawops, op)
}

var _ = draw.Image((*mockImage)(nil))

// mockImage implements draw.Image.
type mockImage struct {
	r    image.Rectangle
	d    *mockDisplay
	n    string
	c    draw.Color
	repl bool
}

// newimageimpl creates a new mockImage. Use Notacolor for the situation
// where the name of the image takes precedence.
func newimageimpl(d *mockDisplay, name string, c draw.Color, r image.Rectangle) draw.Image {
	return &mockImage{
		r: r,
		d: d,
		c: c,
		n: name,
	}
}

// NewImage returns a mock draw.Image with the given bounds.
func NewImage(display draw.Display, name string, r image.Rectangle) draw.Image {
	d := display.(*mockDisplay)
	return newimageimpl(d, name, draw.Notacolor, r)
}

func (i *mockImage) Display() draw.Display { return i.d }
func (i *mockImage) Pix() draw.Pix         { return 0 }
func (i *mockImage) R() image.Rectangle    { return i.r }

func imagename(i draw.Image) string {
	if mi, ok := i.(*mockImage); ok {
		return mi.N()
	}
	return "nil"
}

func (i *mockImage) Draw(r image.Rectangle, src, mask draw.Image, p1 image.Point) {
	if mask == nil && p1 == image.ZP {
		i.d.record(fmt.Sprintf("%s <- fill %v src: %s", i.N(), r, imagename(src)))
		return
	}
	i.d.record(fmt.Sprintf("%s <- draw r: %v src: %s mask: %s p1: %v",
		i.N(),
		r,
		imagename(src),
		imagename(mask),
		p1,
	))
}

func (i *mockImage) Border(r image.Rectangle, n int, color draw.Image, sp image.Point) {
	i.d.record(fmt.Sprintf("%s <- border r: %v thick: %d color: %s",
		i.N(),
		r,
		n,
		imagename(color),
	))
}

func (i *mockImage) String(pt image.Point, src draw.Image, sp image.Point, f draw.Font, s string) image.Point {
	i.d.record(fmt.Sprintf("%s <- string %q atpoint: %v fill: %s",
		i.N(),
		s,
		pt,
		imagename(src),
	))
	return pt.Add(image.Pt(f.StringWidth(s), 0))
}

func (i *mockImage) Free() error { return nil }

// N returns a nicename for the image colour.
func (i *mockImage) N() string {
	name := i.n
	if i.c != draw.Notacolor {
		name = NiceColourName(i.c)
	}

	if i.repl {
		name += ",tiled"
	}
	return name
}

var _ = draw.Font((*mockFont)(nil))

// mockFont implements draw.Font. Runes missing from widths are width wide.
type mockFont struct {
	width, height int
	widths        map[rune]int
}

// NewFont returns a draw.Font that mocks a fixed-width font.
func NewFont(width, height int) draw.Font {
	return &mockFont{
		width:  width,
		height: height,
	}
}

// NewProportionalFont returns a draw.Font whose runes have the widths
// given, and width for every other rune.
func NewProportionalFont(width, height int, widths map[rune]int) draw.Font {
	return &mockFont{
		width:  width,
		height: height,
		widths: widths,
	}
}

const MockFontName = "/lib/font/bit/lucsans/euro.8.font"

func (f *mockFont) Name() string { return MockFontName }
func (f *mockFont) Height() int  { return f.height }

func (f *mockFont) runewidth(r rune) int {
	if w, ok := f.widths[r]; ok {
		return w
	}
	return f.width
}

func (f *mockFont) RunesWidth(r []rune) int {
	w := 0
	for _, c := range r {
		w += f.runewidth(c)
	}
	return w
}

func (f *mockFont) StringWidth(s string) int {
	if f.widths == nil {
		return f.width * utf8.RuneCountInString(s)
	}
	return f.RunesWidth([]rune(s))
}
