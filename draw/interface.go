// Package draw is the host drawing toolkit used by collist: a display, its
// images and its fonts. The default build wraps 9fans.net/go/draw; the
// duitdraw build tag (and Windows) selects github.com/ktye/duitdraw.
// Package raster provides a headless implementation.
package draw

import "image"

type Display interface {
	ScreenImage() Image
	White() Image
	Black() Image

	InitKeyboard() *Keyboardctl
	InitMouse() *Mousectl
	OpenFont(name string) (Font, error)
	AllocImage(r image.Rectangle, pix Pix, repl bool, val Color) (Image, error)
	Attach(ref int) error
	Flush() error
}

type Image interface {
	Display() Display
	Pix() Pix
	R() image.Rectangle

	Draw(r image.Rectangle, src, mask Image, p1 image.Point)
	Border(r image.Rectangle, n int, color Image, sp image.Point)
	String(pt image.Point, src Image, sp image.Point, f Font, s string) image.Point
	Free() error
}

type Font interface {
	Name() string
	Height() int
	StringWidth(s string) int
	RunesWidth(r []rune) int
}

// displayImpl implements the Display interface.
type displayImpl struct {
	*drawDisplay
}

var _ = Display((*displayImpl)(nil))

func (d *displayImpl) ScreenImage() Image { return &imageImpl{d.drawDisplay.ScreenImage} }
func (d *displayImpl) White() Image       { return &imageImpl{d.drawDisplay.White} }
func (d *displayImpl) Black() Image       { return &imageImpl{d.drawDisplay.Black} }

func (d *displayImpl) OpenFont(name string) (Font, error) {
	f, err := d.drawDisplay.OpenFont(name)
	if err != nil {
		return nil, err
	}
	return &fontImpl{f}, nil
}

func (d *displayImpl) AllocImage(r image.Rectangle, pix Pix, repl bool, val Color) (Image, error) {
	i, err := d.drawDisplay.AllocImage(r, pix, repl, val)
	if err != nil {
		return nil, err
	}
	return &imageImpl{i}, nil
}

// imageImpl implements the Image interface.
type imageImpl struct {
	*drawImage
}

var _ = Image((*imageImpl)(nil))

func (dst *imageImpl) Display() Display   { return &displayImpl{dst.drawImage.Display} }
func (dst *imageImpl) Pix() Pix           { return dst.drawImage.Pix }
func (dst *imageImpl) R() image.Rectangle { return dst.drawImage.R }

func (dst *imageImpl) Draw(r image.Rectangle, src, mask Image, p1 image.Point) {
	dst.drawImage.Draw(r, toDrawImage(src), toDrawImage(mask), p1)
}

func (dst *imageImpl) Border(r image.Rectangle, n int, color Image, sp image.Point) {
	dst.drawImage.Border(r, n, toDrawImage(color), sp)
}

func (dst *imageImpl) String(pt image.Point, src Image, sp image.Point, f Font, s string) image.Point {
	return dst.drawImage.String(pt, toDrawImage(src), sp, f.(*fontImpl).drawFont, s)
}

func toDrawImage(i Image) *drawImage {
	if i == nil {
		return nil
	}
	return i.(*imageImpl).drawImage
}

type fontImpl struct {
	*drawFont
}

func (f *fontImpl) Name() string { return f.drawFont.Name }
func (f *fontImpl) Height() int  { return f.drawFont.Height }
