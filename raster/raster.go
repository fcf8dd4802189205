// Package raster implements the draw interfaces on an in-memory RGBA image
// using golang.org/x/image fonts. It renders lists without a window
// system, for PNG output and tests.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/rjkroege/collist/draw"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFont names Go Regular at 13 points.
const DefaultFont = "goregular:13"

var _ = draw.Display((*Display)(nil))

// Display is a headless draw.Display.
type Display struct {
	screen *Image
	white  *Image
	black  *Image
}

// NewDisplay returns a Display whose screen image covers r, initially
// white.
func NewDisplay(r image.Rectangle) *Display {
	d := &Display{}
	d.white = d.uniform(draw.White)
	d.black = d.uniform(draw.Black)
	d.screen = &Image{d: d, r: r, rgba: image.NewRGBA(r)}
	xdraw.Draw(d.screen.rgba, r, d.white.src(), image.Point{}, xdraw.Src)
	return d
}

func (d *Display) uniform(c draw.Color) *Image {
	return &Image{
		d:    d,
		r:    image.Rect(0, 0, 1, 1),
		repl: true,
		fill: image.NewUniform(rgba(c)),
	}
}

func (d *Display) ScreenImage() draw.Image         { return d.screen }
func (d *Display) White() draw.Image               { return d.white }
func (d *Display) Black() draw.Image               { return d.black }
func (d *Display) InitKeyboard() *draw.Keyboardctl { return nil }
func (d *Display) InitMouse() *draw.Mousectl       { return nil }
func (d *Display) Attach(ref int) error            { return nil }
func (d *Display) Flush() error                    { return nil }

// AllocImage makes an image of colour val. Replicated images are uniform
// sources of any extent.
func (d *Display) AllocImage(r image.Rectangle, pix draw.Pix, repl bool, val draw.Color) (draw.Image, error) {
	if repl {
		i := d.uniform(val)
		i.r = r
		return i, nil
	}
	i := &Image{d: d, r: r, rgba: image.NewRGBA(r)}
	xdraw.Draw(i.rgba, r, image.NewUniform(rgba(val)), image.Point{}, xdraw.Src)
	return i, nil
}

// OpenFont opens a font by name. "basic" is the 7x13 bitmap font;
// "goregular" or "goregular:size" is Go Regular at size points (13 by
// default) and 72 dpi.
func (d *Display) OpenFont(name string) (draw.Font, error) {
	base, arg, _ := strings.Cut(name, ":")
	switch base {
	case "basic":
		return &Font{name: name, face: basicfont.Face7x13}, nil
	case "goregular":
		size := 13.0
		if arg != "" {
			s, err := strconv.ParseFloat(arg, 64)
			if err != nil || s <= 0 {
				return nil, fmt.Errorf("raster: bad font size in %q", name)
			}
			size = s
		}
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("raster: parsing Go Regular: %w", err)
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("raster: %q: %w", name, err)
		}
		return &Font{name: name, face: face}, nil
	}
	return nil, fmt.Errorf("raster: unknown font %q", name)
}

// RGBA returns the screen image.
func (d *Display) RGBA() *image.RGBA { return d.screen.rgba }

// WritePNG encodes the screen image to w.
func (d *Display) WritePNG(w io.Writer) error {
	return png.Encode(w, d.screen.rgba)
}

func rgba(c draw.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

var _ = draw.Image((*Image)(nil))

// Image is either a pixel buffer or a uniform colour.
type Image struct {
	d    *Display
	r    image.Rectangle
	repl bool
	rgba *image.RGBA
	fill *image.Uniform
}

func (i *Image) Display() draw.Display { return i.d }
func (i *Image) Pix() draw.Pix         { return 0 }
func (i *Image) R() image.Rectangle    { return i.r }
func (i *Image) Free() error           { return nil }

func (i *Image) src() image.Image {
	if i.fill != nil {
		return i.fill
	}
	return i.rgba
}

func toImage(di draw.Image) *Image {
	if di == nil {
		return nil
	}
	return di.(*Image)
}

// Draw composites src through mask onto r. Only pixel images can be drawn
// on.
func (i *Image) Draw(r image.Rectangle, src, mask draw.Image, p1 image.Point) {
	if i.rgba == nil || src == nil {
		return
	}
	s := toImage(src)
	if m := toImage(mask); m != nil {
		xdraw.DrawMask(i.rgba, r, s.src(), p1, m.src(), p1, xdraw.Over)
		return
	}
	xdraw.Draw(i.rgba, r, s.src(), p1, xdraw.Over)
}

// Border draws an n pixel wide outline just inside r.
func (i *Image) Border(r image.Rectangle, n int, color draw.Image, sp image.Point) {
	if n <= 0 {
		return
	}
	i.Draw(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+n), color, nil, sp)
	i.Draw(image.Rect(r.Min.X, r.Max.Y-n, r.Max.X, r.Max.Y), color, nil, sp)
	i.Draw(image.Rect(r.Min.X, r.Min.Y+n, r.Min.X+n, r.Max.Y-n), color, nil, sp)
	i.Draw(image.Rect(r.Max.X-n, r.Min.Y+n, r.Max.X, r.Max.Y-n), color, nil, sp)
}

// String draws s with its top left corner at pt and returns the point
// after the last character.
func (i *Image) String(pt image.Point, src draw.Image, sp image.Point, f draw.Font, s string) image.Point {
	rf := f.(*Font)
	if i.rgba == nil {
		return pt.Add(image.Pt(rf.StringWidth(s), 0))
	}
	dr := font.Drawer{
		Dst:  i.rgba,
		Src:  toImage(src).src(),
		Face: rf.face,
		Dot:  fixed.P(pt.X, pt.Y+rf.ascent()),
	}
	dr.DrawString(s)
	return image.Pt(dr.Dot.X.Round(), pt.Y)
}

var _ = draw.Font((*Font)(nil))

// Font is a draw.Font backed by a font.Face.
type Font struct {
	name string
	face font.Face
}

func (f *Font) Name() string { return f.name }
func (f *Font) Height() int  { return f.face.Metrics().Height.Ceil() }

func (f *Font) ascent() int { return f.face.Metrics().Ascent.Ceil() }

func (f *Font) StringWidth(s string) int {
	return font.MeasureString(f.face, s).Round()
}

func (f *Font) RunesWidth(r []rune) int {
	return f.StringWidth(string(r))
}
