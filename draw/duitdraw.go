//go:build duitdraw || windows
// +build duitdraw windows

package draw

import (
	draw "github.com/ktye/duitdraw"
)

const (
	Refnone = draw.Refnone

	Medblue       = draw.Medblue
	Notacolor     = draw.Notacolor
	Palebluegreen = draw.Palebluegreen
	Paleyellow    = draw.Paleyellow
	White         = draw.White

	Black Color = 0x000000FF
)

type (
	Color       = draw.Color
	drawDisplay = draw.Display
	drawFont    = draw.Font
	drawImage   = draw.Image
	Keyboardctl = draw.Keyboardctl
	Mousectl    = draw.Mousectl
	Mouse       = draw.Mouse
	Pix         = draw.Pix
)

// RunesWidth goes through StringWidth: duitdraw fonts only measure strings.
func (f *fontImpl) RunesWidth(r []rune) int { return f.drawFont.StringWidth(string(r)) }

var Init = draw.Init

func Main(f func(*Device)) {
	f(new(Device))
}

type Device struct{}

func (dev *Device) NewDisplay(errch chan<- error, fontname, label, winsize string) (Display, error) {
	d, err := Init(errch, fontname, label, winsize)
	if err != nil {
		return nil, err
	}
	return &displayImpl{d}, nil
}
