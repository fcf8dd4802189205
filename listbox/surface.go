package listbox

import (
	"image"

	"github.com/rjkroege/collist/column"
	"github.com/rjkroege/collist/draw"
)

// printable is the character set averaged for the average character width.
const printable = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// CharMetrics derives the character width statistics of f: the average
// advance over printable ASCII, rounded, the widest printable ASCII
// character and the font height as the baseline extent.
func CharMetrics(f draw.Font) column.Metrics {
	n := len(printable)
	m := column.Metrics{
		AveCharWidth:   (f.StringWidth(printable) + n/2) / n,
		MaxBaselineExt: f.Height(),
	}
	for _, r := range printable {
		if w := f.RunesWidth([]rune{r}); w > m.MaxCharInc {
			m.MaxCharInc = w
		}
	}
	return m
}

// surface is the column.Surface of a List: its screen image with the
// list's font and colours.
type surface struct {
	dst  draw.Image
	font draw.Font
	back draw.Image
	text draw.Image
}

var _ = column.Surface((*surface)(nil))

func (s *surface) FontMetrics() (column.Metrics, error) {
	return CharMetrics(s.font), nil
}

// DrawText draws str in r. Without VCenter the run sits at the top of r.
func (s *surface) DrawText(str string, r image.Rectangle, fl column.TextFlags) error {
	if r.Empty() {
		return nil
	}
	if fl&column.EraseRect != 0 {
		s.dst.Draw(r, s.back, nil, image.ZP)
	}
	pt := r.Min
	if fl&column.VCenter != 0 {
		pt.Y += (r.Dy() - s.font.Height()) / 2
	}
	if str != "" {
		s.dst.String(pt, s.text, image.ZP, s.font, str)
	}
	return nil
}
