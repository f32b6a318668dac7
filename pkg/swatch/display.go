package swatch

import (
	"github.com/go-drift/keel/pkg/display"
	"github.com/go-drift/keel/pkg/graphics"
	"github.com/go-drift/keel/pkg/value"
)

// boxPad is the gap between the color box and the name text.
const boxPad = 4

var _ display.Display = Display{}

// Display paints a Swatch as a filled color box beside its name.
// Values that do not hold a Swatch are delegated to Fallback.
type Display struct {
	// Fallback paints non-Swatch values; display.Std applies when nil.
	Fallback display.Display
}

// Paint fills the region with paper, draws a square color box sized to
// the region height at the left edge, and the swatch's name after it.
func (d Display) Paint(c display.Canvas, r graphics.Rect, v value.Value, ink, paper graphics.Color, style display.Style) {
	if !value.Is[Swatch](v) {
		fb := d.Fallback
		if fb == nil {
			fb = display.Std{}
		}
		fb.Paint(c, r, v, ink, paper, style)
		return
	}
	s := value.MustAs[Swatch](v)

	c.FillRect(r, paper)
	box := r
	box.Right = r.Left + r.Height()
	c.FillRect(box, s.Color)
	c.DrawText(graphics.Offset{X: box.Right + boxPad, Y: r.Top}, s.Name, ink)
}
