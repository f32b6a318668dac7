// Package display defines the paint adapter contract for presenting
// boxed values on a drawing surface.
//
// A Display knows how to render one family of value types inside a
// rectangular region. The Canvas interface it paints against is the
// minimal surface needed for that job; frontends supply a real drawing
// backend, tests use the Recorder. No drawing backend is part of this
// package.
package display

import (
	"github.com/go-drift/keel/pkg/convert"
	"github.com/go-drift/keel/pkg/graphics"
	"github.com/go-drift/keel/pkg/value"
)

// textInset is the gap between the region's left edge and painted text.
const textInset = 2

// Canvas is the drawing surface a Display paints against.
type Canvas interface {
	// FillRect fills rect with a solid color.
	FillRect(rect graphics.Rect, color graphics.Color)

	// DrawText draws text anchored at pos with the given color.
	DrawText(pos graphics.Offset, text string, color graphics.Color)
}

// Style carries presentation state bits passed down by interactive
// frontends. Displays may ignore them.
type Style uint32

const (
	// StyleCursor marks the cell under the cursor.
	StyleCursor Style = 1 << iota
	// StyleSelected marks a selected cell.
	StyleSelected
	// StyleReadOnly marks a read-only cell.
	StyleReadOnly
	// StyleFocus marks the focused region.
	StyleFocus
)

// Display presents one boxed value inside a region of a canvas.
type Display interface {
	// Paint renders v inside r. ink is the foreground color and paper
	// the background; style carries presentation state bits.
	Paint(c Canvas, r graphics.Rect, v value.Value, ink, paper graphics.Color, style Style)
}

// Std paints any value as text over a filled background, using a
// converter for the text form.
type Std struct {
	// Converter renders the value's text; convert.Std applies when nil.
	Converter convert.Converter
}

// Paint fills the region with paper and draws the value's formatted
// text in ink, inset from the left edge. Values formatting to the empty
// string (Null among them) paint only the background.
func (d Std) Paint(c Canvas, r graphics.Rect, v value.Value, ink, paper graphics.Color, style Style) {
	c.FillRect(r, paper)
	conv := d.Converter
	if conv == nil {
		conv = convert.Std{}
	}
	text := convert.FormatString(conv, v)
	if text == "" {
		return
	}
	c.DrawText(graphics.Offset{X: r.Left + textInset, Y: r.Top}, text, ink)
}
