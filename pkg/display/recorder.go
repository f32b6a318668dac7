package display

import (
	"fmt"
	"math"

	"github.com/go-drift/keel/pkg/graphics"
)

// Op represents one recorded canvas operation.
type Op struct {
	Op     string
	Params map[string]any
}

// Recorder implements Canvas and records operations instead of drawing,
// for tests and headless inspection.
type Recorder struct {
	ops []Op
}

// FillRect records a fillRect operation.
func (c *Recorder) FillRect(rect graphics.Rect, color graphics.Color) {
	c.ops = append(c.ops, Op{
		Op:     "fillRect",
		Params: params("rect", serializeRect(rect), "color", serializeColor(color)),
	})
}

// DrawText records a drawText operation.
func (c *Recorder) DrawText(pos graphics.Offset, text string, color graphics.Color) {
	c.ops = append(c.ops, Op{
		Op: "drawText",
		Params: params(
			"x", round2(pos.X),
			"y", round2(pos.Y),
			"text", text,
			"color", serializeColor(color),
		),
	})
}

// Ops returns the recorded operations in paint order.
func (c *Recorder) Ops() []Op {
	return c.ops
}

// Reset discards the recorded operations.
func (c *Recorder) Reset() {
	c.ops = nil
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return params(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// params creates a map from alternating key-value pairs.
func params(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
