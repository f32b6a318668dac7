package display

import (
	"testing"

	"github.com/go-drift/keel/pkg/graphics"
	"github.com/go-drift/keel/pkg/value"
)

func TestStd_Paint(t *testing.T) {
	var rec Recorder
	r := graphics.RectFromLTWH(10, 0, 100, 20)
	Std{}.Paint(&rec, r, value.Box("hello"), graphics.ColorBlack, graphics.ColorWhite, 0)

	ops := rec.Ops()
	if len(ops) != 2 {
		t.Fatalf("recorded %d ops, want 2", len(ops))
	}
	if ops[0].Op != "fillRect" {
		t.Errorf("first op = %q, want fillRect", ops[0].Op)
	}
	if got := ops[0].Params["color"]; got != "0xFFFFFFFF" {
		t.Errorf("fill color = %v, want 0xFFFFFFFF", got)
	}
	if ops[1].Op != "drawText" {
		t.Errorf("second op = %q, want drawText", ops[1].Op)
	}
	if got := ops[1].Params["text"]; got != "hello" {
		t.Errorf("text = %v, want hello", got)
	}
	// Text is inset from the region's left edge.
	if got := ops[1].Params["x"]; got != float64(10+textInset) {
		t.Errorf("text x = %v, want %v", got, float64(10+textInset))
	}
}

func TestStd_Paint_Null(t *testing.T) {
	var rec Recorder
	r := graphics.RectFromLTWH(0, 0, 50, 20)
	Std{}.Paint(&rec, r, value.Null, graphics.ColorBlack, graphics.ColorWhite, 0)

	ops := rec.Ops()
	if len(ops) != 1 {
		t.Fatalf("recorded %d ops, want only the background fill", len(ops))
	}
	if ops[0].Op != "fillRect" {
		t.Errorf("op = %q, want fillRect", ops[0].Op)
	}
}

func TestRecorder_Reset(t *testing.T) {
	var rec Recorder
	rec.FillRect(graphics.RectFromLTWH(0, 0, 1, 1), graphics.ColorRed)
	if len(rec.Ops()) != 1 {
		t.Fatalf("recorded %d ops, want 1", len(rec.Ops()))
	}
	rec.Reset()
	if len(rec.Ops()) != 0 {
		t.Errorf("Reset left %d ops", len(rec.Ops()))
	}
}
