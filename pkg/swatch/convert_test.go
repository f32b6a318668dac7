package swatch

import (
	"testing"

	"github.com/go-drift/keel/pkg/errors"
	"github.com/go-drift/keel/pkg/graphics"
	"github.com/go-drift/keel/pkg/value"
)

func TestConverter_Format(t *testing.T) {
	v := value.Box(Swatch{Name: "ConsoleGreen", Color: graphics.RGB(0, 255, 0)})
	got := Converter{}.Format(v)
	text, err := value.As[string](got)
	if err != nil {
		t.Fatalf("Format did not return a string box: %v", err)
	}
	if text != "ConsoleGreen (#00FF00)" {
		t.Errorf("Format = %q, want %q", text, "ConsoleGreen (#00FF00)")
	}
}

func TestConverter_Format_PassesThroughForeign(t *testing.T) {
	for _, v := range []value.Value{value.Box(42), value.Box("plain text"), value.Null} {
		got := Converter{}.Format(v)
		if !value.Equal(v, got) {
			t.Errorf("Format(%s %s) = %s %s, want input unchanged",
				v.TypeName(), v, got.TypeName(), got)
		}
	}
}

func TestConverter_Scan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Swatch
	}{
		{"hex spec", "ConsoleGreen (#00FF00)", Swatch{"ConsoleGreen", graphics.RGB(0, 255, 0)}},
		{"orange hex", "Orange (#FFA500)", Swatch{"Orange", graphics.RGB(255, 165, 0)}},
		{"palette name spec", "Alert (Orange)", Swatch{"Alert", graphics.RGB(255, 165, 0)}},
		{"lowercase hex", "x (#ffa500)", Swatch{"x", graphics.RGB(255, 165, 0)}},
		{"empty name", " (#00FF00)", Swatch{"", graphics.RGB(0, 255, 0)}},
		{"padded fields", "  Spaced   ( lime )", Swatch{"Spaced", graphics.RGB(0, 255, 0)}},
		{"trailing text ignored", "Orange (#FFA500) leftover", Swatch{"Orange", graphics.RGB(255, 165, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Converter{}.Scan(value.Box(tt.in))
			if err != nil {
				t.Fatalf("Scan(%q) failed: %v", tt.in, err)
			}
			s, err := value.As[Swatch](got)
			if err != nil {
				t.Fatalf("Scan did not return a Swatch box: %v", err)
			}
			if s != tt.want {
				t.Errorf("Scan(%q) = %+v, want %+v", tt.in, s, tt.want)
			}
		})
	}
}

func TestConverter_Scan_Failures(t *testing.T) {
	inputs := []string{
		"Invalid Format Console", // no brackets at all
		"Orange ()",              // empty spec
		"Orange (   )",           // blank spec
		"Orange (#00FF0)",        // five digits
		"Orange (#00FF000)",      // seven digits
		"Orange (notacolor)",     // unknown name
		"Orange (#00FF00",        // no closing bracket
		"Orange )#00FF00(",       // brackets reversed
		"",
	}
	for _, in := range inputs {
		_, err := Converter{}.Scan(value.Box(in))
		if err == nil {
			t.Errorf("Scan(%q) succeeded, want parse failure", in)
			continue
		}
		if !errors.IsParseFailure(err) {
			t.Errorf("Scan(%q) error kind = %v, want parse failure", in, errors.KindOf(err))
		}
	}
}

func TestConverter_Scan_NonString(t *testing.T) {
	for _, v := range []value.Value{value.Box(123), value.Null} {
		_, err := Converter{}.Scan(v)
		if err == nil {
			t.Errorf("Scan(%s) succeeded, want parse failure", v.TypeName())
			continue
		}
		if !errors.IsParseFailure(err) {
			t.Errorf("Scan(%s) error kind = %v, want parse failure", v.TypeName(), errors.KindOf(err))
		}
	}
}

func TestConverter_ScanFormat_RoundTrip(t *testing.T) {
	swatches := []Swatch{
		{Name: "Orange", Color: graphics.RGB(255, 165, 0)},
		{Name: "Lime", Color: graphics.RGB(0, 255, 0)},
		{Name: "OffPalette", Color: graphics.RGB(1, 2, 3)},
	}
	c := Converter{}
	for _, in := range swatches {
		formatted := c.Format(value.Box(in))
		back, err := c.Scan(formatted)
		if err != nil {
			t.Fatalf("Scan(Format(%+v)) failed: %v", in, err)
		}
		got, err := value.As[Swatch](back)
		if err != nil {
			t.Fatalf("round trip did not return a Swatch: %v", err)
		}
		if got != in {
			t.Errorf("round trip = %+v, want %+v", got, in)
		}
	}
}

func TestConverter_CustomPalette(t *testing.T) {
	p := graphics.DefaultPalette().With("ConsoleAmber", graphics.RGB(0xFF, 0xB0, 0x00))
	c := Converter{Palette: p}

	got, err := c.Scan(value.Box("Warn (ConsoleAmber)"))
	if err != nil {
		t.Fatalf("Scan with custom palette failed: %v", err)
	}
	s := value.MustAs[Swatch](got)
	if s.Color != graphics.RGB(0xFF, 0xB0, 0x00) {
		t.Errorf("scanned color = %s, want #FFB000", s.Color.Hex())
	}

	// The default-palette converter must not know the custom name.
	if _, err := (Converter{}).Scan(value.Box("Warn (ConsoleAmber)")); err == nil {
		t.Error("default converter resolved a custom palette name")
	}
}

func TestConverter_Filter(t *testing.T) {
	v := value.Box("anything")
	if got := (Converter{}).Filter(v); !value.Equal(v, got) {
		t.Errorf("Filter changed the value: %s -> %s", v, got)
	}
}
