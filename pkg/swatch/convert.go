package swatch

import (
	"strings"

	"github.com/go-drift/keel/pkg/convert"
	"github.com/go-drift/keel/pkg/errors"
	"github.com/go-drift/keel/pkg/graphics"
	"github.com/go-drift/keel/pkg/value"
)

var _ convert.Converter = Converter{}

// Converter implements convert.Converter for Swatch values.
//
// Format renders boxed swatches as "<name> (<hex>)" and passes foreign
// values through untouched. Scan parses that grammar back, resolving
// the color spec against the configured palette.
type Converter struct {
	// Palette resolves color names during Scan; the default palette
	// applies when empty.
	Palette graphics.Palette
}

func (c Converter) palette() graphics.Palette {
	if c.Palette.Empty() {
		return graphics.DefaultPalette()
	}
	return c.Palette
}

// Format returns a string box holding the swatch's text form. Values
// that do not hold a Swatch are returned unchanged.
func (c Converter) Format(v value.Value) value.Value {
	if !value.Is[Swatch](v) {
		return v
	}
	return value.Box(value.MustAs[Swatch](v).String())
}

// Scan parses a string-boxed "<name> (<color-spec>)" into a boxed
// Swatch.
//
// The name is the trimmed text before the first '('; the spec is the
// trimmed span between that '(' and the first ')' in the input, and
// must be a palette name or a six-digit hex literal. An empty name is
// legal, an empty or blank spec is not. Text after the ')' is ignored.
// Anything else, including non-string input, fails with a parse failure
// error; Scan never returns a partially populated swatch.
func (c Converter) Scan(v value.Value) (value.Value, error) {
	const op = "swatch.Scan"
	text, err := value.As[string](v)
	if err != nil {
		return value.Value{}, errors.Errorf(op, errors.KindParseFailure,
			"expected text, got %s", v.TypeName())
	}
	obracket := strings.IndexByte(text, '(')
	cbracket := strings.IndexByte(text, ')')
	if obracket < 0 || cbracket <= obracket+1 {
		return value.Value{}, errors.Errorf(op, errors.KindParseFailure,
			"input %q does not match \"name (color)\"", text)
	}
	name := strings.TrimSpace(text[:obracket])
	spec := strings.TrimSpace(text[obracket+1 : cbracket])
	color, err := c.palette().Parse(spec)
	if err != nil {
		return value.Value{}, err
	}
	return value.Box(Swatch{Name: name, Color: color}), nil
}

// Filter returns v unchanged.
func (c Converter) Filter(v value.Value) value.Value {
	return v
}
