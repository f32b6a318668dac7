package graphics

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/go-drift/keel/pkg/errors"
)

// Palette is an ordered color vocabulary mapping names to colors.
// Name lookups are case-insensitive; reverse lookups walk the names in
// insertion order, so the first registered name for a color wins.
// The zero Palette is empty and usable; With derives extended copies,
// the receiver is never modified.
type Palette struct {
	names  []string
	byName map[string]Color
}

// With returns a copy of the palette with name bound to c.
// Rebinding an existing name replaces its color and keeps its position.
func (p Palette) With(name string, c Color) Palette {
	key := strings.ToLower(strings.TrimSpace(name))
	np := Palette{
		names:  make([]string, len(p.names), len(p.names)+1),
		byName: make(map[string]Color, len(p.byName)+1),
	}
	copy(np.names, p.names)
	for k, v := range p.byName {
		np.byName[k] = v
	}
	if _, exists := np.byName[key]; !exists {
		np.names = append(np.names, strings.TrimSpace(name))
	}
	np.byName[key] = c
	return np
}

// Parse resolves a color spec against the palette: either a color name
// (case-insensitive) or a '#' followed by exactly six hexadecimal digits.
// Surrounding whitespace is ignored. Blank input and unknown specs fail
// with a parse failure error.
func (p Palette) Parse(s string) (Color, error) {
	const op = "graphics.ParseColor"
	text := strings.TrimSpace(s)
	if text == "" {
		return 0, errors.Errorf(op, errors.KindParseFailure, "empty color spec")
	}
	if strings.HasPrefix(text, "#") {
		digits := text[1:]
		if len(digits) != 6 {
			return 0, errors.Errorf(op, errors.KindParseFailure,
				"hex color %q must have exactly six digits", text)
		}
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return 0, errors.Errorf(op, errors.KindParseFailure,
				"invalid hex digit in %q", text)
		}
		return Color(0xFF000000 | uint32(v)), nil
	}
	if c, ok := p.byName[strings.ToLower(text)]; ok {
		return c, nil
	}
	return 0, errors.Errorf(op, errors.KindParseFailure, "unknown color name %q", text)
}

// NameOf returns the first palette name bound exactly to c.
func (p Palette) NameOf(c Color) (string, bool) {
	for _, name := range p.names {
		if p.byName[strings.ToLower(name)] == c {
			return name, true
		}
	}
	return "", false
}

// Contains reports whether the palette knows name.
func (p Palette) Contains(name string) bool {
	_, ok := p.byName[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Names returns the palette names in insertion order.
func (p Palette) Names() []string {
	return append([]string(nil), p.names...)
}

// Len returns the number of names in the palette.
func (p Palette) Len() int {
	return len(p.names)
}

// Empty reports whether the palette has no names.
func (p Palette) Empty() bool {
	return len(p.names) == 0
}

var defaultPalette Palette

func init() {
	byName := make(map[string]Color, len(colornames.Names))
	names := make([]string, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		byName[name] = RGB(c.R, c.G, c.B)
		names = append(names, name)
	}
	defaultPalette = Palette{names: names, byName: byName}
}

// DefaultPalette returns the shared palette holding the SVG 1.1 color
// vocabulary. The palette is immutable; derive from it with With.
func DefaultPalette() Palette {
	return defaultPalette
}

// ParseColor parses a color spec against the default palette.
func ParseColor(s string) (Color, error) {
	return DefaultPalette().Parse(s)
}
