// Package swatch provides a named-color record together with its text
// and paint adapters.
//
// A Swatch pairs a display name with a color. Its text form is
// "<name> (<color-spec>)", where the spec is a hex literal on output
// and either a hex literal or a palette name on input. The package
// wires the record through the value, convert, display and stream
// surfaces, serving as the worked example for registering a record
// type end to end.
package swatch

import (
	"fmt"

	"github.com/go-drift/keel/pkg/graphics"
	"github.com/go-drift/keel/pkg/stream"
	"github.com/go-drift/keel/pkg/value"
)

// Swatch is a named color. The zero Swatch is an unnamed opaque black.
type Swatch struct {
	Name  string
	Color graphics.Color
}

// String renders the swatch as "<name> (<hex>)". The hex spelling keeps
// the output inside the grammar Scan accepts, whatever the palette.
func (s Swatch) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Color.Hex())
}

// MarshalStream writes the name, then the color.
func (s Swatch) MarshalStream(w *stream.Writer) error {
	w.WriteString(s.Name)
	w.WriteUint32(uint32(s.Color))
	return w.Err()
}

// UnmarshalStream reads the name, then the color.
func (s *Swatch) UnmarshalStream(r *stream.Reader) error {
	s.Name = r.ReadString()
	s.Color = graphics.Color(r.ReadUint32())
	return r.Err()
}

// Register binds the Swatch stream codec into reg under the name
// "Swatch", making boxed swatches eligible for polymorphic
// serialization.
func Register(reg *value.Registry) error {
	return value.RegisterCodec(reg, "Swatch",
		func(w *stream.Writer, s Swatch) error {
			return s.MarshalStream(w)
		},
		func(r *stream.Reader) (Swatch, error) {
			var s Swatch
			err := s.UnmarshalStream(r)
			return s, err
		})
}
