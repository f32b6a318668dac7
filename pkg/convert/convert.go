// Package convert defines the adapter contract between boxed values and
// their text forms.
//
// A Converter owns one presentation grammar. Format renders boxed values
// it covers into string boxes and passes foreign values through
// untouched, so converters compose in front of generic fallbacks. Scan
// is the inverse direction and fails explicitly: text that does not
// match the grammar produces a parse failure error, never a partially
// populated value.
package convert

import (
	"github.com/go-drift/keel/pkg/value"
)

// Converter adapts values between their boxed and textual forms.
type Converter interface {
	// Format renders v for presentation. Implementations return a
	// string box for the types they cover and the input unchanged for
	// everything else. Format never fails.
	Format(v value.Value) value.Value

	// Scan parses a string-boxed v into a typed value. Text outside
	// the implementation's grammar fails with a parse failure error
	// and never yields a partial record.
	Scan(v value.Value) (value.Value, error)

	// Filter adjusts a value during interactive editing. Implementations
	// without editing rules return the input unchanged.
	Filter(v value.Value) value.Value
}

// Std is the default converter: Format renders any value with its
// String form, Scan and Filter pass values through unchanged.
type Std struct{}

// Format returns a string box holding v's text form; Null formats as
// the empty string.
func (Std) Format(v value.Value) value.Value {
	if v.IsNull() {
		return value.Box("")
	}
	return value.Box(v.String())
}

// Scan returns v unchanged.
func (Std) Scan(v value.Value) (value.Value, error) {
	return v, nil
}

// Filter returns v unchanged.
func (Std) Filter(v value.Value) value.Value {
	return v
}

// FormatString formats v with c and returns the resulting text.
// When c's Format passed v through instead of covering it, the value's
// own String form is returned.
func FormatString(c Converter, v value.Value) string {
	f := c.Format(v)
	if s, err := value.As[string](f); err == nil {
		return s
	}
	return f.String()
}
