package value

import (
	"fmt"
	"reflect"

	"github.com/go-drift/keel/pkg/errors"
)

// Value is a typed container holding one payload and its exact Go type.
// The zero Value is Null.
type Value struct {
	typ reflect.Type
	box any
}

// Null is the empty Value.
var Null Value

// Box copies rec into a Value tagged with its type.
//
// Boxing a Value returns it unchanged, so containers never nest. When T
// is an interface type the payload is tagged with its dynamic type, and
// a nil interface boxes to Null.
func Box[T any](rec T) Value {
	if v, ok := any(rec).(Value); ok {
		return v
	}
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Kind() == reflect.Interface {
		rv := reflect.ValueOf(rec)
		if !rv.IsValid() {
			return Value{}
		}
		typ = rv.Type()
	}
	return Value{typ: typ, box: rec}
}

// IsNull reports whether v holds no payload.
func (v Value) IsNull() bool {
	return v.typ == nil
}

// Type returns the boxed type, or nil for Null.
func (v Value) Type() reflect.Type {
	return v.typ
}

// TypeName returns the boxed type's name, or "<null>".
func (v Value) TypeName() string {
	if v.typ == nil {
		return "<null>"
	}
	return v.typ.String()
}

// String renders the payload for humans: a fmt.Stringer payload is asked
// directly, anything else goes through fmt. Null renders as "<null>".
func (v Value) String() string {
	if v.typ == nil {
		return "<null>"
	}
	if s, ok := v.box.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v.box)
}

// Is reports whether v holds exactly the type T.
func Is[T any](v Value) bool {
	return v.typ == reflect.TypeOf((*T)(nil)).Elem()
}

// As copies the payload out of v. If v does not hold exactly the type T,
// it returns T's zero value and a type mismatch error; Null never
// extracts.
func As[T any](v Value) (T, error) {
	if v.typ == reflect.TypeOf((*T)(nil)).Elem() {
		return v.box.(T), nil
	}
	var zero T
	return zero, errors.Errorf("value.As", errors.KindTypeMismatch,
		"value holds %s, not %s", v.TypeName(), reflect.TypeOf((*T)(nil)).Elem())
}

// MustAs is like As but panics on a type mismatch.
func MustAs[T any](v Value) T {
	rec, err := As[T](v)
	if err != nil {
		panic(err)
	}
	return rec
}

// Equal reports whether a and b hold the same type and equal payloads.
// Payloads are compared with reflect.DeepEqual.
func Equal(a, b Value) bool {
	if a.typ != b.typ {
		return false
	}
	return reflect.DeepEqual(a.box, b.box)
}
