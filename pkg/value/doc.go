// Package value provides a typed container for passing record values
// through uniform surfaces.
//
// A Value carries one payload together with its exact Go type. Code that
// moves values around (converters, displays, maps, wire codecs) handles
// the container without knowing the payload type; code that consumes a
// payload states the type it expects and either gets a copy or a type
// mismatch error. The zero Value is Null and is a legal, inert payload.
//
// # Boxing And Extraction
//
// Box copies a record into a container, Is tests the boxed type, and As
// copies it back out:
//
//	v := value.Box(Swatch{Name: "Lime", Color: lime})
//	if value.Is[Swatch](v) {
//	    s, _ := value.As[Swatch](v)
//	    ...
//	}
//
// As never returns a partially usable payload: on a type mismatch it
// returns the zero value of the requested type and an error. Boxing an
// existing Value returns it unchanged, so containers never nest.
//
// # Registries
//
// A Registry names value types and assigns them dense numeric ids in
// registration order. Registering a stream codec pair with RegisterCodec
// makes the type eligible for polymorphic serialization: WriteValue
// writes the id followed by the payload, ReadValue dispatches on the id
// to rebuild the boxed value. Registries are explicit objects wired
// through constructors; there is no package-global registration.
//
// # Ordered Maps
//
// Map is a string-keyed collection of Values that preserves insertion
// order, giving demos and serialized forms a deterministic layout.
package value
