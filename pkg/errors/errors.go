// Package errors provides structured error handling for the Keel library.
package errors

import (
	"fmt"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindTypeMismatch indicates a typed extraction from a value box
	// holding a different type.
	KindTypeMismatch
	// KindMalformedData indicates structurally invalid serialized data.
	KindMalformedData
	// KindParseFailure indicates text that does not match an expected grammar.
	KindParseFailure
	// KindIO indicates a failure in the underlying reader, writer or file system.
	KindIO
	// KindConfig indicates an invalid or unresolvable configuration.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindTypeMismatch:
		return "type mismatch"
	case KindMalformedData:
		return "malformed data"
	case KindParseFailure:
		return "parse failure"
	case KindIO:
		return "io"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// KeelError represents a structured error in the Keel library.
type KeelError struct {
	// Op is the operation that failed (e.g., "stream.ReadFile").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *KeelError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("[%s]: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *KeelError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches e for the purposes of errors.Is.
// A *KeelError target matches when the kinds are equal and, when the
// target carries an Op, the ops are equal too. This lets callers test
// for a category with errors.Is(err, &KeelError{Kind: KindIO}).
func (e *KeelError) Is(target error) bool {
	t, ok := target.(*KeelError)
	if !ok {
		return false
	}
	if t.Op != "" && t.Op != e.Op {
		return false
	}
	return t.Kind == e.Kind
}

// E constructs a *KeelError from an operation, a kind and an underlying error.
func E(op string, kind ErrorKind, err error) error {
	return &KeelError{Op: op, Kind: kind, Err: err}
}

// Errorf constructs a *KeelError whose underlying error is built with
// fmt.Errorf.
func Errorf(op string, kind ErrorKind, format string, args ...any) error {
	return &KeelError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf walks the Unwrap chain of err and returns the kind of the first
// *KeelError it finds, or KindUnknown if there is none.
func KindOf(err error) ErrorKind {
	for err != nil {
		if e, ok := err.(*KeelError); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return KindUnknown
		}
		err = u.Unwrap()
	}
	return KindUnknown
}

// IsTypeMismatch reports whether err is categorized as a type mismatch.
func IsTypeMismatch(err error) bool {
	return KindOf(err) == KindTypeMismatch
}

// IsMalformedData reports whether err is categorized as malformed data.
func IsMalformedData(err error) bool {
	return KindOf(err) == KindMalformedData
}

// IsParseFailure reports whether err is categorized as a parse failure.
func IsParseFailure(err error) bool {
	return KindOf(err) == KindParseFailure
}

// IsIO reports whether err is categorized as an io failure.
func IsIO(err error) bool {
	return KindOf(err) == KindIO
}

// IsConfig reports whether err is categorized as a configuration error.
func IsConfig(err error) bool {
	return KindOf(err) == KindConfig
}
