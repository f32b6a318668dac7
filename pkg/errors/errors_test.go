package errors

import (
	"fmt"
	"testing"
)

func TestKeelErrorString(t *testing.T) {
	err := &KeelError{
		Op:   "stream.ReadFile",
		Kind: KindIO,
		Err:  fmt.Errorf("file does not exist"),
	}
	got := err.Error()
	want := "stream.ReadFile [io]: file does not exist"
	if got != want {
		t.Errorf("KeelError.Error() = %q, want %q", got, want)
	}
}

func TestKeelErrorStringNoOp(t *testing.T) {
	err := &KeelError{
		Kind: KindParseFailure,
		Err:  fmt.Errorf("missing bracket"),
	}
	got := err.Error()
	want := "[parse failure]: missing bracket"
	if got != want {
		t.Errorf("KeelError.Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindTypeMismatch, "type mismatch"},
		{KindMalformedData, "malformed data"},
		{KindParseFailure, "parse failure"},
		{KindIO, "io"},
		{KindConfig, "config"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("inner failure")
	err := E("value.As", KindTypeMismatch, inner)
	ke, ok := err.(*KeelError)
	if !ok {
		t.Fatalf("E() returned %T, want *KeelError", err)
	}
	if ke.Unwrap() != inner {
		t.Errorf("Unwrap() = %v, want %v", ke.Unwrap(), inner)
	}
}

func TestKindOf(t *testing.T) {
	err := E("convert.Scan", KindParseFailure, fmt.Errorf("no opening bracket"))
	if got := KindOf(err); got != KindParseFailure {
		t.Errorf("KindOf() = %v, want %v", got, KindParseFailure)
	}

	// The kind should survive wrapping with fmt.Errorf.
	wrapped := fmt.Errorf("scanning row 3: %w", err)
	if got := KindOf(wrapped); got != KindParseFailure {
		t.Errorf("KindOf(wrapped) = %v, want %v", got, KindParseFailure)
	}

	if got := KindOf(fmt.Errorf("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want %v", got, KindUnknown)
	}

	if got := KindOf(nil); got != KindUnknown {
		t.Errorf("KindOf(nil) = %v, want %v", got, KindUnknown)
	}
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{"type mismatch", E("value.As", KindTypeMismatch, fmt.Errorf("held int")), IsTypeMismatch, true},
		{"malformed data", E("stream.Read", KindMalformedData, fmt.Errorf("short chunk")), IsMalformedData, true},
		{"parse failure", E("convert.Scan", KindParseFailure, fmt.Errorf("bad spec")), IsParseFailure, true},
		{"io", E("stream.WriteFile", KindIO, fmt.Errorf("disk full")), IsIO, true},
		{"wrong predicate", E("stream.WriteFile", KindIO, fmt.Errorf("disk full")), IsParseFailure, false},
		{"plain error", fmt.Errorf("plain"), IsTypeMismatch, false},
	}
	for _, tt := range tests {
		if got := tt.pred(tt.err); got != tt.want {
			t.Errorf("%s: predicate = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf("graphics.ParseColor", KindParseFailure, "unknown name %q", "Turqoise")
	got := err.Error()
	want := `graphics.ParseColor [parse failure]: unknown name "Turqoise"`
	if got != want {
		t.Errorf("Errorf().Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value: "test panic",
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:    "parallel.Partition",
		Value: "test panic",
	}
	got := err.Error()
	want := "panic in parallel.Partition: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestTrap(t *testing.T) {
	run := func() (err error) {
		defer Trap("test.trap", &err)
		panic("intentional test panic")
	}
	err := run()
	if err == nil {
		t.Fatal("expected panic to be trapped as error")
	}
	pe, ok := err.(*PanicError)
	if !ok {
		t.Fatalf("trapped error is %T, want *PanicError", err)
	}
	if pe.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", pe.Value, "intentional test panic")
	}
	if pe.Op != "test.trap" {
		t.Errorf("Op = %q, want %q", pe.Op, "test.trap")
	}
	if pe.StackTrace == "" {
		t.Error("expected non-empty stack trace")
	}
}

func TestTrapNoPanic(t *testing.T) {
	run := func() (err error) {
		defer Trap("test.trap", &err)
		return nil
	}
	if err := run(); err != nil {
		t.Errorf("Trap overwrote nil error: %v", err)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	// Stack should contain some runtime info (either test function or testing infrastructure)
	if !contains(stack, "testing") && !contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(s) > 0 && containsAt(s, substr, 0))
}

func containsAt(s, substr string, start int) bool {
	for i := start; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
