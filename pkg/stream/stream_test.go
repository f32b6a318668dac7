package stream

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/go-drift/keel/pkg/errors"
)

// profile is the canonical two-field record fixture.
type profile struct {
	Name  string
	Value int
}

func (p *profile) MarshalStream(w *Writer) error {
	w.WriteString(p.Name)
	w.WriteInt(p.Value)
	return w.Err()
}

func (p *profile) UnmarshalStream(r *Reader) error {
	p.Name = r.ReadString()
	p.Value = r.ReadInt()
	return r.Err()
}

// allTypes exercises every field codec.
type allTypes struct {
	S   string
	B   []byte
	OK  bool
	I   int
	I64 int64
	U32 uint32
	U64 uint64
	F   float64
}

func (a *allTypes) MarshalStream(w *Writer) error {
	w.WriteString(a.S)
	w.WriteBytes(a.B)
	w.WriteBool(a.OK)
	w.WriteInt(a.I)
	w.WriteInt64(a.I64)
	w.WriteUint32(a.U32)
	w.WriteUint64(a.U64)
	w.WriteFloat64(a.F)
	return w.Err()
}

func (a *allTypes) UnmarshalStream(r *Reader) error {
	a.S = r.ReadString()
	a.B = r.ReadBytes()
	a.OK = r.ReadBool()
	a.I = r.ReadInt()
	a.I64 = r.ReadInt64()
	a.U32 = r.ReadUint32()
	a.U64 = r.ReadUint64()
	a.F = r.ReadFloat64()
	return r.Err()
}

func TestRoundTrip(t *testing.T) {
	in := profile{Name: "TestObject", Value: 123}
	data, err := Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var out profile
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestRoundTrip_AllTypes(t *testing.T) {
	in := allTypes{
		S:   "hello",
		B:   []byte{1, 2, 3},
		OK:  true,
		I:   -42,
		I64: math.MinInt64,
		U32: math.MaxUint32,
		U64: math.MaxUint64,
		F:   3.14159,
	}
	data, err := Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var out allTypes
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out.S != in.S || !bytes.Equal(out.B, in.B) || out.OK != in.OK ||
		out.I != in.I || out.I64 != in.I64 || out.U32 != in.U32 ||
		out.U64 != in.U64 || out.F != in.F {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestRoundTrip_ZeroRecord(t *testing.T) {
	var in profile
	data, err := Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	out := profile{Name: "dirty", Value: -1}
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want zero record", out)
	}
}

func TestUnmarshal_TrailingBytesIgnored(t *testing.T) {
	in := profile{Name: "TestObject", Value: 123}
	data, err := Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	data = append(data, 0xDE, 0xAD)
	var out profile
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal with trailing bytes failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestUnmarshal_Truncated(t *testing.T) {
	in := profile{Name: "TestObject", Value: 123}
	data, err := Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, n := range []int{0, 1, len(data) - 1} {
		var out profile
		err := Unmarshal(data[:n], &out)
		if err == nil {
			t.Errorf("Unmarshal of %d/%d bytes succeeded, want failure", n, len(data))
			continue
		}
		if !errors.IsMalformedData(err) {
			t.Errorf("truncated at %d: error kind = %v, want malformed data", n, errors.KindOf(err))
		}
	}
}

func TestUnmarshal_LengthPoisoned(t *testing.T) {
	data := binary.AppendUvarint(nil, uint64(MaxLen)+1)
	var out profile
	err := Unmarshal(data, &out)
	if err == nil {
		t.Fatal("Unmarshal of poisoned length succeeded, want failure")
	}
	if !errors.IsMalformedData(err) {
		t.Errorf("error kind = %v, want malformed data", errors.KindOf(err))
	}
}

func TestUnmarshal_VarintOverflow(t *testing.T) {
	data := append(bytes.Repeat([]byte{0xFF}, 9), 0x7F)
	var out profile
	err := Unmarshal(data, &out)
	if err == nil {
		t.Fatal("Unmarshal of overflowing varint succeeded, want failure")
	}
	if !errors.IsMalformedData(err) {
		t.Errorf("error kind = %v, want malformed data", errors.KindOf(err))
	}
}

func TestReader_InvalidBool(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x07}))
	r.ReadBool()
	if r.Err() == nil {
		t.Fatal("ReadBool(0x07) succeeded, want malformed data")
	}
	if !errors.IsMalformedData(r.Err()) {
		t.Errorf("error kind = %v, want malformed data", errors.KindOf(r.Err()))
	}
}

func TestReader_Uint32Overflow(t *testing.T) {
	data := binary.AppendUvarint(nil, uint64(math.MaxUint32)+1)
	r := NewReader(bytes.NewReader(data))
	r.ReadUint32()
	if !errors.IsMalformedData(r.Err()) {
		t.Errorf("error kind = %v, want malformed data", errors.KindOf(r.Err()))
	}
}

func TestReader_ZeroAfterError(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	if got := r.ReadString(); got != "" {
		t.Errorf("ReadString on empty input = %q, want empty", got)
	}
	first := r.Err()
	if first == nil {
		t.Fatal("expected error after reading empty input")
	}
	if got := r.ReadInt(); got != 0 {
		t.Errorf("ReadInt after error = %d, want 0", got)
	}
	if got := r.ReadBool(); got {
		t.Error("ReadBool after error = true, want false")
	}
	if r.Err() != first {
		t.Errorf("Err changed after first failure: %v, want %v", r.Err(), first)
	}
}

// errWriter fails every write.
type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("boom")
}

func TestWriter_StickyError(t *testing.T) {
	w := NewWriter(errWriter{})
	w.WriteString("TestObject")
	first := w.Err()
	if first == nil {
		t.Fatal("expected write error")
	}
	if !errors.IsIO(first) {
		t.Errorf("error kind = %v, want io", errors.KindOf(first))
	}
	w.WriteInt(123)
	w.WriteFloat64(1.5)
	if w.Err() != first {
		t.Errorf("Err changed after first failure: %v, want %v", w.Err(), first)
	}
}

func TestWriteRead_Stream(t *testing.T) {
	var buf bytes.Buffer
	in := profile{Name: "TestObject", Value: 123}
	if err := Write(&buf, &in); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	var out profile
	if err := Read(&buf, &out); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestMarshal_PropagatesRecordError(t *testing.T) {
	rec := failingRecord{}
	if _, err := Marshal(rec); err == nil {
		t.Error("Marshal of failing record succeeded, want error")
	}
}

type failingRecord struct{}

func (failingRecord) MarshalStream(w *Writer) error {
	return fmt.Errorf("record refused")
}
