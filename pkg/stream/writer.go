package stream

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/go-drift/keel/pkg/errors"
)

// MaxLen is the largest string or byte-slice length the wire format
// accepts. Length prefixes above it are rejected as malformed data
// before any allocation happens.
const MaxLen = 1 << 30

// Writer encodes typed fields onto an io.Writer.
//
// The first write error is held and every later call becomes a no-op,
// so callers chain field writes and check Err once at the end.
type Writer struct {
	w   io.Writer
	err error
	buf [binary.MaxVarintLen64]byte
}

// NewWriter returns a Writer encoding onto w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered by the writer, or nil.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	if _, err := w.w.Write(p); err != nil {
		w.err = errors.E("stream.Write", errors.KindIO, err)
	}
}

func (w *Writer) writeUvarint(v uint64) {
	n := binary.PutUvarint(w.buf[:], v)
	w.write(w.buf[:n])
}

func (w *Writer) writeVarint(v int64) {
	n := binary.PutVarint(w.buf[:], v)
	w.write(w.buf[:n])
}

// WriteString writes a length-prefixed string.
func (w *Writer) WriteString(s string) {
	w.writeUvarint(uint64(len(s)))
	w.write([]byte(s))
}

// WriteBytes writes a length-prefixed byte slice.
// A nil slice is written as an empty one.
func (w *Writer) WriteBytes(p []byte) {
	w.writeUvarint(uint64(len(p)))
	w.write(p)
}

// WriteBool writes a bool as a single 0 or 1 byte.
func (w *Writer) WriteBool(v bool) {
	b := byte(0)
	if v {
		b = 1
	}
	w.write([]byte{b})
}

// WriteInt writes a signed integer with zigzag varint encoding.
func (w *Writer) WriteInt(v int) {
	w.writeVarint(int64(v))
}

// WriteInt64 writes a signed 64-bit integer with zigzag varint encoding.
func (w *Writer) WriteInt64(v int64) {
	w.writeVarint(v)
}

// WriteUint32 writes an unsigned 32-bit integer as a varint.
func (w *Writer) WriteUint32(v uint32) {
	w.writeUvarint(uint64(v))
}

// WriteUint64 writes an unsigned 64-bit integer as a varint.
func (w *Writer) WriteUint64(v uint64) {
	w.writeUvarint(v)
}

// WriteFloat64 writes a float64 as eight little-endian IEEE-754 bytes.
func (w *Writer) WriteFloat64(v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	w.write(b[:])
}
