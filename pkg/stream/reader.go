package stream

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/go-drift/keel/pkg/errors"
)

// byteSource is the reader surface the decoder needs.
type byteSource interface {
	io.Reader
	io.ByteReader
}

// Reader decodes typed fields from an io.Reader.
//
// The first error is held and every later call returns the zero value,
// so callers chain field reads and check Err once at the end. Truncated
// input and invalid prefixes are reported as malformed data; failures of
// the underlying reader as io errors.
type Reader struct {
	r   byteSource
	err error
}

// NewReader returns a Reader decoding from r.
// Sources without byte-level reads are wrapped in a bufio.Reader, which
// may read ahead of the decoded fields.
func NewReader(r io.Reader) *Reader {
	if bs, ok := r.(byteSource); ok {
		return &Reader{r: bs}
	}
	return &Reader{r: bufio.NewReader(r)}
}

// Err returns the first error encountered by the reader, or nil.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) fail(err error) {
	if r.err != nil {
		return
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		r.err = errors.Errorf("stream.Read", errors.KindMalformedData, "unexpected end of data")
		return
	}
	r.err = errors.E("stream.Read", errors.KindIO, err)
}

// ReadByte reads a single raw byte. It implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	b, err := r.r.ReadByte()
	if err != nil {
		r.fail(err)
		return 0, r.err
	}
	return b, nil
}

func (r *Reader) readUvarint() uint64 {
	if r.err != nil {
		return 0
	}
	var v uint64
	var shift uint
	for i := 0; ; i++ {
		b, err := r.r.ReadByte()
		if err != nil {
			r.fail(err)
			return 0
		}
		if i == binary.MaxVarintLen64 ||
			(i == binary.MaxVarintLen64-1 && b > 1) {
			r.err = errors.Errorf("stream.Read", errors.KindMalformedData,
				"varint overflows 64 bits")
			return 0
		}
		if b < 0x80 {
			return v | uint64(b)<<shift
		}
		v |= uint64(b&0x7F) << shift
		shift += 7
	}
}

func (r *Reader) readVarint() int64 {
	uv := r.readUvarint()
	v := int64(uv >> 1)
	if uv&1 != 0 {
		v = ^v
	}
	return v
}

func (r *Reader) readLen() int {
	n := r.readUvarint()
	if r.err != nil {
		return 0
	}
	if n > MaxLen {
		r.err = errors.Errorf("stream.Read", errors.KindMalformedData,
			"length prefix %d exceeds limit", n)
		return 0
	}
	return int(n)
}

func (r *Reader) readFull(p []byte) {
	if r.err != nil {
		return
	}
	if _, err := io.ReadFull(r.r, p); err != nil {
		r.fail(err)
	}
}

// ReadString reads a length-prefixed string.
func (r *Reader) ReadString() string {
	n := r.readLen()
	if r.err != nil || n == 0 {
		return ""
	}
	b := make([]byte, n)
	r.readFull(b)
	if r.err != nil {
		return ""
	}
	return string(b)
}

// ReadBytes reads a length-prefixed byte slice.
// An empty slice decodes as nil.
func (r *Reader) ReadBytes() []byte {
	n := r.readLen()
	if r.err != nil || n == 0 {
		return nil
	}
	b := make([]byte, n)
	r.readFull(b)
	if r.err != nil {
		return nil
	}
	return b
}

// ReadBool reads a bool. Any byte other than 0 or 1 is malformed.
func (r *Reader) ReadBool() bool {
	b, err := r.ReadByte()
	if err != nil {
		return false
	}
	switch b {
	case 0:
		return false
	case 1:
		return true
	default:
		r.err = errors.Errorf("stream.Read", errors.KindMalformedData,
			"invalid bool byte 0x%02X", b)
		return false
	}
}

// ReadInt reads a signed integer written with WriteInt.
func (r *Reader) ReadInt() int {
	v := r.readVarint()
	if r.err != nil {
		return 0
	}
	if v < math.MinInt || v > math.MaxInt {
		r.err = errors.Errorf("stream.Read", errors.KindMalformedData,
			"integer %d does not fit int", v)
		return 0
	}
	return int(v)
}

// ReadInt64 reads a signed 64-bit integer written with WriteInt64.
func (r *Reader) ReadInt64() int64 {
	return r.readVarint()
}

// ReadUint32 reads an unsigned 32-bit integer written with WriteUint32.
func (r *Reader) ReadUint32() uint32 {
	v := r.readUvarint()
	if r.err != nil {
		return 0
	}
	if v > math.MaxUint32 {
		r.err = errors.Errorf("stream.Read", errors.KindMalformedData,
			"integer %d does not fit uint32", v)
		return 0
	}
	return uint32(v)
}

// ReadUint64 reads an unsigned 64-bit integer written with WriteUint64.
func (r *Reader) ReadUint64() uint64 {
	return r.readUvarint()
}

// ReadFloat64 reads a float64 written with WriteFloat64.
func (r *Reader) ReadFloat64() float64 {
	if r.err != nil {
		return 0
	}
	var b [8]byte
	r.readFull(b[:])
	if r.err != nil {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b[:]))
}
