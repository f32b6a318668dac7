package stream

import (
	"bytes"
	"io"
)

// Marshaler is implemented by records that can write themselves to a Writer.
type Marshaler interface {
	// MarshalStream writes the record's fields in their declared order.
	MarshalStream(w *Writer) error
}

// Unmarshaler is implemented by records that can read themselves from a Reader.
// The field order must mirror the record's MarshalStream.
type Unmarshaler interface {
	// UnmarshalStream reads the record's fields in their declared order.
	UnmarshalStream(r *Reader) error
}

// Marshal encodes a record into a byte slice.
func Marshal(m Marshaler) ([]byte, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := m.MarshalStream(w); err != nil {
		return nil, err
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a record from a byte slice.
// Bytes beyond the record's fields are ignored; truncated data fails
// with a malformed data error.
func Unmarshal(data []byte, u Unmarshaler) error {
	return Read(bytes.NewReader(data), u)
}

// Write encodes a record onto w.
func Write(w io.Writer, m Marshaler) error {
	sw := NewWriter(w)
	if err := m.MarshalStream(sw); err != nil {
		return err
	}
	return sw.Err()
}

// Read decodes a record from r.
func Read(r io.Reader, u Unmarshaler) error {
	sr := NewReader(r)
	if err := u.UnmarshalStream(sr); err != nil {
		return err
	}
	return sr.Err()
}
