// Package stream provides sequential typed serialization for record types.
//
// A record defines one method pair reading and writing its fields in the
// same order, and the package derives byte-slice, io, and file round-trips
// from that single definition. There is no schema and no field tagging;
// the field order in the method bodies is the layout contract.
//
// # Defining A Record
//
// Implement Marshaler and Unmarshaler with symmetric bodies:
//
//	type Profile struct {
//	    Name  string
//	    Score int
//	}
//
//	func (p *Profile) MarshalStream(w *stream.Writer) error {
//	    w.WriteString(p.Name)
//	    w.WriteInt(p.Score)
//	    return w.Err()
//	}
//
//	func (p *Profile) UnmarshalStream(r *stream.Reader) error {
//	    p.Name = r.ReadString()
//	    p.Score = r.ReadInt()
//	    return r.Err()
//	}
//
// Writer and Reader hold the first error they encounter and turn the
// remaining calls into no-ops, so method bodies chain field accesses
// without per-field error checks and report once through Err.
//
// # Wire Format
//
// Strings and byte slices carry an unsigned varint length prefix followed
// by the raw bytes. Signed integers use zigzag varint encoding, unsigned
// integers plain varints, float64 eight little-endian IEEE-754 bytes and
// bool a single 0 or 1 byte. Length prefixes are capped at MaxLen;
// anything larger is rejected as malformed before allocation.
//
// # Round Trips
//
// Marshal and Unmarshal convert records to and from byte slices. Write
// and Read do the same against io.Writer and io.Reader. WriteFile,
// WriteFileCompressed and ReadFile persist records to disk; ReadFile
// recognizes zstd-compressed files by their frame magic and decompresses
// transparently, so both file flavors load through the same call.
package stream
