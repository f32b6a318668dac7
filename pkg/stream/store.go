package stream

import (
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/go-drift/keel/pkg/errors"
)

// zstdMagic is the little-endian zstd frame magic number 0xFD2FB528.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// WriteFile encodes a record and writes it to path.
func WriteFile(path string, m Marshaler) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.E("stream.WriteFile", errors.KindIO, err)
	}
	return nil
}

// WriteFileCompressed encodes a record and writes it to path inside a
// zstd frame. Files written this way load through the regular ReadFile.
func WriteFileCompressed(path string, m Marshaler) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return errors.E("stream.WriteFileCompressed", errors.KindIO, err)
	}
	compressed := enc.EncodeAll(data, nil)
	if err := enc.Close(); err != nil {
		return errors.E("stream.WriteFileCompressed", errors.KindIO, err)
	}
	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		return errors.E("stream.WriteFileCompressed", errors.KindIO, err)
	}
	return nil
}

// ReadFile reads path and decodes the record stored there. Files whose
// first four bytes carry the zstd frame magic are decompressed first,
// so plain and compressed stores load through the same call.
func ReadFile(path string, u Unmarshaler) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.E("stream.ReadFile", errors.KindIO, err)
	}
	if isZstd(data) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return errors.E("stream.ReadFile", errors.KindIO, err)
		}
		defer dec.Close()
		plain, err := dec.DecodeAll(data, nil)
		if err != nil {
			return errors.E("stream.ReadFile", errors.KindMalformedData, err)
		}
		data = plain
	}
	return Unmarshal(data, u)
}

func isZstd(data []byte) bool {
	if len(data) < len(zstdMagic) {
		return false
	}
	for i, b := range zstdMagic {
		if data[i] != b {
			return false
		}
	}
	return true
}
