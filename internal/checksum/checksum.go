// Package checksum computes the xxHash64 values stored in a TSF column
// descriptor's column_checksum and a segment header's segment_check fields.
package checksum

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Bytes returns the little-endian 8-byte encoding of the xxHash64 of data,
// the form stored directly in column_checksum / segment_check.
func Bytes(data []byte) [8]byte {
	var out [8]byte
	binary.LittleEndian.PutUint64(out[:], Sum64(data))
	return out
}
