// Package endian provides the byte-order engine used to encode and decode
// TSF's on-disk integers and floats.
//
// TSF is little-endian only (see the file header magic/version layout and
// every fixed-width field in the segment header), so this package exposes a
// single engine rather than the byte-order-selection surface a
// general-purpose binary library would need.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte-order operations. It is
// satisfied by binary.LittleEndian from the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the engine every TSF reader and writer uses.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
