// Package filehdr implements TSF's 6-byte file preamble: a magic number and
// a version, checked before any segment bytes are parsed.
package filehdr

import (
	"fmt"

	"github.com/scottix/rtimedb/endian"
	"github.com/scottix/rtimedb/errs"
)

// Magic is the file format's 4-byte magic number, "TSFD" read as a
// little-endian uint32 (so the on-disk bytes are 44 46 53 54).
const Magic uint32 = 0x54534644

// Version is the only file version this implementation writes or reads.
const Version uint16 = 1

// Size is the fixed byte width of the file header.
const Size = 6

// FileHeader is the 6-byte magic+version prefix at the start of every TSF
// file.
type FileHeader struct {
	MagicNumber uint32
	Version     uint16
}

// New returns the file header every writer in this package stamps.
func New() FileHeader {
	return FileHeader{MagicNumber: Magic, Version: Version}
}

// Bytes serialises h to its 6-byte on-disk form.
func (h FileHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, 0, Size)
	b = engine.AppendUint32(b, h.MagicNumber)
	b = engine.AppendUint16(b, h.Version)
	return b
}

// Verify reports whether h has the expected magic number and a supported
// version.
func (h FileHeader) Verify() error {
	if h.MagicNumber != Magic {
		return fmt.Errorf("%w: got %#x", errs.ErrBadMagic, h.MagicNumber)
	}
	if h.Version != Version {
		return fmt.Errorf("%w: got %d", errs.ErrUnsupportedVersion, h.Version)
	}
	return nil
}

// Read parses a FileHeader from the front of data.
func Read(data []byte) (FileHeader, error) {
	if len(data) < Size {
		return FileHeader{}, fmt.Errorf("%w: file header", errs.ErrDecodeTruncated)
	}
	engine := endian.GetLittleEndianEngine()
	return FileHeader{
		MagicNumber: engine.Uint32(data[0:4]),
		Version:     engine.Uint16(data[4:6]),
	}, nil
}
