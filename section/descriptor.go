// Package section implements the binary layout of a TSF segment: the fixed
// segment header, the per-column descriptor records that follow it, and the
// trailing segment checksum.
package section

import (
	"fmt"

	"github.com/scottix/rtimedb/endian"
	"github.com/scottix/rtimedb/errs"
	"github.com/scottix/rtimedb/format"
)

// ColumnDescriptor is the per-column metadata record stored in a segment
// header: name, element type, optional meta, encoding/compression tags, the
// on-disk byte size of the column's data slab, and its checksum.
type ColumnDescriptor struct {
	Name        string
	Type        format.ElementType
	Meta        format.ColumnMeta
	Encoding    format.EncodingType
	Compression format.CompressionType
	Size        uint64
	Checksum    [8]byte
}

// ByteSize returns the number of bytes Bytes() produces for d: the
// length-prefixed name, type code, length-prefixed meta, encoding,
// compression, size, and checksum fields.
func (d *ColumnDescriptor) ByteSize() int {
	return 2 + len(d.Name) + 2 + 2 + len(metaBytes(d.Meta)) + 1 + 1 + 8 + 8
}

// Bytes serialises d into its on-disk descriptor layout.
func (d *ColumnDescriptor) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	meta := metaBytes(d.Meta)

	b := make([]byte, 0, d.ByteSize())
	b = engine.AppendUint16(b, uint16(len(d.Name)))
	b = append(b, d.Name...)
	b = engine.AppendUint16(b, d.Type.Code())
	b = engine.AppendUint16(b, uint16(len(meta)))
	b = append(b, meta...)
	b = append(b, d.Encoding.Code(), d.Compression.Code())
	b = engine.AppendUint64(b, d.Size)
	b = append(b, d.Checksum[:]...)
	return b
}

// ParseColumnDescriptor parses one ColumnDescriptor from the front of data,
// returning it along with the number of bytes consumed.
func ParseColumnDescriptor(data []byte) (ColumnDescriptor, int, error) {
	engine := endian.GetLittleEndianEngine()
	var d ColumnDescriptor

	if len(data) < 2 {
		return d, 0, fmt.Errorf("%w: descriptor name length", errs.ErrDecodeTruncated)
	}
	nameLen := int(engine.Uint16(data[0:2]))
	off := 2

	if len(data) < off+nameLen {
		return d, 0, fmt.Errorf("%w: descriptor name", errs.ErrDecodeTruncated)
	}
	d.Name = string(data[off : off+nameLen])
	off += nameLen

	if len(data) < off+2 {
		return d, 0, fmt.Errorf("%w: descriptor type code", errs.ErrDecodeTruncated)
	}
	typeCode := engine.Uint16(data[off : off+2])
	off += 2
	et, ok := format.ElementTypeFromCode(typeCode)
	if !ok {
		return d, 0, fmt.Errorf("%w: code %d", errs.ErrInvalidTypeCode, typeCode)
	}
	d.Type = et

	if len(data) < off+2 {
		return d, 0, fmt.Errorf("%w: descriptor meta length", errs.ErrDecodeTruncated)
	}
	metaLen := int(engine.Uint16(data[off : off+2]))
	off += 2

	if len(data) < off+metaLen {
		return d, 0, fmt.Errorf("%w: descriptor meta", errs.ErrDecodeTruncated)
	}
	d.Meta = parseMetaBytes(data[off : off+metaLen])
	off += metaLen

	if len(data) < off+2 {
		return d, 0, fmt.Errorf("%w: descriptor encoding/compression", errs.ErrDecodeTruncated)
	}
	enc, ok := format.EncodingTypeFromCode(data[off])
	if !ok {
		return d, 0, fmt.Errorf("%w: code %d", errs.ErrInvalidEncodingCode, data[off])
	}
	d.Encoding = enc
	comp, ok := format.CompressionTypeFromCode(data[off+1])
	if !ok {
		return d, 0, fmt.Errorf("%w: code %d", errs.ErrInvalidCompressionCode, data[off+1])
	}
	d.Compression = comp
	off += 2

	if len(data) < off+8 {
		return d, 0, fmt.Errorf("%w: descriptor size", errs.ErrDecodeTruncated)
	}
	d.Size = engine.Uint64(data[off : off+8])
	off += 8

	if len(data) < off+8 {
		return d, 0, fmt.Errorf("%w: descriptor checksum", errs.ErrDecodeTruncated)
	}
	copy(d.Checksum[:], data[off:off+8])
	off += 8

	return d, off, nil
}

// metaBytes serialises a ColumnMeta. Implementations MAY write length=0 and
// a None variant; this repo does so for every kind except the four
// parameterised ones, which encode a minimal tagged payload.
func metaBytes(m format.ColumnMeta) []byte {
	switch m.Kind {
	case format.MetaNone:
		return nil
	case format.MetaDecimal:
		return []byte{byte(format.MetaDecimal), m.Precision, m.Scale}
	case format.MetaDateTime:
		b := []byte{byte(format.MetaDateTime)}
		return append(b, m.Format...)
	case format.MetaText:
		b := []byte{byte(format.MetaText)}
		return append(b, m.TextEncoding...)
	case format.MetaEnum:
		// No caller constructs a populated Enum mapping today; encode
		// only the tag so the length prefix still round-trips.
		return []byte{byte(format.MetaEnum)}
	default:
		return nil
	}
}

// parseMetaBytes decodes the bytes produced by metaBytes. Unknown or
// malformed meta bytes are tolerated: per the forward-compatibility
// requirement on ColumnMeta, unrecognized payloads decode to None rather
// than failing the read.
func parseMetaBytes(b []byte) format.ColumnMeta {
	if len(b) == 0 {
		return format.NoneMeta()
	}

	switch format.MetaKind(b[0]) {
	case format.MetaDecimal:
		if len(b) >= 3 {
			return format.DecimalMeta(b[1], b[2])
		}
	case format.MetaDateTime:
		return format.DateTimeMeta(string(b[1:]))
	case format.MetaText:
		return format.TextMeta(string(b[1:]))
	case format.MetaEnum:
		return format.EnumMeta(nil)
	}
	return format.NoneMeta()
}
