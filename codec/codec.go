// Package codec serialises a format.TypedVec into a tightly packed
// little-endian byte buffer and back, using the fixed widths defined by
// format.ElementType.
package codec

import (
	"fmt"

	"github.com/scottix/rtimedb/endian"
	"github.com/scottix/rtimedb/errs"
	"github.com/scottix/rtimedb/format"
	"github.com/scottix/rtimedb/internal/bufpool"
)

// Encode produces the little-endian on-disk representation of v. Output
// length is always v.Len() * v.Type.Width(). This corresponds to the
// Encoding=None, Compression=None byte layout; non-None tags are carried on
// the column descriptor but never change these bytes.
func Encode(v format.TypedVec) []byte {
	engine := endian.GetLittleEndianEngine()
	n := v.Len()
	width := v.Type.Width()

	buf := bufpool.Get()
	defer bufpool.Put(buf)
	buf.Grow(n * width)

	out := buf.B
	switch v.Type {
	case format.Int8:
		for _, x := range v.Int8Vec {
			out = append(out, byte(x))
		}
	case format.UInt8:
		out = append(out, v.UInt8Vec...)
	case format.Boolean:
		for _, x := range v.BoolVec {
			if x {
				out = append(out, 0xFF)
			} else {
				out = append(out, 0x00)
			}
		}
	case format.Int16:
		for _, x := range v.Int16Vec {
			out = engine.AppendUint16(out, uint16(x))
		}
	case format.UInt16:
		for _, x := range v.UInt16Vec {
			out = engine.AppendUint16(out, x)
		}
	case format.Int32:
		for _, x := range v.Int32Vec {
			out = engine.AppendUint32(out, uint32(x))
		}
	case format.UInt32:
		for _, x := range v.UInt32Vec {
			out = engine.AppendUint32(out, x)
		}
	case format.DateTime32:
		for _, x := range v.DateTime32 {
			out = engine.AppendUint32(out, uint32(x))
		}
	case format.Float32:
		for _, x := range v.Float32Vec {
			out = engine.AppendUint32(out, float32bits(x))
		}
	case format.Int64:
		for _, x := range v.Int64Vec {
			out = engine.AppendUint64(out, uint64(x))
		}
	case format.UInt64:
		for _, x := range v.UInt64Vec {
			out = engine.AppendUint64(out, x)
		}
	case format.DateTime64:
		for _, x := range v.DateTime64 {
			out = engine.AppendUint64(out, uint64(x))
		}
	case format.Float64:
		for _, x := range v.Float64Vec {
			out = engine.AppendUint64(out, float64bits(x))
		}
	}

	// Copy out of the pooled buffer before returning it; out may alias buf.B.
	result := make([]byte, len(out))
	copy(result, out)
	return result
}

// Decode consumes exactly et.Width() * count bytes of data and returns the
// corresponding TypedVec. Truncated input and trailing bytes are both decode
// errors; a count of 0 is valid and yields an empty vector.
func Decode(data []byte, et format.ElementType, count int) (format.TypedVec, error) {
	width := et.Width()
	if width == 0 {
		return format.TypedVec{}, fmt.Errorf("%w: element type %s", errs.ErrUnsupportedTypeForRead, et)
	}

	want := width * count
	if len(data) < want {
		return format.TypedVec{}, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrDecodeTruncated, want, len(data))
	}
	if len(data) > want {
		return format.TypedVec{}, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrDecodeTrailing, want, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	v := format.TypedVec{Type: et}

	switch et {
	case format.Int8:
		v.Int8Vec = make([]int8, count)
		for i := range count {
			v.Int8Vec[i] = int8(data[i])
		}
	case format.UInt8:
		v.UInt8Vec = make([]uint8, count)
		copy(v.UInt8Vec, data)
	case format.Boolean:
		v.BoolVec = make([]bool, count)
		for i := range count {
			v.BoolVec[i] = data[i] != 0
		}
	case format.Int16:
		v.Int16Vec = make([]int16, count)
		for i := range count {
			v.Int16Vec[i] = int16(engine.Uint16(data[i*2:]))
		}
	case format.UInt16:
		v.UInt16Vec = make([]uint16, count)
		for i := range count {
			v.UInt16Vec[i] = engine.Uint16(data[i*2:])
		}
	case format.Int32:
		v.Int32Vec = make([]int32, count)
		for i := range count {
			v.Int32Vec[i] = int32(engine.Uint32(data[i*4:]))
		}
	case format.UInt32:
		v.UInt32Vec = make([]uint32, count)
		for i := range count {
			v.UInt32Vec[i] = engine.Uint32(data[i*4:])
		}
	case format.DateTime32:
		v.DateTime32 = make([]int32, count)
		for i := range count {
			v.DateTime32[i] = int32(engine.Uint32(data[i*4:]))
		}
	case format.Float32:
		v.Float32Vec = make([]float32, count)
		for i := range count {
			v.Float32Vec[i] = float32frombits(engine.Uint32(data[i*4:]))
		}
	case format.Int64:
		v.Int64Vec = make([]int64, count)
		for i := range count {
			v.Int64Vec[i] = int64(engine.Uint64(data[i*8:]))
		}
	case format.UInt64:
		v.UInt64Vec = make([]uint64, count)
		for i := range count {
			v.UInt64Vec[i] = engine.Uint64(data[i*8:])
		}
	case format.DateTime64:
		v.DateTime64 = make([]int64, count)
		for i := range count {
			v.DateTime64[i] = int64(engine.Uint64(data[i*8:]))
		}
	case format.Float64:
		v.Float64Vec = make([]float64, count)
		for i := range count {
			v.Float64Vec[i] = float64frombits(engine.Uint64(data[i*8:]))
		}
	default:
		return format.TypedVec{}, fmt.Errorf("%w: element type %s", errs.ErrUnsupportedTypeForRead, et)
	}

	return v, nil
}
