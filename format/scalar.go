package format

import "strconv"

// ScalarValue is a single element of a TypedVec, tagged by ElementType.
// Exactly one of the value fields is meaningful, selected by Type. It is
// what the row stream emits.
type ScalarValue struct {
	Type ElementType

	Int8Val    int8
	Int16Val   int16
	Int32Val   int32
	Int64Val   int64
	UInt8Val   uint8
	UInt16Val  uint16
	UInt32Val  uint32
	UInt64Val  uint64
	Float32Val float32
	Float64Val float64
	BoolVal    bool
}

// DefaultOf returns the zero-value ScalarValue for element type t.
func DefaultOf(t ElementType) ScalarValue {
	return ScalarValue{Type: t}
}

// RenderText renders v as the CLI-facing text form. DateTime32/DateTime64
// render as their underlying Int32/Int64 values, matching the display
// convention carried over from this column kind's original encoding.
func (v ScalarValue) RenderText() string {
	switch v.Type {
	case Int8:
		return strconv.FormatInt(int64(v.Int8Val), 10)
	case Int16:
		return strconv.FormatInt(int64(v.Int16Val), 10)
	case Int32, DateTime32:
		return strconv.FormatInt(int64(v.Int32Val), 10)
	case Int64, DateTime64:
		return strconv.FormatInt(v.Int64Val, 10)
	case UInt8:
		return strconv.FormatUint(uint64(v.UInt8Val), 10)
	case UInt16:
		return strconv.FormatUint(uint64(v.UInt16Val), 10)
	case UInt32:
		return strconv.FormatUint(uint64(v.UInt32Val), 10)
	case UInt64:
		return strconv.FormatUint(v.UInt64Val, 10)
	case Float32:
		return strconv.FormatFloat(float64(v.Float32Val), 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(v.Float64Val, 'g', -1, 64)
	case Boolean:
		return strconv.FormatBool(v.BoolVal)
	default:
		return ""
	}
}
