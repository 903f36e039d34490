// Package format defines the closed enumerations and tagged-union value
// types that make up a TSF column: element types, encodings, compressions,
// and the in-memory TypedVec/ScalarValue representations decoded from them.
package format

import "fmt"

// ElementType is the closed set of column element types a TSF segment can
// store. Codes are stable and persisted on disk; codes 5, 10, 14, and 15 are
// reserved (historical Int128/UInt128/String/— slots) and never decode
// successfully.
type ElementType uint16

const (
	Int8       ElementType = 1
	Int16      ElementType = 2
	Int32      ElementType = 3
	Int64      ElementType = 4
	UInt8      ElementType = 6
	UInt16     ElementType = 7
	UInt32     ElementType = 8
	UInt64     ElementType = 9
	Float32    ElementType = 11
	Float64    ElementType = 12
	Boolean    ElementType = 13
	DateTime32 ElementType = 16
	DateTime64 ElementType = 17
)

// Code returns the on-disk numeric code for t.
func (t ElementType) Code() uint16 {
	return uint16(t)
}

// ElementTypeFromCode maps an on-disk code back to an ElementType. It is
// partial: reserved and unknown codes return ok=false.
func ElementTypeFromCode(code uint16) (t ElementType, ok bool) {
	switch ElementType(code) {
	case Int8, Int16, Int32, Int64, UInt8, UInt16, UInt32, UInt64,
		Float32, Float64, Boolean, DateTime32, DateTime64:
		return ElementType(code), true
	default:
		return 0, false
	}
}

// Width returns the fixed on-disk byte width of a single element of type t,
// or 0 if t is not a valid ElementType.
func (t ElementType) Width() int {
	switch t {
	case Int8, UInt8, Boolean:
		return 1
	case Int16, UInt16:
		return 2
	case Int32, UInt32, Float32, DateTime32:
		return 4
	case Int64, UInt64, Float64, DateTime64:
		return 8
	default:
		return 0
	}
}

// IsValidTimestampType reports whether t is one of the element types a
// segment's designated timestamp column is allowed to use.
func (t ElementType) IsValidTimestampType() bool {
	switch t {
	case Int32, Int64, DateTime32, DateTime64:
		return true
	default:
		return false
	}
}

func (t ElementType) String() string {
	switch t {
	case Int8:
		return "Int8"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case UInt8:
		return "UInt8"
	case UInt16:
		return "UInt16"
	case UInt32:
		return "UInt32"
	case UInt64:
		return "UInt64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case Boolean:
		return "Boolean"
	case DateTime32:
		return "DateTime32"
	case DateTime64:
		return "DateTime64"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(t))
	}
}

// EncodingType is the closed set of column encodings. Only None affects
// on-disk bytes in this implementation; Delta and DoubleDelta are carried as
// tags that must round-trip through write/read but are never applied.
type EncodingType uint8

const (
	EncodingNone        EncodingType = 0
	EncodingDelta       EncodingType = 1
	EncodingDoubleDelta EncodingType = 2
)

// Code returns the on-disk numeric code for e.
func (e EncodingType) Code() uint8 { return uint8(e) }

// EncodingTypeFromCode maps an on-disk code back to an EncodingType.
func EncodingTypeFromCode(code uint8) (EncodingType, bool) {
	switch EncodingType(code) {
	case EncodingNone, EncodingDelta, EncodingDoubleDelta:
		return EncodingType(code), true
	default:
		return 0, false
	}
}

func (e EncodingType) String() string {
	switch e {
	case EncodingNone:
		return "None"
	case EncodingDelta:
		return "Delta"
	case EncodingDoubleDelta:
		return "DoubleDelta"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(e))
	}
}

// CompressionType is the closed set of column compressions. Only None
// affects on-disk bytes in this implementation; ZStd is carried as a tag
// that must round-trip through write/read but is never applied.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0
	CompressionZStd CompressionType = 1
)

// Code returns the on-disk numeric code for c.
func (c CompressionType) Code() uint8 { return uint8(c) }

// CompressionTypeFromCode maps an on-disk code back to a CompressionType.
func CompressionTypeFromCode(code uint8) (CompressionType, bool) {
	switch CompressionType(code) {
	case CompressionNone, CompressionZStd:
		return CompressionType(code), true
	default:
		return 0, false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZStd:
		return "ZStd"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}
