package format

// TypedVec is a tagged union over ElementType holding an ordered sequence of
// values of that element type. Exactly one of the slice fields is populated,
// selected by Type; the DateTime32/DateTime64 fields share physical layout with
// Int32Vec/Int64Vec but are kept in separate fields since they are
// semantically distinct column kinds.
type TypedVec struct {
	Type ElementType

	Int8Vec    []int8
	Int16Vec   []int16
	Int32Vec   []int32
	Int64Vec   []int64
	UInt8Vec   []uint8
	UInt16Vec  []uint16
	UInt32Vec  []uint32
	UInt64Vec  []uint64
	Float32Vec []float32
	Float64Vec []float64
	BoolVec    []bool
	DateTime32 []int32
	DateTime64 []int64
}

// EmptyOf constructs a zero-length TypedVec of the variant matching t.
func EmptyOf(t ElementType) TypedVec {
	v := TypedVec{Type: t}
	switch t {
	case Int8:
		v.Int8Vec = []int8{}
	case Int16:
		v.Int16Vec = []int16{}
	case Int32:
		v.Int32Vec = []int32{}
	case Int64:
		v.Int64Vec = []int64{}
	case UInt8:
		v.UInt8Vec = []uint8{}
	case UInt16:
		v.UInt16Vec = []uint16{}
	case UInt32:
		v.UInt32Vec = []uint32{}
	case UInt64:
		v.UInt64Vec = []uint64{}
	case Float32:
		v.Float32Vec = []float32{}
	case Float64:
		v.Float64Vec = []float64{}
	case Boolean:
		v.BoolVec = []bool{}
	case DateTime32:
		v.DateTime32 = []int32{}
	case DateTime64:
		v.DateTime64 = []int64{}
	}
	return v
}

// Len returns the row count of v, exhaustively switching over every
// ElementType variant: each of the thirteen variants has its own case, so no
// valid variant is ever counted as zero rows. Only a Type outside the closed
// set reaches the default arm, which returns 0.
func (v TypedVec) Len() int {
	switch v.Type {
	case Int8:
		return len(v.Int8Vec)
	case Int16:
		return len(v.Int16Vec)
	case Int32:
		return len(v.Int32Vec)
	case Int64:
		return len(v.Int64Vec)
	case UInt8:
		return len(v.UInt8Vec)
	case UInt16:
		return len(v.UInt16Vec)
	case UInt32:
		return len(v.UInt32Vec)
	case UInt64:
		return len(v.UInt64Vec)
	case Float32:
		return len(v.Float32Vec)
	case Float64:
		return len(v.Float64Vec)
	case Boolean:
		return len(v.BoolVec)
	case DateTime32:
		return len(v.DateTime32)
	case DateTime64:
		return len(v.DateTime64)
	default:
		return 0
	}
}

// At projects the element at row index i into a ScalarValue. It panics if i
// is out of range, matching slice-indexing semantics elsewhere in this repo.
func (v TypedVec) At(i int) ScalarValue {
	switch v.Type {
	case Int8:
		return ScalarValue{Type: Int8, Int8Val: v.Int8Vec[i]}
	case Int16:
		return ScalarValue{Type: Int16, Int16Val: v.Int16Vec[i]}
	case Int32:
		return ScalarValue{Type: Int32, Int32Val: v.Int32Vec[i]}
	case Int64:
		return ScalarValue{Type: Int64, Int64Val: v.Int64Vec[i]}
	case UInt8:
		return ScalarValue{Type: UInt8, UInt8Val: v.UInt8Vec[i]}
	case UInt16:
		return ScalarValue{Type: UInt16, UInt16Val: v.UInt16Vec[i]}
	case UInt32:
		return ScalarValue{Type: UInt32, UInt32Val: v.UInt32Vec[i]}
	case UInt64:
		return ScalarValue{Type: UInt64, UInt64Val: v.UInt64Vec[i]}
	case Float32:
		return ScalarValue{Type: Float32, Float32Val: v.Float32Vec[i]}
	case Float64:
		return ScalarValue{Type: Float64, Float64Val: v.Float64Vec[i]}
	case Boolean:
		return ScalarValue{Type: Boolean, BoolVal: v.BoolVec[i]}
	case DateTime32:
		return ScalarValue{Type: DateTime32, Int32Val: v.DateTime32[i]}
	case DateTime64:
		return ScalarValue{Type: DateTime64, Int64Val: v.DateTime64[i]}
	default:
		return ScalarValue{Type: v.Type}
	}
}
