package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyOfAllVariants(t *testing.T) {
	require := require.New(t)

	for _, et := range []ElementType{
		Int8, Int16, Int32, Int64, UInt8, UInt16, UInt32, UInt64,
		Float32, Float64, Boolean, DateTime32, DateTime64,
	} {
		v := EmptyOf(et)
		require.Equal(et, v.Type)
		require.Zero(v.Len())
	}
}

func TestTypedVecLenExhaustive(t *testing.T) {
	require := require.New(t)

	v := TypedVec{Type: Int32, Int32Vec: []int32{1, 2, 3}}
	require.Equal(3, v.Len())

	v = TypedVec{Type: DateTime64, DateTime64: []int64{1, 2}}
	require.Equal(2, v.Len())
}

func TestTypedVecAt(t *testing.T) {
	require := require.New(t)

	v := TypedVec{Type: Int8, Int8Vec: []int8{1, 2, -3, -4}}
	require.Equal(ScalarValue{Type: Int8, Int8Val: -3}, v.At(2))

	dv := TypedVec{Type: DateTime32, DateTime32: []int32{1710555318}}
	require.Equal(ScalarValue{Type: DateTime32, Int32Val: 1710555318}, dv.At(0))
}
