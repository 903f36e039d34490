package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarValueRenderText(t *testing.T) {
	require := require.New(t)

	require.Equal("20", ScalarValue{Type: Int8, Int8Val: 20}.RenderText())
	require.Equal("1710555318", ScalarValue{Type: Int32, Int32Val: 1710555318}.RenderText())
	require.Equal("1710555318", ScalarValue{Type: DateTime32, Int32Val: 1710555318}.RenderText())
	require.Equal("-7", ScalarValue{Type: Int64, Int64Val: -7}.RenderText())
	require.Equal("true", ScalarValue{Type: Boolean, BoolVal: true}.RenderText())
}

func TestDefaultOf(t *testing.T) {
	require := require.New(t)
	require.Equal(ScalarValue{Type: Float64}, DefaultOf(Float64))
}
