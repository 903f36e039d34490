package bufpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferWriteGrow(t *testing.T) {
	require := require.New(t)

	bb := NewByteBuffer(4)
	_, err := bb.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(err)
	require.Equal(8, bb.Len())
	require.Equal([]byte{1, 2, 3, 4, 5, 6, 7, 8}, bb.Bytes())
}

func TestPoolGetPutResets(t *testing.T) {
	require := require.New(t)

	p := NewPool(8, 16)
	bb := p.Get()
	_, _ = bb.Write([]byte{1, 2, 3})
	p.Put(bb)

	again := p.Get()
	require.Equal(0, again.Len())
}

func TestPoolDiscardsOversizedBuffer(t *testing.T) {
	require := require.New(t)

	p := NewPool(4, 8)
	bb := p.Get()
	bb.Grow(100)
	p.Put(bb) // should be discarded, not pooled

	again := p.Get()
	require.Equal(0, again.Len())
}

func TestPackageDefaultPool(t *testing.T) {
	require := require.New(t)

	bb := Get()
	require.NotNil(bb)
	Put(bb)
}
