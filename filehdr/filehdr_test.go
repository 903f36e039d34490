package filehdr

import (
	"testing"

	"github.com/scottix/rtimedb/errs"
	"github.com/stretchr/testify/require"
)

func TestNewBytesExact(t *testing.T) {
	require := require.New(t)

	b := New().Bytes()
	require.Equal([]byte{0x44, 0x46, 0x53, 0x54, 0x01, 0x00}, b)
}

func TestVerifyOK(t *testing.T) {
	require.New(t).NoError(New().Verify())
}

func TestVerifyBadMagic(t *testing.T) {
	require := require.New(t)

	h := New()
	h.MagicNumber = 0
	require.ErrorIs(h.Verify(), errs.ErrBadMagic)
}

func TestVerifyUnsupportedVersion(t *testing.T) {
	require := require.New(t)

	h := New()
	h.Version = 2
	require.ErrorIs(h.Verify(), errs.ErrUnsupportedVersion)
}

func TestReadRoundTrip(t *testing.T) {
	require := require.New(t)

	h, err := Read(New().Bytes())
	require.NoError(err)
	require.Equal(New(), h)
}

func TestReadTruncated(t *testing.T) {
	require := require.New(t)

	_, err := Read([]byte{0x44, 0x46})
	require.ErrorIs(err, errs.ErrDecodeTruncated)
}
