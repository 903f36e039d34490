package section

import (
	"testing"

	"github.com/google/uuid"
	"github.com/scottix/rtimedb/errs"
	"github.com/scottix/rtimedb/format"
	"github.com/stretchr/testify/require"
)

func fixedTxID() uuid.UUID {
	var id uuid.UUID
	for i := range id {
		id[i] = 0xAA
	}
	return id
}

func TestSegmentHeaderRoundTripEmpty(t *testing.T) {
	require := require.New(t)

	h := SegmentHeader{
		Tombstone:    true,
		RowCount:     10,
		SegmentCheck: [8]byte{0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB},
	}
	h.SetNextOffset(123)
	h.SetTxID(fixedTxID())
	h.SetDateRange(1625097600, 1627689600)
	h.SetTSColumnIndex(0)

	b, err := h.Write()
	require.NoError(err)
	require.Equal(int(FixedHeaderSize)+8, len(b))

	got, err := ReadSegmentHeader(b)
	require.NoError(err)
	require.Equal(h.Tombstone, got.Tombstone)
	require.Equal(h.NextOffset, got.NextOffset)
	require.Equal(h.TxID, got.TxID)
	require.Equal(h.DateStart, got.DateStart)
	require.Equal(h.DateEnd, got.DateEnd)
	require.Equal(h.RowCount, got.RowCount)
	require.Equal(h.ColumnCount, got.ColumnCount)
	require.Equal(h.TSColumnIndex, got.TSColumnIndex)
	require.Equal(h.ColumnHeaderSize, got.ColumnHeaderSize)
	require.Equal(h.SegmentCheck, got.SegmentCheck)
}

func TestSegmentHeaderWithDescriptors(t *testing.T) {
	require := require.New(t)

	h := SegmentHeader{
		RowCount: 4,
		Descriptors: []ColumnDescriptor{
			{Name: "metric_time", Type: format.Int32, Meta: format.NoneMeta()},
			{Name: "temperature", Type: format.Int8, Meta: format.NoneMeta()},
		},
	}
	h.SetNextOffset(0)
	h.SetTxID(fixedTxID())
	h.SetDateRange(1, 2)
	h.SetTSColumnIndex(0)

	wantSize := uint32(FixedHeaderSize)
	for i := range h.Descriptors {
		wantSize += uint32(h.Descriptors[i].ByteSize())
	}
	require.Equal(wantSize, h.CalculateHeaderSize())

	b, err := h.Write()
	require.NoError(err)
	require.Equal(int(wantSize)+8, len(b))

	got, err := ReadSegmentHeader(b)
	require.NoError(err)
	require.Equal(h.Descriptors, got.Descriptors)
	require.EqualValues(2, got.ColumnCount)
}

func TestSegmentHeaderWriteMissingField(t *testing.T) {
	require := require.New(t)

	h := SegmentHeader{}
	_, err := h.Write()
	require.ErrorIs(err, errs.ErrMissingField)
}

func TestFixedHeaderSizeIs49(t *testing.T) {
	require.New(t).EqualValues(49, FixedHeaderSize)
}
