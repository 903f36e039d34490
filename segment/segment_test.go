package segment

import (
	"bytes"
	"testing"

	"github.com/scottix/rtimedb/errs"
	"github.com/scottix/rtimedb/format"
	"github.com/scottix/rtimedb/section"
	"github.com/stretchr/testify/require"
)

func buildSegment(t *testing.T) *Segment {
	t.Helper()
	require := require.New(t)

	s, err := New()
	require.NoError(err)
	require.NotEqual([16]byte{}, s.Header.TxID)

	err = s.AddColumn(section.ColumnDescriptor{
		Name: "metric_time", Type: format.Int32, Meta: format.NoneMeta(),
	}, true)
	require.NoError(err)

	err = s.AddColumn(section.ColumnDescriptor{
		Name: "temperature", Type: format.Int8, Meta: format.NoneMeta(),
	}, false)
	require.NoError(err)

	err = s.AddData(format.TypedVec{
		Type: format.Int32,
		Int32Vec: []int32{1710555318, 1710555319, 1710555320, 1710555321},
	})
	require.NoError(err)

	err = s.AddData(format.TypedVec{
		Type:    format.Int8,
		Int8Vec: []int8{20, 22, 21, 23},
	})
	require.NoError(err)

	s.SetDateRange(1710555318, 1710555321)
	return s
}

func TestSegmentWriteReadRoundTrip(t *testing.T) {
	require := require.New(t)

	s := buildSegment(t)

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(err)

	got := &Segment{}
	_, err = got.ReadFrom(&buf)
	require.NoError(err)

	require.Equal(4, got.RowCount())
	require.Len(got.Header.Descriptors, 2)
	require.Equal("metric_time", got.Header.Descriptors[0].Name)
	require.Equal("temperature", got.Header.Descriptors[1].Name)
	require.EqualValues(0, got.Header.TSColumnIndex)
	require.Equal(s.Columns, got.Columns)
	require.Equal(s.Header.DateStart, got.Header.DateEnd-3)
}

func TestTimestampBounds(t *testing.T) {
	require := require.New(t)

	s := buildSegment(t)
	minV, maxV, ok := s.TimestampBounds()
	require.True(ok)
	require.EqualValues(1710555318, minV)
	require.EqualValues(1710555321, maxV)
}

func TestAddDataRejectsEmptyColumn(t *testing.T) {
	require := require.New(t)

	s, err := New()
	require.NoError(err)
	require.NoError(s.AddColumn(section.ColumnDescriptor{Name: "x", Type: format.Int8}, false))

	err = s.AddData(format.TypedVec{Type: format.Int8, Int8Vec: []int8{}})
	require.ErrorIs(err, errs.ErrEmptyColumn)
}

func TestAddDataRejectsRowCountMismatch(t *testing.T) {
	require := require.New(t)

	s, err := New()
	require.NoError(err)
	require.NoError(s.AddColumn(section.ColumnDescriptor{Name: "a", Type: format.Int32}, true))
	require.NoError(s.AddColumn(section.ColumnDescriptor{Name: "b", Type: format.Int8}, false))

	require.NoError(s.AddData(format.TypedVec{Type: format.Int32, Int32Vec: []int32{1, 2, 3}}))
	err = s.AddData(format.TypedVec{Type: format.Int8, Int8Vec: []int8{1, 2}})
	require.ErrorIs(err, errs.ErrRowCountMismatch)
}

func TestAddDataRejectsExcessData(t *testing.T) {
	require := require.New(t)

	s, err := New()
	require.NoError(err)
	require.NoError(s.AddColumn(section.ColumnDescriptor{Name: "a", Type: format.Int32}, true))

	require.NoError(s.AddData(format.TypedVec{Type: format.Int32, Int32Vec: []int32{1}}))
	err = s.AddData(format.TypedVec{Type: format.Int32, Int32Vec: []int32{2}})
	require.ErrorIs(err, errs.ErrExcessData)
}

func TestAddColumnSecondTimestampFails(t *testing.T) {
	require := require.New(t)

	s, err := New()
	require.NoError(err)
	require.NoError(s.AddColumn(section.ColumnDescriptor{Name: "a", Type: format.Int32}, true))

	err = s.AddColumn(section.ColumnDescriptor{Name: "b", Type: format.Int64}, true)
	require.ErrorIs(err, errs.ErrTimestampAlreadySet)
}

func TestAddColumnInvalidTimestampType(t *testing.T) {
	require := require.New(t)

	s, err := New()
	require.NoError(err)

	err = s.AddColumn(section.ColumnDescriptor{Name: "a", Type: format.Float64}, true)
	require.ErrorIs(err, errs.ErrInvalidTimestampType)
}

func TestReadFromRejectsNonNoneCodec(t *testing.T) {
	require := require.New(t)

	s, err := New()
	require.NoError(err)
	require.NoError(s.AddColumn(section.ColumnDescriptor{
		Name: "a", Type: format.Int32, Encoding: format.EncodingDelta, Compression: format.CompressionNone,
	}, true))
	require.NoError(s.AddData(format.TypedVec{Type: format.Int32, Int32Vec: []int32{1, 2, 3}}))
	s.SetDateRange(1, 3)

	var buf bytes.Buffer
	_, err = s.WriteTo(&buf)
	require.NoError(err)

	got := &Segment{}
	_, err = got.ReadFrom(&buf)
	require.ErrorIs(err, errs.ErrUnsupportedCodec)
}

func TestWriteToWithoutTimestampFails(t *testing.T) {
	require := require.New(t)

	s, err := New()
	require.NoError(err)
	require.NoError(s.AddColumn(section.ColumnDescriptor{Name: "a", Type: format.Int32}, false))
	require.NoError(s.AddData(format.TypedVec{Type: format.Int32, Int32Vec: []int32{1}}))

	var buf bytes.Buffer
	_, err = s.WriteTo(&buf)
	require.ErrorIs(err, errs.ErrNoTimestampColumn)
}
