package exec

import (
	"path/filepath"
	"testing"

	"github.com/scottix/rtimedb/format"
	"github.com/scottix/rtimedb/reader"
	"github.com/scottix/rtimedb/writer"
	"github.com/stretchr/testify/require"
)

func TestScanDrainsAllRows(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "scan.tsf")
	w, err := writer.Open(path)
	require.NoError(err)
	require.NoError(w.AddColumnHeader("metric_time", format.Int32, format.EncodingNone, format.CompressionNone, format.NoneMeta(), true))
	require.NoError(w.AddColumnData(format.TypedVec{Type: format.Int32, Int32Vec: []int32{1, 2, 3}}))
	require.NoError(w.UpdateSegmentDates(1, 3))
	require.NoError(w.TrySave())
	require.NoError(w.Close())

	r, err := reader.Open(path)
	require.NoError(err)
	require.NoError(r.ReadAll())

	scan := NewScan(r)
	var count int
	for range scan.Rows() {
		count++
	}
	require.Equal(3, count)
}
