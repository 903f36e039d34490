package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scottix/rtimedb/format"
	"github.com/scottix/rtimedb/writer"
	"github.com/stretchr/testify/require"
)

func writeScenario1(t *testing.T, path string) {
	t.Helper()
	require := require.New(t)

	w, err := writer.Open(path)
	require.NoError(err)
	defer w.Close()

	require.NoError(w.AddColumnHeader("metric_time", format.Int32, format.EncodingNone, format.CompressionNone, format.NoneMeta(), true))
	require.NoError(w.AddColumnHeader("temperature", format.Int8, format.EncodingNone, format.CompressionNone, format.NoneMeta(), false))

	require.NoError(w.AddColumnData(format.TypedVec{
		Type:     format.Int32,
		Int32Vec: []int32{1710555318, 1710555319, 1710555320, 1710555321},
	}))
	require.NoError(w.AddColumnData(format.TypedVec{
		Type:    format.Int8,
		Int8Vec: []int8{20, 22, 21, 23},
	}))

	require.NoError(w.UpdateSegmentDates(1710555318, 1710555321))
	require.NoError(w.TrySave())
}

func TestReaderEndToEndScenario1(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "scenario1.tsf")
	writeScenario1(t, path)

	r, err := Open(path)
	require.NoError(err)
	require.NoError(r.ReadAll())

	require.Equal(4, r.RowCount())
	require.Equal(2, r.ColumnCount())
	require.Equal("metric_time", r.ColumnName(0))
	require.Equal("temperature", r.ColumnName(1))

	var rendered []string
	for row := range r.StreamRows() {
		parts := make([]string, len(row.Values))
		for i, v := range row.Values {
			parts[i] = v.RenderText()
		}
		rendered = append(rendered, strings.Join(parts, ","))
	}

	require.Equal([]string{
		"1710555318,20",
		"1710555319,22",
		"1710555320,21",
		"1710555321,23",
	}, rendered)
}

func TestReaderBadMagic(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "bad.tsf")
	writeScenario1(t, path)

	data, err := os.ReadFile(path)
	require.NoError(err)
	data[0] = 0x00
	require.NoError(os.WriteFile(path, data, 0o644))

	r, err := Open(path)
	require.NoError(err)
	err = r.ReadAll()
	require.Error(err)
}

func TestColumnOutOfRange(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "scenario1.tsf")
	writeScenario1(t, path)

	r, err := Open(path)
	require.NoError(err)
	require.NoError(r.ReadAll())

	_, ok := r.Column(99)
	require.False(ok)
}
