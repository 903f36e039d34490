// Package ingest parses the headerless, two-column CSV format accepted by
// the create CLI subcommand into TSF column data.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/scottix/rtimedb/format"
)

// Columns holds the two columns produced by ParseCSV: a timestamp column
// (Int32) and a temperature column (Int8), matching the create subcommand's
// fixed schema.
type Columns struct {
	Timestamps  []int32
	Temperature []int8
}

// ParseCSV reads a headerless CSV from r with exactly two fields per
// record: an integer Unix timestamp and an integer temperature reading.
func ParseCSV(r io.Reader) (Columns, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	var cols Columns
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Columns{}, fmt.Errorf("tsf: parse csv: %w", err)
		}

		ts, err := strconv.ParseInt(record[0], 10, 32)
		if err != nil {
			return Columns{}, fmt.Errorf("tsf: parse csv timestamp %q: %w", record[0], err)
		}
		temp, err := strconv.ParseInt(record[1], 10, 8)
		if err != nil {
			return Columns{}, fmt.Errorf("tsf: parse csv temperature %q: %w", record[1], err)
		}

		cols.Timestamps = append(cols.Timestamps, int32(ts))
		cols.Temperature = append(cols.Temperature, int8(temp))
	}

	return cols, nil
}

// TimestampVec lifts c's timestamp column into a format.TypedVec.
func (c Columns) TimestampVec() format.TypedVec {
	return format.TypedVec{Type: format.Int32, Int32Vec: c.Timestamps}
}

// TemperatureVec lifts c's temperature column into a format.TypedVec.
func (c Columns) TemperatureVec() format.TypedVec {
	return format.TypedVec{Type: format.Int8, Int8Vec: c.Temperature}
}

// DateRange returns the min/max of the timestamp column, as required by the
// create subcommand to populate date_start/date_end.
func (c Columns) DateRange() (start, end int64) {
	if len(c.Timestamps) == 0 {
		return 0, 0
	}
	start, end = int64(c.Timestamps[0]), int64(c.Timestamps[0])
	for _, ts := range c.Timestamps[1:] {
		v := int64(ts)
		if v < start {
			start = v
		}
		if v > end {
			end = v
		}
	}
	return start, end
}
