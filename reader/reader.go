// Package reader opens a TSF file, verifies its header, loads its segment,
// and exposes column access plus a row-stream adapter.
package reader

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/scottix/rtimedb/filehdr"
	"github.com/scottix/rtimedb/format"
	"github.com/scottix/rtimedb/segment"
)

// DataRow is one row projected across every column, in column order.
type DataRow struct {
	Values []format.ScalarValue
}

// Reader opens a TSF file read-only and, once ReadAll has been called,
// exposes its segment's columns and rows. Reader is not safe for concurrent
// use.
type Reader struct {
	path string
	seg  *segment.Segment
}

// Open prepares a Reader over path without reading anything eagerly.
func Open(path string) (*Reader, error) {
	return &Reader{path: path}, nil
}

// ReadAll reads and verifies the file header, then parses the full segment.
func (r *Reader) ReadAll() error {
	f, err := os.Open(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	prefix := make([]byte, filehdr.Size)
	if _, err := io.ReadFull(f, prefix); err != nil {
		return fmt.Errorf("tsf: read file header: %w", err)
	}

	hdr, err := filehdr.Read(prefix)
	if err != nil {
		return err
	}
	if err := hdr.Verify(); err != nil {
		return err
	}

	seg := &segment.Segment{}
	if _, err := seg.ReadFrom(f); err != nil {
		return err
	}
	r.seg = seg

	return nil
}

// ColumnCount returns the number of columns in the loaded segment.
func (r *Reader) ColumnCount() int {
	return len(r.seg.Header.Descriptors)
}

// RowCount returns the row count of the loaded segment.
func (r *Reader) RowCount() int {
	return r.seg.RowCount()
}

// Column returns the TypedVec at index i, or false if i is out of range.
func (r *Reader) Column(i int) (format.TypedVec, bool) {
	if i < 0 || i >= len(r.seg.Columns) {
		return format.TypedVec{}, false
	}
	return r.seg.Columns[i], true
}

// ColumnName returns the name of the descriptor at index i, or "" if i is
// out of range.
func (r *Reader) ColumnName(i int) string {
	if i < 0 || i >= len(r.seg.Header.Descriptors) {
		return ""
	}
	return r.seg.Header.Descriptors[i].Name
}

// StreamRows returns a finite, single-pass sequence of DataRow, one per row
// of the loaded segment, each row built by projecting the element at that
// row index from every column in column order.
//
// This sequence is pre-materialised: ReadAll has already loaded the entire
// segment into memory, so there is no further I/O suspension inside the
// stream. An implementation could later replace this with an I/O-driven
// lazy decoder without changing the observable sequence.
func (r *Reader) StreamRows() iter.Seq[DataRow] {
	return func(yield func(DataRow) bool) {
		rows := r.seg.RowCount()
		cols := r.seg.Columns

		for i := range rows {
			values := make([]format.ScalarValue, len(cols))
			for c, vec := range cols {
				values[c] = vec.At(i)
			}
			if !yield(DataRow{Values: values}) {
				return
			}
		}
	}
}
