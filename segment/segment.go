// Package segment aggregates a segment header with its typed column data,
// enforcing the schema/row-count invariants across columns and driving
// whole-segment read and write.
package segment

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/scottix/rtimedb/codec"
	"github.com/scottix/rtimedb/errs"
	"github.com/scottix/rtimedb/format"
	"github.com/scottix/rtimedb/internal/checksum"
	"github.com/scottix/rtimedb/section"
)

// noTSColumn marks that no column has been designated the timestamp column
// yet; it is distinct from any valid zero-based index because it is only
// ever compared against the "already set" flag below, never dereferenced.
const noTSColumn = ^uint16(0)

// Segment holds one segment header plus, in declaration order, one typed
// column vector per descriptor.
type Segment struct {
	Header  section.SegmentHeader
	Columns []format.TypedVec

	tsSet       bool
	rowCount    int
	rowCountSet bool
}

// New creates an empty Segment and stamps a fresh time-ordered UUIDv7 as its
// transaction id. The txid is generated here, at construction, not at save —
// so a caller inspecting the segment before any I/O begins already sees its
// final txid.
func New() (*Segment, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("tsf: generate txid: %w", err)
	}

	s := &Segment{
		Header: section.SegmentHeader{
			TSColumnIndex: noTSColumn,
		},
	}
	s.Header.SetTxID(id)
	return s, nil
}

// AddColumn appends a column descriptor to the segment's schema. If
// isTimestamp is set, it designates this column (by the index it will have
// once appended) as the segment's timestamp column; a second such
// designation fails with ErrTimestampAlreadySet, and a type outside
// {Int32, Int64, DateTime32, DateTime64} fails with ErrInvalidTimestampType.
func (s *Segment) AddColumn(desc section.ColumnDescriptor, isTimestamp bool) error {
	idx := len(s.Header.Descriptors)

	if isTimestamp {
		if s.tsSet {
			return errs.ErrTimestampAlreadySet
		}
		if !desc.Type.IsValidTimestampType() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidTimestampType, desc.Type)
		}
		s.Header.SetTSColumnIndex(uint16(idx))
		s.tsSet = true
	}

	s.Header.Descriptors = append(s.Header.Descriptors, desc)
	return nil
}

// SetTimestampColumn designates column index idx (already added via
// AddColumn) as the timestamp column, for callers that set the flag
// out-of-band from AddColumn. Errors as AddColumn's isTimestamp path does,
// plus ErrTimestampOutOfBounds when idx doesn't refer to a declared column.
func (s *Segment) SetTimestampColumn(idx uint16) error {
	if s.tsSet {
		return errs.ErrTimestampAlreadySet
	}
	if int(idx) >= len(s.Header.Descriptors) {
		return errs.ErrTimestampOutOfBounds
	}
	if !s.Header.Descriptors[idx].Type.IsValidTimestampType() {
		return fmt.Errorf("%w: %s", errs.ErrInvalidTimestampType, s.Header.Descriptors[idx].Type)
	}
	s.Header.SetTSColumnIndex(idx)
	s.tsSet = true
	return nil
}

// AddData appends the next column's data. The first call establishes the
// segment's row count; every subsequent call must match it exactly. Zero-row
// vectors and vectors appended past the declared column count are rejected.
//
// The row-count probe below is exhaustive over every ElementType variant via
// format.TypedVec.Len — it never silently reports zero rows for a variant it
// doesn't recognize.
func (s *Segment) AddData(vec format.TypedVec) error {
	if len(s.Columns) >= len(s.Header.Descriptors) {
		return errs.ErrExcessData
	}

	n := vec.Len()
	if n == 0 {
		return errs.ErrEmptyColumn
	}

	if !s.rowCountSet {
		s.rowCount = n
		s.rowCountSet = true
	} else if n != s.rowCount {
		return fmt.Errorf("%w: column has %d rows, segment has %d", errs.ErrRowCountMismatch, n, s.rowCount)
	}

	s.Columns = append(s.Columns, vec)
	return nil
}

// SetDateRange records the segment's inclusive date bounds. No validation
// happens here; the writer layer validates the range against the timestamp
// column before persisting (see writer.Writer.TrySave).
func (s *Segment) SetDateRange(start, end int64) {
	s.Header.SetDateRange(start, end)
}

// RowCount returns the row count established by AddData, or 0 if no data
// has been appended yet.
func (s *Segment) RowCount() int {
	return s.rowCount
}

// TimestampBounds returns the minimum and maximum values found in the
// designated timestamp column, as int64 regardless of the column's exact
// element type. ok is false if no timestamp column has been designated yet
// or its data hasn't been appended.
func (s *Segment) TimestampBounds() (minV, maxV int64, ok bool) {
	if !s.tsSet || int(s.Header.TSColumnIndex) >= len(s.Columns) {
		return 0, 0, false
	}

	vec := s.Columns[s.Header.TSColumnIndex]
	n := vec.Len()
	if n == 0 {
		return 0, 0, false
	}

	get := func(i int) int64 {
		switch vec.Type {
		case format.Int32:
			return int64(vec.Int32Vec[i])
		case format.Int64:
			return vec.Int64Vec[i]
		case format.DateTime32:
			return int64(vec.DateTime32[i])
		case format.DateTime64:
			return vec.DateTime64[i]
		default:
			return 0
		}
	}

	minV, maxV = get(0), get(0)
	for i := 1; i < n; i++ {
		v := get(i)
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return minV, maxV, true
}

// WriteTo encodes every column, fills in each descriptor's size and
// checksum, computes next_offset, and writes the header followed by the
// column slabs in declaration order.
func (s *Segment) WriteTo(w io.Writer) (int64, error) {
	if !s.tsSet {
		return 0, errs.ErrNoTimestampColumn
	}

	encoded := make([][]byte, len(s.Columns))
	var columnBytes int64
	for i, col := range s.Columns {
		b := codec.Encode(col)
		encoded[i] = b

		sum := checksum.Bytes(b)
		s.Header.Descriptors[i].Size = uint64(len(b))
		s.Header.Descriptors[i].Checksum = sum

		columnBytes += int64(len(b))
	}

	s.Header.RowCount = uint32(s.rowCount)

	// next_offset depends on the header's own serialised size, so compute
	// it from a throwaway pass before the real, hashed serialisation.
	probe, err := s.Header.WriteBody()
	if err != nil {
		return 0, err
	}
	headerSize := int64(len(probe)) + 8
	s.Header.SetNextOffset(uint32(headerSize + columnBytes))

	body, err := s.Header.WriteBody()
	if err != nil {
		return 0, err
	}
	s.Header.SegmentCheck = checksum.Bytes(body)

	var written int64
	n, err := w.Write(body)
	written += int64(n)
	if err != nil {
		return written, err
	}

	n, err = w.Write(s.Header.SegmentCheck[:])
	written += int64(n)
	if err != nil {
		return written, err
	}

	for _, b := range encoded {
		n, err = w.Write(b)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

// ReadFrom parses a segment header from r's remaining bytes, then for each
// descriptor in order reads exactly Size bytes and decodes them into a
// TypedVec appended to Columns. A descriptor whose encoding or compression
// tag isn't None fails with ErrUnsupportedCodec rather than decoding the
// bytes as if they were: this implementation never realizes Delta,
// DoubleDelta, or ZStd on disk, so it cannot safely interpret data a future
// version wrote under one of those tags.
func (s *Segment) ReadFrom(r io.Reader) (int64, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	h, err := section.ReadSegmentHeader(all)
	if err != nil {
		return int64(len(all)), err
	}
	s.Header = h
	s.tsSet = true
	s.rowCount = int(h.RowCount)
	s.rowCountSet = true

	off := int(section.FixedHeaderSize) + int(h.ColumnHeaderSize) + 8
	s.Columns = make([]format.TypedVec, 0, len(h.Descriptors))
	for _, desc := range h.Descriptors {
		if desc.Encoding != format.EncodingNone || desc.Compression != format.CompressionNone {
			return int64(len(all)), fmt.Errorf("%w: column %q has encoding=%s compression=%s",
				errs.ErrUnsupportedCodec, desc.Name, desc.Encoding, desc.Compression)
		}

		size := int(desc.Size)
		if off+size > len(all) {
			return int64(len(all)), fmt.Errorf("%w: column %q data", errs.ErrDecodeTruncated, desc.Name)
		}
		vec, err := codec.Decode(all[off:off+size], desc.Type, int(s.rowCount))
		if err != nil {
			return int64(len(all)), fmt.Errorf("tsf: column %q: %w", desc.Name, err)
		}
		s.Columns = append(s.Columns, vec)
		off += size
	}

	return int64(len(all)), nil
}
