package section

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/scottix/rtimedb/endian"
	"github.com/scottix/rtimedb/errs"
)

// FixedHeaderSize is the width of the segment header's fixed-layout prefix,
// before the variable-length column descriptors.
const FixedHeaderSize = 49

// SegmentHeader is the fixed-layout metadata that precedes a segment's
// column descriptors: tombstone, txid, date range, row/column counts, the
// timestamp column index, and the total size of the descriptor region.
type SegmentHeader struct {
	Tombstone  bool
	NextOffset uint32
	TxID       uuid.UUID
	DateStart  int64
	DateEnd    int64
	RowCount   uint32
	ColumnCount uint16
	TSColumnIndex uint16
	ColumnHeaderSize uint32

	Descriptors []ColumnDescriptor

	// SegmentCheck is the trailing 8-byte segment checksum. Readers accept
	// and round-trip whatever is found here without validating it.
	SegmentCheck [8]byte

	set fieldsSet
}

// fieldsSet tracks which Option-typed fields have been explicitly set, so
// Write can reject a header finalised without them.
type fieldsSet struct {
	nextOffset    bool
	txID          bool
	dateStart     bool
	dateEnd       bool
	tsColumnIndex bool
}

// SetNextOffset records the segment's total byte size.
func (h *SegmentHeader) SetNextOffset(v uint32) {
	h.NextOffset = v
	h.set.nextOffset = true
}

// SetTxID records the segment's transaction id.
func (h *SegmentHeader) SetTxID(id uuid.UUID) {
	h.TxID = id
	h.set.txID = true
}

// SetDateRange records the inclusive timestamp bounds covered by the segment.
func (h *SegmentHeader) SetDateRange(start, end int64) {
	h.DateStart = start
	h.set.dateStart = true
	h.DateEnd = end
	h.set.dateEnd = true
}

// SetTSColumnIndex records which descriptor is the timestamp column.
func (h *SegmentHeader) SetTSColumnIndex(idx uint16) {
	h.TSColumnIndex = idx
	h.set.tsColumnIndex = true
}

// CalculateHeaderSize returns FixedHeaderSize + the summed byte size of
// every descriptor. It deliberately excludes the trailing 8-byte
// SegmentCheck: the writer emits that separately, after this sized region.
func (h *SegmentHeader) CalculateHeaderSize() uint32 {
	var total int
	for i := range h.Descriptors {
		total += h.Descriptors[i].ByteSize()
	}
	return uint32(FixedHeaderSize + total)
}

// WriteBody serialises the fixed prefix and descriptors of h — everything
// Write emits except the trailing SegmentCheck. Callers that need to hash
// the header region before stamping SegmentCheck (see segment.Segment.WriteTo)
// use this instead of Write.
func (h *SegmentHeader) WriteBody() ([]byte, error) {
	if !h.set.nextOffset || !h.set.txID || !h.set.dateStart || !h.set.dateEnd || !h.set.tsColumnIndex {
		return nil, errs.ErrMissingField
	}

	h.ColumnCount = uint16(len(h.Descriptors))
	h.ColumnHeaderSize = h.CalculateHeaderSize() - FixedHeaderSize

	engine := endian.GetLittleEndianEngine()
	b := make([]byte, 0, h.CalculateHeaderSize())

	if h.Tombstone {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	b = engine.AppendUint32(b, h.NextOffset)
	b = append(b, h.TxID[:]...)
	b = engine.AppendUint64(b, uint64(h.DateStart))
	b = engine.AppendUint64(b, uint64(h.DateEnd))
	b = engine.AppendUint32(b, h.RowCount)
	b = engine.AppendUint16(b, h.ColumnCount)
	b = engine.AppendUint16(b, h.TSColumnIndex)
	b = engine.AppendUint32(b, h.ColumnHeaderSize)

	for i := range h.Descriptors {
		b = append(b, h.Descriptors[i].Bytes()...)
	}

	return b, nil
}

// Write serialises h, including its descriptors and trailing SegmentCheck.
// Every Option-typed field (NextOffset, TxID, DateStart/DateEnd,
// TSColumnIndex) must have been set via its setter beforehand, or Write
// fails with ErrMissingField.
func (h *SegmentHeader) Write() ([]byte, error) {
	body, err := h.WriteBody()
	if err != nil {
		return nil, err
	}
	return append(body, h.SegmentCheck[:]...), nil
}

// ReadSegmentHeader parses a SegmentHeader from the front of data: the
// 49-byte fixed prefix, then column_header_size bytes of descriptors, then
// 8 bytes of trailing segment checksum.
func ReadSegmentHeader(data []byte) (SegmentHeader, error) {
	if len(data) < FixedHeaderSize {
		return SegmentHeader{}, fmt.Errorf("%w: segment header fixed prefix", errs.ErrDecodeTruncated)
	}

	engine := endian.GetLittleEndianEngine()
	var h SegmentHeader

	h.Tombstone = data[0] != 0
	h.NextOffset = engine.Uint32(data[1:5])
	copy(h.TxID[:], data[5:21])
	h.DateStart = int64(engine.Uint64(data[21:29]))
	h.DateEnd = int64(engine.Uint64(data[29:37]))
	h.RowCount = engine.Uint32(data[37:41])
	h.ColumnCount = engine.Uint16(data[41:43])
	h.TSColumnIndex = engine.Uint16(data[43:45])
	h.ColumnHeaderSize = engine.Uint32(data[45:49])

	rest := data[FixedHeaderSize:]
	need := int(h.ColumnHeaderSize) + 8
	if len(rest) < need {
		return SegmentHeader{}, fmt.Errorf("%w: segment descriptors and checksum", errs.ErrDecodeTruncated)
	}

	descBytes := rest[:h.ColumnHeaderSize]
	h.Descriptors = make([]ColumnDescriptor, 0, h.ColumnCount)
	for range int(h.ColumnCount) {
		d, n, err := ParseColumnDescriptor(descBytes)
		if err != nil {
			return SegmentHeader{}, err
		}
		h.Descriptors = append(h.Descriptors, d)
		descBytes = descBytes[n:]
	}

	copy(h.SegmentCheck[:], rest[h.ColumnHeaderSize:h.ColumnHeaderSize+8])

	h.set = fieldsSet{nextOffset: true, txID: true, dateStart: true, dateEnd: true, tsColumnIndex: true}

	return h, nil
}
