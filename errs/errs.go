// Package errs collects the sentinel errors shared by every TSF package.
//
// Call sites wrap these with additional context using fmt.Errorf("%w: ...", errs.ErrX, ...)
// rather than constructing new error values, so callers can always test with errors.Is.
package errs

import "errors"

// Format errors.
var (
	// ErrBadMagic is returned when a file's first 4 bytes don't match the TSFD magic number.
	ErrBadMagic = errors.New("tsf: bad magic number")
	// ErrUnsupportedVersion is returned when a file's version field isn't recognized.
	ErrUnsupportedVersion = errors.New("tsf: unsupported file version")
	// ErrDecodeTruncated is returned when a column buffer is shorter than element_width*count.
	ErrDecodeTruncated = errors.New("tsf: column data truncated")
	// ErrDecodeTrailing is returned when a column buffer has more bytes than element_width*count.
	ErrDecodeTrailing = errors.New("tsf: column data has trailing bytes")
	// ErrInvalidTypeCode is returned when an ElementType code isn't one of the closed set.
	ErrInvalidTypeCode = errors.New("tsf: invalid element type code")
	// ErrInvalidEncodingCode is returned when an EncodingType code isn't one of the closed set.
	ErrInvalidEncodingCode = errors.New("tsf: invalid encoding code")
	// ErrInvalidCompressionCode is returned when a CompressionType code isn't one of the closed set.
	ErrInvalidCompressionCode = errors.New("tsf: invalid compression code")
)

// Invariant errors.
var (
	// ErrEmptyColumn is returned by Segment.AddData when the supplied vector has zero rows.
	ErrEmptyColumn = errors.New("tsf: column has zero rows")
	// ErrRowCountMismatch is returned when a column's length disagrees with the segment's row count.
	ErrRowCountMismatch = errors.New("tsf: row count mismatch")
	// ErrExcessData is returned when more data vectors are appended than columns were declared.
	ErrExcessData = errors.New("tsf: more data columns appended than declared")
	// ErrTimestampAlreadySet is returned when a second column is designated the timestamp column.
	ErrTimestampAlreadySet = errors.New("tsf: timestamp column already set")
	// ErrTimestampOutOfBounds is returned when a timestamp column index doesn't refer to a declared column.
	ErrTimestampOutOfBounds = errors.New("tsf: timestamp column index out of bounds")
	// ErrMissingField is returned by SegmentHeader.Write when a required Option field was never set.
	ErrMissingField = errors.New("tsf: required header field not set")
	// ErrNoTimestampColumn is returned when a segment is finalized without any column marked as timestamp.
	ErrNoTimestampColumn = errors.New("tsf: no timestamp column designated")
	// ErrInvalidTimestampType is returned when the timestamp column's element type isn't one of the allowed set.
	ErrInvalidTimestampType = errors.New("tsf: timestamp column has unsupported element type")
	// ErrInvalidDateRange is returned when date_start > date_end, or either falls outside the timestamp column's range.
	ErrInvalidDateRange = errors.New("tsf: invalid date range")
)

// Capability errors.
var (
	// ErrUnsupportedTypeForRead is returned by codec.Decode when asked to decode an element type outside the closed set.
	ErrUnsupportedTypeForRead = errors.New("tsf: element type not supported for row projection")
	// ErrUnsupportedCodec is returned when a column descriptor's encoding or compression tag isn't None.
	ErrUnsupportedCodec = errors.New("tsf: unsupported encoding or compression")
)

// Writer/CLI errors.
var (
	// ErrOutOfOrder is returned when Writer methods are called out of the schema->data->dates->save sequence.
	ErrOutOfOrder = errors.New("tsf: writer method called out of order")
)
