// Package writer implements guided, schema-then-data-then-dates segment
// construction and atomic-on-failure persistence to a TSF file.
package writer

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/scottix/rtimedb/errs"
	"github.com/scottix/rtimedb/filehdr"
	"github.com/scottix/rtimedb/format"
	"github.com/scottix/rtimedb/internal/options"
	"github.com/scottix/rtimedb/section"
	"github.com/scottix/rtimedb/segment"
)

// Config holds a Writer's optional configuration.
type Config struct {
	Logger *slog.Logger
}

// Option configures a Writer at Open time.
type Option = options.Option[*Config]

// WithLogger overrides the Writer's logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return options.NoError(func(c *Config) { c.Logger = l })
}

// stage tracks where in the schema->data->dates->save sequence a Writer is,
// to reject out-of-order calls.
type stage int

const (
	stageSchema stage = iota
	stageData
	stageDates
	stageSaved
)

// Writer guides the construction of a single segment and persists it to a
// file, deleting the file on save failure if and only if this Writer
// created it. Go has no destructor to run that cleanup automatically, so
// callers must defer Close.
type Writer struct {
	path        string
	fileExisted bool
	cleanup     bool
	file        *os.File

	seg   *segment.Segment
	st    stage
	log   *slog.Logger
	saved bool
}

// Open creates path fresh (truncating to empty) if it doesn't already exist,
// or reopens it in append mode if it does. The newly-created case arms a
// cleanup latch: if TrySave never succeeds, Close removes the file. An
// already-existing file is never removed by this Writer regardless of
// outcome.
func Open(path string, opts ...Option) (*Writer, error) {
	cfg := &Config{Logger: slog.Default()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	_, statErr := os.Stat(path)
	fileExisted := statErr == nil

	flags := os.O_RDWR | os.O_CREATE
	if fileExisted {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}

	seg, err := segment.New()
	if err != nil {
		f.Close()
		return nil, err
	}

	w := &Writer{
		path:        path,
		fileExisted: fileExisted,
		cleanup:     !fileExisted,
		file:        f,
		seg:         seg,
		log:         cfg.Logger,
	}

	w.log.Debug("tsf writer opened", "path", path, "existed", fileExisted)
	return w, nil
}

// AddColumnHeader declares the next column's schema. isTimestamp designates
// it as the segment's single timestamp column.
func (w *Writer) AddColumnHeader(name string, et format.ElementType, enc format.EncodingType, comp format.CompressionType, meta format.ColumnMeta, isTimestamp bool) error {
	if w.st > stageSchema {
		return fmt.Errorf("%w: add_column_header after data append started", errs.ErrOutOfOrder)
	}

	return w.seg.AddColumn(section.ColumnDescriptor{
		Name:        name,
		Type:        et,
		Meta:        meta,
		Encoding:    enc,
		Compression: comp,
	}, isTimestamp)
}

// AddColumnData appends the next column's data vector, in the same order
// columns were declared via AddColumnHeader.
func (w *Writer) AddColumnData(vec format.TypedVec) error {
	if w.st > stageData {
		return fmt.Errorf("%w: add_column_data after dates set", errs.ErrOutOfOrder)
	}
	w.st = stageData

	return w.seg.AddData(vec)
}

// UpdateSegmentDates records the segment's inclusive date bounds.
func (w *Writer) UpdateSegmentDates(start, end int64) error {
	if w.st > stageDates {
		return fmt.Errorf("%w: update_segment_dates after save", errs.ErrOutOfOrder)
	}
	w.st = stageDates

	w.seg.SetDateRange(start, end)
	return nil
}

// TrySave validates the segment's date range against its timestamp column,
// clears the cleanup latch, and persists the file header and segment. On
// any error, the cleanup latch is re-armed and the error is returned; the
// file itself is only removed later, by Close, and only if it didn't
// pre-exist before Open.
func (w *Writer) TrySave() error {
	minV, maxV, ok := w.seg.TimestampBounds()
	if !ok {
		return errs.ErrNoTimestampColumn
	}
	if w.seg.Header.DateStart > w.seg.Header.DateEnd ||
		w.seg.Header.DateStart < minV || w.seg.Header.DateEnd > maxV {
		return errs.ErrInvalidDateRange
	}

	w.cleanup = false

	if err := w.save(); err != nil {
		w.cleanup = !w.fileExisted
		return err
	}

	w.saved = true
	w.st = stageSaved
	return nil
}

func (w *Writer) save() error {
	if _, err := w.file.Write(filehdr.New().Bytes()); err != nil {
		return err
	}
	if _, err := w.seg.WriteTo(w.file); err != nil {
		return err
	}

	w.log.Debug("tsf segment saved", "path", w.path, "rows", w.seg.RowCount())
	return nil
}

// Close finalises the Writer: it closes the underlying file handle, and if
// TrySave never succeeded and this Writer created path (it didn't exist
// before Open), removes the file. This is the explicit-resource-management
// analogue of the guarded file-removal a destructor would otherwise perform
// on drop.
func (w *Writer) Close() error {
	closeErr := w.file.Close()

	if w.cleanup && !w.fileExisted {
		if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return closeErr
}
