// Package exec provides a minimal physical-plan stub: an Operator interface
// and a Scan operator draining a reader's row stream. This is the extent of
// query execution in scope — no aggregation, filtering, or joins.
package exec

import (
	"iter"

	"github.com/scottix/rtimedb/reader"
)

// Operator produces a row stream. Scan is the only implementation in scope;
// the interface exists so a future planner has a seam to add operators
// against without touching the reader package.
type Operator interface {
	Rows() iter.Seq[reader.DataRow]
}

// Scan is a full-column-scan operator over an already-loaded Reader.
type Scan struct {
	r *reader.Reader
}

// NewScan wraps r in a Scan operator.
func NewScan(r *reader.Reader) *Scan {
	return &Scan{r: r}
}

// Rows returns the underlying reader's row stream, unfiltered.
func (s *Scan) Rows() iter.Seq[reader.DataRow] {
	return s.r.StreamRows()
}

var _ Operator = (*Scan)(nil)
