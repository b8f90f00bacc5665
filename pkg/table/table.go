// Package table models a rectangular range of spreadsheet cells and the
// reshaping operations that turn it into the record sets chart
// specifications consume.
//
// The input contract is the one every chart entry point shares: row 0 is
// the field-name header, the remaining rows are data records. Reshaping
// comes in three variants:
//
//   - Flat records: one mapping per row, header names zipped with cells
//   - Long-format pivot: one record per (row, series column) pair for
//     multi-series charts
//   - Hierarchical synthesis: a deduplicated parent/child node graph for
//     tree-like charts
//
// Numeric coercion failures follow one of two documented policies, chosen
// per chart type (see Policy): the offending row is dropped, or the value
// defaults to 0.
package table

import (
	"strings"

	"github.com/rangeviz/rangeviz/pkg/errors"
)

// Table is a parsed tabular range: a header row plus data rows.
//
// Rows may be ragged; operations apply defensive length checks rather
// than rejecting inconsistent widths.
type Table struct {
	Header []string
	Rows   [][]Value
}

// New builds a Table from raw cells. Row 0 becomes the header; at least
// one data row must follow it.
func New(cells [][]Value) (*Table, error) {
	if len(cells) < 2 {
		return nil, errors.New(errors.ErrCodeShapeTooSmall,
			"selection needs a header row and at least one data row, got %d row(s)", len(cells))
	}

	header := make([]string, len(cells[0]))
	for i, c := range cells[0] {
		header[i] = strings.TrimSpace(c.Text())
	}

	rows := make([][]Value, len(cells)-1)
	copy(rows, cells[1:])

	return &Table{Header: header, Rows: rows}, nil
}

// Columns returns the header width.
func (t *Table) Columns() int {
	return len(t.Header)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Column returns the header name for column i, or "" when i is out of
// range.
func (t *Table) Column(i int) string {
	if i < 0 || i >= len(t.Header) {
		return ""
	}
	return t.Header[i]
}

// Cell returns the value at (row, col), or the empty value when the row
// is too short or the indexes are out of range.
func (t *Table) Cell(row, col int) Value {
	if row < 0 || row >= len(t.Rows) {
		return Empty()
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return Empty()
	}
	return r[col]
}

// Policy selects how a failed numeric coercion in a required column is
// handled. The split is intentional and carried over from the observed
// per-chart behavior: histogram, candlestick, box, and map drop the row,
// while line, area, and waterfall substitute 0.
type Policy int

const (
	// Drop discards the whole row when a required numeric cell fails to
	// coerce.
	Drop Policy = iota
	// Zero substitutes 0 for a required numeric cell that fails to
	// coerce; the row is kept.
	Zero
)

// String returns a human-readable name for the policy.
func (p Policy) String() string {
	switch p {
	case Drop:
		return "drop"
	case Zero:
		return "zero"
	default:
		return "unknown"
	}
}

// Coerce applies the policy to a single cell. The returned bool reports
// whether the row should be kept.
func Coerce(v Value, p Policy) (float64, bool) {
	f, ok := v.Float()
	if ok {
		return f, true
	}
	if p == Zero {
		return 0, true
	}
	return 0, false
}
