package table

// Record is one reshaped data point: field name → scalar value. Records
// marshal to JSON objects with deterministic (sorted) key order.
type Record map[string]any

// Long-format pivot field names. The key field keeps the key column's
// header name; series and value are fixed.
const (
	SeriesField = "series"
	ValueField  = "value"
)

// Records produces the flat mapping: one record per row with header names
// zipped against cells. Short rows yield records missing their trailing
// fields; cells beyond the header width are ignored.
func (t *Table) Records() []Record {
	out := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(Record, len(t.Header))
		for i, name := range t.Header {
			if i >= len(row) {
				break
			}
			rec[name] = row[i].Any()
		}
		out = append(out, rec)
	}
	return out
}

// LongRecords pivots the table into long format for multi-series charts:
// one record per (row, non-key column) pair carrying the key cell, the
// column's header name as the series, and the cell coerced to a number.
//
// Empty and missing cells are skipped. Failed coercions default to 0.
func (t *Table) LongRecords(keyCol int) []Record {
	key := t.Column(keyCol)
	out := make([]Record, 0, len(t.Rows)*max(len(t.Header)-1, 0))

	for r, row := range t.Rows {
		for c := range t.Header {
			if c == keyCol || c >= len(row) {
				continue
			}
			cell := row[c]
			if cell.IsEmpty() {
				continue
			}
			v, _ := Coerce(cell, Zero)
			out = append(out, Record{
				key:         t.Cell(r, keyCol).Any(),
				SeriesField: t.Header[c],
				ValueField:  v,
			})
		}
	}
	return out
}

// NumericRecords produces flat records with the given columns coerced to
// numbers under the policy. Under Drop, any row whose required cell fails
// to coerce is discarded; under Zero the cell becomes 0 and the row is
// kept.
func (t *Table) NumericRecords(numericCols []int, p Policy) []Record {
	required := make(map[int]bool, len(numericCols))
	for _, c := range numericCols {
		required[c] = true
	}

	out := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(Record, len(t.Header))
		keep := true
		for i, name := range t.Header {
			if i >= len(row) {
				if required[i] {
					keep = p == Zero
					if keep {
						rec[name] = float64(0)
					}
				}
				continue
			}
			if required[i] {
				v, ok := Coerce(row[i], p)
				if !ok {
					keep = false
					break
				}
				rec[name] = v
				continue
			}
			rec[name] = row[i].Any()
		}
		if keep {
			out = append(out, rec)
		}
	}
	return out
}

// Floats extracts a single column as numbers under the policy. Under
// Drop, failed cells are omitted; under Zero they contribute 0.
func (t *Table) Floats(col int, p Policy) []float64 {
	out := make([]float64, 0, len(t.Rows))
	for r := range t.Rows {
		v, ok := Coerce(t.Cell(r, col), p)
		if !ok {
			continue
		}
		out = append(out, v)
	}
	return out
}
