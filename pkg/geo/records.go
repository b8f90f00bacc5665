package geo

import (
	"github.com/rangeviz/rangeviz/pkg/table"
)

// Records reshapes (iso3, value) rows into the join records the map
// specification expects: the country's numeric id plus its value.
//
// Rows are dropped when the code does not resolve to a known country
// or the value cell fails numeric coercion.
func Records(t *table.Table) []table.Record {
	out := make([]table.Record, 0, t.RowCount())
	for r := 0; r < t.RowCount(); r++ {
		code := t.Cell(r, 0).Text()
		id, ok := NumericID(code)
		if !ok {
			continue
		}
		v, ok := table.Coerce(t.Cell(r, 1), table.Drop)
		if !ok {
			continue
		}
		out = append(out, table.Record{
			"id":    float64(id),
			"iso3":  code,
			"value": v,
		})
	}
	return out
}
