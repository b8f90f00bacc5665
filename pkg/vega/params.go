package vega

import (
	"time"

	"github.com/rangeviz/rangeviz/pkg/table"
)

// Params carries everything a builder needs: the source table (for
// column names and type inference), the reshaped records, the requested
// dimensions and title, and the optional-encoding rules for the chart
// type.
type Params struct {
	Table   *table.Table
	Records []table.Record
	Width   int
	Height  int
	Title   string
	Rules   []EncodingRule

	// Geo holds the parsed world-boundary dataset for the map type.
	// Builders that do not need it ignore it.
	Geo map[string]any
}

// EncodingRule declares "if this optional column exists, bind it to
// this visual channel". Rules are evaluated uniformly for every chart
// type that carries them, replacing per-builder presence checks.
type EncodingRule struct {
	Column  int
	Channel string
}

// applyRules adds an encoding for every rule whose column exists in the
// table, inferring the field type from the column's cells.
func applyRules(enc map[string]any, p Params) {
	for _, r := range p.Rules {
		if r.Column < 0 || r.Column >= p.Table.Columns() {
			continue
		}
		enc[r.Channel] = fieldDef(p.Table, r.Column)
	}
}

// fieldDef builds a field binding for the given column with its
// inferred type.
func fieldDef(t *table.Table, col int) map[string]any {
	return map[string]any{
		"field": t.Column(col),
		"type":  FieldType(t, col),
	}
}

// Visual field types recognized by the grammar.
const (
	TypeQuantitative = "quantitative"
	TypeNominal      = "nominal"
	TypeOrdinal      = "ordinal"
	TypeTemporal     = "temporal"
)

// temporalLayouts are the cell formats recognized as dates.
var temporalLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// FieldType infers the visual field type for a column by scanning its
// cells: all-numeric columns are quantitative, all-date columns are
// temporal, everything else is nominal. Empty cells are ignored.
func FieldType(t *table.Table, col int) string {
	numeric, temporal, seen := true, true, false

	for r := 0; r < t.RowCount(); r++ {
		cell := t.Cell(r, col)
		if cell.IsEmpty() {
			continue
		}
		seen = true

		if cell.Kind() != table.KindNumber {
			numeric = false
		}
		if !looksTemporal(cell) {
			temporal = false
		}
		if !numeric && !temporal {
			break
		}
	}

	switch {
	case !seen:
		return TypeNominal
	case numeric:
		return TypeQuantitative
	case temporal:
		return TypeTemporal
	default:
		return TypeNominal
	}
}

func looksTemporal(v table.Value) bool {
	if v.Kind() != table.KindText {
		return false
	}
	for _, layout := range temporalLayouts {
		if _, err := time.Parse(layout, v.Text()); err == nil {
			return true
		}
	}
	return false
}
