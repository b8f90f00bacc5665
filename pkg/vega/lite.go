package vega

import (
	"github.com/rangeviz/rangeviz/pkg/table"
)

// baseLite assembles the shared Vega-Lite skeleton: schema, canvas
// dimensions, white background, inline data, and the given mark and
// encoding. Builders add transforms or swap sections as needed.
func baseLite(p Params, mark any, enc map[string]any) *Spec {
	applyRules(enc, p)

	body := map[string]any{
		"$schema":    schemaVegaLite,
		"width":      p.Width,
		"height":     p.Height,
		"background": "white",
		"data":       map[string]any{"values": p.Records},
		"mark":       mark,
		"encoding":   enc,
	}
	if p.Title != "" {
		body["title"] = p.Title
	}

	return &Spec{Dialect: DialectVegaLite, Body: body}
}

// layeredLite assembles a multi-layer Vega-Lite document sharing one
// inline dataset.
func layeredLite(p Params, layers []map[string]any) *Spec {
	body := map[string]any{
		"$schema":    schemaVegaLite,
		"width":      p.Width,
		"height":     p.Height,
		"background": "white",
		"data":       map[string]any{"values": p.Records},
		"layer":      layers,
	}
	if p.Title != "" {
		body["title"] = p.Title
	}

	return &Spec{Dialect: DialectVegaLite, Body: body}
}

// longEncoding is the shared encoding for long-format pivots: key
// column on x, coerced value on y, series on color.
func longEncoding(t *table.Table) map[string]any {
	return map[string]any{
		"x": map[string]any{
			"field": t.Column(0),
			"type":  FieldType(t, 0),
		},
		"y": map[string]any{
			"field": table.ValueField,
			"type":  TypeQuantitative,
			"title": valueAxisTitle(t),
		},
		"color": map[string]any{
			"field": table.SeriesField,
			"type":  TypeNominal,
			"title": "",
		},
	}
}

// valueAxisTitle names the pivoted value axis: the single series name
// when only one value column exists, a generic label otherwise.
func valueAxisTitle(t *table.Table) string {
	if t.Columns() == 2 {
		return t.Column(1)
	}
	return "value"
}
