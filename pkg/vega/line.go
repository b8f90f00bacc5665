package vega

import (
	"github.com/rangeviz/rangeviz/pkg/table"
)

// Line builds a multi-series line chart from the long-format pivot.
func Line(p Params) (*Spec, error) {
	mark := map[string]any{"type": "line", "point": true}
	return baseLite(p, mark, longEncoding(p.Table)), nil
}

// Area builds an overlapping area chart from the long-format pivot.
func Area(p Params) (*Spec, error) {
	mark := map[string]any{"type": "area", "opacity": 0.7}
	enc := longEncoding(p.Table)
	enc["y"].(map[string]any)["stack"] = nil
	return baseLite(p, mark, enc), nil
}

// AreaStacked builds a zero-baseline stacked area chart.
func AreaStacked(p Params) (*Spec, error) {
	enc := longEncoding(p.Table)
	enc["y"].(map[string]any)["stack"] = "zero"
	return baseLite(p, "area", enc), nil
}

// Streamgraph builds a center-stacked area chart.
func Streamgraph(p Params) (*Spec, error) {
	enc := longEncoding(p.Table)
	enc["y"].(map[string]any)["stack"] = "center"
	enc["y"].(map[string]any)["axis"] = nil
	return baseLite(p, "area", enc), nil
}

// Slope builds a slope graph between two measurement columns: each row
// becomes one line from its first to its second value.
func Slope(p Params) (*Spec, error) {
	first := p.Table.Column(1)
	second := p.Table.Column(2)

	enc := map[string]any{
		"x": map[string]any{
			"field": table.SeriesField,
			"type":  TypeOrdinal,
			"sort":  []any{first, second},
			"title": "",
		},
		"y": map[string]any{
			"field": table.ValueField,
			"type":  TypeQuantitative,
			"title": "",
		},
		"color": map[string]any{
			"field": p.Table.Column(0),
			"type":  TypeNominal,
			"title": p.Table.Column(0),
		},
	}

	mark := map[string]any{"type": "line", "point": true}
	spec := baseLite(p, mark, enc)
	spec.Body["transform"] = []any{
		map[string]any{"fold": []any{first, second}, "as": []any{table.SeriesField, table.ValueField}},
	}
	return spec, nil
}

// Bump builds a bump chart over the derived per-period rankings. The
// rank axis is reversed so rank 1 sits on top.
func Bump(p Params) (*Spec, error) {
	enc := map[string]any{
		"x": map[string]any{
			"field": p.Table.Column(0),
			"type":  TypeOrdinal,
			"sort":  nil,
		},
		"y": map[string]any{
			"field": "rank",
			"type":  TypeQuantitative,
			"scale": map[string]any{"reverse": true},
			"axis":  map[string]any{"tickMinStep": 1},
		},
		"color": map[string]any{
			"field": table.SeriesField,
			"type":  TypeNominal,
			"title": "",
		},
	}

	mark := map[string]any{"type": "line", "point": true, "interpolate": "monotone"}
	return baseLite(p, mark, enc), nil
}

// Horizon builds a banded horizon chart: each series is faceted into
// its own row and the derived bands overlay at increasing opacity.
func Horizon(p Params) (*Spec, error) {
	enc := map[string]any{
		"x": map[string]any{
			"field": p.Table.Column(0),
			"type":  FieldType(p.Table, 0),
		},
		"y": map[string]any{
			"field": table.ValueField,
			"type":  TypeQuantitative,
			"stack": nil,
			"axis":  nil,
		},
		"fillOpacity": map[string]any{
			"field":  "band",
			"type":   TypeOrdinal,
			"scale":  map[string]any{"range": []any{0.3, 0.6, 1}},
			"legend": nil,
		},
		"row": map[string]any{
			"field": table.SeriesField,
			"title": "",
		},
	}

	spec := baseLite(p, "area", enc)
	// Faceted docs size per facet, not per canvas.
	spec.Body["height"] = p.Height / 3
	return spec, nil
}
