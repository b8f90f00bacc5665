package vega

import (
	"github.com/rangeviz/rangeviz/pkg/table"
)

// Bar builds a vertical bar chart: first column on x, second on y.
func Bar(p Params) (*Spec, error) {
	enc := map[string]any{
		"x": map[string]any{
			"field": p.Table.Column(0),
			"type":  TypeNominal,
			"sort":  nil,
		},
		"y": fieldQuantitative(p.Table, 1),
	}
	return baseLite(p, "bar", enc), nil
}

// BarStacked builds a stacked bar chart from the long-format pivot.
func BarStacked(p Params) (*Spec, error) {
	enc := longEncoding(p.Table)
	enc["x"].(map[string]any)["sort"] = nil
	enc["y"].(map[string]any)["stack"] = "zero"
	return baseLite(p, "bar", enc), nil
}

// BarGrouped builds a grouped bar chart: one bar cluster per key with
// series offset within the cluster.
func BarGrouped(p Params) (*Spec, error) {
	enc := longEncoding(p.Table)
	enc["x"].(map[string]any)["sort"] = nil
	enc["xOffset"] = map[string]any{"field": table.SeriesField}
	return baseLite(p, "bar", enc), nil
}

// BarHorizontal builds a horizontal bar chart: categories on y, values
// on x.
func BarHorizontal(p Params) (*Spec, error) {
	enc := map[string]any{
		"y": map[string]any{
			"field": p.Table.Column(0),
			"type":  TypeNominal,
			"sort":  nil,
		},
		"x": fieldQuantitative(p.Table, 1),
	}
	return baseLite(p, "bar", enc), nil
}

// Funnel builds a centered funnel from stage/value records. The bars
// are mirrored around zero via calculated left/right bounds; the
// engine does the arithmetic declaratively.
func Funnel(p Params) (*Spec, error) {
	enc := map[string]any{
		"y": map[string]any{
			"field": "stage",
			"type":  TypeNominal,
			"sort":  nil,
			"title": p.Table.Column(0),
		},
		"x": map[string]any{
			"field": "left",
			"type":  TypeQuantitative,
			"axis":  nil,
		},
		"x2": map[string]any{"field": "right"},
		"color": map[string]any{
			"field":  "stage",
			"type":   TypeNominal,
			"legend": nil,
		},
		"tooltip": []any{
			map[string]any{"field": "stage", "type": TypeNominal},
			map[string]any{"field": "value", "type": TypeQuantitative},
			map[string]any{"field": "percent", "type": TypeQuantitative, "format": ".1f"},
		},
	}

	spec := baseLite(p, "bar", enc)
	spec.Body["transform"] = []any{
		map[string]any{"calculate": "-datum.value/2", "as": "left"},
		map[string]any{"calculate": "datum.value/2", "as": "right"},
	}
	return spec, nil
}

// Waterfall builds a floating-bar waterfall from derived running-sum
// segments. The closing total bar and negative steps get their own
// colors.
func Waterfall(p Params) (*Spec, error) {
	enc := map[string]any{
		"x": map[string]any{
			"field": "label",
			"type":  TypeNominal,
			"sort":  nil,
			"title": p.Table.Column(0),
		},
		"y": map[string]any{
			"field": "start",
			"type":  TypeQuantitative,
			"title": p.Table.Column(1),
		},
		"y2": map[string]any{"field": "end"},
		"color": map[string]any{
			"condition": []any{
				map[string]any{"test": "datum.total", "value": "#4c78a8"},
				map[string]any{"test": "datum.amount < 0", "value": "#e45756"},
			},
			"value": "#54a24b",
		},
	}
	return baseLite(p, "bar", enc), nil
}

// Variance builds paired baseline/actual bars with delta tooltips. The
// fold transform reuses the original column names as series labels.
func Variance(p Params) (*Spec, error) {
	base := p.Table.Column(1)
	actual := p.Table.Column(2)

	enc := map[string]any{
		"x": map[string]any{
			"field": "label",
			"type":  TypeNominal,
			"sort":  nil,
			"title": p.Table.Column(0),
		},
		"y": map[string]any{
			"field": table.ValueField,
			"type":  TypeQuantitative,
			"title": "",
		},
		"color":   map[string]any{"field": table.SeriesField, "type": TypeNominal, "title": ""},
		"xOffset": map[string]any{"field": table.SeriesField},
		"tooltip": []any{
			map[string]any{"field": "label", "type": TypeNominal},
			map[string]any{"field": "delta", "type": TypeQuantitative},
			map[string]any{"field": "percent", "type": TypeQuantitative, "format": ".1f"},
		},
	}

	spec := baseLite(p, "bar", enc)
	spec.Body["transform"] = []any{
		map[string]any{"fold": []any{base, actual}, "as": []any{table.SeriesField, table.ValueField}},
	}
	return spec, nil
}

// fieldQuantitative binds a column as a quantitative channel.
func fieldQuantitative(t *table.Table, col int) map[string]any {
	return map[string]any{
		"field": t.Column(col),
		"type":  TypeQuantitative,
	}
}
