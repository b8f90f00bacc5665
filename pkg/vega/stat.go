package vega

// Histogram builds a bar chart over pre-computed bin records. Bins are
// derived from the value column before assembly; the spec only draws
// them.
func Histogram(p Params) (*Spec, error) {
	enc := map[string]any{
		"x": map[string]any{
			"field": "start",
			"type":  TypeQuantitative,
			"bin":   map[string]any{"binned": true},
			"title": p.Table.Column(1),
		},
		"x2": map[string]any{"field": "end"},
		"y": map[string]any{
			"field": "count",
			"type":  TypeQuantitative,
			"title": "count",
		},
	}
	return baseLite(p, "bar", enc), nil
}

// BoxPlot builds per-category box-and-whisker plots. Quartile and
// outlier computation happens inside the engine's composite mark.
func BoxPlot(p Params) (*Spec, error) {
	enc := map[string]any{
		"x": map[string]any{
			"field": p.Table.Column(0),
			"type":  TypeNominal,
			"sort":  nil,
		},
		"y": map[string]any{
			"field": p.Table.Column(1),
			"type":  TypeQuantitative,
			"scale": map[string]any{"zero": false},
		},
	}
	mark := map[string]any{"type": "boxplot", "extent": 1.5}
	return baseLite(p, mark, enc), nil
}

// Violin builds per-category violins: the engine's density transform
// estimates each group's distribution, drawn as a center-stacked area
// per facet column.
func Violin(p Params) (*Spec, error) {
	category := p.Table.Column(0)
	value := p.Table.Column(1)

	enc := map[string]any{
		"y": map[string]any{
			"field": "value",
			"type":  TypeQuantitative,
			"title": value,
		},
		"x": map[string]any{
			"field":  "density",
			"type":   TypeQuantitative,
			"stack":  "center",
			"impute": nil,
			"title":  nil,
			"axis":   map[string]any{"labels": false, "values": []any{0}, "grid": false, "ticks": true},
		},
		"color": map[string]any{
			"field":  category,
			"type":   TypeNominal,
			"legend": nil,
		},
		"column": map[string]any{
			"field": category,
			"title": "",
		},
	}

	mark := map[string]any{"type": "area", "orient": "horizontal"}
	spec := baseLite(p, mark, enc)
	spec.Body["transform"] = []any{
		map[string]any{"density": value, "groupby": []any{category}, "as": []any{"value", "density"}},
	}
	// Faceted docs size per facet, not per canvas.
	spec.Body["width"] = 100
	return spec, nil
}

// Density builds a smoothed distribution curve over the value column
// via the engine's density transform.
func Density(p Params) (*Spec, error) {
	value := p.Table.Column(1)

	enc := map[string]any{
		"x": map[string]any{
			"field": "value",
			"type":  TypeQuantitative,
			"title": value,
		},
		"y": map[string]any{
			"field": "density",
			"type":  TypeQuantitative,
		},
	}

	mark := map[string]any{"type": "area", "opacity": 0.7, "line": true}
	spec := baseLite(p, mark, enc)
	spec.Body["transform"] = []any{
		map[string]any{"density": value, "as": []any{"value", "density"}},
	}
	return spec, nil
}

// Candlestick builds an OHLC chart: a high/low rule layered under an
// open/close bar, colored by direction.
func Candlestick(p Params) (*Spec, error) {
	t := p.Table
	date := t.Column(0)
	open, high, low, cls := t.Column(1), t.Column(2), t.Column(3), t.Column(4)

	x := map[string]any{
		"field": date,
		"type":  FieldType(t, 0),
		"sort":  nil,
		"title": date,
	}
	color := map[string]any{
		"condition": map[string]any{
			"test":  "datum['" + open + "'] <= datum['" + cls + "']",
			"value": "#54a24b",
		},
		"value": "#e45756",
	}

	layers := []map[string]any{
		{
			"mark": "rule",
			"encoding": map[string]any{
				"x":     x,
				"y":     map[string]any{"field": low, "type": TypeQuantitative, "scale": map[string]any{"zero": false}, "title": ""},
				"y2":    map[string]any{"field": high},
				"color": color,
			},
		},
		{
			"mark": map[string]any{"type": "bar", "size": 7},
			"encoding": map[string]any{
				"x":     x,
				"y":     map[string]any{"field": open, "type": TypeQuantitative},
				"y2":    map[string]any{"field": cls},
				"color": color,
			},
		},
	}

	return layeredLite(p, layers), nil
}
