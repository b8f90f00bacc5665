package vega

// Scatter builds a scatter plot of the first two columns. Optional
// columns bind through the chart type's encoding rules.
func Scatter(p Params) (*Spec, error) {
	enc := map[string]any{
		"x": map[string]any{
			"field": p.Table.Column(0),
			"type":  FieldType(p.Table, 0),
			"scale": map[string]any{"zero": false},
		},
		"y": map[string]any{
			"field": p.Table.Column(1),
			"type":  TypeQuantitative,
			"scale": map[string]any{"zero": false},
		},
	}
	mark := map[string]any{"type": "point", "filled": true}
	return baseLite(p, mark, enc), nil
}

// Bubble builds a scatter plot with the third column driving mark
// area.
func Bubble(p Params) (*Spec, error) {
	enc := map[string]any{
		"x": map[string]any{
			"field": p.Table.Column(0),
			"type":  FieldType(p.Table, 0),
			"scale": map[string]any{"zero": false},
		},
		"y": map[string]any{
			"field": p.Table.Column(1),
			"type":  TypeQuantitative,
			"scale": map[string]any{"zero": false},
		},
		"size": map[string]any{
			"field": p.Table.Column(2),
			"type":  TypeQuantitative,
		},
	}
	mark := map[string]any{"type": "circle", "opacity": 0.7}
	return baseLite(p, mark, enc), nil
}

// DotPlot builds a Cleveland dot plot: categories on y, values on x.
func DotPlot(p Params) (*Spec, error) {
	enc := map[string]any{
		"y": map[string]any{
			"field": p.Table.Column(0),
			"type":  TypeNominal,
			"sort":  nil,
		},
		"x": map[string]any{
			"field": p.Table.Column(1),
			"type":  TypeQuantitative,
			"scale": map[string]any{"zero": false},
		},
	}
	mark := map[string]any{"type": "circle", "size": 80}
	return baseLite(p, mark, enc), nil
}

// Strip builds a strip plot: one tick per value along x, grouped by
// the first column on y.
func Strip(p Params) (*Spec, error) {
	enc := map[string]any{
		"y": map[string]any{
			"field": p.Table.Column(0),
			"type":  TypeNominal,
			"sort":  nil,
		},
		"x": map[string]any{
			"field": p.Table.Column(1),
			"type":  TypeQuantitative,
		},
	}
	return baseLite(p, "tick", enc), nil
}

// Heatmap builds a matrix heatmap: first two columns span the grid,
// the third colors the cells.
func Heatmap(p Params) (*Spec, error) {
	enc := map[string]any{
		"x": map[string]any{
			"field": p.Table.Column(0),
			"type":  TypeNominal,
			"sort":  nil,
		},
		"y": map[string]any{
			"field": p.Table.Column(1),
			"type":  TypeNominal,
			"sort":  nil,
		},
		"color": map[string]any{
			"field": p.Table.Column(2),
			"type":  TypeQuantitative,
		},
	}
	return baseLite(p, "rect", enc), nil
}

// Calendar builds a calendar heatmap: weeks along x, weekdays along y,
// the value column coloring each day cell.
func Calendar(p Params) (*Spec, error) {
	date := p.Table.Column(0)

	enc := map[string]any{
		"x": map[string]any{
			"field":    date,
			"timeUnit": "yearweek",
			"type":     TypeTemporal,
			"title":    "",
			"axis":     map[string]any{"format": "%b", "tickCount": 12},
		},
		"y": map[string]any{
			"field":    date,
			"timeUnit": "day",
			"type":     TypeOrdinal,
			"title":    "",
		},
		"color": map[string]any{
			"field": p.Table.Column(1),
			"type":  TypeQuantitative,
		},
	}

	mark := map[string]any{"type": "rect", "stroke": "white", "strokeWidth": 1}
	return baseLite(p, mark, enc), nil
}
