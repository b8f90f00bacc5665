package vega

// Pie builds a pie chart: second column as slice angle, first as slice
// color.
func Pie(p Params) (*Spec, error) {
	return arcSpec(p, 0), nil
}

// Donut builds a pie chart with a hollow center.
func Donut(p Params) (*Spec, error) {
	return arcSpec(p, 60), nil
}

func arcSpec(p Params, innerRadius int) *Spec {
	enc := map[string]any{
		"theta": map[string]any{
			"field": p.Table.Column(1),
			"type":  TypeQuantitative,
		},
		"color": map[string]any{
			"field": p.Table.Column(0),
			"type":  TypeNominal,
			"title": p.Table.Column(0),
		},
	}

	mark := map[string]any{"type": "arc", "innerRadius": innerRadius}
	spec := baseLite(p, mark, enc)
	spec.Body["view"] = map[string]any{"stroke": nil}
	return spec
}
