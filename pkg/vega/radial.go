package vega

// Radar builds a radar chart: one closed line per series over an
// angular point scale, with spoke grid lines and axis labels. All
// polar arithmetic happens in engine expressions.
func Radar(p Params) (*Spec, error) {
	body := baseVega(p)

	body["signals"] = []any{
		map[string]any{"name": "radius", "update": "min(width, height) / 2 - 30"},
	}

	body["data"] = []any{
		map[string]any{"name": "table", "values": p.Records},
		map[string]any{
			"name":   "keys",
			"source": "table",
			"transform": []any{
				map[string]any{"type": "aggregate", "groupby": []any{"key"}},
			},
		},
	}

	body["scales"] = []any{
		map[string]any{
			"name":    "angular",
			"type":    "point",
			"range":   sig("[-PI, PI]"),
			"padding": 0.5,
			"domain":  map[string]any{"data": "table", "field": "key"},
		},
		map[string]any{
			"name":      "radial",
			"type":      "linear",
			"range":     sig("[0, radius]"),
			"zero":      true,
			"nice":      false,
			"domain":    map[string]any{"data": "table", "field": "value"},
			"domainMin": 0,
		},
		map[string]any{
			"name":   "color",
			"type":   "ordinal",
			"domain": map[string]any{"data": "table", "field": "series"},
			"range":  map[string]any{"scheme": "category10"},
		},
	}

	body["encode"] = map[string]any{
		"enter": map[string]any{
			"x": sig("width / 2"),
			"y": sig("height / 2"),
		},
	}

	body["marks"] = []any{
		map[string]any{
			"type":   "group",
			"name":   "series",
			"zindex": 1,
			"from": map[string]any{
				"facet": map[string]any{"data": "table", "name": "facet", "groupby": []any{"series"}},
			},
			"marks": []any{
				map[string]any{
					"type": "line",
					"from": map[string]any{"data": "facet"},
					"encode": map[string]any{
						"enter": map[string]any{
							"interpolate": val("linear-closed"),
							"x":           sig("scale('radial', datum.value) * cos(scale('angular', datum.key))"),
							"y":           sig("scale('radial', datum.value) * sin(scale('angular', datum.key))"),
							"stroke":      scaled("color", "series"),
							"strokeWidth": val(1.5),
							"fill":        scaled("color", "series"),
							"fillOpacity": val(0.1),
						},
					},
				},
			},
		},
		map[string]any{
			"type":   "rule",
			"name":   "spokes",
			"from":   map[string]any{"data": "keys"},
			"zindex": 0,
			"encode": map[string]any{
				"enter": map[string]any{
					"x":      val(0),
					"y":      val(0),
					"x2":     sig("radius * cos(scale('angular', datum.key))"),
					"y2":     sig("radius * sin(scale('angular', datum.key))"),
					"stroke": val("lightgray"),
				},
			},
		},
		map[string]any{
			"type":   "text",
			"name":   "axis-labels",
			"from":   map[string]any{"data": "keys"},
			"zindex": 1,
			"encode": map[string]any{
				"enter": map[string]any{
					"x":        sig("(radius + 8) * cos(scale('angular', datum.key))"),
					"y":        sig("(radius + 8) * sin(scale('angular', datum.key))"),
					"text":     fld("key"),
					"align":    val("center"),
					"baseline": val("middle"),
					"fill":     val("#333"),
					"fontSize": val(11),
				},
			},
		},
	}

	return &Spec{Dialect: DialectVega, Body: body}, nil
}

// Gauge builds a half-circle gauge for the first data row: a gray
// track arc, a value arc swept by the precomputed fraction, and
// centered value/label text.
func Gauge(p Params) (*Spec, error) {
	body := baseVega(p)

	body["signals"] = []any{
		map[string]any{"name": "radius", "update": "min(width / 2, height) - 10"},
		map[string]any{"name": "cx", "update": "width / 2"},
		map[string]any{"name": "cy", "update": "height - 20"},
	}

	body["data"] = []any{
		map[string]any{"name": "table", "values": p.Records},
	}

	track := map[string]any{
		"type": "arc",
		"from": map[string]any{"data": "table"},
		"encode": map[string]any{
			"enter": map[string]any{
				"x":           sig("cx"),
				"y":           sig("cy"),
				"startAngle":  sig("-PI / 2"),
				"endAngle":    sig("PI / 2"),
				"innerRadius": sig("radius * 0.65"),
				"outerRadius": sig("radius"),
				"fill":        val("#e6e6e6"),
			},
		},
	}

	value := map[string]any{
		"type": "arc",
		"from": map[string]any{"data": "table"},
		"encode": map[string]any{
			"enter": map[string]any{
				"x":           sig("cx"),
				"y":           sig("cy"),
				"startAngle":  sig("-PI / 2"),
				"endAngle":    sig("-PI / 2 + PI * min(max(datum.frac, 0), 1)"),
				"innerRadius": sig("radius * 0.65"),
				"outerRadius": sig("radius"),
				"fill":        val("#4c78a8"),
			},
		},
	}

	valueText := map[string]any{
		"type": "text",
		"from": map[string]any{"data": "table"},
		"encode": map[string]any{
			"enter": map[string]any{
				"x":        sig("cx"),
				"y":        sig("cy - radius * 0.2"),
				"text":     sig("format(datum.value, ',.0f') + ' / ' + format(datum.max, ',.0f')"),
				"align":    val("center"),
				"baseline": val("bottom"),
				"fontSize": val(28),
				"fill":     val("#333"),
			},
		},
	}

	labelText := map[string]any{
		"type": "text",
		"from": map[string]any{"data": "table"},
		"encode": map[string]any{
			"enter": map[string]any{
				"x":        sig("cx"),
				"y":        sig("cy"),
				"text":     fld("label"),
				"align":    val("center"),
				"baseline": val("bottom"),
				"fontSize": val(14),
				"fill":     val("#666"),
			},
		},
	}

	body["marks"] = []any{track, value, valueText, labelText}

	return &Spec{Dialect: DialectVega, Body: body}, nil
}
