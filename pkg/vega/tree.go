package vega

// Tree builds a tidy node-link tree diagram. The stratify and tree
// transforms do all layout inside the engine.
func Tree(p Params) (*Spec, error) {
	body := baseVega(p)

	body["data"] = []any{
		map[string]any{
			"name":   "tree",
			"values": p.Records,
			"transform": []any{
				stratified(),
				map[string]any{
					"type":   "tree",
					"method": "tidy",
					"size":   []any{sig("height"), sig("width - 120")},
					"as":     []any{"y", "x", "depth", "children"},
				},
			},
		},
		map[string]any{
			"name":   "links",
			"source": "tree",
			"transform": []any{
				map[string]any{"type": "treelinks"},
				map[string]any{"type": "linkpath", "orient": "horizontal", "shape": "diagonal"},
			},
		},
	}

	body["scales"] = []any{
		map[string]any{
			"name":   "color",
			"type":   "linear",
			"range":  map[string]any{"scheme": "tealblues"},
			"domain": map[string]any{"data": "tree", "field": "depth"},
			"zero":   true,
		},
	}

	body["marks"] = []any{
		map[string]any{
			"type": "path",
			"from": map[string]any{"data": "links"},
			"encode": map[string]any{
				"update": map[string]any{
					"path":   fld("path"),
					"stroke": val("#ccc"),
				},
			},
		},
		map[string]any{
			"type": "symbol",
			"from": map[string]any{"data": "tree"},
			"encode": map[string]any{
				"enter": map[string]any{
					"size":   val(120),
					"stroke": val("#fff"),
				},
				"update": map[string]any{
					"x":    fld("x"),
					"y":    fld("y"),
					"fill": scaled("color", "depth"),
				},
			},
		},
		map[string]any{
			"type": "text",
			"from": map[string]any{"data": "tree"},
			"encode": map[string]any{
				"enter": map[string]any{
					"text":     fld("id"),
					"fontSize": val(10),
					"baseline": val("middle"),
				},
				"update": map[string]any{
					"x":     fld("x"),
					"y":     fld("y"),
					"dx":    sig("datum.children ? -8 : 8"),
					"align": sig("datum.children ? 'right' : 'left'"),
				},
			},
		},
	}

	return &Spec{Dialect: DialectVega, Body: body}, nil
}

// Treemap builds a squarified treemap of the leaves, colored by their
// parent.
func Treemap(p Params) (*Spec, error) {
	body := baseVega(p)

	body["data"] = []any{
		map[string]any{
			"name":   "tree",
			"values": p.Records,
			"transform": []any{
				stratified(),
				map[string]any{
					"type":   "treemap",
					"field":  "size",
					"sort":   map[string]any{"field": "value"},
					"round":  true,
					"method": "squarify",
					"ratio":  1.6,
					"size":   []any{sig("width"), sig("height")},
				},
			},
		},
		map[string]any{
			"name":   "leaves",
			"source": "tree",
			"transform": []any{
				map[string]any{"type": "filter", "expr": "!datum.children"},
			},
		},
	}

	body["scales"] = []any{
		map[string]any{
			"name":   "color",
			"type":   "ordinal",
			"domain": map[string]any{"data": "tree", "field": "parent"},
			"range":  map[string]any{"scheme": "tableau20"},
		},
	}

	body["marks"] = []any{
		map[string]any{
			"type": "rect",
			"from": map[string]any{"data": "leaves"},
			"encode": map[string]any{
				"enter": map[string]any{
					"stroke": val("#fff"),
				},
				"update": map[string]any{
					"x":       fld("x0"),
					"y":       fld("y0"),
					"x2":      fld("x1"),
					"y2":      fld("y1"),
					"fill":    scaled("color", "parent"),
					"tooltip": sig("datum.id + ': ' + datum.value"),
				},
			},
		},
		map[string]any{
			"type":        "text",
			"from":        map[string]any{"data": "leaves"},
			"interactive": false,
			"encode": map[string]any{
				"enter": map[string]any{
					"align":    val("center"),
					"baseline": val("middle"),
					"fill":     val("#333"),
					"text":     fld("id"),
					"fontSize": val(11),
				},
				"update": map[string]any{
					"x": sig("0.5 * (datum.x0 + datum.x1)"),
					"y": sig("0.5 * (datum.y0 + datum.y1)"),
				},
			},
		},
	}

	return &Spec{Dialect: DialectVega, Body: body}, nil
}

// Sunburst builds a radial partition of the hierarchy.
func Sunburst(p Params) (*Spec, error) {
	body := baseVega(p)

	body["data"] = []any{
		map[string]any{
			"name":   "tree",
			"values": p.Records,
			"transform": []any{
				stratified(),
				map[string]any{
					"type":  "partition",
					"field": "size",
					"sort":  map[string]any{"field": "value"},
					"size":  []any{sig("2 * PI"), sig("min(width, height) / 2")},
					"as":    []any{"a0", "r0", "a1", "r1", "depth", "children"},
				},
			},
		},
	}

	body["scales"] = []any{
		map[string]any{
			"name":   "color",
			"type":   "ordinal",
			"domain": map[string]any{"data": "tree", "field": "depth"},
			"range":  map[string]any{"scheme": "tableau20"},
		},
	}

	body["marks"] = []any{
		map[string]any{
			"type": "arc",
			"from": map[string]any{"data": "tree"},
			"encode": map[string]any{
				"enter": map[string]any{
					"x":       sig("width / 2"),
					"y":       sig("height / 2"),
					"fill":    scaled("color", "depth"),
					"tooltip": sig("datum.id + ': ' + datum.value"),
				},
				"update": map[string]any{
					"startAngle":  fld("a0"),
					"endAngle":    fld("a1"),
					"innerRadius": fld("r0"),
					"outerRadius": fld("r1"),
					"stroke":      val("white"),
					"strokeWidth": val(0.5),
				},
			},
		},
	}

	return &Spec{Dialect: DialectVega, Body: body}, nil
}

// CirclePack builds a nested circle packing of the hierarchy.
func CirclePack(p Params) (*Spec, error) {
	body := baseVega(p)

	body["data"] = []any{
		map[string]any{
			"name":   "tree",
			"values": p.Records,
			"transform": []any{
				stratified(),
				map[string]any{
					"type":  "pack",
					"field": "size",
					"sort":  map[string]any{"field": "value"},
					"size":  []any{sig("width"), sig("height")},
				},
			},
		},
	}

	body["scales"] = []any{
		map[string]any{
			"name":   "color",
			"type":   "ordinal",
			"domain": map[string]any{"data": "tree", "field": "depth"},
			"range":  map[string]any{"scheme": "tableau10"},
		},
	}

	body["marks"] = []any{
		map[string]any{
			"type": "symbol",
			"from": map[string]any{"data": "tree"},
			"encode": map[string]any{
				"enter": map[string]any{
					"shape":   val("circle"),
					"fill":    scaled("color", "depth"),
					"tooltip": sig("datum.id + ': ' + datum.value"),
				},
				"update": map[string]any{
					"x":           fld("x"),
					"y":           fld("y"),
					"size":        sig("4 * datum.r * datum.r"),
					"stroke":      val("white"),
					"strokeWidth": val(0.5),
					"fillOpacity": val(0.7),
				},
			},
		},
	}

	return &Spec{Dialect: DialectVega, Body: body}, nil
}
