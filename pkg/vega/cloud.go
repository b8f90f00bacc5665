package vega

// WordCloud builds a word cloud from text/size records. Placement is
// the engine's wordcloud transform; the size field only seeds the font
// scale.
func WordCloud(p Params) (*Spec, error) {
	body := baseVega(p)

	body["data"] = []any{
		map[string]any{"name": "table", "values": p.Records},
	}

	body["scales"] = []any{
		map[string]any{
			"name":   "color",
			"type":   "ordinal",
			"domain": map[string]any{"data": "table", "field": "text"},
			"range":  map[string]any{"scheme": "tableau10"},
		},
	}

	body["marks"] = []any{
		map[string]any{
			"type": "text",
			"from": map[string]any{"data": "table"},
			"encode": map[string]any{
				"enter": map[string]any{
					"text":     fld("text"),
					"align":    val("center"),
					"baseline": val("alphabetic"),
					"fill":     scaled("color", "text"),
					"tooltip":  sig("datum.text + ': ' + datum.size"),
				},
			},
			"transform": []any{
				map[string]any{
					"type":          "wordcloud",
					"size":          []any{sig("width"), sig("height")},
					"text":          map[string]any{"field": "text"},
					"rotate":        0,
					"font":          "Helvetica, Arial, sans-serif",
					"fontSize":      map[string]any{"field": "datum.size"},
					"fontSizeRange": []any{12, 56},
					"padding":       2,
				},
			},
		},
	}

	return &Spec{Dialect: DialectVega, Body: body}, nil
}
