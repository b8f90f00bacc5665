package vega

import (
	"github.com/rangeviz/rangeviz/pkg/errors"
)

// Map builds a world choropleth: country boundaries from the injected
// TopoJSON dataset, filled by value where a record joins on the
// country's numeric id, neutral gray otherwise.
func Map(p Params) (*Spec, error) {
	if p.Geo == nil {
		return nil, errors.New(errors.ErrCodeInternal, "world boundary dataset not loaded")
	}

	body := baseVega(p)

	body["data"] = []any{
		map[string]any{"name": "values", "values": p.Records},
		map[string]any{
			"name":   "world",
			"values": p.Geo,
			"format": map[string]any{"type": "topojson", "feature": "countries"},
			"transform": []any{
				map[string]any{
					"type":   "lookup",
					"from":   "values",
					"key":    "id",
					"fields": []any{"id"},
					"values": []any{"value"},
				},
			},
		},
	}

	body["projections"] = []any{
		map[string]any{
			"name":      "projection",
			"type":      "naturalEarth1",
			"scale":     sig("width / 5.5"),
			"translate": []any{sig("width / 2"), sig("height / 2")},
		},
	}

	body["scales"] = []any{
		map[string]any{
			"name":   "color",
			"type":   "linear",
			"domain": map[string]any{"data": "world", "field": "value"},
			"range":  map[string]any{"scheme": "blues"},
			"nice":   true,
		},
	}

	body["legends"] = []any{
		map[string]any{
			"fill":   "color",
			"orient": "bottom-left",
			"title":  p.Table.Column(1),
		},
	}

	body["marks"] = []any{
		map[string]any{
			"type": "shape",
			"from": map[string]any{"data": "world"},
			"encode": map[string]any{
				"update": map[string]any{
					"fill": []any{
						map[string]any{"test": "datum.value != null", "scale": "color", "field": "value"},
						val("#e0e0e0"),
					},
					"stroke":      val("white"),
					"strokeWidth": val(0.3),
				},
			},
			"transform": []any{
				map[string]any{"type": "geoshape", "projection": "projection"},
			},
		},
	}

	return &Spec{Dialect: DialectVega, Body: body}, nil
}
