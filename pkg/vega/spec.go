// Package vega assembles declarative chart specifications.
//
// A specification is an immutable JSON document combining reshaped
// records with visual-encoding metadata. Builders substitute column
// names and computed dimensions into fixed skeletons; everything hard
// (scales, layout, tree partitioning, word placement, density
// estimation, geographic projection) is described declaratively and
// executed entirely by the external rendering engine.
//
// Two grammar dialects are produced: Vega-Lite for the flat encoded
// chart families, and full Vega for the types that need layout
// transforms or radial coordinate arithmetic (tree, treemap, sunburst,
// circlepack, wordcloud, radar, gauge, map).
package vega

import (
	"encoding/json"
)

// Dialect tags which grammar a specification is written in, so the
// rendering engine can pick the matching conversion mode.
type Dialect string

// Supported specification dialects.
const (
	DialectVegaLite Dialect = "vega-lite"
	DialectVega     Dialect = "vega"
)

// Grammar schema URLs embedded in generated documents.
const (
	schemaVegaLite = "https://vega.github.io/schema/vega-lite/v5.json"
	schemaVega     = "https://vega.github.io/schema/vega/v5.json"
)

// Spec is one assembled chart specification: a dialect tag plus the
// document body. Bodies are plain nested maps so they marshal
// deterministically (encoding/json sorts object keys).
type Spec struct {
	Dialect Dialect
	Body    map[string]any
}

// JSON returns the compact serialized document.
func (s *Spec) JSON() ([]byte, error) {
	return json.Marshal(s.Body)
}

// IndentJSON returns the document pretty-printed for file output and
// previews.
func (s *Spec) IndentJSON() ([]byte, error) {
	return json.MarshalIndent(s.Body, "", "  ")
}
