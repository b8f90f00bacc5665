// Package chart is the chart-type catalog: one registry entry per
// supported type, carrying its minimum column requirement, its record
// reshaper, its specification builder, and its optional-encoding rules.
//
// The registry replaces per-type entry-point functions with a single
// uniform dispatch: look a type up, validate the input table against
// its requirements, reshape, and build. "If an optional column exists,
// add this encoding" decisions are declared as [vega.EncodingRule]
// values and evaluated uniformly by the builders rather than branched
// per function.
package chart

import (
	"sort"

	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/table"
	"github.com/rangeviz/rangeviz/pkg/vega"
)

// Type identifies a chart type.
type Type string

// The supported chart types.
const (
	TypeArea          Type = "area"
	TypeAreaStacked   Type = "areastacked"
	TypeBar           Type = "bar"
	TypeBarGrouped    Type = "bargrouped"
	TypeBarHorizontal Type = "barhorizontal"
	TypeBarStacked    Type = "barstacked"
	TypeBoxPlot       Type = "boxplot"
	TypeBubble        Type = "bubble"
	TypeBump          Type = "bump"
	TypeCalendar      Type = "calendar"
	TypeCandlestick   Type = "candlestick"
	TypeCirclePack    Type = "circlepack"
	TypeDensity       Type = "density"
	TypeDonut         Type = "donut"
	TypeDotPlot       Type = "dotplot"
	TypeFunnel        Type = "funnel"
	TypeGauge         Type = "gauge"
	TypeHeatmap       Type = "heatmap"
	TypeHistogram     Type = "histogram"
	TypeHorizon       Type = "horizon"
	TypeLine          Type = "line"
	TypeMap           Type = "map"
	TypePie           Type = "pie"
	TypeRadar         Type = "radar"
	TypeScatter       Type = "scatter"
	TypeSlope         Type = "slope"
	TypeStreamgraph   Type = "streamgraph"
	TypeStrip         Type = "strip"
	TypeSunburst      Type = "sunburst"
	TypeTree          Type = "tree"
	TypeTreemap       Type = "treemap"
	TypeVariance      Type = "variance"
	TypeViolin        Type = "violin"
	TypeWaterfall     Type = "waterfall"
	TypeWordCloud     Type = "wordcloud"
)

// Default canvas dimensions applied when the caller does not size the
// chart explicitly.
const (
	DefaultWidth  = 640
	DefaultHeight = 400
)

// Def describes one chart type.
type Def struct {
	// Type is the registry key.
	Type Type

	// Summary is a one-line description for catalog listings.
	Summary string

	// MinColumns is the smallest header width the type accepts.
	MinColumns int

	// Dialect tags which grammar the builder emits.
	Dialect vega.Dialect

	// Hierarchical marks the tree-family types whose records form a
	// parent/child graph.
	Hierarchical bool

	// Rules are the optional-column encodings, evaluated uniformly by
	// the builder.
	Rules []vega.EncodingRule

	reshape func(*table.Table) []table.Record
	build   func(vega.Params) (*vega.Spec, error)
	check   func(*table.Table) error
}

// Options parametrizes specification assembly.
type Options struct {
	Width  int
	Height int
	Title  string

	// Geo is the parsed world boundary dataset, required by the map
	// type and ignored by every other.
	Geo map[string]any
}

// Lookup returns the definition for the named chart type.
func Lookup(name string) (*Def, error) {
	d, ok := catalog[Type(name)]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidChartType,
			"unknown chart type: %q (run 'rangeviz types' for the catalog)", name)
	}
	return d, nil
}

// Types returns all definitions sorted by type name.
func Types() []*Def {
	out := make([]*Def, 0, len(catalog))
	for _, d := range catalog {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Names returns all type names, sorted.
func Names() []string {
	defs := Types()
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = string(d.Type)
	}
	return out
}

// Validate checks the table against the type's shape requirements:
// the minimum column count plus any per-type value gate (pie-family
// types reject non-positive values, candlestick requires coherent
// high/low ordering per row via its reshaper).
func (d *Def) Validate(t *table.Table) error {
	if t.Columns() < d.MinColumns {
		return errors.New(errors.ErrCodeShapeTooSmall,
			"%s chart needs at least %d columns, got %d", d.Type, d.MinColumns, t.Columns())
	}
	if d.check != nil {
		return d.check(t)
	}
	return nil
}

// Reshape produces the record set the type's builder consumes.
func (d *Def) Reshape(t *table.Table) []table.Record {
	return d.reshape(t)
}

// Spec validates the table, reshapes it, and assembles the chart
// specification.
func (d *Def) Spec(t *table.Table, opts Options) (*vega.Spec, error) {
	if err := d.Validate(t); err != nil {
		return nil, err
	}

	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	return d.build(vega.Params{
		Table:   t,
		Records: d.reshape(t),
		Width:   opts.Width,
		Height:  opts.Height,
		Title:   opts.Title,
		Rules:   d.Rules,
		Geo:     opts.Geo,
	})
}

// catalog is the registry of all chart types.
var catalog = map[Type]*Def{}

func register(d *Def) {
	catalog[d.Type] = d
}
