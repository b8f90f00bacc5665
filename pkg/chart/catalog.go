package chart

import (
	"github.com/rangeviz/rangeviz/pkg/table"
	"github.com/rangeviz/rangeviz/pkg/vega"
)

func init() {
	// Bar family.
	register(&Def{
		Type: TypeBar, Summary: "vertical bar chart",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		Rules:   []vega.EncodingRule{{Column: 2, Channel: "color"}},
		reshape: flat, build: vega.Bar,
	})
	register(&Def{
		Type: TypeBarHorizontal, Summary: "horizontal bar chart",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		Rules:   []vega.EncodingRule{{Column: 2, Channel: "color"}},
		reshape: flat, build: vega.BarHorizontal,
	})
	register(&Def{
		Type: TypeBarStacked, Summary: "stacked bar chart over multiple series",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: long, build: vega.BarStacked,
	})
	register(&Def{
		Type: TypeBarGrouped, Summary: "grouped bar chart over multiple series",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: long, build: vega.BarGrouped,
	})
	register(&Def{
		Type: TypeWaterfall, Summary: "running-total waterfall (last row is the closing total)",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: func(t *table.Table) []table.Record { return t.WaterfallSteps() },
		build:   vega.Waterfall,
	})
	register(&Def{
		Type: TypeVariance, Summary: "baseline vs actual bars with delta tooltips",
		MinColumns: 3, Dialect: vega.DialectVegaLite,
		reshape: func(t *table.Table) []table.Record { return t.VarianceRecords() },
		build:   vega.Variance,
	})

	// Line and area family.
	register(&Def{
		Type: TypeLine, Summary: "multi-series line chart",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: long, build: vega.Line,
	})
	register(&Def{
		Type: TypeArea, Summary: "overlapping area chart",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: long, build: vega.Area,
	})
	register(&Def{
		Type: TypeAreaStacked, Summary: "stacked area chart",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: long, build: vega.AreaStacked,
	})
	register(&Def{
		Type: TypeStreamgraph, Summary: "center-stacked streamgraph",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: long, build: vega.Streamgraph,
	})
	register(&Def{
		Type: TypeSlope, Summary: "slope graph between two measurements",
		MinColumns: 3, Dialect: vega.DialectVegaLite,
		reshape: func(t *table.Table) []table.Record { return t.NumericRecords([]int{1, 2}, table.Zero) },
		build:   vega.Slope,
	})
	register(&Def{
		Type: TypeBump, Summary: "rank-over-time bump chart",
		MinColumns: 3, Dialect: vega.DialectVegaLite,
		reshape: func(t *table.Table) []table.Record { return t.Ranks() },
		build:   vega.Bump,
	})
	register(&Def{
		Type: TypeHorizon, Summary: "banded horizon chart, one row per series",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: func(t *table.Table) []table.Record { return t.HorizonBands(3) },
		build:   vega.Horizon,
	})

	// Pie family.
	register(&Def{
		Type: TypePie, Summary: "pie chart",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: flat, build: vega.Pie, check: positiveValues(1),
	})
	register(&Def{
		Type: TypeDonut, Summary: "donut chart",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: flat, build: vega.Donut, check: positiveValues(1),
	})
	register(&Def{
		Type: TypeFunnel, Summary: "stage funnel with percent-of-first tooltips",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: func(t *table.Table) []table.Record { return t.FunnelRecords() },
		build:   vega.Funnel, check: positiveValues(1),
	})
	register(&Def{
		Type: TypeGauge, Summary: "half-circle gauge for a single value/max pair",
		MinColumns: 3, Dialect: vega.DialectVega,
		reshape: gaugeRecords, build: vega.Gauge,
	})

	// Point family.
	register(&Def{
		Type: TypeScatter, Summary: "scatter plot",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		Rules: []vega.EncodingRule{
			{Column: 2, Channel: "color"},
			{Column: 3, Channel: "size"},
			{Column: 4, Channel: "shape"},
		},
		reshape: flat, build: vega.Scatter,
	})
	register(&Def{
		Type: TypeBubble, Summary: "scatter plot with size-encoded third column",
		MinColumns: 3, Dialect: vega.DialectVegaLite,
		Rules:   []vega.EncodingRule{{Column: 3, Channel: "color"}},
		reshape: flat, build: vega.Bubble,
	})
	register(&Def{
		Type: TypeDotPlot, Summary: "Cleveland dot plot",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		Rules:   []vega.EncodingRule{{Column: 2, Channel: "color"}},
		reshape: flat, build: vega.DotPlot,
	})
	register(&Def{
		Type: TypeStrip, Summary: "strip plot of per-category values",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: flat, build: vega.Strip,
	})
	register(&Def{
		Type: TypeHeatmap, Summary: "matrix heatmap",
		MinColumns: 3, Dialect: vega.DialectVegaLite,
		reshape: flat, build: vega.Heatmap,
	})
	register(&Def{
		Type: TypeCalendar, Summary: "calendar heatmap of daily values",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: flat, build: vega.Calendar,
	})

	// Statistical family.
	register(&Def{
		Type: TypeHistogram, Summary: "histogram over pre-computed bins",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: func(t *table.Table) []table.Record {
			return table.HistogramBins(t.Floats(1, table.Drop), 0)
		},
		build: vega.Histogram,
	})
	register(&Def{
		Type: TypeBoxPlot, Summary: "box-and-whisker plots per category",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: numericDrop(1), build: vega.BoxPlot,
	})
	register(&Def{
		Type: TypeViolin, Summary: "violin plots per category",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: numericDrop(1), build: vega.Violin,
	})
	register(&Def{
		Type: TypeDensity, Summary: "smoothed distribution curve",
		MinColumns: 2, Dialect: vega.DialectVegaLite,
		reshape: numericDrop(1), build: vega.Density,
	})
	register(&Def{
		Type: TypeCandlestick, Summary: "OHLC candlestick chart",
		MinColumns: 5, Dialect: vega.DialectVegaLite,
		reshape: func(t *table.Table) []table.Record { return t.CandlestickRecords() },
		build:   vega.Candlestick,
	})

	// Hierarchical family.
	register(&Def{
		Type: TypeTree, Summary: "tidy node-link tree",
		MinColumns: 2, Dialect: vega.DialectVega, Hierarchical: true,
		reshape: hierarchy, build: vega.Tree,
	})
	register(&Def{
		Type: TypeTreemap, Summary: "squarified treemap",
		MinColumns: 2, Dialect: vega.DialectVega, Hierarchical: true,
		reshape: hierarchy, build: vega.Treemap,
	})
	register(&Def{
		Type: TypeSunburst, Summary: "radial partition sunburst",
		MinColumns: 2, Dialect: vega.DialectVega, Hierarchical: true,
		reshape: hierarchy, build: vega.Sunburst,
	})
	register(&Def{
		Type: TypeCirclePack, Summary: "nested circle packing",
		MinColumns: 2, Dialect: vega.DialectVega, Hierarchical: true,
		reshape: hierarchy, build: vega.CirclePack,
	})

	// Full-Vega specials.
	register(&Def{
		Type: TypeWordCloud, Summary: "word cloud sized by the value column",
		MinColumns: 1, Dialect: vega.DialectVega,
		reshape: wordRecords, build: vega.WordCloud,
	})
	register(&Def{
		Type: TypeRadar, Summary: "radar chart, one closed line per series",
		MinColumns: 3, Dialect: vega.DialectVega,
		reshape: radarRecords, build: vega.Radar,
	})
	register(&Def{
		Type: TypeMap, Summary: "world choropleth keyed by ISO alpha-3 codes",
		MinColumns: 2, Dialect: vega.DialectVega,
		reshape: mapRecords, build: vega.Map,
	})
}
