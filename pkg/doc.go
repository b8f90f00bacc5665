// Package pkg provides the core libraries for rangeviz spreadsheet charting.
//
// # Overview
//
// Rangeviz reads a tabular range from an xlsx workbook, reshapes it into
// chart records, assembles a Vega or Vega-Lite specification, renders it
// through an external engine, and places the image back into the
// workbook. The pkg directory is organized along that flow:
//
//  1. [table] - Tabular input model: typed cell values and record reshaping
//  2. [chart] - Chart-type catalog: shape requirements and encoding rules
//  3. [vega] - Specification assembly for both grammar dialects
//  4. [render] - Rendering engines (vl-convert subprocess, HTTP service)
//  5. [workbook] - Workbook adapter: range reads and artifact placement
//  6. [pipeline] - Orchestration (extract → assemble → render → place)
//
// # Architecture
//
// The typical data flow through rangeviz:
//
//	Workbook Range (xlsx)
//	         ↓
//	    [table] package (parse cells, reshape records)
//	         ↓
//	    [chart] + [vega] packages (validate, assemble specification)
//	         ↓
//	    [render] package (rasterize via engine)
//	         ↓
//	    [workbook] package (place image, track artifact)
//
// # Quick Start
//
// Run the full pipeline:
//
//	import "github.com/rangeviz/rangeviz/pkg/pipeline"
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Workbook:  "report.xlsx",
//	    Range:     "Sheet1!A1:C13",
//	    ChartType: "line",
//	})
//
// Or assemble a specification without rendering:
//
//	def, _ := chart.Lookup("treemap")
//	spec, _ := def.Spec(tbl, chart.Options{Title: "Disk usage"})
//	doc, _ := spec.JSON()
//
// # Main Packages
//
// [table] - Cell value model (text, number, bool, empty) with the
// header-row contract, plus reshapers: flat records, long-form pivots,
// numeric extraction with drop-or-zero policies, hierarchy synthesis for
// the tree family, histogram binning, and candlestick coherence checks.
//
// [chart] - The 35-type catalog. Each definition carries its minimum
// column requirement, grammar dialect, optional-column encoding rules,
// and a reshaper; Lookup/Types/Names drive the CLI and API surfaces.
//
// [vega] - Specification builders for both dialects. Vega-Lite covers
// the rectangular types; full Vega covers radar, gauge, word cloud, map,
// and the hierarchical family.
//
// [render] - Engine interface with two implementations: a vl-convert
// subprocess and a remote render service with retry/backoff. The dot
// subpackage renders hierarchy debug graphs through Graphviz.
//
// [workbook] - excelize adapter. Reads qualified or bare-sheet ranges
// and places rendered images, tracking each placement with a defined
// name so re-running a chart type replaces its prior image.
//
// [geo] - World boundary dataset for the map type, fetched over HTTP
// with file caching and joined against the ISO3 lookup table.
//
// [pipeline] - Complete pipeline used by CLI and API. Ensures consistent
// behavior across all entry points and caches renders by specification
// content hash.
//
// ## Infrastructure
//
// [cache] - Render/artifact cache with file, Redis, and null backends
// plus content-hash key derivation.
//
// [gallery] - Chart persistence behind a Store interface: MongoDB for
// deployments, in-memory for tests and development.
//
// [httputil] - Retry with backoff and a namespaced JSON file cache for
// outbound HTTP.
//
// [errors] - Structured error codes shared by CLI exit paths and HTTP
// status mapping.
//
// [observability] - Pluggable hooks for pipeline, cache, and HTTP
// events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/chart/...    # Specific package
//
// [table]: https://pkg.go.dev/github.com/rangeviz/rangeviz/pkg/table
// [chart]: https://pkg.go.dev/github.com/rangeviz/rangeviz/pkg/chart
// [vega]: https://pkg.go.dev/github.com/rangeviz/rangeviz/pkg/vega
// [render]: https://pkg.go.dev/github.com/rangeviz/rangeviz/pkg/render
// [workbook]: https://pkg.go.dev/github.com/rangeviz/rangeviz/pkg/workbook
// [geo]: https://pkg.go.dev/github.com/rangeviz/rangeviz/pkg/geo
// [pipeline]: https://pkg.go.dev/github.com/rangeviz/rangeviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/rangeviz/rangeviz/pkg/cache
// [gallery]: https://pkg.go.dev/github.com/rangeviz/rangeviz/pkg/gallery
// [httputil]: https://pkg.go.dev/github.com/rangeviz/rangeviz/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/rangeviz/rangeviz/pkg/errors
// [observability]: https://pkg.go.dev/github.com/rangeviz/rangeviz/pkg/observability
package pkg
