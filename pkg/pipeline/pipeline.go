// Package pipeline provides the core charting pipeline for rangeviz.
//
// This package implements the complete extract → assemble → render →
// place pipeline shared by the CLI, the HTTP API, and library callers.
// By centralizing this logic, we ensure consistent behavior across all
// entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Extract: Read the tabular range from a workbook (or take rows
//     directly, as the API does)
//  2. Assemble: Validate the table against the chart type, reshape it,
//     and build the chart specification
//  3. Render: Execute the specification through a rendering engine
//  4. Place: Insert the image into the workbook (replacing any prior
//     artifact of the same chart type), or write it to a file
//
// Each stage can be run independently or as part of the complete
// pipeline. Rendering is the expensive stage and is cached by a content
// hash of the specification plus the render options.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Workbook:  "report.xlsx",
//	    Range:     "Sheet1!A1:C13",
//	    ChartType: "line",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Image
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rangeviz/rangeviz/pkg/cache"
	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/render"
	"github.com/rangeviz/rangeviz/pkg/table"
	"github.com/rangeviz/rangeviz/pkg/vega"
	"github.com/rangeviz/rangeviz/pkg/workbook"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Library Use
// =============================================================================

// Engine names accepted by Options.Engine.
const (
	EngineVLConvert = "vl-convert"
	EngineService   = "service"
)

const (
	// DefaultEngine is the rendering engine used when none is selected.
	DefaultEngine = EngineVLConvert

	// DefaultScale is the default render resolution multiplier.
	DefaultScale = 1.0
)

// ValidEngines is the set of supported rendering engines.
var ValidEngines = map[string]bool{
	EngineVLConvert: true,
	EngineService:   true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the charting pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Extract options. Workbook+Range read from a file; Rows supplies
	// the cell block directly (API and library use). Exactly one source
	// is required.
	Workbook string          `json:"workbook,omitempty"`
	Range    string          `json:"range,omitempty"`
	Rows     [][]table.Value `json:"rows,omitempty"`

	// Assemble options
	ChartType string `json:"chart_type"`
	Title     string `json:"title,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`

	// Render options
	Engine     string  `json:"engine,omitempty"`
	EnginePath string  `json:"-"` // explicit vl-convert binary path
	ServiceURL string  `json:"service_url,omitempty"`
	Format     string  `json:"format,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
	PPI        int     `json:"ppi,omitempty"`

	// Place options. Output writes the image to a file instead of
	// placing it into the workbook. Sheet/Anchor position the artifact;
	// both empty reuses the prior artifact's anchor. BoxWidth/BoxHeight
	// bound the placed image in pixels.
	Output    string `json:"output,omitempty"`
	Sheet     string `json:"sheet,omitempty"`
	Anchor    string `json:"anchor,omitempty"`
	BoxWidth  int    `json:"box_width,omitempty"`
	BoxHeight int    `json:"box_height,omitempty"`

	// NoPlace skips the place stage entirely (preview runs).
	NoPlace bool `json:"-"`

	// Cache behavior. Refresh bypasses reads but still writes; NoCache
	// disables the render cache entirely.
	Refresh bool `json:"refresh,omitempty"`
	NoCache bool `json:"no_cache,omitempty"`

	// Geo is the parsed world boundary dataset for the map type. When
	// nil, the runner's geo client fetches it.
	Geo map[string]any `json:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Table is the parsed input range.
	Table *table.Table

	// Spec is the assembled chart specification.
	Spec *vega.Spec

	// SpecHash is the content hash of the serialized specification.
	SpecHash string

	// Image is the rendered output.
	Image []byte

	// Placement describes the placed workbook artifact; nil for file
	// output or rows-only runs.
	Placement *workbook.Artifact

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows         int
	Records      int
	ExtractTime  time.Duration
	AssembleTime time.Duration
	RenderTime   time.Duration
	PlaceTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether the image came from the render cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent - calling it multiple
// times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.ChartType == "" {
		return errors.New(errors.ErrCodeInvalidInput, "chart type is required")
	}
	if o.Workbook == "" && len(o.Rows) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workbook or rows is required")
	}
	if o.Workbook != "" && len(o.Rows) > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workbook and rows are mutually exclusive")
	}
	if o.Workbook != "" {
		if err := errors.ValidateWorkbookPath(o.Workbook); err != nil {
			return err
		}
		if o.Range == "" {
			return errors.New(errors.ErrCodeInvalidRange, "range is required with a workbook")
		}
	}
	if err := errors.ValidateChartTitle(o.Title); err != nil {
		return err
	}

	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if !ValidEngines[o.Engine] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid engine: %q (must be one of: vl-convert, service)", o.Engine)
	}
	if o.Engine == EngineService && o.ServiceURL == "" {
		return errors.New(errors.ErrCodeInvalidInput, "service engine requires a service URL")
	}

	format, err := render.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	o.Format = string(format)
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}

	renderOpts := o.RenderOptions()
	if err := renderOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	// Workbook placement embeds a picture, so only PNG can skip -o.
	if o.ShouldPlace() && o.Format != string(render.FormatPNG) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"%s output requires a file target (-o); only png can be placed into the workbook", o.Format)
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// RenderOptions projects the render-stage options.
func (o *Options) RenderOptions() render.Options {
	return render.Options{
		Format: render.Format(o.Format),
		Scale:  o.Scale,
		PPI:    o.PPI,
	}
}

// RenderKeyOpts returns cache key options for the render stage.
func (o *Options) RenderKeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Engine: o.Engine,
		Format: o.Format,
		Scale:  o.Scale,
		PPI:    o.PPI,
	}
}

// Source names the extract input for logs and hooks.
func (o *Options) Source() string {
	if o.Workbook != "" {
		return o.Range
	}
	return "rows"
}

// ShouldPlace reports whether the place stage runs: only workbook input
// without a file output target gets an artifact, and preview runs never
// place.
func (o *Options) ShouldPlace() bool {
	return o.Workbook != "" && o.Output == "" && !o.NoPlace
}
