package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rangeviz/rangeviz/pkg/cache"
	"github.com/rangeviz/rangeviz/pkg/chart"
	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/geo"
	"github.com/rangeviz/rangeviz/pkg/observability"
	"github.com/rangeviz/rangeviz/pkg/render"
	"github.com/rangeviz/rangeviz/pkg/table"
	"github.com/rangeviz/rangeviz/pkg/vega"
	"github.com/rangeviz/rangeviz/pkg/workbook"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, geo client, and logger -
// it doesn't store pipeline results. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Geo    *geo.Client
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete extract → assemble → render → place
// pipeline with caching. Placement only begins after a successful
// render, so a failed run never leaves a workbook half-mutated.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	var wb *workbook.Workbook
	if opts.Workbook != "" {
		var err error
		wb, err = workbook.Open(opts.Workbook)
		if err != nil {
			return nil, fmt.Errorf("extract: %w", err)
		}
		defer wb.Close()
	}

	// Stage 1: Extract
	extractStart := time.Now()
	tbl, err := r.extract(ctx, wb, opts)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	result.Table = tbl
	result.Stats.Rows = tbl.RowCount()
	result.Stats.ExtractTime = time.Since(extractStart)

	r.Logger.Info("extracted range",
		"source", opts.Source(),
		"rows", tbl.RowCount(),
		"columns", tbl.Columns(),
		"duration", result.Stats.ExtractTime)

	// Stage 2: Assemble
	assembleStart := time.Now()
	spec, records, err := r.assemble(ctx, tbl, &opts)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	result.Spec = spec
	result.Stats.Records = records
	result.Stats.AssembleTime = time.Since(assembleStart)

	r.Logger.Info("assembled specification",
		"type", opts.ChartType,
		"dialect", spec.Dialect,
		"records", records,
		"duration", result.Stats.AssembleTime)

	// Stage 3: Render
	renderStart := time.Now()
	img, hash, renderHit, err := r.RenderWithCacheInfo(ctx, spec, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Image = img
	result.SpecHash = hash
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered chart",
		"engine", opts.Engine,
		"format", opts.Format,
		"bytes", len(img),
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	// Stage 4: Place
	placeStart := time.Now()
	placement, err := r.place(ctx, wb, img, opts)
	if err != nil {
		return nil, fmt.Errorf("place: %w", err)
	}
	result.Placement = placement
	result.Stats.PlaceTime = time.Since(placeStart)

	if placement != nil {
		r.Logger.Info("placed artifact",
			"name", placement.Name,
			"anchor", placement.Sheet+"!"+placement.Anchor,
			"duration", result.Stats.PlaceTime)
	}

	return result, nil
}

// Extract reads the input cells and builds the table.
func (r *Runner) Extract(ctx context.Context, opts Options) (*table.Table, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	var wb *workbook.Workbook
	if opts.Workbook != "" {
		var err error
		wb, err = workbook.Open(opts.Workbook)
		if err != nil {
			return nil, err
		}
		defer wb.Close()
	}
	return r.extract(ctx, wb, opts)
}

func (r *Runner) extract(ctx context.Context, wb *workbook.Workbook, opts Options) (*table.Table, error) {
	source := opts.Source()
	observability.Pipeline().OnExtractStart(ctx, source)
	start := time.Now()

	cells := opts.Rows
	if wb != nil {
		var err error
		cells, err = wb.ReadRange(opts.Range)
		if err != nil {
			observability.Pipeline().OnExtractComplete(ctx, source, 0, time.Since(start), err)
			return nil, err
		}
	}

	tbl, err := table.New(cells)
	observability.Pipeline().OnExtractComplete(ctx, source, len(cells), time.Since(start), err)
	return tbl, err
}

// Assemble validates, reshapes, and builds the chart specification.
func (r *Runner) Assemble(ctx context.Context, tbl *table.Table, opts Options) (*vega.Spec, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	spec, _, err := r.assemble(ctx, tbl, &opts)
	return spec, err
}

func (r *Runner) assemble(ctx context.Context, tbl *table.Table, opts *Options) (*vega.Spec, int, error) {
	observability.Pipeline().OnAssembleStart(ctx, opts.ChartType, tbl.RowCount())
	start := time.Now()

	spec, records, err := r.buildSpec(ctx, tbl, opts)
	observability.Pipeline().OnAssembleComplete(ctx, opts.ChartType, records, time.Since(start), err)
	return spec, records, err
}

func (r *Runner) buildSpec(ctx context.Context, tbl *table.Table, opts *Options) (*vega.Spec, int, error) {
	def, err := chart.Lookup(opts.ChartType)
	if err != nil {
		return nil, 0, err
	}

	if def.Type == chart.TypeMap && opts.Geo == nil {
		if r.Geo == nil {
			return nil, 0, errors.New(errors.ErrCodeInternal,
				"map charts need a world boundary dataset and no geo client is configured")
		}
		world, err := r.Geo.World(ctx, opts.Refresh)
		if err != nil {
			return nil, 0, err
		}
		opts.Geo = world
	}

	if err := def.Validate(tbl); err != nil {
		return nil, 0, err
	}
	records := len(def.Reshape(tbl))

	spec, err := def.Spec(tbl, chart.Options{
		Width:  opts.Width,
		Height: opts.Height,
		Title:  opts.Title,
		Geo:    opts.Geo,
	})
	if err != nil {
		return nil, 0, err
	}
	return spec, records, nil
}

// RenderWithCacheInfo renders the specification with caching and
// returns the image, the specification's content hash, and cache hit
// info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, spec *vega.Spec, opts Options) ([]byte, string, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, "", false, err
	}
	r.applyLogger(&opts)

	doc, err := spec.JSON()
	if err != nil {
		return nil, "", false, errors.Wrap(errors.ErrCodeInternal, err, "serialize specification")
	}
	hash := cache.Hash(doc)
	key := r.Keyer.RenderKey(hash, opts.RenderKeyOpts())

	// Try cache first (unless refresh or no-cache requested)
	if !opts.NoCache && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "render")
			return data, hash, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	engine, err := r.engine(opts)
	if err != nil {
		return nil, "", false, err
	}

	observability.Pipeline().OnRenderStart(ctx, engine.Name(), opts.Format)
	start := time.Now()
	img, err := engine.Render(ctx, spec, opts.RenderOptions())
	observability.Pipeline().OnRenderComplete(ctx, engine.Name(), opts.Format, len(img), time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}

	if !opts.NoCache {
		if err := r.Cache.Set(ctx, key, img, cache.TTLRender); err == nil {
			observability.Cache().OnCacheSet(ctx, "render", len(img))
		}
	}

	return img, hash, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, spec *vega.Spec, opts Options) ([]byte, error) {
	img, _, _, err := r.RenderWithCacheInfo(ctx, spec, opts)
	return img, err
}

// place writes the image to the output file, or inserts it into the
// workbook replacing any prior artifact of the same chart type, and
// saves the document.
func (r *Runner) place(ctx context.Context, wb *workbook.Workbook, img []byte, opts Options) (*workbook.Artifact, error) {
	if opts.Output != "" {
		observability.Pipeline().OnPlaceStart(ctx, opts.Output)
		start := time.Now()
		err := os.WriteFile(opts.Output, img, 0o644)
		observability.Pipeline().OnPlaceComplete(ctx, opts.Output, time.Since(start), err)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "write output %s", opts.Output)
		}
		return nil, nil
	}
	if !opts.ShouldPlace() || wb == nil {
		return nil, nil
	}

	target := opts.Sheet + "!" + opts.Anchor
	observability.Pipeline().OnPlaceStart(ctx, target)
	start := time.Now()

	artifact, err := wb.PlaceArtifact(opts.Sheet, opts.Anchor, opts.ChartType, img, opts.BoxWidth, opts.BoxHeight)
	if err == nil {
		err = wb.Save()
	}
	observability.Pipeline().OnPlaceComplete(ctx, target, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifact, nil
}

// engine instantiates the configured rendering engine.
func (r *Runner) engine(opts Options) (render.Engine, error) {
	switch opts.Engine {
	case EngineVLConvert:
		return render.NewVLConvert(opts.EnginePath), nil
	case EngineService:
		return render.NewService(opts.ServiceURL, nil), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid engine: %q", opts.Engine)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
