package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rangeviz/rangeviz/pkg/pipeline"
)

// chartCommand creates the chart command, the end-to-end pipeline:
// read a range, assemble the specification, render it, and place the
// image into the workbook (or write it to a file with -o).
func (c *CLI) chartCommand() *cobra.Command {
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "chart [workbook.xlsx]",
		Short: "Render a chart from a workbook range and place it back",
		Long: `Render a chart from a workbook range.

The chart command reads the given range, assembles a chart specification
for the selected type, renders it through the configured engine, and
inserts the image into the workbook. Re-running with the same chart type
replaces the previous image instead of stacking a new one.

With -o the image is written to a file and the workbook is left
untouched. Without --type on a terminal, an interactive picker lists the
catalog.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Workbook = args[0]
			if opts.ChartType == "" {
				picked, err := pickChartType()
				if err != nil {
					return err
				}
				opts.ChartType = picked
			}
			c.applyConfig(cmd, &opts)
			return c.runChart(cmd.Context(), opts)
		},
	}

	c.addPipelineFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "target sheet for placement (default: prior artifact or first sheet)")
	cmd.Flags().StringVar(&opts.Anchor, "anchor", "", "target anchor cell, e.g. E2 (default: prior artifact or A1)")
	cmd.Flags().IntVar(&opts.BoxWidth, "box-width", 0, "bounding box width in pixels (downscale only)")
	cmd.Flags().IntVar(&opts.BoxHeight, "box-height", 0, "bounding box height in pixels (downscale only)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the image to a file instead of placing it")

	return cmd
}

// addPipelineFlags registers the flags shared by chart and preview.
func (c *CLI) addPipelineFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVarP(&opts.Range, "range", "r", "", "range reference, e.g. \"Sheet1!A1:C13\" or a sheet name")
	cmd.Flags().StringVarP(&opts.ChartType, "type", "t", "", "chart type (see 'rangeviz types')")
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "chart width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "chart height in pixels")
	cmd.Flags().StringVar(&opts.Engine, "engine", "", "rendering engine: vl-convert (default), service")
	cmd.Flags().StringVar(&opts.EnginePath, "engine-path", "", "explicit vl-convert binary path")
	cmd.Flags().StringVar(&opts.ServiceURL, "service-url", "", "render service endpoint (service engine)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "output format: png (default), svg, pdf")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "render resolution multiplier")
	cmd.Flags().IntVar(&opts.PPI, "ppi", 0, "pixels per inch (png only)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cached results but still store fresh ones")
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "disable caching")
}

// applyConfig fills options the user did not set on the command line
// from the configuration file.
func (c *CLI) applyConfig(cmd *cobra.Command, opts *pipeline.Options) {
	cfg := c.config()
	set := cmd.Flags().Changed

	if !set("engine") && opts.Engine == "" {
		opts.Engine = cfg.Engine.Name
	}
	if !set("engine-path") && opts.EnginePath == "" {
		opts.EnginePath = cfg.Engine.Path
	}
	if !set("service-url") && opts.ServiceURL == "" {
		opts.ServiceURL = cfg.Engine.ServiceURL
	}
	if !set("format") && opts.Format == "" {
		opts.Format = cfg.Chart.Format
	}
	if !set("width") && opts.Width == 0 {
		opts.Width = cfg.Chart.Width
	}
	if !set("height") && opts.Height == 0 {
		opts.Height = cfg.Chart.Height
	}
	if !set("scale") && opts.Scale == 0 {
		opts.Scale = cfg.Chart.Scale
	}
	if !set("ppi") && opts.PPI == 0 {
		opts.PPI = cfg.Chart.PPI
	}
}

// runChart executes the full pipeline and prints the summary.
func (c *CLI) runChart(ctx context.Context, opts pipeline.Options) error {
	runner, err := c.newRunner(opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s chart...", opts.ChartType))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Chart failed")
		return err
	}
	spinner.Stop()

	printSuccess("Rendered %s chart", opts.ChartType)
	printStats(result.Stats.Rows, result.Stats.Records, result.CacheInfo.RenderHit)

	switch {
	case result.Placement != nil:
		printKeyValue("workbook", opts.Workbook)
		printKeyValue("anchor", result.Placement.Sheet+"!"+result.Placement.Anchor)
		printDetail("tracked as %s", result.Placement.Name)
	case opts.Output != "":
		printFile(opts.Output)
	}

	if _, err := os.Stat(opts.Workbook); err == nil && result.Placement != nil {
		printNewline()
		printNextStep("Re-run to refresh the placed chart",
			fmt.Sprintf("rangeviz chart %s -r %q -t %s", opts.Workbook, opts.Range, opts.ChartType))
	}
	return nil
}
