package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rangeviz/rangeviz/pkg/pipeline"
)

// previewCommand creates the preview command: render a range to a file
// or stdout without touching the workbook.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		opts     pipeline.Options
		specOnly bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "preview [workbook.xlsx]",
		Short: "Render a chart without placing it into the workbook",
		Long: `Render a chart from a workbook range without modifying the
workbook. The image goes to -o or stdout. With --spec the assembled
chart specification is printed as JSON instead of rendering, which is
useful for inspecting encodings or feeding an external renderer.`,
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
			return c.runPreview(cmd.Context(), opts, specOnly, output)
		},
	}

	c.addPipelineFlags(cmd, &opts)
	cmd.Flags().BoolVar(&specOnly, "spec", false, "print the chart specification JSON instead of rendering")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// runPreview runs extract and assemble, then either emits the spec or
// renders it. Placement is skipped entirely.
func (c *CLI) runPreview(ctx context.Context, opts pipeline.Options, specOnly bool, output string) error {
	runner, err := c.newRunner(opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger
	opts.NoPlace = true

	tbl, err := runner.Extract(ctx, opts)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	spec, err := runner.Assemble(ctx, tbl, opts)
	if err != nil {
		return fmt.Errorf("assemble: %w", err)
	}

	if specOnly {
		doc, err := spec.JSON()
		if err != nil {
			return err
		}
		return writePreview(output, append(doc, '\n'))
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s chart...", opts.ChartType))
	spinner.Start()
	img, _, cached, err := runner.RenderWithCacheInfo(ctx, spec, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if err := writePreview(output, img); err != nil {
		return err
	}
	if output != "" {
		printSuccess("Rendered %s chart", opts.ChartType)
		printStats(tbl.RowCount(), 0, cached)
		printFile(output)
	}
	return nil
}

// writePreview writes data to the output file, or stdout when empty.
func writePreview(output string, data []byte) error {
	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(output, data, 0o644)
}
