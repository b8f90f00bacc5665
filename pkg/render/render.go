package render

import (
	"context"
	"strings"

	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/vega"
)

// Format is a supported output image format.
type Format string

// The output formats every engine must support.
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPNG, "":
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported output format: %q (png, svg, or pdf)", s)
	}
}

// Options configures one rendering call.
type Options struct {
	// Format selects the output image format. Empty means PNG.
	Format Format

	// Scale multiplies the canvas resolution. Zero means 1x; 2 produces
	// a 2x image for high-DPI placement.
	Scale float64

	// PPI sets the pixels-per-inch metadata on PNG output. Zero leaves
	// the engine default.
	PPI int
}

// ValidateAndSetDefaults normalizes the options in place.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Format == "" {
		o.Format = FormatPNG
	}
	switch o.Format {
	case FormatPNG, FormatSVG, FormatPDF:
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"unsupported output format: %q (png, svg, or pdf)", o.Format)
	}

	if o.Scale == 0 {
		o.Scale = 1
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	if o.PPI < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "ppi must be non-negative, got %d", o.PPI)
	}
	if o.PPI > 0 && o.Format != FormatPNG {
		return errors.New(errors.ErrCodeInvalidInput, "ppi only applies to png output")
	}
	return nil
}

// Engine executes a chart specification and returns the image bytes.
type Engine interface {
	// Name identifies the engine in logs and cache keys.
	Name() string

	// Render executes the specification.
	Render(ctx context.Context, spec *vega.Spec, opts Options) ([]byte, error)
}
