package render

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/vega"
)

// DefaultBinary is the vl-convert executable looked up on PATH when no
// explicit path is configured.
const DefaultBinary = "vl-convert"

// VLConvert renders specifications by shelling out to the vl-convert
// command-line tool.
type VLConvert struct {
	path string
}

// NewVLConvert builds the subprocess engine. An empty path means the
// binary is resolved from PATH at render time.
func NewVLConvert(path string) *VLConvert {
	if path == "" {
		path = DefaultBinary
	}
	return &VLConvert{path: path}
}

// Name implements [Engine].
func (e *VLConvert) Name() string {
	return "vl-convert"
}

// Render implements [Engine]. The specification is written to a
// temporary directory, converted in one subprocess call, and the output
// file read back. The directory is removed on every path.
func (e *VLConvert) Render(ctx context.Context, spec *vega.Spec, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	bin, err := exec.LookPath(e.path)
	if err != nil {
		return nil, errors.New(errors.ErrCodeEngineNotFound,
			"%s rendering requires vl-convert. Install with:\n  macOS:  brew install vl-convert\n  other:  cargo install vl-convert", opts.Format)
	}

	doc, err := spec.JSON()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize specification")
	}

	dir, err := os.MkdirTemp("", "rangeviz-render-")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create temp directory")
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "spec.json")
	out := filepath.Join(dir, "chart."+string(opts.Format))
	if err := os.WriteFile(in, doc, 0o600); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write specification")
	}

	args := []string{subcommand(spec.Dialect, opts.Format), "--input", in, "--output", out}
	if opts.Format != FormatSVG {
		args = append(args, "--scale", fmt.Sprintf("%g", opts.Scale))
	}
	if opts.PPI > 0 {
		args = append(args, "--ppi", fmt.Sprintf("%d", opts.PPI))
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); stderrors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, errors.Wrap(errors.ErrCodeTimeout, ctxErr, "vl-convert timed out")
		}
		return nil, errors.New(errors.ErrCodeEngineFailure,
			"vl-convert failed: %v: %s", err, stderr.String())
	}

	img, err := os.ReadFile(out)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEngineFailure, err, "read rendered output")
	}
	return img, nil
}

// subcommand maps a (dialect, format) pair onto the matching vl-convert
// conversion mode.
func subcommand(d vega.Dialect, f Format) string {
	prefix := "vl2"
	if d == vega.DialectVega {
		prefix = "vg2"
	}
	return prefix + string(f)
}
