package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/rangeviz/rangeviz/internal/config"
	"github.com/rangeviz/rangeviz/pkg/pipeline"
)

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"chart", "types", "preview", "hierarchy", "serve", "cache", "completion"}
	have := map[string]bool{}
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestApplyConfigFillsUnsetFlags(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.cfg = config.Config{
		Engine: config.Engine{Name: "service", ServiceURL: "http://render:8090"},
		Chart:  config.Chart{Width: 800, Scale: 2, Format: "svg"},
	}
	c.cfgLoaded = true

	var opts pipeline.Options
	cmd := &cobra.Command{}
	c.addPipelineFlags(cmd, &opts)
	if err := cmd.Flags().Set("format", "png"); err != nil {
		t.Fatal(err)
	}

	c.applyConfig(cmd, &opts)
	if opts.Engine != "service" || opts.ServiceURL != "http://render:8090" {
		t.Errorf("engine config not applied: %q %q", opts.Engine, opts.ServiceURL)
	}
	if opts.Width != 800 || opts.Scale != 2 {
		t.Errorf("chart config not applied: width=%d scale=%v", opts.Width, opts.Scale)
	}
	// A flag set on the command line wins over the file.
	if opts.Format != "png" {
		t.Errorf("format = %q, want flag value png", opts.Format)
	}
}

func TestTypeTableListsCatalog(t *testing.T) {
	out := renderTypeTable()
	for _, name := range []string{"line", "bar", "treemap", "wordcloud"} {
		if !strings.Contains(out, name) {
			t.Errorf("type table missing %q", name)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 * 1024 * 1024, "3.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCacheUsage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a"), []byte("12345"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b"), []byte("123"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, bytes := cacheUsage(dir)
	if entries != 2 || bytes != 8 {
		t.Errorf("cacheUsage = %d entries, %d bytes; want 2, 8", entries, bytes)
	}
}
