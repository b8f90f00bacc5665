// Package cli implements the rangeviz command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rangeviz/rangeviz/internal/config"
	"github.com/rangeviz/rangeviz/pkg/buildinfo"
	"github.com/rangeviz/rangeviz/pkg/cache"
	"github.com/rangeviz/rangeviz/pkg/geo"
	"github.com/rangeviz/rangeviz/pkg/httputil"
	"github.com/rangeviz/rangeviz/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "rangeviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the default config file location (--config).
	ConfigPath string

	cfg       config.Config
	cfgLoaded bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "rangeviz",
		Short:        "Rangeviz turns spreadsheet ranges into charts",
		Long:         `Rangeviz reads a tabular range from an xlsx workbook, assembles a chart specification from it, renders the chart through an external engine, and places the image back into the workbook (or writes it to a file).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default ~/.config/rangeviz/config.toml)")

	// Register all subcommands
	root.AddCommand(c.chartCommand())
	root.AddCommand(c.typesCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.hierarchyCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// config loads the configuration file once and caches it for the rest
// of the invocation.
func (c *CLI) config() config.Config {
	if c.cfgLoaded {
		return c.cfg
	}
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		c.Logger.Warn("config file ignored", "err", err)
	}
	c.cfg = cfg
	c.cfgLoaded = true
	return c.cfg
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use, wiring the render
// cache and the geo client for the map chart type.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(c.config().Cache.Dir, noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(store, nil, c.Logger)
	runner.Geo = c.newGeoClient()
	return runner, nil
}

func newCache(dir string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// newGeoClient builds the world-boundary dataset client backed by the
// namespaced HTTP cache. A nil client is fine; only the map type needs
// it and the runner reports a clear error in that case.
func (c *CLI) newGeoClient() *geo.Client {
	dir, err := cacheDir()
	if err != nil {
		return geo.NewClient(nil, c.config().Geo.DatasetURL)
	}
	httpCache, err := httputil.NewCache(filepath.Join(dir, "http"), cache.TTLHTTP)
	if err != nil {
		return geo.NewClient(nil, c.config().Geo.DatasetURL)
	}
	return geo.NewClient(httpCache, c.config().Geo.DatasetURL)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/rangeviz/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// isTerminal reports whether f is attached to a terminal, which gates
// the interactive chart-type picker.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
