// Package config loads the optional rangeviz configuration file.
//
// Configuration lives at ~/.config/rangeviz/config.toml. Every field
// has a working default, so the file is only needed to change engine
// selection, cache behavior, or server settings. Command-line flags
// override file values.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/geo"
)

// Config is the full configuration tree.
type Config struct {
	Engine Engine `toml:"engine"`
	Chart  Chart  `toml:"chart"`
	Cache  Cache  `toml:"cache"`
	Geo    Geo    `toml:"geo"`
	Server Server `toml:"server"`
}

// Engine selects and configures the rendering engine.
type Engine struct {
	// Name is "vl-convert" or "service".
	Name string `toml:"name"`

	// Path overrides the vl-convert binary location.
	Path string `toml:"path"`

	// ServiceURL is the remote rendering endpoint for the service
	// engine.
	ServiceURL string `toml:"service_url"`
}

// Chart holds default chart parameters.
type Chart struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Scale  float64 `toml:"scale"`
	PPI    int     `toml:"ppi"`
	Format string  `toml:"format"`
}

// Cache configures artifact caching.
type Cache struct {
	// Dir is the file-cache directory. Empty uses the XDG default.
	Dir string `toml:"dir"`

	// RedisAddr switches the cache backend to Redis when set.
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// Geo configures the world boundary dataset.
type Geo struct {
	DatasetURL string `toml:"dataset_url"`
}

// Server configures serve mode.
type Server struct {
	Addr     string `toml:"addr"`
	MongoURI string `toml:"mongo_uri"`
	MongoDB  string `toml:"mongo_db"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: Engine{Name: "vl-convert"},
		Chart:  Chart{Scale: 1, Format: "png"},
		Geo:    Geo{DatasetURL: geo.DefaultDatasetURL},
		Server: Server{Addr: ":8080"},
	}
}

// Path returns the configuration file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rangeviz", "config.toml"), nil
}

// Load reads the configuration file at path, layered over the
// defaults. An empty path uses [Path]; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, nil
}
