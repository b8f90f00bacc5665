package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rangeviz/rangeviz/internal/server"
	"github.com/rangeviz/rangeviz/pkg/cache"
	"github.com/rangeviz/rangeviz/pkg/gallery"
	"github.com/rangeviz/rangeviz/pkg/pipeline"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr          string
		mongoURI      string
		memoryGallery bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chart rendering HTTP API",
		Long: `Run the HTTP API.

POST /api/v1/charts renders a chart from posted rows; GET /api/v1/types
lists the catalog. With a Mongo URI configured, rendered charts are
persisted to a gallery and become listable under /api/v1/charts.
--memory-gallery enables an in-process gallery for local development.

With a Redis address configured, render results are cached in Redis so
multiple instances share one cache; otherwise the file cache is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config()
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}
			if !cmd.Flags().Changed("mongo-uri") {
				mongoURI = cfg.Server.MongoURI
			}
			return c.runServe(cmd.Context(), addr, mongoURI, memoryGallery)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI for the chart gallery")
	cmd.Flags().BoolVar(&memoryGallery, "memory-gallery", false, "keep the gallery in memory (development)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, mongoURI string, memoryGallery bool) error {
	cfg := c.config()

	store, err := c.serveCache(ctx)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	runner := pipeline.NewRunner(store, nil, c.Logger)
	runner.Geo = c.newGeoClient()
	defer runner.Close()

	var gal gallery.Store
	switch {
	case mongoURI != "":
		gal, err = gallery.NewMongoStore(ctx, mongoURI, cfg.Server.MongoDB)
		if err != nil {
			return fmt.Errorf("connect gallery: %w", err)
		}
		defer gal.Close(context.Background())
		c.Logger.Info("gallery enabled", "backend", "mongo")
	case memoryGallery:
		gal = gallery.NewMemoryStore()
		c.Logger.Info("gallery enabled", "backend", "memory")
	}

	srv := server.New(runner, gal, c.Logger)
	srv.Defaults = server.Defaults{
		Engine:     cfg.Engine.Name,
		EnginePath: cfg.Engine.Path,
		ServiceURL: cfg.Engine.ServiceURL,
	}

	return srv.ListenAndServe(ctx, addr)
}

// serveCache picks the cache backend for serve mode: Redis when an
// address is configured, the file cache otherwise.
func (c *CLI) serveCache(ctx context.Context) (cache.Cache, error) {
	cfg := c.config().Cache
	if cfg.RedisAddr != "" {
		c.Logger.Info("using redis cache", "addr", cfg.RedisAddr)
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	return newCache(cfg.Dir, false)
}
