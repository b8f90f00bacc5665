// Package cache provides caching for rendered chart artifacts and HTTP
// responses.
//
// The [Cache] interface abstracts over storage backends:
//   - [FileCache]: file-based storage for CLI usage
//   - [RedisCache]: Redis-backed storage for server deployments
//   - [NullCache]: no-op cache for tests or --no-cache runs
//
// Keys are generated by a [Keyer] so that CLI and server produce
// identical keys for identical work. The expensive stage of the pipeline
// is the external render engine invocation; its results are cached by a
// content hash of the chart specification plus the render options.
package cache

import (
	"context"
	"time"
)

// TTLs for the different cached value classes.
const (
	// TTLRender is how long rendered artifacts stay valid. Rendering is
	// deterministic for a given spec, so this is generous.
	TTLRender = 7 * 24 * time.Hour

	// TTLHTTP is how long cached HTTP responses (the geo boundary
	// dataset, render-service metadata) stay valid.
	TTLHTTP = 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a
// miss; errors are reserved for backend failures. A ttl of 0 on Set
// means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// RenderKeyOpts are the options that affect rendered output and thus
// participate in the artifact cache key.
type RenderKeyOpts struct {
	Engine string  `json:"engine"`
	Format string  `json:"format"`
	Scale  float64 `json:"scale"`
	PPI    int     `json:"ppi"`
}

// Keyer generates cache keys. Implementations must be deterministic:
// the same inputs always produce the same key.
type Keyer interface {
	// HTTPKey generates a key for a cached HTTP response.
	HTTPKey(namespace, key string) string

	// RenderKey generates a key for a rendered artifact from the
	// content hash of the chart specification and the render options.
	RenderKey(specHash string, opts RenderKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return hashKey("http", namespace, key)
}

// RenderKey generates a key for rendered artifact caching.
func (k *DefaultKeyer) RenderKey(specHash string, opts RenderKeyOpts) string {
	return hashKey("render", specHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
