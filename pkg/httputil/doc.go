// Package httputil provides HTTP utilities for external data clients.
//
// # Overview
//
// This package provides infrastructure shared by every client that talks
// to the network (the geo boundary fetcher, the render-service engine):
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/rangeviz/)
// with configurable TTL. This keeps the world boundary dataset and other
// remote resources local across invocations.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	ok, _ := cache.Get("geo:world-atlas", &data)  // Check cache
//	if !ok {
//	    data = fetchFromURL()
//	    cache.Set("geo:world-atlas", data)        // Store for later
//	}
//
// Cache keys should be namespaced by source to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// It uses exponential backoff to avoid hammering a struggling server:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return fetch(url)
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/rangeviz/
//   - Default TTL: 24 hours
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `rangeviz cache clear` or by deleting
// the cache directory.
package httputil
