// Package geo provides the world administrative boundary dataset the
// map chart type joins against.
//
// The dataset is a TopoJSON document of country polygons fetched by
// URL and cached on disk. Input rows identify countries by ISO 3166-1
// alpha-3 code; the boundary features carry the numeric country id, so
// the fixed alpha-3 → numeric lookup table in this package bridges the
// two. Rows whose code does not resolve are dropped.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/httputil"
)

// DefaultDatasetURL is the world boundary TopoJSON fetched when no
// override is configured.
const DefaultDatasetURL = "https://cdn.jsdelivr.net/npm/world-atlas@2.0.2/countries-110m.json"

// Client fetches and caches the boundary dataset.
type Client struct {
	http  *http.Client
	cache *httputil.Cache
	url   string
}

// NewClient creates a dataset client. The cache may be nil to disable
// caching; an empty url selects [DefaultDatasetURL].
func NewClient(cache *httputil.Cache, url string) *Client {
	if url == "" {
		url = DefaultDatasetURL
	}
	if cache != nil {
		cache = cache.Namespace("geo:")
	}
	return &Client{
		http:  &http.Client{Timeout: 60 * time.Second},
		cache: cache,
		url:   url,
	}
}

// World returns the parsed TopoJSON document. The cached copy is used
// unless refresh is true or the entry expired; fetches retry with
// backoff on transient failures.
func (c *Client) World(ctx context.Context, refresh bool) (map[string]any, error) {
	var doc map[string]any

	if c.cache != nil && !refresh {
		if ok, _ := c.cache.Get(c.url, &doc); ok {
			return doc, nil
		}
	}

	err := httputil.RetryWithBackoff(ctx, func() error {
		return c.fetch(ctx, &doc)
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetch world boundary dataset")
	}

	if c.cache != nil {
		_ = c.cache.Set(c.url, doc)
	}
	return doc, nil
}

func (c *Client) fetch(ctx context.Context, doc *map[string]any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &httputil.RetryableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return &httputil.RetryableError{Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &httputil.RetryableError{Err: err}
	}
	return json.Unmarshal(data, doc)
}
