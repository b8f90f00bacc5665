package render

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/httputil"
	"github.com/rangeviz/rangeviz/pkg/vega"
)

// Service renders specifications by posting them to a remote rendering
// service speaking the vl-convert HTTP protocol.
type Service struct {
	url    string
	client *http.Client
}

// NewService builds the HTTP engine. A nil client gets a 30 second
// timeout default.
func NewService(url string, client *http.Client) *Service {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Service{url: url, client: client}
}

// Name implements [Engine].
func (e *Service) Name() string {
	return "service"
}

// renderRequest is the wire form of one conversion call.
type renderRequest struct {
	Spec    json.RawMessage `json:"spec"`
	Dialect string          `json:"dialect"`
	Format  string          `json:"format"`
	Scale   float64         `json:"scale"`
	PPI     int             `json:"ppi,omitempty"`
}

// Render implements [Engine]. Transient failures (network errors, 5xx
// responses) are retried with exponential backoff; client-side
// rejections fail immediately.
func (e *Service) Render(ctx context.Context, spec *vega.Spec, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	doc, err := spec.JSON()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize specification")
	}
	payload, err := json.Marshal(renderRequest{
		Spec:    doc,
		Dialect: string(spec.Dialect),
		Format:  string(opts.Format),
		Scale:   opts.Scale,
		PPI:     opts.PPI,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize render request")
	}

	var img []byte
	err = httputil.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := e.client.Do(req)
		if err != nil {
			return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "render service unreachable")}
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			img, err = io.ReadAll(resp.Body)
			return err
		case resp.StatusCode == http.StatusTooManyRequests:
			return &httputil.RetryableError{Err: errors.New(errors.ErrCodeRateLimited, "render service rate limited")}
		case resp.StatusCode == http.StatusRequestTimeout, resp.StatusCode == http.StatusGatewayTimeout:
			return &httputil.RetryableError{Err: errors.New(errors.ErrCodeTimeout, "render service timed out")}
		case resp.StatusCode >= 500:
			return &httputil.RetryableError{Err: errors.New(errors.ErrCodeNetwork,
				"render service returned %d", resp.StatusCode)}
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return errors.New(errors.ErrCodeEngineFailure,
				"render service rejected the specification (%d): %s", resp.StatusCode, bytes.TrimSpace(body))
		}
	})
	if err != nil {
		return nil, err
	}
	if len(img) == 0 {
		return nil, errors.New(errors.ErrCodeEngineFailure, "render service returned an empty image")
	}
	return img, nil
}
