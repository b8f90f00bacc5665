package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/gallery"
	"github.com/rangeviz/rangeviz/pkg/pipeline"
)

func testServer(t *testing.T, store gallery.Store) *httptest.Server {
	t.Helper()
	s := New(pipeline.NewRunner(nil, nil, nil), store, nil)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postChart(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/v1/charts", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

const lineRequest = `{
	"chart_type": "line",
	"format": "spec",
	"rows": [["Month","Sales"],["Jan",10],["Feb",20]]
}`

func TestHealthz(t *testing.T) {
	srv := testServer(t, nil)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}
}

func TestTypesEndpoint(t *testing.T) {
	srv := testServer(t, nil)
	resp, err := http.Get(srv.URL + "/api/v1/types")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Types []struct {
			Type       string `json:"type"`
			MinColumns int    `json:"min_columns"`
		} `json:"types"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Types) != 35 {
		t.Errorf("expected 35 types, got %d", len(body.Types))
	}
}

func TestCreateChartSpec(t *testing.T) {
	srv := testServer(t, nil)
	resp := postChart(t, srv, lineRequest)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}

	var spec map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&spec); err != nil {
		t.Fatal(err)
	}
	if spec["$schema"] == nil || spec["mark"] == nil {
		t.Errorf("response does not look like a chart specification: %v", spec)
	}
}

func TestCreateChartInvalidType(t *testing.T) {
	srv := testServer(t, nil)
	resp := postChart(t, srv, `{"chart_type":"sparkline","format":"spec","rows":[["A","B"],["x",1]]}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if env.Code != "INVALID_CHART_TYPE" {
		t.Errorf("code = %q", env.Code)
	}
}

func TestCreateChartTooFewRows(t *testing.T) {
	srv := testServer(t, nil)
	resp := postChart(t, srv, `{"chart_type":"line","format":"spec","rows":[["A","B"]]}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if env.Code != "SHAPE_TOO_SMALL" {
		t.Errorf("code = %q", env.Code)
	}
}

func TestCreateChartMalformedBody(t *testing.T) {
	srv := testServer(t, nil)
	resp := postChart(t, srv, `{nope`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGalleryRoutesDisabledWithoutStore(t *testing.T) {
	srv := testServer(t, nil)
	resp, err := http.Get(srv.URL + "/api/v1/charts")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed && resp.StatusCode != http.StatusNotFound {
		t.Errorf("gallery list without store: status = %d", resp.StatusCode)
	}
}

func TestGalleryGetMissing(t *testing.T) {
	srv := testServer(t, gallery.NewMemoryStore())
	resp, err := http.Get(srv.URL + "/api/v1/charts/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"INVALID_INPUT", 400},
		{"SHAPE_TOO_SMALL", 400},
		{"NOT_FOUND", 404},
		{"RATE_LIMITED", 429},
		{"TIMEOUT", 504},
		{"NETWORK_ERROR", 502},
		{"ENGINE_NOT_FOUND", 503},
		{"INTERNAL_ERROR", 500},
		{"", 500},
	}
	for _, tt := range tests {
		if got := statusFor(errors.Code(tt.code)); got != tt.want {
			t.Errorf("statusFor(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
