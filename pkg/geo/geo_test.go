package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rangeviz/rangeviz/pkg/httputil"
	"github.com/rangeviz/rangeviz/pkg/table"
)

func TestNumericID(t *testing.T) {
	tests := []struct {
		code string
		want int
		ok   bool
	}{
		{"USA", 840, true},
		{"usa", 840, true},
		{" DEU ", 276, true},
		{"JPN", 392, true},
		{"XXX", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := NumericID(tt.code)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NumericID(%q) = %d, %v; want %d, %v", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRecords(t *testing.T) {
	tbl, err := table.New([][]table.Value{
		{table.Text("Country"), table.Text("Value")},
		{table.Text("USA"), table.Number(100)},
		{table.Text("XXX"), table.Number(50)},  // unknown code: dropped
		{table.Text("FRA"), table.Text("n/a")}, // non-numeric value: dropped
		{table.Text("JPN"), table.Number(25)},
	})
	if err != nil {
		t.Fatal(err)
	}

	recs := Records(tbl)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0]["id"] != float64(840) || recs[0]["value"] != float64(100) {
		t.Errorf("unexpected first record: %v", recs[0])
	}
	if recs[1]["iso3"] != "JPN" {
		t.Errorf("unexpected second record: %v", recs[1])
	}
}

func TestClientWorld(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{"type": "Topology"})
	}))
	defer srv.Close()

	cache, err := httputil.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	c := NewClient(cache, srv.URL)

	ctx := context.Background()
	doc, err := c.World(ctx, false)
	if err != nil {
		t.Fatalf("World: %v", err)
	}
	if doc["type"] != "Topology" {
		t.Errorf("unexpected document: %v", doc)
	}

	// Second call is served from cache.
	if _, err := c.World(ctx, false); err != nil {
		t.Fatalf("World (cached): %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 HTTP call, got %d", calls)
	}

	// Refresh bypasses the cache.
	if _, err := c.World(ctx, true); err != nil {
		t.Fatalf("World (refresh): %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 HTTP calls after refresh, got %d", calls)
	}
}

func TestClientWorldNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(nil, srv.URL)
	if _, err := c.World(context.Background(), false); err == nil {
		t.Fatal("expected error for 404 response")
	}
}
