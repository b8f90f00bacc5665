package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rangeviz/rangeviz/pkg/cache"
	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/table"
)

func testRows() [][]table.Value {
	return [][]table.Value{
		{table.Text("Month"), table.Text("Sales")},
		{table.Text("Jan"), table.Number(10)},
		{table.Text("Feb"), table.Number(20)},
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"rows input", Options{ChartType: "line", Rows: testRows(), Output: "out.png"}, false},
		{"missing chart type", Options{Rows: testRows()}, true},
		{"missing source", Options{ChartType: "line"}, true},
		{"both sources", Options{ChartType: "line", Workbook: "a.xlsx", Range: "Sheet1", Rows: testRows()}, true},
		{"workbook without range", Options{ChartType: "line", Workbook: "a.xlsx"}, true},
		{"bad engine", Options{ChartType: "line", Rows: testRows(), Engine: "imagemagick"}, true},
		{"service without url", Options{ChartType: "line", Rows: testRows(), Engine: "service"}, true},
		{"bad format", Options{ChartType: "line", Rows: testRows(), Format: "gif"}, true},
		{"svg needs file target", Options{ChartType: "line", Workbook: "a.xlsx", Range: "Sheet1", Format: "svg"}, true},
		{"svg to file", Options{ChartType: "line", Rows: testRows(), Format: "svg", Output: "o.svg"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAndSetDefaults() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{ChartType: "bar", Rows: testRows(), Output: "out.png"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Engine != EngineVLConvert {
		t.Errorf("default engine = %q", opts.Engine)
	}
	if opts.Format != "png" || opts.Scale != 1 {
		t.Errorf("unexpected render defaults: format=%q scale=%v", opts.Format, opts.Scale)
	}
	if opts.Logger == nil {
		t.Error("logger default not applied")
	}

	// Idempotent: a second call leaves everything untouched.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
}

func TestExtractFromRows(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	tbl, err := r.Extract(context.Background(), Options{
		ChartType: "line", Rows: testRows(), Output: "out.png",
	})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if tbl.RowCount() != 2 || tbl.Columns() != 2 {
		t.Errorf("unexpected table shape: %dx%d", tbl.RowCount(), tbl.Columns())
	}
}

func TestExtractRejectsHeaderOnly(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Extract(context.Background(), Options{
		ChartType: "line",
		Rows:      [][]table.Value{{table.Text("Month"), table.Text("Sales")}},
		Output:    "out.png",
	})
	if !errors.Is(err, errors.ErrCodeShapeTooSmall) {
		t.Fatalf("expected SHAPE_TOO_SMALL, got %v", err)
	}
}

func TestAssembleUnknownType(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	tbl, err := table.New(testRows())
	if err != nil {
		t.Fatal(err)
	}
	_, err = r.Assemble(context.Background(), tbl, Options{
		ChartType: "sparkline", Rows: testRows(), Output: "out.png",
	})
	if !errors.Is(err, errors.ErrCodeInvalidChartType) {
		t.Fatalf("expected INVALID_CHART_TYPE, got %v", err)
	}
}

// Full run through the service engine against a stub server: rows in,
// file out, second run served from cache.
func TestExecuteEndToEnd(t *testing.T) {
	renders := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		renders++
		w.Write([]byte("fake-image"))
	}))
	defer srv.Close()

	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	out := filepath.Join(t.TempDir(), "chart.png")
	opts := Options{
		ChartType:  "line",
		Rows:       testRows(),
		Engine:     EngineService,
		ServiceURL: srv.URL,
		Output:     out,
	}

	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.CacheInfo.RenderHit {
		t.Error("first run should miss the render cache")
	}
	if result.Stats.Rows != 2 || result.Stats.Records != 2 {
		t.Errorf("unexpected stats: %+v", result.Stats)
	}
	if result.SpecHash == "" {
		t.Error("spec hash missing")
	}
	if data, err := os.ReadFile(out); err != nil || string(data) != "fake-image" {
		t.Errorf("output file: %q, %v", data, err)
	}

	// Second run hits the cache; the engine is not called again.
	result2, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute (cached): %v", err)
	}
	if !result2.CacheInfo.RenderHit {
		t.Error("second run should hit the render cache")
	}
	if renders != 1 {
		t.Errorf("engine called %d times, want 1", renders)
	}
}

func TestExecuteNoCache(t *testing.T) {
	renders := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		renders++
		w.Write([]byte("img"))
	}))
	defer srv.Close()

	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	opts := Options{
		ChartType:  "bar",
		Rows:       testRows(),
		Engine:     EngineService,
		ServiceURL: srv.URL,
		Output:     filepath.Join(t.TempDir(), "chart.png"),
		NoCache:    true,
	}
	for i := 0; i < 2; i++ {
		if _, err := r.Execute(context.Background(), opts); err != nil {
			t.Fatal(err)
		}
	}
	if renders != 2 {
		t.Errorf("NoCache should render every time, got %d calls", renders)
	}
}

func TestExecuteAssembleFailureSkipsRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("engine should not be called when assembly fails")
	}))
	defer srv.Close()

	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{
		ChartType: "pie",
		Rows: [][]table.Value{
			{table.Text("Segment"), table.Text("Share")},
			{table.Text("A"), table.Number(-1)},
		},
		Engine:     EngineService,
		ServiceURL: srv.URL,
		Output:     filepath.Join(t.TempDir(), "chart.png"),
	})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT from pie validation, got %v", err)
	}
}
