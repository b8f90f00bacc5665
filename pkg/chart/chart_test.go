package chart

import (
	"strings"
	"testing"

	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/table"
	"github.com/rangeviz/rangeviz/pkg/vega"
)

func mustTable(t *testing.T, cells [][]table.Value) *table.Table {
	t.Helper()
	tbl, err := table.New(cells)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestLookup(t *testing.T) {
	d, err := Lookup("line")
	if err != nil {
		t.Fatalf("Lookup(line): %v", err)
	}
	if d.Type != TypeLine {
		t.Errorf("unexpected type %q", d.Type)
	}

	_, err = Lookup("sparkline")
	if !errors.Is(err, errors.ErrCodeInvalidChartType) {
		t.Errorf("expected INVALID_CHART_TYPE, got %v", err)
	}
	if !strings.Contains(err.Error(), "rangeviz types") {
		t.Errorf("error should point at the catalog command: %v", err)
	}
}

func TestCatalogComplete(t *testing.T) {
	if len(catalog) != 35 {
		t.Fatalf("expected 35 registered types, got %d", len(catalog))
	}
	for _, d := range Types() {
		if d.Summary == "" {
			t.Errorf("%s: missing summary", d.Type)
		}
		if d.MinColumns < 1 {
			t.Errorf("%s: implausible MinColumns %d", d.Type, d.MinColumns)
		}
		if d.reshape == nil || d.build == nil {
			t.Errorf("%s: incomplete registration", d.Type)
		}
		if d.Dialect != vega.DialectVega && d.Dialect != vega.DialectVegaLite {
			t.Errorf("%s: unknown dialect %q", d.Type, d.Dialect)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 35 {
		t.Fatalf("expected 35 names, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

// A three-series sheet pivots into one record per (row, series) pair
// with empty cells skipped.
func TestLineSpec(t *testing.T) {
	tbl := mustTable(t, [][]table.Value{
		{table.Text("Month"), table.Text("North"), table.Text("South")},
		{table.Text("Jan"), table.Number(10), table.Number(20)},
		{table.Text("Feb"), table.Empty(), table.Number(25)},
		{table.Text("Mar"), table.Number(30), table.Text("n/a")},
	})

	d, err := Lookup("line")
	if err != nil {
		t.Fatal(err)
	}

	recs := d.Reshape(tbl)
	if len(recs) != 5 {
		t.Fatalf("expected 5 long records (empty cell skipped), got %d", len(recs))
	}
	// Non-numeric text coerces to 0, not dropped.
	last := recs[len(recs)-1]
	if last[table.SeriesField] != "South" || last[table.ValueField] != float64(0) {
		t.Errorf("unexpected final record: %v", last)
	}

	spec, err := d.Spec(tbl, Options{})
	if err != nil {
		t.Fatalf("Spec: %v", err)
	}
	if spec.Dialect != vega.DialectVegaLite {
		t.Errorf("line should emit vega-lite, got %q", spec.Dialect)
	}
	if spec.Body["width"] != DefaultWidth || spec.Body["height"] != DefaultHeight {
		t.Errorf("default dimensions not applied: width=%v height=%v",
			spec.Body["width"], spec.Body["height"])
	}
}

// Pie-family types refuse zero and negative slice values.
func TestPieRejectsNonPositive(t *testing.T) {
	tbl := mustTable(t, [][]table.Value{
		{table.Text("Segment"), table.Text("Share")},
		{table.Text("A"), table.Number(40)},
		{table.Text("B"), table.Number(-5)},
	})

	for _, name := range []string{"pie", "donut", "funnel"} {
		d, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := d.Spec(tbl, Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("%s: expected INVALID_INPUT for negative value, got %v", name, err)
		}
	}
}

// The waterfall's last row is the closing total: its amount is forced
// to 0 and its bar spans from 0 to the running sum.
func TestWaterfallTotalRow(t *testing.T) {
	tbl := mustTable(t, [][]table.Value{
		{table.Text("Step"), table.Text("Amount")},
		{table.Text("Revenue"), table.Number(100)},
		{table.Text("Costs"), table.Number(-40)},
		{table.Text("Net"), table.Number(999)}, // cell value is ignored
	})

	d, err := Lookup("waterfall")
	if err != nil {
		t.Fatal(err)
	}
	recs := d.Reshape(tbl)
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	total := recs[2]
	if total["amount"] != float64(0) || total["start"] != float64(0) || total["end"] != float64(60) {
		t.Errorf("unexpected total segment: %v", total)
	}
	if total["total"] != true {
		t.Errorf("last row not flagged as total: %v", total)
	}
}

func TestMinColumnRejections(t *testing.T) {
	two := mustTable(t, [][]table.Value{
		{table.Text("A"), table.Text("B")},
		{table.Text("x"), table.Number(1)},
	})

	tests := []struct {
		name string
		min  int
	}{
		{"candlestick", 5},
		{"slope", 3},
		{"bubble", 3},
		{"gauge", 3},
		{"radar", 3},
		{"heatmap", 3},
		{"variance", 3},
		{"bump", 3},
	}
	for _, tt := range tests {
		d, err := Lookup(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		if d.MinColumns != tt.min {
			t.Errorf("%s: MinColumns = %d, want %d", tt.name, d.MinColumns, tt.min)
		}
		if err := d.Validate(two); !errors.Is(err, errors.ErrCodeShapeTooSmall) {
			t.Errorf("%s: expected SHAPE_TOO_SMALL on 2-column table, got %v", tt.name, err)
		}
	}
}

func TestHierarchicalReshape(t *testing.T) {
	tbl := mustTable(t, [][]table.Value{
		{table.Text("ID"), table.Text("Parent"), table.Text("Size")},
		{table.Text("root"), table.Empty(), table.Empty()},
		{table.Text("a"), table.Text("root"), table.Number(3)},
		{table.Text("b"), table.Text("ghost"), table.Number(2)}, // orphan becomes a root
	})

	d, err := Lookup("treemap")
	if err != nil {
		t.Fatal(err)
	}
	if !d.Hierarchical {
		t.Error("treemap should be flagged hierarchical")
	}

	recs := d.Reshape(tbl)
	if len(recs) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(recs))
	}
	if _, has := recs[2]["parent"]; has {
		t.Errorf("orphaned node should have no parent field: %v", recs[2])
	}
	if recs[1]["size"] != float64(3) {
		t.Errorf("unexpected size: %v", recs[1])
	}
}

func TestGaugeReshape(t *testing.T) {
	tbl := mustTable(t, [][]table.Value{
		{table.Text("Label"), table.Text("Value"), table.Text("Max")},
		{table.Text("CPU"), table.Number(75), table.Number(100)},
		{table.Text("ignored"), table.Number(1), table.Number(2)},
	})

	d, err := Lookup("gauge")
	if err != nil {
		t.Fatal(err)
	}
	recs := d.Reshape(tbl)
	if len(recs) != 1 {
		t.Fatalf("gauge reads only the first data row, got %d records", len(recs))
	}
	if recs[0]["label"] != "CPU" || recs[0]["frac"] != float64(0.75) {
		t.Errorf("unexpected gauge record: %v", recs[0])
	}
}

func TestGaugeFractionClamped(t *testing.T) {
	tbl := mustTable(t, [][]table.Value{
		{table.Text("Label"), table.Text("Value"), table.Text("Max")},
		{table.Text("over"), table.Number(150), table.Number(100)},
	})
	d, _ := Lookup("gauge")
	if recs := d.Reshape(tbl); recs[0]["frac"] != float64(1) {
		t.Errorf("fraction should clamp at 1, got %v", recs[0]["frac"])
	}

	zero := mustTable(t, [][]table.Value{
		{table.Text("Label"), table.Text("Value"), table.Text("Max")},
		{table.Text("empty"), table.Number(5), table.Number(0)},
	})
	if recs := d.Reshape(zero); recs[0]["frac"] != float64(0) {
		t.Errorf("non-positive max should yield 0, got %v", recs[0]["frac"])
	}
}

func TestWordCloudReshape(t *testing.T) {
	tbl := mustTable(t, [][]table.Value{
		{table.Text("Word"), table.Text("Count")},
		{table.Text("go"), table.Number(12)},
		{table.Text("chart"), table.Text("n/a")}, // size defaults to 1
		{table.Empty(), table.Number(9)},         // blank word dropped
	})

	d, err := Lookup("wordcloud")
	if err != nil {
		t.Fatal(err)
	}
	recs := d.Reshape(tbl)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[1]["text"] != "chart" || recs[1]["size"] != float64(1) {
		t.Errorf("unexpected record: %v", recs[1])
	}
}

func TestRadarReshape(t *testing.T) {
	tbl := mustTable(t, [][]table.Value{
		{table.Text("Axis"), table.Text("2024"), table.Text("2025")},
		{table.Text("Speed"), table.Number(5), table.Number(7)},
	})

	d, err := Lookup("radar")
	if err != nil {
		t.Fatal(err)
	}
	recs := d.Reshape(tbl)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0]["key"] != "Speed" || recs[0]["series"] != "2024" || recs[0]["value"] != float64(5) {
		t.Errorf("unexpected record: %v", recs[0])
	}
}

func TestMapRequiresGeo(t *testing.T) {
	tbl := mustTable(t, [][]table.Value{
		{table.Text("Country"), table.Text("Value")},
		{table.Text("USA"), table.Number(1)},
	})

	d, err := Lookup("map")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Spec(tbl, Options{}); err == nil {
		t.Fatal("map without boundary dataset should fail")
	}
	spec, err := d.Spec(tbl, Options{Geo: map[string]any{"type": "Topology"}})
	if err != nil {
		t.Fatalf("Spec with geo: %v", err)
	}
	if spec.Dialect != vega.DialectVega {
		t.Errorf("map should emit full vega, got %q", spec.Dialect)
	}
}

func TestCandlestickDropsIncoherentRows(t *testing.T) {
	tbl := mustTable(t, [][]table.Value{
		{table.Text("Date"), table.Text("Open"), table.Text("High"), table.Text("Low"), table.Text("Close")},
		{table.Text("d1"), table.Number(10), table.Number(15), table.Number(9), table.Number(12)},
		{table.Text("d2"), table.Number(10), table.Number(8), table.Number(9), table.Number(12)}, // high < low
		{table.Text("d3"), table.Number(10), table.Text("oops"), table.Number(9), table.Number(12)},
	})

	d, err := Lookup("candlestick")
	if err != nil {
		t.Fatal(err)
	}
	if recs := d.Reshape(tbl); len(recs) != 1 {
		t.Fatalf("expected 1 coherent row, got %d", len(recs))
	}
}

func TestSpecCustomDimensionsAndTitle(t *testing.T) {
	tbl := mustTable(t, [][]table.Value{
		{table.Text("X"), table.Text("Y")},
		{table.Text("a"), table.Number(1)},
	})

	d, err := Lookup("bar")
	if err != nil {
		t.Fatal(err)
	}
	spec, err := d.Spec(tbl, Options{Width: 800, Height: 200, Title: "Quarterly"})
	if err != nil {
		t.Fatal(err)
	}
	if spec.Body["width"] != 800 || spec.Body["height"] != 200 {
		t.Errorf("explicit dimensions not honored: %v / %v", spec.Body["width"], spec.Body["height"])
	}
	if spec.Body["title"] == nil {
		t.Error("title missing from specification")
	}
}
