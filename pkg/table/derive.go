package table

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// WaterfallSteps derives running-sum segments from (label, amount) rows.
// Amounts coerce under the Zero policy. The final row is the closing
// total bar: its amount is forced to 0 and its segment spans from 0 to
// the running total, regardless of the cell's original value.
func (t *Table) WaterfallSteps() []Record {
	out := make([]Record, 0, len(t.Rows))
	running := 0.0

	for r := range t.Rows {
		label := t.Cell(r, 0).Text()
		amount, _ := Coerce(t.Cell(r, 1), Zero)
		last := r == len(t.Rows)-1

		var rec Record
		if last {
			rec = Record{
				"label":  label,
				"amount": float64(0),
				"start":  float64(0),
				"end":    running,
				"total":  true,
			}
		} else {
			rec = Record{
				"label":  label,
				"amount": amount,
				"start":  running,
				"end":    running + amount,
				"total":  false,
			}
			running += amount
		}
		out = append(out, rec)
	}
	return out
}

// HistogramBins buckets values into uniform bins and counts occupancy.
// A non-positive binCount falls back to the Sturges rule. A degenerate
// range (all values equal) widens to a single unit bin so the bar stays
// visible.
func HistogramBins(values []float64, binCount int) []Record {
	if len(values) == 0 {
		return nil
	}

	if binCount <= 0 {
		binCount = int(math.Ceil(math.Log2(float64(len(values))))) + 1
		if binCount < 1 {
			binCount = 1
		}
	}

	lo, _ := stats.Min(values)
	hi, _ := stats.Max(values)
	if lo == hi {
		return []Record{{"start": lo, "end": lo + 1, "count": float64(len(values))}}
	}

	width := (hi - lo) / float64(binCount)
	counts := make([]float64, binCount)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= binCount {
			idx = binCount - 1
		}
		counts[idx]++
	}

	out := make([]Record, 0, binCount)
	for i, c := range counts {
		out = append(out, Record{
			"start": lo + float64(i)*width,
			"end":   lo + float64(i+1)*width,
			"count": c,
		})
	}
	return out
}

// HorizonBands slices each series of the long-format pivot into stacked
// bands between the series minimum and maximum. Band k of a point holds
// the portion of its offset from the series minimum that falls inside
// [k*step, (k+1)*step), so overlaying the bands reconstructs the series
// at 1/bands of the vertical space.
func (t *Table) HorizonBands(bands int) []Record {
	if bands < 1 {
		bands = 3
	}

	long := t.LongRecords(0)
	key := t.Column(0)

	perSeries := make(map[string][]float64)
	for _, rec := range long {
		s := rec[SeriesField].(string)
		perSeries[s] = append(perSeries[s], rec[ValueField].(float64))
	}

	step := make(map[string]float64, len(perSeries))
	base := make(map[string]float64, len(perSeries))
	for s, vals := range perSeries {
		lo, _ := stats.Min(vals)
		hi, _ := stats.Max(vals)
		w := (hi - lo) / float64(bands)
		if w <= 0 {
			w = 1
		}
		step[s] = w
		base[s] = lo
	}

	out := make([]Record, 0, len(long)*bands)
	for _, rec := range long {
		s := rec[SeriesField].(string)
		offset := rec[ValueField].(float64) - base[s]
		for k := 0; k < bands; k++ {
			portion := offset - float64(k)*step[s]
			if portion < 0 {
				portion = 0
			}
			if portion > step[s] {
				portion = step[s]
			}
			if portion == 0 && k > 0 {
				continue
			}
			out = append(out, Record{
				key:         rec[key],
				SeriesField: s,
				"band":      float64(k + 1),
				ValueField:  portion,
			})
		}
	}
	return out
}

// Ranks derives per-period rankings for bump charts: within each key
// column value, series are ranked by value descending (rank 1 is the
// highest). Ties break alphabetically by series name so the output is
// deterministic.
func (t *Table) Ranks() []Record {
	long := t.LongRecords(0)
	key := t.Column(0)

	type entry struct {
		rec   Record
		value float64
	}
	order := make([]string, 0)
	groups := make(map[string][]entry)
	for _, rec := range long {
		k := textOf(rec[key])
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], entry{rec: rec, value: rec[ValueField].(float64)})
	}

	out := make([]Record, 0, len(long))
	for _, k := range order {
		entries := groups[k]
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].value != entries[j].value {
				return entries[i].value > entries[j].value
			}
			return entries[i].rec[SeriesField].(string) < entries[j].rec[SeriesField].(string)
		})
		for i, e := range entries {
			out = append(out, Record{
				key:         e.rec[key],
				SeriesField: e.rec[SeriesField],
				ValueField:  e.value,
				"rank":      float64(i + 1),
			})
		}
	}
	return out
}

// CandlestickRecords reshapes (date, open, high, low, close) rows. All
// four price columns must coerce; failing rows are dropped, as are rows
// whose high is below their low.
func (t *Table) CandlestickRecords() []Record {
	recs := t.NumericRecords([]int{1, 2, 3, 4}, Drop)

	high := t.Column(2)
	low := t.Column(3)
	out := recs[:0]
	for _, rec := range recs {
		h, _ := rec[high].(float64)
		l, _ := rec[low].(float64)
		if h < l {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// VarianceRecords derives pairwise deltas between a baseline column and
// an actual column, plus each delta as a percentage of the baseline
// total. Coercion failures default to 0.
func (t *Table) VarianceRecords() []Record {
	baseCol := t.Column(1)
	actualCol := t.Column(2)

	totals := t.Floats(1, Zero)
	total, _ := stats.Sum(totals)

	out := make([]Record, 0, len(t.Rows))
	for r := range t.Rows {
		base, _ := Coerce(t.Cell(r, 1), Zero)
		actual, _ := Coerce(t.Cell(r, 2), Zero)
		delta := actual - base

		pct := 0.0
		if total != 0 {
			pct = delta / total * 100
		}

		out = append(out, Record{
			"label":   t.Cell(r, 0).Text(),
			baseCol:   base,
			actualCol: actual,
			"delta":   delta,
			"percent": pct,
		})
	}
	return out
}

// FunnelRecords reshapes (stage, value) rows and derives each stage's
// percentage of the first stage. Coercion failures default to 0.
func (t *Table) FunnelRecords() []Record {
	first := 0.0
	if len(t.Rows) > 0 {
		first, _ = Coerce(t.Cell(0, 1), Zero)
	}

	out := make([]Record, 0, len(t.Rows))
	for r := range t.Rows {
		v, _ := Coerce(t.Cell(r, 1), Zero)
		pct := 0.0
		if first != 0 {
			pct = v / first * 100
		}
		out = append(out, Record{
			"stage":   t.Cell(r, 0).Text(),
			"value":   v,
			"percent": pct,
		})
	}
	return out
}

func textOf(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return Number(x).Text()
	case bool:
		return Bool(x).Text()
	default:
		return ""
	}
}
