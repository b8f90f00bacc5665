package chart

import (
	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/geo"
	"github.com/rangeviz/rangeviz/pkg/table"
)

// Shared reshapers. The named ones here cover whole families; types with
// one-off derivations bind them inline at registration.

func flat(t *table.Table) []table.Record {
	return t.Records()
}

func long(t *table.Table) []table.Record {
	return t.LongRecords(0)
}

// numericDrop builds a reshaper that requires the given column to be
// numeric and drops rows where it is not.
func numericDrop(col int) func(*table.Table) []table.Record {
	return func(t *table.Table) []table.Record {
		return t.NumericRecords([]int{col}, table.Drop)
	}
}

// hierarchy synthesizes the parent/child node graph for the tree
// family. Column 0 is the node id, column 1 its parent; a third column,
// when present, sizes the node.
func hierarchy(t *table.Table) []table.Record {
	valueCol := -1
	if t.Columns() > 2 {
		valueCol = 2
	}
	return table.NodeRecords(t.Hierarchy(0, 1, valueCol))
}

// gaugeRecords reads a single (label, value, max) measurement from the
// first data row. The fill fraction is clamped to [0, 1]; a
// non-positive max yields 0 so the needle stays on the track.
func gaugeRecords(t *table.Table) []table.Record {
	value, _ := table.Coerce(t.Cell(0, 1), table.Zero)
	max, _ := table.Coerce(t.Cell(0, 2), table.Zero)

	frac := 0.0
	if max > 0 {
		frac = value / max
		if frac > 1 {
			frac = 1
		}
		if frac < 0 {
			frac = 0
		}
	}

	return []table.Record{{
		"label": t.Cell(0, 0).Text(),
		"value": value,
		"max":   max,
		"frac":  frac,
	}}
}

// wordRecords reshapes (text, size) rows. A missing or non-numeric size
// column weights every word equally.
func wordRecords(t *table.Table) []table.Record {
	out := make([]table.Record, 0, t.RowCount())
	for r := 0; r < t.RowCount(); r++ {
		text := t.Cell(r, 0).Text()
		if text == "" {
			continue
		}
		size := 1.0
		if f, ok := t.Cell(r, 1).Float(); ok {
			size = f
		}
		out = append(out, table.Record{"text": text, "size": size})
	}
	return out
}

// radarRecords pivots the table into the fixed {key, series, value}
// shape the radar specification groups by.
func radarRecords(t *table.Table) []table.Record {
	long := t.LongRecords(0)
	key := t.Column(0)

	out := make([]table.Record, 0, len(long))
	for _, rec := range long {
		out = append(out, table.Record{
			"key":             rec[key],
			table.SeriesField: rec[table.SeriesField],
			table.ValueField:  rec[table.ValueField],
		})
	}
	return out
}

// mapRecords resolves ISO alpha-3 country codes to the numeric ids the
// boundary features join on.
func mapRecords(t *table.Table) []table.Record {
	return geo.Records(t)
}

// positiveValues builds a check that rejects any non-positive value in
// the given column. The pie family degenerates visually on zero or
// negative slices, so they are refused up front.
func positiveValues(col int) func(*table.Table) error {
	return func(t *table.Table) error {
		for r := 0; r < t.RowCount(); r++ {
			v, ok := t.Cell(r, col).Float()
			if !ok || v <= 0 {
				return errors.New(errors.ErrCodeInvalidInput,
					"row %d: %q column requires positive numbers, got %q",
					r+1, t.Column(col), t.Cell(r, col).Text())
			}
		}
		return nil
	}
}
