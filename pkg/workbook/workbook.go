// Package workbook adapts xlsx documents for range extraction and chart
// artifact placement.
//
// All reads and writes happen inside one open→save session per
// invocation: callers open the file, perform their operations, and save
// once. Cell values arrive from excelize as display strings and are
// re-parsed into typed values so numeric columns survive the round
// trip.
package workbook

import (
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/table"
)

// Workbook is an open xlsx document.
type Workbook struct {
	f    *excelize.File
	path string
}

// Open opens an existing workbook file.
func Open(path string) (*Workbook, error) {
	if err := errors.ValidateWorkbookPath(path); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "workbook not found: %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeWorkbook, err, "open workbook %s", path)
	}
	return &Workbook{f: f, path: path}, nil
}

// New creates an empty in-memory workbook.
func New() *Workbook {
	return &Workbook{f: excelize.NewFile()}
}

// Save writes the document back to the path it was opened from, or to
// the path given to [Workbook.SaveAs] earlier.
func (w *Workbook) Save() error {
	if w.path == "" {
		return errors.New(errors.ErrCodeWorkbook, "workbook has no backing file; use SaveAs")
	}
	if err := w.f.SaveAs(w.path); err != nil {
		return errors.Wrap(errors.ErrCodeWorkbook, err, "save workbook %s", w.path)
	}
	return nil
}

// SaveAs writes the document to a new path, which becomes the backing
// file for subsequent saves.
func (w *Workbook) SaveAs(path string) error {
	if err := errors.ValidateWorkbookPath(path); err != nil {
		return err
	}
	if err := w.f.SaveAs(path); err != nil {
		return errors.Wrap(errors.ErrCodeWorkbook, err, "save workbook %s", path)
	}
	w.path = path
	return nil
}

// Close releases the document.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// File exposes the underlying excelize document for operations the
// adapter does not wrap.
func (w *Workbook) File() *excelize.File {
	return w.f
}

// ReadRange resolves an A1-style reference and returns the rectangular
// cell block with display strings re-parsed into typed values.
//
// A bare sheet name ("Sheet1") reads the sheet's used range. A
// qualified reference ("Sheet1!A1:C10", "'My Sheet'!B2:D20") reads
// exactly the addressed rectangle; cells beyond the used range come
// back empty.
func (w *Workbook) ReadRange(ref string) ([][]table.Value, error) {
	sheet, cells, qualified := splitRef(ref)

	if !qualified && cells == "" {
		return w.readUsedRange(sheet)
	}
	if err := errors.ValidateRangeRef(ref); err != nil {
		return nil, err
	}
	if sheet == "" {
		sheet = w.f.GetSheetList()[0]
	}
	if idx, _ := w.f.GetSheetIndex(sheet); idx < 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "sheet not found: %q", sheet)
	}

	x1, y1, x2, y2, err := parseRect(cells)
	if err != nil {
		return nil, err
	}

	out := make([][]table.Value, 0, y2-y1+1)
	for y := y1; y <= y2; y++ {
		row := make([]table.Value, 0, x2-x1+1)
		for x := x1; x <= x2; x++ {
			cell, _ := excelize.CoordinatesToCellName(x, y)
			raw, err := w.f.GetCellValue(sheet, cell)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeWorkbook, err, "read cell %s!%s", sheet, cell)
			}
			row = append(row, table.Parse(raw))
		}
		out = append(out, row)
	}
	return out, nil
}

// readUsedRange reads every populated row of a sheet, padded to the
// widest row so the block stays rectangular.
func (w *Workbook) readUsedRange(sheet string) ([][]table.Value, error) {
	if err := errors.ValidateSheetName(sheet); err != nil {
		return nil, err
	}
	if idx, _ := w.f.GetSheetIndex(sheet); idx < 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "sheet not found: %q", sheet)
	}

	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeWorkbook, err, "read sheet %q", sheet)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	out := make([][]table.Value, len(rows))
	for i, row := range rows {
		vals := make([]table.Value, width)
		for j := range vals {
			if j < len(row) {
				vals[j] = table.Parse(row[j])
			} else {
				vals[j] = table.Empty()
			}
		}
		out[i] = vals
	}
	return out, nil
}

// splitRef separates the optional sheet qualifier from the cell part.
// Quoted sheet names lose their quotes.
func splitRef(ref string) (sheet, cells string, qualified bool) {
	ref = strings.TrimSpace(ref)
	if i := strings.LastIndex(ref, "!"); i >= 0 {
		return strings.Trim(ref[:i], "'"), ref[i+1:], true
	}
	if strings.ContainsAny(ref, ":") || looksLikeCell(ref) {
		return "", ref, false
	}
	return ref, "", false
}

// looksLikeCell reports whether an unqualified reference addresses a
// cell rather than naming a sheet.
func looksLikeCell(ref string) bool {
	_, _, err := excelize.CellNameToCoordinates(strings.ReplaceAll(ref, "$", ""))
	return err == nil
}

// parseRect resolves "A1:C10" (or a single "B2") into 1-based
// coordinates, normalized so the first corner is top-left.
func parseRect(cells string) (x1, y1, x2, y2 int, err error) {
	cells = strings.ReplaceAll(cells, "$", "")
	first, second, _ := strings.Cut(cells, ":")
	if second == "" {
		second = first
	}

	x1, y1, err = excelize.CellNameToCoordinates(first)
	if err != nil {
		return 0, 0, 0, 0, errors.Wrap(errors.ErrCodeInvalidRange, err, "invalid cell %q", first)
	}
	x2, y2, err = excelize.CellNameToCoordinates(second)
	if err != nil {
		return 0, 0, 0, 0, errors.Wrap(errors.ErrCodeInvalidRange, err, "invalid cell %q", second)
	}

	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return x1, y1, x2, y2, nil
}
