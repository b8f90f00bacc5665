package workbook

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/render"
)

// NamePrefix is the defined-name namespace under which placed chart
// artifacts are registered: rangeviz.chart.<type>.<suffix>.
const NamePrefix = "rangeviz.chart."

// Artifact is one placed chart image, tracked through a defined name
// pointing at its anchor cell.
type Artifact struct {
	Name      string
	ChartType string
	Sheet     string
	Anchor    string
}

// ArtifactName mints a fresh ledger name for a chart type. The suffix
// is a dash-stripped UUID, since defined names only allow letters,
// digits, periods, and underscores.
func ArtifactName(chartType string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return NamePrefix + chartType + "." + suffix
}

// FindArtifact resolves the previously placed artifact for a chart
// type, or nil when none exists. Lookup is by defined-name prefix, so
// at most one artifact per type is expected; the first match wins.
func (w *Workbook) FindArtifact(chartType string) *Artifact {
	prefix := NamePrefix + chartType + "."
	for _, dn := range w.f.GetDefinedName() {
		if !strings.HasPrefix(dn.Name, prefix) {
			continue
		}
		sheet, anchor, ok := parseRefersTo(dn.RefersTo)
		if !ok {
			continue
		}
		return &Artifact{
			Name:      dn.Name,
			ChartType: chartType,
			Sheet:     sheet,
			Anchor:    anchor,
		}
	}
	return nil
}

// RemoveArtifact deletes an artifact's picture and ledger entry.
func (w *Workbook) RemoveArtifact(a *Artifact) error {
	if err := w.f.DeletePicture(a.Sheet, a.Anchor); err != nil {
		return errors.Wrap(errors.ErrCodeWorkbook, err, "delete picture at %s!%s", a.Sheet, a.Anchor)
	}
	if err := w.f.DeleteDefinedName(&excelize.DefinedName{Name: a.Name}); err != nil {
		return errors.Wrap(errors.ErrCodeWorkbook, err, "delete defined name %s", a.Name)
	}
	return nil
}

// PlaceArtifact inserts a rendered PNG at the anchor cell and registers
// it in the ledger, replacing any prior artifact of the same chart
// type.
//
// When the type was placed before, the old picture and ledger entry are
// removed first; an empty anchor reuses the prior anchor so repeat
// invocations update the chart in place. The image is scaled down to
// fit inside boxW×boxH pixels preserving aspect ratio (non-positive box
// dimensions place at natural size).
func (w *Workbook) PlaceArtifact(sheet, anchor, chartType string, png []byte, boxW, boxH int) (*Artifact, error) {
	prior := w.FindArtifact(chartType)
	if prior != nil {
		if anchor == "" {
			anchor = prior.Anchor
			if sheet == "" {
				sheet = prior.Sheet
			}
		}
		if err := w.RemoveArtifact(prior); err != nil {
			return nil, err
		}
	}
	if sheet == "" {
		sheet = w.f.GetSheetList()[0]
	}
	if anchor == "" {
		anchor = "A1"
	}
	if idx, _ := w.f.GetSheetIndex(sheet); idx < 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "sheet not found: %q", sheet)
	}

	scaleX, scaleY, err := fitScale(png, boxW, boxH)
	if err != nil {
		return nil, err
	}

	if err := w.f.AddPictureFromBytes(sheet, anchor, &excelize.Picture{
		Extension: ".png",
		File:      png,
		Format: &excelize.GraphicOptions{
			ScaleX: scaleX,
			ScaleY: scaleY,
		},
	}); err != nil {
		return nil, errors.Wrap(errors.ErrCodeWorkbook, err, "insert picture at %s!%s", sheet, anchor)
	}

	a := &Artifact{
		Name:      ArtifactName(chartType),
		ChartType: chartType,
		Sheet:     sheet,
		Anchor:    anchor,
	}
	if err := errors.ValidateDefinedName(a.Name); err != nil {
		return nil, err
	}
	if err := w.f.SetDefinedName(&excelize.DefinedName{
		Name:     a.Name,
		RefersTo: formatRefersTo(sheet, anchor),
	}); err != nil {
		return nil, errors.Wrap(errors.ErrCodeWorkbook, err, "register defined name %s", a.Name)
	}
	return a, nil
}

// fitScale computes the uniform scale factor that fits the PNG inside
// the box. Images smaller than the box keep their natural size.
func fitScale(png []byte, boxW, boxH int) (float64, float64, error) {
	if boxW <= 0 || boxH <= 0 {
		return 1, 1, nil
	}
	imgW, imgH, err := render.PNGDimensions(png)
	if err != nil {
		return 0, 0, err
	}

	scale := 1.0
	if sx := float64(boxW) / float64(imgW); sx < scale {
		scale = sx
	}
	if sy := float64(boxH) / float64(imgH); sy < scale {
		scale = sy
	}
	return scale, scale, nil
}

// formatRefersTo renders an absolute single-cell reference for the
// ledger entry.
func formatRefersTo(sheet, anchor string) string {
	x, y, err := excelize.CellNameToCoordinates(strings.ReplaceAll(anchor, "$", ""))
	if err != nil {
		return fmt.Sprintf("'%s'!%s", sheet, anchor)
	}
	abs, _ := excelize.CoordinatesToCellName(x, y, true)
	return fmt.Sprintf("'%s'!%s", sheet, abs)
}

// parseRefersTo inverts [formatRefersTo].
func parseRefersTo(ref string) (sheet, anchor string, ok bool) {
	i := strings.LastIndex(ref, "!")
	if i < 0 {
		return "", "", false
	}
	sheet = strings.Trim(ref[:i], "'")
	anchor = strings.ReplaceAll(ref[i+1:], "$", "")
	if sheet == "" || anchor == "" {
		return "", "", false
	}
	if _, _, err := excelize.CellNameToCoordinates(anchor); err != nil {
		return "", "", false
	}
	return sheet, anchor, true
}
