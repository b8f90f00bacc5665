package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rangeviz/rangeviz/pkg/chart"
	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/gallery"
	"github.com/rangeviz/rangeviz/pkg/pipeline"
	"github.com/rangeviz/rangeviz/pkg/table"
)

// maxRequestBody bounds chart request payloads (1 MiB of rows is far
// beyond any sensible selection).
const maxRequestBody = 1 << 20

// chartRequest is the POST /api/v1/charts payload. Format accepts the
// render formats plus "spec", which returns the assembled specification
// document instead of an image.
type chartRequest struct {
	Rows      [][]table.Value `json:"rows"`
	ChartType string          `json:"chart_type"`
	Title     string          `json:"title,omitempty"`
	Width     int             `json:"width,omitempty"`
	Height    int             `json:"height,omitempty"`
	Format    string          `json:"format,omitempty"`
	Scale     float64         `json:"scale,omitempty"`
	PPI       int             `json:"ppi,omitempty"`
}

// typeInfo is one catalog entry in the GET /api/v1/types response.
type typeInfo struct {
	Type         string `json:"type"`
	Summary      string `json:"summary"`
	MinColumns   int    `json:"min_columns"`
	Dialect      string `json:"dialect"`
	Hierarchical bool   `json:"hierarchical,omitempty"`
}

func (s *Server) handleTypes(w http.ResponseWriter, _ *http.Request) {
	defs := chart.Types()
	out := make([]typeInfo, 0, len(defs))
	for _, d := range defs {
		out = append(out, typeInfo{
			Type:         string(d.Type),
			Summary:      d.Summary,
			MinColumns:   d.MinColumns,
			Dialect:      string(d.Dialect),
			Hierarchical: d.Hierarchical,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"types": out})
}

func (s *Server) handleCreateChart(w http.ResponseWriter, r *http.Request) {
	var req chartRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body"))
		return
	}

	specOnly := req.Format == "spec"
	format := req.Format
	if specOnly {
		format = "png"
	}

	opts := pipeline.Options{
		Rows:       req.Rows,
		ChartType:  req.ChartType,
		Engine:     s.Defaults.Engine,
		EnginePath: s.Defaults.EnginePath,
		ServiceURL: s.Defaults.ServiceURL,
		Title:      req.Title,
		Width:      req.Width,
		Height:     req.Height,
		Format:     format,
		Scale:      req.Scale,
		PPI:        req.PPI,
		Logger:     s.logger,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()
	tbl, err := s.runner.Extract(ctx, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	spec, err := s.runner.Assemble(ctx, tbl, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	if specOnly {
		writeJSON(w, http.StatusOK, spec.Body)
		return
	}

	img, hash, _, err := s.runner.RenderWithCacheInfo(ctx, spec, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	if s.store != nil {
		rec := &gallery.Chart{
			ID:        gallery.NewID(),
			Type:      opts.ChartType,
			Title:     opts.Title,
			Dialect:   string(spec.Dialect),
			Spec:      spec.Body,
			SpecHash:  hash,
			Format:    opts.Format,
			Image:     img,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.store.Put(ctx, rec); err != nil {
			s.logger.Warn("gallery store failed", "err", err)
		} else {
			w.Header().Set("Location", "/api/v1/charts/"+rec.ID)
		}
	}

	w.Header().Set("Content-Type", contentType(opts.Format))
	w.WriteHeader(http.StatusOK)
	w.Write(img)
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := s.store.List(r.Context(), 100)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"charts": charts})
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleChartImage(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if len(c.Image) == 0 {
		writeError(w, errors.New(errors.ErrCodeArtifactNotFound, "chart %s has no stored image", c.ID))
		return
	}
	w.Header().Set("Content-Type", contentType(c.Format))
	w.WriteHeader(http.StatusOK)
	w.Write(c.Image)
}

func (s *Server) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// contentType maps an image format to its MIME type.
func contentType(format string) string {
	switch format {
	case "svg":
		return "image/svg+xml"
	case "pdf":
		return "application/pdf"
	default:
		return "image/png"
	}
}
