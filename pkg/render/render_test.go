package render

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rangeviz/rangeviz/pkg/errors"
	"github.com/rangeviz/rangeviz/pkg/vega"
)

func testSpec() *vega.Spec {
	return &vega.Spec{
		Dialect: vega.DialectVegaLite,
		Body:    map[string]any{"mark": "bar"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{" svg ", FormatSVG, false},
		{"pdf", FormatPDF, false},
		{"", FormatPNG, false},
		{"gif", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ParseFormat(%q): expected INVALID_FORMAT, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o.Format != FormatPNG || o.Scale != 1 {
		t.Errorf("unexpected defaults: %+v", o)
	}

	bad := Options{Scale: -1}
	if err := bad.ValidateAndSetDefaults(); err == nil {
		t.Error("negative scale should be rejected")
	}

	ppiSVG := Options{Format: FormatSVG, PPI: 72}
	if err := ppiSVG.ValidateAndSetDefaults(); err == nil {
		t.Error("ppi on svg output should be rejected")
	}
}

func TestSubcommand(t *testing.T) {
	tests := []struct {
		dialect vega.Dialect
		format  Format
		want    string
	}{
		{vega.DialectVegaLite, FormatPNG, "vl2png"},
		{vega.DialectVegaLite, FormatSVG, "vl2svg"},
		{vega.DialectVega, FormatPNG, "vg2png"},
		{vega.DialectVega, FormatPDF, "vg2pdf"},
	}
	for _, tt := range tests {
		if got := subcommand(tt.dialect, tt.format); got != tt.want {
			t.Errorf("subcommand(%s, %s) = %q, want %q", tt.dialect, tt.format, got, tt.want)
		}
	}
}

func TestVLConvertMissingBinary(t *testing.T) {
	e := NewVLConvert("definitely-not-installed-anywhere")
	_, err := e.Render(context.Background(), testSpec(), Options{})
	if !errors.Is(err, errors.ErrCodeEngineNotFound) {
		t.Fatalf("expected ENGINE_NOT_FOUND, got %v", err)
	}
}

func TestServiceRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req renderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Dialect != "vega-lite" || req.Format != "png" || req.Scale != 1 {
			t.Errorf("unexpected request: %+v", req)
		}
		w.Write([]byte("image-bytes"))
	}))
	defer srv.Close()

	e := NewService(srv.URL, nil)
	img, err := e.Render(context.Background(), testSpec(), Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(img) != "image-bytes" {
		t.Errorf("unexpected image payload: %q", img)
	}
}

func TestServiceRenderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad spec", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	e := NewService(srv.URL, nil)
	_, err := e.Render(context.Background(), testSpec(), Options{})
	if !errors.Is(err, errors.ErrCodeEngineFailure) {
		t.Fatalf("expected ENGINE_FAILURE for 422, got %v", err)
	}
}

func TestServiceRenderRetriesServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	e := NewService(srv.URL, nil)
	img, err := e.Render(context.Background(), testSpec(), Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if calls != 2 || string(img) != "ok" {
		t.Errorf("expected retry then success, calls=%d img=%q", calls, img)
	}
}

func pngHeader(w, h uint32) []byte {
	data := make([]byte, 33)
	copy(data, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	binary.BigEndian.PutUint32(data[8:12], 13)
	copy(data[12:16], "IHDR")
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	return data
}

func TestPNGDimensions(t *testing.T) {
	w, h, err := PNGDimensions(pngHeader(640, 400))
	if err != nil {
		t.Fatal(err)
	}
	if w != 640 || h != 400 {
		t.Errorf("got %dx%d, want 640x400", w, h)
	}

	if _, _, err := PNGDimensions([]byte("not a png")); err == nil {
		t.Error("garbage input should fail")
	}
	if _, _, err := PNGDimensions(pngHeader(0, 400)); err == nil {
		t.Error("zero width should fail")
	}
}
