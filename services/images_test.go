package services

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
)

// Smallest valid PNG (1x1, transparent).
var tinyPNG = func() []byte {
	data, err := base64.StdEncoding.DecodeString(
		"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg==")
	if err != nil {
		panic(err)
	}
	return data
}()

func pngDataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(tinyPNG)
}

// Smallest valid GIF (1x1, transparent) — a format the document
// assembler cannot embed.
var tinyGIF = func() []byte {
	data, err := base64.StdEncoding.DecodeString(
		"R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7")
	if err != nil {
		panic(err)
	}
	return data
}()

func gifDataURI() string {
	return "data:image/gif;base64," + base64.StdEncoding.EncodeToString(tinyGIF)
}

func TestResolveImage_DataURI(t *testing.T) {
	data, ext, err := ResolveImage(context.Background(), pngDataURI())
	if err != nil {
		t.Fatalf("ResolveImage: %v", err)
	}
	if ext != extension.Png {
		t.Errorf("ext = %v, want png", ext)
	}
	if len(data) != len(tinyPNG) {
		t.Errorf("got %d bytes, want %d", len(data), len(tinyPNG))
	}
}

func TestResolveImage_BadDataURI(t *testing.T) {
	tests := []string{
		"data:image/png;base64",      // no comma
		"data:image/png,rawpixels",   // not base64
		"data:image/png;base64,!!!!", // invalid payload
		"data:image/png;base64,",     // empty payload
	}
	for _, src := range tests {
		if _, _, err := ResolveImage(context.Background(), src); err == nil {
			t.Errorf("ResolveImage(%q) should fail", src)
		}
	}
}

// Formats the document assembler cannot embed fail resolution, so the
// cell renders empty instead of feeding it unusable bytes.
func TestResolveImage_UnsupportedFormat(t *testing.T) {
	if _, _, err := ResolveImage(context.Background(), gifDataURI()); err == nil {
		t.Error("gif data URI should fail to resolve")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(tinyGIF)
	}))
	defer srv.Close()

	if _, _, err := ResolveImage(context.Background(), srv.URL); err == nil {
		t.Error("gif response should fail to resolve")
	}
}

func TestResolveImage_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(tinyPNG)
	}))
	defer srv.Close()

	data, ext, err := ResolveImage(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ResolveImage: %v", err)
	}
	if ext != extension.Png || len(data) != len(tinyPNG) {
		t.Errorf("got ext=%v len=%d", ext, len(data))
	}
}

func TestResolveImage_HTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, _, err := ResolveImage(context.Background(), srv.URL); err == nil {
		t.Error("non-200 response should fail")
	}
	if _, _, err := ResolveImage(context.Background(), "http://127.0.0.1:1/nope"); err == nil {
		t.Error("unreachable host should fail")
	}
}

// Every failed fetch leaves its cell nil; successes land regardless of
// other cells failing.
func TestResolveExportImages_PartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok" {
			w.Write(tinyPNG)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	data := RenderData{
		Logo:    srv.URL + "/ok",
		Columns: BuildColumns(DisplayConfig{ProductImage: true, InstallationDiagram: true}),
		Rows: []RenderRow{
			{ItemID: "a", Image: srv.URL + "/ok", Diagram: srv.URL + "/missing"},
			{ItemID: "b", Image: ""},
		},
	}

	logo, images := resolveExportImages(context.Background(), data)
	if logo == nil {
		t.Error("logo fetch should succeed")
	}
	if len(images) != 2 {
		t.Fatalf("got %d image rows", len(images))
	}
	if images[0].image == nil {
		t.Error("row 0 product image should resolve")
	}
	if images[0].diagram != nil {
		t.Error("failed diagram fetch should leave the cell nil")
	}
	if images[1].image != nil {
		t.Error("empty reference should stay nil")
	}
}

// When a column is toggled off its images are not fetched at all.
func TestResolveExportImages_RespectsSchema(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(tinyPNG)
	}))
	defer srv.Close()

	data := RenderData{
		Columns: BuildColumns(DisplayConfig{}),
		Rows:    []RenderRow{{ItemID: "a", Image: srv.URL, Diagram: srv.URL}},
	}
	_, images := resolveExportImages(context.Background(), data)
	if hits != 0 {
		t.Errorf("no columns want images, but server saw %d hits", hits)
	}
	if images[0].image != nil || images[0].diagram != nil {
		t.Error("cells should stay nil for absent columns")
	}
}
