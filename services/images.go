package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"golang.org/x/sync/errgroup"
)

// imageFetchTimeout bounds a single remote image fetch during export.
const imageFetchTimeout = 15 * time.Second

// maxImageBytes caps how much image data one cell may pull in.
const maxImageBytes = 10 << 20

var imageClient = &http.Client{Timeout: imageFetchTimeout}

// ResolveImage turns an image reference into raw bytes plus the
// extension the PDF assembler needs. References are either data URIs
// (decoded in place) or remote URLs (fetched).
func ResolveImage(ctx context.Context, src string) ([]byte, extension.Type, error) {
	if strings.HasPrefix(src, "data:") {
		return decodeDataURI(src)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build image request: %w", err)
	}
	resp, err := imageClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read image body: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("fetch image: empty body")
	}
	ext, err := sniffExtension(data)
	if err != nil {
		return nil, "", err
	}
	return data, ext, nil
}

// decodeDataURI decodes a base64 data URI of the form
// data:image/png;base64,....
func decodeDataURI(src string) ([]byte, extension.Type, error) {
	comma := strings.IndexByte(src, ',')
	if comma < 0 {
		return nil, "", fmt.Errorf("malformed data URI")
	}
	meta := src[len("data:"):comma]
	if !strings.Contains(meta, "base64") {
		return nil, "", fmt.Errorf("unsupported data URI encoding %q", meta)
	}
	data, err := base64.StdEncoding.DecodeString(src[comma+1:])
	if err != nil {
		return nil, "", fmt.Errorf("decode data URI: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty data URI payload")
	}
	ext, err := sniffExtension(data)
	if err != nil {
		return nil, "", err
	}
	return data, ext, nil
}

// sniffExtension maps image bytes to a format the document assembler
// can embed. Anything else counts as a resolution failure, so the
// offending cell renders empty instead of aborting the document.
func sniffExtension(data []byte) (extension.Type, error) {
	switch ct := http.DetectContentType(data); ct {
	case "image/png":
		return extension.Png, nil
	case "image/jpeg":
		return extension.Jpg, nil
	default:
		return "", fmt.Errorf("unsupported image format %s", ct)
	}
}

// resolvedImage pairs fetched bytes with the extension for one cell.
type resolvedImage struct {
	data []byte
	ext  extension.Type
}

// rowImages holds the resolved image cells for one table row. A nil
// entry renders as an empty cell.
type rowImages struct {
	image   *resolvedImage
	diagram *resolvedImage
}

// resolveExportImages fetches every image the document needs before
// any of it is assembled: the logo plus, per row, the product image
// and installation diagram as the column schema demands. All fetches
// run concurrently and this returns only after the complete set has
// settled; a failed fetch leaves its cell nil and is logged, never
// propagated, so one dead link cannot sink the export.
func resolveExportImages(ctx context.Context, data RenderData) (*resolvedImage, []rowImages) {
	wantImage := hasColumn(data.Columns, ColImage)
	wantDiagram := hasColumn(data.Columns, ColDiagram)

	var logo *resolvedImage
	images := make([]rowImages, len(data.Rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	fetch := func(src, what string, dst **resolvedImage) {
		g.Go(func() error {
			bytes, ext, err := ResolveImage(ctx, src)
			if err != nil {
				log.Printf("export: could not resolve %s %q: %v", what, src, err)
				return nil
			}
			*dst = &resolvedImage{data: bytes, ext: ext}
			return nil
		})
	}

	if data.Logo != "" {
		fetch(data.Logo, "logo", &logo)
	}
	for i := range data.Rows {
		if wantImage && data.Rows[i].Image != "" {
			fetch(data.Rows[i].Image, "product image", &images[i].image)
		}
		if wantDiagram && data.Rows[i].Diagram != "" {
			fetch(data.Rows[i].Diagram, "installation diagram", &images[i].diagram)
		}
	}

	// Errors are swallowed above; Wait is only the join point.
	_ = g.Wait()

	return logo, images
}

func hasColumn(cols []Column, key ColumnKey) bool {
	for _, c := range cols {
		if c.Key == key {
			return true
		}
	}
	return false
}
