package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecreation/services"
)

const maxImportUpload = 10 << 20 // 10 MB

// importUploadResponse carries everything the mapping screen needs:
// the parsed headers, the auto-proposed header-to-field mapping, the
// selectable target fields and the full row set to commit later.
type importUploadResponse struct {
	Headers  []string          `json:"headers"`
	Mappings map[string]string `json:"mappings"`
	Fields   []string          `json:"fields"`
	Rows     [][]string        `json:"rows"`
	Preview  [][]string        `json:"preview"`
}

// HandleImportUpload accepts a catalog file (.csv or .xlsx) and
// returns the parsed grid with a proposed column mapping. Nothing is
// written to the catalog here.
func HandleImportUpload(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(maxImportUpload); err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("invalid multipart form"))
		}
		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("missing file upload"))
		}
		defer file.Close()

		var headers []string
		var rows [][]string
		switch strings.ToLower(filepath.Ext(header.Filename)) {
		case ".xlsx":
			headers, rows, err = services.ParseWorkbook(file)
		case ".csv", ".txt", "":
			var raw []byte
			raw, err = io.ReadAll(io.LimitReader(file, maxImportUpload))
			if err == nil {
				headers, rows, err = services.ParseDelimited(string(raw))
			}
		default:
			return e.JSON(http.StatusBadRequest, errorBody("unsupported file type"))
		}
		if err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("could not parse file: "+err.Error()))
		}

		preview := rows
		if len(preview) > 5 {
			preview = preview[:5]
		}
		return e.JSON(http.StatusOK, importUploadResponse{
			Headers:  headers,
			Mappings: services.AutoMapHeaders(headers),
			Fields:   services.ProductFieldKeys(),
			Rows:     rows,
			Preview:  preview,
		})
	}
}

// HandleImportCommit builds products from a confirmed mapping and
// appends them to the catalog. Rows missing a name or model are
// skipped; the response reports how many actually made it in.
func HandleImportCommit(app *pocketbase.PocketBase, s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req struct {
			Headers  []string          `json:"headers"`
			Mappings map[string]string `json:"mappings"`
			Rows     [][]string        `json:"rows"`
		}
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		}
		imported := services.BuildProducts(req.Headers, req.Rows, req.Mappings)
		s.mu.Lock()
		s.products = append(s.products, imported...)
		s.persistProducts(app)
		s.mu.Unlock()
		return e.JSON(http.StatusOK, map[string]int{"imported": len(imported)})
	}
}
