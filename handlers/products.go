package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecreation/services"
)

// HandleProductsList returns the catalog, optionally filtered by the
// "q" query parameter. The filter matches name, model and description,
// case-insensitively.
func HandleProductsList(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := strings.TrimSpace(e.Request.URL.Query().Get("q"))
		s.mu.Lock()
		products := make([]services.Product, len(s.products))
		copy(products, s.products)
		s.mu.Unlock()
		if query == "" {
			return e.JSON(http.StatusOK, products)
		}
		matched := make([]services.Product, 0, len(products))
		for _, p := range products {
			if productMatches(p, query) {
				matched = append(matched, p)
			}
		}
		return e.JSON(http.StatusOK, matched)
	}
}

// HandleProductCreate adds a product to the catalog. Name and model
// are required; the id is always generated server-side.
func HandleProductCreate(app *pocketbase.PocketBase, s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req services.Product
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		}
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Model) == "" {
			return e.JSON(http.StatusBadRequest, errorBody("name and model are required"))
		}
		req.ID = services.NewProductID()
		s.mu.Lock()
		s.products = append(s.products, req)
		s.persistProducts(app)
		s.mu.Unlock()
		return e.JSON(http.StatusOK, req)
	}
}

// HandleProductUpdate replaces a catalog product's fields. The id in
// the path wins over whatever the body carries. Quote lines already
// holding the old product data are left alone.
func HandleProductUpdate(app *pocketbase.PocketBase, s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		productID := e.Request.PathValue("productId")
		var req services.Product
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		}
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Model) == "" {
			return e.JSON(http.StatusBadRequest, errorBody("name and model are required"))
		}
		req.ID = productID
		s.mu.Lock()
		replaced := false
		for i, p := range s.products {
			if p.ID == productID {
				s.products[i] = req
				replaced = true
				break
			}
		}
		if !replaced {
			s.mu.Unlock()
			return e.JSON(http.StatusNotFound, errorBody("product not found"))
		}
		s.persistProducts(app)
		s.mu.Unlock()
		return e.JSON(http.StatusOK, req)
	}
}

// HandleProductDelete removes a product from the catalog.
func HandleProductDelete(app *pocketbase.PocketBase, s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		productID := e.Request.PathValue("productId")
		s.mu.Lock()
		kept := make([]services.Product, 0, len(s.products))
		removed := false
		for _, p := range s.products {
			if p.ID == productID {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		if !removed {
			s.mu.Unlock()
			return e.JSON(http.StatusNotFound, errorBody("product not found"))
		}
		s.products = kept
		s.persistProducts(app)
		s.mu.Unlock()
		e.Response.WriteHeader(http.StatusNoContent)
		return nil
	}
}

// HandleCatalogExport downloads the catalog as a spreadsheet whose
// header row round-trips through the import mapper.
func HandleCatalogExport(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s.mu.Lock()
		products := make([]services.Product, len(s.products))
		copy(products, s.products)
		s.mu.Unlock()

		data, err := services.GenerateCatalogExcel(products)
		if err != nil {
			return e.JSON(http.StatusInternalServerError, errorBody("failed to generate catalog export"))
		}
		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="catalog.xlsx"`)
		e.Response.Write(data)
		return nil
	}
}

func productMatches(p services.Product, query string) bool {
	for _, field := range []string{p.Name, p.Model, p.Description} {
		if strings.Contains(strings.ToLower(field), strings.ToLower(query)) {
			return true
		}
	}
	return false
}
