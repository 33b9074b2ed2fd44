package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quotecreation/services"
)

// HandleItemAdd adds a catalog product to the quote. Adding a product
// that is already on the quote bumps its quantity instead of creating
// a duplicate line.
func HandleItemAdd(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req struct {
			ProductID string `json:"productId"`
		}
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		}
		s.mu.Lock()
		product, ok := findProduct(s.products, req.ProductID)
		if !ok {
			s.mu.Unlock()
			return e.JSON(http.StatusNotFound, errorBody("product not found"))
		}
		s.state.QuoteItems = services.AddQuoteItem(s.state.QuoteItems, product)
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleItemQuantity sets a line's quantity. Values below 1 clamp to 1.
func HandleItemQuantity(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("itemId")
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		}
		s.mu.Lock()
		if !hasItem(s.state.QuoteItems, itemID) {
			s.mu.Unlock()
			return e.JSON(http.StatusNotFound, errorBody("item not on quote"))
		}
		s.state.QuoteItems = services.SetQuantity(s.state.QuoteItems, itemID, req.Quantity)
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleItemPrice sets or clears a line's price override. A null price,
// or one equal to the list price, removes the override entirely.
func HandleItemPrice(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("itemId")
		var req struct {
			QuotePrice *float64 `json:"quotePrice"`
		}
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		}
		s.mu.Lock()
		if !hasItem(s.state.QuoteItems, itemID) {
			s.mu.Unlock()
			return e.JSON(http.StatusNotFound, errorBody("item not on quote"))
		}
		s.state.QuoteItems = services.SetQuotePrice(s.state.QuoteItems, itemID, req.QuotePrice)
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleItemDelete removes a line from the quote.
func HandleItemDelete(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("itemId")
		s.mu.Lock()
		if !hasItem(s.state.QuoteItems, itemID) {
			s.mu.Unlock()
			return e.JSON(http.StatusNotFound, errorBody("item not on quote"))
		}
		s.state.QuoteItems = services.RemoveQuoteItem(s.state.QuoteItems, itemID)
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

func findProduct(products []services.Product, id string) (services.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return services.Product{}, false
}

func hasItem(items []services.QuoteItem, id string) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}
