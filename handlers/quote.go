package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quotecreation/services"
)

// stateResponse is what every quote mutation returns: the full state
// plus the freshly derived totals, so the client never computes money.
type stateResponse struct {
	State         services.AppState    `json:"state"`
	Totals        services.QuoteTotals `json:"totals"`
	ActiveDraftID string               `json:"activeDraftId,omitempty"`
}

func (s *Session) stateResponseLocked() stateResponse {
	return stateResponse{
		State:         copyState(s.state),
		Totals:        services.CalcQuoteTotals(s.state.QuoteItems, s.state.Settings),
		ActiveDraftID: s.activeDraftID,
	}
}

// HandleQuoteState returns the current quote state and totals.
func HandleQuoteState(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s.mu.Lock()
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleQuoteNew discards the current quote and starts a fresh one
// with all-default values. Nothing is persisted by this.
func HandleQuoteNew(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s.mu.Lock()
		s.state = services.NewAppState(s.now())
		s.activeDraftID = ""
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleQuoteDetails patches the quote name/date/logo.
func HandleQuoteDetails(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req services.QuoteDetails
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		}
		s.mu.Lock()
		s.state.QuoteDetails = req
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleQuoteCustomer patches the customer contact.
func HandleQuoteCustomer(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req services.Customer
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		}
		s.mu.Lock()
		s.state.Customer = req
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleQuoteSales patches the sales-rep contact.
func HandleQuoteSales(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req services.SalesInfo
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		}
		s.mu.Lock()
		s.state.SalesInfo = req
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleQuoteSettings patches discount, VAT flag and terms. The
// discount is clamped into 0..100.
func HandleQuoteSettings(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req services.QuoteSettings
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		}
		if req.Discount < 0 {
			req.Discount = 0
		}
		if req.Discount > 100 {
			req.Discount = 100
		}
		s.mu.Lock()
		s.state.Settings = req
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleQuoteDisplay patches the display toggles.
func HandleQuoteDisplay(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req services.DisplayConfig
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		}
		s.mu.Lock()
		s.state.DisplayConfig = req
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleQuoteStep moves the wizard cursor. Direction is the trailing
// path segment: "next" or "prev"; the cursor stays inside 1..4.
func HandleQuoteStep(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		direction := e.Request.PathValue("direction")
		s.mu.Lock()
		switch direction {
		case "next":
			s.state.CurrentStep = services.ClampStep(s.state.CurrentStep + 1)
		case "prev":
			s.state.CurrentStep = services.ClampStep(s.state.CurrentStep - 1)
		default:
			s.mu.Unlock()
			return e.JSON(http.StatusBadRequest, errorBody("direction must be next or prev"))
		}
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}
