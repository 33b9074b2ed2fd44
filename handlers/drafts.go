package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecreation/services"
)

// HandleDraftsList returns the saved drafts, newest first.
func HandleDraftsList(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s.mu.Lock()
		drafts := make([]services.Draft, len(s.drafts))
		copy(drafts, s.drafts)
		s.mu.Unlock()
		services.SortDraftsByLastSaved(drafts)
		return e.JSON(http.StatusOK, drafts)
	}
}

// HandleDraftSave snapshots the current quote as a draft. Saving while
// a loaded draft is active overwrites that draft; otherwise a new one
// is created. The draft name mirrors the quote name at save time.
func HandleDraftSave(app *pocketbase.PocketBase, s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s.mu.Lock()
		id := s.activeDraftID
		if id == "" {
			id = uuid.NewString()
		}
		draft := services.Draft{
			ID:        id,
			Name:      s.state.QuoteDetails.Name,
			LastSaved: s.now().Format(time.RFC3339),
			State:     copyState(s.state),
		}
		s.drafts = services.UpsertDraft(s.drafts, draft)
		s.activeDraftID = id
		s.persistDrafts(app)
		s.mu.Unlock()
		return e.JSON(http.StatusOK, draft)
	}
}

// HandleDraftLoad replaces the working quote with a saved draft. The
// loaded state goes through the same repair pass as storage reads so a
// draft saved by an older build still comes up with sane defaults.
func HandleDraftLoad(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		draftID := e.Request.PathValue("draftId")
		s.mu.Lock()
		draft, ok := services.FindDraft(s.drafts, draftID)
		if !ok {
			s.mu.Unlock()
			return e.JSON(http.StatusNotFound, errorBody("draft not found"))
		}
		raw, err := json.Marshal(draft.State)
		if err != nil {
			s.mu.Unlock()
			return e.JSON(http.StatusInternalServerError, errorBody("draft state unreadable"))
		}
		s.state = services.RepairState(raw, s.now())
		s.activeDraftID = draft.ID
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleDraftDelete removes a saved draft. Deleting the draft that is
// currently loaded detaches the working quote from it; the quote
// itself is untouched.
func HandleDraftDelete(app *pocketbase.PocketBase, s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		draftID := e.Request.PathValue("draftId")
		s.mu.Lock()
		if _, ok := services.FindDraft(s.drafts, draftID); !ok {
			s.mu.Unlock()
			return e.JSON(http.StatusNotFound, errorBody("draft not found"))
		}
		s.drafts = services.DeleteDraft(s.drafts, draftID)
		if s.activeDraftID == draftID {
			s.activeDraftID = ""
		}
		s.persistDrafts(app)
		s.mu.Unlock()
		e.Response.WriteHeader(http.StatusNoContent)
		return nil
	}
}
