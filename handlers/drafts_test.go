package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quotecreation/services"
	"quotecreation/testhelpers"
)

func TestHandleDraftSave_CreatesAndOverwrites(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s := newTestSession()
	s.state.QuoteDetails.Name = "Kitchen Package"

	var first services.Draft
	doJSON(t, HandleDraftSave(app, s), httptest.NewRequest(http.MethodPost, "/api/drafts", nil), &first)

	if first.ID == "" {
		t.Fatal("saved draft should get an id")
	}
	if first.Name != "Kitchen Package" {
		t.Errorf("draft name should mirror the quote name, got %q", first.Name)
	}
	if first.LastSaved != testNow.Format("2006-01-02T15:04:05Z07:00") {
		t.Errorf("LastSaved = %q", first.LastSaved)
	}

	// A second save while the draft is active overwrites it.
	s.state.QuoteDetails.Name = "Renamed"
	var second services.Draft
	doJSON(t, HandleDraftSave(app, s), httptest.NewRequest(http.MethodPost, "/api/drafts", nil), &second)

	if second.ID != first.ID {
		t.Errorf("active draft should be overwritten, got new id %q", second.ID)
	}
	if len(s.drafts) != 1 {
		t.Errorf("got %d drafts, want 1", len(s.drafts))
	}
	if s.drafts[0].Name != "Renamed" {
		t.Errorf("draft name = %q", s.drafts[0].Name)
	}
}

func TestHandleDraftSave_Persists(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s := newTestSession()
	doJSON(t, HandleDraftSave(app, s), httptest.NewRequest(http.MethodPost, "/api/drafts", nil), nil)

	raw, ok := services.LoadValue(app, services.DraftsKey)
	if !ok {
		t.Fatal("drafts blob not written")
	}
	drafts := services.RepairDrafts(raw, testNow)
	if len(drafts) != 1 {
		t.Errorf("persisted blob holds %d drafts, want 1", len(drafts))
	}
}

func TestHandleDraftsList_SortedNewestFirst(t *testing.T) {
	s := newTestSession()
	s.drafts = []services.Draft{
		{ID: "old", Name: "Old", LastSaved: "2025-05-01T10:00:00Z"},
		{ID: "new", Name: "New", LastSaved: "2025-05-09T10:00:00Z"},
		{ID: "mid", Name: "Mid", LastSaved: "2025-05-05T10:00:00Z"},
	}

	var drafts []services.Draft
	doJSON(t, HandleDraftsList(s), httptest.NewRequest(http.MethodGet, "/api/drafts", nil), &drafts)

	want := []string{"new", "mid", "old"}
	for i, id := range want {
		if drafts[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, drafts[i].ID, id)
		}
	}
}

func TestHandleDraftLoad(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s := newTestSession()
	s.state.QuoteDetails.Name = "Saved Quote"
	s.state.CurrentStep = 3
	s.state.QuoteItems = services.AddQuoteItem(nil, s.products[0])
	doJSON(t, HandleDraftSave(app, s), httptest.NewRequest(http.MethodPost, "/api/drafts", nil), nil)
	draftID := s.drafts[0].ID

	// Start over, then load the draft back.
	doJSON(t, HandleQuoteNew(s), httptest.NewRequest(http.MethodPost, "/api/quote/new", nil), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/drafts/"+draftID+"/load", nil)
	req.SetPathValue("draftId", draftID)
	var resp stateResponse
	doJSON(t, HandleDraftLoad(s), req, &resp)

	if resp.State.QuoteDetails.Name != "Saved Quote" || resp.State.CurrentStep != 3 {
		t.Errorf("loaded state = %+v", resp.State.QuoteDetails)
	}
	if len(resp.State.QuoteItems) != 1 {
		t.Errorf("loaded %d items, want 1", len(resp.State.QuoteItems))
	}
	if resp.ActiveDraftID != draftID {
		t.Errorf("ActiveDraftID = %q, want %q", resp.ActiveDraftID, draftID)
	}
}

func TestHandleDraftLoad_Unknown(t *testing.T) {
	s := newTestSession()
	req := httptest.NewRequest(http.MethodPost, "/api/drafts/ghost/load", nil)
	req.SetPathValue("draftId", "ghost")
	if rec := doJSON(t, HandleDraftLoad(s), req, nil); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleDraftDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s := newTestSession()
	doJSON(t, HandleDraftSave(app, s), httptest.NewRequest(http.MethodPost, "/api/drafts", nil), nil)
	draftID := s.drafts[0].ID

	req := httptest.NewRequest(http.MethodDelete, "/api/drafts/"+draftID, nil)
	req.SetPathValue("draftId", draftID)
	rec := doJSON(t, HandleDraftDelete(app, s), req, nil)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if len(s.drafts) != 0 {
		t.Errorf("draft not removed")
	}
	if s.activeDraftID != "" {
		t.Error("deleting the active draft should detach the quote")
	}
}
