package services

import "testing"

func draftList() []Draft {
	return []Draft{
		{ID: "d1", Name: "First", LastSaved: "2025-05-01T10:00:00Z"},
		{ID: "d2", Name: "Second", LastSaved: "2025-05-03T10:00:00Z"},
		{ID: "d3", Name: "Third", LastSaved: "2025-05-02T10:00:00Z"},
	}
}

func TestUpsertDraft(t *testing.T) {
	drafts := draftList()

	drafts = UpsertDraft(drafts, Draft{ID: "d2", Name: "Renamed", LastSaved: "2025-05-04T10:00:00Z"})
	if len(drafts) != 3 {
		t.Fatalf("upsert of existing id should replace, got %d drafts", len(drafts))
	}
	if drafts[1].Name != "Renamed" {
		t.Errorf("draft not replaced in place: %+v", drafts[1])
	}

	drafts = UpsertDraft(drafts, Draft{ID: "d4", Name: "New"})
	if len(drafts) != 4 {
		t.Errorf("new id should append, got %d drafts", len(drafts))
	}
}

func TestDeleteDraft(t *testing.T) {
	drafts := DeleteDraft(draftList(), "d2")
	if len(drafts) != 2 {
		t.Fatalf("got %d drafts, want 2", len(drafts))
	}
	if drafts[0].ID != "d1" || drafts[1].ID != "d3" {
		t.Errorf("deletion should preserve order: %v, %v", drafts[0].ID, drafts[1].ID)
	}

	if got := DeleteDraft(drafts, "missing"); len(got) != 2 {
		t.Errorf("deleting a missing id should be a no-op")
	}
}

func TestFindDraft(t *testing.T) {
	if d, ok := FindDraft(draftList(), "d3"); !ok || d.Name != "Third" {
		t.Errorf("FindDraft(d3) = %+v, %v", d, ok)
	}
	if _, ok := FindDraft(draftList(), "nope"); ok {
		t.Error("FindDraft should miss on unknown id")
	}
}

func TestSortDraftsByLastSaved(t *testing.T) {
	drafts := draftList()
	SortDraftsByLastSaved(drafts)
	want := []string{"d2", "d3", "d1"}
	for i, id := range want {
		if drafts[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, drafts[i].ID, id)
		}
	}
}
