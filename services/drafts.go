package services

import "sort"

// UpsertDraft replaces the draft with a matching id in place, or
// appends when the id is new. Drafts are independent of each other.
func UpsertDraft(drafts []Draft, draft Draft) []Draft {
	for i, d := range drafts {
		if d.ID == draft.ID {
			drafts[i] = draft
			return drafts
		}
	}
	return append(drafts, draft)
}

// DeleteDraft removes the draft with the given id, if present.
func DeleteDraft(drafts []Draft, id string) []Draft {
	out := drafts[:0]
	for _, d := range drafts {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return out
}

// FindDraft returns the draft with the given id.
func FindDraft(drafts []Draft, id string) (Draft, bool) {
	for _, d := range drafts {
		if d.ID == id {
			return d, true
		}
	}
	return Draft{}, false
}

// SortDraftsByLastSaved orders drafts newest first. LastSaved is an
// RFC3339 string, so lexical order is chronological order.
func SortDraftsByLastSaved(drafts []Draft) {
	sort.SliceStable(drafts, func(i, j int) bool {
		return drafts[i].LastSaved > drafts[j].LastSaved
	})
}
