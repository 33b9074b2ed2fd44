package services

import (
	"bytes"
	"encoding/json"
	"log"
	"time"
)

// Persisted-state repair. Runs once per load and turns whatever the
// storage layer hands back into fully well-formed state, so nothing
// downstream has to defend against stale or partial shapes. Nothing
// here ever reports an error to the user: an unreadable blob is
// indistinguishable from a first run.

// RepairDrafts rebuilds the draft list from a raw storage blob.
// Unparsable blobs yield an empty list. Individual drafts missing an
// id or their embedded state are dropped; everything else is repaired
// per-field by overlaying the persisted values on current defaults.
func RepairDrafts(raw []byte, now time.Time) []Draft {
	if len(raw) == 0 {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("state repair: discarding unreadable drafts blob: %v", err)
		return nil
	}

	var drafts []Draft
	for _, entry := range entries {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
			continue
		}
		var id, name, lastSaved string
		overlay(fields["id"], &id)
		overlay(fields["name"], &name)
		overlay(fields["lastSaved"], &lastSaved)
		if id == "" || isAbsent(fields["state"]) {
			continue
		}
		drafts = append(drafts, Draft{
			ID:        id,
			Name:      name,
			LastSaved: lastSaved,
			State:     RepairState(fields["state"], now),
		})
	}
	return drafts
}

// RepairState rebuilds one quote state. Each fragment is probed and
// overlaid on its current default shape independently: missing or
// wrong-typed fragments fall back to their defaults without taking
// their siblings down, and unknown fields are ignored. This additive
// overlay is what lets the schema grow without invalidating old saves.
// The line-item list keeps only object-shaped entries with a non-empty
// id.
func RepairState(raw json.RawMessage, now time.Time) AppState {
	state := NewAppState(now)

	var persisted map[string]json.RawMessage
	if err := json.Unmarshal(raw, &persisted); err != nil {
		log.Printf("state repair: unreadable draft state, using defaults: %v", err)
		return state
	}
	if persisted == nil {
		return state
	}

	var step int
	overlay(persisted["currentStep"], &step)
	state.CurrentStep = ClampStep(step)
	overlay(persisted["quoteDetails"], &state.QuoteDetails)
	overlay(persisted["customer"], &state.Customer)
	overlay(persisted["salesInfo"], &state.SalesInfo)
	overlay(persisted["settings"], &state.Settings)
	overlay(persisted["displayConfig"], &state.DisplayConfig)

	var entries []json.RawMessage
	overlay(persisted["quoteItems"], &entries)
	state.QuoteItems = repairItems(entries)

	return state
}

// overlay unmarshals a persisted fragment over a prefilled default
// value. Absent or malformed fragments leave the defaults untouched.
func overlay(raw json.RawMessage, target any) {
	if isAbsent(raw) {
		return
	}
	if err := json.Unmarshal(raw, target); err != nil {
		log.Printf("state repair: ignoring malformed fragment: %v", err)
	}
}

func repairItems(entries []json.RawMessage) []QuoteItem {
	items := []QuoteItem{}
	for _, entry := range entries {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(entry, &probe); err != nil || probe == nil {
			continue
		}
		var item QuoteItem
		if err := json.Unmarshal(entry, &item); err != nil {
			continue
		}
		if item.ID == "" {
			continue
		}
		items = append(items, item)
	}
	return NormalizeOverrides(items)
}

// RepairCatalog rebuilds the product catalog from a raw storage blob.
// An absent blob or one that is not a JSON array resets the whole
// catalog to the seed set. Entries that are object-shaped with a
// non-empty id are kept as-is, partial or not; the rest are dropped.
func RepairCatalog(raw []byte, seed []Product) []Product {
	if len(raw) == 0 {
		return seed
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("state repair: discarding unreadable catalog blob: %v", err)
		return seed
	}

	products := []Product{}
	for _, entry := range entries {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(entry, &probe); err != nil || probe == nil {
			continue
		}
		var p Product
		if err := json.Unmarshal(entry, &p); err != nil {
			continue
		}
		if p.ID == "" {
			continue
		}
		products = append(products, p)
	}
	return products
}

// isAbsent reports whether a raw JSON value is missing or null.
func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
