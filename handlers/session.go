// Package handlers exposes the quote engine as a JSON API plus the
// print page and document download, working on one in-memory session.
package handlers

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/pocketbase/pocketbase"

	"quotecreation/collections"
	"quotecreation/services"
)

// Session holds the in-memory application state: the quote being
// edited, the saved drafts and the product catalog. Memory is the
// source of truth; persistence writes are fire-and-forget and a
// failed write never rolls anything back. The mutex serializes the
// HTTP handlers, which are the only writers.
type Session struct {
	mu            sync.Mutex
	state         services.AppState
	drafts        []services.Draft
	products      []services.Product
	activeDraftID string
	now           func() time.Time
}

// NewSession returns a session with a fresh quote and empty data.
func NewSession(now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		state: services.NewAppState(now()),
		now:   now,
	}
}

// LoadFromStorage repairs and installs whatever the storage collection
// holds. Unreadable regions silently become defaults; that is the
// repair layer's contract, so a corrupt store looks like a first run.
func (s *Session) LoadFromStorage(app *pocketbase.PocketBase) {
	draftsRaw, _ := services.LoadValue(app, services.DraftsKey)
	productsRaw, _ := services.LoadValue(app, services.ProductsKey)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts = services.RepairDrafts(draftsRaw, s.now())
	s.products = services.RepairCatalog(productsRaw, collections.SeedProducts())
}

// persistDrafts writes the draft list. Failures are logged only; the
// in-memory list stays authoritative.
func (s *Session) persistDrafts(app *pocketbase.PocketBase) {
	raw, err := json.Marshal(s.drafts)
	if err != nil {
		log.Printf("session: could not serialize drafts: %v", err)
		return
	}
	if err := services.SaveValue(app, services.DraftsKey, raw); err != nil {
		log.Printf("session: could not persist drafts: %v", err)
	}
}

// persistProducts writes the catalog. Same fire-and-forget contract.
func (s *Session) persistProducts(app *pocketbase.PocketBase) {
	raw, err := json.Marshal(s.products)
	if err != nil {
		log.Printf("session: could not serialize catalog: %v", err)
		return
	}
	if err := services.SaveValue(app, services.ProductsKey, raw); err != nil {
		log.Printf("session: could not persist catalog: %v", err)
	}
}

// snapshotState returns a deep copy of the current quote state so
// exports can run outside the lock.
func (s *Session) snapshotState() services.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

func copyState(state services.AppState) services.AppState {
	out := state
	out.QuoteItems = make([]services.QuoteItem, len(state.QuoteItems))
	copy(out.QuoteItems, state.QuoteItems)
	for i, item := range out.QuoteItems {
		if item.QuotePrice != nil {
			p := *item.QuotePrice
			out.QuoteItems[i].QuotePrice = &p
		}
	}
	return out
}
