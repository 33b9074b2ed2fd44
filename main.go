package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"quotecreation/collections"
	"quotecreation/handlers"
)

func main() {
	app := pocketbase.New()
	session := handlers.NewSession(nil)

	// Create collections and load persisted data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		session.LoadFromStorage(app)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve the client bundle from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Quote state ──────────────────────────────────────────
		se.Router.GET("/api/quote", handlers.HandleQuoteState(session))
		se.Router.POST("/api/quote/new", handlers.HandleQuoteNew(session))
		se.Router.PATCH("/api/quote/details", handlers.HandleQuoteDetails(session))
		se.Router.PATCH("/api/quote/customer", handlers.HandleQuoteCustomer(session))
		se.Router.PATCH("/api/quote/sales", handlers.HandleQuoteSales(session))
		se.Router.PATCH("/api/quote/settings", handlers.HandleQuoteSettings(session))
		se.Router.PATCH("/api/quote/display", handlers.HandleQuoteDisplay(session))
		se.Router.POST("/api/quote/step/{direction}", handlers.HandleQuoteStep(session))

		// ── Logo ─────────────────────────────────────────────────
		se.Router.POST("/api/quote/logo", handlers.HandleLogoUpload(session))
		se.Router.DELETE("/api/quote/logo", handlers.HandleLogoClear(session))

		// ── Line items ───────────────────────────────────────────
		se.Router.POST("/api/quote/items", handlers.HandleItemAdd(session))
		se.Router.PATCH("/api/quote/items/{itemId}/quantity", handlers.HandleItemQuantity(session))
		se.Router.PATCH("/api/quote/items/{itemId}/price", handlers.HandleItemPrice(session))
		se.Router.DELETE("/api/quote/items/{itemId}", handlers.HandleItemDelete(session))

		// ── Drafts ───────────────────────────────────────────────
		se.Router.GET("/api/drafts", handlers.HandleDraftsList(session))
		se.Router.POST("/api/drafts", handlers.HandleDraftSave(app, session))
		se.Router.POST("/api/drafts/{draftId}/load", handlers.HandleDraftLoad(session))
		se.Router.DELETE("/api/drafts/{draftId}", handlers.HandleDraftDelete(app, session))

		// ── Product catalog ──────────────────────────────────────
		se.Router.GET("/api/products", handlers.HandleProductsList(session))
		se.Router.POST("/api/products", handlers.HandleProductCreate(app, session))
		se.Router.GET("/api/products/export", handlers.HandleCatalogExport(session))
		se.Router.PATCH("/api/products/{productId}", handlers.HandleProductUpdate(app, session))
		se.Router.DELETE("/api/products/{productId}", handlers.HandleProductDelete(app, session))

		// ── Catalog import ───────────────────────────────────────
		se.Router.POST("/api/products/import", handlers.HandleImportUpload(session))
		se.Router.POST("/api/products/import/commit", handlers.HandleImportCommit(app, session))

		// ── Render surfaces ──────────────────────────────────────
		se.Router.GET("/api/quote/preview", handlers.HandleQuotePreview(session))
		se.Router.GET("/quote/print", handlers.HandleQuotePrint(session))
		se.Router.GET("/quote/export/pdf", handlers.HandleQuotePDF(session))

		// Redirect home to the client
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/static/")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
