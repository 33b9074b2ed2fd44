package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"quotecreation/services"
)

// HandleQuotePreview returns the fully derived render payload: the
// resolved column schema, the projected rows and the totals block.
// This is the same data the print page and the document export
// consume, so the three surfaces can never disagree.
func HandleQuotePreview(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := s.snapshotState()
		return e.JSON(http.StatusOK, services.BuildRenderData(state))
	}
}

// HandleQuotePrint serves the printable HTML page.
func HandleQuotePrint(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := s.snapshotState()
		html, err := services.RenderPrintHTML(services.BuildRenderData(state))
		if err != nil {
			log.Printf("print: render failed: %v", err)
			return e.String(http.StatusInternalServerError, "failed to render print view")
		}
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		e.Response.Write([]byte(html))
		return nil
	}
}

// HandleQuotePDF generates and downloads the quote document. Any
// failure during assembly aborts the download; a partial file is never
// sent.
func HandleQuotePDF(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := s.snapshotState()
		data := services.BuildRenderData(state)
		pdf, err := services.GenerateQuotePDF(e.Request.Context(), data)
		if err != nil {
			log.Printf("export: %v", err)
			return e.JSON(http.StatusInternalServerError, errorBody("failed to generate quote document"))
		}
		filename := fmt.Sprintf("%s.pdf", sanitizeFilename(state.QuoteDetails.Name))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdf)
		return nil
	}
}

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	if strings.TrimSpace(strings.Trim(s, "-.")) == "" {
		return "quote"
	}
	return s
}
