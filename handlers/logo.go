package handlers

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

const maxLogoUpload = 2 << 20 // 2 MB

// HandleLogoUpload stores an uploaded logo image on the quote as a
// data URI, so drafts stay self-contained and the export never has to
// re-fetch it.
func HandleLogoUpload(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(maxLogoUpload); err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("invalid multipart form"))
		}
		file, _, err := e.Request.FormFile("file")
		if err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("missing file upload"))
		}
		defer file.Close()

		raw, err := io.ReadAll(io.LimitReader(file, maxLogoUpload+1))
		if err != nil {
			return e.JSON(http.StatusBadRequest, errorBody("could not read upload"))
		}
		if len(raw) > maxLogoUpload {
			return e.JSON(http.StatusBadRequest, errorBody("logo file too large"))
		}
		contentType := http.DetectContentType(raw)
		if !strings.HasPrefix(contentType, "image/") {
			return e.JSON(http.StatusBadRequest, errorBody("upload is not an image"))
		}

		uri := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(raw)
		s.mu.Lock()
		s.state.QuoteDetails.Logo = uri
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleLogoClear removes the logo from the quote.
func HandleLogoClear(s *Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s.mu.Lock()
		s.state.QuoteDetails.Logo = ""
		resp := s.stateResponseLocked()
		s.mu.Unlock()
		return e.JSON(http.StatusOK, resp)
	}
}
