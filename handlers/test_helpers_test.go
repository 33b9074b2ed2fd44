package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecreation/services"
)

func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// testNow is the frozen clock every session test runs under.
var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestSession returns a session with a fixed clock and two catalog
// products, without touching storage.
func newTestSession() *Session {
	s := NewSession(func() time.Time { return testNow })
	s.products = []services.Product{
		{ID: "WN14800CN", Name: "iQ700 Washing Machine", Model: "WN14800CN", Description: "front load", UnitPrice: 5299},
		{ID: "SN25M831TI", Name: "iQ500 Dishwasher", Model: "SN25M831TI", Description: "13 place settings", UnitPrice: 4899},
	}
	return s
}

func bytesReader(s string) *bytes.Reader {
	return bytes.NewReader([]byte(s))
}

func jsonRequest(t *testing.T, method, url string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// doJSON runs a handler against a fresh recorder and decodes the JSON
// response into out (which may be nil).
func doJSON(t *testing.T, handler func(*core.RequestEvent) error, req *http.Request, out any) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if out != nil && rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
		}
	}
	return rec
}
