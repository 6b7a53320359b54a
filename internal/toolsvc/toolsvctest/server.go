// Package toolsvctest provides an in-process fake of the remote tool service
// for tests. It implements a representative subset of the real endpoints,
// records every call, and lets a test override any route.
package toolsvctest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RecordedCall is one request received by the fake.
type RecordedCall struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   map[string]any
}

// Server is a running fake tool service.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	calls     []RecordedCall
	overrides map[string]http.HandlerFunc
}

// New starts a fake service. Close it when done.
func New() *Server {
	s := &Server{overrides: make(map[string]http.HandlerFunc)}
	s.Server = httptest.NewServer(s.routes())
	return s
}

// Calls returns a copy of the recorded calls in arrival order.
func (s *Server) Calls() []RecordedCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedCall(nil), s.calls...)
}

// CallCount returns how many requests have been received.
func (s *Server) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// LastCall returns the most recent request.
func (s *Server) LastCall() (RecordedCall, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return RecordedCall{}, false
	}
	return s.calls[len(s.calls)-1], true
}

// Override replaces the handler for method and path (path includes the
// /api prefix).
func (s *Server) Override(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" "+path] = h
}

// Fail makes method and path answer with status and a detail message.
func (s *Server) Fail(method, path string, status int, detail string) {
	s.Override(method, path, func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, status, detail)
	})
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)
	r.Use(s.override)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Route("/api", func(api chi.Router) {
		api.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"message": "Toolbox API v2"})
		})
		api.Route("/tools", func(t chi.Router) {
			t.Post("/text/convert", handleCaseConvert)
			t.Post("/text/wordcount", handleWordCount)
			t.Post("/text/lorem", handleLorem)
			t.Post("/text/whitespace", handleWhitespace)
			t.Post("/text/base64", handleBase64)
			t.Post("/text/url-encode", handleURLEncode)

			t.Post("/color/palette", handlePalette)
			t.Post("/color/shades", handleShades)

			t.Post("/css/gradient", handleGradient)
			t.Post("/css/box-shadow", handleBoxShadow)
			t.Post("/css/border-radius", handleBorderRadius)
			t.Post("/css/glassmorphism", handleGlassmorphism)

			t.Post("/convert/units", handleUnits)
			t.Post("/generate/barcode", handleBarcode)
			t.Post("/math/percentage", handlePercentage)
			t.Post("/seo/open-graph", handleOpenGraph)
			t.Post("/dev/regex-test", handleRegex)
			t.Post("/dev/diff", handleDiff)
			t.Post("/dev/hash", handleHash)
			t.Post("/dev/timestamp", handleTimestamp)

			t.Post("/misc/qrcode", handleQRCode)
			t.Post("/misc/password", handlePassword)
			t.Post("/misc/shuffle", handleShuffle)
			t.Get("/misc/uuid", handleUUID)
		})
	})
	return r
}

// record stores the call and restores the body for the next handler.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(raw))

		var body map[string]any
		if len(bytes.TrimSpace(raw)) > 0 {
			_ = json.Unmarshal(raw, &body)
		}
		s.mu.Lock()
		s.calls = append(s.calls, RecordedCall{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) override(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		h, ok := s.overrides[r.Method+" "+r.URL.Path]
		s.mu.Unlock()
		if ok {
			h(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeDetail(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, map[string]any{"detail": detail})
}
