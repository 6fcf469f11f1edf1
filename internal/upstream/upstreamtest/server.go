// Package upstreamtest provides an in-process stand-in for the upstream
// face API, for tests that need a real HTTP endpoint.
package upstreamtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Call records one request the fake upstream received.
type Call struct {
	Path        string
	APIKey      string
	ServiceCode string
	ContentType string
	Fields      map[string]string
}

// Server replies to every POST with a canned status and body, and
// records each request for assertions. The zero response is 200 {}.
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	status int
	body   []byte
	calls  []Call
}

// New starts the fake upstream. Callers own the shutdown via Close.
func New() *Server {
	s := &Server{
		status: http.StatusOK,
		body:   []byte(`{}`),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string
	_ = json.NewDecoder(r.Body).Decode(&fields)

	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Path:        r.URL.Path,
		APIKey:      r.Header.Get("X-API-KEY"),
		ServiceCode: r.Header.Get("X-Service-Code"),
		ContentType: r.Header.Get("Content-Type"),
		Fields:      fields,
	})
	status, body := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// RespondJSON sets the canned reply to the JSON encoding of v.
func (s *Server) RespondJSON(status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	s.status, s.body = status, body
	s.mu.Unlock()
}

// RespondRaw sets the canned reply to a literal body, so tests can
// produce responses that are not valid JSON.
func (s *Server) RespondRaw(status int, body string) {
	s.mu.Lock()
	s.status, s.body = status, []byte(body)
	s.mu.Unlock()
}

// Calls returns a copy of every recorded request.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// LastCall returns the most recent request and whether one exists.
func (s *Server) LastCall() (Call, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return Call{}, false
	}
	return s.calls[len(s.calls)-1], true
}

// Reset drops the recorded calls and restores the 200 {} reply.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = http.StatusOK
	s.body = []byte(`{}`)
	s.calls = nil
}
