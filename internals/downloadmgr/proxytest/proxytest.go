// Package proxytest provides a fake download proxy for tests.
package proxytest

import (
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Server is a download proxy that serves registered files. The remote url
// is expected verbatim after "?url=", like the real proxy
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	files    map[string][]byte
	failures map[string]int
	requests []string
}

// New starts a new Server. Call Close when done
func New() *Server {
	s := &Server{
		files:    make(map[string][]byte),
		failures: make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Prefix returns the proxy prefix for this server
func (s *Server) Prefix() string {
	return s.URL + "/?url="
}

// Add serves body for the remote url u and returns the sha1 of body
func (s *Server) Add(u string, body []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[u] = body
	return Sha1(body)
}

// Fail makes requests for u respond with status. A status of 0 stops failing u
func (s *Server) Fail(u string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, u)
		return
	}
	s.failures[u] = status
}

// Requests returns the remote urls requested so far, in order
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// ResetRequests clears the request log
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	u := strings.TrimPrefix(r.URL.RawQuery, "url=")

	s.mu.Lock()
	s.requests = append(s.requests, u)
	status, failing := s.failures[u]
	body, ok := s.files[u]
	s.mu.Unlock()

	switch {
	case failing:
		w.WriteHeader(status)
	case !ok:
		http.NotFound(w, r)
	default:
		w.Write(body)
	}
}

// Sha1 returns the hex encoded sha1 of b
func Sha1(b []byte) string {
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}
