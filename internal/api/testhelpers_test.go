package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newTestBackend starts srv with h and returns a Backend pointed at it.
func newTestBackend(t *testing.T, h http.HandlerFunc) *Backend {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewBackend(srv.Client(), srv.URL, zerolog.Nop())
}

// newFailingBackend returns a Backend whose transport never reaches a server.
func newFailingBackend() *Backend {
	return NewBackend(&http.Client{Transport: &errRT{}}, "http://example.com", zerolog.Nop())
}

// respond writes status and body verbatim.
func respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// expect checks method, path and bearer token of r.
func expect(t *testing.T, r *http.Request, method, path, token string) {
	t.Helper()
	if r.Method != method {
		t.Errorf("expected %s, got %s", method, r.Method)
	}
	if r.URL.Path != path {
		t.Errorf("unexpected path: %s", r.URL.Path)
	}
	want := ""
	if token != "" {
		want = "Bearer " + token
	}
	if got := r.Header.Get("Authorization"); got != want {
		t.Errorf("unexpected Authorization header: %q", got)
	}
}

// decodeBody decodes r's JSON body into a generic map.
func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	if ct := r.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	var m map[string]any
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		t.Errorf("decode request body: %v", err)
	}
	return m
}

// sameJSON reports whether got holds exactly want (ignoring surrounding space).
func sameJSON(got []byte, want string) bool {
	return bytes.Equal(bytes.TrimSpace(got), bytes.TrimSpace([]byte(want)))
}
