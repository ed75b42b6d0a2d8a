package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bazaar-shop/bazaar/client/devmode"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithLogger(zerolog.Nop())}, opts...)
	c, err := New(srv.URL, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNew_EmptyBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatalf("expected error for empty base url")
	}
}

func TestCloseIdempotent(t *testing.T) {
	c, err := New("http://example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestRelayBypassHeader(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		var got string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get(devmode.RelayBypassHeader)
			_, _ = io.WriteString(w, `[]`)
		}, WithRelayBypass(enabled))

		if _, err := c.FetchCategories(context.Background()); err != nil {
			t.Fatalf("FetchCategories: %v", err)
		}
		want := ""
		if enabled {
			want = devmode.RelayBypassValue
		}
		if got != want {
			t.Errorf("relay bypass %v: header = %q, want %q", enabled, got, want)
		}
	}
}

func TestBearerTokenSent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("unexpected Authorization header: %q", got)
		}
		_, _ = io.WriteString(w, `{"items":[]}`)
	})
	doc, err := c.FetchCart(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("FetchCart: %v", err)
	}
	if string(doc) != `{"items":[]}` {
		t.Fatalf("unexpected document: %s", doc)
	}
}

func TestDebugLogging_RedactsBearerToken(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"items":[]}`)
	}, WithLogger(logger), WithDebugLogging(true))

	if _, err := c.FetchCart(context.Background(), "very-secret"); err != nil {
		t.Fatalf("FetchCart: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "very-secret") {
		t.Fatalf("token leaked into debug log: %s", out)
	}
	if !strings.Contains(out, "Bearer [REDACTED]") {
		t.Fatalf("expected redacted header in debug log: %s", out)
	}
	if !strings.Contains(out, "HTTP response") {
		t.Fatalf("expected response dump in debug log: %s", out)
	}
}

func TestTracingTransportPassesThrough(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"_id":"c1","name":"Books"}]`)
	}, WithTracing(true))

	cats, err := c.FetchCategories(context.Background())
	if err != nil {
		t.Fatalf("FetchCategories: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "Books" {
		t.Fatalf("unexpected categories: %+v", cats)
	}
}

func TestVerifyToken(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, true},
		{http.StatusUnauthorized, false},
		{http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/auth/verify-token" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			w.WriteHeader(tt.status)
			_, _ = io.WriteString(w, `{}`)
		})
		if got := c.VerifyToken(context.Background(), "tok"); got != tt.want {
			t.Errorf("status %d: VerifyToken = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestVerifyToken_NetworkFailure(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) { return nil, errors.New("offline") })
	c, err := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithLogger(zerolog.Nop()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.VerifyToken(context.Background(), "tok") {
		t.Fatalf("expected false on network failure")
	}
}

func TestErrorHelpers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Token expired"}`)
	})

	_, err := c.FetchOrders(context.Background(), "stale")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	re, ok := AsRequestError(err)
	if !ok {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if re.Message != "Token expired" || re.Operation != "fetch orders" {
		t.Fatalf("unexpected error fields: %+v", re)
	}
	if IsStatus(err, http.StatusNotFound) {
		t.Fatalf("IsStatus matched the wrong code")
	}
}

func TestFetchProductDetails_NotFoundEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":false,"message":"Product not found"}`)
	})
	_, err := c.FetchProductDetails(context.Background(), "p404")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
