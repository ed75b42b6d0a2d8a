package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/bazaar-shop/bazaar/client/internal/types"
)

func TestRegister_SendsCredentialsWithoutAuth(t *testing.T) {
	t.Parallel()
	body := `{"success":true,"message":"User registered"}`
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		expect(t, r, http.MethodPost, "/auth/register", "")
		m := decodeBody(t, r)
		if m["name"] != "Ann" || m["email"] != "ann@example.com" || m["password"] != "pw" {
			t.Errorf("unexpected body: %v", m)
		}
		respond(w, http.StatusCreated, body)
	})

	got, err := Register(context.Background(), b, types.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if !sameJSON(got, body) {
		t.Fatalf("unexpected document: %s", got)
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	body := `{"accessToken":"abc","refreshToken":"def"}`
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		expect(t, r, http.MethodPost, "/auth/login", "")
		m := decodeBody(t, r)
		if _, ok := m["name"]; ok {
			t.Errorf("login body must only carry email and password: %v", m)
		}
		respond(w, http.StatusOK, body)
	})

	got, err := Login(context.Background(), b, types.LoginRequest{Email: "ann@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if !sameJSON(got, body) {
		t.Fatalf("unexpected document: %s", got)
	}
}

func TestLogin_Unauthorized(t *testing.T) {
	t.Parallel()
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
	})
	_, err := Login(context.Background(), b, types.LoginRequest{Email: "x", Password: "y"})
	if err == nil || !strings.Contains(err.Error(), "Invalid credentials") {
		t.Fatalf("expected backend message in error, got %v", err)
	}
}

func TestLogout_UsesBearer(t *testing.T) {
	t.Parallel()
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		expect(t, r, http.MethodPost, "/auth/logout", "tok")
		if r.ContentLength > 0 {
			t.Errorf("logout must not send a body")
		}
		respond(w, http.StatusOK, `{"success":true}`)
	})
	if _, err := Logout(context.Background(), b, "tok"); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
}

func TestVerifyToken(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		status int
		want   bool
	}{
		{"ok", http.StatusOK, true},
		{"no content", http.StatusNoContent, true},
		{"expired", http.StatusUnauthorized, false},
		{"forbidden", http.StatusForbidden, false},
		{"server error", http.StatusInternalServerError, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
				expect(t, r, http.MethodGet, "/auth/verify-token", "tok")
				w.WriteHeader(tc.status)
			})
			if got := VerifyToken(context.Background(), b, "tok"); got != tc.want {
				t.Fatalf("VerifyToken = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVerifyToken_NetworkFailureIsInvalid(t *testing.T) {
	t.Parallel()
	if VerifyToken(context.Background(), newFailingBackend(), "tok") {
		t.Fatal("expected false on network failure")
	}
}

func TestVerifyToken_CanceledContextIsInvalid(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected after cancel")
	})
	if VerifyToken(ctx, b, "tok") {
		t.Fatal("expected false for canceled context")
	}
}
