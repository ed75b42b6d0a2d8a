package api

import (
	"context"
	"net/http"

	sdkerrors "github.com/bazaar-shop/bazaar/client/internal/errors"
	"github.com/bazaar-shop/bazaar/client/internal/types"
)

// Register creates an account.
func Register(ctx context.Context, b *Backend, req types.RegisterRequest) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:     "register",
		method: http.MethodPost,
		path:   "/auth/register",
		body:   req,
	})
}

// Login exchanges credentials for tokens.
func Login(ctx context.Context, b *Backend, req types.LoginRequest) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:     "log in",
		method: http.MethodPost,
		path:   "/auth/login",
		body:   req,
	})
}

// Logout invalidates the session behind token.
func Logout(ctx context.Context, b *Backend, token string) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:     "log out",
		method: http.MethodPost,
		path:   "/auth/logout",
		token:  token,
	})
}

// VerifyToken reports whether the backend accepts token. A 2xx means valid
// and a 401 means invalid. Every other outcome, including network failures,
// is logged and reported as invalid; it never returns an error.
func VerifyToken(ctx context.Context, b *Backend, token string) bool {
	c := call{
		op:     "verify token",
		method: http.MethodGet,
		path:   "/auth/verify-token",
		token:  token,
	}
	resp, err := b.execute(ctx, c)
	if err != nil {
		b.logger.Warn().Err(err).Str("operation", c.op).Msg("token verification failed")
		return false
	}
	switch {
	case resp.IsSuccess():
		return true
	case resp.StatusCode() == http.StatusUnauthorized:
		b.logger.Debug().Str("operation", c.op).Msg("token rejected")
		return false
	default:
		err := sdkerrors.NewHTTPError(c.op, c.method, c.path, resp.StatusCode(), resp.Body())
		b.logger.Warn().Err(err).Str("operation", c.op).Int("status_code", resp.StatusCode()).Msg("token verification failed")
		return false
	}
}
