package api

import (
	"context"
	"net/http"

	"github.com/bazaar-shop/bazaar/client/internal/types"
)

// FetchUserDetails returns the account that owns token.
func FetchUserDetails(ctx context.Context, b *Backend, token string) (*types.User, error) {
	return do[*types.User](ctx, b, call{
		op:     "fetch user details",
		method: http.MethodGet,
		path:   "/users",
		token:  token,
	})
}
