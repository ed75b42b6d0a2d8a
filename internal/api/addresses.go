package api

import (
	"context"
	"net/http"

	"github.com/bazaar-shop/bazaar/client/internal/types"
)

// ListAddresses returns the caller's saved addresses.
func ListAddresses(ctx context.Context, b *Backend, token string) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:     "fetch addresses",
		method: http.MethodGet,
		path:   "/address/",
		token:  token,
	})
}

// CreateAddress stores a new delivery address.
func CreateAddress(ctx context.Context, b *Backend, req types.CreateAddressRequest, token string) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:     "create address",
		method: http.MethodPost,
		path:   "/address/",
		token:  token,
		body:   req,
	})
}
