package api

import (
	"context"
	"net/http"

	"github.com/bazaar-shop/bazaar/client/internal/types"
)

// FetchCategories lists all product categories.
func FetchCategories(ctx context.Context, b *Backend) ([]types.Category, error) {
	return do[[]types.Category](ctx, b, call{
		op:     "fetch categories",
		method: http.MethodGet,
		path:   "/categories",
	})
}
