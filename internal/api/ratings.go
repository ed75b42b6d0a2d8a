package api

import (
	"context"
	"net/http"

	"github.com/bazaar-shop/bazaar/client/internal/types"
)

// CreateRating rates a product. The response carries the new rating and the
// product's updated aggregate.
func CreateRating(ctx context.Context, b *Backend, productID string, req types.RatingRequest, token string) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:         "create rating",
		method:     http.MethodPost,
		path:       "/ratings/{productId}",
		pathParams: map[string]string{"productId": productID},
		token:      token,
		body:       req,
	})
}
