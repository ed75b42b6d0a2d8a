package api

import (
	"context"
	"net/http"

	"github.com/bazaar-shop/bazaar/client/internal/types"
)

// AddToCart adds a product to the caller's cart.
func AddToCart(ctx context.Context, b *Backend, req types.AddToCartRequest, token string) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:     "add item to cart",
		method: http.MethodPost,
		path:   "/cart/add-item",
		token:  token,
		body:   req,
	})
}

// FetchCart returns the caller's cart.
func FetchCart(ctx context.Context, b *Backend, token string) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:     "fetch cart items",
		method: http.MethodGet,
		path:   "/cart",
		token:  token,
	})
}

// UpdateCartItem changes the quantity of one cart item.
func UpdateCartItem(ctx context.Context, b *Backend, req types.UpdateCartItemRequest, token string) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:     "update cart item",
		method: http.MethodPut,
		path:   "/cart/update-item",
		token:  token,
		body:   req,
	})
}

// DeleteCartItem removes one item from the cart.
func DeleteCartItem(ctx context.Context, b *Backend, itemID, token string) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:         "delete cart item",
		method:     http.MethodDelete,
		path:       "/cart/remove-item/{itemId}",
		pathParams: map[string]string{"itemId": itemID},
		token:      token,
	})
}

// ClearCart removes every item from the cart.
func ClearCart(ctx context.Context, b *Backend, token string) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:     "clear cart",
		method: http.MethodDelete,
		path:   "/cart",
		token:  token,
	})
}
