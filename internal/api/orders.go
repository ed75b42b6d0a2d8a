package api

import (
	"context"
	"net/http"

	"github.com/bazaar-shop/bazaar/client/internal/types"
)

// CreateOrder turns the caller's cart into an order shipped to addressID.
func CreateOrder(ctx context.Context, b *Backend, addressID, token string) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:     "create order",
		method: http.MethodPost,
		path:   "/orders",
		token:  token,
		body:   types.CreateOrderRequest{AddressID: addressID},
	})
}

// FetchOrders lists the caller's orders.
func FetchOrders(ctx context.Context, b *Backend, token string) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:     "fetch orders",
		method: http.MethodGet,
		path:   "/orders/",
		token:  token,
	})
}
