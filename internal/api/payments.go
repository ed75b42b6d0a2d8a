package api

import (
	"context"
	"net/http"

	"github.com/bazaar-shop/bazaar/client/internal/types"
)

// MakePayment records a payment for an order.
func MakePayment(ctx context.Context, b *Backend, req types.PaymentRequest, token string) (types.Document, error) {
	return do[types.Document](ctx, b, call{
		op:     "make payment",
		method: http.MethodPost,
		path:   "/payments/",
		token:  token,
		body:   req,
	})
}
