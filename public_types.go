package client

import "github.com/bazaar-shop/bazaar/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	RegisterRequest       = types.RegisterRequest
	LoginRequest          = types.LoginRequest
	CreateAddressRequest  = types.CreateAddressRequest
	AddToCartRequest      = types.AddToCartRequest
	UpdateCartItemRequest = types.UpdateCartItemRequest
	CreateOrderRequest    = types.CreateOrderRequest
	PaymentRequest        = types.PaymentRequest
	RatingRequest         = types.RatingRequest
	ProductQuery          = types.ProductQuery

	// Domain entities
	Category = types.Category
	Product  = types.Product
	Rating   = types.Rating
	User     = types.User

	// Responses
	Document        = types.Document
	Metadata        = types.Metadata
	ProductResponse = types.ProductResponse
)
