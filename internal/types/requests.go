package types

// ------------------------------
// Request Types
// ------------------------------

// RegisterRequest holds parameters for a new account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest holds login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateAddressRequest holds a delivery address.
type CreateAddressRequest struct {
	AddressLine1 string `json:"address_line_1"`
	City         string `json:"city"`
	Zipcode      string `json:"zipcode"`
	State        string `json:"state"`
	IsDefault    bool   `json:"is_default"`
}

// AddToCartRequest adds quantity units of a product to the cart.
type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest sets the quantity of an existing cart item.
type UpdateCartItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest places an order for the current cart.
type CreateOrderRequest struct {
	AddressID string `json:"addressId"`
}

// PaymentRequest records a payment against an order.
type PaymentRequest struct {
	OrderID       string  `json:"orderId"`
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId"`
}

// RatingRequest holds a product rating.
type RatingRequest struct {
	Rating   float64 `json:"rating"`
	Comments string  `json:"comments"`
}

// ProductQuery holds the list filters for GET /products. Zero values of
// Page, Limit and Sort select the backend defaults 1, 20 and "name".
type ProductQuery struct {
	Page     int
	Limit    int
	Sort     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}
