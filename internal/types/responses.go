package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// Document is a backend response passed through exactly as received.
// Endpoints whose shape belongs to the backend return it unmodified.
type Document = json.RawMessage

// Metadata is the pagination block of a product listing.
type Metadata struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// ProductResponse wraps the paginated product list.
type ProductResponse struct {
	Products []Product `json:"products"`
	Metadata Metadata  `json:"metadata"`
	Success  bool      `json:"success"`
}

// ProductEnvelope wraps GET /products/{id}.
type ProductEnvelope struct {
	Success bool     `json:"success"`
	Product *Product `json:"product"`
}
