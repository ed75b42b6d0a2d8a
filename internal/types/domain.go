package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Category represents a product category. Products embed it by value.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Rating is a user's score and comment for a product.
type Rating struct {
	ID        string    `json:"_id"`
	Product   string    `json:"product"`
	Rating    float64   `json:"rating"`
	Comments  string    `json:"comments"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Product represents a catalogue item with its embedded ratings.
type Product struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	StockQuantity int      `json:"stock_quantity"`
	Category      Category `json:"category"`
	Images        []string `json:"images"`
	User          string   `json:"user"`
	Ratings       []Rating `json:"ratings"`
	AvgRating     float64  `json:"avgRating"`
	TotalRatings  int      `json:"totalRatings"`
}

// User is the account returned by GET /users.
type User struct {
	ID             string     `json:"_id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	IsLocked       bool       `json:"isLocked"`
	LastLogin      *time.Time `json:"lastLogin"`
	IsVerified     bool       `json:"isVerified"`
	Role           string     `json:"role"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	RefreshToken   string     `json:"refreshToken"`
	FailedAttempts int        `json:"failedAttempts"`
	LockUntil      *time.Time `json:"lockUntil"`
}
