package models

import "encoding/json"

// User represents a storefront user. The cart is an opaque JSON blob owned
// by the client (productId -> quantity), stored as-is.
type User struct {
	ID    string          `json:"id"`
	Email string          `json:"email,omitempty"`
	Cart  json.RawMessage `json:"cart"`
}

// UpdateCartRequest is the request body for POST /api/cart
// Example: {"cart": {"p1": 2, "p2": 1}}
type UpdateCartRequest struct {
	Cart json.RawMessage `json:"cart"`
}

// CartResponse is the response for GET /api/cart
type CartResponse struct {
	Cart json.RawMessage `json:"cart"`
}
