package models

// Product represents a product in the database
type Product struct {
	ID          string   `json:"id"`
	StoreID     string   `json:"storeId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Category    string   `json:"category"`
	Color       string   `json:"color,omitempty"`
	MRP         int64    `json:"mrp"`
	Price       int64    `json:"price"`
	Images      []string `json:"images"`
	InStock     bool     `json:"inStock"`
	CreatedAt   string   `json:"createdAt"`
}

// ProductCreate carries the fields needed to create a product row.
type ProductCreate struct {
	StoreID     string
	Name        string
	Description string
	Tags        []string
	Category    string
	Color       string
	MRP         int64
	Price       int64
	Images      []string
}

// StockToggleRequest is the request body for POST /api/store/stock-toggle
// Example: {"productId": "a5b0..."}
type StockToggleRequest struct {
	ProductID string `json:"productId"`
}

// ProductListResponse is the response for listing a store's products
type ProductListResponse struct {
	Products []Product `json:"products"`
}
