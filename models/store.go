package models

// Store represents a seller's store in the database
type Store struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Contact     string `json:"contact"`
	Address     string `json:"address"`
	Logo        string `json:"logo"`
	Status      string `json:"status"` // pending, approved, rejected
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
}

// StoreCreate carries the fields needed to register a new store.
// The logo is uploaded separately; LogoURL is set after the upload succeeds.
type StoreCreate struct {
	UserID      string
	Name        string
	Username    string
	Description string
	Email       string
	Contact     string
	Address     string
	LogoURL     string
}

// IsSellerResponse is the response for GET /api/store/is-seller
type IsSellerResponse struct {
	IsSeller  bool   `json:"isSeller"`
	StoreInfo *Store `json:"storeInfo,omitempty"`
}

// StoreDataResponse is the response for GET /api/store/data
type StoreDataResponse struct {
	Store    *Store    `json:"store"`
	Products []Product `json:"products"`
}
