package models

// Order represents an order placed against a single store. A cart spanning
// several stores is split into one order per store at placement time.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	StoreID       string      `json:"storeId"`
	AddressID     string      `json:"addressId"`
	PaymentMethod string      `json:"paymentMethod"`
	Total         int64       `json:"total"`
	Status        string      `json:"status"` // pending, shipped, delivered, canceled
	CreatedAt     string      `json:"createdAt"`
	Items         []OrderItem `json:"items,omitempty"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID          string `json:"id"`
	OrderID     string `json:"orderId"`
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	ProductName string `json:"productName,omitempty"`
}

// PlaceOrderRequest is the request body for POST /api/orders
// Example: {"addressId": "adr1", "paymentMethod": "COD", "items": [{"id": "p1", "quantity": 2}]}
type PlaceOrderRequest struct {
	AddressID     string           `json:"addressId"`
	PaymentMethod string           `json:"paymentMethod"`
	Items         []OrderItemInput `json:"items"`
}

// OrderItemInput is one cart line in a place-order request.
type OrderItemInput struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

// UpdateOrderStatusRequest is the request body for POST /api/store/orders
type UpdateOrderStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// OrderListResponse is the response for order listings
type OrderListResponse struct {
	Orders []Order `json:"orders"`
}
