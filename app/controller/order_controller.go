package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Imraj-Rabbani/GoCart/models"
	"github.com/Imraj-Rabbani/GoCart/pricing"
	"github.com/Imraj-Rabbani/GoCart/repository"
	"github.com/Imraj-Rabbani/GoCart/service"
)

// OrderController handles HTTP requests for orders
type OrderController struct {
	auth     service.AuthServiceInterface
	stores   repository.StoreRepositoryInterface
	products repository.ProductRepositoryInterface
	orders   repository.OrderRepositoryInterface
	users    repository.UserRepositoryInterface
}

// NewOrderController creates a new OrderController
func NewOrderController(
	auth service.AuthServiceInterface,
	stores repository.StoreRepositoryInterface,
	products repository.ProductRepositoryInterface,
	orders repository.OrderRepositoryInterface,
	users repository.UserRepositoryInterface,
) *OrderController {
	return &OrderController{
		auth:     auth,
		stores:   stores,
		products: products,
		orders:   orders,
		users:    users,
	}
}

// PlaceOrder handles POST /api/orders
// A cart spanning several stores is split into one order per store; each
// order's total comes from the pricing engine. The cart is cleared after
// all orders are placed.
func (c *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := c.auth.Authenticate(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.AddressID == "" || req.PaymentMethod == "" || len(req.Items) == 0 {
		http.Error(w, "Missing Order details", http.StatusBadRequest)
		return
	}

	// Group cart lines by the store that owns each product
	type line struct {
		productID string
		quantity  int
		price     int64
	}
	linesByStore := map[string][]line{}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			http.Error(w, "quantity must be greater than 0", http.StatusBadRequest)
			return
		}
		product, err := c.products.GetByID(ctx, item.ProductID)
		if err != nil {
			http.Error(w, fmt.Sprintf("Unknown product %s", item.ProductID), http.StatusBadRequest)
			return
		}
		linesByStore[product.StoreID] = append(linesByStore[product.StoreID], line{
			productID: product.ID,
			quantity:  item.Quantity,
			price:     product.Price,
		})
	}

	engine := pricing.GetEngine()
	orderIDs := []string{}
	for storeID, lines := range linesByStore {
		var subtotal int64
		items := make([]models.OrderItem, 0, len(lines))
		for _, l := range lines {
			subtotal += l.price * int64(l.quantity)
			items = append(items, models.OrderItem{
				ProductID: l.productID,
				Quantity:  l.quantity,
				Price:     l.price,
			})
		}

		total := subtotal
		if engine != nil {
			total = engine.OrderTotal(subtotal)
		}

		orderID, err := c.orders.CreateOrder(ctx, &models.Order{
			UserID:        userID,
			StoreID:       storeID,
			AddressID:     req.AddressID,
			PaymentMethod: req.PaymentMethod,
			Total:         total,
			Status:        "pending",
			Items:         items,
		})
		if err != nil {
			log.Printf("❌ PlaceOrder: %v", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		orderIDs = append(orderIDs, orderID)
	}

	if err := c.users.ClearCart(ctx, userID); err != nil {
		log.Printf("⚠️  PlaceOrder: failed to clear cart for %s: %v", userID, err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Order Placed Successfully",
		"orderIds": orderIDs,
	})
}

// ListOrders handles GET /api/orders
func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := c.auth.Authenticate(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := c.orders.ListByUser(ctx, userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list orders: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.OrderListResponse{Orders: orders})
}

// ListStoreOrders handles GET /api/store/orders
func (c *OrderController) ListStoreOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_, storeID, err := sellerStore(ctx, r, c.auth, c.stores)
	if err != nil && !errors.Is(err, service.ErrUnauthorized) {
		http.Error(w, fmt.Sprintf("Failed to authenticate: %v", err), http.StatusInternalServerError)
		return
	}
	if errors.Is(err, service.ErrUnauthorized) || storeID == "" {
		http.Error(w, "Not Authorized", http.StatusUnauthorized)
		return
	}

	orders, err := c.orders.ListByStore(ctx, storeID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list orders: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.OrderListResponse{Orders: orders})
}

// UpdateOrderStatus handles POST /api/store/orders
func (c *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_, storeID, err := sellerStore(ctx, r, c.auth, c.stores)
	if err != nil && !errors.Is(err, service.ErrUnauthorized) {
		http.Error(w, fmt.Sprintf("Failed to authenticate: %v", err), http.StatusInternalServerError)
		return
	}
	if errors.Is(err, service.ErrUnauthorized) || storeID == "" {
		http.Error(w, "Not Authorized", http.StatusUnauthorized)
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.OrderID == "" || req.Status == "" {
		http.Error(w, "Missing order details", http.StatusBadRequest)
		return
	}

	if err := c.orders.UpdateStatus(ctx, req.OrderID, storeID, req.Status); err != nil {
		http.Error(w, fmt.Sprintf("Failed to update order: %v", err), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Order Status Updated"})
}
