package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Imraj-Rabbani/GoCart/models"
	"github.com/Imraj-Rabbani/GoCart/repository"
	"github.com/Imraj-Rabbani/GoCart/service"
)

// CartController handles HTTP requests for the user cart
type CartController struct {
	auth  service.AuthServiceInterface
	users repository.UserRepositoryInterface
}

// NewCartController creates a new CartController
func NewCartController(auth service.AuthServiceInterface, users repository.UserRepositoryInterface) *CartController {
	return &CartController{
		auth:  auth,
		users: users,
	}
}

// UpdateCart handles POST /api/cart
func (c *CartController) UpdateCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := c.auth.Authenticate(r)
	if err != nil {
		http.Error(w, "not authorized", http.StatusUnauthorized)
		return
	}

	var req models.UpdateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := c.users.UpsertCart(ctx, userID, req.Cart); err != nil {
		http.Error(w, fmt.Sprintf("Failed to update cart: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Cart Updated"})
}

// GetCart handles GET /api/cart
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := c.auth.Authenticate(r)
	if err != nil {
		http.Error(w, "not authorized", http.StatusUnauthorized)
		return
	}

	cart, err := c.users.GetCart(ctx, userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get cart: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.CartResponse{Cart: cart})
}
