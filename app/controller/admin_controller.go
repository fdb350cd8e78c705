package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Imraj-Rabbani/GoCart/repository"
	"github.com/Imraj-Rabbani/GoCart/service"
)

// AdminController handles HTTP requests for platform administration
type AdminController struct {
	auth   service.AuthServiceInterface
	stores repository.StoreRepositoryInterface
}

// NewAdminController creates a new AdminController
func NewAdminController(auth service.AuthServiceInterface, stores repository.StoreRepositoryInterface) *AdminController {
	return &AdminController{
		auth:   auth,
		stores: stores,
	}
}

// isAdmin checks the authenticated user against the ADMIN_USER_IDS env
// variable (comma separated).
func isAdmin(userID string) bool {
	for _, id := range strings.Split(os.Getenv("ADMIN_USER_IDS"), ",") {
		if id != "" && strings.TrimSpace(id) == userID {
			return true
		}
	}
	return false
}

// ToggleStore handles POST /api/admin/toggle-store
// Flips a store's active flag, approving the application on first
// activation.
func (c *AdminController) ToggleStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := c.auth.Authenticate(r)
	if err != nil || !isAdmin(userID) {
		http.Error(w, "Not Authorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		StoreID string `json:"storeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.StoreID == "" {
		http.Error(w, "Missing Store ID", http.StatusBadRequest)
		return
	}

	isActive, err := c.stores.ToggleActive(ctx, req.StoreID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to toggle store: %v", err), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "store updated Successfully",
		"isActive": isActive,
	})
}
