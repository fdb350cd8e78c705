package controller

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/Imraj-Rabbani/GoCart/models"
	"github.com/Imraj-Rabbani/GoCart/repository"
	"github.com/Imraj-Rabbani/GoCart/service"
)

// StoreController handles HTTP requests for stores
type StoreController struct {
	auth     service.AuthServiceInterface
	storage  service.StorageServiceInterface
	stores   repository.StoreRepositoryInterface
	products repository.ProductRepositoryInterface
}

// NewStoreController creates a new StoreController
func NewStoreController(
	auth service.AuthServiceInterface,
	storage service.StorageServiceInterface,
	stores repository.StoreRepositoryInterface,
	products repository.ProductRepositoryInterface,
) *StoreController {
	return &StoreController{
		auth:     auth,
		storage:  storage,
		stores:   stores,
		products: products,
	}
}

// CreateStore handles POST /api/store/create
// Registers a store application; the store stays inactive until an admin
// approves it.
func (c *StoreController) CreateStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := c.auth.Authenticate(r)
	if err != nil {
		http.Error(w, "not authorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		http.Error(w, fmt.Sprintf("Invalid multipart payload: %v", err), http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	username := r.FormValue("username")
	description := r.FormValue("description")
	email := r.FormValue("email")
	contact := r.FormValue("contact")
	address := r.FormValue("address")
	logoFiles := r.MultipartForm.File["image"]

	if name == "" || username == "" || description == "" || email == "" || contact == "" || address == "" || len(logoFiles) == 0 {
		http.Error(w, "missing store info", http.StatusBadRequest)
		return
	}

	// One application per user
	existing, err := c.stores.GetByUserID(ctx, userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to check store: %v", err), http.StatusInternalServerError)
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": existing.Status})
		return
	}

	taken, err := c.stores.UsernameTaken(ctx, username)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to check username: %v", err), http.StatusInternalServerError)
		return
	}
	if taken {
		http.Error(w, "Shop Username already taken", http.StatusBadRequest)
		return
	}

	file, err := logoFiles[0].Open()
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read logo: %v", err), http.StatusBadRequest)
		return
	}
	logoData, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read logo: %v", err), http.StatusBadRequest)
		return
	}

	optimized, err := service.OptimizeImage(logoData, "logo")
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid logo image: %v", err), http.StatusBadRequest)
		return
	}

	logoURL, err := c.storage.Upload(ctx, optimized, logoFiles[0].Filename, "logos")
	if err != nil {
		log.Printf("❌ CreateStore: logo upload failed: %v", err)
		http.Error(w, fmt.Sprintf("Failed to upload logo: %v", err), http.StatusInternalServerError)
		return
	}

	_, err = c.stores.Create(ctx, &models.StoreCreate{
		UserID:      userID,
		Name:        name,
		Username:    username,
		Description: description,
		Email:       email,
		Contact:     contact,
		Address:     address,
		LogoURL:     logoURL,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create store: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "applied, waiting for approval"})
}

// StoreStatus handles GET /api/store/create
// Returns the application status of the caller's store.
func (c *StoreController) StoreStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := c.auth.Authenticate(r)
	if err != nil {
		http.Error(w, "not authorized", http.StatusUnauthorized)
		return
	}

	store, err := c.stores.GetByUserID(ctx, userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get store: %v", err), http.StatusInternalServerError)
		return
	}

	status := "not registered"
	if store != nil {
		status = store.Status
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

// IsSeller handles GET /api/store/is-seller
func (c *StoreController) IsSeller(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, storeID, err := sellerStore(ctx, r, c.auth, c.stores)
	if err != nil && !errors.Is(err, service.ErrUnauthorized) {
		http.Error(w, fmt.Sprintf("Failed to authenticate: %v", err), http.StatusInternalServerError)
		return
	}
	if errors.Is(err, service.ErrUnauthorized) || storeID == "" {
		http.Error(w, "Not Authorized", http.StatusUnauthorized)
		return
	}

	store, err := c.stores.GetByUserID(ctx, userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get store: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.IsSellerResponse{IsSeller: true, StoreInfo: store})
}

// StoreData handles GET /api/store/data?username=...
// Public storefront endpoint: an active store and its products.
func (c *StoreController) StoreData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := strings.TrimSpace(r.URL.Query().Get("username"))
	if username == "" {
		http.Error(w, "Missing Username", http.StatusBadRequest)
		return
	}

	store, err := c.stores.GetByUsername(ctx, username)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get store: %v", err), http.StatusInternalServerError)
		return
	}
	if store == nil {
		http.Error(w, "Store not Found", http.StatusNotFound)
		return
	}

	products, err := c.products.ListByStore(ctx, store.ID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list products: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.StoreDataResponse{Store: store, Products: products})
}
