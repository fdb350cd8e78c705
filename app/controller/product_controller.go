package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/Imraj-Rabbani/GoCart/models"
	"github.com/Imraj-Rabbani/GoCart/repository"
	"github.com/Imraj-Rabbani/GoCart/service"
)

// ProductController handles HTTP requests for products
type ProductController struct {
	auth     service.AuthServiceInterface
	storage  service.StorageServiceInterface
	stores   repository.StoreRepositoryInterface
	products repository.ProductRepositoryInterface
}

// NewProductController creates a new ProductController
func NewProductController(
	auth service.AuthServiceInterface,
	storage service.StorageServiceInterface,
	stores repository.StoreRepositoryInterface,
	products repository.ProductRepositoryInterface,
) *ProductController {
	return &ProductController{
		auth:     auth,
		storage:  storage,
		stores:   stores,
		products: products,
	}
}

// CreateProduct handles POST /api/store/product
// Uploads the product images (optimized) and creates the product row.
func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_, storeID, err := sellerStore(ctx, r, c.auth, c.stores)
	if err != nil && !errors.Is(err, service.ErrUnauthorized) {
		http.Error(w, fmt.Sprintf("Failed to authenticate: %v", err), http.StatusInternalServerError)
		return
	}
	if errors.Is(err, service.ErrUnauthorized) || storeID == "" {
		http.Error(w, "not authorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, fmt.Sprintf("Invalid multipart payload: %v", err), http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	description := r.FormValue("description")
	category := r.FormValue("category")
	mrp, _ := strconv.ParseInt(r.FormValue("mrp"), 10, 64)
	imageFiles := r.MultipartForm.File["image"]

	if name == "" || description == "" || mrp <= 0 || category == "" || len(imageFiles) < 1 {
		http.Error(w, "Missing Product Details", http.StatusBadRequest)
		return
	}

	imagesURL := make([]string, 0, len(imageFiles))
	for _, header := range imageFiles {
		file, err := header.Open()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to read image %s: %v", header.Filename, err), http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to read image %s: %v", header.Filename, err), http.StatusBadRequest)
			return
		}

		optimized, err := service.OptimizeImage(data, "product")
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid image %s: %v", header.Filename, err), http.StatusBadRequest)
			return
		}

		url, err := c.storage.Upload(ctx, optimized, header.Filename, "products")
		if err != nil {
			log.Printf("❌ CreateProduct: image upload failed: %v", err)
			http.Error(w, fmt.Sprintf("Failed to upload image: %v", err), http.StatusInternalServerError)
			return
		}
		imagesURL = append(imagesURL, url)
	}

	productID, err := c.products.CreateProduct(ctx, &models.ProductCreate{
		StoreID:     storeID,
		Name:        name,
		Description: description,
		Category:    category,
		MRP:         mrp,
		Price:       mrp,
		Images:      imagesURL,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create product: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Product added successfully",
		"productId": productID,
	})
}

// ListProducts handles GET /api/store/product
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_, storeID, err := sellerStore(ctx, r, c.auth, c.stores)
	if err != nil && !errors.Is(err, service.ErrUnauthorized) {
		http.Error(w, fmt.Sprintf("Failed to authenticate: %v", err), http.StatusInternalServerError)
		return
	}
	if errors.Is(err, service.ErrUnauthorized) || storeID == "" {
		http.Error(w, "not authorized", http.StatusUnauthorized)
		return
	}

	products, err := c.products.ListByStore(ctx, storeID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list products: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.ProductListResponse{Products: products})
}

// ToggleStock handles POST /api/store/stock-toggle
func (c *ProductController) ToggleStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_, storeID, err := sellerStore(ctx, r, c.auth, c.stores)
	if err != nil && !errors.Is(err, service.ErrUnauthorized) {
		http.Error(w, fmt.Sprintf("Failed to authenticate: %v", err), http.StatusInternalServerError)
		return
	}
	if errors.Is(err, service.ErrUnauthorized) || storeID == "" {
		http.Error(w, "not authorized", http.StatusUnauthorized)
		return
	}

	var req models.StockToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "Missing Product ID", http.StatusBadRequest)
		return
	}

	if err := c.products.ToggleStock(ctx, req.ProductID, storeID); err != nil {
		http.Error(w, fmt.Sprintf("Failed to toggle stock: %v", err), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product stock updated successfully"})
}
