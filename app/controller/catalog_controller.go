package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Imraj-Rabbani/GoCart/repository"
	"github.com/Imraj-Rabbani/GoCart/service"
)

// CatalogController handles HTTP requests for catalog exports
type CatalogController struct {
	auth    service.AuthServiceInterface
	stores  repository.StoreRepositoryInterface
	catalog service.CatalogServiceInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(
	auth service.AuthServiceInterface,
	stores repository.StoreRepositoryInterface,
	catalog service.CatalogServiceInterface,
) *CatalogController {
	return &CatalogController{
		auth:    auth,
		stores:  stores,
		catalog: catalog,
	}
}

// RenderCatalog handles GET /admin/catalog/render?store=...
// Serves the raw catalog HTML. Headless Chrome loads this page when
// printing the PDF, so it stays unauthenticated on the local interface.
func (c *CatalogController) RenderCatalog(w http.ResponseWriter, r *http.Request) {
	storeID := r.URL.Query().Get("store")
	if storeID == "" {
		http.Error(w, "store parameter is required", http.StatusBadRequest)
		return
	}

	html, err := c.catalog.RenderCatalogHTML(r.Context(), storeID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to render catalog: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// DownloadCatalog handles GET /api/store/catalog/download
// Exports the seller's product catalog as a PDF.
func (c *CatalogController) DownloadCatalog(w http.ResponseWriter, r *http.Request) {
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

	pdf, err := c.catalog.GeneratePDF(ctx, storeID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to generate catalog PDF: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="catalog.pdf"`)
	w.Write(pdf)
}
