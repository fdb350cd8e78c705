package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/Imraj-Rabbani/GoCart/design"
	"github.com/Imraj-Rabbani/GoCart/models"
	"github.com/Imraj-Rabbani/GoCart/repository"
	"github.com/Imraj-Rabbani/GoCart/service"
)

// maxDesignUploadBytes caps a design submission's multipart payload.
const maxDesignUploadBytes = 32 << 20

// DesignController handles HTTP requests for the design studio
type DesignController struct {
	auth       service.AuthServiceInterface
	stores     repository.StoreRepositoryInterface
	products   repository.ProductRepositoryInterface
	compositor *design.Compositor
	submitter  *design.Submitter
}

// NewDesignController creates a new DesignController
func NewDesignController(
	auth service.AuthServiceInterface,
	stores repository.StoreRepositoryInterface,
	products repository.ProductRepositoryInterface,
	compositor *design.Compositor,
	submitter *design.Submitter,
) *DesignController {
	return &DesignController{
		auth:       auth,
		stores:     stores,
		products:   products,
		compositor: compositor,
		submitter:  submitter,
	}
}

// SubmitDesign handles POST /api/store/design
// The multipart payload carries the garment configuration, a placements
// JSON document and the uploaded artwork files. The server rebuilds the
// studio session, rasterizes both sides and publishes the product.
func (c *DesignController) SubmitDesign(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SubmitDesign: Received %s request", r.Method)

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

	if err := r.ParseMultipartForm(maxDesignUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("Invalid multipart payload: %v", err), http.StatusBadRequest)
		return
	}

	session, err := c.buildSession(r)
	if err != nil {
		log.Printf("❌ SubmitDesign: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The compositor snapshots the session synchronously; everything after
	// this point works on the rendered images only.
	images, err := c.compositor.Composite(session)
	if err != nil {
		if errors.Is(err, design.ErrEmptyDesign) {
			http.Error(w, "Please design something first!", http.StatusBadRequest)
			return
		}
		log.Printf("❌ SubmitDesign: compositing failed: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render design: %v", err), http.StatusInternalServerError)
		return
	}

	productID, err := c.submitter.Submit(ctx, session, images, storeID)
	if err != nil {
		if errors.Is(err, design.ErrMissingName) || errors.Is(err, design.ErrEmptyDesign) {
			http.Error(w, "Missing Product Details", http.StatusBadRequest)
			return
		}
		log.Printf("❌ SubmitDesign: submission failed: %v", err)
		http.Error(w, fmt.Sprintf("Failed to submit design: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.DesignResponse{
		Message:   "Product added successfully",
		ProductID: productID,
	})
}

// buildSession reconstructs a studio session from the multipart form.
func (c *DesignController) buildSession(r *http.Request) (*design.Session, error) {
	productType := design.ProductType(r.FormValue("productType"))
	if !productType.Valid() {
		return nil, fmt.Errorf("unknown product type %q", r.FormValue("productType"))
	}
	garmentColor := design.GarmentColor(r.FormValue("color"))
	if !garmentColor.Valid() {
		return nil, fmt.Errorf("unknown color %q", r.FormValue("color"))
	}

	session := design.NewSession(productType, garmentColor)
	session.Name = r.FormValue("name")
	session.Tags = parseTags(r.FormValue("tags"))

	var assetIDs []string
	for _, header := range r.MultipartForm.File["assets"] {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to read upload %s: %v", header.Filename, err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read upload %s: %v", header.Filename, err)
		}

		asset, err := session.AddAsset(data, header.Filename)
		if err != nil {
			return nil, err
		}
		assetIDs = append(assetIDs, asset.ID)
	}

	var placements []models.PlacementInput
	if raw := r.FormValue("placements"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &placements); err != nil {
			return nil, fmt.Errorf("invalid placements document: %v", err)
		}
	}

	for _, in := range placements {
		if in.Asset < 0 || in.Asset >= len(assetIDs) {
			return nil, fmt.Errorf("placement references unknown asset %d", in.Asset)
		}

		var side design.Side
		switch in.Side {
		case "front":
			side = design.SideFront
		case "back":
			side = design.SideBack
		default:
			return nil, fmt.Errorf("unknown side %q", in.Side)
		}

		p, err := session.AddPlacement(assetIDs[in.Asset], side)
		if err != nil {
			return nil, err
		}

		// Placements arrive as absolute coordinates; the session only
		// moves by deltas so clamping applies uniformly.
		session.UpdatePosition(p.ID, in.X-design.DefaultX, in.Y-design.DefaultY)
		scale := in.Scale
		if scale == 0 {
			scale = design.DefaultScale
		}
		session.UpdateScale(p.ID, scale-design.DefaultScale)
	}

	return session, nil
}

// parseTags accepts either a JSON string array or a comma separated list.
func parseTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var tags []string
		if err := json.Unmarshal([]byte(raw), &tags); err == nil {
			return tags
		}
	}

	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ListDesigns handles GET /api/store/design
// Returns the seller's published products.
func (c *DesignController) ListDesigns(w http.ResponseWriter, r *http.Request) {
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
