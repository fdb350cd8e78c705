package design

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Imraj-Rabbani/GoCart/models"
)

// uploadFolder is where rendered product shots land in the image store.
const uploadFolder = "product-images"

// Uploader is the object-storage collaborator: it takes raw image bytes
// and returns a durable URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename, folder string) (string, error)
}

// ProductCreator is the persistence collaborator the adapter hands the
// finished product to.
type ProductCreator interface {
	CreateProduct(ctx context.Context, product *models.ProductCreate) (string, error)
}

// Submitter packages compositor output and session metadata into a product
// submission. Submission is one-shot: on success the session is reset; on
// any failure the session is left intact so the user can retry without
// redoing placements.
type Submitter struct {
	uploader Uploader
	products ProductCreator
	mrp      int64
}

// NewSubmitter creates a submission adapter. mrp is the fixed list price
// applied to every studio design.
func NewSubmitter(uploader Uploader, products ProductCreator, mrp int64) *Submitter {
	return &Submitter{
		uploader: uploader,
		products: products,
		mrp:      mrp,
	}
}

// Submit validates the session metadata, uploads both rendered sides and
// creates the product record. Both uploads must succeed before the create
// call is issued; a single upload failure fails the whole submission and
// no partial product record is created.
func (s *Submitter) Submit(ctx context.Context, session *Session, images *SideImages, storeID string) (string, error) {
	if strings.TrimSpace(session.Name) == "" {
		return "", ErrMissingName
	}
	if session.Empty() {
		return "", ErrEmptyDesign
	}

	frontURL, err := s.uploader.Upload(ctx, images.Front, "front-view.png", uploadFolder)
	if err != nil {
		return "", fmt.Errorf("failed to upload front view: %w", err)
	}
	backURL, err := s.uploader.Upload(ctx, images.Back, "back-view.png", uploadFolder)
	if err != nil {
		return "", fmt.Errorf("failed to upload back view: %w", err)
	}

	productID, err := s.products.CreateProduct(ctx, &models.ProductCreate{
		StoreID:  storeID,
		Name:     session.Name,
		Tags:     session.Tags,
		Category: string(session.Product),
		Color:    string(session.Color),
		MRP:      s.mrp,
		Price:    s.mrp,
		Images:   []string{frontURL, backURL},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	log.Printf("✅ Design submitted: product=%s store=%s", productID, storeID)
	session.Reset()
	return productID, nil
}
