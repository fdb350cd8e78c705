package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Imraj-Rabbani/GoCart/db"
	"github.com/Imraj-Rabbani/GoCart/models"
)

// ProductRepositoryInterface defines the contract for product repository operations
type ProductRepositoryInterface interface {
	CreateProduct(ctx context.Context, product *models.ProductCreate) (string, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	ListByStore(ctx context.Context, storeID string) ([]models.Product, error)
	ToggleStock(ctx context.Context, productID, storeID string) error
}

// ProductRepository handles database operations for products
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// CreateProduct inserts a product and returns its id. Image URLs are
// stored as a JSONB array.
func (r *ProductRepository) CreateProduct(ctx context.Context, product *models.ProductCreate) (string, error) {
	id := uuid.NewString()

	imagesJSON, err := json.Marshal(product.Images)
	if err != nil {
		return "", fmt.Errorf("failed to encode image urls: %w", err)
	}
	tagsJSON, err := json.Marshal(product.Tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}

	query := `
		INSERT INTO products (id, store_id, name, description, tags, category, color, mrp, price, images, in_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true)
	`
	_, err = db.DB.ExecContext(ctx, query, id, product.StoreID, product.Name, product.Description,
		tagsJSON, product.Category, product.Color, product.MRP, product.Price, imagesJSON)
	if err != nil {
		log.Printf("❌ Error creating product for store %s: %v", product.StoreID, err)
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	log.Printf("✓ Product created: id=%s store=%s name=%s", id, product.StoreID, product.Name)
	return id, nil
}

const productColumns = `id, store_id, name, description, tags, category, color, mrp, price, images, in_stock, created_at`

func scanProduct(scan func(dest ...any) error) (*models.Product, error) {
	var p models.Product
	var tagsJSON, imagesJSON []byte
	err := scan(&p.ID, &p.StoreID, &p.Name, &p.Description, &tagsJSON, &p.Category, &p.Color,
		&p.MRP, &p.Price, &imagesJSON, &p.InStock, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &p.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags for product %s: %w", p.ID, err)
		}
	}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return nil, fmt.Errorf("failed to decode image urls for product %s: %w", p.ID, err)
		}
	}
	return &p, nil
}

// GetByID returns a product by id.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	product, err := scanProduct(db.DB.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product %s does not exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return product, nil
}

// ListByStore returns a store's products, newest first.
func (r *ProductRepository) ListByStore(ctx context.Context, storeID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 ORDER BY created_at DESC`
	rows, err := db.DB.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}

// ToggleStock flips a product's in_stock flag. The store id guards against
// a seller toggling someone else's product.
func (r *ProductRepository) ToggleStock(ctx context.Context, productID, storeID string) error {
	query := `UPDATE products SET in_stock = NOT in_stock WHERE id = $1 AND store_id = $2`
	result, err := db.DB.ExecContext(ctx, query, productID, storeID)
	if err != nil {
		return fmt.Errorf("failed to toggle stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to toggle stock: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %s does not exist in store %s", productID, storeID)
	}

	log.Printf("✓ Stock toggled: product=%s", productID)
	return nil
}
