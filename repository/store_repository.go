package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Imraj-Rabbani/GoCart/db"
	"github.com/Imraj-Rabbani/GoCart/models"
)

// StoreRepositoryInterface defines the contract for store repository operations
type StoreRepositoryInterface interface {
	Create(ctx context.Context, store *models.StoreCreate) (*models.Store, error)
	GetByUserID(ctx context.Context, userID string) (*models.Store, error)
	GetByUsername(ctx context.Context, username string) (*models.Store, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	ApprovedStoreID(ctx context.Context, userID string) (string, error)
	ToggleActive(ctx context.Context, storeID string) (bool, error)
}

// StoreRepository handles database operations for stores
type StoreRepository struct{}

// NewStoreRepository creates a new StoreRepository
func NewStoreRepository() *StoreRepository {
	return &StoreRepository{}
}

// Ensure StoreRepository implements StoreRepositoryInterface
var _ StoreRepositoryInterface = (*StoreRepository)(nil)

const storeColumns = `id, user_id, name, username, description, email, contact, address, logo, status, is_active, created_at`

func scanStore(row *sql.Row) (*models.Store, error) {
	var s models.Store
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Username, &s.Description, &s.Email,
		&s.Contact, &s.Address, &s.Logo, &s.Status, &s.IsActive, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new store application with status 'pending'.
// The username is stored lowercase; a duplicate violates the unique index.
func (r *StoreRepository) Create(ctx context.Context, store *models.StoreCreate) (*models.Store, error) {
	id := uuid.NewString()
	username := strings.ToLower(strings.TrimSpace(store.Username))

	query := `
		INSERT INTO stores (id, user_id, name, username, description, email, contact, address, logo, status, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending', false)
	`
	_, err := db.DB.ExecContext(ctx, query, id, store.UserID, store.Name, username,
		store.Description, store.Email, store.Contact, store.Address, store.LogoURL)
	if err != nil {
		log.Printf("❌ Error creating store for user %s: %v", store.UserID, err)
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	log.Printf("✓ Store created: id=%s username=%s", id, username)
	return r.getByID(ctx, id)
}

func (r *StoreRepository) getByID(ctx context.Context, id string) (*models.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`
	store, err := scanStore(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get store %s: %w", id, err)
	}
	return store, nil
}

// GetByUserID returns the store owned by a user, or nil when they have none.
func (r *StoreRepository) GetByUserID(ctx context.Context, userID string) (*models.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE user_id = $1`
	store, err := scanStore(db.DB.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get store for user %s: %w", userID, err)
	}
	return store, nil
}

// GetByUsername returns an active store by its public username, or nil.
func (r *StoreRepository) GetByUsername(ctx context.Context, username string) (*models.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE username = $1 AND is_active = true`
	store, err := scanStore(db.DB.QueryRowContext(ctx, query, strings.ToLower(username)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get store %s: %w", username, err)
	}
	return store, nil
}

// UsernameTaken checks whether a store username is already in use.
func (r *StoreRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM stores WHERE username = $1)`
	if err := db.DB.QueryRowContext(ctx, query, strings.ToLower(username)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

// ApprovedStoreID returns the id of the user's approved, active store, or
// "" when the user is not an approved seller.
func (r *StoreRepository) ApprovedStoreID(ctx context.Context, userID string) (string, error) {
	var id string
	query := `SELECT id FROM stores WHERE user_id = $1 AND status = 'approved' AND is_active = true`
	err := db.DB.QueryRowContext(ctx, query, userID).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up seller store: %w", err)
	}
	return id, nil
}

// ToggleActive flips a store's active flag, approving it on first
// activation. Returns the new active state.
func (r *StoreRepository) ToggleActive(ctx context.Context, storeID string) (bool, error) {
	var isActive bool
	query := `
		UPDATE stores
		SET is_active = NOT is_active,
		    status = CASE WHEN is_active THEN status ELSE 'approved' END
		WHERE id = $1
		RETURNING is_active
	`
	err := db.DB.QueryRowContext(ctx, query, storeID).Scan(&isActive)
	if err == sql.ErrNoRows {
		return false, fmt.Errorf("store %s does not exist", storeID)
	}
	if err != nil {
		return false, fmt.Errorf("failed to toggle store: %w", err)
	}

	log.Printf("✓ Store %s active=%v", storeID, isActive)
	return isActive, nil
}
