package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Imraj-Rabbani/GoCart/db"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	UpsertCart(ctx context.Context, userID string, cart json.RawMessage) error
	GetCart(ctx context.Context, userID string) (json.RawMessage, error)
	ClearCart(ctx context.Context, userID string) error
}

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

// UpsertCart replaces the user's cart blob, creating the user row if this
// is the first time we see them (identity lives in the auth service).
func (r *UserRepository) UpsertCart(ctx context.Context, userID string, cart json.RawMessage) error {
	if len(cart) == 0 {
		cart = json.RawMessage(`{}`)
	}

	query := `
		INSERT INTO users (id, cart) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET cart = EXCLUDED.cart
	`
	if _, err := db.DB.ExecContext(ctx, query, userID, []byte(cart)); err != nil {
		log.Printf("❌ Error updating cart for user %s: %v", userID, err)
		return fmt.Errorf("failed to update cart: %w", err)
	}
	return nil
}

// GetCart returns the user's cart blob; an unknown user has an empty cart.
func (r *UserRepository) GetCart(ctx context.Context, userID string) (json.RawMessage, error) {
	var cart []byte
	query := `SELECT cart FROM users WHERE id = $1`
	err := db.DB.QueryRowContext(ctx, query, userID).Scan(&cart)
	if err == sql.ErrNoRows {
		return json.RawMessage(`{}`), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if len(cart) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return json.RawMessage(cart), nil
}

// ClearCart empties the user's cart after an order is placed.
func (r *UserRepository) ClearCart(ctx context.Context, userID string) error {
	return r.UpsertCart(ctx, userID, json.RawMessage(`{}`))
}
