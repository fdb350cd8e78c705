package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Imraj-Rabbani/GoCart/db"
	"github.com/Imraj-Rabbani/GoCart/models"
)

// OrderRepositoryInterface defines the contract for order repository operations
type OrderRepositoryInterface interface {
	CreateOrder(ctx context.Context, order *models.Order) (string, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListByStore(ctx context.Context, storeID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID, storeID, status string) error
}

// OrderRepository handles database operations for orders
type OrderRepository struct{}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// CreateOrder inserts an order and its lines in one transaction.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (string, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	orderID := uuid.NewString()
	insertOrder := `
		INSERT INTO orders (id, user_id, store_id, address_id, payment_method, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.ExecContext(ctx, insertOrder, orderID, order.UserID, order.StoreID,
		order.AddressID, order.PaymentMethod, order.Total, order.Status)
	if err != nil {
		log.Printf("❌ Error inserting order for user %s: %v", order.UserID, err)
		return "", fmt.Errorf("failed to insert order: %w", err)
	}

	insertItem := `
		INSERT INTO order_items (id, order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, insertItem, uuid.NewString(), orderID,
			item.ProductID, item.Quantity, item.Price)
		if err != nil {
			log.Printf("❌ Error inserting order item %s: %v", item.ProductID, err)
			return "", fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit order: %w", err)
	}

	log.Printf("✓ Order created: id=%s store=%s items=%d total=%d", orderID, order.StoreID, len(order.Items), order.Total)
	return orderID, nil
}

const orderColumns = `id, user_id, store_id, address_id, payment_method, total, status, created_at`

// ListByUser returns a user's orders, newest first, without lines.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID, false)
}

// ListByStore returns a store's orders with their lines, newest first.
func (r *OrderRepository) ListByStore(ctx context.Context, storeID string) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE store_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, storeID, true)
}

func (r *OrderRepository) list(ctx context.Context, query, arg string, withItems bool) ([]models.Order, error) {
	rows, err := db.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		err := rows.Scan(&o.ID, &o.UserID, &o.StoreID, &o.AddressID,
			&o.PaymentMethod, &o.Total, &o.Status, &o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	if withItems {
		for i := range orders {
			items, err := r.itemsForOrder(ctx, orders[i].ID)
			if err != nil {
				return nil, err
			}
			orders[i].Items = items
		}
	}

	return orders, nil
}

func (r *OrderRepository) itemsForOrder(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, p.name
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`
	rows, err := db.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.Quantity, &item.Price, &item.ProductName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateStatus sets an order's status. The store id guards against a
// seller touching another store's order.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, storeID, status string) error {
	query := `UPDATE orders SET status = $1 WHERE id = $2 AND store_id = $3`
	result, err := db.DB.ExecContext(ctx, query, status, orderID, storeID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("order %s does not exist in store %s", orderID, storeID)
	}

	log.Printf("✓ Order %s status=%s", orderID, status)
	return nil
}
