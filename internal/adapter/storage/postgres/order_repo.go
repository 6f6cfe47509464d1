package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, order_no, status, customer_name, customer_phone, customer_email, note,
	ship_method, pickup_store, sub_total, shipping, total, pay_provider, pay_trade_no, paid_at,
	created_at, updated_at`

// Create inserts an order and its items within a database transaction.
func (r *OrderRepo) Create(ctx context.Context, tx pgx.Tx, o *domain.Order, items []domain.OrderItem) error {
	query := `INSERT INTO orders (id, order_no, status, customer_name, customer_phone, customer_email, note,
		ship_method, pickup_store, sub_total, shipping, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := tx.Exec(ctx, query,
		o.ID, o.OrderNo, o.Status, o.CustomerName, o.CustomerPhone, o.CustomerEmail, o.Note,
		o.ShipMethod, o.PickupStore, o.SubTotal, o.Shipping, o.Total, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `INSERT INTO order_items (id, order_id, product_id, name, price, qty, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, it := range items {
		if _, err := tx.Exec(ctx, itemQuery, it.ID, it.OrderID, it.ProductID, it.Name, it.Price, it.Qty, it.Image); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByOrderNo fetches an order by its public order number. Returns nil
// without error when no order exists.
func (r *OrderRepo) GetByOrderNo(ctx context.Context, orderNo string) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE order_no = $1`, orderColumns)
	return r.scanOrder(r.pool.QueryRow(ctx, query, orderNo))
}

// GetItems fetches the line items of an order.
func (r *OrderRepo) GetItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	query := `SELECT id, order_id, product_id, name, price, qty, image
		FROM order_items WHERE order_id = $1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		it := domain.OrderItem{}
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Price, &it.Qty, &it.Image); err != nil {
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}
	return items, nil
}

// ConditionalUpdateStatus performs the compare-and-set status transition.
// The WHERE clause on the expected status is what serializes concurrent
// callback deliveries across process instances; RowsAffected reports
// whether this caller won.
func (r *OrderRepo) ConditionalUpdateStatus(ctx context.Context, orderNo string, expected, next domain.OrderStatus, fields ports.PaymentFields) (bool, error) {
	query := `UPDATE orders
		SET status = $1, pay_provider = $2, pay_trade_no = $3, paid_at = $4, updated_at = $5
		WHERE order_no = $6 AND status = $7`

	tag, err := r.pool.Exec(ctx, query,
		next, fields.PayProvider, fields.PayTradeNo, fields.PaidAt, time.Now().UTC(),
		orderNo, expected,
	)
	if err != nil {
		return false, fmt.Errorf("conditional status update: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// scanOrder is a helper to scan a single row into an Order.
func (r *OrderRepo) scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	err := row.Scan(
		&o.ID, &o.OrderNo, &o.Status, &o.CustomerName, &o.CustomerPhone, &o.CustomerEmail, &o.Note,
		&o.ShipMethod, &o.PickupStore, &o.SubTotal, &o.Shipping, &o.Total, &o.PayProvider, &o.PayTradeNo, &o.PaidAt,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return o, nil
}
