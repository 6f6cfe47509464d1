package ports

import (
	"context"
	"time"

	"hemstore-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentFields is the narrow field subset recorded alongside a payment
// state transition.
type PaymentFields struct {
	PayProvider string
	PayTradeNo  string
	PaidAt      *time.Time // set only on PAID
}

// OrderRepository defines persistence operations for orders. Status writes
// are always conditional: the core never performs unconditional updates.
type OrderRepository interface {
	Create(ctx context.Context, tx pgx.Tx, order *domain.Order, items []domain.OrderItem) error
	GetByOrderNo(ctx context.Context, orderNo string) (*domain.Order, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
	// ConditionalUpdateStatus applies "set status = next where order_no = X
	// and status = expected" and reports whether a row was affected. This is
	// the cross-instance serialization point for concurrent callbacks.
	ConditionalUpdateStatus(ctx context.Context, orderNo string, expected, next domain.OrderStatus, fields PaymentFields) (bool, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
