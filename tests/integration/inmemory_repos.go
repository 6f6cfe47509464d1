package integration

import (
	"context"
	"sync"
	"time"

	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Order Repo ---

// inMemoryOrderRepo mirrors the conditional-update contract of the
// PostgreSQL repo: status writes are atomic compare-and-set operations
// under a single mutex, so concurrent callbacks observe the same
// exactly-once semantics as the SQL `WHERE status = $expected` clause.
type inMemoryOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
	items  map[uuid.UUID][]domain.OrderItem

	// applied counts how many conditional updates actually changed a row.
	applied int
}

func newInMemoryOrderRepo() *inMemoryOrderRepo {
	return &inMemoryOrderRepo{
		orders: make(map[string]*domain.Order),
		items:  make(map[uuid.UUID][]domain.OrderItem),
	}
}

func (r *inMemoryOrderRepo) Create(ctx context.Context, tx pgx.Tx, order *domain.Order, items []domain.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *order
	r.orders[order.OrderNo] = &cp
	r.items[order.ID] = append([]domain.OrderItem(nil), items...)
	return nil
}

func (r *inMemoryOrderRepo) GetByOrderNo(ctx context.Context, orderNo string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderNo]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *inMemoryOrderRepo) GetItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]domain.OrderItem(nil), r.items[orderID]...), nil
}

func (r *inMemoryOrderRepo) ConditionalUpdateStatus(ctx context.Context, orderNo string, expected, next domain.OrderStatus, fields ports.PaymentFields) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderNo]
	if !ok || o.Status != expected {
		return false, nil
	}

	o.Status = next
	if fields.PayProvider != "" {
		o.PayProvider = &fields.PayProvider
	}
	if fields.PayTradeNo != "" {
		o.PayTradeNo = &fields.PayTradeNo
	}
	o.PaidAt = fields.PaidAt
	o.UpdatedAt = time.Now()
	r.applied++
	return true, nil
}

// appliedUpdates reports how many conditional status updates took effect.
func (r *inMemoryOrderRepo) appliedUpdates() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.applied
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

// --- Static health checker ---

// staticHealthCheck always reports healthy, standing in for the
// PostgreSQL checker when the repos are in-memory.
type staticHealthCheck struct{ name string }

func (h staticHealthCheck) Ping(ctx context.Context) error { return nil }
func (h staticHealthCheck) Name() string                   { return h.name }
