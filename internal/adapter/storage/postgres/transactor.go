package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor hands out transactions for multi-statement writes. Order
// creation is the only caller: the order row and its line items must land
// atomically, since a half-written order would be payable but unshippable.
type Transactor struct {
	pool Pool
}

// NewTransactor wraps the connection pool as a ports.DBTransactor.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin opens a transaction on the pool.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}
