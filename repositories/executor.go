package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helixerp/entitlements-backend/models"
)

// Executor abstracts over a connection pool and an open transaction, so that
// repository methods can run in either without knowing which.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ExecutorGetter struct {
	connectionPool *pgxpool.Pool
}

func NewExecutorGetter(pool *pgxpool.Pool) ExecutorGetter {
	return ExecutorGetter{
		connectionPool: pool,
	}
}

func (g ExecutorGetter) Executor() Executor {
	return g.connectionPool
}

func (g ExecutorGetter) Transaction(ctx context.Context, fn func(tx Executor) error) error {
	err := pgx.BeginFunc(ctx, g.connectionPool, func(tx pgx.Tx) error {
		return fn(tx)
	})

	// The callback can return ErrIgnoreRollBackError to explicitly specify
	// that the error should be ignored after rolling back.
	if errors.Is(err, models.ErrIgnoreRollBackError) {
		return nil
	}
	return errors.Wrap(err, "error executing transaction")
}

// TransactionReturnValue is a helper to write transactions that return a
// value alongside their error.
func TransactionReturnValue[T any](
	ctx context.Context,
	getter ExecutorGetter,
	fn func(tx Executor) (T, error),
) (T, error) {
	var value T
	err := getter.Transaction(ctx, func(tx Executor) error {
		var err error
		value, err = fn(tx)
		return err
	})
	return value, err
}
