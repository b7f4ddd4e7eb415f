package querier

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier выполняет запросы в транзакции из контекста, если она есть, иначе через пул.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return q.executor(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return q.executor(ctx).Query(ctx, sql, args...)
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return q.executor(ctx).QueryRow(ctx, sql, args...)
}

// InTx сообщает, выполняется ли ctx внутри транзакции tx.Manager.
func (q *Querier) InTx(ctx context.Context) bool {
	return q.getter.DefaultTrOrDB(ctx, nil) != nil
}

func (q *Querier) executor(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}
