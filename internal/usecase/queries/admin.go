package queries

import (
	"context"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/order"
	"github.com/ffytmanager-droid/otp-bot/internal/infra/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminQueries interface {
	PendingDeposits(ctx context.Context) ([]repository.DepositRow, error)
	AllActiveOrders(ctx context.Context) ([]order.ActiveRecord, error)
}

type adminQueriesImpl struct {
	db *pgxpool.Pool
}

func NewAdminQueries(db *pgxpool.Pool) AdminQueries {
	return &adminQueriesImpl{db: db}
}

func (q *adminQueriesImpl) PendingDeposits(ctx context.Context) ([]repository.DepositRow, error) {
	return repository.NewDepositRepository(q.db).ListPending(ctx)
}

func (q *adminQueriesImpl) AllActiveOrders(ctx context.Context) ([]order.ActiveRecord, error) {
	return repository.NewActiveOrderRepository(q.db).ListAll(ctx)
}
