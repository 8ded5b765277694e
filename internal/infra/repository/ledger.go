package repository

import (
	"context"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/order"
	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/engine"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ledger is the durable face of the order lifecycle. Single-statement
// operations run straight on the pool; order creation groups its writes
// in a transaction so a half-created order can never survive a crash.
type Ledger struct {
	pool *pgxpool.Pool
}

var _ engine.LedgerStore = (*Ledger)(nil)

func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool}
}

func (l *Ledger) AdjustBalance(ctx context.Context, userID int64, delta wallet.Money) error {
	return NewUserRepository(l.pool).AdjustBalance(ctx, userID, delta)
}

func (l *Ledger) CreateOrder(ctx context.Context, draft order.Draft) error {
	_, err := shared.RunInTx(ctx, l.pool, func(tx pgx.Tx) (struct{}, error) {
		if err := NewOrderRepository(tx).Create(ctx, draft); err != nil {
			return struct{}{}, err
		}
		if err := NewUserRepository(tx).IncrementOrders(ctx, draft.UserID); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	return err
}

func (l *Ledger) SetOrderOTP(ctx context.Context, orderID, code string) error {
	return NewOrderRepository(l.pool).SetOTP(ctx, orderID, code)
}

func (l *Ledger) SetOrderStatus(ctx context.Context, orderID string, status order.Status) error {
	return NewOrderRepository(l.pool).SetStatus(ctx, orderID, status)
}

func (l *Ledger) UpdateOrderNumber(ctx context.Context, orderID, phone, activationID string) error {
	return NewOrderRepository(l.pool).UpdateNumber(ctx, orderID, phone, activationID)
}

func (l *Ledger) UpsertActiveOrder(ctx context.Context, rec order.ActiveRecord) error {
	return NewActiveOrderRepository(l.pool).Upsert(ctx, rec)
}

func (l *Ledger) DeleteActiveOrder(ctx context.Context, orderID string) error {
	return NewActiveOrderRepository(l.pool).Delete(ctx, orderID)
}
