package repository

import (
	"context"
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/infra"
)

type DepositStatus string

const (
	DepositPending  DepositStatus = "pending"
	DepositApproved DepositStatus = "approved"
	DepositRejected DepositStatus = "rejected"
)

type DepositRow struct {
	ID          int64
	UserID      int64
	Amount      wallet.Money
	UTR         string
	Status      DepositStatus
	RequestTime time.Time
}

type DepositRepository struct {
	db DBTX
}

func NewDepositRepository(db DBTX) *DepositRepository {
	return &DepositRepository{db: db}
}

// Create files a top-up claim. The unique constraint on UTR is the
// defense against the same bank receipt being submitted twice.
func (r *DepositRepository) Create(ctx context.Context, userID int64, amount wallet.Money, utr string) (int64, error) {
	const q = `
		INSERT INTO topup_requests (user_id, amount, utr, status)
		VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, q, userID, amount, utr, DepositPending).Scan(&id); err != nil {
		return 0, wrapQueryErr("failed to create topup request", err)
	}
	return id, nil
}

func (r *DepositRepository) FindByID(ctx context.Context, id int64) (*DepositRow, error) {
	const q = `
		SELECT id, user_id, amount, utr, status, request_time
		FROM topup_requests WHERE id = $1`
	var row DepositRow
	err := r.db.QueryRow(ctx, q, id).Scan(
		&row.ID, &row.UserID, &row.Amount, &row.UTR, &row.Status, &row.RequestTime)
	if err != nil {
		return nil, wrapQueryErr("topup request not found", err)
	}
	return &row, nil
}

// Resolve flips a pending request to its final status. The status guard
// in the WHERE clause makes concurrent admin decisions one-shot.
func (r *DepositRepository) Resolve(ctx context.Context, id int64, status DepositStatus) error {
	const q = `UPDATE topup_requests SET status = $2 WHERE id = $1 AND status = $3`
	tag, err := r.db.Exec(ctx, q, id, status, DepositPending)
	if err != nil {
		return wrapQueryErr("failed to resolve topup request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("topup request not pending", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DepositRepository) ListPending(ctx context.Context) ([]DepositRow, error) {
	const q = `
		SELECT id, user_id, amount, utr, status, request_time
		FROM topup_requests WHERE status = $1 ORDER BY request_time`
	return r.list(ctx, q, DepositPending)
}

func (r *DepositRepository) ListByUser(ctx context.Context, userID int64, limit int32) ([]DepositRow, error) {
	const q = `
		SELECT id, user_id, amount, utr, status, request_time
		FROM topup_requests WHERE user_id = $1 ORDER BY request_time DESC LIMIT $2`
	return r.list(ctx, q, userID, limit)
}

func (r *DepositRepository) list(ctx context.Context, q string, args ...any) ([]DepositRow, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wrapQueryErr("failed to list topup requests", err)
	}
	defer rows.Close()

	var out []DepositRow
	for rows.Next() {
		var row DepositRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.Amount, &row.UTR, &row.Status, &row.RequestTime); err != nil {
			return nil, wrapQueryErr("failed to scan topup request", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to iterate topup requests", err)
	}
	return out, nil
}
