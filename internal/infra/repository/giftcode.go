package repository

import (
	"context"
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
)

type GiftCodeRow struct {
	Code       string
	Amount     wallet.Money
	CreatedBy  int64
	CreatedAt  time.Time
	MaxUses    int32
	ExpiresAt  *time.Time
	MinDeposit wallet.Money
	UsedCount  int32
}

type GiftCodeRepository struct {
	db DBTX
}

func NewGiftCodeRepository(db DBTX) *GiftCodeRepository {
	return &GiftCodeRepository{db: db}
}

func (r *GiftCodeRepository) Create(ctx context.Context, code string, amount wallet.Money, createdBy int64, maxUses int32, expiresAt *time.Time, minDeposit wallet.Money) error {
	const q = `
		INSERT INTO gift_codes (code, amount, created_by, max_uses, expires_at, min_deposit)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.Exec(ctx, q, code, amount, createdBy, maxUses, expiresAt, minDeposit); err != nil {
		return wrapQueryErr("failed to create gift code", err)
	}
	return nil
}

func (r *GiftCodeRepository) Find(ctx context.Context, code string) (*GiftCodeRow, error) {
	const q = `
		SELECT gc.code, gc.amount, COALESCE(gc.created_by, 0), gc.created_at,
		       gc.max_uses, gc.expires_at, gc.min_deposit,
		       (SELECT COUNT(*) FROM gift_code_uses gcu WHERE gcu.code = gc.code)
		FROM gift_codes gc WHERE gc.code = $1`
	var row GiftCodeRow
	err := r.db.QueryRow(ctx, q, code).Scan(
		&row.Code, &row.Amount, &row.CreatedBy, &row.CreatedAt,
		&row.MaxUses, &row.ExpiresAt, &row.MinDeposit, &row.UsedCount)
	if err != nil {
		return nil, wrapQueryErr("gift code not found", err)
	}
	return &row, nil
}

// RecordUse claims one redemption slot. The (code, user_id) unique
// constraint rejects a second redemption by the same user.
func (r *GiftCodeRepository) RecordUse(ctx context.Context, code string, userID int64) error {
	const q = `INSERT INTO gift_code_uses (code, user_id) VALUES ($1, $2)`
	if _, err := r.db.Exec(ctx, q, code, userID); err != nil {
		return wrapQueryErr("failed to record gift code use", err)
	}
	return nil
}
