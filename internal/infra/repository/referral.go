package repository

import (
	"context"
	"errors"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"

	"github.com/jackc/pgx/v5"
)

type ReferralStats struct {
	ReferredCount int64
	TotalEarned   wallet.Money
}

type ReferralRepository struct {
	db DBTX
}

func NewReferralRepository(db DBTX) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// Link attaches a new user to their referrer. A user can only ever be
// referred once; the first link wins and later attempts are no-ops.
func (r *ReferralRepository) Link(ctx context.Context, referrerID, referredID int64, code string) error {
	const q = `
		INSERT INTO referrals (referrer_id, referred_id, referral_code)
		VALUES ($1, $2, $3)
		ON CONFLICT (referred_id) DO NOTHING`
	if _, err := r.db.Exec(ctx, q, referrerID, referredID, code); err != nil {
		return wrapQueryErr("failed to link referral", err)
	}
	return nil
}

// Referrer returns the active referrer of a user, or 0 when the user
// joined without a referral.
func (r *ReferralRepository) Referrer(ctx context.Context, referredID int64) (int64, error) {
	const q = `SELECT referrer_id FROM referrals WHERE referred_id = $1 AND is_active`
	var referrerID int64
	err := r.db.QueryRow(ctx, q, referredID).Scan(&referrerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, wrapQueryErr("failed to find referrer", err)
	}
	return referrerID, nil
}

func (r *ReferralRepository) RecordEarning(ctx context.Context, referrerID, referredID int64, deposit, commission wallet.Money, percent int32) error {
	const q = `
		INSERT INTO referral_earnings (referrer_id, referred_id, deposit_amount, commission_amount, commission_percent)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(ctx, q, referrerID, referredID, deposit, commission, percent); err != nil {
		return wrapQueryErr("failed to record referral earning", err)
	}
	return nil
}

func (r *ReferralRepository) Stats(ctx context.Context, referrerID int64) (*ReferralStats, error) {
	const q = `
		SELECT
		    (SELECT COUNT(*) FROM referrals WHERE referrer_id = $1 AND is_active),
		    (SELECT COALESCE(SUM(commission_amount), 0) FROM referral_earnings WHERE referrer_id = $1)`
	var stats ReferralStats
	if err := r.db.QueryRow(ctx, q, referrerID).Scan(&stats.ReferredCount, &stats.TotalEarned); err != nil {
		return nil, wrapQueryErr("failed to read referral stats", err)
	}
	return &stats, nil
}
