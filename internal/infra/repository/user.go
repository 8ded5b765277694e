package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/infra"

	"github.com/jackc/pgx/v5"
)

type UserRow struct {
	UserID        int64
	Balance       wallet.Money
	JoinedDate    time.Time
	ChannelJoined bool
	TermsAccepted bool
	TotalOrders   int32
	FirstName     *string
	Username      *string
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure registers the user on first contact and refreshes the profile
// fields on every later one.
func (r *UserRepository) Ensure(ctx context.Context, userID int64, firstName, username string) error {
	const q = `
		INSERT INTO users (user_id, first_name, username)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		ON CONFLICT (user_id) DO UPDATE
		SET first_name = COALESCE(NULLIF($2, ''), users.first_name),
		    username   = COALESCE(NULLIF($3, ''), users.username),
		    last_checked = now()`
	if _, err := r.db.Exec(ctx, q, userID, firstName, username); err != nil {
		return wrapQueryErr("failed to ensure user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID int64) (*UserRow, error) {
	const q = `
		SELECT user_id, balance, joined_date, channel_joined, terms_accepted,
		       total_orders, first_name, username
		FROM users WHERE user_id = $1`
	var row UserRow
	err := r.db.QueryRow(ctx, q, userID).Scan(
		&row.UserID, &row.Balance, &row.JoinedDate, &row.ChannelJoined,
		&row.TermsAccepted, &row.TotalOrders, &row.FirstName, &row.Username,
	)
	if err != nil {
		return nil, wrapQueryErr("user not found", err)
	}
	return &row, nil
}

// AdjustBalance applies a signed delta. Debits carry a balance guard in
// the WHERE clause so the check and the write are one atomic statement;
// an unmatched row on a debit means insufficient funds.
func (r *UserRepository) AdjustBalance(ctx context.Context, userID int64, delta wallet.Money) error {
	if delta.IsNegative() {
		const q = `UPDATE users SET balance = balance + $2 WHERE user_id = $1 AND balance >= -$2`
		tag, err := r.db.Exec(ctx, q, userID, delta)
		if err != nil {
			return wrapQueryErr("failed to debit balance", err)
		}
		if tag.RowsAffected() == 0 {
			if _, err := r.FindByID(ctx, userID); err != nil {
				return err
			}
			return infra.WrapRepoErr("balance below debit amount", nil, infra.KindInsufficientFunds)
		}
		return nil
	}

	const q = `UPDATE users SET balance = balance + $2 WHERE user_id = $1`
	tag, err := r.db.Exec(ctx, q, userID, delta)
	if err != nil {
		return wrapQueryErr("failed to credit balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) SetAccess(ctx context.Context, userID int64, channelJoined, termsAccepted bool) error {
	const q = `UPDATE users SET channel_joined = $2, terms_accepted = $3, last_checked = now() WHERE user_id = $1`
	tag, err := r.db.Exec(ctx, q, userID, channelJoined, termsAccepted)
	if err != nil {
		return wrapQueryErr("failed to update access flags", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) IncrementOrders(ctx context.Context, userID int64) error {
	const q = `UPDATE users SET total_orders = total_orders + 1 WHERE user_id = $1`
	if _, err := r.db.Exec(ctx, q, userID); err != nil {
		return wrapQueryErr("failed to increment order count", err)
	}
	return nil
}

// MonthKey is the bucket key for monthly deposit totals.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

func (r *UserRepository) MonthlyDeposit(ctx context.Context, userID int64, monthYear string) (wallet.Money, error) {
	const q = `SELECT COALESCE(total_deposit, 0) FROM monthly_deposits WHERE user_id = $1 AND month_year = $2`
	var total wallet.Money
	err := r.db.QueryRow(ctx, q, userID, monthYear).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, wrapQueryErr("failed to read monthly deposit", err)
	}
	return total, nil
}

func (r *UserRepository) AddMonthlyDeposit(ctx context.Context, userID int64, monthYear string, amount wallet.Money) error {
	const q = `
		INSERT INTO monthly_deposits (user_id, month_year, total_deposit)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, month_year) DO UPDATE
		SET total_deposit = monthly_deposits.total_deposit + $3`
	if _, err := r.db.Exec(ctx, q, userID, monthYear, amount); err != nil {
		return wrapQueryErr("failed to add monthly deposit", err)
	}
	return nil
}
