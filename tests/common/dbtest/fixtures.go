//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestUser inserts a ledger account with the given balance in paise.
// Existing rows keep their balance so fixtures stay idempotent.
func CreateTestUser(t *testing.T, db DBLike, userID, balancePaise int64) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO users (user_id, balance, channel_joined, terms_accepted, first_name)
		 VALUES ($1, $2, TRUE, TRUE, 'fixture')
		 ON CONFLICT (user_id) DO NOTHING`,
		userID, balancePaise)
	require.NoError(t, err)
}

func Balance(t *testing.T, db DBLike, userID int64) int64 {
	t.Helper()

	var balance int64
	err := db.QueryRow(context.Background(),
		"SELECT balance FROM users WHERE user_id = $1", userID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func OrderStatus(t *testing.T, db DBLike, orderID string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM orders WHERE order_id = $1", orderID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB truncates every table so each subtest starts from a clean slate.
func ResetDB(db DBLike) error {
	_, err := db.Exec(context.Background(), `
		TRUNCATE referral_earnings, referrals, balance_transfers, monthly_deposits,
		         gift_code_uses, gift_codes, topup_requests, active_orders, orders, users
		CASCADE`)
	return err
}
