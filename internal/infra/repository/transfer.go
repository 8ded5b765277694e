package repository

import (
	"context"
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
)

type TransferRow struct {
	ID           int64
	FromUserID   int64
	ToUserID     int64
	Amount       wallet.Money
	TransferTime time.Time
	Note         *string
}

type TransferRepository struct {
	db DBTX
}

func NewTransferRepository(db DBTX) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) Record(ctx context.Context, fromUserID, toUserID int64, amount wallet.Money, note string) (int64, error) {
	const q = `
		INSERT INTO balance_transfers (from_user_id, to_user_id, amount, note)
		VALUES ($1, $2, $3, NULLIF($4, '')) RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, q, fromUserID, toUserID, amount, note).Scan(&id); err != nil {
		return 0, wrapQueryErr("failed to record transfer", err)
	}
	return id, nil
}

func (r *TransferRepository) ListByUser(ctx context.Context, userID int64, limit int32) ([]TransferRow, error) {
	const q = `
		SELECT id, from_user_id, to_user_id, amount, transfer_time, note
		FROM balance_transfers
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY transfer_time DESC LIMIT $2`
	rows, err := r.db.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, wrapQueryErr("failed to list transfers", err)
	}
	defer rows.Close()

	var out []TransferRow
	for rows.Next() {
		var row TransferRow
		if err := rows.Scan(&row.ID, &row.FromUserID, &row.ToUserID, &row.Amount, &row.TransferTime, &row.Note); err != nil {
			return nil, wrapQueryErr("failed to scan transfer", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to iterate transfers", err)
	}
	return out, nil
}
