package repository

import (
	"context"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/order"
)

type ActiveOrderRepository struct {
	db DBTX
}

func NewActiveOrderRepository(db DBTX) *ActiveOrderRepository {
	return &ActiveOrderRepository{db: db}
}

func (r *ActiveOrderRepository) Upsert(ctx context.Context, rec order.ActiveRecord) error {
	const q = `
		INSERT INTO active_orders (order_id, activation_id, user_id, phone, product, server_used, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (order_id) DO UPDATE
		SET activation_id = $2, phone = $4, expires_at = $7`
	_, err := r.db.Exec(ctx, q,
		rec.OrderID, rec.ActivationID, rec.UserID, rec.Phone, rec.Product, rec.ServerUsed, rec.ExpiresAt)
	if err != nil {
		return wrapQueryErr("failed to upsert active order", err)
	}
	return nil
}

func (r *ActiveOrderRepository) Delete(ctx context.Context, orderID string) error {
	const q = `DELETE FROM active_orders WHERE order_id = $1`
	if _, err := r.db.Exec(ctx, q, orderID); err != nil {
		return wrapQueryErr("failed to delete active order", err)
	}
	return nil
}

func (r *ActiveOrderRepository) ListByUser(ctx context.Context, userID int64) ([]order.ActiveRecord, error) {
	const q = `
		SELECT order_id, COALESCE(activation_id, ''), user_id, phone, product,
		       COALESCE(server_used, ''), expires_at
		FROM active_orders WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, userID)
}

// ListAll feeds restart reconciliation: anything still mirrored here when
// the process comes back up is an orphan to clean up.
func (r *ActiveOrderRepository) ListAll(ctx context.Context) ([]order.ActiveRecord, error) {
	const q = `
		SELECT order_id, COALESCE(activation_id, ''), user_id, phone, product,
		       COALESCE(server_used, ''), expires_at
		FROM active_orders ORDER BY created_at`
	return r.list(ctx, q)
}

func (r *ActiveOrderRepository) list(ctx context.Context, q string, args ...any) ([]order.ActiveRecord, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wrapQueryErr("failed to list active orders", err)
	}
	defer rows.Close()

	var out []order.ActiveRecord
	for rows.Next() {
		var rec order.ActiveRecord
		if err := rows.Scan(
			&rec.OrderID, &rec.ActivationID, &rec.UserID, &rec.Phone,
			&rec.Product, &rec.ServerUsed, &rec.ExpiresAt,
		); err != nil {
			return nil, wrapQueryErr("failed to scan active order", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to iterate active orders", err)
	}
	return out, nil
}
