package repository

import (
	"context"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/order"
	"github.com/ffytmanager-droid/otp-bot/internal/infra"
)

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, d order.Draft) error {
	const q = `
		INSERT INTO orders (user_id, service, phone, price, order_id, activation_id,
		                    status, server_used, original_price, discount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, q,
		d.UserID, d.Service, d.Phone, d.Price, d.OrderID, d.ActivationID,
		order.StatusActive, d.ServerUsed, d.OriginalPrice, d.Discount)
	if err != nil {
		return wrapQueryErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) SetOTP(ctx context.Context, orderID, code string) error {
	const q = `UPDATE orders SET otp_code = $2 WHERE order_id = $1`
	tag, err := r.db.Exec(ctx, q, orderID, code)
	if err != nil {
		return wrapQueryErr("failed to store otp", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) SetStatus(ctx context.Context, orderID string, status order.Status) error {
	const q = `UPDATE orders SET status = $2 WHERE order_id = $1`
	tag, err := r.db.Exec(ctx, q, orderID, status)
	if err != nil {
		return wrapQueryErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) UpdateNumber(ctx context.Context, orderID, phone, activationID string) error {
	const q = `UPDATE orders SET phone = $2, activation_id = $3 WHERE order_id = $1`
	tag, err := r.db.Exec(ctx, q, orderID, phone, activationID)
	if err != nil {
		return wrapQueryErr("failed to update order number", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) FindByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	const q = `
		SELECT order_id, activation_id, user_id, service, phone, price,
		       original_price, discount, server_used, status, COALESCE(otp_code, ''), order_time
		FROM orders WHERE order_id = $1`
	var o order.Order
	err := r.db.QueryRow(ctx, q, orderID).Scan(
		&o.OrderID, &o.ActivationID, &o.UserID, &o.Service, &o.Phone, &o.Price,
		&o.OriginalPrice, &o.Discount, &o.ServerUsed, &o.Status, &o.OTPCode, &o.OrderTime,
	)
	if err != nil {
		return nil, wrapQueryErr("order not found", err)
	}
	return &o, nil
}

func (r *OrderRepository) HistoryByUser(ctx context.Context, userID int64, limit int32) ([]order.Order, error) {
	const q = `
		SELECT order_id, activation_id, user_id, service, phone, price,
		       original_price, discount, server_used, status, COALESCE(otp_code, ''), order_time
		FROM orders WHERE user_id = $1
		ORDER BY order_time DESC LIMIT $2`
	rows, err := r.db.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, wrapQueryErr("failed to list orders", err)
	}
	defer rows.Close()

	var out []order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(
			&o.OrderID, &o.ActivationID, &o.UserID, &o.Service, &o.Phone, &o.Price,
			&o.OriginalPrice, &o.Discount, &o.ServerUsed, &o.Status, &o.OTPCode, &o.OrderTime,
		); err != nil {
			return nil, wrapQueryErr("failed to scan order", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to iterate orders", err)
	}
	return out, nil
}
