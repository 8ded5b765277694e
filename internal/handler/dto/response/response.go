package response

import (
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/order"
	"github.com/ffytmanager-droid/otp-bot/internal/engine"
	"github.com/ffytmanager-droid/otp-bot/internal/infra/repository"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type OrderResponse struct {
	OrderID  string `json:"order_id"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Price    string `json:"price"`
	OTPCount int    `json:"otp_count"`
	LastOTP  string `json:"last_otp,omitempty"`
}

func NewOrderResponse(view engine.OrderView) OrderResponse {
	return OrderResponse{
		OrderID:  view.OrderID,
		Phone:    view.Phone,
		Service:  view.Service,
		Price:    view.Price.String(),
		OTPCount: view.OTPCount,
		LastOTP:  view.LastOTP,
	}
}

type CheckResponse struct {
	Status string `json:"status"`
	Code   string `json:"code,omitempty"`
}

type OrderHistoryItem struct {
	OrderID   string    `json:"order_id"`
	Service   string    `json:"service"`
	Phone     string    `json:"phone"`
	Price     string    `json:"price"`
	Status    string    `json:"status"`
	OTPCode   string    `json:"otp_code,omitempty"`
	OrderTime time.Time `json:"order_time"`
}

func NewOrderHistory(orders []order.Order) []OrderHistoryItem {
	out := make([]OrderHistoryItem, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderHistoryItem{
			OrderID:   o.OrderID,
			Service:   o.Service,
			Phone:     o.Phone,
			Price:     o.Price.String(),
			Status:    o.Status.String(),
			OTPCode:   o.OTPCode,
			OrderTime: o.OrderTime,
		})
	}
	return out
}

type ActiveOrderItem struct {
	OrderID   string    `json:"order_id"`
	Phone     string    `json:"phone"`
	Product   string    `json:"product"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewActiveOrders(records []order.ActiveRecord) []ActiveOrderItem {
	out := make([]ActiveOrderItem, 0, len(records))
	for _, rec := range records {
		out = append(out, ActiveOrderItem{
			OrderID:   rec.OrderID,
			Phone:     rec.Phone,
			Product:   rec.Product,
			ExpiresAt: rec.ExpiresAt,
		})
	}
	return out
}

type ProfileResponse struct {
	UserID          int64     `json:"user_id"`
	Balance         string    `json:"balance"`
	JoinedDate      time.Time `json:"joined_date"`
	TotalOrders     int32     `json:"total_orders"`
	ChannelJoined   bool      `json:"channel_joined"`
	TermsAccepted   bool      `json:"terms_accepted"`
	MonthlyDeposit  string    `json:"monthly_deposit"`
	DiscountPercent int64     `json:"discount_percent"`
	ReferralCode    string    `json:"referral_code"`
	ReferredCount   int64     `json:"referred_count"`
	ReferralEarned  string    `json:"referral_earned"`
}

func NewProfileResponse(p *queries.ProfileView) ProfileResponse {
	return ProfileResponse{
		UserID:          p.UserID,
		Balance:         p.Balance.String(),
		JoinedDate:      p.JoinedDate,
		TotalOrders:     p.TotalOrders,
		ChannelJoined:   p.ChannelJoined,
		TermsAccepted:   p.TermsAccepted,
		MonthlyDeposit:  p.MonthlyDeposit.String(),
		DiscountPercent: p.DiscountPercent,
		ReferralCode:    p.ReferralCode,
		ReferredCount:   p.ReferredCount,
		ReferralEarned:  p.ReferralEarned.String(),
	}
}

type DepositResponse struct {
	RequestID int64  `json:"request_id"`
	UPILink   string `json:"upi_link"`
}

type DepositItem struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Amount      string    `json:"amount"`
	UTR         string    `json:"utr"`
	Status      string    `json:"status"`
	RequestTime time.Time `json:"request_time"`
}

func NewDepositItems(rows []repository.DepositRow) []DepositItem {
	out := make([]DepositItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, DepositItem{
			ID:          row.ID,
			UserID:      row.UserID,
			Amount:      row.Amount.String(),
			UTR:         row.UTR,
			Status:      string(row.Status),
			RequestTime: row.RequestTime,
		})
	}
	return out
}

type GiftCodeResponse struct {
	Code string `json:"code"`
}

type RedeemResponse struct {
	Credited string `json:"credited"`
}

type TransferResponse struct {
	TransferID int64 `json:"transfer_id"`
}
