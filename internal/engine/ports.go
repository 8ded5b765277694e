package engine

import (
	"context"
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/catalog"
	"github.com/ffytmanager-droid/otp-bot/internal/domain/order"
	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
)

// Rental is a successfully rented number.
type Rental struct {
	PhoneNumber  string
	ActivationID string
}

type PollStatus string

const (
	PollWaiting   PollStatus = "waiting"
	PollDelivered PollStatus = "delivered"
	PollCancelled PollStatus = "cancelled"
	PollNotFound  PollStatus = "not_found"
	PollError     PollStatus = "error"
)

// PollResult is the classified outcome of one vendor status check. Unknown
// vendor payloads classify as PollError so the poll loop never dies on them.
type PollResult struct {
	Status PollStatus
	Code   string
}

// VendorGateway wraps the number vendor's four operations. RentNumber
// failures are sentinel-marked (ErrVendorNoNumbers etc.); Cancel and
// RequestNew are best-effort and report only whether the vendor confirmed.
type VendorGateway interface {
	RentNumber(ctx context.Context, serviceCode, country string) (*Rental, error)
	Poll(ctx context.Context, activationID string) PollResult
	Cancel(ctx context.Context, activationID string) bool
	RequestNew(ctx context.Context, activationID string) bool
}

// LedgerStore is the durable side of the order lifecycle: balance
// adjustments, order records and the active-order mirror.
type LedgerStore interface {
	AdjustBalance(ctx context.Context, userID int64, delta wallet.Money) error
	CreateOrder(ctx context.Context, draft order.Draft) error
	SetOrderOTP(ctx context.Context, orderID, code string) error
	SetOrderStatus(ctx context.Context, orderID string, status order.Status) error
	UpdateOrderNumber(ctx context.Context, orderID, phone, activationID string) error
	UpsertActiveOrder(ctx context.Context, rec order.ActiveRecord) error
	DeleteActiveOrder(ctx context.Context, orderID string) error
}

// Pricer quotes the discounted price a user actually pays.
type Pricer interface {
	Quote(ctx context.Context, userID int64, base wallet.Money) (catalog.Quote, error)
}

// OrderView is a render-ready snapshot of one job.
type OrderView struct {
	OrderID  string
	UserID   int64
	ChatID   int64
	Phone    string
	Service  string
	Price    wallet.Money
	OTPCount int
	LastOTP  string
}

// KeyboardState tells the frontend which actions to offer and which
// countdown to draw.
type KeyboardState struct {
	CancelLockRemaining time.Duration
	CancelEnabled       bool
	WaitingRemaining    time.Duration
	ServiceID           string
	ServerIndex         int
}

// Presenter renders engine state for the end user. Render failures never
// roll back a committed transition; the engine logs and moves on.
type Presenter interface {
	RenderPurchaseProgress(ctx context.Context, userID, chatID int64, service string, price wallet.Money) error
	RenderOrderActive(ctx context.Context, view OrderView, kb KeyboardState) error
	RenderOTPDelivered(ctx context.Context, view OrderView, code string) error
	RenderTerminal(ctx context.Context, view OrderView, outcome order.TerminalOutcome) error
}

// Notifier is the fire-and-forget side channel. Implementations swallow
// their own failures.
type Notifier interface {
	OrderPlaced(ctx context.Context, view OrderView)
	OTPReceived(ctx context.Context, view OrderView, code string)
	OrderCancelled(ctx context.Context, view OrderView, reason string)
	NewNumberRequested(ctx context.Context, view OrderView, newPhone string)
}
