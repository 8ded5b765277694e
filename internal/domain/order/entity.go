package order

import (
	"errors"
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
)

var (
	ErrInvalidPhone = errors.New("invalid phone number format")
)

// Order is the durable record of one number rental. It is created at
// purchase time and never deleted; terminal transitions only flip status.
type Order struct {
	OrderID       string
	ActivationID  string
	UserID        int64
	Service       string
	Phone         string
	Price         wallet.Money
	OriginalPrice wallet.Money
	Discount      wallet.Money
	ServerUsed    string
	Status        Status
	OTPCode       string
	OrderTime     time.Time
}

// ActiveRecord is the lightweight durable mirror of an in-flight job, kept
// for crash-recovery reconciliation and the "my active orders" listing.
type ActiveRecord struct {
	OrderID      string
	ActivationID string
	UserID       int64
	Phone        string
	Product      string
	ServerUsed   string
	ExpiresAt    time.Time
}

// Draft carries everything the ledger needs to persist a fresh order.
type Draft struct {
	OrderID       string
	ActivationID  string
	UserID        int64
	Service       string
	Phone         string
	Price         wallet.Money
	OriginalPrice wallet.Money
	Discount      wallet.Money
	ServerUsed    string
	ExpiresAt     time.Time
}
