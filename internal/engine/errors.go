package engine

import "github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"

// Operation-level sentinels. Handlers map these onto HTTP responses; the
// precondition ones are user-visible notices, not server faults.
var (
	ErrServiceUnavailable  = errs.New("service or server not available")
	ErrInsufficientBalance = errs.New("insufficient balance")
	ErrOrderNotFound       = errs.New("order not found or already finished")
	ErrCancelLocked        = errs.New("cancel is locked for this order")
	ErrOTPAlreadyReceived  = errs.New("otp already received for this order")
	ErrNewNumberRefused    = errs.New("vendor refused a new number")
	ErrStoreFailure        = errs.New("persistence failure")
)

// Vendor rent failures. The gateway marks its errors with one of these so
// the purchase path can tell a sold-out service from a dead vendor.
var (
	ErrVendorNoNumbers   = errs.New("vendor has no numbers for this service")
	ErrVendorNoBalance   = errs.New("vendor account has no balance")
	ErrVendorUnavailable = errs.New("vendor temporarily unavailable")
	ErrVendorRejected    = errs.New("vendor rejected the request")
)
