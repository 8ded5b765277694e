package order

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// TerminalOutcome classifies how an order session ended.
type TerminalOutcome string

const (
	OutcomeSettled         TerminalOutcome = "settled"
	OutcomeExpiredRefunded TerminalOutcome = "expired_refunded"
	OutcomeUserCancelled   TerminalOutcome = "user_cancelled"
	OutcomeVendorCancelled TerminalOutcome = "vendor_cancelled"
)
