package firex

import (
	"strings"

	"github.com/ffytmanager-droid/otp-bot/internal/engine"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
)

// The vendor answers every call with a plain-text, colon-delimited status
// line. Parsing is total: unrecognized payloads classify as errors instead
// of failing, because the poll loop has to survive anything the vendor
// sends.

func parseRent(body string) (*engine.Rental, error) {
	switch {
	case strings.HasPrefix(body, "ACCESS_"):
		parts := strings.Split(body, ":")
		if len(parts) < 3 {
			return nil, errs.Mark(errs.New("malformed rent response: "+body), engine.ErrVendorRejected)
		}
		return &engine.Rental{ActivationID: parts[1], PhoneNumber: parts[2]}, nil
	case body == "NO_NUMBERS":
		return nil, engine.ErrVendorNoNumbers
	case body == "NO_BALANCE":
		return nil, engine.ErrVendorNoBalance
	default:
		return nil, errs.Mark(errs.New("vendor refused rent: "+body), engine.ErrVendorRejected)
	}
}

func parseStatus(body string) engine.PollResult {
	switch {
	case strings.HasPrefix(body, "STATUS_WAIT_CODE"):
		return engine.PollResult{Status: engine.PollWaiting}
	case strings.HasPrefix(body, "STATUS_OK"):
		parts := strings.Split(body, ":")
		if len(parts) < 2 || parts[1] == "" {
			return engine.PollResult{Status: engine.PollError}
		}
		return engine.PollResult{Status: engine.PollDelivered, Code: parts[1]}
	case strings.HasPrefix(body, "STATUS_CANCEL"):
		return engine.PollResult{Status: engine.PollCancelled}
	case body == "NO_ACTIVATION":
		return engine.PollResult{Status: engine.PollNotFound}
	default:
		return engine.PollResult{Status: engine.PollError}
	}
}

func cancelConfirmed(body string) bool {
	return body == "ACCESS_CANCEL" || body == "ACCESS_READY" || strings.Contains(body, "CANCEL")
}

func retryConfirmed(body string) bool {
	return body == "ACCESS_RETRY_GET"
}
