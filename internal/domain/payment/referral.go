package payment

import (
	"strconv"
	"strings"

	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
)

const referralPrefix = "REF"

var ErrBadReferralCode = errs.New("invalid referral code")

// ReferralCode derives a user's shareable code from their id. Derivation
// instead of storage means every user has a code without a signup step
// and resolution never needs a table scan.
func ReferralCode(userID int64) string {
	return referralPrefix + strings.ToUpper(strconv.FormatInt(userID, 36))
}

// ParseReferralCode resolves a code back to the referring user id.
func ParseReferralCode(code string) (int64, error) {
	raw, ok := strings.CutPrefix(strings.ToUpper(strings.TrimSpace(code)), referralPrefix)
	if !ok || raw == "" {
		return 0, ErrBadReferralCode
	}
	id, err := strconv.ParseInt(strings.ToLower(raw), 36, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadReferralCode
	}
	return id, nil
}
