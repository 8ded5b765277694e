package payment

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"regexp"
	"strings"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
)

var noteSanitizer = regexp.MustCompile(`[^A-Za-z0-9x_.]`)

// BuildUPILink assembles a upi:// deep link for a deposit. The note is
// restricted to characters UPI apps accept in transaction notes.
func BuildUPILink(upiID, payeeName string, amount wallet.Money, note string) string {
	cleanNote := noteSanitizer.ReplaceAllString(note, "")
	cleanNote = strings.ReplaceAll(cleanNote, ".", "_")

	return fmt.Sprintf(
		"upi://pay?pa=%s&pn=%s&am=%s&cu=INR&tn=%s",
		upiID, url.QueryEscape(payeeName), amount.Rupees(), cleanNote,
	)
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewCode returns an 8-character uppercase alphanumeric gift code.
func NewCode() string {
	var b strings.Builder
	b.Grow(8)
	for range 8 {
		b.WriteByte(codeAlphabet[rand.IntN(len(codeAlphabet))])
	}
	return b.String()
}

// ValidUTR checks a bank transaction reference: digits only, with a
// configurable minimum length.
func ValidUTR(utr string, minLen int) bool {
	if len(utr) < minLen {
		return false
	}
	for _, r := range utr {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
