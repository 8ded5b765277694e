//go:build unit

package payment_test

import (
	"testing"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUPILink(t *testing.T) {
	tests := []struct {
		name string
		note string
		want string
	}{
		{
			name: "plain note passes through",
			note: "Deposit123",
			want: "upi://pay?pa=shop@upi&pn=Test+Shop&am=500&cu=INR&tn=Deposit123",
		},
		{
			name: "spaces and symbols are stripped",
			note: "Deposit #123 (user)",
			want: "upi://pay?pa=shop@upi&pn=Test+Shop&am=500&cu=INR&tn=Deposit123user",
		},
		{
			name: "dots become underscores",
			note: "user.42",
			want: "upi://pay?pa=shop@upi&pn=Test+Shop&am=500&cu=INR&tn=user_42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payment.BuildUPILink("shop@upi", "Test Shop", 50000, tt.note)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("fractional amounts keep two decimals", func(t *testing.T) {
		got := payment.BuildUPILink("shop@upi", "Shop", 12345, "n")
		assert.Contains(t, got, "am=123.45")
	})
}

func TestValidUTR(t *testing.T) {
	tests := []struct {
		name   string
		utr    string
		minLen int
		want   bool
	}{
		{name: "digits at minimum length", utr: "123456789012", minLen: 12, want: true},
		{name: "digits above minimum length", utr: "1234567890123456", minLen: 12, want: true},
		{name: "too short", utr: "12345678901", minLen: 12, want: false},
		{name: "contains letters", utr: "UTR123456789", minLen: 12, want: false},
		{name: "contains spaces", utr: "123456 789012", minLen: 12, want: false},
		{name: "empty", utr: "", minLen: 12, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payment.ValidUTR(tt.utr, tt.minLen))
		})
	}
}

func TestNewCode(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		code := payment.NewCode()
		assert.Len(t, code, 8)
		for _, r := range code {
			assert.True(t, (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'),
				"unexpected character %q in code %q", r, code)
		}
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestReferralCode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, id := range []int64{1, 35, 36, 123456789, 7777777777} {
			code := payment.ReferralCode(id)
			got, err := payment.ParseReferralCode(code)
			require.NoError(t, err)
			assert.Equal(t, id, got)
		}
	})

	t.Run("known encoding", func(t *testing.T) {
		assert.Equal(t, "REF10", payment.ReferralCode(36))
		assert.Equal(t, "REFZ", payment.ReferralCode(35))
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		got, err := payment.ParseReferralCode("  ref10 ")
		require.NoError(t, err)
		assert.Equal(t, int64(36), got)
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		for _, code := range []string{"", "REF", "10", "REF!!", "XYZ10", "REF0"} {
			_, err := payment.ParseReferralCode(code)
			assert.ErrorIs(t, err, payment.ErrBadReferralCode, "code %q", code)
		}
	})
}
