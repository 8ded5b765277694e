//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "bare 10-digit number", raw: "9876543210", want: "9876543210"},
		{name: "plus country code prefix", raw: "+919876543210", want: "9876543210"},
		{name: "bare country code prefix", raw: "919876543210", want: "9876543210"},
		{name: "surrounding whitespace", raw: "  +919876543210 ", want: "9876543210"},
		{name: "10-digit number starting with 91", raw: "9198765432", want: "9198765432"},
		{name: "too short", raw: "987654321", errIs: order.ErrInvalidPhone},
		{name: "too long without prefix", raw: "98765432101", errIs: order.ErrInvalidPhone},
		{name: "non-digit characters", raw: "98765a3210", errIs: order.ErrInvalidPhone},
		{name: "empty", raw: "", errIs: order.ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.NormalizePhone(tt.raw)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewOrderID(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	id := order.NewOrderID(now)
	assert.True(t, strings.HasPrefix(id, "ORD"), "id %q should start with ORD", id)
	assert.Len(t, id, 3+13+5)
	assert.Contains(t, id, "1718454600000")

	t.Run("suffix makes ids unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 50 {
			seen[order.NewOrderID(now)] = struct{}{}
		}
		assert.Greater(t, len(seen), 1)
	})
}
