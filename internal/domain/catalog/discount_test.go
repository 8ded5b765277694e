//go:build unit

package catalog_test

import (
	"testing"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/catalog"
	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tieredCatalogJSON = `{
	"services": [
		{"id": "tg", "name": "Telegram", "servers": [
			{"name": "Server 1", "vendor_service": "tg", "vendor_country": "22", "price_paise": 2500}
		]}
	],
	"discount_enabled": true,
	"discount_tiers": [
		{"deposit_paise": 50000, "percent": 3},
		{"deposit_paise": 500000, "percent": 8},
		{"deposit_paise": 150000, "percent": 5}
	]
}`

func mustParse(t *testing.T, data string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(data))
	require.NoError(t, err)
	return c
}

func TestQuotePrice(t *testing.T) {
	c := mustParse(t, tieredCatalogJSON)

	tests := []struct {
		name      string
		base      wallet.Money
		monthly   wallet.Money
		wantFinal wallet.Money
		wantOff   wallet.Money
		wantPct   int64
	}{
		{name: "below first tier", base: 2500, monthly: 49999, wantFinal: 2500},
		{name: "first tier exactly", base: 2500, monthly: 50000, wantFinal: 2425, wantOff: 75, wantPct: 3},
		{name: "middle tier", base: 2500, monthly: 200000, wantFinal: 2375, wantOff: 125, wantPct: 5},
		{name: "top tier", base: 2500, monthly: 600000, wantFinal: 2300, wantOff: 200, wantPct: 8},
		{name: "discount truncates toward zero", base: 333, monthly: 50000, wantFinal: 324, wantOff: 9, wantPct: 3},
		{name: "floor keeps a cheap price above one rupee", base: 105, monthly: 600000, wantFinal: 100, wantOff: 5, wantPct: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := c.QuotePrice(tt.base, tt.monthly)
			assert.Equal(t, tt.wantFinal, q.FinalPrice)
			assert.Equal(t, tt.wantOff, q.Discount)
			assert.Equal(t, tt.wantPct, q.Percent)
		})
	}

	t.Run("disabled catalog quotes the base price", func(t *testing.T) {
		disabled := mustParse(t, `{"services": [], "discount_enabled": false,
			"discount_tiers": [{"deposit_paise": 1, "percent": 50}]}`)

		q := disabled.QuotePrice(2500, 1000000)
		assert.Equal(t, wallet.Money(2500), q.FinalPrice)
		assert.Zero(t, q.Discount)
		assert.Zero(t, q.Percent)
	})
}

func TestCurrentPercent(t *testing.T) {
	c := mustParse(t, tieredCatalogJSON)

	assert.Equal(t, int64(0), c.CurrentPercent(0))
	assert.Equal(t, int64(3), c.CurrentPercent(50000))
	assert.Equal(t, int64(5), c.CurrentPercent(499999))
	assert.Equal(t, int64(8), c.CurrentPercent(500000))
}

func TestResolve(t *testing.T) {
	c := mustParse(t, tieredCatalogJSON)

	svc, srv, err := c.Resolve("tg", 0)
	require.NoError(t, err)
	assert.Equal(t, "Telegram", svc.Name)
	assert.Equal(t, wallet.Money(2500), srv.Price())

	_, _, err = c.Resolve("wa", 0)
	assert.ErrorIs(t, err, catalog.ErrServiceNotFound)

	_, _, err = c.Resolve("tg", 1)
	assert.ErrorIs(t, err, catalog.ErrServerNotFound)
}
