package catalog

import "github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"

// Quote is a discounted price for one purchase.
type Quote struct {
	FinalPrice wallet.Money
	Discount   wallet.Money
	Percent    int64
}

// minFinalPrice keeps a discounted price from collapsing to zero.
const minFinalPrice = wallet.Money(100) // ₹1

// QuotePrice applies the highest discount tier the user's monthly deposits
// qualify for. Tiers are sorted highest-first at load time.
func (c *Catalog) QuotePrice(base wallet.Money, monthlyDeposit wallet.Money) Quote {
	if !c.DiscountEnabled {
		return Quote{FinalPrice: base}
	}

	for _, tier := range c.DiscountTiers {
		if monthlyDeposit.Paise() < tier.DepositPaise {
			continue
		}
		discount := wallet.Money(base.Paise() * tier.Percent / 100)
		final := base - discount
		if final < minFinalPrice {
			final = minFinalPrice
			discount = base - final
		}
		return Quote{FinalPrice: final, Discount: discount, Percent: tier.Percent}
	}

	return Quote{FinalPrice: base}
}

// CurrentPercent reports the user's standing discount, for profile display.
func (c *Catalog) CurrentPercent(monthlyDeposit wallet.Money) int64 {
	if !c.DiscountEnabled {
		return 0
	}
	for _, tier := range c.DiscountTiers {
		if monthlyDeposit.Paise() >= tier.DepositPaise {
			return tier.Percent
		}
	}
	return 0
}
