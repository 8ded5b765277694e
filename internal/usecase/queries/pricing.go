package queries

import (
	"context"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/catalog"
	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/engine"
	"github.com/ffytmanager-droid/otp-bot/internal/infra/repository"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/clock"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DiscountPricer quotes purchase prices against the user's current-month
// deposit total and the catalog's discount tiers.
type DiscountPricer struct {
	db      *pgxpool.Pool
	catalog *catalog.Catalog
	clock   clock.Clock
}

var _ engine.Pricer = (*DiscountPricer)(nil)

func NewDiscountPricer(db *pgxpool.Pool, cat *catalog.Catalog, clk clock.Clock) *DiscountPricer {
	return &DiscountPricer{db: db, catalog: cat, clock: clk}
}

func (p *DiscountPricer) Quote(ctx context.Context, userID int64, base wallet.Money) (catalog.Quote, error) {
	monthly, err := repository.NewUserRepository(p.db).MonthlyDeposit(
		ctx, userID, repository.MonthKey(p.clock.Now()))
	if err != nil {
		return catalog.Quote{}, err
	}
	return p.catalog.QuotePrice(base, monthly), nil
}
