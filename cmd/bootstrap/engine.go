package bootstrap

import (
	"context"
	"log/slog"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/catalog"
	"github.com/ffytmanager-droid/otp-bot/internal/engine"
	"github.com/ffytmanager-droid/otp-bot/internal/infra/firex"
	"github.com/ffytmanager-droid/otp-bot/internal/infra/notify"
	"github.com/ffytmanager-droid/otp-bot/internal/infra/present"
	"github.com/ffytmanager-droid/otp-bot/internal/infra/repository"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/clock"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/config"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/commands"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/queries"

	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	fx.Provide(
		fx.Annotate(
			firex.NewClient,
			fx.As(new(engine.VendorGateway)),
		),
		fx.Annotate(
			repository.NewLedger,
			fx.As(new(engine.LedgerStore)),
		),
		fx.Annotate(
			queries.NewDiscountPricer,
			fx.As(new(engine.Pricer)),
		),
		fx.Annotate(
			present.NewPushPresenter,
			fx.As(new(engine.Presenter)),
		),
		fx.Annotate(
			notify.NewTelegramNotifier,
			fx.As(new(engine.Notifier)),
			fx.As(new(commands.AdminNotifier)),
		),
		NewEngine,
	),
)

func NewEngine(
	lc fx.Lifecycle,
	cfg config.EngineConfig,
	cat *catalog.Catalog,
	vendor engine.VendorGateway,
	store engine.LedgerStore,
	pricer engine.Pricer,
	presenter engine.Presenter,
	notifier engine.Notifier,
	clk clock.Clock,
	logger *slog.Logger,
) *engine.Engine {
	eng := engine.NewEngine(cfg, cat, vendor, store, pricer, presenter, notifier, clk, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			eng.Close()
			return nil
		},
	})

	return eng
}
