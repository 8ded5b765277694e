package components

import (
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/clock"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/commands"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewDepositCommands,
		commands.NewGiftCodeCommands,
		commands.NewTransferCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAdminQueries,
	),
)
