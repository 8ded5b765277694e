package components

import (
	"github.com/ffytmanager-droid/otp-bot/internal/engine"
	"github.com/ffytmanager-droid/otp-bot/internal/handler"
	"github.com/ffytmanager-droid/otp-bot/internal/handler/api"
	"github.com/ffytmanager-droid/otp-bot/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(eng *engine.Engine) api.OrderEngine { return eng },
		api.NewAuthHandler,
		api.NewOrderHandler,
		api.NewWalletHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
