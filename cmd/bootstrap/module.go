package bootstrap

import (
	"github.com/ffytmanager-droid/otp-bot/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	CatalogModule,
	EngineModule,
	components.UseCaseModule,
	components.HandlerModule,
)
