package bootstrap

import (
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		config.LoadAdminConfig,
		// Section extractors so constructors depend only on the piece
		// of configuration they actually read.
		func(cfg config.Config) config.EngineConfig { return cfg.Engine },
		func(cfg config.Config) config.FirexConfig { return cfg.Firex },
		func(cfg config.Config) config.NotifyConfig { return cfg.Notify },
		func(cfg config.Config) config.PresentConfig { return cfg.Present },
		func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
	),
)
