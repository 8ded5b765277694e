package bootstrap

import (
	"github.com/ffytmanager-droid/otp-bot/internal/domain/catalog"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalog,
	),
)

func NewCatalog(cfg config.Config) (*catalog.Catalog, error) {
	return catalog.Load(cfg.Catalog.Path)
}
