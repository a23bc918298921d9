package link_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carelink/internal/config"
	"carelink/internal/repositories"
	"carelink/internal/services"
)

var Module = fx.Provide(
	provideLinkService, provideLinkRepo)

func provideLinkRepo(db *gorm.DB) repositories.LinkRepository {
	return repositories.NewLinkRepository(db)
}

func provideLinkService(linkRepo repositories.LinkRepository, accountRepo repositories.AccountRepository, cfg *config.Config) services.LinkServiceInterface {
	return services.NewLinkService(linkRepo, accountRepo, cfg.OtpTTL)
}
