package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carelink/internal/config"
	"carelink/internal/repositories"
	"carelink/internal/services"
	mem "carelink/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	linkRepo repositories.LinkRepository,
	mailService services.IMailService,
	memcache mem.ResetTokenStore,
	cfg *config.Config,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, linkRepo, mailService, memcache, cfg.ResetTokenTTL)
}
