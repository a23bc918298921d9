package message_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carelink/internal/repositories"
	"carelink/internal/services"
)

var Module = fx.Provide(
	provideMessageService, provideMessageRepo)

func provideMessageRepo(db *gorm.DB) repositories.MessageRepository {
	return repositories.NewMessageRepository(db)
}

func provideMessageService(messageRepo repositories.MessageRepository, linkService services.LinkServiceInterface) services.MessageServiceInterface {
	return services.NewMessageService(messageRepo, linkService)
}
