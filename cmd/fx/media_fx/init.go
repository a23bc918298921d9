package media_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carelink/internal/config"
	"carelink/internal/infra"
	"carelink/internal/repositories"
	"carelink/internal/services"
	"carelink/pkg/utils"
)

var Module = fx.Provide(
	provideMediaService, provideUploadRepo)

func provideUploadRepo(db *gorm.DB) repositories.UploadRepository {
	return repositories.NewUploadRepository(db)
}

func provideMediaService(
	uploadRepo repositories.UploadRepository,
	linkService services.LinkServiceInterface,
	storage infra.ObjectStorage,
	vision utils.VisionClientInterface,
	cfg *config.Config,
) services.MediaServiceInterface {
	return services.NewMediaService(uploadRepo, linkService, storage, vision, cfg.SignedURLTTL)
}
