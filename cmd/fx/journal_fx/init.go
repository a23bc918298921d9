package journal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carelink/internal/repositories"
	"carelink/internal/services"
)

var Module = fx.Provide(
	provideJournalService, provideJournalRepo)

func provideJournalRepo(db *gorm.DB) repositories.JournalRepository {
	return repositories.NewJournalRepository(db)
}

func provideJournalService(journalRepo repositories.JournalRepository, linkService services.LinkServiceInterface) services.JournalServiceInterface {
	return services.NewJournalService(journalRepo, linkService)
}
