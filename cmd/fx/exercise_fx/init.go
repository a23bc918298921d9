package exercise_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carelink/internal/repositories"
	"carelink/internal/services"
)

var Module = fx.Provide(
	provideExerciseService, provideExerciseRepo)

func provideExerciseRepo(db *gorm.DB) repositories.ExerciseRepository {
	return repositories.NewExerciseRepository(db)
}

func provideExerciseService(exerciseRepo repositories.ExerciseRepository, linkService services.LinkServiceInterface) services.ExerciseServiceInterface {
	return services.NewExerciseService(exerciseRepo, linkService)
}
