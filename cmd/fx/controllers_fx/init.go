package controllers_fx

import (
	"go.uber.org/fx"

	"carelink/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewLinkController),
	fx.Provide(controllers.NewMessageController),
	fx.Provide(controllers.NewMediaController),
	fx.Provide(controllers.NewExerciseController),
	fx.Provide(controllers.NewJournalController))
