package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carelink/cmd/fx/account_fx"
	"carelink/cmd/fx/config_fx"
	"carelink/cmd/fx/controllers_fx"
	"carelink/cmd/fx/db_fx"
	"carelink/cmd/fx/exercise_fx"
	"carelink/cmd/fx/journal_fx"
	"carelink/cmd/fx/link_fx"
	"carelink/cmd/fx/mail_fx"
	"carelink/cmd/fx/media_fx"
	"carelink/cmd/fx/memcache_fx"
	"carelink/cmd/fx/message_fx"
	"carelink/cmd/fx/storage_fx"
	"carelink/cmd/fx/vision_fx"
	"carelink/internal/api/controllers"
	"carelink/internal/config"
	"carelink/internal/infra"
	"carelink/internal/services"
	"carelink/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		storage_fx.Module,
		vision_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,

		account_fx.Module,
		link_fx.Module,
		message_fx.Module,
		media_fx.Module,
		exercise_fx.Module,
		journal_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	accountService services.AccountServiceInterface,
	accountController *controllers.AccountController,
	linkController *controllers.LinkController,
	messageController *controllers.MessageController,
	mediaController *controllers.MediaController,
	exerciseController *controllers.ExerciseController,
	journalController *controllers.JournalController,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	authed := middleware.AuthMiddleware(accountService)

	auth := r.Group("/api/auth")
	auth.POST("/account", accountController.Register)
	auth.POST("/account/login", accountController.Login)
	auth.POST("/account/logout", authed, accountController.Logout)
	auth.GET("/account", authed, accountController.Profile)
	auth.DELETE("/account", authed, accountController.Delete)
	auth.POST("/account/reset_password", accountController.ForgotPassword)
	auth.POST("/account/reset_password/confirm", accountController.ResetPassword)

	link := r.Group("/api/link", authed)
	link.POST("/otp", middleware.RequireAccountType("primary"), linkController.GenerateOtp)
	link.PUT("/otp", middleware.RequireAccountType("support"), linkController.ValidateOtp)
	link.GET("/accounts", linkController.LinkedAccounts)

	messages := r.Group("/api/messages", authed)
	messages.PUT("", messageController.PostMessages)
	messages.GET("", messageController.ListMessages)

	media := r.Group("/api/media", authed)
	media.POST("", mediaController.Upload)
	media.GET("/urls", mediaController.SignedURLs)
	media.GET("/random", mediaController.RandomUnseen)
	media.GET("/search", mediaController.Search)

	exercises := r.Group("/api/exercises", authed)
	exercises.POST("", exerciseController.RecordAttempt)
	exercises.GET("/summary", exerciseController.Summary)

	journal := r.Group("/api/journal", authed)
	journal.POST("", journalController.CreateEntry)
	journal.GET("", journalController.ListEntries)

	return r
}
