package mail_fx

import (
	"log"

	"go.uber.org/fx"

	"carelink/internal/config"
	"carelink/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config) services.IMailService {
	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize SMTP mail service: %v", err)
	}
	return mailService
}
