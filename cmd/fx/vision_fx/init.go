package vision_fx

import (
	"log"
	"strings"

	"go.uber.org/fx"

	"carelink/internal/config"
	"carelink/pkg/utils"
)

var Module = fx.Provide(provideVisionClient)

func provideVisionClient(cfg *config.Config) utils.VisionClientInterface {
	apiKey := cfg.GeminiAPIKey
	model := cfg.GeminiModel
	if strings.EqualFold(cfg.VisionProvider, "openai") {
		apiKey = cfg.OpenAIAPIKey
		model = cfg.OpenAIModel
	}

	client, err := utils.NewVisionClient(cfg.VisionProvider, apiKey, model)
	if err != nil {
		log.Fatalf("Failed to initialize vision client: %v", err)
	}
	return client
}
