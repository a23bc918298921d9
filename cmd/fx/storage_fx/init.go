package storage_fx

import (
	"log"

	"go.uber.org/fx"

	"carelink/internal/config"
	"carelink/internal/infra"
)

var Module = fx.Provide(provideObjectStorage)

func provideObjectStorage(cfg *config.Config) infra.ObjectStorage {
	storage, err := infra.NewS3Storage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	return storage
}
