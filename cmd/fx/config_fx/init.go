package config_fx

import (
	"go.uber.org/fx"

	"carelink/internal/config"
)

var Module = fx.Provide(config.Load)
