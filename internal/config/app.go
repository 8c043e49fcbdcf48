package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/geobot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"GEOBOT_RUNTIME_PATH" envDefault:".geobot"`

	// Transport Flags
	EnableTelegram bool `env:"GEOBOT_ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"GEOBOT_ENABLE_CLI" envDefault:"true"`

	// Short-term memory
	SessionTTL  time.Duration `env:"GEOBOT_SESSION_TTL" envDefault:"600s"`
	MaxMessages int           `env:"GEOBOT_MAX_MESSAGES" envDefault:"10"`

	// Append-only conversation archive. Sessions themselves are never
	// persisted; a restart always forgets all context.
	EnableTranscript bool `env:"GEOBOT_TRANSCRIPT" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "geobot.db")
}
