package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/geobot/pkg/log"
)

type TelegramConfig struct {
	Token string `env:"GEOBOT_TELEGRAM_TOKEN,required,notEmpty"`

	// When zero the bot answers everyone, like the original public demo.
	OwnerID int64 `env:"GEOBOT_TELEGRAM_OWNER_ID" envDefault:"0"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}
