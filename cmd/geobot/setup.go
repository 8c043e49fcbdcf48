package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/geobot/internal/config"
	"github.com/sandevgo/geobot/internal/core"
	"github.com/sandevgo/geobot/internal/service/command"
	"github.com/sandevgo/geobot/internal/service/dialogue"
	"github.com/sandevgo/geobot/internal/service/knowledge"
	"github.com/sandevgo/geobot/internal/service/session"
	"github.com/sandevgo/geobot/internal/storage/sqlite"
	"github.com/sandevgo/geobot/internal/transport/cli"
	"github.com/sandevgo/geobot/internal/transport/telegram"
	"github.com/sandevgo/geobot/pkg/log"
	"github.com/sandevgo/geobot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Optional transcript archive
	var transcript core.TranscriptRepository
	if appCfg.EnableTranscript {
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize storage")
		}
		services = append(services, srv.NewCleanup(db.Close))
		transcript = sqlite.NewTranscriptRepo(db)
	}

	// 3. Core pipeline: knowledge base, session memory, resolver
	kb := knowledge.NewBase()
	store := session.NewStore(appCfg.SessionTTL, appCfg.MaxMessages)
	resolver := dialogue.NewResolver(store, kb, transcript)

	// 4. Chat commands shared by all transports
	router := command.New(command.NewCommands(store, transcript))

	// 5. Transports
	transports, err := initTransports(ctx, appCfg, resolver, router)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	resolver *dialogue.Resolver,
	router core.CmdRouter,
) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, resolver, router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if cfg.EnableCLI {
		repl, err := cli.NewReadLine(resolver, router, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, repl)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
