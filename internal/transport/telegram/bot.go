package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/geobot/internal/config"
	"github.com/sandevgo/geobot/internal/core"
	"github.com/sandevgo/geobot/internal/service/dialogue"
	"github.com/sandevgo/geobot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot      *tele.Bot
	cfg      *config.TelegramConfig
	resolver *dialogue.Resolver
	router   core.CmdRouter
	sender   *sender
	ownerID  int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	resolver *dialogue.Resolver,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		cfg:      cfg,
		resolver: resolver,
		router:   router,
		sender:   newSender(b),
		ownerID:  cfg.OwnerID,
	}

	// Use context from signal setup with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: restrict to the owner when one is configured. With no
	// owner the bot stays public, like the original demo.
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if bot.ownerID != 0 && c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	sessionID := fmt.Sprintf("telegram-%d", c.Chat().ID)

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	// Slash commands go through the router; everything else is a question
	// for the resolver.
	reply, handled := b.router.Execute(ctx, sessionID, c.Text())
	if !handled {
		reply = b.resolver.Resolve(ctx, sessionID, c.Text())
	}

	if err := b.sender.sendText(ctx, c.Chat(), reply); err != nil {
		logger.Error().Err(err).Str("session", sessionID).Msg("failed to send telegram reply")
		return err
	}
	return nil
}
