package telegram

import (
	"context"
	"fmt"

	"baskettracker/internal/application"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	bot      *tgbotapi.BotAPI
	services *application.Service
	logger   application.Logger
	adminIDs map[int64]struct{}
}

func NewBot(token string, adminIDs []int64, services *application.Service, logger application.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	admins := make(map[int64]struct{})
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	logger.Info("Telegram bot authorized on account %s", bot.Self.UserName)

	return &Bot{
		bot:      bot,
		services: services,
		logger:   logger,
		adminIDs: admins,
	}, nil
}

func (b *Bot) Name() string { return "telegram" }

func (b *Bot) Init() error { return nil }

func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) Stop() {
	b.bot.StopReceivingUpdates()
}
