package telegram

import (
	"context"
	"log/slog"

	"github.com/go-faster/errors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vadimtrunov/tmdb-mcp/internal/catalog"
)

// sender is the part of the Bot API used for replies.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot is the Telegram frontend: each command invokes one catalog tool.
type Bot struct {
	api    *tgbotapi.BotAPI
	out    sender
	access *accessList
	table  *catalog.Table
	logger *slog.Logger
}

// New creates a new Telegram Bot.
func New(token string, allowedUserIDs []int64, table *catalog.Table, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "create telegram bot")
	}

	b := newBot(api, allowedUserIDs, table, logger)
	b.api = api
	return b, nil
}

func newBot(out sender, allowedUserIDs []int64, table *catalog.Table, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		out:    out,
		access: newAccessList(allowedUserIDs),
		table:  table,
		logger: logger,
	}
}

// Start starts the long-polling loop. It blocks until ctx is canceled.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("telegram bot started",
		slog.String("username", b.api.Self.UserName),
	)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram bot stopped")
			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate dispatches an incoming Telegram update.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		b.handleMessage(ctx, update.Message)
	}
}
