package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"carrier_desk/internal/transport/bot/handler"
	"carrier_desk/pkg/logx"
)

const longPollingTimeout = 60

// Bot answers dispatcher commands in Telegram.
type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler
}

// New subscribes to updates through long polling, so it must be called with
// the context that bounds the bot's life.
func New(
	ctx context.Context,
	bot *telego.Bot,
	adminID int64,
	commandHandler *handler.Handler,
) (*Bot, error) {
	updates, err := bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, fmt.Errorf("th.NewBotHandler: %w", err)
	}

	commandHandler.RegisterRoutes(botHandler, adminID)

	return &Bot{
		bot:        bot,
		botHandler: botHandler,
	}, nil
}

// Run handles updates until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	go func() {
		if err := b.botHandler.Start(); err != nil {
			logger(ctx).Error("botHandler.Start", logx.Error(err))
		}
	}()

	<-ctx.Done()

	if err := b.botHandler.Stop(); err != nil {
		logger(ctx).Error("botHandler.Stop", logx.Error(err))
	}

	return nil
}
