package notifier

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"carrier_desk/internal/domain/entity"
	"carrier_desk/pkg/logx"
)

//go:generate moq -rm -out message_sender_mock.gen.go . messageSender:MessageSenderMock

const DefaultQueueSize = 64

var ErrQueueFull = errors.New("notification queue is full")

type messageSender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// TelegramBot posts booked loads to the dispatch chat. NotifyDeal only
// enqueues; Run delivers, so a slow Telegram API never holds up a request.
type TelegramBot struct {
	sender messageSender
	chatID int64
	deals  chan entity.NegotiationSession
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return NewTelegramBotWithSender(bot, chatID), nil
}

func NewTelegramBotWithSender(sender messageSender, chatID int64) *TelegramBot {
	return &TelegramBot{
		sender: sender,
		chatID: chatID,
		deals:  make(chan entity.NegotiationSession, DefaultQueueSize),
	}
}

func (b *TelegramBot) WithQueueSize(n int) *TelegramBot {
	b.deals = make(chan entity.NegotiationSession, n)
	return b
}

// NotifyDeal queues the booked session for delivery.
func (b *TelegramBot) NotifyDeal(ctx context.Context, session entity.NegotiationSession) error {
	select {
	case b.deals <- session:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

// Run delivers queued deals until ctx is done.
func (b *TelegramBot) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case deal := <-b.deals:
			if err := b.SendDeal(ctx, deal); err != nil {
				logger(ctx).Error("failed to send deal",
					slog.String(logx.FieldSessionID, deal.ID.String()),
					logx.Error(err),
				)
			}
		}
	}
}

func (b *TelegramBot) SendDeal(ctx context.Context, session entity.NegotiationSession) error {
	msg := tu.Message(tu.ID(b.chatID), DealText(session)).WithParseMode(telego.ModeHTML)

	if _, err := b.sender.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// DealText renders a booked session as an HTML chat message.
func DealText(session entity.NegotiationSession) string {
	agreed := "n/a"
	if session.AgreedRate != nil {
		agreed = "$" + session.AgreedRate.String()
	}

	return fmt.Sprintf(
		"✅ <b>Load booked</b>\n\n"+
			"📦 <b>Load:</b> %s\n"+
			"🚚 <b>Carrier:</b> MC %s\n"+
			"💰 <b>Agreed rate:</b> %s\n"+
			"📊 <b>Reference rate:</b> $%s\n"+
			"🔁 <b>Rounds:</b> %d/%d\n"+
			"🆔 <code>%s</code>",
		html.EscapeString(session.LoadID),
		session.MCNumber,
		agreed,
		session.ReferenceRate,
		session.RoundNumber,
		session.MaxRounds,
		session.ID,
	)
}
