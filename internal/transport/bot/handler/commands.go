package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/transport/bot/view"
	"carrier_desk/pkg/errcodes"
	"carrier_desk/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

// OnVerify checks a carrier. Usage: /verify 123456
func (h *Handler) OnVerify(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.verifyReply(ctx, msg.Text))
}

// OnNegotiation shows a session. Usage: /negotiation <id>
func (h *Handler) OnNegotiation(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.negotiationReply(ctx, msg.Text))
}

func (h *Handler) verifyReply(ctx context.Context, text string) string {
	arg, ok := argument(text)
	if !ok {
		return view.VerifyUsage
	}

	result, err := h.verifier.Verify(ctx, arg)
	if err != nil {
		logger(ctx).Error("verifier.Verify", slog.String(logx.FieldMCNumber, arg), logx.Error(err))
		return view.ErrorText(err)
	}

	return view.VerificationText(result)
}

func (h *Handler) negotiationReply(ctx context.Context, text string) string {
	arg, ok := argument(text)
	if !ok {
		return view.NegotiationUsage
	}

	id, err := uuid.Parse(arg)
	if err != nil {
		return view.NegotiationInvalidID
	}

	session, err := h.negotiations.Get(ctx, id)
	switch {
	case domain.HasCode(err, errcodes.NegotiationNotFound):
		return view.NegotiationNotFound
	case err != nil:
		logger(ctx).Error("negotiations.Get", slog.String(logx.FieldSessionID, arg), logx.Error(err))
		return view.ErrorText(err)
	}

	return view.NegotiationText(session)
}

// argument returns the first word after the command.
func argument(text string) (string, bool) {
	parts := strings.Fields(text)
	if len(parts) < 2 { //nolint:mnd
		return "", false
	}

	return parts[1], true
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))
	return err
}
