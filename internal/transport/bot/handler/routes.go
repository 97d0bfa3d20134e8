package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"carrier_desk/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("help"))
	adminGroup.HandleMessage(h.OnVerify, th.CommandEqual("verify"))
	adminGroup.HandleMessage(h.OnNegotiation, th.CommandEqual("negotiation"))
}
