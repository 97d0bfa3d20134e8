package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AdminOnly drops updates from everyone but adminID.
func AdminOnly(adminID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if !Allowed(update, adminID) {
			return nil
		}

		return ctx.Next(update)
	}
}

func Allowed(update telego.Update, adminID int64) bool {
	var from *telego.User

	switch {
	case update.Message != nil:
		from = update.Message.From
	case update.CallbackQuery != nil:
		from = &update.CallbackQuery.From
	}

	return from != nil && from.ID == adminID
}
