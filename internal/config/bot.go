package config

// Bot is optional. Without a token booked loads are only logged.
type Bot struct {
	Token   string `env:"BOT_TOKEN" json:"-"`
	ChatID  int64  `env:"BOT_CHAT_ID"`
	AdminID int64  `env:"BOT_ADMIN_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != "" && b.ChatID != 0
}
