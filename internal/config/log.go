package config

import "log/slog"

type Log struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format string     `env:"LOG_FORMAT" envDefault:"text"`
}

func (l Log) JSON() bool {
	return l.Format == "json"
}
