package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"carrier_desk/internal/config"
)

func TestLoad(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(rq *require.Assertions, cfg config.Config)
	}{
		{
			name: "defaults",
			env: map[string]string{
				"PG_DSN":        "postgres://localhost:5432/carrier_desk",
				"FMCSA_WEB_KEY": "key",
			},
			check: func(rq *require.Assertions, cfg config.Config) {
				rq.Equal("https://mobile.fmcsa.dot.gov/qc/services", cfg.FMCSA.BaseURL)
				rq.Equal(5*time.Second, cfg.FMCSA.Timeout)
				rq.Equal(3, cfg.FMCSA.RetryMaxAttempts)
				rq.Equal(24*time.Hour, cfg.Cache.CarrierTTL)
				rq.Equal(time.Hour, cfg.Cache.SnapshotTTL)
				rq.Equal(7*24*time.Hour, cfg.Cache.FallbackMaxStaleness)
				rq.Equal(3, cfg.Negotiation.MaxRounds)
				rq.Equal(15*time.Minute, cfg.Negotiation.Timeout)
				rq.Equal(":8080", cfg.Server.HTTPListenAddress)
				rq.Equal(slog.LevelInfo, cfg.Log.Level)
				rq.False(cfg.Log.JSON())
				rq.False(cfg.Redis.Enabled())
				rq.False(cfg.Bot.Enabled())
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"PG_DSN":                 "postgres://localhost:5432/carrier_desk",
				"FMCSA_WEB_KEY":          "key",
				"REDIS_ADDR":             "localhost:6379",
				"NEGOTIATION_MAX_ROUNDS": "5",
				"LOG_LEVEL":              "debug",
				"LOG_FORMAT":             "json",
				"BOT_TOKEN":              "token",
				"BOT_CHAT_ID":            "-100200300",
			},
			check: func(rq *require.Assertions, cfg config.Config) {
				rq.True(cfg.Redis.Enabled())
				rq.Equal(5, cfg.Negotiation.MaxRounds)
				rq.Equal(slog.LevelDebug, cfg.Log.Level)
				rq.True(cfg.Log.JSON())
				rq.True(cfg.Bot.Enabled())
				rq.Equal(int64(-100200300), cfg.Bot.ChatID)
			},
		},
		{
			name:    "missing web key",
			env:     map[string]string{"PG_DSN": "postgres://localhost:5432/carrier_desk"},
			wantErr: true,
		},
		{
			name:    "missing dsn",
			env:     map[string]string{"FMCSA_WEB_KEY": "key"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			for _, key := range []string{"PG_DSN", "FMCSA_WEB_KEY", "REDIS_ADDR", "BOT_TOKEN"} {
				t.Setenv(key, "")
			}

			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			cfg, err := config.Load()
			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)
			tc.check(rq, cfg)
		})
	}
}
