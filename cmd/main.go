package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"carrier_desk/internal/application"
	"carrier_desk/internal/config"
	"carrier_desk/pkg/contextx"
	"carrier_desk/pkg/logx"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	log := slog.New(logx.NewHandler(os.Stdout, cfg.Log.Level, cfg.Log.JSON())).With(
		slog.String(logx.FieldAppName, application.AppName),
		slog.String(logx.FieldAppVersion, version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := application.Run(ctx, cfg, version); err != nil {
		log.Error("application failed", logx.Error(err))
		cancel()
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
