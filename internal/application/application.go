package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/mymmrac/telego"
	"golang.org/x/sync/errgroup"

	"carrier_desk/internal/config"
	"carrier_desk/internal/domain/service/negotiation"
	"carrier_desk/internal/domain/service/verification"
	"carrier_desk/internal/domain/value"
	"carrier_desk/internal/infrastructure/cache"
	"carrier_desk/internal/infrastructure/fmcsa"
	"carrier_desk/internal/infrastructure/metrics"
	"carrier_desk/internal/infrastructure/notifier"
	"carrier_desk/internal/infrastructure/persistence"
	"carrier_desk/internal/server"
	"carrier_desk/internal/transport/bot"
	"carrier_desk/internal/transport/bot/handler"
	"carrier_desk/internal/worker"
	"carrier_desk/pkg/application/connectors"
	"carrier_desk/pkg/application/modules"
	"carrier_desk/pkg/logx"
	pkgmetrics "carrier_desk/pkg/metrics"
	"carrier_desk/pkg/middlewarex"
	"carrier_desk/pkg/probe"
)

const AppName = "carrier-desk"

var errRegistryUnhealthy = errors.New("registry health check failed")

// Run wires the service and blocks until ctx is done or a module fails.
func Run(ctx context.Context, cfg config.Config, version string) error {
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Postgres.ConnMaxIdleTime,
	}
	defer pg.Close(context.WithoutCancel(ctx))

	if err := pg.Ping(ctx); err != nil {
		return err
	}

	db := pg.Client(ctx)

	carriers := persistence.NewCarrierRepository(db)
	loads := persistence.NewLoadRepository(db)
	sessions := persistence.NewNegotiationRepository(db)

	registry := pkgmetrics.NewRegistry()
	collectors := metrics.NewCollectors(registry)

	healthMC, err := value.ParseMCNumber(cfg.FMCSA.HealthMCNumber)
	if err != nil {
		return fmt.Errorf("FMCSA_HEALTH_MC: %w", err)
	}

	fmcsaClient := fmcsa.New(
		cfg.FMCSA.BaseURL,
		cfg.FMCSA.WebKey,
		fmcsa.WithTimeout(cfg.FMCSA.Timeout),
		fmcsa.WithRetryPolicy(fmcsa.RetryPolicy{
			MaxAttempts:    cfg.FMCSA.RetryMaxAttempts,
			InitialBackoff: cfg.FMCSA.RetryInitialBackoff,
			MaxBackoff:     cfg.FMCSA.RetryMaxBackoff,
			Multiplier:     fmcsa.DefaultMultiplier,
			Retryable:      fmcsa.IsRetryable,
		}),
		fmcsa.WithRateLimit(cfg.FMCSA.RateLimitRPS, cfg.FMCSA.RateLimitBurst),
		fmcsa.WithHealthMCNumber(healthMC),
	)

	checks := map[string]probe.Check{
		"postgres": pg.Ping,
		"registry": func(ctx context.Context) error {
			if !fmcsaClient.HealthCheck(ctx) {
				return errRegistryUnhealthy
			}

			return nil
		},
	}

	var (
		carrierCache verification.Cache
		redis        *connectors.Redis
	)

	if cfg.Redis.Enabled() {
		redis = &connectors.Redis{
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			Address:            cfg.Redis.Address,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		defer redis.Close(context.WithoutCancel(ctx))

		carrierCache = cache.NewRedisCache(redis.Client(ctx))
		checks["redis"] = redis.Ping
	} else {
		carrierCache = cache.NewMemoryCache(cfg.Cache.CleanupInterval)
	}

	resolver := verification.NewResolver(carrierCache, fmcsaClient, carriers).
		WithCarrierTTL(cfg.Cache.CarrierTTL).
		WithSnapshotTTL(cfg.Cache.SnapshotTTL).
		WithMaxStaleness(cfg.Cache.FallbackMaxStaleness).
		WithRecorder(collectors)

	negotiations := negotiation.NewService(negotiation.NewEngine(), resolver, loads, sessions).
		WithMaxRounds(cfg.Negotiation.MaxRounds).
		WithTimeout(cfg.Negotiation.Timeout).
		WithRecorder(collectors)

	g, ctx := errgroup.WithContext(ctx)

	if redis != nil {
		asynqClient := asynq.NewClient(redis.AsynqOpt())
		defer asynqClient.Close()

		timeouts := worker.NewNegotiationTimeouts(asynqClient, negotiations).WithQueue(cfg.Negotiation.Queue)
		negotiations.WithScheduler(timeouts)

		modules.AsynqServer{
			Redis:           redis.AsynqOpt(),
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		}.Run(ctx, g, modules.AsynqQueues{cfg.Negotiation.Queue: 1}, modules.AsynqHandler{
			Pattern: worker.TaskNegotiationTimeout,
			Handle:  timeouts.Handle,
		})
	} else {
		timeouts := worker.NewLocalTimeouts(negotiations)
		defer timeouts.Stop()

		negotiations.WithScheduler(timeouts)
	}

	if cfg.Bot.Token != "" {
		if err := runBot(ctx, g, cfg.Bot, negotiations, resolver); err != nil {
			return err
		}
	}

	router := chi.NewRouter()
	bodyLogging := middlewarex.NewBodyLogging(logx.NewSensitiveDataMasker())

	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.NewMetrics(registry).Handler,
		bodyLogging.Request,
		bodyLogging.Response,
	)

	server.NewServer(
		server.NewCarrierServer(resolver),
		server.NewNegotiationServer(negotiations),
	).RegisterRoutes(router)

	modules.HTTPServer{
		Address:           cfg.Server.HTTPListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.Server.ShutdownTimeout,
	}.Run(ctx, g)

	modules.ProbeServer{
		Name:          AppName,
		Version:       version,
		ListenAddress: cfg.Server.ProbeListenAddress,
		CheckTimeout:  cfg.Server.ProbeTimeout,
		Checks:        checks,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Server.MetricsListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

// runBot starts deal notifications when a chat is configured and the
// dispatcher commands when an admin is configured.
func runBot(
	ctx context.Context,
	g *errgroup.Group,
	cfg config.Bot,
	negotiations *negotiation.Service,
	resolver *verification.Resolver,
) error {
	tgBot, err := telego.NewBot(cfg.Token)
	if err != nil {
		return fmt.Errorf("telego.NewBot: %w", err)
	}

	if cfg.Enabled() {
		deals := notifier.NewTelegramBotWithSender(tgBot, cfg.ChatID)
		negotiations.WithNotifier(deals)

		modules.Worker{Name: "notifier"}.Run(ctx, g, deals.Run)
	}

	if cfg.AdminID != 0 {
		commands, err := bot.New(ctx, tgBot, cfg.AdminID, handler.New(resolver, negotiations))
		if err != nil {
			return err
		}

		modules.Worker{Name: "bot"}.Run(ctx, g, commands.Run)
	}

	return nil
}
