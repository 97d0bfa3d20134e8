package modules

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"carrier_desk/pkg/logx"
)

type AsynqQueues map[string]int

type AsynqHandler struct {
	Pattern string
	Handle  func(context.Context, *asynq.Task) error
}

// AsynqServer consumes background tasks until ctx is done. It does not
// install signal handlers of its own.
type AsynqServer struct {
	Redis           asynq.RedisConnOpt
	Concurrency     int
	ShutdownTimeout time.Duration
}

func (s AsynqServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	queues AsynqQueues,
	handlers ...AsynqHandler,
) {
	g.Go(func() error {
		worker := asynq.NewServer(s.Redis, asynq.Config{
			BaseContext:     func() context.Context { return ctx },
			Concurrency:     s.Concurrency,
			Queues:          queues,
			ShutdownTimeout: s.ShutdownTimeout,
			Logger:          asynqLogger{log: logger(ctx)},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)

				logger(ctx).Error(
					"task failed",
					slog.String(logx.FieldTaskType, task.Type()),
					slog.Int(logx.FieldAttempt, retried),
					slog.Int("max-retry", maxRetry),
					logx.Error(err),
				)
			}),
		})

		mux := asynq.NewServeMux()

		for _, h := range handlers {
			mux.HandleFunc(h.Pattern, h.Handle)
		}

		if err := worker.Start(mux); err != nil {
			return fmt.Errorf("asynqServer.Start: %w", err)
		}

		logger(ctx).Info("asynq server started", slog.Int("handlers", len(handlers)))

		<-ctx.Done()

		worker.Shutdown()

		logger(ctx).Info("asynq server stopped")

		return nil
	})
}

type asynqLogger struct {
	log *slog.Logger
}

func (l asynqLogger) Debug(args ...any) { l.log.Debug(fmt.Sprint(args...)) }
func (l asynqLogger) Info(args ...any)  { l.log.Info(fmt.Sprint(args...)) }
func (l asynqLogger) Warn(args ...any)  { l.log.Warn(fmt.Sprint(args...)) }
func (l asynqLogger) Error(args ...any) { l.log.Error(fmt.Sprint(args...)) }

func (l asynqLogger) Fatal(args ...any) {
	l.log.Error(fmt.Sprint(args...))
	os.Exit(1)
}
