package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"carrier_desk/pkg/logx"
)

// HTTPServer serves Handler on Address until ctx is done, then drains open
// requests within ShutdownTimeout. Request contexts derive from ctx, so the
// application logger reaches every handler.
type HTTPServer struct {
	Address           string
	Handler           http.Handler
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

func (h HTTPServer) Run(ctx context.Context, g *errgroup.Group) {
	httpServer := &http.Server{ //nolint:exhaustruct
		Addr:              h.Address,
		Handler:           h.Handler,
		ReadHeaderTimeout: h.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	g.Go(func() error {
		go func() {
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
			}
		}()

		logger(ctx).Info("http server started", slog.String("address", h.Address))

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.ListenAndServe: %w", err)
		}

		logger(ctx).Info("http server stopped", slog.String("address", h.Address))

		return nil
	})
}
