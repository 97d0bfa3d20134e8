package modules

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Worker runs a long-lived loop such as a notification queue. A loop that
// returns an error stops the whole group.
type Worker struct {
	Name string
}

func (w Worker) Run(ctx context.Context, g *errgroup.Group, run func(ctx context.Context) error) {
	g.Go(func() error {
		logger(ctx).Info("worker started", slog.String("worker", w.Name))

		if err := run(ctx); err != nil {
			return fmt.Errorf("%s.Run: %w", w.Name, err)
		}

		logger(ctx).Info("worker stopped", slog.String("worker", w.Name))

		return nil
	})
}
