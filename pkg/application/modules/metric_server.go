package modules

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"carrier_desk/pkg/metrics"
)

// MetricServer exposes Gatherer on ListenAddress. Without a Gatherer the
// default prometheus registry is served.
type MetricServer struct {
	ListenAddress string
	Gatherer      prometheus.Gatherer
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	gatherer := m.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	server := metrics.NewPrometheusServer(m.ListenAddress, gatherer)

	g.Go(func() error {
		if err := server.Run(ctx); err != nil {
			return fmt.Errorf("metrics server on %s: %w", m.ListenAddress, err)
		}

		return nil
	})
}
