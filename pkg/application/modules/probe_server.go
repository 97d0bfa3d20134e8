package modules

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"carrier_desk/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	CheckTimeout  time.Duration
	Checks        map[string]probe.Check
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
	)

	if p.CheckTimeout > 0 {
		probeServer = probeServer.WithCheckTimeout(p.CheckTimeout)
	}

	for name, check := range p.Checks {
		probeServer = probeServer.WithReadinessCheck(name, check)
	}

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
