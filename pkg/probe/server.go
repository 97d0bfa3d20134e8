package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"carrier_desk/pkg/contextx"
	"carrier_desk/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	httpServerReadHeaderTimeout = 5 * time.Second
	DefaultCheckTimeout         = 3 * time.Second
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Check reports whether a dependency can serve traffic.
type Check func(ctx context.Context) error

type namedCheck struct {
	name  string
	check Check
}

type Server struct {
	listenAddress string
	state         []byte
	checks        []namedCheck
	checkTimeout  time.Duration
}

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type readiness struct {
	Options
	Checks map[string]string `json:"checks,omitempty"`
}

func NewServer(
	listenAddress string,
	options Options,
) Server {
	stateJSON, _ := json.Marshal(options) //nolint:errcheck,errchkjson

	return Server{
		listenAddress: listenAddress,
		state:         stateJSON,
		checkTimeout:  DefaultCheckTimeout,
	}
}

// WithReadinessCheck adds a check run on every /ready request. /healthz
// never runs checks.
func (s Server) WithReadinessCheck(name string, check Check) Server {
	s.checks = append(s.checks[:len(s.checks):len(s.checks)], namedCheck{name: name, check: check})
	return s
}

func (s Server) WithCheckTimeout(d time.Duration) Server {
	s.checkTimeout = d
	return s
}

func (s Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handlerHealthz)
	mux.HandleFunc("/ready", s.handlerReady)

	return mux
}

func (s Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              s.listenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}
	}()

	logger(ctx).Info("probe server started", slog.String("address", s.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logger(ctx).Info("probe server stopped")

	return nil
}

func (s Server) handlerHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(s.state) //nolint:errcheck
}

func (s Server) handlerReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if len(s.checks) == 0 {
		w.WriteHeader(http.StatusOK)
		w.Write(s.state) //nolint:errcheck

		return
	}

	ctx := r.Context()
	status := http.StatusOK

	var body readiness

	json.Unmarshal(s.state, &body.Options) //nolint:errcheck,errchkjson

	body.Checks = make(map[string]string, len(s.checks))

	for _, c := range s.checks {
		if err := s.run(ctx, c.check); err != nil {
			logger(ctx).Warn("readiness check failed", slog.String("check", c.name), logx.Error(err))

			body.Checks[c.name] = err.Error()
			status = http.StatusServiceUnavailable

			continue
		}

		body.Checks[c.name] = "ok"
	}

	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func (s Server) run(ctx context.Context, check Check) error {
	ctx, cancel := context.WithTimeout(ctx, s.checkTimeout)
	defer cancel()

	return check(ctx)
}
