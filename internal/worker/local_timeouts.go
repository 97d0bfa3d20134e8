package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"carrier_desk/pkg/contextx"
	"carrier_desk/pkg/logx"
)

// LocalTimeouts fires negotiation deadlines from in-process timers. It is used
// when no Redis is configured; pending deadlines are lost on restart.
type LocalTimeouts struct {
	expirer negotiationExpirer

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

func NewLocalTimeouts(expirer negotiationExpirer) *LocalTimeouts {
	return &LocalTimeouts{
		expirer: expirer,
		timers:  make(map[uuid.UUID]*time.Timer),
	}
}

// Schedule keeps the first deadline of a negotiation, like the asynq variant.
func (w *LocalTimeouts) Schedule(ctx context.Context, id uuid.UUID, after time.Duration) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.timers[id]; ok {
		return nil
	}

	log := logger(ctx).With(slog.String(logx.FieldSessionID, id.String()))
	fireCtx := contextx.WithLogger(context.WithoutCancel(ctx), log)

	w.timers[id] = time.AfterFunc(after, func() {
		w.mu.Lock()
		delete(w.timers, id)
		w.mu.Unlock()

		if err := w.expirer.Expire(fireCtx, id); err != nil {
			log.Error("failed to expire negotiation", logx.Error(err))
		}
	})

	return nil
}

// Stop cancels every pending deadline.
func (w *LocalTimeouts) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, timer := range w.timers {
		timer.Stop()
		delete(w.timers, id)
	}
}

func (w *LocalTimeouts) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.timers)
}
