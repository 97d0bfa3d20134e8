package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"carrier_desk/internal/domain"
	"carrier_desk/pkg/contextx"
	"carrier_desk/pkg/errcodes"
	"carrier_desk/pkg/logx"
)

//go:generate moq -rm -out task_enqueuer_mock.gen.go . taskEnqueuer:TaskEnqueuerMock
//go:generate moq -rm -out negotiation_expirer_mock.gen.go . negotiationExpirer:NegotiationExpirerMock

const (
	TaskNegotiationTimeout = "negotiation:timeout"
	DefaultQueue           = "negotiations"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type negotiationExpirer interface {
	Expire(ctx context.Context, id uuid.UUID) error
}

type timeoutPayload struct {
	NegotiationID uuid.UUID `json:"negotiation_id"`
}

// NegotiationTimeouts schedules and handles the deadline of open
// negotiations through asynq.
type NegotiationTimeouts struct {
	client  taskEnqueuer
	expirer negotiationExpirer
	queue   string
}

func NewNegotiationTimeouts(client taskEnqueuer, expirer negotiationExpirer) *NegotiationTimeouts {
	return &NegotiationTimeouts{
		client:  client,
		expirer: expirer,
		queue:   DefaultQueue,
	}
}

func (w *NegotiationTimeouts) WithQueue(queue string) *NegotiationTimeouts {
	w.queue = queue
	return w
}

// Schedule enqueues one timeout task per negotiation. Scheduling the same
// negotiation twice keeps the first deadline.
func (w *NegotiationTimeouts) Schedule(ctx context.Context, id uuid.UUID, after time.Duration) error {
	payload, err := json.Marshal(timeoutPayload{NegotiationID: id})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	task := asynq.NewTask(TaskNegotiationTimeout, payload)

	info, err := w.client.EnqueueContext(ctx, task,
		asynq.Queue(w.queue),
		asynq.TaskID(timeoutTaskID(id)),
		asynq.ProcessIn(after),
		asynq.Retention(time.Hour),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		logger(ctx).Debug("negotiation timeout already scheduled", slog.String(logx.FieldSessionID, id.String()))
		return nil
	}

	if err != nil {
		return fmt.Errorf("client.EnqueueContext: %w", err)
	}

	logger(ctx).Debug("negotiation timeout scheduled",
		slog.String(logx.FieldSessionID, id.String()),
		slog.String(logx.FieldTaskType, info.Type),
		slog.Time("process_at", info.NextProcessAt),
	)

	return nil
}

// Handle expires the negotiation named by the task. A negotiation that no
// longer exists is not retried.
func (w *NegotiationTimeouts) Handle(ctx context.Context, task *asynq.Task) error {
	var payload timeoutPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal: %w: %w", err, asynq.SkipRetry)
	}

	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldTaskType, task.Type()),
		slog.String(logx.FieldSessionID, payload.NegotiationID.String()),
	))

	err := w.expirer.Expire(ctx, payload.NegotiationID)
	if domain.HasCode(err, errcodes.NegotiationNotFound) {
		logger(ctx).Warn("timed out negotiation not found", logx.Error(err))
		return fmt.Errorf("expire: %w: %w", err, asynq.SkipRetry)
	}

	if err != nil {
		return fmt.Errorf("expire: %w", err)
	}

	return nil
}

func timeoutTaskID(id uuid.UUID) string {
	return TaskNegotiationTimeout + ":" + id.String()
}
