package negotiation_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/service/negotiation"
	"carrier_desk/internal/domain/value"
	"carrier_desk/pkg/contextx"
	"carrier_desk/pkg/errcodes"
	"carrier_desk/pkg/logx"
)

type serviceFixture struct {
	now       time.Time
	sessions  map[uuid.UUID]entity.NegotiationSession
	verifier  *negotiation.CarrierVerifierMock
	loads     *negotiation.LoadRepositoryMock
	repo      *negotiation.SessionRepositoryMock
	scheduler *negotiation.TimeoutSchedulerMock
	notifier  *negotiation.DealNotifierMock
	decisions []value.DecisionStatus
	service   *negotiation.Service
}

func (f *serviceFixture) RecordDecision(status value.DecisionStatus) {
	f.decisions = append(f.decisions, status)
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		now:      startedAt,
		sessions: map[uuid.UUID]entity.NegotiationSession{},
	}

	f.verifier = &negotiation.CarrierVerifierMock{
		VerifyFunc: func(_ context.Context, raw string) (entity.VerificationResult, error) {
			return entity.VerificationResult{
				MCNumber:           value.NormalizeMCNumber(raw),
				Eligible:           true,
				VerificationSource: value.SourceRegistry,
			}, nil
		},
	}
	f.loads = &negotiation.LoadRepositoryMock{
		GetReferenceRateFunc: func(context.Context, string) (value.Rate, error) {
			return value.MustRate("1000"), nil
		},
	}
	f.repo = &negotiation.SessionRepositoryMock{
		CreateFunc: func(_ context.Context, s *entity.NegotiationSession) error {
			s.Version = 1
			f.sessions[s.ID] = *s
			return nil
		},
		GetByIDFunc: func(_ context.Context, id uuid.UUID) (*entity.NegotiationSession, error) {
			s, ok := f.sessions[id]
			if !ok {
				return nil, domain.NewError(errcodes.NegotiationNotFound, "negotiation not found")
			}
			return &s, nil
		},
		UpdateFunc: func(_ context.Context, s *entity.NegotiationSession) error {
			s.Version++
			f.sessions[s.ID] = *s
			return nil
		},
	}
	f.scheduler = &negotiation.TimeoutSchedulerMock{
		ScheduleFunc: func(context.Context, uuid.UUID, time.Duration) error { return nil },
	}
	f.notifier = &negotiation.DealNotifierMock{
		NotifyDealFunc: func(context.Context, entity.NegotiationSession) error { return nil },
	}

	engine := negotiation.NewEngine().
		WithClock(func() time.Time { return f.now }).
		WithIDGenerator(func() uuid.UUID { return sessionID })

	f.service = negotiation.NewService(engine, f.verifier, f.loads, f.repo).
		WithTimeout(10 * time.Minute).
		WithScheduler(f.scheduler).
		WithNotifier(f.notifier).
		WithRecorder(f)

	return f
}

func (f *serviceFixture) start(t *testing.T, offer string) negotiation.Outcome {
	t.Helper()

	outcome, err := f.service.Start(context.Background(), negotiation.StartInput{
		LoadID:   "LD-1001",
		MCNumber: "MC-123456",
		Offer:    value.MustRate(offer),
		Factors:  negotiation.NewFactors(1, 1),
	})
	require.NoError(t, err)

	return outcome
}

func TestService_Start(t *testing.T) {
	testCases := []struct {
		name      string
		offer     string
		decision  value.DecisionStatus
		final     value.FinalStatus
		scheduled int
		notified  int
	}{
		{name: "accepted on first offer", offer: "1010", decision: value.DecisionAccepted, final: value.FinalDealAccepted, notified: 1},
		{name: "countered", offer: "1300", decision: value.DecisionCounterOffer, final: value.FinalOpen, scheduled: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)
			f := newServiceFixture()

			outcome := f.start(t, tc.offer)

			rq.Equal(tc.decision, outcome.Decision.Status)
			rq.Equal(tc.final, outcome.Session.FinalStatus)
			rq.Equal("123456", outcome.Session.MCNumber.String())
			rq.Equal("1000.00", outcome.Session.ReferenceRate.String())
			rq.Len(f.repo.CreateCalls(), 1)
			rq.Equal(1, f.sessions[sessionID].Version)
			rq.Len(f.scheduler.ScheduleCalls(), tc.scheduled)
			rq.Len(f.notifier.NotifyDealCalls(), tc.notified)
			rq.Equal([]value.DecisionStatus{tc.decision}, f.decisions)

			if tc.scheduled > 0 {
				rq.Equal(10*time.Minute, f.scheduler.ScheduleCalls()[0].After)
			}
		})
	}
}

func TestService_Start_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		verify func(context.Context, string) (entity.VerificationResult, error)
		rate   func(context.Context, string) (value.Rate, error)
		code   string
	}{
		{
			name: "ineligible carrier",
			verify: func(context.Context, string) (entity.VerificationResult, error) {
				return entity.VerificationResult{MCNumber: "123456", Reason: "Carrier is out of service"}, nil
			},
			code: errcodes.CarrierNotEligible.String(),
		},
		{
			name: "malformed mc number",
			verify: func(context.Context, string) (entity.VerificationResult, error) {
				return entity.VerificationResult{VerificationSource: value.SourceValidationError, Reason: "mc number is empty after normalization"}, nil
			},
			code: errcodes.InvalidMCNumber.String(),
		},
		{
			name: "registry auth failure",
			verify: func(context.Context, string) (entity.VerificationResult, error) {
				return entity.VerificationResult{}, domain.NewError(errcodes.RegistryAuthFailed, "bad web key")
			},
			code: errcodes.RegistryAuthFailed.String(),
		},
		{
			name: "unknown load",
			rate: func(context.Context, string) (value.Rate, error) {
				return value.Rate{}, domain.NewError(errcodes.LoadNotFound, "load not found")
			},
			code: errcodes.LoadNotFound.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)
			f := newServiceFixture()

			if tc.verify != nil {
				f.verifier.VerifyFunc = tc.verify
			}
			if tc.rate != nil {
				f.loads.GetReferenceRateFunc = tc.rate
			}

			_, err := f.service.Start(context.Background(), negotiation.StartInput{
				LoadID:   "LD-1001",
				MCNumber: "123456",
				Offer:    value.MustRate("1100"),
				Factors:  negotiation.NewFactors(1, 1),
			})
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, code.String())
			rq.Empty(f.repo.CreateCalls())
		})
	}
}

func TestService_SubmitOffer_UntilRejected(t *testing.T) {
	rq := require.New(t)
	f := newServiceFixture()

	f.start(t, "1300")

	outcome, err := f.service.SubmitOffer(context.Background(), sessionID, value.MustRate("1280"), negotiation.NewFactors(1, 1))
	rq.NoError(err)
	rq.Equal(value.DecisionCounterOffer, outcome.Decision.Status)
	rq.Equal(2, outcome.Session.RoundNumber)

	outcome, err = f.service.SubmitOffer(context.Background(), sessionID, value.MustRate("1250"), negotiation.NewFactors(1, 1))
	rq.NoError(err)
	rq.Equal(value.DecisionRejected, outcome.Decision.Status)
	rq.Equal(value.FinalDealRejected, outcome.Session.FinalStatus)
	rq.False(outcome.Session.IsActive)
	rq.Equal(value.FinalDealRejected, f.sessions[sessionID].FinalStatus)
	rq.Empty(f.notifier.NotifyDealCalls())

	_, err = f.service.SubmitOffer(context.Background(), sessionID, value.MustRate("1000"), negotiation.NewFactors(1, 1))
	rq.True(domain.HasCode(err, errcodes.NegotiationPrecondition))
}

func TestService_SubmitOffer_Accepted(t *testing.T) {
	rq := require.New(t)
	f := newServiceFixture()

	f.start(t, "1300")

	outcome, err := f.service.SubmitOffer(context.Background(), sessionID, value.MustRate("1015"), negotiation.NewFactors(1, 1))
	rq.NoError(err)

	rq.Equal(value.FinalDealAccepted, outcome.Session.FinalStatus)
	rq.Equal("1015.00", outcome.Session.AgreedRate.String())
	rq.Len(f.notifier.NotifyDealCalls(), 1)
}

func TestService_AcceptCounter(t *testing.T) {
	rq := require.New(t)
	f := newServiceFixture()

	f.start(t, "1300")

	closed, err := f.service.AcceptCounter(context.Background(), sessionID)
	rq.NoError(err)

	rq.Equal(value.FinalDealAccepted, closed.FinalStatus)
	rq.Equal("1210.00", closed.AgreedRate.String())
	rq.Len(f.notifier.NotifyDealCalls(), 1)

	_, err = f.service.AcceptCounter(context.Background(), sessionID)
	rq.True(domain.HasCode(err, errcodes.NegotiationPrecondition))
	rq.Equal("1210.00", f.sessions[sessionID].AgreedRate.String())
}

func TestService_AcceptCounter_NoCounter(t *testing.T) {
	rq := require.New(t)
	f := newServiceFixture()

	f.start(t, "1300")

	_, err := f.service.SubmitOffer(context.Background(), sessionID, value.MustRate("1250"), negotiation.NewFactors(1, 1))
	rq.NoError(err)

	s := f.sessions[sessionID]
	s.Decision = ""
	s.CounterOffer = nil
	f.sessions[sessionID] = s

	_, err = f.service.AcceptCounter(context.Background(), sessionID)
	rq.True(domain.HasCode(err, errcodes.NoCounterOffer))
}

func TestService_Abandon(t *testing.T) {
	rq := require.New(t)
	f := newServiceFixture()

	f.start(t, "1300")

	closed, err := f.service.Abandon(context.Background(), sessionID, "Carrier hung up")
	rq.NoError(err)
	rq.Equal(value.FinalAbandoned, closed.FinalStatus)
	rq.Equal("Carrier hung up", closed.Reason)

	_, err = f.service.Abandon(context.Background(), sessionID, "")
	rq.True(domain.HasCode(err, errcodes.NegotiationPrecondition))
}

func TestService_Abandon_LogsSession(t *testing.T) {
	rq := require.New(t)
	f := newServiceFixture()

	f.start(t, "1300")

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	_, err := f.service.Abandon(ctx, sessionID, "Carrier hung up")
	rq.NoError(err)

	var entry map[string]any

	rq.NoError(jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	rq.Equal("negotiation abandoned", entry["msg"])
	rq.Equal(sessionID.String(), entry[logx.FieldSessionID])
	rq.Equal("123456", entry[logx.FieldMCNumber])
}

func TestService_Expire(t *testing.T) {
	rq := require.New(t)
	f := newServiceFixture()

	f.start(t, "1300")
	f.now = startedAt.Add(15 * time.Minute)

	rq.NoError(f.service.Expire(context.Background(), sessionID))

	s := f.sessions[sessionID]
	rq.Equal(value.FinalTimeout, s.FinalStatus)
	rq.Equal(900, s.TotalDurationSeconds)
	rq.Len(f.repo.UpdateCalls(), 1)

	// A second timer firing is harmless.
	rq.NoError(f.service.Expire(context.Background(), sessionID))
	rq.Len(f.repo.UpdateCalls(), 1)
}

func TestService_Get(t *testing.T) {
	rq := require.New(t)
	f := newServiceFixture()

	_, err := f.service.Get(context.Background(), uuid.New())
	rq.True(domain.HasCode(err, errcodes.NegotiationNotFound))

	f.start(t, "1300")

	s, err := f.service.Get(context.Background(), sessionID)
	rq.NoError(err)
	rq.Equal(value.DecisionCounterOffer, s.Decision)
}

func TestService_FollowUpFailuresAreLogged(t *testing.T) {
	rq := require.New(t)
	f := newServiceFixture()

	f.scheduler.ScheduleFunc = func(context.Context, uuid.UUID, time.Duration) error {
		return errors.New("redis: connection refused")
	}
	f.notifier.NotifyDealFunc = func(context.Context, entity.NegotiationSession) error {
		return errors.New("telegram: too many requests")
	}

	outcome := f.start(t, "1300")
	rq.Equal(value.DecisionCounterOffer, outcome.Decision.Status)

	closed, err := f.service.AcceptCounter(context.Background(), sessionID)
	rq.NoError(err)
	rq.Equal(value.FinalDealAccepted, closed.FinalStatus)
}
