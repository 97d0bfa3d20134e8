package negotiation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/value"
	"carrier_desk/pkg/contextx"
	"carrier_desk/pkg/errcodes"
	"carrier_desk/pkg/logx"
)

//go:generate moq -rm -out carrier_verifier_mock.gen.go . carrierVerifier:CarrierVerifierMock
//go:generate moq -rm -out load_repository_mock.gen.go . LoadRepository:LoadRepositoryMock
//go:generate moq -rm -out session_repository_mock.gen.go . SessionRepository:SessionRepositoryMock
//go:generate moq -rm -out timeout_scheduler_mock.gen.go . timeoutScheduler:TimeoutSchedulerMock
//go:generate moq -rm -out deal_notifier_mock.gen.go . dealNotifier:DealNotifierMock

const DefaultTimeout = 15 * time.Minute

type carrierVerifier interface {
	Verify(ctx context.Context, raw string) (entity.VerificationResult, error)
}

type LoadRepository interface {
	GetReferenceRate(ctx context.Context, loadID string) (value.Rate, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *entity.NegotiationSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.NegotiationSession, error)
	Update(ctx context.Context, session *entity.NegotiationSession) error
}

type timeoutScheduler interface {
	Schedule(ctx context.Context, id uuid.UUID, after time.Duration) error
}

type dealNotifier interface {
	NotifyDeal(ctx context.Context, session entity.NegotiationSession) error
}

type decisionRecorder interface {
	RecordDecision(status value.DecisionStatus)
}

type nopScheduler struct{}

func (nopScheduler) Schedule(context.Context, uuid.UUID, time.Duration) error { return nil }

type nopNotifier struct{}

func (nopNotifier) NotifyDeal(context.Context, entity.NegotiationSession) error { return nil }

type nopRecorder struct{}

func (nopRecorder) RecordDecision(value.DecisionStatus) {}

// Service runs negotiations end to end: carrier check, load lookup, engine
// decisions, persistence and follow-ups.
type Service struct {
	engine    *Engine
	verifier  carrierVerifier
	loads     LoadRepository
	sessions  SessionRepository
	scheduler timeoutScheduler
	notifier  dealNotifier
	recorder  decisionRecorder

	maxRounds int
	timeout   time.Duration
}

func NewService(engine *Engine, verifier carrierVerifier, loads LoadRepository, sessions SessionRepository) *Service {
	return &Service{
		engine:    engine,
		verifier:  verifier,
		loads:     loads,
		sessions:  sessions,
		scheduler: nopScheduler{},
		notifier:  nopNotifier{},
		recorder:  nopRecorder{},
		maxRounds: DefaultMaxRounds,
		timeout:   DefaultTimeout,
	}
}

func (s *Service) WithMaxRounds(n int) *Service {
	s.maxRounds = n
	return s
}

func (s *Service) WithTimeout(d time.Duration) *Service {
	s.timeout = d
	return s
}

func (s *Service) WithScheduler(scheduler timeoutScheduler) *Service {
	s.scheduler = scheduler
	return s
}

func (s *Service) WithNotifier(notifier dealNotifier) *Service {
	s.notifier = notifier
	return s
}

func (s *Service) WithRecorder(recorder decisionRecorder) *Service {
	s.recorder = recorder
	return s
}

type StartInput struct {
	LoadID   string
	MCNumber string
	Offer    value.Rate
	Factors  Factors
}

// Outcome is a session after an offer was evaluated, together with the decision.
type Outcome struct {
	Session  entity.NegotiationSession
	Decision entity.Decision
}

func (s *Service) Start(ctx context.Context, in StartInput) (Outcome, error) {
	ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldLoadID, in.LoadID)))

	verification, err := s.verifier.Verify(ctx, in.MCNumber)
	if err != nil {
		return Outcome{}, fmt.Errorf("verify carrier: %w", err)
	}

	if verification.VerificationSource == value.SourceValidationError {
		return Outcome{}, domain.NewError(errcodes.InvalidMCNumber, verification.Reason)
	}

	if !verification.Eligible {
		return Outcome{}, domain.NewError(errcodes.CarrierNotEligible, fmt.Sprintf("carrier %s is not eligible: %s", verification.MCNumber, verification.Reason))
	}

	mc, err := value.ParseMCNumber(verification.MCNumber)
	if err != nil {
		return Outcome{}, err
	}

	reference, err := s.loads.GetReferenceRate(ctx, in.LoadID)
	if err != nil {
		return Outcome{}, fmt.Errorf("get reference rate: %w", err)
	}

	session, err := s.engine.Start(in.LoadID, mc, reference, in.Offer, s.maxRounds)
	if err != nil {
		return Outcome{}, err
	}

	outcome, err := s.evaluate(session, in.Factors)
	if err != nil {
		return Outcome{}, err
	}

	if err := s.sessions.Create(ctx, &outcome.Session); err != nil {
		return Outcome{}, fmt.Errorf("create negotiation: %w", err)
	}

	ctx = withSession(ctx, outcome.Session)

	if outcome.Session.CanContinue() {
		if err := s.scheduler.Schedule(ctx, outcome.Session.ID, s.timeout); err != nil {
			logger(ctx).Error("failed to schedule negotiation timeout", logx.Error(err))
		}
	}

	s.settled(ctx, outcome)

	return outcome, nil
}

// SubmitOffer plays the carrier's next offer against the session.
func (s *Service) SubmitOffer(ctx context.Context, id uuid.UUID, offer value.Rate, factors Factors) (Outcome, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return Outcome{}, fmt.Errorf("get negotiation: %w", err)
	}

	ctx = withSession(ctx, *session)

	next, err := s.engine.AdvanceRound(*session, offer)
	if err != nil {
		return Outcome{}, err
	}

	outcome, err := s.evaluate(next, factors)
	if err != nil {
		return Outcome{}, err
	}

	if err := s.sessions.Update(ctx, &outcome.Session); err != nil {
		return Outcome{}, fmt.Errorf("update negotiation: %w", err)
	}

	s.settled(ctx, outcome)

	return outcome, nil
}

// AcceptCounter books the load at the counter offer of the current round.
func (s *Service) AcceptCounter(ctx context.Context, id uuid.UUID) (entity.NegotiationSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return entity.NegotiationSession{}, fmt.Errorf("get negotiation: %w", err)
	}

	ctx = withSession(ctx, *session)

	if session.FinalStatus.IsTerminal() {
		return entity.NegotiationSession{}, domain.NewError(errcodes.NegotiationPrecondition, fmt.Sprintf("negotiation %s is already %s", id, session.FinalStatus))
	}

	if session.Decision != value.DecisionCounterOffer || session.CounterOffer == nil {
		return entity.NegotiationSession{}, domain.NewError(errcodes.NoCounterOffer, fmt.Sprintf("negotiation %s has no open counter offer", id))
	}

	closed, err := s.engine.AcceptDeal(*session, session.CounterOffer)
	if err != nil {
		return entity.NegotiationSession{}, err
	}

	if err := s.sessions.Update(ctx, &closed); err != nil {
		return entity.NegotiationSession{}, fmt.Errorf("update negotiation: %w", err)
	}

	s.notify(ctx, closed)

	return closed, nil
}

func (s *Service) Abandon(ctx context.Context, id uuid.UUID, reason string) (entity.NegotiationSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return entity.NegotiationSession{}, fmt.Errorf("get negotiation: %w", err)
	}

	ctx = withSession(ctx, *session)

	closed, err := s.engine.Abandon(*session, reason)
	if err != nil {
		return entity.NegotiationSession{}, err
	}

	if err := s.sessions.Update(ctx, &closed); err != nil {
		return entity.NegotiationSession{}, fmt.Errorf("update negotiation: %w", err)
	}

	logger(ctx).Info("negotiation abandoned")

	return closed, nil
}

// Expire times out a session that is still open. Sessions that already
// finished are left alone.
func (s *Service) Expire(ctx context.Context, id uuid.UUID) error {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get negotiation: %w", err)
	}

	ctx = withSession(ctx, *session)

	if session.FinalStatus.IsTerminal() || !session.IsActive {
		logger(ctx).Debug("negotiation already finished, skipping timeout")
		return nil
	}

	closed, err := s.engine.Timeout(*session)
	if err != nil {
		return err
	}

	if err := s.sessions.Update(ctx, &closed); err != nil {
		return fmt.Errorf("update negotiation: %w", err)
	}

	logger(ctx).Info("negotiation timed out")

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (entity.NegotiationSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return entity.NegotiationSession{}, fmt.Errorf("get negotiation: %w", err)
	}

	return *session, nil
}

// evaluate runs the engine and closes the session when the decision is final.
func (s *Service) evaluate(session entity.NegotiationSession, factors Factors) (Outcome, error) {
	evaluated, decision, err := s.engine.EvaluateOffer(session, factors)
	if err != nil {
		return Outcome{}, err
	}

	switch decision.Status {
	case value.DecisionAccepted:
		evaluated, err = s.engine.AcceptDeal(evaluated, decision.AgreedRate)
	case value.DecisionRejected:
		evaluated, err = s.engine.RejectDeal(evaluated, decision.Justification)
	case value.DecisionCounterOffer:
	}

	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Session: evaluated, Decision: decision}, nil
}

func (s *Service) settled(ctx context.Context, outcome Outcome) {
	s.recorder.RecordDecision(outcome.Decision.Status)

	logger(ctx).Info("offer evaluated",
		slog.Int(logx.FieldRound, outcome.Decision.RoundNumber),
		slog.String(logx.FieldDecision, string(outcome.Decision.Status)),
	)

	if outcome.Session.FinalStatus == value.FinalDealAccepted {
		s.notify(ctx, outcome.Session)
	}
}

func (s *Service) notify(ctx context.Context, session entity.NegotiationSession) {
	if err := s.notifier.NotifyDeal(ctx, session); err != nil {
		logger(ctx).Error("failed to notify about booked load", logx.Error(err))
	}
}

func withSession(ctx context.Context, session entity.NegotiationSession) context.Context {
	return contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldSessionID, session.ID.String()),
		slog.String(logx.FieldMCNumber, session.MCNumber.String()),
	))
}
