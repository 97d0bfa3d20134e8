package negotiation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/value"
	"carrier_desk/pkg/errcodes"
)

const DefaultMaxRounds = 3

const (
	ruleAutoAccept    = "auto_accept_threshold"
	ruleWithinMaximum = "within_maximum_acceptable"
	ruleCounter       = "counter_offer"
	ruleRejected      = "exceeds_maximum_no_rounds_left"

	messageAccepted = "Offer accepted. Proceeding with booking."
)

//nolint:gochecknoglobals
var (
	minimumMultiplier    = decimal.RequireFromString("0.95")
	autoAcceptMultiplier = decimal.RequireFromString("1.02")
	counterWeight        = decimal.RequireFromString("0.7")
)

// Factors scale the maximum acceptable rate: max = reference * urgency * history * market.
type Factors struct {
	Urgency float64
	History float64
	Market  float64
}

// NewFactors returns factors with a neutral market factor.
func NewFactors(urgency, history float64) Factors {
	return Factors{Urgency: urgency, History: history, Market: 1}
}

// WithMarket returns a copy of f with the market factor set.
func (f Factors) WithMarket(market float64) Factors {
	f.Market = market
	return f
}

func (f Factors) normalize() (Factors, error) {
	if f.Market == 0 {
		f.Market = 1
	}

	for name, v := range map[string]float64{"urgency": f.Urgency, "history": f.History, "market": f.Market} {
		if v <= 0 {
			return Factors{}, domain.NewError(errcodes.InvalidFactor, fmt.Sprintf("%s factor must be positive, got %v", name, v))
		}
	}

	return f, nil
}

func (f Factors) product() decimal.Decimal {
	return decimal.NewFromFloat(f.Urgency).
		Mul(decimal.NewFromFloat(f.History)).
		Mul(decimal.NewFromFloat(f.Market))
}

// Engine evaluates carrier offers. It holds no session state: every method
// takes a session value and returns a new one, leaving its input untouched.
type Engine struct {
	now   func() time.Time
	newID func() uuid.UUID
}

func NewEngine() *Engine {
	return &Engine{
		now:   time.Now,
		newID: uuid.New,
	}
}

func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

func (e *Engine) WithIDGenerator(newID func() uuid.UUID) *Engine {
	e.newID = newID
	return e
}

// Start opens a session at round 1 with the carrier's first offer.
func (e *Engine) Start(
	loadID string,
	mc value.MCNumber,
	reference value.Rate,
	offer value.Rate,
	maxRounds int,
) (entity.NegotiationSession, error) {
	if loadID == "" {
		return entity.NegotiationSession{}, domain.NewError(errcodes.InvalidLoadID, "load id is required")
	}

	if mc.IsZero() {
		return entity.NegotiationSession{}, domain.NewError(errcodes.InvalidMCNumber, "mc number is required")
	}

	if maxRounds < 1 {
		return entity.NegotiationSession{}, domain.NewError(errcodes.ValidationError, fmt.Sprintf("max rounds must be at least 1, got %d", maxRounds))
	}

	now := e.now()

	return entity.NegotiationSession{
		ID:            e.newID(),
		LoadID:        loadID,
		MCNumber:      mc,
		RoundNumber:   1,
		MaxRounds:     maxRounds,
		ReferenceRate: reference,
		CarrierOffer:  offer,
		IsActive:      true,
		SessionStart:  now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// EvaluateOffer decides on the session's current offer. Rules, first match wins:
// offer <= reference*1.02 accepts; offer <= maximum acceptable accepts; a
// session with rounds left counters at reference + 70% of the gap; otherwise
// the offer is rejected.
func (e *Engine) EvaluateOffer(s entity.NegotiationSession, f Factors) (entity.NegotiationSession, entity.Decision, error) {
	if err := requireOpen(s, "evaluate offer"); err != nil {
		return s, entity.Decision{}, err
	}

	if s.RoundNumber < 1 || s.RoundNumber > s.MaxRounds {
		return s, entity.Decision{}, precondition(s, "evaluate offer", fmt.Sprintf("round %d is outside 1..%d", s.RoundNumber, s.MaxRounds))
	}

	f, err := f.normalize()
	if err != nil {
		return s, entity.Decision{}, err
	}

	next := s
	ref := s.ReferenceRate
	offer := s.CarrierOffer

	if next.MinimumAcceptable == nil {
		minimum, err := ref.Mul(minimumMultiplier)
		if err != nil {
			return s, entity.Decision{}, fmt.Errorf("minimum acceptable: %w", err)
		}
		next.MinimumAcceptable = &minimum
	}

	// The factor product is unbounded; the stored maximum is clamped to the
	// Rate range while rules compare against the exact amount.
	maximumAmount := ref.Decimal().Mul(f.product()).Round(2)
	if next.MaximumAcceptable == nil {
		next.MaximumAcceptable = lo.ToPtr(value.ClampRate(maximumAmount))
	} else {
		maximumAmount = next.MaximumAcceptable.Decimal()
	}

	autoAccept := ref.Decimal().Mul(autoAcceptMultiplier).Round(2)

	maximum := maximumAmount.StringFixed(2)
	overReference := offer.PercentageDifference(ref)
	now := e.now()

	decision := entity.Decision{
		NegotiationID:           s.ID,
		LoadID:                  s.LoadID,
		CarrierOffer:            offer,
		RoundNumber:             s.RoundNumber,
		RateDifference:          lo.ToPtr(offer.Decimal().Sub(ref.Decimal()).InexactFloat64()),
		PercentageOverReference: lo.ToPtr(overReference),
		Timestamp:               now,
	}

	var rule string

	switch {
	case offer.Decimal().LessThanOrEqual(autoAccept):
		rule = ruleAutoAccept
		decision.Status = value.DecisionAccepted
		decision.AgreedRate = lo.ToPtr(offer)
		decision.Message = messageAccepted
		decision.Justification = "Offer within auto-accept threshold"
	case offer.Decimal().LessThanOrEqual(maximumAmount):
		rule = ruleWithinMaximum
		decision.Status = value.DecisionAccepted
		decision.AgreedRate = lo.ToPtr(offer)
		decision.Message = messageAccepted
		decision.Justification = fmt.Sprintf("Offer within maximum acceptable rate of $%s", maximum)
	case s.CanContinue():
		counter, err := counterOffer(ref, offer)
		if err != nil {
			return s, entity.Decision{}, err
		}

		rule = ruleCounter
		decision.Status = value.DecisionCounterOffer
		decision.CounterOffer = &counter
		decision.RemainingRounds = lo.ToPtr(s.RemainingRounds())
		decision.Message = fmt.Sprintf("We can offer $%s for this load.", counter)
		decision.Justification = fmt.Sprintf("Offer exceeds maximum acceptable rate of $%s", maximum)
		next.CounterOffer = &counter
	default:
		rule = ruleRejected
		decision.Status = value.DecisionRejected
		decision.RemainingRounds = lo.ToPtr(0)
		decision.Message = fmt.Sprintf("We are unable to meet $%s for this load.", offer)
		decision.Justification = fmt.Sprintf("Offer exceeds maximum acceptable rate of $%s and no rounds remain", maximum)
	}

	next.Decision = decision.Status
	next.DecisionFactors = &entity.DecisionFactors{
		UrgencyFactor:           f.Urgency,
		HistoryFactor:           f.History,
		MarketFactor:            f.Market,
		ReferenceRate:           ref.String(),
		MinimumAcceptable:       next.MinimumAcceptable.String(),
		MaximumAcceptable:       maximum,
		AutoAcceptThreshold:     autoAccept.StringFixed(2),
		PercentageOverReference: overReference,
		Rule:                    rule,
	}
	next.UpdatedAt = now

	return next, decision, nil
}

// counterOffer = reference + 0.7 * (offer - reference).
func counterOffer(ref, offer value.Rate) (value.Rate, error) {
	gap := offer.Decimal().Sub(ref.Decimal())

	counter, err := value.NewRate(ref.Decimal().Add(gap.Mul(counterWeight)))
	if err != nil {
		return value.Rate{}, fmt.Errorf("counter offer: %w", err)
	}

	return counter, nil
}

// AdvanceRound moves to the next round with a new carrier offer and clears
// everything the previous round decided.
func (e *Engine) AdvanceRound(s entity.NegotiationSession, offer value.Rate) (entity.NegotiationSession, error) {
	if err := requireOpen(s, "advance round"); err != nil {
		return s, err
	}

	if !s.CanContinue() {
		return s, precondition(s, "advance round", fmt.Sprintf("round limit %d reached", s.MaxRounds))
	}

	next := s
	next.RoundNumber++
	next.CarrierOffer = offer
	next.Decision = ""
	next.CounterOffer = nil
	next.DecisionFactors = nil
	next.MinimumAcceptable = nil
	next.MaximumAcceptable = nil
	next.UpdatedAt = e.now()

	return next, nil
}

// AcceptDeal closes the session as booked. A nil agreed rate books the
// carrier's last offer.
func (e *Engine) AcceptDeal(s entity.NegotiationSession, agreed *value.Rate) (entity.NegotiationSession, error) {
	if err := requireOpen(s, "accept deal"); err != nil {
		return s, err
	}

	rate := s.CarrierOffer
	if agreed != nil {
		rate = *agreed
	}

	next := e.terminate(s, value.FinalDealAccepted, "")
	next.AgreedRate = &rate

	return next, nil
}

func (e *Engine) RejectDeal(s entity.NegotiationSession, reason string) (entity.NegotiationSession, error) {
	if err := requireOpen(s, "reject deal"); err != nil {
		return s, err
	}

	return e.terminate(s, value.FinalDealRejected, lo.CoalesceOrEmpty(reason, "Carrier offer rejected")), nil
}

// Abandon closes a session the carrier walked away from (hang-up, no answer).
func (e *Engine) Abandon(s entity.NegotiationSession, reason string) (entity.NegotiationSession, error) {
	if err := requireOpen(s, "abandon negotiation"); err != nil {
		return s, err
	}

	return e.terminate(s, value.FinalAbandoned, lo.CoalesceOrEmpty(reason, "Negotiation abandoned")), nil
}

func (e *Engine) Timeout(s entity.NegotiationSession) (entity.NegotiationSession, error) {
	if err := requireOpen(s, "time out negotiation"); err != nil {
		return s, err
	}

	return e.terminate(s, value.FinalTimeout, "Negotiation timed out"), nil
}

func (e *Engine) terminate(s entity.NegotiationSession, status value.FinalStatus, reason string) entity.NegotiationSession {
	now := e.now()

	next := s
	next.FinalStatus = status
	next.IsActive = false
	next.Reason = reason
	next.SessionEnd = &now
	next.TotalDurationSeconds = int(now.Sub(s.SessionStart).Seconds())
	next.UpdatedAt = now

	return next
}

func requireOpen(s entity.NegotiationSession, op string) error {
	switch s.FinalStatus {
	case value.FinalOpen:
	case value.FinalDealAccepted, value.FinalDealRejected, value.FinalAbandoned, value.FinalTimeout:
		return precondition(s, op, fmt.Sprintf("session is already %s", s.FinalStatus))
	default:
		return precondition(s, op, fmt.Sprintf("unknown final status %q", s.FinalStatus))
	}

	if !s.IsActive {
		return precondition(s, op, "session is not active")
	}

	return nil
}

func precondition(s entity.NegotiationSession, op, why string) error {
	return domain.NewError(errcodes.NegotiationPrecondition, fmt.Sprintf("cannot %s on negotiation %s: %s", op, s.ID, why))
}
