package negotiation_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/service/negotiation"
	"carrier_desk/internal/domain/value"
	"carrier_desk/pkg/errcodes"
)

//nolint:gochecknoglobals
var (
	startedAt = time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	sessionID = uuid.MustParse("5b0a3b0e-94a4-4f7e-a1f0-3f64d9a0c7d2")
)

func newTestEngine(now *time.Time) *negotiation.Engine {
	return negotiation.NewEngine().
		WithClock(func() time.Time { return *now }).
		WithIDGenerator(func() uuid.UUID { return sessionID })
}

func startSession(t *testing.T, e *negotiation.Engine, reference, offer string) entity.NegotiationSession {
	t.Helper()

	s, err := e.Start("LD-1001", value.MustMCNumber("123456"), value.MustRate(reference), value.MustRate(offer), negotiation.DefaultMaxRounds)
	require.NoError(t, err)

	return s
}

func TestEngine_Start(t *testing.T) {
	now := startedAt
	e := newTestEngine(&now)

	testCases := []struct {
		name      string
		loadID    string
		mc        value.MCNumber
		maxRounds int
		code      string
	}{
		{name: "ok", loadID: "LD-1", mc: value.MustMCNumber("123456"), maxRounds: 3},
		{name: "empty load id", loadID: "", mc: value.MustMCNumber("123456"), maxRounds: 3, code: errcodes.InvalidLoadID.String()},
		{name: "zero mc number", loadID: "LD-1", maxRounds: 3, code: errcodes.InvalidMCNumber.String()},
		{name: "zero rounds", loadID: "LD-1", mc: value.MustMCNumber("123456"), maxRounds: 0, code: errcodes.ValidationError.String()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			s, err := e.Start(tc.loadID, tc.mc, value.MustRate("1000"), value.MustRate("1100"), tc.maxRounds)
			if tc.code != "" {
				rq.Error(err)
				code, ok := domain.GetCode(err)
				rq.True(ok)
				rq.Equal(tc.code, code.String())
				return
			}

			rq.NoError(err)
			rq.Equal(sessionID, s.ID)
			rq.Equal(1, s.RoundNumber)
			rq.True(s.IsActive)
			rq.Equal(value.FinalOpen, s.FinalStatus)
			rq.Equal(startedAt, s.SessionStart)
			rq.True(s.CanContinue())
		})
	}
}

func TestEngine_EvaluateOffer(t *testing.T) {
	testCases := []struct {
		name          string
		offer         string
		round         int
		factors       negotiation.Factors
		status        value.DecisionStatus
		counter       string
		justification string
	}{
		{
			name:          "offer equal to reference accepted",
			offer:         "1000",
			round:         1,
			factors:       negotiation.NewFactors(1, 1),
			status:        value.DecisionAccepted,
			justification: "Offer within auto-accept threshold",
		},
		{
			name:          "offer on auto accept threshold accepted",
			offer:         "1020",
			round:         1,
			factors:       negotiation.NewFactors(1, 1),
			status:        value.DecisionAccepted,
			justification: "Offer within auto-accept threshold",
		},
		{
			name:          "offer under maximum acceptable accepted",
			offer:         "1080",
			round:         1,
			factors:       negotiation.NewFactors(1.1, 1),
			status:        value.DecisionAccepted,
			justification: "Offer within maximum acceptable rate of $1100.00",
		},
		{
			name:    "high offer in first round countered",
			offer:   "1300",
			round:   1,
			factors: negotiation.NewFactors(1, 1),
			status:  value.DecisionCounterOffer,
			counter: "1210.00",
		},
		{
			name:    "high offer in second round countered",
			offer:   "1200",
			round:   2,
			factors: negotiation.NewFactors(1, 1),
			status:  value.DecisionCounterOffer,
			counter: "1140.00",
		},
		{
			name:    "high offer in last round rejected",
			offer:   "1300",
			round:   3,
			factors: negotiation.NewFactors(1, 1),
			status:  value.DecisionRejected,
		},
		{
			name:    "zero market factor treated as neutral",
			offer:   "1300",
			round:   1,
			factors: negotiation.Factors{Urgency: 1, History: 1},
			status:  value.DecisionCounterOffer,
			counter: "1210.00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			now := startedAt
			e := newTestEngine(&now)

			s := startSession(t, e, "1000", tc.offer)
			s.RoundNumber = tc.round

			next, decision, err := e.EvaluateOffer(s, tc.factors)
			rq.NoError(err)

			rq.Equal(tc.status, decision.Status)
			rq.Equal(tc.status, next.Decision)
			rq.Equal(tc.round, decision.RoundNumber)
			rq.NotNil(next.DecisionFactors)
			rq.NotNil(next.MinimumAcceptable)
			rq.Equal("950.00", next.MinimumAcceptable.String())

			switch tc.status {
			case value.DecisionAccepted:
				rq.Equal("Offer accepted. Proceeding with booking.", decision.Message)
				rq.Equal(tc.justification, decision.Justification)
				rq.NotNil(decision.AgreedRate)
				rq.Equal(tc.offer+".00", decision.AgreedRate.String())
				rq.Nil(decision.CounterOffer)
			case value.DecisionCounterOffer:
				rq.NotNil(decision.CounterOffer)
				rq.Equal(tc.counter, decision.CounterOffer.String())
				rq.Equal(tc.counter, next.CounterOffer.String())
				rq.Equal(negotiation.DefaultMaxRounds-tc.round, lo.FromPtr(decision.RemainingRounds))
				rq.Contains(decision.Message, tc.counter)
			case value.DecisionRejected:
				rq.Nil(decision.CounterOffer)
				rq.Nil(decision.AgreedRate)
				rq.Equal(0, lo.FromPtr(decision.RemainingRounds))
			}

			// The input session is a value and must come back untouched.
			rq.Empty(s.Decision)
			rq.Nil(s.DecisionFactors)
			rq.Nil(s.MaximumAcceptable)
		})
	}
}

func TestEngine_EvaluateOffer_Percentages(t *testing.T) {
	rq := require.New(t)

	now := startedAt
	e := newTestEngine(&now)

	_, decision, err := e.EvaluateOffer(startSession(t, e, "1000", "1300"), negotiation.NewFactors(1, 1))
	rq.NoError(err)

	rq.InDelta(300.0, lo.FromPtr(decision.RateDifference), 0.001)
	rq.InDelta(30.0, lo.FromPtr(decision.PercentageOverReference), 0.001)
}

func TestEngine_EvaluateOffer_KeepsPresetBounds(t *testing.T) {
	rq := require.New(t)

	now := startedAt
	e := newTestEngine(&now)

	s := startSession(t, e, "1000", "1300")
	s.MaximumAcceptable = lo.ToPtr(value.MustRate("1500"))

	next, decision, err := e.EvaluateOffer(s, negotiation.NewFactors(1, 1))
	rq.NoError(err)

	rq.Equal(value.DecisionAccepted, decision.Status)
	rq.Equal("1500.00", next.MaximumAcceptable.String())
	rq.Equal("1500.00", next.DecisionFactors.MaximumAcceptable)
}

func TestEngine_EvaluateOffer_MaximumAboveRateRange(t *testing.T) {
	testCases := []struct {
		name        string
		reference   string
		offer       string
		factors     negotiation.Factors
		wantRule    string
		wantMaximum string
		wantAudit   string
		wantAuto    string
	}{
		{
			name:        "offer under auto accept",
			reference:   "1000",
			offer:       "1000",
			factors:     negotiation.NewFactors(1000, 1),
			wantRule:    "auto_accept_threshold",
			wantMaximum: "999999.99",
			wantAudit:   "1000000.00",
			wantAuto:    "1020.00",
		},
		{
			name:        "offer under maximum",
			reference:   "600000",
			offer:       "900000",
			factors:     negotiation.NewFactors(1.7, 1),
			wantRule:    "within_maximum_acceptable",
			wantMaximum: "999999.99",
			wantAudit:   "1020000.00",
			wantAuto:    "612000.00",
		},
		{
			name:        "auto accept threshold above range",
			reference:   "990000",
			offer:       "999999.99",
			factors:     negotiation.NewFactors(1, 1),
			wantRule:    "auto_accept_threshold",
			wantMaximum: "990000.00",
			wantAudit:   "990000.00",
			wantAuto:    "1009800.00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			now := startedAt
			e := newTestEngine(&now)

			next, decision, err := e.EvaluateOffer(startSession(t, e, tc.reference, tc.offer), tc.factors)
			rq.NoError(err)

			rq.Equal(value.DecisionAccepted, decision.Status)
			rq.Equal(value.MustRate(tc.offer), lo.FromPtr(decision.AgreedRate))
			rq.Equal(tc.wantRule, next.DecisionFactors.Rule)
			rq.Equal(tc.wantMaximum, next.MaximumAcceptable.String())
			rq.Equal(tc.wantAudit, next.DecisionFactors.MaximumAcceptable)
			rq.Equal(tc.wantAuto, next.DecisionFactors.AutoAcceptThreshold)
		})
	}
}

func TestEngine_EvaluateOffer_InvalidFactors(t *testing.T) {
	testCases := []struct {
		name    string
		factors negotiation.Factors
	}{
		{name: "zero urgency", factors: negotiation.NewFactors(0, 1)},
		{name: "negative history", factors: negotiation.NewFactors(1, -0.5)},
		{name: "negative market", factors: negotiation.NewFactors(1, 1).WithMarket(-1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			now := startedAt
			e := newTestEngine(&now)

			_, _, err := e.EvaluateOffer(startSession(t, e, "1000", "1300"), tc.factors)
			rq.Error(err)
			rq.True(domain.HasCode(err, errcodes.InvalidFactor))
		})
	}
}

func TestEngine_AdvanceRound(t *testing.T) {
	rq := require.New(t)

	now := startedAt
	e := newTestEngine(&now)

	s, _, err := e.EvaluateOffer(startSession(t, e, "1000", "1300"), negotiation.NewFactors(1, 1))
	rq.NoError(err)
	rq.NotNil(s.CounterOffer)

	now = now.Add(time.Minute)

	next, err := e.AdvanceRound(s, value.MustRate("1250"))
	rq.NoError(err)

	rq.Equal(2, next.RoundNumber)
	rq.Equal("1250.00", next.CarrierOffer.String())
	rq.Empty(next.Decision)
	rq.Nil(next.CounterOffer)
	rq.Nil(next.DecisionFactors)
	rq.Nil(next.MinimumAcceptable)
	rq.Nil(next.MaximumAcceptable)
	rq.Equal(now, next.UpdatedAt)

	rq.Equal(1, s.RoundNumber)
	rq.NotNil(s.CounterOffer)
}

func TestEngine_AdvanceRound_AtLimit(t *testing.T) {
	rq := require.New(t)

	now := startedAt
	e := newTestEngine(&now)

	s := startSession(t, e, "1000", "1300")
	s.RoundNumber = s.MaxRounds

	next, err := e.AdvanceRound(s, value.MustRate("1250"))
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.NegotiationPrecondition))
	rq.Equal(s, next)
}

func TestEngine_ThreeRoundNegotiation(t *testing.T) {
	rq := require.New(t)

	now := startedAt
	e := newTestEngine(&now)
	factors := negotiation.NewFactors(1, 1)

	s := startSession(t, e, "1000", "1300")

	s, decision, err := e.EvaluateOffer(s, factors)
	rq.NoError(err)
	rq.Equal(value.DecisionCounterOffer, decision.Status)

	s, err = e.AdvanceRound(s, value.MustRate("1250"))
	rq.NoError(err)

	s, decision, err = e.EvaluateOffer(s, factors)
	rq.NoError(err)
	rq.Equal(value.DecisionCounterOffer, decision.Status)
	rq.Equal(1, lo.FromPtr(decision.RemainingRounds))

	s, err = e.AdvanceRound(s, value.MustRate("1200"))
	rq.NoError(err)

	s, decision, err = e.EvaluateOffer(s, factors)
	rq.NoError(err)
	rq.Equal(value.DecisionRejected, decision.Status)
	rq.False(s.CanContinue())
	rq.Equal(0, s.RemainingRounds())
}

func TestEngine_Terminal(t *testing.T) {
	now := startedAt
	e := newTestEngine(&now)

	closers := map[string]func(entity.NegotiationSession) (entity.NegotiationSession, error){
		"accept":  func(s entity.NegotiationSession) (entity.NegotiationSession, error) { return e.AcceptDeal(s, nil) },
		"reject":  func(s entity.NegotiationSession) (entity.NegotiationSession, error) { return e.RejectDeal(s, "") },
		"abandon": func(s entity.NegotiationSession) (entity.NegotiationSession, error) { return e.Abandon(s, "") },
		"timeout": e.Timeout,
	}

	testCases := []struct {
		name   string
		op     string
		status value.FinalStatus
		reason string
	}{
		{name: "accept deal", op: "accept", status: value.FinalDealAccepted},
		{name: "reject deal", op: "reject", status: value.FinalDealRejected, reason: "Carrier offer rejected"},
		{name: "abandon", op: "abandon", status: value.FinalAbandoned, reason: "Negotiation abandoned"},
		{name: "timeout", op: "timeout", status: value.FinalTimeout, reason: "Negotiation timed out"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			now = startedAt
			s := startSession(t, e, "1000", "1100")
			now = startedAt.Add(90 * time.Second)

			closed, err := closers[tc.op](s)
			rq.NoError(err)

			rq.Equal(tc.status, closed.FinalStatus)
			rq.False(closed.IsActive)
			rq.False(closed.CanContinue())
			rq.Equal(tc.reason, closed.Reason)
			rq.Equal(90, closed.TotalDurationSeconds)
			rq.NotNil(closed.SessionEnd)
			rq.Equal(now, *closed.SessionEnd)

			for op, fn := range closers {
				again, err := fn(closed)
				rq.Error(err, op)
				rq.True(domain.HasCode(err, errcodes.NegotiationPrecondition), op)
				rq.Equal(closed, again, op)
			}

			_, _, err = e.EvaluateOffer(closed, negotiation.NewFactors(1, 1))
			rq.True(domain.HasCode(err, errcodes.NegotiationPrecondition))

			_, err = e.AdvanceRound(closed, value.MustRate("1000"))
			rq.True(domain.HasCode(err, errcodes.NegotiationPrecondition))
		})
	}
}

func TestEngine_AcceptDeal_AgreedRate(t *testing.T) {
	rq := require.New(t)

	now := startedAt
	e := newTestEngine(&now)

	s := startSession(t, e, "1000", "1300")

	closed, err := e.AcceptDeal(s, nil)
	rq.NoError(err)
	rq.Equal("1300.00", closed.AgreedRate.String())

	closed, err = e.AcceptDeal(s, lo.ToPtr(value.MustRate("1210")))
	rq.NoError(err)
	rq.Equal("1210.00", closed.AgreedRate.String())
	rq.Nil(s.AgreedRate)
}
