package server

import (
	"github.com/samber/lo"

	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/service/negotiation"
	"carrier_desk/internal/domain/service/verification"
	"carrier_desk/internal/domain/value"
	"carrier_desk/pkg/lox"
	"carrier_desk/pkg/rest"
)

const neutralFactor = 1.0

func money(r value.Rate) rest.Money {
	return rest.Money(r.String())
}

func moneyPtr(r *value.Rate) *rest.Money {
	if r == nil {
		return nil
	}

	return lo.ToPtr(money(*r))
}

func newDomainRate(m rest.Money) (value.Rate, error) {
	return value.ParseRate(m.String())
}

func newDomainFactors(f rest.Factors) negotiation.Factors {
	return negotiation.NewFactors(
		lo.FromPtrOr(f.UrgencyFactor, neutralFactor),
		lo.FromPtrOr(f.HistoryFactor, neutralFactor),
	).WithMarket(lo.FromPtrOr(f.MarketFactor, neutralFactor))
}

func newRESTNegotiation(s entity.NegotiationSession) rest.Negotiation {
	return rest.Negotiation{
		ID:                   s.ID.String(),
		LoadID:               s.LoadID,
		MCNumber:             s.MCNumber.String(),
		RoundNumber:          s.RoundNumber,
		MaxRounds:            s.MaxRounds,
		RemainingRounds:      s.RemainingRounds(),
		ReferenceRate:        money(s.ReferenceRate),
		CarrierOffer:         money(s.CarrierOffer),
		Decision:             string(s.Decision),
		CounterOffer:         moneyPtr(s.CounterOffer),
		FinalStatus:          string(s.FinalStatus),
		AgreedRate:           moneyPtr(s.AgreedRate),
		Reason:               s.Reason,
		IsActive:             s.IsActive,
		SessionStart:         s.SessionStart,
		SessionEnd:           s.SessionEnd,
		TotalDurationSeconds: s.TotalDurationSeconds,
	}
}

func newRESTDecision(d entity.Decision) rest.Decision {
	return rest.Decision{
		NegotiationID:           d.NegotiationID.String(),
		Status:                  string(d.Status),
		LoadID:                  d.LoadID,
		CarrierOffer:            money(d.CarrierOffer),
		CounterOffer:            moneyPtr(d.CounterOffer),
		AgreedRate:              moneyPtr(d.AgreedRate),
		RoundNumber:             d.RoundNumber,
		RemainingRounds:         d.RemainingRounds,
		Message:                 d.Message,
		Justification:           d.Justification,
		RateDifference:          d.RateDifference,
		PercentageOverReference: d.PercentageOverReference,
		Timestamp:               d.Timestamp,
	}
}

func newRESTOutcome(o negotiation.Outcome) rest.NegotiationOutcome {
	return rest.NegotiationOutcome{
		Negotiation: newRESTNegotiation(o.Session),
		Decision:    newRESTDecision(o.Decision),
	}
}

func newRESTCacheStatus(mc string, keys []verification.KeyStatus) rest.CacheStatus {
	return rest.CacheStatus{
		MCNumber: mc,
		Keys: lox.Map(keys, func(k verification.KeyStatus) rest.CacheKey {
			key := rest.CacheKey{Key: k.Key, Exists: k.Exists}
			if k.Exists && k.RemainingTTL > 0 {
				key.RemainingTTLSeconds = lo.ToPtr(int64(k.RemainingTTL.Seconds()))
			}
			return key
		}),
	}
}
