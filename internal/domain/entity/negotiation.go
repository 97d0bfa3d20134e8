package entity

import (
	"time"

	"github.com/google/uuid"

	"carrier_desk/internal/domain/value"
)

// NegotiationSession is a value: the engine never mutates a session it was
// given, it returns an updated copy. Pointer fields are never written
// through, so copies may share them.
type NegotiationSession struct {
	ID            uuid.UUID
	LoadID        string
	MCNumber      value.MCNumber
	RoundNumber   int
	MaxRounds     int
	ReferenceRate value.Rate
	CarrierOffer  value.Rate

	MinimumAcceptable *value.Rate
	MaximumAcceptable *value.Rate

	// Decision of the current round.
	Decision        value.DecisionStatus
	CounterOffer    *value.Rate
	DecisionFactors *DecisionFactors

	FinalStatus          value.FinalStatus
	AgreedRate           *value.Rate
	Reason               string
	IsActive             bool
	SessionStart         time.Time
	SessionEnd           *time.Time
	TotalDurationSeconds int

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanContinue reports whether another round may still be played.
func (s NegotiationSession) CanContinue() bool {
	return s.IsActive && s.RoundNumber < s.MaxRounds && !s.FinalStatus.IsTerminal()
}

func (s NegotiationSession) RemainingRounds() int {
	if s.RoundNumber >= s.MaxRounds {
		return 0
	}
	return s.MaxRounds - s.RoundNumber
}

// DecisionFactors is an audit snapshot of what an evaluation saw. It is never
// read back by the engine.
type DecisionFactors struct {
	UrgencyFactor           float64 `json:"urgency_factor"`
	HistoryFactor           float64 `json:"history_factor"`
	MarketFactor            float64 `json:"market_factor"`
	ReferenceRate           string  `json:"reference_rate"`
	MinimumAcceptable       string  `json:"minimum_acceptable"`
	MaximumAcceptable       string  `json:"maximum_acceptable"`
	AutoAcceptThreshold     string  `json:"auto_accept_threshold"`
	PercentageOverReference float64 `json:"percentage_over_reference"`
	Rule                    string  `json:"rule"`
}

// Decision is the response to a carrier offer.
type Decision struct {
	NegotiationID           uuid.UUID            `json:"negotiation_id"`
	Status                  value.DecisionStatus `json:"status"`
	LoadID                  string               `json:"load_id"`
	CarrierOffer            value.Rate           `json:"carrier_offer"`
	CounterOffer            *value.Rate          `json:"counter_offer,omitempty"`
	AgreedRate              *value.Rate          `json:"agreed_rate,omitempty"`
	RoundNumber             int                  `json:"round_number"`
	RemainingRounds         *int                 `json:"remaining_rounds,omitempty"`
	Message                 string               `json:"message"`
	Justification           string               `json:"justification,omitempty"`
	RateDifference          *float64             `json:"rate_difference,omitempty"`
	PercentageOverReference *float64             `json:"percentage_over_reference,omitempty"`
	Timestamp               time.Time            `json:"timestamp"`
}
