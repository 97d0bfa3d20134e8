// Package rest holds the request and response bodies of the public HTTP API.
package rest

import (
	"encoding/json"
	"time"
)

// Money amounts are JSON numbers with two decimals, e.g. 1210.00.
type Money = json.Number

type VerifyCarrierRequest struct {
	MCNumber string `json:"mc_number" validate:"required"`
}

// Factors of an offer evaluation. Omitted factors are neutral (1.0).
type Factors struct {
	UrgencyFactor *float64 `json:"urgency_factor,omitempty" validate:"omitempty,gt=0"`
	HistoryFactor *float64 `json:"history_factor,omitempty" validate:"omitempty,gt=0"`
	MarketFactor  *float64 `json:"market_factor,omitempty" validate:"omitempty,gt=0"`
}

type StartNegotiationRequest struct {
	Factors

	LoadID   string `json:"load_id" validate:"required"`
	MCNumber string `json:"mc_number" validate:"required"`
	Offer    Money  `json:"offer" validate:"required"`
}

type SubmitOfferRequest struct {
	Factors

	Offer Money `json:"offer" validate:"required"`
}

type AbandonNegotiationRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type Negotiation struct {
	ID                   string     `json:"id"`
	LoadID               string     `json:"load_id"`
	MCNumber             string     `json:"mc_number"`
	RoundNumber          int        `json:"round_number"`
	MaxRounds            int        `json:"max_rounds"`
	RemainingRounds      int        `json:"remaining_rounds"`
	ReferenceRate        Money      `json:"reference_rate"`
	CarrierOffer         Money      `json:"carrier_offer"`
	Decision             string     `json:"decision,omitempty"`
	CounterOffer         *Money     `json:"counter_offer,omitempty"`
	FinalStatus          string     `json:"final_status,omitempty"`
	AgreedRate           *Money     `json:"agreed_rate,omitempty"`
	Reason               string     `json:"reason,omitempty"`
	IsActive             bool       `json:"is_active"`
	SessionStart         time.Time  `json:"session_start"`
	SessionEnd           *time.Time `json:"session_end,omitempty"`
	TotalDurationSeconds int        `json:"total_duration_seconds"`
}

type Decision struct {
	NegotiationID           string    `json:"negotiation_id"`
	Status                  string    `json:"status"`
	LoadID                  string    `json:"load_id"`
	CarrierOffer            Money     `json:"carrier_offer"`
	CounterOffer            *Money    `json:"counter_offer,omitempty"`
	AgreedRate              *Money    `json:"agreed_rate,omitempty"`
	RoundNumber             int       `json:"round_number"`
	RemainingRounds         *int      `json:"remaining_rounds,omitempty"`
	Message                 string    `json:"message"`
	Justification           string    `json:"justification,omitempty"`
	RateDifference          *float64  `json:"rate_difference,omitempty"`
	PercentageOverReference *float64  `json:"percentage_over_reference,omitempty"`
	Timestamp               time.Time `json:"timestamp"`
}

type NegotiationOutcome struct {
	Negotiation Negotiation `json:"negotiation"`
	Decision    Decision    `json:"decision"`
}

type CacheKey struct {
	Key                 string `json:"key"`
	Exists              bool   `json:"exists"`
	RemainingTTLSeconds *int64 `json:"remaining_ttl_seconds,omitempty"`
}

type CacheStatus struct {
	MCNumber string     `json:"mc_number"`
	Keys     []CacheKey `json:"keys"`
}
