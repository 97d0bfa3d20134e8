package value

import (
	"fmt"

	"carrier_desk/internal/domain"
	"carrier_desk/pkg/errcodes"
)

// OperatingStatus is the carrier's operating authority as reported by the registry.
type OperatingStatus string

const (
	OperatingAuthorizedForHire OperatingStatus = "AUTHORIZED_FOR_HIRE"
	OperatingNotAuthorized     OperatingStatus = "NOT_AUTHORIZED"
	OperatingOutOfService      OperatingStatus = "OUT_OF_SERVICE"
	OperatingUnknown           OperatingStatus = "UNKNOWN"
)

func (s OperatingStatus) Valid() bool {
	switch s {
	case OperatingAuthorizedForHire, OperatingNotAuthorized, OperatingOutOfService, OperatingUnknown:
		return true
	}
	return false
}

func ParseOperatingStatus(s string) (OperatingStatus, error) {
	return parseEnum[OperatingStatus](s, "operating status")
}

// CarrierStatus is the record status; soft delete flips it to INACTIVE.
type CarrierStatus string

const (
	CarrierActive   CarrierStatus = "ACTIVE"
	CarrierInactive CarrierStatus = "INACTIVE"
)

func (s CarrierStatus) Valid() bool {
	switch s {
	case CarrierActive, CarrierInactive:
		return true
	}
	return false
}

func ParseCarrierStatus(s string) (CarrierStatus, error) {
	return parseEnum[CarrierStatus](s, "carrier status")
}

type SafetyRating string

const (
	SafetySatisfactory   SafetyRating = "SATISFACTORY"
	SafetyConditional    SafetyRating = "CONDITIONAL"
	SafetyUnsatisfactory SafetyRating = "UNSATISFACTORY"
	SafetyNotRated       SafetyRating = "NOT_RATED"
)

func (s SafetyRating) Valid() bool {
	switch s {
	case SafetySatisfactory, SafetyConditional, SafetyUnsatisfactory, SafetyNotRated:
		return true
	}
	return false
}

func ParseSafetyRating(s string) (SafetyRating, error) {
	return parseEnum[SafetyRating](s, "safety rating")
}

// VerificationSource tells which tier produced a verification result.
type VerificationSource string

const (
	SourceCache            VerificationSource = "CACHE"
	SourceRegistry         VerificationSource = "REGISTRY"
	SourceDatabaseFallback VerificationSource = "DATABASE_FALLBACK"
	SourceNotFound         VerificationSource = "NOT_FOUND"
	SourceValidationError  VerificationSource = "VALIDATION_ERROR"
)

func (s VerificationSource) Valid() bool {
	switch s {
	case SourceCache, SourceRegistry, SourceDatabaseFallback, SourceNotFound, SourceValidationError:
		return true
	}
	return false
}

func ParseVerificationSource(s string) (VerificationSource, error) {
	return parseEnum[VerificationSource](s, "verification source")
}

// DecisionStatus is the engine's answer to a single offer.
type DecisionStatus string

const (
	DecisionAccepted     DecisionStatus = "ACCEPTED"
	DecisionCounterOffer DecisionStatus = "COUNTER_OFFER"
	DecisionRejected     DecisionStatus = "REJECTED"
)

func (s DecisionStatus) Valid() bool {
	switch s {
	case DecisionAccepted, DecisionCounterOffer, DecisionRejected:
		return true
	}
	return false
}

func ParseDecisionStatus(s string) (DecisionStatus, error) {
	return parseEnum[DecisionStatus](s, "decision status")
}

// FinalStatus is the terminal state of a negotiation. FinalOpen (empty) means
// the session is still running.
type FinalStatus string

const (
	FinalOpen         FinalStatus = ""
	FinalDealAccepted FinalStatus = "DEAL_ACCEPTED"
	FinalDealRejected FinalStatus = "DEAL_REJECTED"
	FinalAbandoned    FinalStatus = "ABANDONED"
	FinalTimeout      FinalStatus = "TIMEOUT"
)

func (s FinalStatus) Valid() bool {
	switch s {
	case FinalOpen, FinalDealAccepted, FinalDealRejected, FinalAbandoned, FinalTimeout:
		return true
	}
	return false
}

func (s FinalStatus) IsTerminal() bool {
	return s != FinalOpen
}

func ParseFinalStatus(s string) (FinalStatus, error) {
	return parseEnum[FinalStatus](s, "final status")
}

type enum interface {
	~string
	Valid() bool
}

func parseEnum[T enum](s, what string) (T, error) {
	v := T(s)
	if !v.Valid() {
		return v, domain.NewError(errcodes.ValidationError, fmt.Sprintf("unknown %s %q", what, s))
	}

	return v, nil
}
