package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	// Value types
	InvalidMCNumber failure.ErrorCode = "InvalidMCNumber"
	InvalidRate     failure.ErrorCode = "InvalidRate"
	InvalidLoadID   failure.ErrorCode = "InvalidLoadID"
	InvalidFactor   failure.ErrorCode = "InvalidFactor"

	// Carrier registry
	CarrierNotFound     failure.ErrorCode = "CarrierNotFound"
	CarrierNotEligible  failure.ErrorCode = "CarrierNotEligible"
	RegistryAuthFailed  failure.ErrorCode = "RegistryAuthFailed"  // misconfigured web key, never retried
	RegistryRateLimited failure.ErrorCode = "RegistryRateLimited" // 429 from the registry
	RegistryTimeout     failure.ErrorCode = "RegistryTimeout"
	RegistryUnavailable failure.ErrorCode = "RegistryUnavailable"
	RegistryBadResponse failure.ErrorCode = "RegistryBadResponse"

	// Negotiation
	LoadNotFound            failure.ErrorCode = "LoadNotFound"
	NegotiationNotFound     failure.ErrorCode = "NegotiationNotFound"
	NegotiationPrecondition failure.ErrorCode = "NegotiationPrecondition" // caller bug: terminal session or round limit
	NegotiationConflict     failure.ErrorCode = "NegotiationConflict"     // concurrent update of the same session
	NoCounterOffer          failure.ErrorCode = "NoCounterOffer"
)
