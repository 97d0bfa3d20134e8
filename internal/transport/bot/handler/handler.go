package handler

import (
	"context"

	"github.com/google/uuid"

	"carrier_desk/internal/domain/entity"
)

//go:generate moq -rm -out carrier_verifier_mock.gen.go . carrierVerifier:CarrierVerifierMock
//go:generate moq -rm -out negotiation_reader_mock.gen.go . negotiationReader:NegotiationReaderMock

type carrierVerifier interface {
	Verify(ctx context.Context, raw string) (entity.VerificationResult, error)
}

type negotiationReader interface {
	Get(ctx context.Context, id uuid.UUID) (entity.NegotiationSession, error)
}

type Handler struct {
	verifier     carrierVerifier
	negotiations negotiationReader
}

func New(verifier carrierVerifier, negotiations negotiationReader) *Handler {
	return &Handler{
		verifier:     verifier,
		negotiations: negotiations,
	}
}
