package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/google/uuid"

	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/service/negotiation"
	"carrier_desk/internal/domain/value"
	"carrier_desk/pkg/errcodes"
	"carrier_desk/pkg/httpx/reply"
	"carrier_desk/pkg/httpx/req"
	"carrier_desk/pkg/rest"
)

//go:generate moq -rm -out negotiation_service_mock.gen.go . negotiationService:NegotiationServiceMock

type negotiationService interface {
	Start(ctx context.Context, in negotiation.StartInput) (negotiation.Outcome, error)
	SubmitOffer(ctx context.Context, id uuid.UUID, offer value.Rate, factors negotiation.Factors) (negotiation.Outcome, error)
	AcceptCounter(ctx context.Context, id uuid.UUID) (entity.NegotiationSession, error)
	Abandon(ctx context.Context, id uuid.UUID, reason string) (entity.NegotiationSession, error)
	Get(ctx context.Context, id uuid.UUID) (entity.NegotiationSession, error)
}

type NegotiationServer struct {
	negotiationService negotiationService
}

func NewNegotiationServer(negotiationService negotiationService) NegotiationServer {
	return NegotiationServer{
		negotiationService: negotiationService,
	}
}

func (s NegotiationServer) postV1Negotiations(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.StartNegotiationRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	offer, err := newDomainRate(request.Offer)
	if err != nil {
		return fmt.Errorf("newDomainRate: %w", err)
	}

	outcome, err := s.negotiationService.Start(ctx, negotiation.StartInput{
		LoadID:   request.LoadID,
		MCNumber: request.MCNumber,
		Offer:    offer,
		Factors:  newDomainFactors(request.Factors),
	})
	if err != nil {
		return fmt.Errorf("negotiationService.Start: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTOutcome(outcome))

	return nil
}

func (s NegotiationServer) getV1Negotiation(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := negotiationID(r)
	if err != nil {
		return err
	}

	session, err := s.negotiationService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("negotiationService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTNegotiation(session))

	return nil
}

func (s NegotiationServer) postV1NegotiationOffers(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := negotiationID(r)
	if err != nil {
		return err
	}

	var request rest.SubmitOfferRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	offer, err := newDomainRate(request.Offer)
	if err != nil {
		return fmt.Errorf("newDomainRate: %w", err)
	}

	outcome, err := s.negotiationService.SubmitOffer(ctx, id, offer, newDomainFactors(request.Factors))
	if err != nil {
		return fmt.Errorf("negotiationService.SubmitOffer: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTOutcome(outcome))

	return nil
}

func (s NegotiationServer) postV1NegotiationAccept(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := negotiationID(r)
	if err != nil {
		return err
	}

	session, err := s.negotiationService.AcceptCounter(ctx, id)
	if err != nil {
		return fmt.Errorf("negotiationService.AcceptCounter: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTNegotiation(session))

	return nil
}

func (s NegotiationServer) postV1NegotiationAbandon(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := negotiationID(r)
	if err != nil {
		return err
	}

	var request rest.AbandonNegotiationRequest

	if r.ContentLength != 0 {
		if err := req.Read(r, &request); err != nil {
			return fmt.Errorf("req.Read: %w", err)
		}
	}

	session, err := s.negotiationService.Abandon(ctx, id, request.Reason)
	if err != nil {
		return fmt.Errorf("negotiationService.Abandon: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTNegotiation(session))

	return nil
}

func negotiationID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("uuid.Parse: %w", err),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("negotiation id must be a UUID"),
		)
	}

	return id, nil
}
