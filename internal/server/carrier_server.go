package server

import (
	"context"
	"fmt"
	"net/http"

	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/service/verification"
	"carrier_desk/internal/domain/value"
	"carrier_desk/pkg/httpx/reply"
	"carrier_desk/pkg/httpx/req"
	"carrier_desk/pkg/rest"
)

//go:generate moq -rm -out carrier_service_mock.gen.go . carrierService:CarrierServiceMock

type carrierService interface {
	Verify(ctx context.Context, raw string) (entity.VerificationResult, error)
	Snapshot(ctx context.Context, raw string) (entity.Snapshot, error)
	CacheStatus(ctx context.Context, raw string) ([]verification.KeyStatus, error)
	Invalidate(ctx context.Context, raw string) error
	Deactivate(ctx context.Context, raw string) error
}

type CarrierServer struct {
	carrierService carrierService
}

func NewCarrierServer(carrierService carrierService) CarrierServer {
	return CarrierServer{
		carrierService: carrierService,
	}
}

// postV1CarriersVerify answers 200 for every verification outcome, including
// malformed MC numbers; the result carries the reason.
func (s CarrierServer) postV1CarriersVerify(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.VerifyCarrierRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.carrierService.Verify(ctx, request.MCNumber)
	if err != nil {
		return fmt.Errorf("carrierService.Verify: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, result)

	return nil
}

func (s CarrierServer) getV1CarrierSnapshot(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	snapshot, err := s.carrierService.Snapshot(ctx, r.PathValue("mc"))
	if err != nil {
		return fmt.Errorf("carrierService.Snapshot: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, snapshot)

	return nil
}

func (s CarrierServer) getV1CarrierCache(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	raw := r.PathValue("mc")

	keys, err := s.carrierService.CacheStatus(ctx, raw)
	if err != nil {
		return fmt.Errorf("carrierService.CacheStatus: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTCacheStatus(value.NormalizeMCNumber(raw), keys))

	return nil
}

func (s CarrierServer) deleteV1CarrierCache(w http.ResponseWriter, r *http.Request) error {
	if err := s.carrierService.Invalidate(r.Context(), r.PathValue("mc")); err != nil {
		return fmt.Errorf("carrierService.Invalidate: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func (s CarrierServer) deleteV1Carrier(w http.ResponseWriter, r *http.Request) error {
	if err := s.carrierService.Deactivate(r.Context(), r.PathValue("mc")); err != nil {
		return fmt.Errorf("carrierService.Deactivate: %w", err)
	}

	reply.NoContent(w)

	return nil
}
