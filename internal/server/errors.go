package server

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"carrier_desk/internal/domain"
	"carrier_desk/pkg/errcodes"
	"carrier_desk/pkg/httpx/reply"
)

//nolint:gochecknoglobals
var statusByCode = map[failure.ErrorCode]int{
	errcodes.ValidationError: http.StatusBadRequest,
	errcodes.InvalidMCNumber: http.StatusBadRequest,
	errcodes.InvalidRate:     http.StatusBadRequest,
	errcodes.InvalidLoadID:   http.StatusBadRequest,
	errcodes.InvalidFactor:   http.StatusBadRequest,

	errcodes.CarrierNotFound:     http.StatusNotFound,
	errcodes.LoadNotFound:        http.StatusNotFound,
	errcodes.NegotiationNotFound: http.StatusNotFound,

	errcodes.CarrierNotEligible:      http.StatusUnprocessableEntity,
	errcodes.NegotiationPrecondition: http.StatusConflict,
	errcodes.NoCounterOffer:          http.StatusConflict,
	errcodes.NegotiationConflict:     http.StatusConflict,

	errcodes.RegistryAuthFailed:  http.StatusBadGateway,
	errcodes.RegistryBadResponse: http.StatusBadGateway,
	errcodes.RegistryRateLimited: http.StatusServiceUnavailable,
	errcodes.RegistryUnavailable: http.StatusServiceUnavailable,
	errcodes.RegistryTimeout:     http.StatusGatewayTimeout,
}

// writeError answers domain errors by their code and leaves everything else,
// including request decoding failures, to reply.Error.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		reply.Error(ctx, w, err)
		return
	}

	status, ok := statusByCode[appErr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}

	message := appErr.Message
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	reply.Fail(ctx, w, status, appErr.Code, message, err)
}
