package fmcsa

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"

	"carrier_desk/internal/domain"
	"carrier_desk/pkg/errcodes"
)

// statusError maps a non-200 registry response to a domain error.
func statusError(status int) error {
	msg := fmt.Sprintf("registry responded %d %s", status, http.StatusText(status))

	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return domain.NewError(errcodes.RegistryAuthFailed, msg)
	case status == http.StatusNotFound:
		return domain.NewError(errcodes.CarrierNotFound, msg)
	case status == http.StatusTooManyRequests:
		return domain.NewError(errcodes.RegistryRateLimited, msg)
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return domain.NewError(errcodes.RegistryTimeout, msg)
	case status >= http.StatusInternalServerError:
		return domain.NewError(errcodes.RegistryUnavailable, msg)
	default:
		return domain.NewError(errcodes.RegistryBadResponse, msg)
	}
}

// transportError classifies a failure to get any response at all.
func transportError(err error) error {
	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.WrapError(err, errcodes.RegistryTimeout, "registry request deadline exceeded")
	case errors.As(err, &netErr) && netErr.Timeout():
		return domain.WrapError(err, errcodes.RegistryTimeout, "registry request timed out")
	case errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, syscall.ECONNRESET):
		return domain.WrapError(err, errcodes.RegistryUnavailable, "registry connection failed")
	default:
		return domain.WrapError(err, errcodes.RegistryUnavailable, "registry request failed")
	}
}

// IsRetryable reports whether another attempt may succeed: rate limits,
// timeouts and outages are transient, everything else is not.
func IsRetryable(err error) bool {
	code, ok := domain.GetCode(err)
	if !ok {
		return false
	}

	switch code {
	case errcodes.RegistryRateLimited, errcodes.RegistryTimeout, errcodes.RegistryUnavailable:
		return true
	default:
		return false
	}
}
