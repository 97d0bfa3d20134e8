package fmcsa_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/infrastructure/fmcsa"
	"carrier_desk/pkg/errcodes"
)

func TestRetryPolicy_Backoff(t *testing.T) {
	p := fmcsa.DefaultRetryPolicy()

	testCases := []struct {
		name    string
		attempt int
		want    time.Duration
	}{
		{name: "first", attempt: 1, want: 500 * time.Millisecond},
		{name: "second", attempt: 2, want: time.Second},
		{name: "third", attempt: 3, want: 2 * time.Second},
		{name: "fourth", attempt: 4, want: 4 * time.Second},
		{name: "capped", attempt: 8, want: 4 * time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, p.Backoff(tc.attempt))
		})
	}
}

func TestRetryPolicy_Do(t *testing.T) {
	unavailable := domain.NewError(errcodes.RegistryUnavailable, "503")
	auth := domain.NewError(errcodes.RegistryAuthFailed, "401")

	testCases := []struct {
		name     string
		errs     []error
		want     error
		attempts int
	}{
		{name: "first attempt succeeds", errs: []error{nil}, attempts: 1},
		{name: "succeeds after transient failures", errs: []error{unavailable, unavailable, nil}, attempts: 3},
		{name: "gives up after max attempts", errs: []error{unavailable, unavailable, unavailable, nil}, want: unavailable, attempts: 3},
		{name: "auth failure is not retried", errs: []error{auth, nil}, want: auth, attempts: 1},
		{name: "plain error is not retried", errs: []error{errors.ErrUnsupported, nil}, want: errors.ErrUnsupported, attempts: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			p := fmcsa.DefaultRetryPolicy()
			p.InitialBackoff = time.Millisecond

			attempts := 0
			err := p.Do(context.Background(), func(context.Context) error {
				err := tc.errs[attempts]
				attempts++
				return err
			})

			rq.Equal(tc.attempts, attempts)
			if tc.want == nil {
				rq.NoError(err)
				return
			}
			rq.ErrorIs(err, tc.want)
		})
	}
}

func TestRetryPolicy_Do_ContextCanceled(t *testing.T) {
	rq := require.New(t)

	p := fmcsa.DefaultRetryPolicy()
	p.InitialBackoff = time.Hour

	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := p.Do(ctx, func(context.Context) error {
		attempts++
		cancel()
		return domain.NewError(errcodes.RegistryTimeout, "timeout")
	})

	rq.Equal(1, attempts)
	rq.ErrorIs(err, context.Canceled)
	rq.True(domain.HasCode(err, errcodes.RegistryTimeout))
}

func TestRetryPolicy_ZeroValue(t *testing.T) {
	rq := require.New(t)

	attempts := 0
	err := fmcsa.RetryPolicy{}.Do(context.Background(), func(context.Context) error {
		attempts++
		return domain.NewError(errcodes.RegistryUnavailable, "503")
	})

	rq.Error(err)
	rq.Equal(1, attempts)
}
