package view_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/value"
	"carrier_desk/internal/transport/bot/view"
	"carrier_desk/pkg/errcodes"
)

func rate(s string) value.Rate {
	r, err := value.NewRate(decimal.RequireFromString(s))
	if err != nil {
		panic(err)
	}

	return r
}

func TestVerificationText(t *testing.T) {
	testCases := []struct {
		name     string
		result   entity.VerificationResult
		contains []string
		absent   []string
	}{
		{
			name: "eligible",
			result: entity.VerificationResult{
				MCNumber: "123456",
				Eligible: true,
				CarrierInfo: &entity.CarrierInfo{
					LegalName:       "Prairie Line & Sons",
					OperatingStatus: value.OperatingAuthorizedForHire,
					Status:          value.CarrierActive,
				},
				InsuranceInfo:      &entity.InsuranceInfo{InsuranceOnFile: true},
				VerificationSource: value.SourceRegistry,
			},
			contains: []string{"✅ <b>Eligible</b>", "<code>123456</code>", "Prairie Line &amp; Sons", "Insurance on file: yes", "source: REGISTRY"},
			absent:   []string{"Reason"},
		},
		{
			name: "fallback with warning",
			result: entity.VerificationResult{
				MCNumber:           "654321",
				Reason:             "No insurance on file",
				Warning:            "registry unavailable",
				VerificationSource: value.SourceDatabaseFallback,
			},
			contains: []string{"⛔ <b>Not eligible</b>", "Reason: No insurance on file", "⚠️ registry unavailable"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			text := view.VerificationText(tc.result)

			for _, s := range tc.contains {
				rq.Contains(text, s)
			}

			for _, s := range tc.absent {
				rq.NotContains(text, s)
			}
		})
	}
}

func TestNegotiationText(t *testing.T) {
	id := uuid.MustParse("6f1c1f5e-8f7c-4c59-a1c2-0f3a06b1c001")
	counter := rate("1950")
	agreed := rate("1900")

	testCases := []struct {
		name     string
		session  entity.NegotiationSession
		contains []string
		absent   []string
	}{
		{
			name: "open with counter",
			session: entity.NegotiationSession{
				ID: id, LoadID: "L-1", MCNumber: value.MustMCNumber("123456"),
				RoundNumber: 1, MaxRounds: 3,
				ReferenceRate: rate("2000"), CarrierOffer: rate("2300"),
				CounterOffer: &counter, IsActive: true,
			},
			contains: []string{"<b>Load L-1</b>", "Round 1/3, status: open", "Reference $2000.00, carrier offer $2300.00", "Our counter $1950.00", id.String()},
			absent:   []string{"Agreed"},
		},
		{
			name: "booked",
			session: entity.NegotiationSession{
				ID: id, LoadID: "L-1", MCNumber: value.MustMCNumber("123456"),
				RoundNumber: 2, MaxRounds: 3,
				ReferenceRate: rate("2000"), CarrierOffer: rate("1900"),
				CounterOffer: &counter, AgreedRate: &agreed,
				FinalStatus: value.FinalDealAccepted,
			},
			contains: []string{"status: DEAL_ACCEPTED", "Agreed $1900.00"},
			absent:   []string{"Our counter"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			text := view.NegotiationText(tc.session)

			for _, s := range tc.contains {
				rq.Contains(text, s)
			}

			for _, s := range tc.absent {
				rq.NotContains(text, s)
			}
		})
	}
}

func TestErrorText(t *testing.T) {
	rq := require.New(t)

	rq.Equal("❌ registry timed out", view.ErrorText(domain.NewError(errcodes.RegistryTimeout, "registry timed out")))
	rq.Equal(view.InternalError, view.ErrorText(errors.New("pq: connection reset")))
}
