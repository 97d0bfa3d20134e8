package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/entity"
	"carrier_desk/internal/domain/service/negotiation"
	"carrier_desk/internal/domain/service/verification"
	"carrier_desk/internal/domain/value"
	"carrier_desk/internal/server"
	"carrier_desk/pkg/errcodes"
)

var (
	sessionID = uuid.MustParse("7b0c6f8e-2f43-4d8e-9a59-1d01a7c5b7a1") //nolint:gochecknoglobals
	startedAt = time.Date(2026, time.March, 2, 15, 4, 5, 0, time.UTC)  //nolint:gochecknoglobals
)

func newRouter(carriers *server.CarrierServiceMock, negotiations *server.NegotiationServiceMock) http.Handler {
	r := chi.NewRouter()

	server.NewServer(
		server.NewCarrierServer(carriers),
		server.NewNegotiationServer(negotiations),
	).RegisterRoutes(r)

	return r
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func counterSession() entity.NegotiationSession {
	counter := value.MustRate("1210.00")

	return entity.NegotiationSession{
		ID:            sessionID,
		LoadID:        "LOAD-1",
		MCNumber:      value.MustMCNumber("123456"),
		RoundNumber:   1,
		MaxRounds:     3,
		ReferenceRate: value.MustRate("1000.00"),
		CarrierOffer:  value.MustRate("1300.00"),
		Decision:      value.DecisionCounterOffer,
		CounterOffer:  &counter,
		IsActive:      true,
		SessionStart:  startedAt,
	}
}

func TestCarrierServer(t *testing.T) {
	testCases := []struct {
		name     string
		method   string
		target   string
		body     string
		carriers *server.CarrierServiceMock
		status   int
		response string
	}{
		{
			name:   "verify",
			method: http.MethodPost,
			target: "/v1/carriers/verify",
			body:   `{"mc_number":"MC-123456"}`,
			carriers: &server.CarrierServiceMock{
				VerifyFunc: func(_ context.Context, raw string) (entity.VerificationResult, error) {
					return entity.VerificationResult{
						MCNumber:              value.NormalizeMCNumber(raw),
						Eligible:              true,
						VerificationSource:    value.SourceRegistry,
						VerificationTimestamp: startedAt,
					}, nil
				},
			},
			status: http.StatusOK,
			response: `{
				"mc_number":"123456",
				"eligible":true,
				"verification_source":"REGISTRY",
				"cached":false,
				"verification_timestamp":"2026-03-02T15:04:05Z"
			}`,
		},
		{
			name:     "verify without mc number",
			method:   http.MethodPost,
			target:   "/v1/carriers/verify",
			body:     `{}`,
			carriers: &server.CarrierServiceMock{},
			status:   http.StatusBadRequest,
		},
		{
			name:   "registry credentials rejected",
			method: http.MethodPost,
			target: "/v1/carriers/verify",
			body:   `{"mc_number":"123456"}`,
			carriers: &server.CarrierServiceMock{
				VerifyFunc: func(context.Context, string) (entity.VerificationResult, error) {
					return entity.VerificationResult{}, domain.NewError(errcodes.RegistryAuthFailed, "registry rejected the web key")
				},
			},
			status:   http.StatusBadGateway,
			response: `{"code":"RegistryAuthFailed","message":"registry rejected the web key","supportId":"unsupported"}`,
		},
		{
			name:   "snapshot",
			method: http.MethodGet,
			target: "/v1/carriers/123456/snapshot",
			carriers: &server.CarrierServiceMock{
				SnapshotFunc: func(_ context.Context, raw string) (entity.Snapshot, error) {
					return entity.Snapshot{MCNumber: raw, Source: value.SourceCache, Cached: true, RetrievedAt: startedAt}, nil
				},
			},
			status: http.StatusOK,
			response: `{
				"mc_number":"123456",
				"verification_source":"CACHE",
				"cached":true,
				"retrieved_at":"2026-03-02T15:04:05Z"
			}`,
		},
		{
			name:   "cache status",
			method: http.MethodGet,
			target: "/v1/carriers/MC123456/cache",
			carriers: &server.CarrierServiceMock{
				CacheStatusFunc: func(context.Context, string) ([]verification.KeyStatus, error) {
					return []verification.KeyStatus{
						{Key: "fmcsa:carrier:123456", Exists: true, RemainingTTL: 90 * time.Minute},
						{Key: "fmcsa:snapshot:123456"},
					}, nil
				},
			},
			status: http.StatusOK,
			response: `{
				"mc_number":"123456",
				"keys":[
					{"key":"fmcsa:carrier:123456","exists":true,"remaining_ttl_seconds":5400},
					{"key":"fmcsa:snapshot:123456","exists":false}
				]
			}`,
		},
		{
			name:   "invalidate",
			method: http.MethodDelete,
			target: "/v1/carriers/123456/cache",
			carriers: &server.CarrierServiceMock{
				InvalidateFunc: func(context.Context, string) error { return nil },
			},
			status: http.StatusNoContent,
		},
		{
			name:   "invalidate invalid mc number",
			method: http.MethodDelete,
			target: "/v1/carriers/12/cache",
			carriers: &server.CarrierServiceMock{
				InvalidateFunc: func(context.Context, string) error {
					return domain.NewError(errcodes.InvalidMCNumber, "mc number must have 6-8 digits, got 2")
				},
			},
			status: http.StatusBadRequest,
		},
		{
			name:   "deactivate unknown carrier",
			method: http.MethodDelete,
			target: "/v1/carriers/123456",
			carriers: &server.CarrierServiceMock{
				DeactivateFunc: func(context.Context, string) error {
					return domain.NewError(errcodes.CarrierNotFound, "carrier 123456 not found")
				},
			},
			status:   http.StatusNotFound,
			response: `{"code":"CarrierNotFound","message":"carrier 123456 not found","supportId":"unsupported"}`,
		},
		{
			name:   "cache backend failure",
			method: http.MethodGet,
			target: "/v1/carriers/123456/cache",
			carriers: &server.CarrierServiceMock{
				CacheStatusFunc: func(context.Context, string) ([]verification.KeyStatus, error) {
					return nil, errors.New("redis: connection pool timeout")
				},
			},
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			rec := do(newRouter(tc.carriers, &server.NegotiationServiceMock{}), tc.method, tc.target, tc.body)

			rq.Equal(tc.status, rec.Code)

			if tc.response != "" {
				rq.JSONEq(tc.response, rec.Body.String())
			}
		})
	}
}

func TestNegotiationServer(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		negotiations *server.NegotiationServiceMock
		status       int
		check        func(rq *require.Assertions, body string, mock *server.NegotiationServiceMock)
	}{
		{
			name:   "start",
			method: http.MethodPost,
			target: "/v1/negotiations",
			body:   `{"load_id":"LOAD-1","mc_number":"123456","offer":1300.00,"urgency_factor":1.1}`,
			negotiations: &server.NegotiationServiceMock{
				StartFunc: func(context.Context, negotiation.StartInput) (negotiation.Outcome, error) {
					session := counterSession()
					remaining := 2

					return negotiation.Outcome{
						Session: session,
						Decision: entity.Decision{
							NegotiationID:   session.ID,
							Status:          value.DecisionCounterOffer,
							LoadID:          session.LoadID,
							CarrierOffer:    session.CarrierOffer,
							CounterOffer:    session.CounterOffer,
							RoundNumber:     1,
							RemainingRounds: &remaining,
							Message:         "We can offer $1210.00 for this load.",
							Timestamp:       startedAt,
						},
					}, nil
				},
			},
			status: http.StatusCreated,
			check: func(rq *require.Assertions, body string, mock *server.NegotiationServiceMock) {
				calls := mock.StartCalls()
				rq.Len(calls, 1)
				rq.Equal("LOAD-1", calls[0].In.LoadID)
				rq.Equal("1300.00", calls[0].In.Offer.String())
				rq.Equal(negotiation.NewFactors(1.1, 1), calls[0].In.Factors)

				rq.Contains(body, `"counter_offer":1210.00`)
				rq.Contains(body, `"status":"COUNTER_OFFER"`)
				rq.Contains(body, `"remaining_rounds":2`)
			},
		},
		{
			name:         "start with negative offer",
			method:       http.MethodPost,
			target:       "/v1/negotiations",
			body:         `{"load_id":"LOAD-1","mc_number":"123456","offer":-5}`,
			negotiations: &server.NegotiationServiceMock{},
			status:       http.StatusBadRequest,
		},
		{
			name:         "start with zero factor",
			method:       http.MethodPost,
			target:       "/v1/negotiations",
			body:         `{"load_id":"LOAD-1","mc_number":"123456","offer":1000,"history_factor":0}`,
			negotiations: &server.NegotiationServiceMock{},
			status:       http.StatusBadRequest,
		},
		{
			name:   "start with ineligible carrier",
			method: http.MethodPost,
			target: "/v1/negotiations",
			body:   `{"load_id":"LOAD-1","mc_number":"123456","offer":1000}`,
			negotiations: &server.NegotiationServiceMock{
				StartFunc: func(context.Context, negotiation.StartInput) (negotiation.Outcome, error) {
					return negotiation.Outcome{}, domain.NewError(errcodes.CarrierNotEligible, "carrier 123456 is not eligible: No insurance on file")
				},
			},
			status: http.StatusUnprocessableEntity,
			check: func(rq *require.Assertions, body string, _ *server.NegotiationServiceMock) {
				rq.JSONEq(`{"code":"CarrierNotEligible","message":"carrier 123456 is not eligible: No insurance on file","supportId":"unsupported"}`, body)
			},
		},
		{
			name:   "get",
			method: http.MethodGet,
			target: "/v1/negotiations/" + sessionID.String(),
			negotiations: &server.NegotiationServiceMock{
				GetFunc: func(context.Context, uuid.UUID) (entity.NegotiationSession, error) {
					return counterSession(), nil
				},
			},
			status: http.StatusOK,
			check: func(rq *require.Assertions, body string, _ *server.NegotiationServiceMock) {
				rq.JSONEq(`{
					"id":"7b0c6f8e-2f43-4d8e-9a59-1d01a7c5b7a1",
					"load_id":"LOAD-1",
					"mc_number":"123456",
					"round_number":1,
					"max_rounds":3,
					"remaining_rounds":2,
					"reference_rate":1000.00,
					"carrier_offer":1300.00,
					"decision":"COUNTER_OFFER",
					"counter_offer":1210.00,
					"is_active":true,
					"session_start":"2026-03-02T15:04:05Z",
					"total_duration_seconds":0
				}`, body)
			},
		},
		{
			name:         "get with malformed id",
			method:       http.MethodGet,
			target:       "/v1/negotiations/not-a-uuid",
			negotiations: &server.NegotiationServiceMock{},
			status:       http.StatusBadRequest,
		},
		{
			name:   "get unknown",
			method: http.MethodGet,
			target: "/v1/negotiations/" + sessionID.String(),
			negotiations: &server.NegotiationServiceMock{
				GetFunc: func(context.Context, uuid.UUID) (entity.NegotiationSession, error) {
					return entity.NegotiationSession{}, domain.NewError(errcodes.NegotiationNotFound, "negotiation not found")
				},
			},
			status: http.StatusNotFound,
		},
		{
			name:   "submit offer",
			method: http.MethodPost,
			target: "/v1/negotiations/" + sessionID.String() + "/offers",
			body:   `{"offer":1200,"market_factor":0.9}`,
			negotiations: &server.NegotiationServiceMock{
				SubmitOfferFunc: func(_ context.Context, _ uuid.UUID, offer value.Rate, _ negotiation.Factors) (negotiation.Outcome, error) {
					session := counterSession()
					session.RoundNumber = 2
					session.CarrierOffer = offer

					return negotiation.Outcome{Session: session, Decision: entity.Decision{Status: value.DecisionCounterOffer, RoundNumber: 2}}, nil
				},
			},
			status: http.StatusOK,
			check: func(rq *require.Assertions, body string, mock *server.NegotiationServiceMock) {
				calls := mock.SubmitOfferCalls()
				rq.Len(calls, 1)
				rq.Equal(sessionID, calls[0].Id)
				rq.Equal("1200.00", calls[0].Offer.String())
				rq.Equal(negotiation.NewFactors(1, 1).WithMarket(0.9), calls[0].Factors)
				rq.Contains(body, `"round_number":2`)
			},
		},
		{
			name:   "submit offer after the last round",
			method: http.MethodPost,
			target: "/v1/negotiations/" + sessionID.String() + "/offers",
			body:   `{"offer":1200}`,
			negotiations: &server.NegotiationServiceMock{
				SubmitOfferFunc: func(context.Context, uuid.UUID, value.Rate, negotiation.Factors) (negotiation.Outcome, error) {
					return negotiation.Outcome{}, domain.NewError(errcodes.NegotiationPrecondition, "negotiation is already DEAL_REJECTED")
				},
			},
			status: http.StatusConflict,
		},
		{
			name:   "accept counter",
			method: http.MethodPost,
			target: "/v1/negotiations/" + sessionID.String() + "/accept",
			negotiations: &server.NegotiationServiceMock{
				AcceptCounterFunc: func(context.Context, uuid.UUID) (entity.NegotiationSession, error) {
					session := counterSession()
					session.FinalStatus = value.FinalDealAccepted
					session.AgreedRate = session.CounterOffer
					session.IsActive = false

					return session, nil
				},
			},
			status: http.StatusOK,
			check: func(rq *require.Assertions, body string, _ *server.NegotiationServiceMock) {
				rq.Contains(body, `"final_status":"DEAL_ACCEPTED"`)
				rq.Contains(body, `"agreed_rate":1210.00`)
			},
		},
		{
			name:   "accept without counter offer",
			method: http.MethodPost,
			target: "/v1/negotiations/" + sessionID.String() + "/accept",
			negotiations: &server.NegotiationServiceMock{
				AcceptCounterFunc: func(context.Context, uuid.UUID) (entity.NegotiationSession, error) {
					return entity.NegotiationSession{}, domain.NewError(errcodes.NoCounterOffer, "no open counter offer")
				},
			},
			status: http.StatusConflict,
		},
		{
			name:   "abandon with reason",
			method: http.MethodPost,
			target: "/v1/negotiations/" + sessionID.String() + "/abandon",
			body:   `{"reason":"carrier hung up"}`,
			negotiations: &server.NegotiationServiceMock{
				AbandonFunc: func(_ context.Context, _ uuid.UUID, reason string) (entity.NegotiationSession, error) {
					session := counterSession()
					session.FinalStatus = value.FinalAbandoned
					session.Reason = reason

					return session, nil
				},
			},
			status: http.StatusOK,
			check: func(rq *require.Assertions, body string, _ *server.NegotiationServiceMock) {
				rq.Contains(body, `"reason":"carrier hung up"`)
			},
		},
		{
			name:   "abandon without body",
			method: http.MethodPost,
			target: "/v1/negotiations/" + sessionID.String() + "/abandon",
			negotiations: &server.NegotiationServiceMock{
				AbandonFunc: func(_ context.Context, _ uuid.UUID, reason string) (entity.NegotiationSession, error) {
					session := counterSession()
					session.FinalStatus = value.FinalAbandoned
					session.Reason = reason

					return session, nil
				},
			},
			status: http.StatusOK,
			check: func(rq *require.Assertions, _ string, mock *server.NegotiationServiceMock) {
				rq.Len(mock.AbandonCalls(), 1)
				rq.Empty(mock.AbandonCalls()[0].Reason)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			rec := do(newRouter(&server.CarrierServiceMock{}, tc.negotiations), tc.method, tc.target, tc.body)

			rq.Equal(tc.status, rec.Code, rec.Body.String())

			if tc.check != nil {
				tc.check(rq, rec.Body.String(), tc.negotiations)
			}
		})
	}
}
