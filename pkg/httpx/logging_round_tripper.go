package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/xid"

	"carrier_desk/pkg/contextx"
	"carrier_desk/pkg/logx"
)

//go:generate moq -rm -out sensitive_data_masker_mock.gen.go . sensitiveDataMasker:SensitiveDataMaskerMock
type sensitiveDataMasker interface {
	Mask([]byte) []byte
}

// LoggingRoundTripper dumps every outgoing request and its response to the
// context logger, passing both through the sensitive data masker first.
type LoggingRoundTripper struct {
	next                http.RoundTripper
	sensitiveDataMasker sensitiveDataMasker
	logFieldMaxLen      int
}

type Option func(*LoggingRoundTripper)

// WithLogFieldMaxLen truncates dumps to n bytes. Zero keeps them whole.
func WithLogFieldMaxLen(n int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = n
	}
}

func WithSensitiveDataMasker(masker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = masker
	}
}

func NewLoggingRoundTripper(
	next http.RoundTripper,
	opts ...Option,
) LoggingRoundTripper {
	rt := LoggingRoundTripper{
		next:                next,
		sensitiveDataMasker: logx.NewNopSensitiveDataMasker(),
	}

	for _, opt := range opts {
		opt(&rt)
	}

	return rt
}

// RoundTrip logs one line before and one after the call. Both carry the same
// request id, and the inbound trace id when there is one.
func (rt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	log := logger(ctx).With(slog.String(logx.FieldRequestID, xid.New().String()))

	if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
		log = log.With(logx.Stringer(logx.FieldTraceID, traceID))
	}

	reqBytes, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		log.Error("httputil.DumpRequestOut", logx.Error(err))
	}

	log.Info(logx.FieldHTTPRequest, slog.String(logx.FieldRequestBody, rt.field(reqBytes)))

	start := time.Now()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		log.Warn(
			"http request failed",
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
			logx.Error(err),
		)

		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	respBytes, err := httputil.DumpResponse(resp, true)
	if err != nil {
		log.Error("httputil.DumpResponse", logx.Error(err))
	}

	log.Info(
		logx.FieldHTTPResponse,
		slog.Int(logx.FieldResponseStatus, resp.StatusCode),
		slog.String(logx.FieldResponseBody, rt.field(respBytes)),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return resp, nil
}

func (rt LoggingRoundTripper) field(dump []byte) string {
	if rt.logFieldMaxLen != 0 && len(dump) > rt.logFieldMaxLen {
		dump = dump[:rt.logFieldMaxLen]
	}

	return string(rt.sensitiveDataMasker.Mask(dump))
}
