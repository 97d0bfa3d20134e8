package httpx_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"carrier_desk/pkg/contextx"
	"carrier_desk/pkg/httpx"
	"carrier_desk/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func TestLoggingRoundTripper(t *testing.T) {
	const carrierBody = `{"content":[{"carrier":{"dotNumber":2233445,"legalName":"Prairie Line Freight LLC","telephone":"(402) 555-0147"}}]}`

	testCases := []struct {
		name                string
		path                string
		handlerFunc         http.HandlerFunc
		statusCode          int
		responseBody        string
		sensitiveDataMasker *httpx.SensitiveDataMaskerMock
		useLogxMasker       bool
		logFieldMaxLen      int
		check               func(rq *require.Assertions, req, resp string)
	}{
		{
			name: "carrier found",
			path: "/carriers/docket-number/123456",
			handlerFunc: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(carrierBody))
			}),
			check: func(rq *require.Assertions, req, resp string) {
				rq.Contains(req, "GET /carriers/docket-number/123456 HTTP/1.1")
				rq.Contains(resp, "HTTP/1.1 200 OK")
				rq.Contains(resp, "Prairie Line Freight LLC")
			},
			statusCode:   http.StatusOK,
			responseBody: carrierBody,
		},
		{
			name: "registry unavailable",
			path: "/carriers/docket-number/123456",
			handlerFunc: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}),
			check: func(rq *require.Assertions, _, resp string) {
				rq.Contains(resp, "HTTP/1.1 503 Service Unavailable")
			},
			statusCode: http.StatusServiceUnavailable,
		},
		{
			name: "web key and phone masked",
			path: "/carriers/docket-number/123456?webKey=s3cr3t",
			handlerFunc: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(carrierBody))
			}),
			check: func(rq *require.Assertions, req, resp string) {
				rq.NotContains(req, "s3cr3t")
				rq.Contains(req, "webKey=")
				rq.NotContains(resp, "555-0147")
				rq.Contains(resp, "Prairie Line Freight LLC")
			},
			statusCode:    http.StatusOK,
			responseBody:  carrierBody,
			useLogxMasker: true,
		},
		{
			name: "custom masker",
			path: "/",
			handlerFunc: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(carrierBody))
			}),
			check: func(rq *require.Assertions, req, resp string) {
				rq.Equal("<masked>", req)
				rq.Equal("<masked>", resp)
			},
			statusCode:   http.StatusOK,
			responseBody: carrierBody,
			sensitiveDataMasker: &httpx.SensitiveDataMaskerMock{
				MaskFunc: func([]byte) []byte {
					return []byte("<masked>")
				},
			},
		},
		{
			name: "log field size limit",
			path: "/",
			handlerFunc: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(carrierBody))
			}),
			check: func(rq *require.Assertions, req, resp string) {
				rq.Equal("GET / HTTP", req)
				rq.Equal("HTTP/1.1 2", resp)
			},
			statusCode:     http.StatusOK,
			responseBody:   carrierBody,
			logFieldMaxLen: 10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			httpServer := httptest.NewServer(tc.handlerFunc)
			defer httpServer.Close()

			var buf bytes.Buffer

			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			ctx := contextx.WithLogger(context.Background(), logger)

			var opts []httpx.Option

			switch {
			case tc.sensitiveDataMasker != nil:
				opts = append(opts, httpx.WithSensitiveDataMasker(tc.sensitiveDataMasker))
			case tc.useLogxMasker:
				opts = append(opts, httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()))
			}

			if tc.logFieldMaxLen != 0 {
				opts = append(opts, httpx.WithLogFieldMaxLen(tc.logFieldMaxLen))
			}

			client := &http.Client{
				Transport: httpx.NewLoggingRoundTripper(
					http.DefaultTransport,
					opts...,
				),
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, httpServer.URL+tc.path, http.NoBody)
			rq.NoError(err)

			resp, err := client.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			logLines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))

			rq.Equal(tc.statusCode, resp.StatusCode)
			rq.Len(logLines, 2)

			var request, response map[string]any

			rq.NoError(json.Unmarshal(logLines[0], &request))
			rq.NoError(json.Unmarshal(logLines[1], &response))

			if tc.check != nil {
				tc.check(
					rq,
					request[logx.FieldRequestBody].(string),
					response[logx.FieldResponseBody].(string),
				)
			}

			_, ok := response[logx.FieldDurationMs].(float64)
			rq.True(ok)
			rq.InDelta(float64(tc.statusCode), response[logx.FieldResponseStatus], 0)

			const xidLen = 20

			rq.Len(request[logx.FieldRequestID], xidLen)
			rq.Equal(request[logx.FieldRequestID], response[logx.FieldRequestID])

			if tc.responseBody != "" {
				bodyBytes, err := io.ReadAll(resp.Body)
				rq.NoError(err)

				rq.Equal(tc.responseBody, string(bodyBytes))
			}
		})
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestLoggingRoundTripper_TransportError(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	client := &http.Client{Transport: httpx.NewLoggingRoundTripper(failingTransport{})}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://registry.invalid/carriers", http.NoBody)
	rq.NoError(err)

	_, err = client.Do(req) //nolint:bodyclose
	rq.Error(err)
	rq.Contains(err.Error(), "connection refused")

	logLines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	rq.Len(logLines, 2)

	var failure map[string]any

	rq.NoError(json.Unmarshal(logLines[1], &failure))
	rq.Equal("http request failed", failure["msg"])
}

func TestLoggingRoundTripper_TraceID(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer httpServer.Close()

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx = contextx.WithTraceID(ctx, "trace-1")

	client := &http.Client{Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport)}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, httpServer.URL, http.NoBody)
	rq.NoError(err)

	resp, err := client.Do(req)
	rq.NoError(err)

	defer resp.Body.Close()

	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any

		rq.NoError(json.Unmarshal(line, &entry))
		rq.Equal("trace-1", entry[logx.FieldTraceID])
	}
}
