package middlewarex

import (
	"bytes"
	"cmp"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/zenazn/goji/web/mutil"

	"carrier_desk/pkg/logx"
)

const defaultLogFieldMaxLen = 4096

// BodyLogging dumps inbound requests and the responses written for them,
// masked and truncated.
type BodyLogging struct {
	masker         logx.SensitiveDataMaskerInterface
	logFieldMaxLen int
}

func NewBodyLogging(masker logx.SensitiveDataMaskerInterface) BodyLogging {
	return BodyLogging{
		masker:         masker,
		logFieldMaxLen: defaultLogFieldMaxLen,
	}
}

func (b BodyLogging) WithLogFieldMaxLen(n int) BodyLogging {
	b.logFieldMaxLen = n
	return b
}

func (b BodyLogging) Request(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// Multipart bodies are neither readable in a log nor bounded in size.
		dumpBody := !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

		dump, err := httputil.DumpRequest(r, dumpBody)

		logger(ctx).Info(
			logx.FieldHTTPRequest,
			slog.String(logx.FieldRequestBody, string(b.masker.Mask(b.truncate(dump)))),
			logx.Error(err),
		)

		next.ServeHTTP(w, r)
	})
}

// Response tees the response body. See
// https://blog.merovius.de/posts/2017-07-30-the-trouble-with-optional-interfaces/
// for why the writer is wrapped by mutil.
func (b BodyLogging) Response(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		start := time.Now()
		lw := mutil.WrapWriter(w)

		var buf bytes.Buffer

		lw.Tee(&buf)

		next.ServeHTTP(lw, r)

		headers, err := responseHeaders(w)
		if err != nil {
			logger(ctx).Error("responseHeaders", logx.Error(err))
		}

		// Status is 0 when the handler never called WriteHeader.
		status := cmp.Or(lw.Status(), http.StatusOK)

		logger(ctx).Info(
			logx.FieldHTTPResponse,
			slog.Int(logx.FieldResponseStatus, status),
			slog.String(logx.FieldResponseHeaders, string(b.masker.Mask(headers))),
			slog.String(logx.FieldResponseBody, string(b.masker.Mask(b.truncate(buf.Bytes())))),
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
		)
	})
}

func (b BodyLogging) truncate(dump []byte) []byte {
	if len(dump) > b.logFieldMaxLen {
		return dump[:b.logFieldMaxLen]
	}

	return dump
}

func responseHeaders(w http.ResponseWriter) ([]byte, error) {
	var buf bytes.Buffer

	if err := w.Header().WriteSubset(&buf, nil); err != nil {
		return nil, fmt.Errorf("header.WriteSubset: %w", err)
	}

	return buf.Bytes(), nil
}
