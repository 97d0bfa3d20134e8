package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"carrier_desk/pkg/errcodes"
	"carrier_desk/pkg/httpx/reply"
	"carrier_desk/pkg/logx"
)

// Recovery turns a handler panic into a 500 with the usual error body.
// http.ErrAbortHandler is re-panicked so the server can drop the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if rec == http.ErrAbortHandler { //nolint:errorlint,err113
				panic(rec)
			}

			logger(ctx).Error(
				"panic in handler",
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			reply.Fail(ctx, w, http.StatusInternalServerError, errcodes.InternalServerError, "internal error", nil)
		}()

		next.ServeHTTP(w, r)
	})
}
