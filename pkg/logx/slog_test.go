package logx_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"carrier_desk/pkg/logx"
)

func TestNewHandler(t *testing.T) {
	testCases := []struct {
		name   string
		asJSON bool
		check  func(rq *require.Assertions, out string)
	}{
		{
			name:   "json",
			asJSON: true,
			check: func(rq *require.Assertions, out string) {
				rq.Contains(out, `"msg":"carrier verified"`)
				rq.Contains(out, `"mc-number":"123456"`)
				rq.NotContains(out, "filtered out")
			},
		},
		{
			name: "text",
			check: func(rq *require.Assertions, out string) {
				rq.Contains(out, "carrier verified")
				rq.Contains(out, "mc-number")
				rq.NotContains(out, "filtered out")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var buf bytes.Buffer

			log := slog.New(logx.NewHandler(&buf, slog.LevelInfo, tc.asJSON))
			log.Debug("filtered out")
			log.Info("carrier verified", slog.String(logx.FieldMCNumber, "123456"))

			tc.check(rq, buf.String())
		})
	}
}
