package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"carrier_desk/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Web key in query string",
			input:  []byte("GET /qc/services/carriers/docket-number/123456?webKey=s3cr3t HTTP/1.1\r\n"),
			output: []byte("GET /qc/services/carriers/docket-number/123456?webKey=[MASKED] HTTP/1.1\r\n"),
		},
		{
			name:   "Web key followed by another parameter",
			input:  []byte("/carriers/1?size=1&webKey=abc&x=1"),
			output: []byte("/carriers/1?size=1&webKey=[MASKED]&x=1"),
		},
		{
			name:   "Telephone and email address",
			input:  []byte(`{"legalName":"ACME","telephone":"(555) 010-0000","emailAddress":"ops@acme.test"}`),
			output: []byte(`{"legalName":"ACME","telephone":"[MASKED]","emailAddress":"[MASKED]"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
