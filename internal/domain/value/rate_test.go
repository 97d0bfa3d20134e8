package value_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"carrier_desk/internal/domain"
	"carrier_desk/internal/domain/value"
	"carrier_desk/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func TestParseRate(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Whole number", input: "1000", want: "1000.00"},
		{name: "Half rounds up", input: "10.005", want: "10.01"},
		{name: "Below half rounds down", input: "10.004", want: "10.00"},
		{name: "Zero", input: "0", want: "0.00"},
		{name: "Upper bound", input: "999999.99", want: "999999.99"},
		{name: "Rounds over upper bound", input: "999999.995", wantErr: true},
		{name: "Over range", input: "1000000", wantErr: true},
		{name: "Negative", input: "-0.01", wantErr: true},
		{name: "Tiny negative", input: "-0.004", wantErr: true},
		{name: "Garbage", input: "12,50", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r, err := value.ParseRate(tc.input)
			if tc.wantErr {
				rq.Error(err)
				rq.True(domain.HasCode(err, errcodes.InvalidRate))

				return
			}

			rq.NoError(err)
			rq.Equal(tc.want, r.String())
		})
	}
}

func TestRateFloatRoundTrip(t *testing.T) {
	rq := require.New(t)

	for _, f := range []float64{0, 0.01, 0.1, 19.99, 1020, 1234.56, 4321.09, 999999.99} {
		r, err := value.RateFromFloat(f)
		rq.NoError(err)
		rq.Equal(f, r.Float64()) //nolint:testifylint // exact round trip is the property under test
	}
}

func TestRateArithmetic(t *testing.T) {
	rq := require.New(t)

	ref := value.MustRate("1000")
	offer := value.MustRate("1300")

	sum, err := ref.Add(offer)
	rq.NoError(err)
	rq.Equal("2300.00", sum.String())

	diff, err := offer.Sub(ref)
	rq.NoError(err)
	rq.Equal("300.00", diff.String())

	_, err = ref.Sub(offer)
	rq.Error(err)

	minimum, err := ref.Mul(decimal.RequireFromString("0.95"))
	rq.NoError(err)
	rq.Equal("950.00", minimum.String())

	third, err := ref.Div(decimal.NewFromInt(3))
	rq.NoError(err)
	rq.Equal("333.33", third.String())

	_, err = ref.Div(decimal.Zero)
	rq.Error(err)

	rq.InDelta(30.0, offer.PercentageDifference(ref), 0.0001)
	rq.InDelta(0.0, offer.PercentageDifference(value.Rate{}), 0.0001)

	rq.True(ref.LessOrEqual(ref))
	rq.True(offer.GreaterThan(ref))
	rq.Equal(-1, ref.Cmp(offer))
	rq.True(value.MustRate("1210").Equal(value.MustRate("1210.000")))

	// operations never mutate the receiver
	rq.Equal("1000.00", ref.String())
}

func TestRateJSON(t *testing.T) {
	rq := require.New(t)

	type payload struct {
		Offer value.Rate `json:"offer"`
	}

	b, err := json.Marshal(payload{Offer: value.MustRate("1210")})
	rq.NoError(err)
	rq.JSONEq(`{"offer":1210.00}`, string(b))

	var p payload

	rq.NoError(json.Unmarshal([]byte(`{"offer":1499.999}`), &p))
	rq.Equal("1500.00", p.Offer.String())

	rq.Error(json.Unmarshal([]byte(`{"offer":-5}`), &p))
}

func TestRateScan(t *testing.T) {
	rq := require.New(t)

	var r value.Rate

	rq.NoError(r.Scan("1234.5"))
	rq.Equal("1234.50", r.String())

	rq.NoError(r.Scan([]byte("99.999")))
	rq.Equal("100.00", r.String())

	v, err := r.Value()
	rq.NoError(err)
	rq.Equal("100.00", v)
}

func TestClampRate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "In range", input: "1234.565", want: "1234.57"},
		{name: "Above range", input: "1020000", want: "999999.99"},
		{name: "Negative", input: "-5", want: "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			rq.Equal(tc.want, value.ClampRate(decimal.RequireFromString(tc.input)).String())
		})
	}
}
