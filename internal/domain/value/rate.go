package value

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"

	"carrier_desk/internal/domain"
	"carrier_desk/pkg/errcodes"
)

const ratePlaces = 2

//nolint:gochecknoglobals
var (
	maxRate = decimal.RequireFromString("999999.99")
	hundred = decimal.NewFromInt(100)

	// MaxRate is the largest representable rate.
	MaxRate = Rate{amount: maxRate}
)

// Rate is a non-negative money amount with exactly two decimal places.
// The zero value is 0.00.
type Rate struct {
	amount decimal.Decimal
}

// NewRate rejects negative input, then rounds d half-up to cents and checks
// the 999999.99 ceiling.
func NewRate(d decimal.Decimal) (Rate, error) {
	if d.IsNegative() {
		return Rate{}, domain.NewError(errcodes.InvalidRate, fmt.Sprintf("rate %s is negative", d.String()))
	}

	rounded := d.Round(ratePlaces)

	if rounded.GreaterThan(maxRate) {
		return Rate{}, domain.NewError(errcodes.InvalidRate, fmt.Sprintf("rate %s exceeds %s", rounded.StringFixed(ratePlaces), maxRate.StringFixed(ratePlaces)))
	}

	return Rate{amount: rounded}, nil
}

func RateFromFloat(f float64) (Rate, error) {
	return NewRate(decimal.NewFromFloat(f))
}

func ParseRate(s string) (Rate, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, domain.WrapError(err, errcodes.InvalidRate, "invalid rate")
	}

	return NewRate(d)
}

// MustRate panics on invalid input; intended for constants and tests.
func MustRate(s string) Rate {
	r, err := ParseRate(s)
	if err != nil {
		panic(err)
	}

	return r
}

func (r Rate) Decimal() decimal.Decimal {
	return r.amount
}

func (r Rate) Float64() float64 {
	return r.amount.InexactFloat64()
}

func (r Rate) String() string {
	return r.amount.StringFixed(ratePlaces)
}

func (r Rate) IsZero() bool {
	return r.amount.IsZero()
}

func (r Rate) Add(other Rate) (Rate, error) {
	return NewRate(r.amount.Add(other.amount))
}

func (r Rate) Sub(other Rate) (Rate, error) {
	return NewRate(r.amount.Sub(other.amount))
}

func (r Rate) Mul(factor decimal.Decimal) (Rate, error) {
	return NewRate(r.amount.Mul(factor))
}

// ClampRate rounds d to cents and bounds it to [0, MaxRate].
func ClampRate(d decimal.Decimal) Rate {
	rounded := d.Round(ratePlaces)

	switch {
	case rounded.IsNegative():
		return Rate{}
	case rounded.GreaterThan(maxRate):
		return MaxRate
	default:
		return Rate{amount: rounded}
	}
}

func (r Rate) Div(divisor decimal.Decimal) (Rate, error) {
	if divisor.IsZero() {
		return Rate{}, domain.NewError(errcodes.InvalidRate, "division by zero")
	}

	return NewRate(r.amount.Div(divisor))
}

// PercentageDifference returns (r - base) / base * 100, rounded to cents.
// A zero base yields 0.
func (r Rate) PercentageDifference(base Rate) float64 {
	if base.amount.IsZero() {
		return 0
	}

	return r.amount.Sub(base.amount).Div(base.amount).Mul(hundred).Round(ratePlaces).InexactFloat64()
}

func (r Rate) Cmp(other Rate) int {
	return r.amount.Cmp(other.amount)
}

func (r Rate) Equal(other Rate) bool {
	return r.amount.Equal(other.amount)
}

func (r Rate) LessOrEqual(other Rate) bool {
	return r.amount.LessThanOrEqual(other.amount)
}

func (r Rate) GreaterThan(other Rate) bool {
	return r.amount.GreaterThan(other.amount)
}

// MarshalJSON writes the amount as a bare number with two decimals.
func (r Rate) MarshalJSON() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rate) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return domain.WrapError(err, errcodes.InvalidRate, "invalid rate")
	}

	parsed, err := NewRate(d)
	if err != nil {
		return err
	}

	*r = parsed

	return nil
}

func (r Rate) Value() (driver.Value, error) {
	return r.String(), nil
}

func (r *Rate) Scan(src any) error {
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return fmt.Errorf("decimal.Scan: %w", err)
	}

	parsed, err := NewRate(d)
	if err != nil {
		return err
	}

	*r = parsed

	return nil
}
