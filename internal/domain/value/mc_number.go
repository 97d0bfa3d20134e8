package value

import (
	"fmt"
	"strings"

	"carrier_desk/internal/domain"
	"carrier_desk/pkg/errcodes"
)

const (
	mcNumberMinLen = 6
	mcNumberMaxLen = 8
)

// MCNumber is a normalized motor carrier docket number: 6 to 8 digits.
type MCNumber struct {
	digits string
}

// NormalizeMCNumber drops every non-digit character ("MC-123456" -> "123456").
func NormalizeMCNumber(raw string) string {
	var b strings.Builder

	b.Grow(len(raw))

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func ParseMCNumber(raw string) (MCNumber, error) {
	digits := NormalizeMCNumber(raw)

	if digits == "" {
		return MCNumber{}, domain.NewError(errcodes.InvalidMCNumber, "mc number is empty after normalization")
	}

	if len(digits) < mcNumberMinLen || len(digits) > mcNumberMaxLen {
		return MCNumber{}, domain.NewError(
			errcodes.InvalidMCNumber,
			fmt.Sprintf("mc number must have %d-%d digits, got %d", mcNumberMinLen, mcNumberMaxLen, len(digits)),
		)
	}

	return MCNumber{digits: digits}, nil
}

func MustMCNumber(raw string) MCNumber {
	mc, err := ParseMCNumber(raw)
	if err != nil {
		panic(err)
	}

	return mc
}

func (m MCNumber) String() string {
	return m.digits
}

func (m MCNumber) IsZero() bool {
	return m.digits == ""
}

func (m MCNumber) MarshalText() ([]byte, error) {
	return []byte(m.digits), nil
}

func (m *MCNumber) UnmarshalText(text []byte) error {
	parsed, err := ParseMCNumber(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
