package req

import (
	"fmt"
	"io"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"carrier_desk/pkg/errcodes"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 64 << 10

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

// Read decodes a JSON body into dest and validates its struct tags. Every
// failure is an invalid argument error with the ValidationError code.
func Read(r *http.Request, dest any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return invalid(fmt.Errorf("io.ReadAll: %w", err).Error(), "Request body could not be read")
	}

	switch {
	case len(body) == 0:
		return invalid("empty body", "Request body is empty")
	case len(body) > MaxBodyBytes:
		return invalid("body too large", "Request body is too large")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return invalid(fmt.Errorf("json.Unmarshal: %w", err).Error(), "Invalid JSON")
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return invalid("validation error", err.Error())
	}

	return nil
}

func invalid(message, description string) error {
	return failure.NewInvalidArgumentError(
		message,
		failure.WithCode(errcodes.ValidationError),
		failure.WithDescription(description),
	)
}
