// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "passport/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator used by the echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags on a bound request body. Failures surface as
// the domain's validation error so the error middleware renders them as 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
