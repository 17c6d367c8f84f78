// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps a validator instance for struct tag validation.
type echoValidator struct {
	validate *validator.Validate
}

// New creates a validator for echo request binding.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the bound request payload against its struct tags. Handlers
// convert the returned error into the VALIDATION_FAILED response envelope.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
