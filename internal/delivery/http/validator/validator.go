// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "platter/internal/domain/errors"

	validatorlib "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for echo's c.Validate calls.
type echoValidator struct {
	validate *validatorlib.Validate
}

// New builds the request validator installed on the echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: validatorlib.New(validatorlib.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags and maps failures to the typed validation error.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
