package api

import (
	"github.com/go-playground/validator/v10"

	"github.com/gfssolutions/solar-api/internal/pkg/constants"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.ErrInvalidPayload.WithCause(err)
	}
	return nil
}
