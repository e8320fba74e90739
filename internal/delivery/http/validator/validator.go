// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a shared validate instance for struct-tag validation.
type Validator struct {
	validate *playground.Validate
}

// New constructs the echo validator.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks the struct tags on i and returns the raw validation error.
// Handlers translate it into a 400 response.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
