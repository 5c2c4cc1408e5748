package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags of a result record.
func (r Result) Validate() error {
	return validate.Struct(r)
}

// Validate checks the struct tags of a transaction row.
func (t Transaction) Validate() error {
	return validate.Struct(t)
}
