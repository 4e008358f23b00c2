// Package customer defines the gym member record and its payloads.
package customer

import (
	"github.com/deppfellow/fitness-center/internal/validation"
)

// Customer is a gym member as stored in the customer table.
type Customer struct {
	ID           int64   `json:"id" db:"id"`
	CustomerName string  `json:"customer_name" db:"customer_name"`
	Email        *string `json:"email" db:"email"`
	Phone        *string `json:"phone" db:"phone"`
}

// Input carries the writable customer fields.
//
// It decodes itself field by field; an "id" key in the body is ignored.
type Input struct {
	CustomerName *string
	Email        *string
	Phone        *string

	decodeErrors validation.CustomValidationErrors
}

func (in *Input) UnmarshalJSON(data []byte) error {
	fields, err := validation.DecodeFields(data)
	if err != nil {
		return err
	}

	in.CustomerName = fields.String("customer_name")
	in.Email = fields.String("email")
	in.Phone = fields.String("phone")
	in.decodeErrors = fields.Errors()
	return nil
}

// Validate checks every field and reports all failures at once.
func (in *Input) Validate() error {
	check := validation.NewChecker(in.decodeErrors)
	check.RequiredString("customer_name", in.CustomerName)
	check.OptionalString("email")
	check.OptionalString("phone")
	return check.Err()
}

// Name returns the customer name, empty when unset.
func (in *Input) Name() string {
	if in.CustomerName == nil {
		return ""
	}
	return *in.CustomerName
}
