package entity

import (
	"strings"

	"github.com/saravanan/rentify-api/pkg/apperror"
)

// CustomerIdentity is the buyer block collected at checkout. It is transient:
// it appears on the invoice and is never stored.
type CustomerIdentity struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Validate checks the required fields. Name and address must be non-empty;
// phone and email are optional.
func (c *CustomerIdentity) Validate() error {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(c.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "customer name is required"})
	}
	if strings.TrimSpace(c.Address) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "address", Message: "customer address is required"})
	}
	if len(fieldErrors) > 0 {
		err := apperror.NewValidationError(fieldErrors)
		err.Kind = apperror.KindMissingRequiredField
		return err
	}
	return nil
}

// PhoneOrFallback returns the phone number, or the invoice placeholder
func (c *CustomerIdentity) PhoneOrFallback() string {
	if strings.TrimSpace(c.Phone) == "" {
		return "Not provided"
	}
	return c.Phone
}

// EmailOrFallback returns the email address, or the invoice placeholder
func (c *CustomerIdentity) EmailOrFallback() string {
	if strings.TrimSpace(c.Email) == "" {
		return "Not provided"
	}
	return c.Email
}
