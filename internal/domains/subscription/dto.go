package subscription

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateRequest is a full subscription signup with mailing details.
type CreateRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	StreetAddress  string `json:"streetAddress"`
	StreetAddress2 string `json:"streetAddress2"`
	City           string `json:"city"`
	State          string `json:"state"`
	Telephone      string `json:"telephone"`
	Email          string `json:"email"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required.Error("First name is required")),
		validation.Field(&r.LastName, validation.Required.Error("Last name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Email must be a valid email address"),
		),
	)
}

// NewsletterRequest is the lightweight email-only signup.
type NewsletterRequest struct {
	Email string `json:"email"`
}

func (r NewsletterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Email must be a valid email address"),
		),
	)
}
