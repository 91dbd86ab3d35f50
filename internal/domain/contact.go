package domain

import (
	"context"
	"errors"
	"time"
)

// Contact errors. Malformed payloads are not an error: they normalize to an
// empty form and surface as ErrMissingFields.
var (
	ErrMissingFields    = errors.New("all fields are required")
	ErrInvalidEmail     = errors.New("a valid email address is required")
	ErrWebhookRejected  = errors.New("contact webhook rejected submission")
	ErrTransportFailure = errors.New("contact webhook unreachable")
)

// ContactForm is the decoded, trimmed form before validation
type ContactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,contact_email"`
	Message string `json:"message" validate:"required"`
}

// ContactSubmission is a validated contact form message.
// Only the validator constructs one; it is never modified afterwards.
type ContactSubmission struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ContactValidator turns a raw request body into a submission
type ContactValidator interface {
	Validate(raw []byte) (*ContactSubmission, error)
}

// ContactDispatcher delivers a submission exactly once
type ContactDispatcher interface {
	Dispatch(ctx context.Context, submission *ContactSubmission) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact validates the raw body and dispatches the resulting submission
	SubmitContact(ctx context.Context, raw []byte) (*ContactSubmission, error)
}
