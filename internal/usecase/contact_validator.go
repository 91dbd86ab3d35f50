package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"portfolio-contact-api/internal/domain"
	"portfolio-contact-api/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewContactValidator creates a validator. A nil validate gets one with the
// contact tags registered; a nil clock means time.Now.
func NewContactValidator(validate *validator.Validate, now func() time.Time) domain.ContactValidator {
	if validate == nil {
		validate = validation.New()
	}
	if now == nil {
		now = time.Now
	}
	return &contactValidator{
		validate: validate,
		now:      now,
	}
}

// Validate normalizes and checks the raw body. Missing fields win over a bad email.
func (v *contactValidator) Validate(raw []byte) (*domain.ContactSubmission, error) {
	body := decodePayload(raw)

	form := domain.ContactForm{
		Name:    stringField(body, "name"),
		Email:   stringField(body, "email"),
		Message: stringField(body, "message"),
	}

	if err := v.validate.Struct(form); err != nil {
		details := strings.Join(validation.FormatValidationErrors(err), "; ")
		if validation.HasTag(err, "required") {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingFields, details)
		}
		if validation.HasTag(err, "contact_email") {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidEmail, details)
		}
		return nil, fmt.Errorf("contact form validation: %w", err)
	}

	return &domain.ContactSubmission{
		Name:        form.Name,
		Email:       form.Email,
		Message:     form.Message,
		SubmittedAt: v.now().UTC(),
	}, nil
}

// decodePayload never fails. Anything that is not a JSON object, or a JSON
// string holding one, becomes an empty object.
func decodePayload(raw []byte) map[string]any {
	if len(validation.TrimSpace(string(raw))) == 0 {
		return map[string]any{}
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return map[string]any{}
	}

	switch body := decoded.(type) {
	case map[string]any:
		return body
	case string:
		var inner map[string]any
		if err := json.Unmarshal([]byte(body), &inner); err != nil || inner == nil {
			return map[string]any{}
		}
		return inner
	default:
		return map[string]any{}
	}
}

// stringField returns the trimmed value, or "" when missing or not a string.
func stringField(body map[string]any, key string) string {
	s, ok := body[key].(string)
	if !ok {
		return ""
	}
	return validation.TrimSpace(s)
}
