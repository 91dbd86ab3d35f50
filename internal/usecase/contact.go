package usecase

import (
	"context"

	"portfolio-contact-api/internal/domain"
	"portfolio-contact-api/pkg/metrics"
)

type contactUsecase struct {
	validator  domain.ContactValidator
	dispatcher domain.ContactDispatcher
	metrics    *metrics.Metrics
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(validator domain.ContactValidator, dispatcher domain.ContactDispatcher, m *metrics.Metrics) domain.ContactUsecase {
	return &contactUsecase{
		validator:  validator,
		dispatcher: dispatcher,
		metrics:    m,
	}
}

// SubmitContact validates the raw body and hands the submission to the dispatcher.
// The dispatcher is not called when validation fails.
func (uc *contactUsecase) SubmitContact(ctx context.Context, raw []byte) (*domain.ContactSubmission, error) {
	submission, err := uc.validator.Validate(raw)
	if err != nil {
		uc.metrics.IncrementSubmission(metrics.OutcomeInvalid)
		return nil, err
	}

	if err := uc.dispatcher.Dispatch(ctx, submission); err != nil {
		return nil, err
	}

	return submission, nil
}
