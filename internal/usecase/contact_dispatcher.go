package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"portfolio-contact-api/internal/domain"
	"portfolio-contact-api/pkg/metrics"
	"portfolio-contact-api/pkg/webhook"
)

type contactDispatcher struct {
	webhook *webhook.Client
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewContactDispatcher creates a dispatcher. A nil or unconfigured client
// selects the log-only path.
func NewContactDispatcher(client *webhook.Client, log *slog.Logger, m *metrics.Metrics) domain.ContactDispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &contactDispatcher{
		webhook: client,
		log:     log,
		metrics: m,
	}
}

// Dispatch forwards the submission to the webhook, or logs it when none is configured
func (d *contactDispatcher) Dispatch(ctx context.Context, submission *domain.ContactSubmission) error {
	if !d.webhook.IsConfigured() {
		d.log.InfoContext(ctx, "Contact submission received",
			"name", submission.Name,
			"email", submission.Email,
			"message", submission.Message,
			"submitted_at", submission.SubmittedAt.Format(time.RFC3339Nano),
		)
		d.metrics.IncrementSubmission(metrics.OutcomeLogged)
		return nil
	}

	start := time.Now()
	err := d.webhook.Send(ctx, submission)
	d.metrics.ObserveWebhook(time.Since(start))

	if err != nil {
		var statusErr *webhook.StatusError
		if errors.As(err, &statusErr) {
			d.metrics.IncrementSubmission(metrics.OutcomeWebhookRejected)
			return fmt.Errorf("%w: %w", domain.ErrWebhookRejected, statusErr)
		}
		d.metrics.IncrementSubmission(metrics.OutcomeTransportFailure)
		return fmt.Errorf("%w: %w", domain.ErrTransportFailure, err)
	}

	d.metrics.IncrementSubmission(metrics.OutcomeDelivered)
	return nil
}
