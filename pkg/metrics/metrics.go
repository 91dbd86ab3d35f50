package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes used as the "outcome" label
const (
	OutcomeLogged           = "logged"
	OutcomeDelivered        = "delivered"
	OutcomeInvalid          = "invalid"
	OutcomeWebhookRejected  = "webhook_rejected"
	OutcomeTransportFailure = "transport_failure"
)

// Metrics holds the Prometheus collectors for contact submissions
type Metrics struct {
	Submissions     *prometheus.CounterVec
	WebhookDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact submissions by outcome",
		}, []string{"outcome"}),
		WebhookDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "contact_webhook_duration_seconds",
			Help:    "Duration of outbound contact webhook calls",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// IncrementSubmission increments the submissions counter for outcome. Safe on a nil receiver.
func (m *Metrics) IncrementSubmission(outcome string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(outcome).Inc()
}

// ObserveWebhook records how long an outbound webhook call took. Safe on a nil receiver.
func (m *Metrics) ObserveWebhook(d time.Duration) {
	if m == nil {
		return
	}
	m.WebhookDuration.Observe(d.Seconds())
}
