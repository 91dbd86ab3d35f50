package usecase_test

import (
	"context"
	"errors"
	"testing"

	"portfolio-contact-api/internal/domain"
	"portfolio-contact-api/internal/usecase"
	"portfolio-contact-api/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock components
type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) Validate(raw []byte) (*domain.ContactSubmission, error) {
	args := m.Called(raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactSubmission), args.Error(1)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, submission *domain.ContactSubmission) error {
	return m.Called(ctx, submission).Error(0)
}

func TestSubmitContact(t *testing.T) {
	ctx := context.Background()
	raw := []byte(`{"name":"Jane Doe","email":"jane@example.com","message":"Hello"}`)

	t.Run("Should dispatch a valid submission", func(t *testing.T) {
		validator := new(MockValidator)
		dispatcher := new(MockDispatcher)
		sub := testSubmission()

		validator.On("Validate", raw).Return(sub, nil)
		dispatcher.On("Dispatch", ctx, sub).Return(nil)

		uc := usecase.NewContactUsecase(validator, dispatcher, nil)
		got, err := uc.SubmitContact(ctx, raw)

		assert.NoError(t, err)
		assert.Same(t, sub, got)
		dispatcher.AssertExpectations(t)
	})

	t.Run("Should not dispatch when validation fails", func(t *testing.T) {
		validator := new(MockValidator)
		dispatcher := new(MockDispatcher)
		m := metrics.New(prometheus.NewRegistry())

		validator.On("Validate", raw).Return(nil, domain.ErrInvalidEmail)

		uc := usecase.NewContactUsecase(validator, dispatcher, m)
		got, err := uc.SubmitContact(ctx, raw)

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domain.ErrInvalidEmail))
		dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues(metrics.OutcomeInvalid)))
	})

	t.Run("Should surface dispatch failures", func(t *testing.T) {
		validator := new(MockValidator)
		dispatcher := new(MockDispatcher)
		sub := testSubmission()

		validator.On("Validate", raw).Return(sub, nil)
		dispatcher.On("Dispatch", ctx, sub).Return(domain.ErrTransportFailure)

		uc := usecase.NewContactUsecase(validator, dispatcher, nil)
		got, err := uc.SubmitContact(ctx, raw)

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domain.ErrTransportFailure))
	})
}

func TestSubmitContactEndToEnd(t *testing.T) {
	uc := usecase.NewContactUsecase(
		newTestValidator(),
		usecase.NewContactDispatcher(nil, nil, nil),
		nil,
	)

	sub, err := uc.SubmitContact(context.Background(), []byte(`{"name":"Jane","email":"jane@example.com","message":"Hi"}`))
	assert.NoError(t, err)
	assert.Equal(t, "Jane", sub.Name)
}
