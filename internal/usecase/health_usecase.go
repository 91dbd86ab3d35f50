package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	webhookConfigured bool
}

// NewHealthUsecase reports which delivery path submissions take
func NewHealthUsecase(webhookConfigured bool) HealthUsecase {
	return &healthUsecase{webhookConfigured: webhookConfigured}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	delivery := "log"
	if u.webhookConfigured {
		delivery = "webhook"
	}
	return map[string]string{
		"status":   "ok",
		"delivery": delivery,
	}
}
