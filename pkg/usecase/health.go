package usecase

import (
	"context"

	"github.com/m-mizutani/ekshello/pkg/domain/model"
)

type healthUseCase struct{}

// NewHealth creates a new instance of HealthUseCase
func NewHealth() *healthUseCase {
	return &healthUseCase{}
}

// CheckHealth always reports ok. The service has no dependencies whose
// failure would make it unable to answer.
func (uc *healthUseCase) CheckHealth(ctx context.Context) (*model.HealthStatus, error) {
	return &model.HealthStatus{
		Status: model.HealthStatusOK,
	}, nil
}
