package interfaces

import (
	"context"

	"github.com/m-mizutani/ekshello/pkg/domain/model"
)

// GreetingUseCase builds the root endpoint response
type GreetingUseCase interface {
	// Greet returns the greeting message
	Greet(ctx context.Context) (*model.Greeting, error)
}

// HealthUseCase reports service liveness
type HealthUseCase interface {
	// CheckHealth returns the current health status
	CheckHealth(ctx context.Context) (*model.HealthStatus, error)
}
