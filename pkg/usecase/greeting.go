package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/ekshello/pkg/domain/model"
)

type greetingUseCase struct{}

// NewGreeting creates a new instance of GreetingUseCase
func NewGreeting() *greetingUseCase {
	return &greetingUseCase{}
}

// Greet returns a newly built greeting for every call
func (uc *greetingUseCase) Greet(ctx context.Context) (*model.Greeting, error) {
	ctxlog.From(ctx).Debug("Building greeting")

	return &model.Greeting{
		Message: model.GreetingMessage,
	}, nil
}
