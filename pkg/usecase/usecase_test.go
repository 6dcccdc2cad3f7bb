package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/ekshello/pkg/domain/interfaces"
	"github.com/m-mizutani/ekshello/pkg/domain/model"
	"github.com/m-mizutani/ekshello/pkg/usecase"
	"github.com/m-mizutani/gt"
)

var (
	_ interfaces.GreetingUseCase = usecase.NewGreeting()
	_ interfaces.HealthUseCase   = usecase.NewHealth()
)

func TestGreetingUseCase_Greet(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewGreeting()

	greeting, err := uc.Greet(ctx)
	gt.NoError(t, err)
	gt.V(t, greeting).NotNil()
	gt.Equal(t, greeting.Message, "Hello from EKS!")

	t.Run("returns a fresh value on every call", func(t *testing.T) {
		first, err := uc.Greet(ctx)
		gt.NoError(t, err)
		first.Message = "modified"

		second, err := uc.Greet(ctx)
		gt.NoError(t, err)
		gt.Equal(t, second.Message, model.GreetingMessage)
	})
}

func TestHealthUseCase_CheckHealth(t *testing.T) {
	uc := usecase.NewHealth()

	for i := 0; i < 3; i++ {
		status, err := uc.CheckHealth(context.Background())
		gt.NoError(t, err)
		gt.Equal(t, status.Status, "ok")
		gt.True(t, status.IsHealthy())
	}
}
