package model_test

import (
	"testing"

	"github.com/m-mizutani/ekshello/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestHealthStatus_IsHealthy(t *testing.T) {
	tests := []struct {
		name   string
		status *model.HealthStatus
		want   bool
	}{
		{
			name:   "ok status",
			status: &model.HealthStatus{Status: model.HealthStatusOK},
			want:   true,
		},
		{
			name:   "other status",
			status: &model.HealthStatus{Status: "degraded"},
			want:   false,
		},
		{
			name:   "empty status",
			status: &model.HealthStatus{},
			want:   false,
		},
		{
			name:   "nil status",
			status: nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, tt.status.IsHealthy(), tt.want)
		})
	}
}
