package model

// HealthStatusOK is reported while the service is able to serve requests
const HealthStatusOK = "ok"

// HealthStatus represents the health check status
type HealthStatus struct {
	Status string `json:"status"`
}

// IsHealthy reports whether the status is HealthStatusOK
func (s *HealthStatus) IsHealthy() bool {
	return s != nil && s.Status == HealthStatusOK
}
