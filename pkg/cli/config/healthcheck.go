package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

// HealthCheck holds configuration for probing a running server
type HealthCheck struct {
	Target  string
	Timeout time.Duration
}

// Flags returns CLI flags for health check configuration
func (c *HealthCheck) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "target",
			Usage:       "Address (host:port) or base URL of the server to probe",
			Value:       "localhost:8080",
			Destination: &c.Target,
			Sources:     cli.EnvVars("EKSHELLO_HEALTHCHECK_TARGET"),
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Request timeout",
			Value:       3 * time.Second,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("EKSHELLO_HEALTHCHECK_TIMEOUT"),
		},
	}
}
