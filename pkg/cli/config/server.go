package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

// Flag names shared with the config file loader
const (
	FlagAddr              = "addr"
	FlagReadHeaderTimeout = "read-header-timeout"
	FlagShutdownTimeout   = "shutdown-timeout"
)

// Server holds server configuration
type Server struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        FlagAddr,
			Usage:       "Server address",
			Value:       ":8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("EKSHELLO_ADDR"),
		},
		&cli.DurationFlag{
			Name:        FlagReadHeaderTimeout,
			Usage:       "Maximum duration for reading request headers",
			Value:       15 * time.Second,
			Destination: &c.ReadHeaderTimeout,
			Sources:     cli.EnvVars("EKSHELLO_READ_HEADER_TIMEOUT"),
		},
		&cli.DurationFlag{
			Name:        FlagShutdownTimeout,
			Usage:       "Grace period for in-flight requests on shutdown",
			Value:       10 * time.Second,
			Destination: &c.ShutdownTimeout,
			Sources:     cli.EnvVars("EKSHELLO_SHUTDOWN_TIMEOUT"),
		},
	}
}
