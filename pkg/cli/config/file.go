package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File is the TOML configuration file layout
//
//	[server]
//	addr = ":8080"
//	read_header_timeout = "15s"
//	shutdown_timeout = "10s"
//
//	[sentry]
//	dsn = "https://..."
//	env = "staging"
type File struct {
	Server struct {
		Addr              string   `toml:"addr"`
		ReadHeaderTimeout Duration `toml:"read_header_timeout"`
		ShutdownTimeout   Duration `toml:"shutdown_timeout"`
	} `toml:"server"`

	Sentry struct {
		DSN string `toml:"dsn" masq:"secret"`
		Env string `toml:"env"`
	} `toml:"sentry"`
}

// Duration is a time.Duration written as a string such as "15s" in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return goerr.Wrap(err, "invalid duration", goerr.V("value", string(text)))
	}
	d.Duration = v
	return nil
}

// ConfigFileFlag returns the flag that points to a TOML config file
func ConfigFileFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to TOML config file",
		Destination: dst,
		Sources:     cli.EnvVars("EKSHELLO_CONFIG"),
	}
}

// LoadFile reads and decodes a TOML config file
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var f File
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}

	return &f, nil
}

// Apply copies file values into server and sentry for every setting that
// isSet reports as not given by flag or environment variable. Empty file
// values are ignored.
func (f *File) Apply(isSet func(name string) bool, server *Server, sentry *Sentry) {
	if server != nil {
		if f.Server.Addr != "" && !isSet(FlagAddr) {
			server.Addr = f.Server.Addr
		}
		if f.Server.ReadHeaderTimeout.Duration > 0 && !isSet(FlagReadHeaderTimeout) {
			server.ReadHeaderTimeout = f.Server.ReadHeaderTimeout.Duration
		}
		if f.Server.ShutdownTimeout.Duration > 0 && !isSet(FlagShutdownTimeout) {
			server.ShutdownTimeout = f.Server.ShutdownTimeout.Duration
		}
	}

	if sentry != nil {
		if f.Sentry.DSN != "" && !isSet(FlagSentryDSN) {
			sentry.DSN = f.Sentry.DSN
		}
		if f.Sentry.Env != "" && !isSet(FlagSentryEnv) {
			sentry.Env = f.Sentry.Env
		}
	}
}
