package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/ekshello/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ekshello.toml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeConfigFile(t, `
[server]
addr = "0.0.0.0:9090"
read_header_timeout = "5s"
shutdown_timeout = "30s"

[sentry]
dsn = "https://key@sentry.example.com/1"
env = "staging"
`)

		f, err := config.LoadFile(path)
		gt.NoError(t, err)
		gt.Equal(t, f.Server.Addr, "0.0.0.0:9090")
		gt.Equal(t, f.Server.ReadHeaderTimeout.Duration, 5*time.Second)
		gt.Equal(t, f.Server.ShutdownTimeout.Duration, 30*time.Second)
		gt.Equal(t, f.Sentry.DSN, "https://key@sentry.example.com/1")
		gt.Equal(t, f.Sentry.Env, "staging")
	})

	t.Run("empty file", func(t *testing.T) {
		f, err := config.LoadFile(writeConfigFile(t, ""))
		gt.NoError(t, err)
		gt.Equal(t, f.Server.Addr, "")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("failed to read config file")
	})

	t.Run("broken toml", func(t *testing.T) {
		_, err := config.LoadFile(writeConfigFile(t, "[server\naddr = "))
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("failed to parse config file")
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := config.LoadFile(writeConfigFile(t, "[server]\nshutdown_timeout = \"soon\"\n"))
		gt.Error(t, err)
	})
}

func TestFile_Apply(t *testing.T) {
	path := writeConfigFile(t, `
[server]
addr = "0.0.0.0:9090"
shutdown_timeout = "30s"

[sentry]
env = "staging"
`)
	f, err := config.LoadFile(path)
	gt.NoError(t, err)

	t.Run("file values fill unset settings", func(t *testing.T) {
		server := config.Server{Addr: ":8080", ReadHeaderTimeout: 15 * time.Second, ShutdownTimeout: 10 * time.Second}
		sentry := config.Sentry{Env: "production"}

		f.Apply(func(string) bool { return false }, &server, &sentry)

		gt.Equal(t, server.Addr, "0.0.0.0:9090")
		gt.Equal(t, server.ShutdownTimeout, 30*time.Second)
		// not present in the file
		gt.Equal(t, server.ReadHeaderTimeout, 15*time.Second)
		gt.Equal(t, sentry.DSN, "")
		gt.Equal(t, sentry.Env, "staging")
	})

	t.Run("explicit flags win", func(t *testing.T) {
		server := config.Server{Addr: "127.0.0.1:7070", ShutdownTimeout: 10 * time.Second}
		sentry := config.Sentry{Env: "production"}

		isSet := func(name string) bool {
			return name == config.FlagAddr || name == config.FlagSentryEnv
		}
		f.Apply(isSet, &server, &sentry)

		gt.Equal(t, server.Addr, "127.0.0.1:7070")
		gt.Equal(t, server.ShutdownTimeout, 30*time.Second)
		gt.Equal(t, sentry.Env, "production")
	})

	t.Run("nil targets are skipped", func(t *testing.T) {
		f.Apply(func(string) bool { return false }, nil, nil)
	})
}
