package cli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/ekshello/pkg/cli/config"
	"github.com/m-mizutani/ekshello/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdHealthCheck() *cli.Command {
	var cfg config.HealthCheck

	return &cli.Command{
		Name:  "healthcheck",
		Usage: "Probe the health endpoint of a running server and exit non-zero if it is not ok",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			status, err := probeHealth(ctx, cfg)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Debug("Health check passed", "status", status.Status, "target", cfg.Target)
			return nil
		},
	}
}

func healthURL(target string) string {
	base := strings.TrimSuffix(target, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	return base + "/health"
}

func probeHealth(ctx context.Context, cfg config.HealthCheck) (*model.HealthStatus, error) {
	url := healthURL(cfg.Target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build health check request", goerr.V("url", url))
	}

	client := &http.Client{Timeout: cfg.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to request health endpoint", goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, goerr.New("unexpected health check status code",
			goerr.V("url", url),
			goerr.V("status_code", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	var status model.HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, goerr.Wrap(err, "failed to decode health check response", goerr.V("url", url))
	}

	if !status.IsHealthy() {
		return nil, goerr.New("service is not healthy", goerr.V("url", url), goerr.V("status", status.Status))
	}

	return &status, nil
}
