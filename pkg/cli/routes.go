package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	controller "github.com/m-mizutani/ekshello/pkg/controller/http"
	"github.com/m-mizutani/ekshello/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdRoutes() *cli.Command {
	return &cli.Command{
		Name:  "routes",
		Usage: "Print the HTTP routing table",
		Action: func(ctx context.Context, c *cli.Command) error {
			server, err := controller.NewServer(ctx, usecase.NewGreeting(), usecase.NewHealth())
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			routes, err := server.Routes()
			if err != nil {
				return err
			}

			w := c.Root().Writer
			if w == nil {
				w = os.Stdout
			}
			return printRoutes(w, routes)
		},
	}
}

func printRoutes(w io.Writer, routes []controller.Route) error {
	method := color.New(color.FgGreen, color.Bold).SprintfFunc()
	path := color.New(color.FgCyan).SprintFunc()

	for _, r := range routes {
		if _, err := fmt.Fprintf(w, "%s %s\n", method("%-7s", r.Method), path(r.Path)); err != nil {
			return goerr.Wrap(err, "failed to write routes")
		}
	}
	return nil
}
