package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mnemosyne-lab/mnemosyne/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var backendCfg config.Backend

	return &cli.Command{
		Name:  "check",
		Usage: "Check knowledge backend connectivity",
		Flags: backendCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			backendClient, err := backendCfg.Configure()
			if err != nil {
				return err
			}

			health, err := backendClient.Health(ctx)
			if err != nil {
				return goerr.Wrap(err, "backend health check failed",
					goerr.V("url", backendCfg.URL))
			}

			logger.Info("Backend is reachable",
				slog.String("status", health.Status),
				slog.String("service", health.Service),
			)
			return nil
		},
	}
}
