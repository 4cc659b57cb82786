package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mnemosyne-lab/mnemosyne/pkg/cli/config"
	controller "github.com/mnemosyne-lab/mnemosyne/pkg/controller/http"
	"github.com/mnemosyne-lab/mnemosyne/pkg/repository"
	"github.com/mnemosyne-lab/mnemosyne/pkg/service/advisor"
	"github.com/mnemosyne-lab/mnemosyne/pkg/service/fixture"
	"github.com/mnemosyne-lab/mnemosyne/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		backendCfg config.Backend
		claudeCfg  config.Claude
		ownersCfg  config.Owners
	)

	flags := joinFlags(
		serverCfg.Flags(),
		backendCfg.Flags(),
		claudeCfg.Flags(),
		ownersCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting mnemosyne server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("backend", backendCfg),
				slog.Any("claude", claudeCfg),
				slog.Any("owners", ownersCfg),
			)

			repo := repository.NewMemory()
			defer func() {
				_ = repo.Close()
			}()

			pool, err := ownersCfg.Configure()
			if err != nil {
				return err
			}
			fixtures := fixture.New(pool)

			backendClient, err := backendCfg.Configure()
			if err != nil {
				return err
			}

			var opts []usecase.ResilienceOption
			if llmClient := claudeCfg.ConfigureOptional(ctx, logger); llmClient != nil {
				opts = append(opts, usecase.WithAdvisor(advisor.New(llmClient)))
			}

			resilienceUC := usecase.NewResilience(backendClient, repo, fixtures, opts...)

			server, err := controller.NewServer(ctx, serverCfg.Addr, resilienceUC)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Warm up the dashboard and keep it fresh in the background
			resilienceUC.StartBackgroundRefresh(ctx, backendCfg.RefreshInterval)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
