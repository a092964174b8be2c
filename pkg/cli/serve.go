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
	"github.com/secmon-lab/orgdesk/pkg/cli/config"
	controller "github.com/secmon-lab/orgdesk/pkg/controller/http"
	"github.com/secmon-lab/orgdesk/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		githubCfg    config.GitHub
		slackCfg     config.Slack
		firestoreCfg config.Firestore
		profilesCfg  config.Profiles
		authCfg      config.Auth
	)

	flags := joinFlags(
		serverCfg.Flags(),
		githubCfg.Flags(),
		slackCfg.Flags(),
		firestoreCfg.Flags(),
		profilesCfg.Flags(),
		authCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting orgdesk server",
				slog.Any("server", serverCfg),
				slog.Any("github", githubCfg),
				slog.Any("slack", slackCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("profiles", profilesCfg),
				slog.Any("auth", authCfg),
			)

			role, err := githubCfg.Role()
			if err != nil {
				return err
			}
			factory, err := githubCfg.Configure()
			if err != nil {
				return err
			}
			if !factory.HasDefault() {
				logger.Info("No default GitHub credential, requests must supply a token or profile")
			}
			callers, err := authCfg.Configure()
			if err != nil {
				return err
			}
			if callers == nil {
				logger.Warn("api-secret not set, saved profiles and the default GitHub credential are unavailable over HTTP")
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Warn("Failed to close repository", "error", err)
				}
			}()

			profileUC := usecase.NewProfile(repo)
			seeds, err := profilesCfg.Configure()
			if err != nil {
				return err
			}
			if seeds != nil {
				n, err := profileUC.SeedProfiles(ctx, seeds)
				if err != nil {
					return goerr.Wrap(err, "failed to seed profiles")
				}
				logger.Info("Profiles seeded", "created", n, "total", len(seeds.Profiles))
			}

			inviteOpts := []usecase.InviteOption{usecase.WithDefaultRole(role)}
			if notifier := slackCfg.Configure(ctx); notifier != nil {
				inviteOpts = append(inviteOpts, usecase.WithNotifier(notifier))
			}

			useCases := controller.NewUseCases(
				usecase.NewInvite(inviteOpts...),
				usecase.NewOrganization(),
				profileUC,
			)

			server, err := controller.NewServer(
				ctx,
				controller.NewConfig(serverCfg.Addr, githubCfg.DefaultOrg(), callers),
				useCases,
				factory,
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
