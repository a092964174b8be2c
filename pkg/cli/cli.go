package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// Version is the orgdesk release, overridden at build time via -ldflags
var Version = "0.1.0"

// Run parses args and executes the selected command
func Run(ctx context.Context, args []string) error {
	app := newApp()
	if err := app.Run(ctx, args); err != nil {
		ctxlog.From(ctx).Error("Command failed", "error", err)
		return goerr.Wrap(err, "orgdesk failed")
	}
	return nil
}

func newApp() *cli.Command {
	var loggerCfg config.Logger

	// The logger is installed before any subcommand runs so that
	// configuration errors are already reported through it
	setupLogger := func(ctx context.Context, _ *cli.Command) (context.Context, error) {
		logger, err := loggerCfg.Configure()
		if err != nil {
			return nil, err
		}
		slog.SetDefault(logger)
		logger.Debug("Logger configured", "logger", loggerCfg)
		return ctxlog.With(ctx, logger), nil
	}

	return &cli.Command{
		Name:    "orgdesk",
		Usage:   "GitHub organization overview and bulk invitations",
		Version: Version,
		Flags:   loggerCfg.Flags(),
		Before:  setupLogger,
		Commands: []*cli.Command{
			cmdServe(),
			cmdInvite(),
			cmdToken(),
		},
	}
}
