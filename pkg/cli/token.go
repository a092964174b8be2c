package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdToken() *cli.Command {
	var (
		authCfg config.Auth
		subject string
		ttl     time.Duration
	)

	flags := joinFlags(
		authCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "subject",
				Aliases:     []string{"s"},
				Usage:       "Caller name recorded in the token and request logs",
				Required:    true,
				Destination: &subject,
			},
			&cli.DurationFlag{
				Name:        "ttl",
				Usage:       "Token lifetime",
				Value:       24 * time.Hour,
				Destination: &ttl,
			},
		},
	)

	return &cli.Command{
		Name:  "token",
		Usage: "Issue an API token for callers of the HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if !authCfg.IsConfigured() {
				return goerr.New("api-secret is required to issue tokens")
			}
			svc, err := authCfg.Service()
			if err != nil {
				return err
			}

			token, err := svc.Issue(subject, ttl)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Info("API token issued", "subject", subject, "ttl", ttl)

			w := c.Root().Writer
			if w == nil {
				w = os.Stdout
			}
			if _, err := fmt.Fprintln(w, token); err != nil {
				return goerr.Wrap(err, "failed to write token")
			}
			return nil
		},
	}
}
