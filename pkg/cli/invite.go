package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/cli/config"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
	"github.com/secmon-lab/orgdesk/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdInvite() *cli.Command {
	var (
		githubCfg config.GitHub
		org       string
		role      string
		file      string
	)

	flags := joinFlags(
		githubCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "org",
				Aliases:     []string{"o"},
				Usage:       "Organization to invite into (defaults to --github-org)",
				Destination: &org,
			},
			&cli.StringFlag{
				Name:        "role",
				Aliases:     []string{"r"},
				Usage:       "Invitation role (defaults to --github-default-role)",
				Destination: &role,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "Read identifiers from file, separated by whitespace, comma or semicolon",
				Destination: &file,
			},
		},
	)

	return &cli.Command{
		Name:      "invite",
		Usage:     "Invite usernames and email addresses into an organization",
		ArgsUsage: "[identifier...]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			identifiers, err := collectIdentifiers(file, c.Args().Slice())
			if err != nil {
				return err
			}

			defaultRole, err := githubCfg.Role()
			if err != nil {
				return err
			}
			factory, err := githubCfg.Configure()
			if err != nil {
				return err
			}
			if !factory.HasDefault() {
				return goerr.New("github-token or GitHub App credentials are required")
			}
			client, err := factory.New("")
			if err != nil {
				return err
			}

			target := types.OrgName(org)
			if target == "" {
				target = githubCfg.DefaultOrg()
			}

			uc := usecase.NewInvite(usecase.WithDefaultRole(defaultRole))
			report, err := uc.InviteBatch(ctx, client, model.InviteRequest{
				Org:         target,
				Identifiers: identifiers,
				Role:        types.Role(role),
			})
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Invitation batch finished",
				"org", report.Org,
				"role", report.Role,
				"ok", report.OKCount,
				"total", len(report.Results),
			)
			return writeReport(c.Root().Writer, report)
		},
	}
}

// collectIdentifiers merges identifiers from file and positional
// arguments, splitting each the same way as the web form
func collectIdentifiers(file string, args []string) ([]string, error) {
	var identifiers []string
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read identifiers file", goerr.V("path", file))
		}
		identifiers = append(identifiers, model.SplitIdentifierText(string(data))...)
	}
	for _, arg := range args {
		identifiers = append(identifiers, model.SplitIdentifierText(arg)...)
	}
	return identifiers, nil
}

func writeReport(w io.Writer, report *model.InviteReport) error {
	if w == nil {
		w = os.Stdout
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return goerr.Wrap(err, "failed to write report")
	}
	return nil
}
