package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
	"github.com/secmon-lab/orgdesk/pkg/service/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration. The token or App credentials
// are the server default, used when a request brings no token of its own.
type GitHub struct {
	Token          string
	Org            string
	DefaultRole    string
	BaseURL        string
	AppID          int64
	PrivateKeyFile string
	InstallationID int64
}

// Flags returns CLI flags for GitHub configuration
func (g *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "Default GitHub token",
			Category:    "GitHub",
			Sources:     cli.EnvVars("ORGDESK_GITHUB_TOKEN"),
			Destination: &g.Token,
		},
		&cli.StringFlag{
			Name:        "github-org",
			Usage:       "Default organization login",
			Category:    "GitHub",
			Sources:     cli.EnvVars("ORGDESK_GITHUB_ORG"),
			Destination: &g.Org,
		},
		&cli.StringFlag{
			Name:        "github-default-role",
			Usage:       "Role used when an invite request names none (direct_member, admin)",
			Category:    "GitHub",
			Value:       types.DefaultRole.String(),
			Sources:     cli.EnvVars("ORGDESK_GITHUB_DEFAULT_ROLE"),
			Destination: &g.DefaultRole,
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL",
			Category:    "GitHub",
			Value:       github.DefaultBaseURL,
			Sources:     cli.EnvVars("ORGDESK_GITHUB_BASE_URL"),
			Destination: &g.BaseURL,
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID for installation authentication",
			Category:    "GitHub",
			Sources:     cli.EnvVars("ORGDESK_GITHUB_APP_ID"),
			Destination: &g.AppID,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key-file",
			Usage:       "Path to the GitHub App private key (PEM)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("ORGDESK_GITHUB_APP_PRIVATE_KEY_FILE"),
			Destination: &g.PrivateKeyFile,
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Sources:     cli.EnvVars("ORGDESK_GITHUB_INSTALLATION_ID"),
			Destination: &g.InstallationID,
		},
	}
}

// Role returns the validated default invitation role
func (g *GitHub) Role() (types.Role, error) {
	if g.DefaultRole == "" {
		return types.DefaultRole, nil
	}
	role := types.Role(g.DefaultRole)
	if !role.IsValid() {
		return "", model.InvalidParameter("github-default-role", g.DefaultRole)
	}
	return role, nil
}

// DefaultOrg returns the configured default organization
func (g *GitHub) DefaultOrg() types.OrgName {
	return types.OrgName(g.Org)
}

// Configure creates a client factory holding the default credential
func (g *GitHub) Configure() (*github.Factory, error) {
	if _, err := g.Role(); err != nil {
		return nil, err
	}

	cfg := github.Config{
		BaseURL: g.BaseURL,
		Token:   g.Token,
	}

	if g.AppID != 0 {
		if g.Token != "" {
			return nil, goerr.New("github-token and github-app-id are mutually exclusive")
		}
		if g.PrivateKeyFile == "" || g.InstallationID == 0 {
			return nil, goerr.New("github-app-private-key-file and github-installation-id are required with github-app-id",
				goerr.V("app_id", g.AppID))
		}
		key, err := os.ReadFile(g.PrivateKeyFile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read GitHub App private key", goerr.V("path", g.PrivateKeyFile))
		}
		cfg.AppID = g.AppID
		cfg.PrivateKey = key
		cfg.InstallationID = g.InstallationID
	}

	return github.NewFactory(cfg), nil
}

// LogValue returns structured log value
func (g GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_token", g.Token != ""),
		slog.String("org", g.Org),
		slog.String("default_role", g.DefaultRole),
		slog.String("base_url", g.BaseURL),
		slog.Int64("app_id", g.AppID),
		slog.Int64("installation_id", g.InstallationID),
	)
}
