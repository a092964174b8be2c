package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/orgdesk/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds report notification settings
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token for posting invitation reports",
			Category:    "Slack",
			Sources:     cli.EnvVars("ORGDESK_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID receiving invitation reports",
			Category:    "Slack",
			Sources:     cli.EnvVars("ORGDESK_SLACK_CHANNEL_ID"),
			Destination: &s.ChannelID,
		},
	}
}

// IsConfigured checks if both token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// Configure returns a report notifier, or nil when Slack is not configured
func (s *Slack) Configure(ctx context.Context) interfaces.Notifier {
	if !s.IsConfigured() {
		ctxlog.From(ctx).Debug("Slack not configured, invitation reports will not be posted")
		return nil
	}
	return slackSvc.New(s.OAuthToken, s.ChannelID)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel_id", s.ChannelID),
	)
}
