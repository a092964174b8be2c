package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Service posts invitation reports to a Slack channel
type Service struct {
	client    *slack.Client
	channelID string
}

var _ interfaces.Notifier = (*Service)(nil)

// Option configures a Service
type Option func(*options)

type options struct {
	apiURL string
}

// WithAPIURL overrides the Slack API endpoint. The URL must end with "/".
func WithAPIURL(url string) Option {
	return func(o *options) {
		o.apiURL = url
	}
}

// New creates a new Slack service posting to channelID
func New(token, channelID string, opts ...Option) *Service {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var clientOpts []slack.Option
	if o.apiURL != "" {
		clientOpts = append(clientOpts, slack.OptionAPIURL(o.apiURL))
	}

	return &Service{
		client:    slack.New(token, clientOpts...),
		channelID: channelID,
	}
}

// NotifyInviteReport posts a summary of a completed invitation batch
func (s *Service) NotifyInviteReport(ctx context.Context, report *model.InviteReport) error {
	if report == nil {
		return goerr.New("invite report is nil")
	}

	channel, ts, err := s.client.PostMessageContext(ctx, s.channelID,
		slack.MsgOptionText(reportFallbackText(report), false),
		slack.MsgOptionBlocks(buildReportBlocks(report)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post invite report to Slack",
			goerr.V("channel", s.channelID),
			goerr.V("org", report.Org))
	}

	ctxlog.From(ctx).Debug("Invite report posted to Slack",
		"channel", channel,
		"ts", ts,
		"org", report.Org,
	)
	return nil
}
