package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
	"github.com/secmon-lab/orgdesk/pkg/utils/async"
)

// InviteOption is a functional option for configuring Invite
type InviteOption func(*Invite)

// WithDefaultRole sets the role used when a request does not name one
func WithDefaultRole(role types.Role) InviteOption {
	return func(u *Invite) {
		if role != "" {
			u.defaultRole = role
		}
	}
}

// WithNotifier publishes every completed report in the background
func WithNotifier(notifier interfaces.Notifier) InviteOption {
	return func(u *Invite) {
		u.notifier = notifier
	}
}

// Invite reconciles a list of identifiers into organization invitations,
// one identifier at a time
type Invite struct {
	defaultRole types.Role
	notifier    interfaces.Notifier
}

var _ interfaces.Invite = (*Invite)(nil)

// NewInvite creates a new Invite use case
func NewInvite(opts ...InviteOption) *Invite {
	u := &Invite{defaultRole: types.DefaultRole}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// InviteBatch attempts an invitation for every non-blank identifier in
// req and returns one outcome per identifier in input order. Only
// parameter errors are returned as error; upstream failures become
// outcomes and never stop the batch.
func (u *Invite) InviteBatch(ctx context.Context, client interfaces.GitHub, req model.InviteRequest) (*model.InviteReport, error) {
	if req.Org == "" {
		return nil, model.MissingParameter("org")
	}

	ids := model.ParseIdentifiers(req.Identifiers)
	if len(ids) == 0 {
		return nil, model.MissingParameter("identifiers")
	}

	role := req.Role
	if role == "" {
		role = u.defaultRole
	}
	if !role.IsValid() {
		return nil, model.InvalidParameter("role", role.String())
	}

	logger := ctxlog.From(ctx).With("org", req.Org, "role", role)
	logger.Info("Starting invitation batch", "count", len(ids))

	report := &model.InviteReport{
		Org:     req.Org,
		Role:    role,
		Results: make([]model.InviteOutcome, 0, len(ids)),
	}

	for _, id := range ids {
		outcome := u.inviteOne(ctx, client, req.Org, role, id)
		if outcome.OK {
			report.OKCount++
			logger.Info("Invitation sent", "identifier", id, "channel", outcome.Channel, "status", outcome.Status)
		} else {
			logger.Warn("Invitation failed",
				"identifier", id,
				"channel", outcome.Channel,
				"reason", outcome.Reason,
				"error", outcome.Error,
			)
		}
		report.Results = append(report.Results, outcome)
	}

	logger.Info("Invitation batch completed", "okCount", report.OKCount, "total", len(report.Results))

	if u.notifier != nil {
		notifier := u.notifier
		async.Dispatch(ctx, func(ctx context.Context) error {
			return notifier.NotifyInviteReport(ctx, report)
		})
	}

	return report, nil
}

func (u *Invite) inviteOne(ctx context.Context, client interfaces.GitHub, org types.OrgName, role types.Role, id model.Identifier) model.InviteOutcome {
	outcome := model.InviteOutcome{Identifier: id, Channel: id.Channel()}
	target := model.InviteTarget{Role: role}

	switch outcome.Channel {
	case model.ChannelEmail:
		target.Email = id.String()

	case model.ChannelUsername:
		user, err := client.ResolveUser(ctx, id.String())
		if err != nil {
			// Any resolution failure, 404 included, goes through the classifier.
			// A 404 never reaches CreateInvitation.
			return failed(outcome, model.Classify(model.FailureFrom(err)))
		}
		target.InviteeID = user.ID
	}

	receipt, err := client.CreateInvitation(ctx, org, target)
	if err != nil {
		return failed(outcome, model.Classify(model.FailureFrom(err)))
	}

	outcome.OK = true
	outcome.Status = receipt.StatusCode
	outcome.Message = model.MessageInvitationSent
	return outcome
}

func failed(outcome model.InviteOutcome, reason model.Reason) model.InviteOutcome {
	outcome.OK = false
	outcome.Error = reason.Message
	outcome.Reason = reason.Kind
	return outcome
}
