package usecase

import (
	"context"
	"math"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
	"github.com/secmon-lab/orgdesk/pkg/utils/apperr"
	"golang.org/x/sync/errgroup"
)

const addMemberPhrase = "action:" + model.AuditActionAddMember

// Organization reads and reshapes organization state for display
type Organization struct {
	now func() time.Time
}

var _ interfaces.Organization = (*Organization)(nil)

// NewOrganization creates a new Organization use case
func NewOrganization() *Organization {
	return &Organization{now: time.Now}
}

// ListMembers returns every member annotated with role and, when the
// audit log is readable, the time they joined
func (u *Organization) ListMembers(ctx context.Context, client interfaces.GitHub, org types.OrgName) (*model.MemberList, error) {
	if org == "" {
		return nil, model.MissingParameter("org")
	}

	var (
		members []model.Member
		admins  []string
		events  []model.AuditEvent
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		members, err = client.ListMembers(egCtx, org)
		return err
	})
	eg.Go(func() error {
		var err error
		if admins, err = client.ListAdminLogins(egCtx, org); err != nil {
			ctxlog.From(ctx).Debug("admin list unavailable", "org", org, "error", err)
			admins = nil
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if events, err = client.ListAuditEvents(egCtx, org, addMemberPhrase); err != nil {
			// Audit log requires Enterprise Cloud
			ctxlog.From(ctx).Debug("audit log unavailable", "org", org, "error", err)
			events = nil
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to list members", goerr.V("org", org))
	}

	isAdmin := make(map[string]bool, len(admins))
	for _, login := range admins {
		isAdmin[login] = true
	}
	joined := latestJoins(events)

	for i := range members {
		m := &members[i]
		if isAdmin[m.Login] {
			m.Role = model.MemberRoleAdmin
		} else {
			m.Role = model.MemberRoleMember
		}
		if at, ok := joined[m.Login]; ok {
			m.JoinedAt = &at
		}
	}

	return &model.MemberList{Count: len(members), Members: members}, nil
}

// latestJoins keeps the most recent add_member event per user
func latestJoins(events []model.AuditEvent) map[string]time.Time {
	joined := make(map[string]time.Time)
	for _, e := range events {
		if e.Action != model.AuditActionAddMember || e.User == "" {
			continue
		}
		if prev, ok := joined[e.User]; !ok || e.CreatedAt.After(prev) {
			joined[e.User] = e.CreatedAt
		}
	}
	return joined
}

// ListInvitations returns pending invitations
func (u *Organization) ListInvitations(ctx context.Context, client interfaces.GitHub, org types.OrgName) (*model.InvitationList, error) {
	if org == "" {
		return nil, model.MissingParameter("org")
	}
	invs, err := client.ListInvitations(ctx, org)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list invitations", goerr.V("org", org))
	}
	return &model.InvitationList{Count: len(invs), Invitations: invs}, nil
}

// ListFailedInvitations returns invitations that failed or expired
func (u *Organization) ListFailedInvitations(ctx context.Context, client interfaces.GitHub, org types.OrgName) (*model.InvitationList, error) {
	if org == "" {
		return nil, model.MissingParameter("org")
	}
	invs, err := client.ListFailedInvitations(ctx, org)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list failed invitations", goerr.V("org", org))
	}
	return &model.InvitationList{Count: len(invs), Invitations: invs}, nil
}

// CopilotStatus classifies the organization's Copilot seat assignment.
// An organization without Copilot is reported as disabled, not as an error.
func (u *Organization) CopilotStatus(ctx context.Context, client interfaces.GitHub, org types.OrgName) (*model.CopilotStatus, error) {
	if org == "" {
		return nil, model.MissingParameter("org")
	}

	billing, err := client.GetCopilotBilling(ctx, org)
	if err != nil {
		if model.FailureFrom(err).IsNotFound() {
			return &model.CopilotStatus{
				Status:     model.CopilotDisabled,
				StatusText: "Copilot not enabled",
				Error:      "Copilot is not enabled for this organization",
			}, nil
		}
		return nil, goerr.Wrap(err, "failed to get copilot status", goerr.V("org", org))
	}

	status := &model.CopilotStatus{
		Setting: billing.SeatManagementSetting,
		Seats:   &model.CopilotSeats{},
	}
	switch billing.SeatManagementSetting {
	case model.SeatAssignAll:
		status.Status, status.StatusText = model.CopilotNormal, "All members of the organization"
	case model.SeatAssignSelected:
		status.Status, status.StatusText = model.CopilotSelected, "Selected members"
	default:
		status.Status, status.StatusText = model.CopilotDisabled, "Disabled"
	}
	if b := billing.SeatBreakdown; b != nil {
		status.Seats.Total = b.Total
		status.Seats.Active = b.ActiveThisCycle
		status.Seats.Pending = b.PendingInvitation
	}
	return status, nil
}

// OrgInfo summarizes plan, billing, enterprise membership and trial state.
// Only the organization lookup is required; billing and enterprise data
// are omitted when the token cannot read them.
func (u *Organization) OrgInfo(ctx context.Context, client interfaces.GitHub, org types.OrgName, now time.Time) (*model.OrgInfo, error) {
	if org == "" {
		return nil, model.MissingParameter("org")
	}

	var (
		o       *model.Organization
		billing map[string]any
		graph   *model.OrganizationGraph
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		o, err = client.GetOrganization(egCtx, org)
		return err
	})
	eg.Go(func() error {
		var err error
		if billing, err = client.GetActionsBilling(egCtx, org); err != nil {
			ctxlog.From(ctx).Debug("actions billing unavailable", "org", org, "error", err)
			billing = nil
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if graph, err = client.QueryOrganization(egCtx, org); err != nil {
			ctxlog.From(ctx).Debug("organization GraphQL query failed", "org", org, "error", err)
			graph = nil
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to get organization info", goerr.V("org", org))
	}

	info := &model.OrgInfo{
		Name:        o.Name,
		Login:       o.Login,
		Description: o.Description,
		Type:        o.Type,
		Billing:     billing,
		TrialEndsAt: o.TrialEndsAt,
		CreatedAt:   o.CreatedAt,
	}
	if info.Name == "" {
		info.Name = o.Login
	}
	if o.Plan != nil {
		info.Plan = &model.PlanInfo{
			Name:        o.Plan.Name,
			Seats:       o.Plan.Seats,
			FilledSeats: o.Plan.FilledSeats,
		}
	}
	if graph != nil && graph.Enterprise != nil {
		info.Enterprise = &model.EnterpriseInfo{
			HasEnterprise:  true,
			EnterpriseName: graph.Enterprise.Name,
			EnterpriseSlug: graph.Enterprise.Slug,
		}
	}
	if o.TrialEndsAt != nil {
		days := trialDaysRemaining(*o.TrialEndsAt, now)
		info.TrialDaysRemaining = &days
	}
	info.IsEnterprise = (o.Plan != nil && o.Plan.Name == "enterprise") || info.Enterprise != nil

	return info, nil
}

// trialDaysRemaining rounds partial days up; an expired trial goes to zero or below
func trialDaysRemaining(end, now time.Time) int {
	return int(math.Ceil(end.Sub(now).Hours() / 24))
}

// Overview gathers members, invitations, Copilot and organization info
// in parallel. Members and invitations are required; the other two are
// reported inline when they fail.
func (u *Organization) Overview(ctx context.Context, client interfaces.GitHub, org types.OrgName) (*model.Overview, error) {
	if org == "" {
		return nil, model.MissingParameter("org")
	}

	var (
		members *model.MemberList
		invs    *model.InvitationList
		copilot *model.CopilotStatus
		info    *model.OrgInfo
		infoErr error
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		members, err = u.ListMembers(egCtx, client, org)
		return err
	})
	eg.Go(func() error {
		var err error
		invs, err = u.ListInvitations(egCtx, client, org)
		return err
	})
	eg.Go(func() error {
		status, err := u.CopilotStatus(egCtx, client, org)
		if err != nil {
			apperr.Handle(ctx, err)
			status = &model.CopilotStatus{
				Status:     model.CopilotDisabled,
				StatusText: "Unavailable",
				Error:      model.FailureFrom(err).Message,
			}
		}
		copilot = status
		return nil
	})
	eg.Go(func() error {
		info, infoErr = u.OrgInfo(egCtx, client, org, u.now())
		if infoErr != nil {
			apperr.Handle(ctx, infoErr)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to build overview", goerr.V("org", org))
	}

	overview := &model.Overview{
		Org:          org.String(),
		MembersCount: members.Count,
		Members:      members.Members,
		InvitesCount: invs.Count,
		Invitations:  invs.Invitations,
		Copilot:      copilot,
		OrgInfo:      info,
	}
	if infoErr != nil {
		overview.OrgInfoError = model.FailureFrom(infoErr).Message
	}
	return overview, nil
}
