package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
)

var _ interfaces.GitHub = (*Client)(nil)

// ResolveUser looks up a user by login
func (c *Client) ResolveUser(ctx context.Context, username string) (*model.ResolvedUser, error) {
	var u user
	if err := c.get(ctx, "/users/"+url.PathEscape(username), &u); err != nil {
		return nil, goerr.Wrap(err, "failed to resolve user", goerr.V("username", username))
	}
	return &model.ResolvedUser{ID: types.UserID(u.ID), Login: u.Login}, nil
}

// CreateInvitation invites either an email address or a resolved user ID
func (c *Client) CreateInvitation(ctx context.Context, org types.OrgName, target model.InviteTarget) (*model.InvitationReceipt, error) {
	body := createInvitationRequest{
		InviteeID: target.InviteeID.Int64(),
		Email:     target.Email,
		Role:      target.Role.String(),
	}

	var created invitation
	status, err := c.post(ctx, orgPath(org.String(), "invitations"), body, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create invitation",
			goerr.V("org", org),
			goerr.V("email", target.Email),
			goerr.V("inviteeID", target.InviteeID))
	}
	return &model.InvitationReceipt{ID: created.ID, StatusCode: status}, nil
}

// ListMembers returns every member of the organization
func (c *Client) ListMembers(ctx context.Context, org types.OrgName) ([]model.Member, error) {
	users, err := list[user](c, withQuery(orgPath(org.String(), "members"), nil)).Collect(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list members", goerr.V("org", org))
	}

	members := make([]model.Member, 0, len(users))
	for _, u := range users {
		members = append(members, model.Member{
			ID:        u.ID,
			Login:     u.Login,
			AvatarURL: u.AvatarURL,
			HTMLURL:   u.HTMLURL,
			Type:      u.Type,
			SiteAdmin: u.SiteAdmin,
		})
	}
	return members, nil
}

// ListAdminLogins returns the logins of organization owners
func (c *Client) ListAdminLogins(ctx context.Context, org types.OrgName) ([]string, error) {
	query := url.Values{"role": {"admin"}}
	users, err := list[user](c, withQuery(orgPath(org.String(), "members"), query)).Collect(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list admins", goerr.V("org", org))
	}

	logins := make([]string, 0, len(users))
	for _, u := range users {
		logins = append(logins, u.Login)
	}
	return logins, nil
}

// ListAuditEvents returns audit log entries matching a search phrase.
// The audit log is only available to Enterprise Cloud organizations.
func (c *Client) ListAuditEvents(ctx context.Context, org types.OrgName, phrase string) ([]model.AuditEvent, error) {
	query := url.Values{"phrase": {phrase}, "order": {"desc"}}
	entries, err := list[auditEntry](c, withQuery(orgPath(org.String(), "audit-log"), query)).Collect(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list audit log", goerr.V("org", org), goerr.V("phrase", phrase))
	}

	events := make([]model.AuditEvent, 0, len(entries))
	for _, e := range entries {
		events = append(events, model.AuditEvent{
			Action:    e.Action,
			User:      e.User,
			CreatedAt: e.time(),
		})
	}
	return events, nil
}

// ListInvitations returns all pending invitations
func (c *Client) ListInvitations(ctx context.Context, org types.OrgName) ([]model.Invitation, error) {
	invs, err := list[invitation](c, withQuery(orgPath(org.String(), "invitations"), nil)).Collect(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list invitations", goerr.V("org", org))
	}
	return toInvitations(invs), nil
}

// ListFailedInvitations returns invitations that expired or could not be delivered
func (c *Client) ListFailedInvitations(ctx context.Context, org types.OrgName) ([]model.Invitation, error) {
	invs, err := list[invitation](c, withQuery(orgPath(org.String(), "failed_invitations"), nil)).Collect(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list failed invitations", goerr.V("org", org))
	}
	return toInvitations(invs), nil
}

func toInvitations(invs []invitation) []model.Invitation {
	result := make([]model.Invitation, 0, len(invs))
	for _, inv := range invs {
		m := model.Invitation{
			ID:           inv.ID,
			Role:         inv.Role,
			CreatedAt:    inv.CreatedAt,
			FailedAt:     inv.FailedAt,
			FailedReason: inv.FailedReason,
			TeamCount:    inv.TeamCount,
		}
		if inv.Login != nil {
			m.Login = *inv.Login
		}
		if inv.Email != nil {
			m.Email = *inv.Email
		}
		if inv.Inviter != nil {
			m.Inviter = inv.Inviter.Login
		}
		result = append(result, m)
	}
	return result
}

// GetOrganization returns the organization profile and plan
func (c *Client) GetOrganization(ctx context.Context, org types.OrgName) (*model.Organization, error) {
	var o organization
	if err := c.get(ctx, orgPath(org.String()), &o); err != nil {
		return nil, goerr.Wrap(err, "failed to get organization", goerr.V("org", org))
	}

	result := &model.Organization{
		Login:       o.Login,
		Name:        o.Name,
		Description: o.Description,
		Type:        o.Type,
		TrialEndsAt: o.TrialEndsAt,
		CreatedAt:   o.CreatedAt,
	}
	if o.Plan != nil {
		result.Plan = &model.Plan{
			Name:        o.Plan.Name,
			Seats:       o.Plan.Seats,
			FilledSeats: o.Plan.FilledSeats,
		}
	}
	return result, nil
}

// GetCopilotBilling returns the Copilot seat management state
func (c *Client) GetCopilotBilling(ctx context.Context, org types.OrgName) (*model.CopilotBilling, error) {
	var b copilotBilling
	if err := c.get(ctx, orgPath(org.String(), "copilot", "billing"), &b); err != nil {
		return nil, goerr.Wrap(err, "failed to get copilot billing", goerr.V("org", org))
	}

	result := &model.CopilotBilling{SeatManagementSetting: b.SeatManagementSetting}
	if b.SeatBreakdown != nil {
		result.SeatBreakdown = &model.SeatBreakdown{
			Total:             b.SeatBreakdown.Total,
			ActiveThisCycle:   b.SeatBreakdown.ActiveThisCycle,
			PendingInvitation: b.SeatBreakdown.PendingInvitation,
		}
	}
	return result, nil
}

// GetActionsBilling returns the Actions billing summary as GitHub reports it
func (c *Client) GetActionsBilling(ctx context.Context, org types.OrgName) (map[string]any, error) {
	body, _, err := c.do(ctx, http.MethodGet, orgPath(org.String(), "settings", "billing", "actions"), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get actions billing", goerr.V("org", org))
	}

	var billing map[string]any
	if err := json.Unmarshal(body, &billing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode actions billing")
	}
	return billing, nil
}
