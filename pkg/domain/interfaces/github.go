package interfaces

//go:generate moq -out mocks/github_mock.go -pkg mocks . GitHub

import (
	"context"

	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
)

// GitHub is an authenticated capability against the GitHub API. Every
// failed call returns an error from which model.FailureFrom can recover
// the upstream status code and message.
type GitHub interface {
	// Identity and invitation operations
	ResolveUser(ctx context.Context, username string) (*model.ResolvedUser, error)
	CreateInvitation(ctx context.Context, org types.OrgName, target model.InviteTarget) (*model.InvitationReceipt, error)

	// Membership listings, all pages
	ListMembers(ctx context.Context, org types.OrgName) ([]model.Member, error)
	ListAdminLogins(ctx context.Context, org types.OrgName) ([]string, error)
	ListAuditEvents(ctx context.Context, org types.OrgName, phrase string) ([]model.AuditEvent, error)
	ListInvitations(ctx context.Context, org types.OrgName) ([]model.Invitation, error)
	ListFailedInvitations(ctx context.Context, org types.OrgName) ([]model.Invitation, error)

	// Organization and billing state
	GetOrganization(ctx context.Context, org types.OrgName) (*model.Organization, error)
	GetCopilotBilling(ctx context.Context, org types.OrgName) (*model.CopilotBilling, error)
	GetActionsBilling(ctx context.Context, org types.OrgName) (map[string]any, error)
	QueryOrganization(ctx context.Context, org types.OrgName) (*model.OrganizationGraph, error)
}

// GitHubFactory creates a GitHub capability bound to a caller-supplied
// token. An empty token selects the server's default credential.
type GitHubFactory interface {
	New(token types.Token) (GitHub, error)
	HasDefault() bool
}
