package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
	"github.com/secmon-lab/orgdesk/pkg/service/github"
	"github.com/secmon-lab/orgdesk/pkg/usecase"
)

func ptr[T any](v T) *T { return &v }

func memberMock() *mocks.GitHubMock {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	return &mocks.GitHubMock{
		ListMembersFunc: func(ctx context.Context, org types.OrgName) ([]model.Member, error) {
			return []model.Member{{ID: 1, Login: "alice"}, {ID: 2, Login: "bob"}}, nil
		},
		ListAdminLoginsFunc: func(ctx context.Context, org types.OrgName) ([]string, error) {
			return []string{"alice"}, nil
		},
		ListAuditEventsFunc: func(ctx context.Context, org types.OrgName, phrase string) ([]model.AuditEvent, error) {
			return []model.AuditEvent{
				{Action: model.AuditActionAddMember, User: "alice", CreatedAt: t1},
				{Action: model.AuditActionAddMember, User: "alice", CreatedAt: t2},
				{Action: "org.remove_member", User: "bob", CreatedAt: t2},
			}, nil
		},
		ListInvitationsFunc: func(ctx context.Context, org types.OrgName) ([]model.Invitation, error) {
			return []model.Invitation{{ID: 10, Email: "carol@example.com"}}, nil
		},
		GetCopilotBillingFunc: func(ctx context.Context, org types.OrgName) (*model.CopilotBilling, error) {
			return &model.CopilotBilling{SeatManagementSetting: model.SeatAssignAll}, nil
		},
		GetOrganizationFunc: func(ctx context.Context, org types.OrgName) (*model.Organization, error) {
			return &model.Organization{Login: "acme"}, nil
		},
		GetActionsBillingFunc: func(ctx context.Context, org types.OrgName) (map[string]any, error) {
			return nil, &github.APIError{StatusCode: 403, Message: "Forbidden"}
		},
		QueryOrganizationFunc: func(ctx context.Context, org types.OrgName) (*model.OrganizationGraph, error) {
			return nil, errors.New("graphql unavailable")
		},
	}
}

func TestListMembers(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewOrganization()

	t.Run("enriches role and join time", func(t *testing.T) {
		gh := memberMock()
		list, err := uc.ListMembers(ctx, gh, "acme")
		gt.NoError(t, err).Required()
		gt.Equal(t, 2, list.Count)

		alice, bob := list.Members[0], list.Members[1]
		gt.Equal(t, model.MemberRoleAdmin, alice.Role)
		gt.V(t, alice.JoinedAt).NotNil()
		gt.Equal(t, 2024, alice.JoinedAt.Year())
		gt.Equal(t, time.June, alice.JoinedAt.Month())

		gt.Equal(t, model.MemberRoleMember, bob.Role)
		gt.True(t, bob.JoinedAt == nil)

		gt.Equal(t, "action:org.add_member", gh.ListAuditEventsCalls()[0].Phrase)
	})

	t.Run("audit log and admin failures are ignored", func(t *testing.T) {
		gh := memberMock()
		gh.ListAdminLoginsFunc = func(ctx context.Context, org types.OrgName) ([]string, error) {
			return nil, &github.APIError{StatusCode: 403, Message: "Forbidden"}
		}
		gh.ListAuditEventsFunc = func(ctx context.Context, org types.OrgName, phrase string) ([]model.AuditEvent, error) {
			return nil, &github.APIError{StatusCode: 404, Message: "Not Found"}
		}

		list, err := uc.ListMembers(ctx, gh, "acme")
		gt.NoError(t, err).Required()
		for _, m := range list.Members {
			gt.Equal(t, model.MemberRoleMember, m.Role)
			gt.True(t, m.JoinedAt == nil)
		}
	})

	t.Run("member list failure is an error", func(t *testing.T) {
		gh := memberMock()
		gh.ListMembersFunc = func(ctx context.Context, org types.OrgName) ([]model.Member, error) {
			return nil, &github.APIError{StatusCode: 401, Message: "Bad credentials"}
		}
		_, err := uc.ListMembers(ctx, gh, "acme")
		gt.Error(t, err)
		gt.Equal(t, 401, model.FailureFrom(err).StatusCode)
	})

	t.Run("org is required", func(t *testing.T) {
		_, err := uc.ListMembers(ctx, &mocks.GitHubMock{}, "")
		gt.True(t, goerr.HasTag(err, model.ErrTagMissingParameter))
	})
}

func TestListInvitations(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewOrganization()

	gh := memberMock()
	gh.ListFailedInvitationsFunc = func(ctx context.Context, org types.OrgName) ([]model.Invitation, error) {
		return []model.Invitation{{ID: 11, Login: "dave", FailedReason: "expired"}, {ID: 12}}, nil
	}

	pending, err := uc.ListInvitations(ctx, gh, "acme")
	gt.NoError(t, err).Required()
	gt.Equal(t, 1, pending.Count)
	gt.Equal(t, "carol@example.com", pending.Invitations[0].Email)

	failedList, err := uc.ListFailedInvitations(ctx, gh, "acme")
	gt.NoError(t, err).Required()
	gt.Equal(t, 2, failedList.Count)
	gt.Equal(t, "expired", failedList.Invitations[0].FailedReason)
}

func TestCopilotStatus(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewOrganization()

	tests := []struct {
		name       string
		billing    *model.CopilotBilling
		err        error
		wantStatus model.CopilotState
		wantText   string
		wantSeats  *model.CopilotSeats
		wantError  string
	}{
		{
			name: "assign all",
			billing: &model.CopilotBilling{
				SeatManagementSetting: "assign_all",
				SeatBreakdown:         &model.SeatBreakdown{Total: 10, ActiveThisCycle: 7, PendingInvitation: 2},
			},
			wantStatus: model.CopilotNormal,
			wantText:   "All members of the organization",
			wantSeats:  &model.CopilotSeats{Total: 10, Active: 7, Pending: 2},
		},
		{
			name:       "assign selected without breakdown",
			billing:    &model.CopilotBilling{SeatManagementSetting: "assign_selected"},
			wantStatus: model.CopilotSelected,
			wantText:   "Selected members",
			wantSeats:  &model.CopilotSeats{},
		},
		{
			name:       "disabled setting",
			billing:    &model.CopilotBilling{SeatManagementSetting: "disabled"},
			wantStatus: model.CopilotDisabled,
			wantText:   "Disabled",
			wantSeats:  &model.CopilotSeats{},
		},
		{
			name:       "not enabled",
			err:        goerr.Wrap(&github.APIError{StatusCode: 404, Message: "Not Found"}, "failed"),
			wantStatus: model.CopilotDisabled,
			wantText:   "Copilot not enabled",
			wantError:  "Copilot is not enabled for this organization",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gh := &mocks.GitHubMock{
				GetCopilotBillingFunc: func(ctx context.Context, org types.OrgName) (*model.CopilotBilling, error) {
					return tt.billing, tt.err
				},
			}
			status, err := uc.CopilotStatus(ctx, gh, "acme")
			gt.NoError(t, err).Required()
			gt.Equal(t, tt.wantStatus, status.Status)
			gt.Equal(t, tt.wantText, status.StatusText)
			gt.Equal(t, tt.wantSeats, status.Seats)
			gt.Equal(t, tt.wantError, status.Error)
		})
	}

	t.Run("other failures are errors", func(t *testing.T) {
		gh := &mocks.GitHubMock{
			GetCopilotBillingFunc: func(ctx context.Context, org types.OrgName) (*model.CopilotBilling, error) {
				return nil, &github.APIError{StatusCode: 403, Message: "Forbidden"}
			},
		}
		_, err := uc.CopilotStatus(ctx, gh, "acme")
		gt.Error(t, err)
	})
}

func TestOrgInfo(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewOrganization()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("trial and enterprise", func(t *testing.T) {
		gh := memberMock()
		gh.GetOrganizationFunc = func(ctx context.Context, org types.OrgName) (*model.Organization, error) {
			return &model.Organization{
				Login:       "acme",
				Name:        "Acme Inc",
				Plan:        &model.Plan{Name: "team", Seats: 20, FilledSeats: 5},
				TrialEndsAt: ptr(now.Add(36 * time.Hour)),
			}, nil
		}
		gh.GetActionsBillingFunc = func(ctx context.Context, org types.OrgName) (map[string]any, error) {
			return map[string]any{"total_minutes_used": float64(120)}, nil
		}
		gh.QueryOrganizationFunc = func(ctx context.Context, org types.OrgName) (*model.OrganizationGraph, error) {
			return &model.OrganizationGraph{Enterprise: &model.Enterprise{Name: "Acme Ent", Slug: "acme-ent"}}, nil
		}

		info, err := uc.OrgInfo(ctx, gh, "acme", now)
		gt.NoError(t, err).Required()
		gt.Equal(t, "Acme Inc", info.Name)
		gt.Equal(t, &model.PlanInfo{Name: "team", Seats: 20, FilledSeats: 5}, info.Plan)
		gt.V(t, info.Billing["total_minutes_used"]).Equal(any(float64(120)))
		gt.V(t, info.Enterprise).NotNil()
		gt.Equal(t, "acme-ent", info.Enterprise.EnterpriseSlug)
		gt.True(t, info.IsEnterprise)
		gt.V(t, info.TrialDaysRemaining).NotNil()
		gt.Equal(t, 2, *info.TrialDaysRemaining)
	})

	t.Run("best effort calls fail quietly", func(t *testing.T) {
		info, err := uc.OrgInfo(ctx, memberMock(), "acme", now)
		gt.NoError(t, err).Required()
		gt.Equal(t, "acme", info.Name)
		gt.True(t, info.Billing == nil)
		gt.True(t, info.Enterprise == nil)
		gt.True(t, info.Plan == nil)
		gt.True(t, info.TrialDaysRemaining == nil)
		gt.False(t, info.IsEnterprise)
	})

	t.Run("enterprise plan without enterprise account", func(t *testing.T) {
		gh := memberMock()
		gh.GetOrganizationFunc = func(ctx context.Context, org types.OrgName) (*model.Organization, error) {
			return &model.Organization{Login: "acme", Plan: &model.Plan{Name: "enterprise"}}, nil
		}
		info, err := uc.OrgInfo(ctx, gh, "acme", now)
		gt.NoError(t, err).Required()
		gt.True(t, info.IsEnterprise)
	})

	t.Run("expired trial", func(t *testing.T) {
		gh := memberMock()
		gh.GetOrganizationFunc = func(ctx context.Context, org types.OrgName) (*model.Organization, error) {
			return &model.Organization{Login: "acme", TrialEndsAt: ptr(now.Add(-50 * time.Hour))}, nil
		}
		info, err := uc.OrgInfo(ctx, gh, "acme", now)
		gt.NoError(t, err).Required()
		gt.Equal(t, -2, *info.TrialDaysRemaining)
	})

	t.Run("organization lookup is required", func(t *testing.T) {
		gh := memberMock()
		gh.GetOrganizationFunc = func(ctx context.Context, org types.OrgName) (*model.Organization, error) {
			return nil, &github.APIError{StatusCode: 404, Message: "Not Found"}
		}
		_, err := uc.OrgInfo(ctx, gh, "acme", now)
		gt.Error(t, err)
	})
}

func TestOverview(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewOrganization()

	t.Run("combines all sections", func(t *testing.T) {
		overview, err := uc.Overview(ctx, memberMock(), "acme")
		gt.NoError(t, err).Required()
		gt.Equal(t, "acme", overview.Org)
		gt.Equal(t, 2, overview.MembersCount)
		gt.Equal(t, 1, overview.InvitesCount)
		gt.Equal(t, model.CopilotNormal, overview.Copilot.Status)
		gt.V(t, overview.OrgInfo).NotNil()
		gt.Equal(t, "", overview.OrgInfoError)
	})

	t.Run("org info failure is reported inline", func(t *testing.T) {
		gh := memberMock()
		gh.GetOrganizationFunc = func(ctx context.Context, org types.OrgName) (*model.Organization, error) {
			return nil, &github.APIError{StatusCode: 403, Message: "Resource not accessible"}
		}
		gh.GetCopilotBillingFunc = func(ctx context.Context, org types.OrgName) (*model.CopilotBilling, error) {
			return nil, &github.APIError{StatusCode: 403, Message: "Must be an org owner"}
		}

		overview, err := uc.Overview(ctx, gh, "acme")
		gt.NoError(t, err).Required()
		gt.True(t, overview.OrgInfo == nil)
		gt.Equal(t, "Resource not accessible", overview.OrgInfoError)
		gt.Equal(t, "Must be an org owner", overview.Copilot.Error)
	})

	t.Run("invitation failure fails the overview", func(t *testing.T) {
		gh := memberMock()
		gh.ListInvitationsFunc = func(ctx context.Context, org types.OrgName) ([]model.Invitation, error) {
			return nil, &github.APIError{StatusCode: 500, Message: "Server Error"}
		}
		_, err := uc.Overview(ctx, gh, "acme")
		gt.Error(t, err)
	})
}
