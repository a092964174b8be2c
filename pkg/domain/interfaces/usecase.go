package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
)

// Invite reconciles a batch of identifiers into organization invitations
type Invite interface {
	InviteBatch(ctx context.Context, client GitHub, req model.InviteRequest) (*model.InviteReport, error)
}

// Organization aggregates read-only organization state
type Organization interface {
	ListMembers(ctx context.Context, client GitHub, org types.OrgName) (*model.MemberList, error)
	ListInvitations(ctx context.Context, client GitHub, org types.OrgName) (*model.InvitationList, error)
	ListFailedInvitations(ctx context.Context, client GitHub, org types.OrgName) (*model.InvitationList, error)
	CopilotStatus(ctx context.Context, client GitHub, org types.OrgName) (*model.CopilotStatus, error)
	OrgInfo(ctx context.Context, client GitHub, org types.OrgName, now time.Time) (*model.OrgInfo, error)
	Overview(ctx context.Context, client GitHub, org types.OrgName) (*model.Overview, error)
}

// Profile manages saved organization profiles
type Profile interface {
	CreateProfile(ctx context.Context, name string, org types.OrgName, token types.Token) (*model.Profile, error)
	GetProfile(ctx context.Context, id types.ProfileID) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]*model.Profile, error)
	DeleteProfile(ctx context.Context, id types.ProfileID) error
	SeedProfiles(ctx context.Context, cfg *model.ProfilesConfig) (int, error)
}
