package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
)

// Repository defines the interface for profile persistence
type Repository interface {
	SaveProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, id types.ProfileID) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]*model.Profile, error)
	DeleteProfile(ctx context.Context, id types.ProfileID) error

	// Close closes the repository connection
	Close() error
}
