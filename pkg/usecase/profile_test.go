package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
	"github.com/secmon-lab/orgdesk/pkg/repository"
	"github.com/secmon-lab/orgdesk/pkg/usecase"
)

func TestProfileCRUD(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProfile(repository.NewMemory())

	created, err := uc.CreateProfile(ctx, "production", "acme", "ghp_abcdefgh1234")
	gt.NoError(t, err).Required()
	gt.NotEqual(t, "", created.ID.String())

	got, err := uc.GetProfile(ctx, created.ID)
	gt.NoError(t, err).Required()
	gt.Equal(t, created.Name, got.Name)

	list, err := uc.ListProfiles(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, 1, len(list))

	gt.NoError(t, uc.DeleteProfile(ctx, created.ID))

	_, err = uc.GetProfile(ctx, created.ID)
	gt.True(t, goerr.HasTag(err, model.ErrTagProfileNotFound))
}

func TestCreateProfileValidation(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.RepositoryMock{}
	uc := usecase.NewProfile(repo)

	tests := []struct {
		name      string
		profile   [3]string
		wantField string
	}{
		{"missing name", [3]string{"", "acme", "tok"}, "name"},
		{"missing org", [3]string{"prod", "", "tok"}, "org"},
		{"missing token", [3]string{"prod", "acme", ""}, "token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateProfile(ctx, tt.profile[0], types.OrgName(tt.profile[1]), types.Token(tt.profile[2]))
			gt.Error(t, err)
			gt.True(t, goerr.HasTag(err, model.ErrTagMissingParameter))
			gt.V(t, goerr.Values(err)["field"]).Equal(any(tt.wantField))
		})
	}
	gt.Equal(t, 0, len(repo.SaveProfileCalls()))
}

func TestSeedProfiles(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProfile(repository.NewMemory())

	cfg := &model.ProfilesConfig{Profiles: []model.ProfileSeed{
		{Name: "prod", Org: "acme", Token: "ghp_prod"},
		{Name: "staging", Org: "acme-staging", Token: "ghp_stg"},
	}}

	n, err := uc.SeedProfiles(ctx, cfg)
	gt.NoError(t, err).Required()
	gt.Equal(t, 2, n)

	// Seeding again is a no-op
	n, err = uc.SeedProfiles(ctx, cfg)
	gt.NoError(t, err).Required()
	gt.Equal(t, 0, n)

	list, err := uc.ListProfiles(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, 2, len(list))

	t.Run("invalid entry stores nothing", func(t *testing.T) {
		fresh := usecase.NewProfile(repository.NewMemory())
		_, err := fresh.SeedProfiles(ctx, &model.ProfilesConfig{Profiles: []model.ProfileSeed{
			{Name: "ok", Org: "acme", Token: "t"},
			{Name: "broken", Org: "acme"},
		}})
		gt.Error(t, err)

		list, err := fresh.ListProfiles(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, 0, len(list))
	})
}
