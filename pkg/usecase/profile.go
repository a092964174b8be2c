package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
)

// Profile manages saved organization profiles
type Profile struct {
	repo interfaces.Repository
}

var _ interfaces.Profile = (*Profile)(nil)

// NewProfile creates a new Profile use case
func NewProfile(repo interfaces.Repository) *Profile {
	return &Profile{repo: repo}
}

// CreateProfile validates and stores a new profile
func (u *Profile) CreateProfile(ctx context.Context, name string, org types.OrgName, token types.Token) (*model.Profile, error) {
	profile, err := model.NewProfile(name, org, token)
	if err != nil {
		return nil, err
	}

	if err := u.repo.SaveProfile(ctx, profile); err != nil {
		return nil, goerr.Wrap(err, "failed to save profile")
	}

	ctxlog.From(ctx).Info("Profile created",
		"id", profile.ID,
		"name", profile.Name,
		"org", profile.Org,
		"token", profile.Token.Masked(),
	)
	return profile, nil
}

// GetProfile returns a single profile
func (u *Profile) GetProfile(ctx context.Context, id types.ProfileID) (*model.Profile, error) {
	if id == "" {
		return nil, model.MissingParameter("profile")
	}
	profile, err := u.repo.GetProfile(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get profile")
	}
	return profile, nil
}

// ListProfiles returns every saved profile
func (u *Profile) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	profiles, err := u.repo.ListProfiles(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list profiles")
	}
	return profiles, nil
}

// DeleteProfile removes a profile
func (u *Profile) DeleteProfile(ctx context.Context, id types.ProfileID) error {
	if id == "" {
		return model.MissingParameter("profile")
	}
	if err := u.repo.DeleteProfile(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete profile")
	}

	ctxlog.From(ctx).Info("Profile deleted", "id", id)
	return nil
}

// SeedProfiles stores every entry of a seed file. Entries whose name and
// org match an existing profile are skipped so that restarts do not
// create duplicates. It returns the number of profiles created.
func (u *Profile) SeedProfiles(ctx context.Context, cfg *model.ProfilesConfig) (int, error) {
	if cfg == nil || len(cfg.Profiles) == 0 {
		return 0, nil
	}
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	existing, err := u.repo.ListProfiles(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list profiles")
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.Name+"/"+p.Org.String()] = true
	}

	created := 0
	for _, seed := range cfg.Profiles {
		key := seed.Name + "/" + seed.Org
		if seen[key] {
			ctxlog.From(ctx).Debug("Profile already exists, skipping seed", "name", seed.Name, "org", seed.Org)
			continue
		}

		if _, err := u.CreateProfile(ctx, seed.Name, types.OrgName(seed.Org), types.Token(seed.Token)); err != nil {
			return created, goerr.Wrap(err, "failed to seed profile", goerr.V("name", seed.Name))
		}
		seen[key] = true
		created++
	}
	return created, nil
}
