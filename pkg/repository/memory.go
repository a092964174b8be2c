package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu       sync.RWMutex
	profiles map[types.ProfileID]*model.Profile
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		profiles: make(map[types.ProfileID]*model.Profile),
	}
}

// SaveProfile creates or replaces a profile
func (m *Memory) SaveProfile(ctx context.Context, profile *model.Profile) error {
	if profile == nil {
		return goerr.New("profile is nil")
	}
	if profile.ID == "" {
		return goerr.New("profile ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p := *profile
	m.profiles[profile.ID] = &p
	return nil
}

// GetProfile retrieves a profile by ID
func (m *Memory) GetProfile(ctx context.Context, id types.ProfileID) (*model.Profile, error) {
	if id == "" {
		return nil, goerr.New("profile ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[id]
	if !ok {
		return nil, profileNotFound(id)
	}

	// Return a copy to prevent external modification
	profileCopy := *p
	return &profileCopy, nil
}

// ListProfiles returns all profiles, oldest first
func (m *Memory) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profiles := make([]*model.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		profileCopy := *p
		profiles = append(profiles, &profileCopy)
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].CreatedAt.Equal(profiles[j].CreatedAt) {
			return profiles[i].ID < profiles[j].ID
		}
		return profiles[i].CreatedAt.Before(profiles[j].CreatedAt)
	})
	return profiles, nil
}

// DeleteProfile removes a profile
func (m *Memory) DeleteProfile(ctx context.Context, id types.ProfileID) error {
	if id == "" {
		return goerr.New("profile ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[id]; !ok {
		return profileNotFound(id)
	}
	delete(m.profiles, id)
	return nil
}

// Close does nothing for memory repository
func (m *Memory) Close() error {
	return nil
}

func profileNotFound(id types.ProfileID) error {
	return goerr.New("profile not found",
		goerr.T(model.ErrTagProfileNotFound),
		goerr.V("id", id))
}
