package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const profilesCollection = "profiles"

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permission. An empty
	// collection also surfaces as an error here and is fine.
	_, err = client.Collection(profilesCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// SaveProfile creates or replaces a profile document
func (f *Firestore) SaveProfile(ctx context.Context, profile *model.Profile) error {
	if profile == nil {
		return goerr.New("profile is nil")
	}
	if profile.ID == "" {
		return goerr.New("profile ID is empty")
	}

	_, err := f.client.Collection(profilesCollection).Doc(profile.ID.String()).Set(ctx, profile)
	if err != nil {
		return goerr.Wrap(err, "failed to save profile to firestore", goerr.V("id", profile.ID))
	}
	return nil
}

// GetProfile retrieves a profile by ID
func (f *Firestore) GetProfile(ctx context.Context, id types.ProfileID) (*model.Profile, error) {
	if id == "" {
		return nil, goerr.New("profile ID is empty")
	}

	doc, err := f.client.Collection(profilesCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, profileNotFound(id)
		}
		return nil, goerr.Wrap(err, "failed to get profile from firestore", goerr.V("id", id))
	}

	var profile model.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, goerr.Wrap(err, "failed to decode profile", goerr.V("id", id))
	}
	return &profile, nil
}

// ListProfiles returns all profiles, oldest first
func (f *Firestore) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	iter := f.client.Collection(profilesCollection).OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var profiles []*model.Profile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate profiles")
		}

		var profile model.Profile
		if err := doc.DataTo(&profile); err != nil {
			return nil, goerr.Wrap(err, "failed to decode profile", goerr.V("docID", doc.Ref.ID))
		}
		profiles = append(profiles, &profile)
	}
	return profiles, nil
}

// DeleteProfile removes a profile document
func (f *Firestore) DeleteProfile(ctx context.Context, id types.ProfileID) error {
	if id == "" {
		return goerr.New("profile ID is empty")
	}

	// Delete on a missing document succeeds, so check first
	doc := f.client.Collection(profilesCollection).Doc(id.String())
	if _, err := doc.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return profileNotFound(id)
		}
		return goerr.Wrap(err, "failed to check profile existence", goerr.V("id", id))
	}

	if _, err := doc.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete profile from firestore", goerr.V("id", id))
	}
	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.Repository = (*Firestore)(nil) // Compile-time interface check
