package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/orgdesk/pkg/repository"
	"github.com/urfave/cli/v3"
)

const defaultDatabase = "(default)"

// Firestore selects where profiles are stored. Without a project the
// profiles live in memory.
type Firestore struct {
	ProjectID  string
	DatabaseID string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore",
			Category:    "Firestore",
			Sources:     cli.EnvVars("ORGDESK_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Value:       defaultDatabase,
			Sources:     cli.EnvVars("ORGDESK_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
	}
}

// Configure creates the profile repository. Without a project the
// profiles are held in memory for the life of the process.
func (f *Firestore) Configure(ctx context.Context) (interfaces.Repository, error) {
	if !f.IsConfigured() {
		ctxlog.From(ctx).Warn("Firestore not configured, profiles are kept in memory and lost on shutdown")
		return repository.NewMemory(), nil
	}

	database := f.DatabaseID
	if database == "" {
		database = defaultDatabase
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, database)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to connect profile store",
			goerr.V("project", f.ProjectID),
			goerr.V("database", database),
		)
	}

	ctxlog.From(ctx).Info("Profiles stored in Firestore", "firestore", f)
	return repo, nil
}

// IsConfigured checks if Firestore is properly configured
func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	if !f.IsConfigured() {
		return slog.GroupValue(slog.String("store", "memory"))
	}
	return slog.GroupValue(
		slog.String("store", "firestore"),
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
	)
}
