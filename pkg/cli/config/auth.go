package config

import (
	"log/slog"

	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/orgdesk/pkg/service/apitoken"
	"github.com/urfave/cli/v3"
)

// Auth holds the secret used to sign and verify API tokens
type Auth struct {
	Secret string
}

// Flags returns CLI flags for API authentication
func (a *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-secret",
			Usage:       "Secret for signing API tokens (at least 32 bytes). Required to use saved profiles or the default GitHub credential over HTTP",
			Category:    "Auth",
			Sources:     cli.EnvVars("ORGDESK_API_SECRET"),
			Destination: &a.Secret,
		},
	}
}

// IsConfigured checks if a secret is set
func (a *Auth) IsConfigured() bool {
	return a.Secret != ""
}

// Service builds the token service from the secret
func (a *Auth) Service() (*apitoken.Service, error) {
	return apitoken.New([]byte(a.Secret))
}

// Configure returns the caller verifier, or nil when no secret is set
func (a *Auth) Configure() (interfaces.CallerVerifier, error) {
	if !a.IsConfigured() {
		return nil, nil
	}
	svc, err := a.Service()
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// LogValue returns structured log value
func (a Auth) LogValue() slog.Value {
	return slog.GroupValue(slog.Bool("has_secret", a.Secret != ""))
}
