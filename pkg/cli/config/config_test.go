package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgdesk/pkg/cli/config"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
)

func TestGitHubRole(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		want    types.Role
		wantErr bool
	}{
		{name: "empty uses default", value: "", want: types.DefaultRole},
		{name: "admin", value: "admin", want: types.RoleAdmin},
		{name: "unknown", value: "owner", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.GitHub{DefaultRole: tc.value}
			role, err := cfg.Role()
			if tc.wantErr {
				gt.Error(t, err)
				gt.True(t, goerr.HasTag(err, model.ErrTagInvalidParameter))
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, tc.want, role)
		})
	}
}

func TestGitHubConfigure(t *testing.T) {
	t.Run("token default", func(t *testing.T) {
		cfg := config.GitHub{Token: "ghp_x", DefaultRole: "direct_member"}
		factory, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.True(t, factory.HasDefault())
	})

	t.Run("no default credential", func(t *testing.T) {
		cfg := config.GitHub{}
		factory, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.False(t, factory.HasDefault())
	})

	t.Run("token and app are exclusive", func(t *testing.T) {
		cfg := config.GitHub{Token: "ghp_x", AppID: 1, PrivateKeyFile: "key.pem", InstallationID: 2}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("app requires installation", func(t *testing.T) {
		cfg := config.GitHub{AppID: 1}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("missing key file", func(t *testing.T) {
		cfg := config.GitHub{AppID: 1, InstallationID: 2, PrivateKeyFile: filepath.Join(t.TempDir(), "missing.pem")}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("invalid role", func(t *testing.T) {
		cfg := config.GitHub{Token: "ghp_x", DefaultRole: "owner"}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}

func TestLoadProfilesFromFile(t *testing.T) {
	dir := t.TempDir()

	write := func(t *testing.T, name, body string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		gt.NoError(t, os.WriteFile(path, []byte(body), 0o600)).Required()
		return path
	}

	t.Run("valid file", func(t *testing.T) {
		path := write(t, "valid.yaml", `profiles:
  - name: Acme
    org: acme
    token: ghp_acme
  - name: Widgets
    org: widgets
    token: ghp_widgets
`)
		cfg, err := config.LoadProfilesFromFile(path)
		gt.NoError(t, err).Required()
		gt.Equal(t, 2, len(cfg.Profiles))
		gt.Equal(t, "widgets", cfg.Profiles[1].Org)
	})

	t.Run("missing token", func(t *testing.T) {
		path := write(t, "invalid.yaml", `profiles:
  - name: Acme
    org: acme
`)
		_, err := config.LoadProfilesFromFile(path)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagMissingParameter))
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := write(t, "broken.yaml", "profiles: [")
		_, err := config.LoadProfilesFromFile(path)
		gt.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := config.LoadProfilesFromFile(filepath.Join(dir, "nope.yaml"))
		gt.Error(t, err)
	})

	t.Run("unset file is skipped", func(t *testing.T) {
		var p config.Profiles
		cfg, err := p.Configure()
		gt.NoError(t, err)
		gt.True(t, cfg == nil)
	})
}

func TestLoggerConfigure(t *testing.T) {
	l := config.Logger{Level: "debug", Format: "json"}
	logger, err := l.Configure()
	gt.NoError(t, err)
	gt.V(t, logger).NotNil()

	l = config.Logger{Level: "loud"}
	_, err = l.Configure()
	gt.Error(t, err)

	l = config.Logger{Level: "info", Format: "xml"}
	_, err = l.Configure()
	gt.Error(t, err)
}

func TestAuthConfigure(t *testing.T) {
	t.Run("unset secret disables callers", func(t *testing.T) {
		var a config.Auth
		verifier, err := a.Configure()
		gt.NoError(t, err)
		gt.True(t, verifier == nil)
	})

	t.Run("short secret is rejected", func(t *testing.T) {
		a := config.Auth{Secret: "too-short"}
		_, err := a.Configure()
		gt.Error(t, err)
	})

	t.Run("issued tokens verify", func(t *testing.T) {
		a := config.Auth{Secret: strings.Repeat("z", 40)}
		svc, err := a.Service()
		gt.NoError(t, err).Required()
		token, err := svc.Issue("ops", time.Hour)
		gt.NoError(t, err).Required()

		verifier, err := a.Configure()
		gt.NoError(t, err).Required()
		subject, err := verifier.Verify(token)
		gt.NoError(t, err)
		gt.Equal(t, "ops", subject)
	})
}
