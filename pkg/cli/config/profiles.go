package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Profiles holds the optional profile seed file location
type Profiles struct {
	File string
}

// Flags returns CLI flags for profile seeding
func (p *Profiles) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "profiles",
			Usage:       "YAML file of organization profiles to seed at startup",
			Category:    "Profiles",
			Sources:     cli.EnvVars("ORGDESK_PROFILES"),
			Destination: &p.File,
		},
	}
}

// Configure loads the seed file. It returns nil when no file is set.
func (p *Profiles) Configure() (*model.ProfilesConfig, error) {
	if p.File == "" {
		return nil, nil
	}
	return LoadProfilesFromFile(p.File)
}

// LogValue returns structured log value
func (p Profiles) LogValue() slog.Value {
	return slog.GroupValue(slog.String("file", p.File))
}

// LoadProfilesFromFile loads profile seeds from a YAML file
func LoadProfilesFromFile(path string) (*model.ProfilesConfig, error) {
	if path == "" {
		return nil, goerr.New("profiles file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "profiles file not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read profiles file", goerr.V("path", path))
	}

	var cfg model.ProfilesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse profiles file", goerr.V("path", path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid profiles file", goerr.V("path", path))
	}

	return &cfg, nil
}
