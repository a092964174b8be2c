package model

import (
	"encoding/json"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
)

// Profile is a saved organization configuration: a display name, the
// organization login and the token used to access it
type Profile struct {
	ID        types.ProfileID `firestore:"id"`
	Name      string          `firestore:"name"`
	Org       types.OrgName   `firestore:"org"`
	Token     types.Token     `firestore:"token"`
	CreatedAt time.Time       `firestore:"created_at"`
}

// NewProfile creates a Profile with a fresh ID after validating its fields
func NewProfile(name string, org types.OrgName, token types.Token) (*Profile, error) {
	p := &Profile{Name: name, Org: org, Token: token}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	id, err := types.NewProfileID()
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.CreatedAt = time.Now()
	return p, nil
}

// Validate checks that all required fields are present
func (p *Profile) Validate() error {
	switch {
	case p.Name == "":
		return MissingParameter("name")
	case p.Org == "":
		return MissingParameter("org")
	case p.Token == "":
		return MissingParameter("token")
	}
	return nil
}

// MarshalJSON hides the token, exposing only a masked hint
func (p Profile) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        types.ProfileID `json:"id"`
		Name      string          `json:"name"`
		Org       types.OrgName   `json:"org"`
		TokenHint string          `json:"token_hint"`
		CreatedAt time.Time       `json:"created_at"`
	}{
		ID:        p.ID,
		Name:      p.Name,
		Org:       p.Org,
		TokenHint: p.Token.Masked(),
		CreatedAt: p.CreatedAt,
	})
}

// ProfilesConfig is the YAML seed file layout
type ProfilesConfig struct {
	Profiles []ProfileSeed `yaml:"profiles"`
}

// ProfileSeed is a single profile entry in the seed file
type ProfileSeed struct {
	Name  string `yaml:"name"`
	Org   string `yaml:"org"`
	Token string `yaml:"token"`
}

// Validate checks every seed entry
func (c *ProfilesConfig) Validate() error {
	for i, s := range c.Profiles {
		p := Profile{Name: s.Name, Org: types.OrgName(s.Org), Token: types.Token(s.Token)}
		if err := p.Validate(); err != nil {
			return goerr.Wrap(err, "invalid profile entry", goerr.V("index", i))
		}
	}
	return nil
}
