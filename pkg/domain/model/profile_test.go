package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
)

func TestNewProfile(t *testing.T) {
	t.Run("valid profile", func(t *testing.T) {
		p, err := model.NewProfile("My Company", "my-company", "ghp_secret1234")
		gt.NoError(t, err).Required()
		gt.NotEqual(t, "", p.ID.String())
		gt.False(t, p.CreatedAt.IsZero())
	})

	t.Run("missing org", func(t *testing.T) {
		_, err := model.NewProfile("My Company", "", "ghp_secret1234")
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagMissingParameter)).True()
		gt.S(t, err.Error()).Contains("org")
	})
}

func TestProfileMarshalJSONHidesToken(t *testing.T) {
	p, err := model.NewProfile("My Company", "my-company", "ghp_secret1234")
	gt.NoError(t, err).Required()

	data, err := json.Marshal(p)
	gt.NoError(t, err).Required()

	gt.False(t, strings.Contains(string(data), "ghp_secret1234"))
	gt.S(t, string(data)).Contains(`"token_hint":"****1234"`)
	gt.S(t, string(data)).Contains(`"org":"my-company"`)
}

func TestProfilesConfigValidate(t *testing.T) {
	cfg := &model.ProfilesConfig{
		Profiles: []model.ProfileSeed{
			{Name: "a", Org: "org-a", Token: "t1"},
			{Name: "b", Org: "org-b"},
		},
	}
	err := cfg.Validate()
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, model.ErrTagMissingParameter)).True()
}
