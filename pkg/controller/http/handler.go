package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
	"github.com/secmon-lab/orgdesk/pkg/utils/apperr"
)

// TokenHeader carries the caller's GitHub token
const TokenHeader = "X-GitHub-Token"

// maxBodySize limits JSON request bodies
const maxBodySize = 1 << 20

// Handler serves the organization and invitation API
type Handler struct {
	cfg    *Config
	uc     *UseCases
	github interfaces.GitHubFactory
	now    func() time.Time
}

// NewHandler creates a new API handler
func NewHandler(cfg *Config, uc *UseCases, github interfaces.GitHubFactory) *Handler {
	return &Handler{cfg: cfg, uc: uc, github: github, now: time.Now}
}

// credentials is what a request supplies to pick an organization and token
type credentials struct {
	Token   string
	Org     string
	Profile string
}

func queryCredentials(r *http.Request) credentials {
	q := r.URL.Query()
	return credentials{
		Token:   q.Get("token"),
		Org:     q.Get("org"),
		Profile: q.Get("profile"),
	}
}

// target is a resolved organization and a client authorized for it
type target struct {
	client interfaces.GitHub
	org    types.OrgName
}

func errTokenAndOrg() error {
	return goerr.New("token and org are required", goerr.T(model.ErrTagMissingParameter))
}

// resolve picks the token and organization for a request. Token order:
// header, request field, profile, server default. Org order: request
// field, profile, server default. Profiles and the server default are
// credentials held by the server and need an authenticated caller.
func (h *Handler) resolve(r *http.Request, cred credentials) (*target, error) {
	ctx := r.Context()
	authenticated := CallerFrom(ctx) != ""

	token := types.Token(r.Header.Get(TokenHeader))
	if token == "" {
		token = types.Token(cred.Token)
	}
	org := types.OrgName(cred.Org)

	if cred.Profile != "" {
		if !authenticated {
			return nil, errAuthRequired()
		}
		profile, err := h.uc.profile.GetProfile(ctx, types.ProfileID(cred.Profile))
		if err != nil {
			return nil, err
		}
		if token == "" {
			token = profile.Token
		}
		if org == "" {
			org = profile.Org
		}
	}

	if org == "" {
		org = h.cfg.DefaultOrg
	}
	if org == "" || (token == "" && !h.github.HasDefault()) {
		return nil, errTokenAndOrg()
	}
	if token == "" && !authenticated {
		return nil, errAuthRequired()
	}

	client, err := h.github.New(token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub client")
	}
	ctxlog.From(ctx).Debug("GitHub credential resolved",
		"org", org,
		"profile", cred.Profile,
		"server_default", token == "",
	)
	return &target{client: client, org: org}, nil
}

// HandleMembers handles GET /api/members
func (h *Handler) HandleMembers(w http.ResponseWriter, r *http.Request) {
	t, err := h.resolve(r, queryCredentials(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.uc.org.ListMembers(r.Context(), t.client, t.org)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// HandleInvitations handles GET /api/invitations
func (h *Handler) HandleInvitations(w http.ResponseWriter, r *http.Request) {
	t, err := h.resolve(r, queryCredentials(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.uc.org.ListInvitations(r.Context(), t.client, t.org)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// HandleFailedInvitations handles GET /api/invitations/failed
func (h *Handler) HandleFailedInvitations(w http.ResponseWriter, r *http.Request) {
	t, err := h.resolve(r, queryCredentials(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.uc.org.ListFailedInvitations(r.Context(), t.client, t.org)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// HandleCopilot handles GET /api/copilot
func (h *Handler) HandleCopilot(w http.ResponseWriter, r *http.Request) {
	t, err := h.resolve(r, queryCredentials(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.uc.org.CopilotStatus(r.Context(), t.client, t.org)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// HandleOrgInfo handles GET /api/org-info
func (h *Handler) HandleOrgInfo(w http.ResponseWriter, r *http.Request) {
	t, err := h.resolve(r, queryCredentials(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.uc.org.OrgInfo(r.Context(), t.client, t.org, h.now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// HandleOverview handles GET /api/overview
func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	t, err := h.resolve(r, queryCredentials(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.uc.org.Overview(r.Context(), t.client, t.org)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

type inviteRequest struct {
	Token       string     `json:"token"`
	Org         string     `json:"org"`
	Profile     string     `json:"profile"`
	Identifiers []string   `json:"identifiers"`
	Role        types.Role `json:"role"`
}

// HandleInvite handles POST /api/invite
func (h *Handler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	t, err := h.resolve(r, credentials{Token: req.Token, Org: req.Org, Profile: req.Profile})
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.uc.invite.InviteBatch(r.Context(), t.client, model.InviteRequest{
		Org:         t.org,
		Identifiers: req.Identifiers,
		Role:        req.Role,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, report)
}

type createProfileRequest struct {
	Name  string `json:"name"`
	Org   string `json:"org"`
	Token string `json:"token"`
}

// HandleListProfiles handles GET /api/profiles
func (h *Handler) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.uc.profile.ListProfiles(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if profiles == nil {
		profiles = []*model.Profile{}
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"count":    len(profiles),
		"profiles": profiles,
	})
}

// HandleCreateProfile handles POST /api/profiles
func (h *Handler) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.uc.profile.CreateProfile(r.Context(), req.Name, types.OrgName(req.Org), types.Token(req.Token))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, profile)
}

// HandleGetProfile handles GET /api/profiles/{id}
func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.uc.profile.GetProfile(r.Context(), types.ProfileID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, profile)
}

// HandleDeleteProfile handles DELETE /api/profiles/{id}
func (h *Handler) HandleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.profile.DeleteProfile(r.Context(), types.ProfileID(chi.URLParam(r, "id"))); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		return goerr.Wrap(err, "invalid JSON body", goerr.T(model.ErrTagInvalidParameter))
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// statusOf maps an error to its HTTP status code
func statusOf(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagMissingParameter),
		goerr.HasTag(err, model.ErrTagInvalidParameter):
		return http.StatusBadRequest
	case goerr.HasTag(err, model.ErrTagUnauthorized):
		return http.StatusUnauthorized
	case goerr.HasTag(err, model.ErrTagProfileNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)
	writeJSON(w, r, statusOf(err), map[string]string{
		"error": err.Error(),
	})
}
