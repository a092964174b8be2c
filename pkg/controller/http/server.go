package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/orgdesk/frontend"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
)

// Config holds HTTP server settings. Callers verifies API tokens; when
// nil, no caller can authenticate and server-held credentials are unusable.
type Config struct {
	Addr       string
	DefaultOrg types.OrgName
	Callers    interfaces.CallerVerifier
}

// NewConfig creates a server configuration
func NewConfig(addr string, defaultOrg types.OrgName, callers interfaces.CallerVerifier) *Config {
	return &Config{Addr: addr, DefaultOrg: defaultOrg, Callers: callers}
}

// UseCases bundles the use cases served over HTTP
type UseCases struct {
	invite  interfaces.Invite
	org     interfaces.Organization
	profile interfaces.Profile
}

// NewUseCases creates a UseCases bundle
func NewUseCases(invite interfaces.Invite, org interfaces.Organization, profile interfaces.Profile) *UseCases {
	return &UseCases{invite: invite, org: org, profile: profile}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router  chi.Router
	handler *Handler
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, cfg *Config, uc *UseCases, github interfaces.GitHubFactory) (*Server, error) {
	router := chi.NewRouter()
	h := NewHandler(cfg, uc, github)
	auth := NewAuthenticator(cfg.Callers)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Use(NoCacheMiddleware)
		r.Use(auth.Authenticate)

		r.Get("/members", h.HandleMembers)
		r.Get("/invitations", h.HandleInvitations)
		r.Get("/invitations/failed", h.HandleFailedInvitations)
		r.Get("/copilot", h.HandleCopilot)
		r.Get("/org-info", h.HandleOrgInfo)
		r.Get("/overview", h.HandleOverview)
		r.Post("/invite", h.HandleInvite)

		r.Route("/profiles", func(r chi.Router) {
			r.Use(RequireAuth)
			r.Get("/", h.HandleListProfiles)
			r.Post("/", h.HandleCreateProfile)
			r.Get("/{id}", h.HandleGetProfile)
			r.Delete("/{id}", h.HandleDeleteProfile)
		})
	})

	fs, err := frontend.GetHTTPFS()
	if err != nil {
		ctxlog.From(ctx).Warn("Embedded landing page unavailable, using fallback", "error", err)
		router.Get("/*", handleFallbackHome)
	} else {
		spa, err := NewSPAHandler(fs)
		if err != nil {
			return nil, err
		}
		router.Handle("/*", spa)
	}

	return &Server{
		Server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:  router,
		handler: h,
	}, nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "orgdesk",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// handleFallbackHome serves a minimal page when the embedded assets are missing
func handleFallbackHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>orgdesk</title></head>
<body style="font-family: sans-serif; margin: 3rem;">
  <h1>orgdesk</h1>
  <p>GitHub organization overview and bulk invitations.</p>
  <ul>
    <li><code>GET /api/overview?org=ORG</code></li>
    <li><code>POST /api/invite</code></li>
    <li><code>GET /api/profiles</code></li>
  </ul>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
	}
}
