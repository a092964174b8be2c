package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
)

type callerKey struct{}

// withCaller marks ctx as belonging to an authenticated caller
func withCaller(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, callerKey{}, subject)
}

// CallerFrom returns the authenticated caller's subject, empty when the
// request carried no valid API token
func CallerFrom(ctx context.Context) string {
	subject, _ := ctx.Value(callerKey{}).(string)
	return subject
}

// Authenticator checks API bearer tokens. A nil verifier accepts no
// token, so server-held credentials are unreachable.
type Authenticator struct {
	verifier interfaces.CallerVerifier
}

// NewAuthenticator creates an authenticator; verifier may be nil
func NewAuthenticator(verifier interfaces.CallerVerifier) *Authenticator {
	return &Authenticator{verifier: verifier}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", false
	}
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", true
	}
	return strings.TrimSpace(token), true
}

// Authenticate identifies the caller from the Authorization header.
// Requests without the header pass through unauthenticated; a header
// that does not verify is rejected with 401.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, present := bearerToken(r)
		if !present {
			next.ServeHTTP(w, r)
			return
		}

		if a.verifier == nil || token == "" {
			writeError(w, r, model.Unauthorized("API tokens are not accepted by this server"))
			return
		}

		subject, err := a.verifier.Verify(token)
		if err != nil {
			ctxlog.From(r.Context()).Debug("API token rejected", "error", err)
			writeError(w, r, model.Unauthorized("invalid API token"))
			return
		}

		ctx := withCaller(r.Context(), subject)
		ctx = ctxlog.With(ctx, ctxlog.From(ctx).With("caller", subject))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests without an authenticated caller
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CallerFrom(r.Context()) == "" {
			writeError(w, r, model.Unauthorized("authentication required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func errAuthRequired() error {
	return model.Unauthorized("authentication required to use stored credentials")
}
