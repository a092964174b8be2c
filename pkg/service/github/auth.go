package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
)

// authenticator provides Authorization header values for API requests
type authenticator interface {
	AuthorizationHeader(ctx context.Context) (string, error)
}

// tokenRotationMargin is how long before expiry an installation token is replaced
const tokenRotationMargin = 5 * time.Minute

type tokenAuth struct {
	header string
}

func newTokenAuth(token string) *tokenAuth {
	return &tokenAuth{header: "Bearer " + token}
}

func (a *tokenAuth) AuthorizationHeader(_ context.Context) (string, error) {
	return a.header, nil
}

// appAuth authenticates as a GitHub App installation. It signs a short
// lived RS256 JWT with the App private key and exchanges it for an
// installation token, which is cached until shortly before it expires.
type appAuth struct {
	appID          int64
	installationID int64
	key            jwk.Key
	httpClient     *http.Client
	baseURL        string
	now            func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func newAppAuth(appID, installationID int64, privateKeyPEM []byte, httpClient *http.Client, baseURL string) (*appAuth, error) {
	key, err := jwk.ParseKey(privateKeyPEM, jwk.WithPEM(true))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse GitHub App private key")
	}
	if key.KeyType() != jwa.RSA {
		return nil, goerr.New("GitHub App private key must be RSA", goerr.V("keyType", key.KeyType()))
	}

	return &appAuth{
		appID:          appID,
		installationID: installationID,
		key:            key,
		httpClient:     httpClient,
		baseURL:        baseURL,
		now:            time.Now,
	}, nil
}

func (a *appAuth) AuthorizationHeader(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && a.now().Before(a.expiresAt.Add(-tokenRotationMargin)) {
		return "Bearer " + a.token, nil
	}

	token, expiresAt, err := a.exchange(ctx)
	if err != nil {
		return "", err
	}

	a.token = token
	a.expiresAt = expiresAt
	return "Bearer " + token, nil
}

// signJWT creates the App JWT. iat is backdated 60 seconds for clock skew.
func (a *appAuth) signJWT() (string, error) {
	now := a.now()
	tok, err := jwt.NewBuilder().
		Issuer(strconv.FormatInt(a.appID, 10)).
		IssuedAt(now.Add(-60 * time.Second)).
		Expiration(now.Add(10 * time.Minute)).
		Build()
	if err != nil {
		return "", goerr.Wrap(err, "failed to build GitHub App JWT")
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.RS256, a.key))
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign GitHub App JWT")
	}
	return string(signed), nil
}

func (a *appAuth) exchange(ctx context.Context) (string, time.Time, error) {
	signed, err := a.signJWT()
	if err != nil {
		return "", time.Time{}, err
	}

	url := a.baseURL + "/app/installations/" + strconv.FormatInt(a.installationID, 10) + "/access_tokens"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", time.Time{}, goerr.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Authorization", "Bearer "+signed)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", time.Time{}, goerr.Wrap(err, "token exchange request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", time.Time{}, goerr.Wrap(err, "failed to read token exchange response")
	}
	if resp.StatusCode != http.StatusCreated {
		return "", time.Time{}, goerr.Wrap(parseAPIError(resp.StatusCode, body), "token exchange rejected",
			goerr.V("installationID", a.installationID))
	}

	var result struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", time.Time{}, goerr.Wrap(err, "failed to decode token exchange response")
	}
	if result.Token == "" {
		return "", time.Time{}, goerr.New("token exchange returned empty token")
	}

	return result.Token, result.ExpiresAt, nil
}
