package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultBaseURL is the public GitHub API endpoint
	DefaultBaseURL = "https://api.github.com"

	apiVersion      = "2022-11-28"
	maxResponseSize = 10 * 1024 * 1024
	defaultPerPage  = 100
	defaultTimeout  = 30 * time.Second
)

// Config holds configuration for creating a Client. Exactly one
// authentication mode must be set: Token, or AppID + PrivateKey +
// InstallationID.
type Config struct {
	BaseURL        string
	Token          string
	AppID          int64
	PrivateKey     []byte
	InstallationID int64
	HTTPClient     *http.Client
}

// Client is a GitHub API client bound to a single credential
type Client struct {
	baseURL    string
	httpClient *http.Client
	auth       authenticator
	rateLimit  *rateLimitTracker
}

// NewClient creates a GitHub API client from the given configuration
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(baseURL, "https://") {
		return nil, goerr.New("GitHub API base URL must use HTTPS", goerr.V("baseURL", baseURL))
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	hasApp := cfg.AppID != 0 || len(cfg.PrivateKey) > 0 || cfg.InstallationID != 0
	hasToken := cfg.Token != ""

	var auth authenticator
	switch {
	case hasApp && hasToken:
		return nil, goerr.New("cannot configure both GitHub App auth and token auth")
	case hasToken:
		auth = newTokenAuth(cfg.Token)
	case hasApp:
		if cfg.AppID == 0 || len(cfg.PrivateKey) == 0 || cfg.InstallationID == 0 {
			return nil, goerr.New("GitHub App auth requires app ID, private key and installation ID",
				goerr.V("appID", cfg.AppID),
				goerr.V("installationID", cfg.InstallationID))
		}
		appAuth, err := newAppAuth(cfg.AppID, cfg.InstallationID, cfg.PrivateKey, httpClient, baseURL)
		if err != nil {
			return nil, err
		}
		auth = appAuth
	default:
		return nil, goerr.New("no GitHub authentication configured")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		auth:       auth,
		rateLimit:  &rateLimitTracker{},
	}, nil
}

// RateLimit returns the rate limit state observed on the most recent response
func (c *Client) RateLimit() RateLimit {
	return c.rateLimit.snapshot()
}

// doRaw sends an authenticated request. The caller closes the response body.
func (c *Client) doRaw(ctx context.Context, method, rawURL string, requestBody any) (*http.Response, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encode request body")
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bodyReader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", rawURL))
	}

	authHeader, err := c.auth.AuthorizationHeader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate to GitHub")
	}
	req.Header.Set("Authorization", authHeader)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	// GitHub answers conditional requests from its cache; always ask for fresh state
	req.Header.Set("If-None-Match", "")
	req.Header.Set("Cache-Control", "no-cache")
	if requestBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "GitHub request failed",
			goerr.V("method", method),
			goerr.V("url", rawURL))
	}

	c.rateLimit.update(resp.Header)
	if c.rateLimit.exhausted() {
		ctxlog.From(ctx).Warn("GitHub rate limit exhausted",
			"method", method,
			"url", rawURL,
			"reset", c.rateLimit.snapshot().Reset,
		)
	}

	return resp, nil
}

// do executes a request against a path relative to the base URL and
// returns the body and status code of a 2xx response
func (c *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, int, error) {
	resp, err := c.doRaw(ctx, method, c.baseURL+path, requestBody)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, resp.StatusCode, goerr.Wrap(err, "failed to read GitHub response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, parseAPIError(resp.StatusCode, body)
	}

	return body, resp.StatusCode, nil
}

// get decodes a single JSON object response into result
func (c *Client) get(ctx context.Context, path string, result any) error {
	body, _, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return goerr.Wrap(err, "failed to decode GitHub response", goerr.V("path", path))
	}
	return nil
}

// post sends a JSON body and decodes the response into result when non-nil
func (c *Client) post(ctx context.Context, path string, requestBody, result any) (int, error) {
	body, status, err := c.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return status, err
	}
	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return status, goerr.Wrap(err, "failed to decode GitHub response", goerr.V("path", path))
		}
	}
	return status, nil
}

// orgPath builds /orgs/{org}/{suffix...} with the org login escaped
func orgPath(org string, suffix ...string) string {
	path := "/orgs/" + url.PathEscape(org)
	for _, s := range suffix {
		path += "/" + s
	}
	return path
}

// withQuery appends query parameters, always including per_page
func withQuery(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	if query.Get("per_page") == "" {
		query.Set("per_page", strconv.Itoa(defaultPerPage))
	}
	return path + "?" + query.Encode()
}

// parseAPIError builds an *APIError from GitHub's JSON error body,
// falling back to the raw body as message
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wire struct {
		Message          string            `json:"message"`
		DocumentationURL string            `json:"documentation_url"`
		Errors           []ValidationError `json:"errors"`
	}
	if json.Unmarshal(body, &wire) == nil && wire.Message != "" {
		apiError.Message = wire.Message
		apiError.DocumentationURL = wire.DocumentationURL
		apiError.Errors = wire.Errors
	} else {
		apiError.Message = strings.TrimSpace(string(body))
	}

	return apiError
}
