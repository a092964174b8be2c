package github

import (
	"net/http"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
)

// Factory creates clients for caller-supplied tokens. Requests that do
// not carry a token fall back to the default client, which may be
// authenticated as a GitHub App installation.
type Factory struct {
	baseURL    string
	httpClient *http.Client

	defaults Config
	initOnce sync.Once
	fallback *Client
	initErr  error
}

var _ interfaces.GitHubFactory = (*Factory)(nil)

// NewFactory creates a factory. defaults configures the fallback client;
// it may be empty, in which case calls without a token fail.
func NewFactory(defaults Config) *Factory {
	return &Factory{
		baseURL:    defaults.BaseURL,
		httpClient: defaults.HTTPClient,
		defaults:   defaults,
	}
}

// New returns a client authenticated with token, or the default client
// when token is empty
func (f *Factory) New(token types.Token) (interfaces.GitHub, error) {
	if token != "" {
		return NewClient(Config{
			BaseURL:    f.baseURL,
			Token:      token.String(),
			HTTPClient: f.httpClient,
		})
	}

	client, err := f.defaultClient()
	if err != nil {
		return nil, err
	}
	return client, nil
}

// HasDefault reports whether a fallback credential is configured
func (f *Factory) HasDefault() bool {
	d := f.defaults
	return d.Token != "" || d.AppID != 0
}

// defaultClient lazily builds the fallback client so that App
// installation tokens are cached across requests
func (f *Factory) defaultClient() (*Client, error) {
	if !f.HasDefault() {
		return nil, goerr.New("no GitHub token provided and no default credential configured")
	}

	f.initOnce.Do(func() {
		f.fallback, f.initErr = NewClient(f.defaults)
	})
	return f.fallback, f.initErr
}
