// Package apitoken issues and verifies the bearer tokens that let a caller
// use credentials held by the server: saved profiles and the default
// GitHub credential. Tokens are HS256 JWTs signed with a shared secret.
package apitoken

import (
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/interfaces"
)

const (
	// Issuer is the iss claim of every orgdesk API token
	Issuer = "orgdesk"

	// MinSecretLength is the shortest accepted signing secret in bytes
	MinSecretLength = 32

	clockSkew = 30 * time.Second
)

// Service signs and verifies API tokens
type Service struct {
	secret []byte
	now    func() time.Time
}

var _ interfaces.CallerVerifier = (*Service)(nil)

// Option configures a Service
type Option func(*Service)

// WithClock replaces the time source
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a Service. The secret must be at least MinSecretLength bytes.
func New(secret []byte, opts ...Option) (*Service, error) {
	if len(secret) < MinSecretLength {
		return nil, goerr.New("API token secret is too short",
			goerr.V("length", len(secret)),
			goerr.V("min", MinSecretLength))
	}

	s := &Service{secret: secret, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue creates a token for subject valid for ttl
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", goerr.New("token subject is required")
	}
	if ttl <= 0 {
		return "", goerr.New("token lifetime must be positive", goerr.V("ttl", ttl))
	}

	now := s.now()
	tok, err := jwt.NewBuilder().
		Issuer(Issuer).
		Subject(subject).
		IssuedAt(now).
		Expiration(now.Add(ttl)).
		Build()
	if err != nil {
		return "", goerr.Wrap(err, "failed to build API token")
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, s.secret))
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign API token")
	}
	return string(signed), nil
}

// Verify checks signature, issuer and lifetime and returns the subject
func (s *Service) Verify(token string) (string, error) {
	tok, err := jwt.Parse([]byte(token),
		jwt.WithKey(jwa.HS256, s.secret),
		jwt.WithValidate(true),
		jwt.WithIssuer(Issuer),
		jwt.WithClock(jwt.ClockFunc(s.now)),
		jwt.WithAcceptableSkew(clockSkew),
	)
	if err != nil {
		return "", goerr.Wrap(err, "invalid API token")
	}
	if tok.Subject() == "" {
		return "", goerr.New("API token has no subject")
	}
	return tok.Subject(), nil
}
