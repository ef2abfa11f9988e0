// Package auth provides the request authenticators the transport applies to
// every outgoing request.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// Static errors for err113 compliance.
var (
	ErrNoTokenSource   = errors.New("token source is required")
	ErrEmptyToken      = errors.New("token source returned an empty access token")
	ErrMissingUsername = errors.New("username is required for basic authentication")
)

// Authenticator decorates a request with credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, req *http.Request) error
	// Scheme names the authentication scheme for logging.
	Scheme() string
}

// Anonymous sends requests without credentials.
type Anonymous struct{}

// Authenticate implements Authenticator.
func (Anonymous) Authenticate(context.Context, *http.Request) error {
	return nil
}

// Scheme implements Authenticator.
func (Anonymous) Scheme() string {
	return "anonymous"
}

// Basic uses HTTP basic authentication.
type Basic struct {
	username string
	password string
}

// NewBasic creates a basic authenticator.
func NewBasic(username, password string) (*Basic, error) {
	if username == "" {
		return nil, ErrMissingUsername
	}

	return &Basic{username: username, password: password}, nil
}

// Authenticate implements Authenticator.
func (b *Basic) Authenticate(_ context.Context, req *http.Request) error {
	req.SetBasicAuth(b.username, b.password)

	return nil
}

// Scheme implements Authenticator.
func (b *Basic) Scheme() string {
	return "basic"
}

// TokenSource authenticates with Bearer tokens taken from an oauth2.TokenSource.
// Tokens are cached until they expire.
type TokenSource struct {
	source oauth2.TokenSource
	scheme string
}

// NewTokenSource wraps an OAuth2 token source.
func NewTokenSource(source oauth2.TokenSource) (*TokenSource, error) {
	if source == nil {
		return nil, ErrNoTokenSource
	}

	return &TokenSource{source: oauth2.ReuseTokenSource(nil, source), scheme: "oauth2"}, nil
}

// NewStaticToken authenticates with a fixed access token, e.g. a personal
// access token.
func NewStaticToken(token string) (*TokenSource, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	return &TokenSource{
		source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		scheme: "bearer",
	}, nil
}

// Authenticate implements Authenticator.
func (t *TokenSource) Authenticate(_ context.Context, req *http.Request) error {
	token, err := t.source.Token()
	if err != nil {
		return fmt.Errorf("failed to get authentication token: %w", err)
	}

	if token.AccessToken == "" {
		return ErrEmptyToken
	}

	token.SetAuthHeader(req)

	return nil
}

// Scheme implements Authenticator.
func (t *TokenSource) Scheme() string {
	return t.scheme
}

// Credentials selects one authenticator. Precedence: token source, access
// token, username and password, anonymous.
type Credentials struct {
	TokenSource oauth2.TokenSource
	AccessToken string
	Username    string
	Password    string
}

// New picks the authenticator matching creds.
func New(creds Credentials) (Authenticator, error) {
	switch {
	case creds.TokenSource != nil:
		return NewTokenSource(creds.TokenSource)
	case creds.AccessToken != "":
		return NewStaticToken(creds.AccessToken)
	case creds.Username != "":
		return NewBasic(creds.Username, creds.Password)
	default:
		return Anonymous{}, nil
	}
}
