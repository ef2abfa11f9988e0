// Package jiraclient provides the main entry point for creating JIRA REST clients
package jiraclient

import (
	"fmt"
	"strings"

	"golang.org/x/oauth2"

	"github.com/fivetwenty-io/jira-client/internal/client"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// New creates a new JIRA client. The config is copied; the caller's value is
// not modified.
func New(config *jira.Config) (jira.Client, error) {
	if config == nil {
		return nil, jira.ErrConfigRequired
	}

	if strings.TrimSpace(config.ServerURI) == "" {
		return nil, jira.ErrServerURIRequired
	}

	normalized := *config
	normalized.ServerURI = NormalizeServerURI(config.ServerURI)

	jiraClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return jiraClient, nil
}

// NormalizeServerURI trims surrounding space and trailing slashes and
// defaults the scheme to https.
func NormalizeServerURI(serverURI string) string {
	normalized := strings.TrimRight(strings.TrimSpace(serverURI), "/")
	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}

	return normalized
}

// NewAnonymous creates a new client that sends no credentials.
func NewAnonymous(serverURI string) (jira.Client, error) {
	return New(&jira.Config{
		ServerURI: serverURI,
	})
}

// NewWithToken creates a new client authenticating with a personal access token.
func NewWithToken(serverURI, token string) (jira.Client, error) {
	return New(&jira.Config{
		ServerURI:   serverURI,
		AccessToken: token,
	})
}

// NewWithBasicAuth creates a new client using username/password authentication.
func NewWithBasicAuth(serverURI, username, password string) (jira.Client, error) {
	return New(&jira.Config{
		ServerURI: serverURI,
		Username:  username,
		Password:  password,
	})
}

// NewWithTokenSource creates a new client authenticating with OAuth2 tokens
// from source.
func NewWithTokenSource(serverURI string, source oauth2.TokenSource) (jira.Client, error) {
	return New(&jira.Config{
		ServerURI:   serverURI,
		TokenSource: source,
	})
}
