package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/jira-client/internal/parsers"
	"github.com/fivetwenty-io/jira-client/internal/rest"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// UserClient implements jira.UserClient.
type UserClient struct {
	rest *rest.Client
}

// NewUserClient creates a new users client.
func NewUserClient(restClient *rest.Client) *UserClient {
	return &UserClient{rest: restClient}
}

// GetUser implements jira.UserClient.GetUser. Groups and application roles
// are expanded.
func (c *UserClient) GetUser(ctx context.Context, username string) *jira.Promise[*jira.User] {
	path := withQuery(apiPath("user"), url.Values{
		"username": {username},
		"expand":   {"groups,applicationRoles"},
	})

	return rest.GetAndParse(ctx, c.rest, path, parsers.UserDecoder)
}
