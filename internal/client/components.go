package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/jira-client/internal/parsers"
	"github.com/fivetwenty-io/jira-client/internal/rest"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// ComponentClient implements jira.ComponentClient.
type ComponentClient struct {
	rest *rest.Client
}

// NewComponentClient creates a new components client.
func NewComponentClient(restClient *rest.Client) *ComponentClient {
	return &ComponentClient{rest: restClient}
}

// GetComponent implements jira.ComponentClient.GetComponent.
func (c *ComponentClient) GetComponent(ctx context.Context, componentURI *url.URL) *jira.Promise[*jira.Component] {
	return rest.GetAndParse(ctx, c.rest, componentURI.String(), parsers.ComponentDecoder)
}

// CreateComponent implements jira.ComponentClient.CreateComponent.
func (c *ComponentClient) CreateComponent(
	ctx context.Context, projectKey string, input jira.ComponentInput,
) *jira.Promise[*jira.Component] {
	return rest.PostAndParse(ctx, c.rest, apiPath("component"), input,
		parsers.ComponentInputEncoder(projectKey), parsers.ComponentDecoder)
}

// RemoveComponent implements jira.ComponentClient.RemoveComponent.
func (c *ComponentClient) RemoveComponent(ctx context.Context, componentURI *url.URL) *jira.Promise[jira.Void] {
	return rest.Delete(ctx, c.rest, componentURI.String())
}
