package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/jira-client/internal/jsonparse"
	"github.com/fivetwenty-io/jira-client/internal/parsers"
	"github.com/fivetwenty-io/jira-client/internal/rest"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// MetadataClient implements jira.MetadataClient.
type MetadataClient struct {
	rest *rest.Client
}

// NewMetadataClient creates a new metadata client.
func NewMetadataClient(restClient *rest.Client) *MetadataClient {
	return &MetadataClient{rest: restClient}
}

// GetServerInfo implements jira.MetadataClient.GetServerInfo.
func (c *MetadataClient) GetServerInfo(ctx context.Context) *jira.Promise[*jira.ServerInfo] {
	return rest.GetAndParse(ctx, c.rest, apiPath("serverInfo"), parsers.ServerInfoDecoder)
}

// GetPriority implements jira.MetadataClient.GetPriority.
func (c *MetadataClient) GetPriority(ctx context.Context, priorityURI *url.URL) *jira.Promise[*jira.Priority] {
	return reference(rest.GetAndParse(ctx, c.rest, priorityURI.String(), parsers.PriorityDecoder))
}

// GetPriorities implements jira.MetadataClient.GetPriorities.
func (c *MetadataClient) GetPriorities(ctx context.Context) *jira.Promise[[]jira.Priority] {
	return rest.GetAndParse(ctx, c.rest, apiPath("priority"), jsonparse.CollectionOf(parsers.PriorityDecoder))
}

// GetResolutions implements jira.MetadataClient.GetResolutions.
func (c *MetadataClient) GetResolutions(ctx context.Context) *jira.Promise[[]jira.Resolution] {
	return rest.GetAndParse(ctx, c.rest, apiPath("resolution"), jsonparse.CollectionOf(parsers.ResolutionDecoder))
}

// GetIssueType implements jira.MetadataClient.GetIssueType.
func (c *MetadataClient) GetIssueType(ctx context.Context, issueTypeURI *url.URL) *jira.Promise[*jira.IssueType] {
	return reference(rest.GetAndParse(ctx, c.rest, issueTypeURI.String(), parsers.IssueTypeDecoder))
}

// GetStatus implements jira.MetadataClient.GetStatus.
func (c *MetadataClient) GetStatus(ctx context.Context, statusURI *url.URL) *jira.Promise[*jira.Status] {
	return reference(rest.GetAndParse(ctx, c.rest, statusURI.String(), parsers.StatusDecoder))
}
