package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/jira-client/internal/parsers"
	"github.com/fivetwenty-io/jira-client/internal/rest"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// VersionClient implements jira.VersionClient.
type VersionClient struct {
	rest *rest.Client
}

// NewVersionClient creates a new versions client.
func NewVersionClient(restClient *rest.Client) *VersionClient {
	return &VersionClient{rest: restClient}
}

// GetVersion implements jira.VersionClient.GetVersion.
func (c *VersionClient) GetVersion(ctx context.Context, versionURI *url.URL) *jira.Promise[*jira.Version] {
	return reference(rest.GetAndParse(ctx, c.rest, versionURI.String(), parsers.VersionDecoder))
}

// CreateVersion implements jira.VersionClient.CreateVersion.
func (c *VersionClient) CreateVersion(ctx context.Context, input jira.VersionInput) *jira.Promise[*jira.Version] {
	created := rest.PostAndParse(ctx, c.rest, apiPath("version"), input,
		parsers.VersionInputEncoder, parsers.VersionDecoder)

	return reference(created)
}

// UpdateVersion implements jira.VersionClient.UpdateVersion.
func (c *VersionClient) UpdateVersion(
	ctx context.Context, versionURI *url.URL, input jira.VersionInput,
) *jira.Promise[*jira.Version] {
	updated := rest.PutAndParse(ctx, c.rest, versionURI.String(), input,
		parsers.VersionInputEncoder, parsers.VersionDecoder)

	return reference(updated)
}

// RemoveVersion implements jira.VersionClient.RemoveVersion.
func (c *VersionClient) RemoveVersion(ctx context.Context, versionURI *url.URL) *jira.Promise[jira.Void] {
	return rest.Delete(ctx, c.rest, versionURI.String())
}
