package client

import (
	"context"

	"github.com/fivetwenty-io/jira-client/internal/parsers"
	"github.com/fivetwenty-io/jira-client/internal/rest"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// ProjectClient implements jira.ProjectClient.
type ProjectClient struct {
	rest *rest.Client
}

// NewProjectClient creates a new projects client.
func NewProjectClient(restClient *rest.Client) *ProjectClient {
	return &ProjectClient{rest: restClient}
}

// GetProject implements jira.ProjectClient.GetProject.
func (c *ProjectClient) GetProject(ctx context.Context, key string) *jira.Promise[*jira.Project] {
	return rest.GetAndParse(ctx, c.rest, apiPath("project", key), parsers.ProjectDecoder)
}

// GetAllProjects implements jira.ProjectClient.GetAllProjects.
func (c *ProjectClient) GetAllProjects(ctx context.Context) *jira.Promise[[]jira.BasicProject] {
	return rest.GetAndParse(ctx, c.rest, apiPath("project"), parsers.BasicProjectsDecoder)
}
