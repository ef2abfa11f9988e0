package client

import (
	"context"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/internal/parsers"
	"github.com/fivetwenty-io/jira-client/internal/rest"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// ProjectRolesClient implements jira.ProjectRolesClient.
type ProjectRolesClient struct {
	rest *rest.Client
}

// NewProjectRolesClient creates a new project roles client.
func NewProjectRolesClient(restClient *rest.Client) *ProjectRolesClient {
	return &ProjectRolesClient{rest: restClient}
}

// GetRole implements jira.ProjectRolesClient.GetRole.
func (c *ProjectRolesClient) GetRole(ctx context.Context, roleURI *url.URL) *jira.Promise[*jira.ProjectRole] {
	return rest.GetAndParse(ctx, c.rest, roleURI.String(), parsers.ProjectRoleDecoder)
}

// GetRoleByID implements jira.ProjectRolesClient.GetRoleByID.
func (c *ProjectRolesClient) GetRoleByID(
	ctx context.Context, projectURI *url.URL, roleID int64,
) *jira.Promise[*jira.ProjectRole] {
	return c.GetRole(ctx, projectURI.JoinPath("role", strconv.FormatInt(roleID, 10)))
}

// GetRoles implements jira.ProjectRolesClient.GetRoles.
//
// The server only lists role URIs, so this is an N+1 fetch: one call for the
// list and one per role. The per-role calls run concurrently, bounded by
// constants.DefaultConcurrencyLimit. Roles keep the order of the list.
func (c *ProjectRolesClient) GetRoles(ctx context.Context, projectURI *url.URL) *jira.Promise[[]jira.ProjectRole] {
	listed := rest.GetAndParse(ctx, c.rest, projectURI.JoinPath("role").String(), parsers.BasicProjectRolesDecoder)

	return jira.Then(listed, func(basics []jira.BasicProjectRole) ([]jira.ProjectRole, error) {
		return c.fetchRoles(ctx, basics)
	})
}

func (c *ProjectRolesClient) fetchRoles(ctx context.Context, basics []jira.BasicProjectRole) ([]jira.ProjectRole, error) {
	roles := make([]jira.ProjectRole, len(basics))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(constants.DefaultConcurrencyLimit)

	for i, basic := range basics {
		group.Go(func() error {
			role, err := c.GetRole(groupCtx, basic.Self).Await(groupCtx)
			if err != nil {
				return err
			}

			roles[i] = *role

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		if clientErr, ok := jira.AsClientError(err); ok {
			return nil, clientErr
		}

		return nil, jira.NewTransportError(err)
	}

	return roles, nil
}
