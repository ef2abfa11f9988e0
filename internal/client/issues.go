package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/jira-client/internal/jsonparse"
	"github.com/fivetwenty-io/jira-client/internal/parsers"
	"github.com/fivetwenty-io/jira-client/internal/rest"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// issueExpand asks the server for the field names and schema the field
// decoder needs.
const issueExpand = "names,schema"

// IssueClient implements jira.IssueClient.
type IssueClient struct {
	rest    *rest.Client
	decoder jsonparse.Decoder[*jira.Issue]
}

// NewIssueClient creates a new issues client.
func NewIssueClient(restClient *rest.Client, decoder *parsers.IssueDecoder) *IssueClient {
	if decoder == nil {
		decoder = parsers.NewIssueDecoder(nil)
	}

	return &IssueClient{
		rest:    restClient,
		decoder: decoder.Decoder(),
	}
}

// GetIssue implements jira.IssueClient.GetIssue.
func (c *IssueClient) GetIssue(ctx context.Context, key string) *jira.Promise[*jira.Issue] {
	path := withQuery(apiPath("issue", key), url.Values{"expand": {issueExpand}})

	return rest.GetAndParse(ctx, c.rest, path, c.decoder)
}

// CreateIssue implements jira.IssueClient.CreateIssue.
func (c *IssueClient) CreateIssue(ctx context.Context, input jira.IssueInput) *jira.Promise[*jira.BasicIssue] {
	created := rest.PostAndParse(ctx, c.rest, apiPath("issue"), input,
		parsers.IssueInputEncoder, parsers.BasicIssueDecoder)

	return reference(created)
}

// CreateIssues implements jira.IssueClient.CreateIssues.
func (c *IssueClient) CreateIssues(ctx context.Context, inputs []jira.IssueInput) *jira.Promise[*jira.BasicIssues] {
	return rest.PostAndParse(ctx, c.rest, apiPath("issue", "bulk"), inputs,
		parsers.IssueInputsEncoder, parsers.BasicIssuesDecoder)
}

// DeleteIssue implements jira.IssueClient.DeleteIssue.
func (c *IssueClient) DeleteIssue(ctx context.Context, key string, deleteSubtasks bool) *jira.Promise[jira.Void] {
	path := withQuery(apiPath("issue", key), url.Values{
		"deleteSubtasks": {strconv.FormatBool(deleteSubtasks)},
	})

	return rest.Delete(ctx, c.rest, path)
}

// GetWatchers implements jira.IssueClient.GetWatchers.
func (c *IssueClient) GetWatchers(ctx context.Context, watchersURI *url.URL) *jira.Promise[*jira.Watchers] {
	return rest.GetAndParse(ctx, c.rest, watchersURI.String(), parsers.WatchersDecoder)
}

// AddWatcher implements jira.IssueClient.AddWatcher. The body is the bare
// JSON-quoted username.
func (c *IssueClient) AddWatcher(ctx context.Context, watchersURI *url.URL, username string) *jira.Promise[jira.Void] {
	return rest.Post(ctx, c.rest, watchersURI.String(), username, parsers.UsernameEncoder)
}

// RemoveWatcher implements jira.IssueClient.RemoveWatcher.
func (c *IssueClient) RemoveWatcher(ctx context.Context, watchersURI *url.URL, username string) *jira.Promise[jira.Void] {
	return rest.Delete(ctx, c.rest, resourceWithQuery(watchersURI, url.Values{"username": {username}}))
}

// AddComment implements jira.IssueClient.AddComment.
func (c *IssueClient) AddComment(ctx context.Context, commentsURI *url.URL, input jira.CommentInput) *jira.Promise[jira.Void] {
	return rest.Post(ctx, c.rest, commentsURI.String(), input, parsers.CommentInputEncoder)
}
