package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

const issueBody = `{
	"self": "http://jira.test/rest/api/latest/issue/10000",
	"id": "10000",
	"key": "TST-1",
	"fields": {
		"summary": "First issue",
		"project": {"self": "http://jira.test/rest/api/latest/project/TST", "key": "TST"},
		"issuetype": {"self": "http://jira.test/rest/api/latest/issuetype/1", "name": "Bug", "subtask": false},
		"status": {"self": "http://jira.test/rest/api/latest/status/1", "name": "Open"},
		"created": "2024-03-01T10:15:30.000+0000",
		"updated": "2024-03-01T10:15:30.000+0000",
		"customfield_10010": 2
	},
	"names": {"customfield_10010": "Story Points"},
	"schema": {"customfield_10010": {"type": "number"}}
}`

func TestIssueClient_GetIssue(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation{
		{
			Name:         "found",
			ExpectedPath: "/rest/api/latest/issue/TST-1",
			StatusCode:   http.StatusOK,
			Response:     issueBody,
		},
		{
			Name:         "not found",
			ExpectedPath: "/rest/api/latest/issue/TST-1",
			StatusCode:   http.StatusNotFound,
			Response:     `{"errorMessages":["Issue Does Not Exist"],"errors":{}}`,
			WantErr:      true,
			WantStatus:   http.StatusNotFound,
		},
		{
			Name:         "malformed payload",
			ExpectedPath: "/rest/api/latest/issue/TST-1",
			StatusCode:   http.StatusOK,
			Response:     `{"key": "TST-1"}`,
			WantErr:      true,
			WantStatus:   http.StatusOK,
		},
	}

	RunGetTests(t, tests,
		func(c *Client, _ *httptest.Server) *jira.Promise[*jira.Issue] {
			return c.Issues().GetIssue(context.Background(), "TST-1")
		},
		func(t *testing.T, issue *jira.Issue) {
			t.Helper()

			assert.Equal(t, "TST-1", issue.Key)

			points, ok := issue.FieldByID("customfield_10010")
			require.True(t, ok)
			assert.Equal(t, "Story Points", points.Name)
			assert.InDelta(t, 2.0, points.Value, 0.0001)
		},
	)
}

func TestIssueClient_GetIssueExpandsNamesAndSchema(t *testing.T) {
	t.Parallel()

	requests := make(chan recordedRequest, 1)

	client, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		requests <- record(t, request)
		respondJSON(writer, http.StatusOK, issueBody)
	})

	_, err := client.Issues().GetIssue(context.Background(), "TST-1").Claim()
	require.NoError(t, err)

	seen := <-requests
	assert.Equal(t, []string{"names,schema"}, seen.Query["expand"])
	assert.Equal(t, "application/json", seen.Header.Get("Accept"))
}

func TestIssueClient_GetIssueNotFoundMessages(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
		respondJSON(writer, http.StatusNotFound, `{"errorMessages":["Issue Does Not Exist"],"errors":{}}`)
	})

	_, err := client.Issues().GetIssue(context.Background(), "TST-404").Claim()
	require.Error(t, err)
	assert.True(t, jira.IsNotFound(err))

	clientErr, ok := jira.AsClientError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Issue Does Not Exist"}, clientErr.Messages())
}

func TestIssueClient_CreateIssue(t *testing.T) {
	t.Parallel()

	requests := make(chan recordedRequest, 1)

	client, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		requests <- record(t, request)
		respondJSON(writer, http.StatusCreated,
			`{"id":"10001","key":"TST-2","self":"http://jira.test/rest/api/latest/issue/10001"}`)
	})

	created, err := client.Issues().CreateIssue(context.Background(), jira.IssueInput{
		ProjectKey:  "TST",
		IssueTypeID: 1,
		Summary:     "Second issue",
		Priority:    "Major",
	}).Claim()
	require.NoError(t, err)
	assert.Equal(t, "TST-2", created.Key)

	seen := <-requests
	assert.Equal(t, http.MethodPost, seen.Method)
	assert.Equal(t, "/rest/api/latest/issue", seen.Path)
	assert.Equal(t, "application/json", seen.Header.Get("Content-Type"))
	assert.Equal(t, "TST", gjson.Get(seen.Body, "fields.project.key").String())
	assert.Equal(t, "Major", gjson.Get(seen.Body, "fields.priority.name").String())
}

func TestIssueClient_CreateIssueValidationErrors(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
		respondJSON(writer, http.StatusBadRequest,
			`{"errorMessages":[],"errors":{"summary":"You must specify a summary of the issue."}}`)
	})

	_, err := client.Issues().CreateIssue(context.Background(), jira.IssueInput{ProjectKey: "TST"}).Claim()
	require.Error(t, err)

	clientErr, ok := jira.AsClientError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	require.Len(t, clientErr.Errors, 1)
	assert.Equal(t, "summary", clientErr.Errors[0].Field)
}

func TestIssueClient_CreateIssues(t *testing.T) {
	t.Parallel()

	requests := make(chan recordedRequest, 1)

	client, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		requests <- record(t, request)
		respondJSON(writer, http.StatusCreated, `{
			"issues": [{"id":"1","key":"TST-3","self":"http://jira.test/rest/api/latest/issue/1"}],
			"errors": [{"status":400,"failedElementNumber":1,"elementErrors":{"errors":{"summary":"required"}}}]
		}`)
	})

	result, err := client.Issues().CreateIssues(context.Background(), []jira.IssueInput{
		{ProjectKey: "TST", IssueTypeID: 1, Summary: "ok"},
		{ProjectKey: "TST", IssueTypeID: 1},
	}).Claim()
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].FailedElementNumber)

	seen := <-requests
	assert.Equal(t, "/rest/api/latest/issue/bulk", seen.Path)
	assert.Len(t, gjson.Get(seen.Body, "issueUpdates").Array(), 2)
}

func TestIssueClient_DeleteIssue(t *testing.T) {
	t.Parallel()

	requests := make(chan recordedRequest, 1)

	client, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		requests <- record(t, request)
		writer.WriteHeader(http.StatusNoContent)
	})

	_, err := client.Issues().DeleteIssue(context.Background(), "TST-1", true).Claim()
	require.NoError(t, err)

	seen := <-requests
	assert.Equal(t, http.MethodDelete, seen.Method)
	assert.Equal(t, "/rest/api/latest/issue/TST-1", seen.Path)
	assert.Equal(t, []string{"true"}, seen.Query["deleteSubtasks"])
}

func TestIssueClient_Watchers(t *testing.T) {
	t.Parallel()

	requests := make(chan recordedRequest, 3)

	client, server := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		requests <- record(t, request)

		switch request.Method {
		case http.MethodGet:
			respondJSON(writer, http.StatusOK, `{
				"self": "http://jira.test/rest/api/latest/issue/TST-1/watchers",
				"isWatching": true,
				"watchCount": 1,
				"watchers": [{"self": "http://jira.test/rest/api/latest/user?username=fred", "name": "fred"}]
			}`)
		default:
			writer.WriteHeader(http.StatusNoContent)
		}
	})

	watchersURI, err := url.Parse(server.URL + "/rest/api/latest/issue/TST-1/watchers")
	require.NoError(t, err)

	ctx := context.Background()

	watchers, err := client.Issues().GetWatchers(ctx, watchersURI).Claim()
	require.NoError(t, err)
	assert.Equal(t, 1, watchers.WatchCount)
	require.Len(t, watchers.WatcherList, 1)

	_, err = client.Issues().AddWatcher(ctx, watchersURI, "fred").Claim()
	require.NoError(t, err)

	_, err = client.Issues().RemoveWatcher(ctx, watchersURI, "fred").Claim()
	require.NoError(t, err)

	<-requests

	added := <-requests
	assert.Equal(t, http.MethodPost, added.Method)
	assert.JSONEq(t, `"fred"`, added.Body)

	removed := <-requests
	assert.Equal(t, http.MethodDelete, removed.Method)
	assert.Equal(t, "/rest/api/latest/issue/TST-1/watchers", removed.Path)
	assert.Equal(t, []string{"fred"}, removed.Query["username"])
}

func TestIssueClient_AddComment(t *testing.T) {
	t.Parallel()

	requests := make(chan recordedRequest, 1)

	client, server := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		requests <- record(t, request)
		respondJSON(writer, http.StatusCreated, `{"id":"10100"}`)
	})

	commentsURI, err := url.Parse(server.URL + "/rest/api/latest/issue/TST-1/comment")
	require.NoError(t, err)

	_, err = client.Issues().AddComment(context.Background(), commentsURI, jira.CommentInput{
		Body:       "Fixed in 1.1",
		Visibility: &jira.Visibility{Type: "group", Value: "developers"},
	}).Claim()
	require.NoError(t, err)

	seen := <-requests
	assert.Equal(t, "Fixed in 1.1", gjson.Get(seen.Body, "body").String())
	assert.Equal(t, "developers", gjson.Get(seen.Body, "visibility.value").String())
}
