package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

func TestMetadataClient_GetServerInfo(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation{
		{
			Name:         "server info",
			ExpectedPath: "/rest/api/latest/serverInfo",
			StatusCode:   http.StatusOK,
			Response: `{
				"baseUrl": "http://jira.test",
				"version": "9.4.0",
				"versionNumbers": [9, 4, 0],
				"buildNumber": 940000,
				"buildDate": "2023-01-01T00:00:00.000+0000"
			}`,
		},
		{
			Name:         "unauthorized",
			ExpectedPath: "/rest/api/latest/serverInfo",
			StatusCode:   http.StatusUnauthorized,
			WantErr:      true,
			WantStatus:   http.StatusUnauthorized,
		},
	}

	RunGetTests(t, tests,
		func(c *Client, _ *httptest.Server) *jira.Promise[*jira.ServerInfo] {
			return c.Metadata().GetServerInfo(context.Background())
		},
		func(t *testing.T, info *jira.ServerInfo) {
			t.Helper()

			assert.Equal(t, "9.4.0", info.Version)
			assert.Equal(t, []int{9, 4, 0}, info.VersionNumbers)
			assert.Nil(t, info.ServerTime)
		},
	)
}

func TestMetadataClient_GetPriorities(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation{
		{
			Name:         "priorities",
			ExpectedPath: "/rest/api/latest/priority",
			StatusCode:   http.StatusOK,
			Response: `[{
				"self": "http://jira.test/rest/api/latest/priority/1",
				"id": "1",
				"name": "Blocker",
				"statusColor": "#cc0000",
				"description": "Blocks development"
			}]`,
		},
	}

	RunGetTests(t, tests,
		func(c *Client, _ *httptest.Server) *jira.Promise[[]jira.Priority] {
			return c.Metadata().GetPriorities(context.Background())
		},
		func(t *testing.T, priorities []jira.Priority) {
			t.Helper()

			require.Len(t, priorities, 1)
			assert.Equal(t, "#cc0000", priorities[0].StatusColor)
		},
	)
}

func TestMetadataClient_ResourcesByURI(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/rest/api/latest/priority/3":
			respondJSON(writer, http.StatusOK, `{
				"self": "http://jira.test/rest/api/latest/priority/3", "name": "Major",
				"statusColor": "#009900", "description": "Major loss of function"
			}`)
		case "/rest/api/latest/issuetype/5":
			respondJSON(writer, http.StatusOK, `{
				"self": "http://jira.test/rest/api/latest/issuetype/5", "name": "Sub-task", "subtask": true
			}`)
		case "/rest/api/latest/status/1":
			respondJSON(writer, http.StatusOK, `{"self": "http://jira.test/rest/api/latest/status/1", "name": "Open"}`)
		case "/rest/api/latest/resolution":
			respondJSON(writer, http.StatusOK, `[{"self": "http://jira.test/rest/api/latest/resolution/1", "name": "Fixed"}]`)
		default:
			respondJSON(writer, http.StatusNotFound, `{"errorMessages":["not found"]}`)
		}
	})

	ctx := context.Background()
	resolve := func(path string) *url.URL {
		uri, err := url.Parse(server.URL + path)
		require.NoError(t, err)

		return uri
	}

	priority, err := client.Metadata().GetPriority(ctx, resolve("/rest/api/latest/priority/3")).Claim()
	require.NoError(t, err)
	assert.Equal(t, "Major", priority.Name)

	issueType, err := client.Metadata().GetIssueType(ctx, resolve("/rest/api/latest/issuetype/5")).Claim()
	require.NoError(t, err)
	assert.True(t, issueType.IsSubtask)

	status, err := client.Metadata().GetStatus(ctx, resolve("/rest/api/latest/status/1")).Claim()
	require.NoError(t, err)
	assert.Equal(t, "Open", status.Name)

	resolutions, err := client.Metadata().GetResolutions(ctx).Claim()
	require.NoError(t, err)
	require.Len(t, resolutions, 1)

	_, err = client.Metadata().GetStatus(ctx, resolve("/rest/api/latest/status/404")).Claim()
	assert.True(t, jira.IsNotFound(err))
}

func TestUserClient_GetUser(t *testing.T) {
	t.Parallel()

	requests := make(chan recordedRequest, 1)

	client, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		requests <- record(t, request)
		respondJSON(writer, http.StatusOK, `{
			"self": "http://jira.test/rest/api/latest/user?username=fred",
			"name": "fred",
			"displayName": "Fred",
			"active": false,
			"groups": {"size": 1, "items": [{"name": "jira-users"}]}
		}`)
	})

	user, err := client.Users().GetUser(context.Background(), "fred").Claim()
	require.NoError(t, err)
	assert.False(t, user.Active)
	assert.True(t, user.Groups.IsExpanded())
	assert.False(t, user.Roles.IsExpanded())

	seen := <-requests
	assert.Equal(t, "/rest/api/latest/user", seen.Path)
	assert.Equal(t, []string{"fred"}, seen.Query["username"])
	assert.Equal(t, []string{"groups,applicationRoles"}, seen.Query["expand"])
}

func TestAuditClient_GetAuditRecords(t *testing.T) {
	t.Parallel()

	requests := make(chan recordedRequest, 1)

	client, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		requests <- record(t, request)
		respondJSON(writer, http.StatusOK, `{
			"offset": 10, "limit": 5, "total": 11,
			"records": [{"id": 1, "summary": "User created", "created": "2024-03-01T10:15:30.000+0000", "category": "user management"}]
		}`)
	})

	offset, limit := 10, 5
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	data, err := client.Audit().GetAuditRecords(context.Background(), jira.AuditRecordSearchInput{
		Offset: &offset,
		Limit:  &limit,
		Filter: "user",
		From:   &from,
	}).Claim()
	require.NoError(t, err)
	assert.Equal(t, 11, data.Total)
	require.Len(t, data.Records, 1)
	assert.Nil(t, data.Records[0].ChangedValues)

	seen := <-requests
	assert.Equal(t, "/rest/api/2/auditing/record", seen.Path)
	assert.Equal(t, []string{"10"}, seen.Query["offset"])
	assert.Equal(t, []string{"5"}, seen.Query["limit"])
	assert.Equal(t, []string{"user"}, seen.Query["filter"])
	assert.Equal(t, []string{"2024-03-01T00:00:00.000+0000"}, seen.Query["from"])
	assert.NotContains(t, seen.Query, "to")
}

func TestAuditClient_AddAuditRecord(t *testing.T) {
	t.Parallel()

	requests := make(chan recordedRequest, 1)

	client, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		requests <- record(t, request)
		writer.WriteHeader(http.StatusNoContent)
	})

	_, err := client.Audit().AddAuditRecord(context.Background(), jira.AuditRecordInput{
		Category: "projects",
		Summary:  "Project archived",
		ChangedValues: []jira.AuditChangedValue{
			{FieldName: "Archived", ChangedTo: ptr("true")},
		},
	}).Claim()
	require.NoError(t, err)

	seen := <-requests
	assert.Equal(t, http.MethodPost, seen.Method)
	assert.Equal(t, "Project archived", gjson.Get(seen.Body, "summary").String())
	assert.Equal(t, "Archived", gjson.Get(seen.Body, "changedValues.0.fieldName").String())
	assert.False(t, gjson.Get(seen.Body, "associatedItems").Exists())
}

func ptr[T any](value T) *T {
	return &value
}
