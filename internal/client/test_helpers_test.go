package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// recordedRequest is what a test server saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Body   string
	Header http.Header
}

// newTestClient starts a server answering with handler and a client
// pointing at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&jira.Config{ServerURI: server.URL})
	require.NoError(t, err)

	return client, server
}

// respondJSON writes status and body with the JSON content type.
func respondJSON(writer http.ResponseWriter, status int, body string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if body != "" {
		_, _ = io.WriteString(writer, body)
	}
}

// record captures a request for later assertions.
func record(t *testing.T, request *http.Request) recordedRequest {
	t.Helper()

	body, err := io.ReadAll(request.Body)
	assert.NoError(t, err)

	return recordedRequest{
		Method: request.Method,
		Path:   request.URL.Path,
		Query:  request.URL.Query(),
		Body:   string(body),
		Header: request.Header.Clone(),
	}
}

// TestGetOperation represents a get operation test case.
type TestGetOperation struct {
	Name         string
	ExpectedPath string
	StatusCode   int
	Response     string
	WantErr      bool
	WantStatus   int
}

// RunGetTests runs a series of get operation tests against a fresh server each.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation,
	getFunc func(*Client, *httptest.Server) *jira.Promise[TResponse],
	check func(*testing.T, TResponse),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			client, server := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)
				respondJSON(writer, testCase.StatusCode, testCase.Response)
			})

			result, err := getFunc(client, server).Await(context.Background())

			if testCase.WantErr {
				require.Error(t, err)

				clientErr, ok := jira.AsClientError(err)
				require.True(t, ok, "expected *jira.ClientError, got %T", err)

				if testCase.WantStatus != 0 {
					assert.Equal(t, testCase.WantStatus, clientErr.StatusCode)
				}

				return
			}

			require.NoError(t, err)

			if check != nil {
				check(t, result)
			}
		})
	}
}
