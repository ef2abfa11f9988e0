package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fivetwenty-io/jira-client/internal/auth"
	jirahttp "github.com/fivetwenty-io/jira-client/internal/http"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.add("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.add("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

func newStaticToken(t *testing.T, token string) auth.Authenticator {
	t.Helper()

	authenticator, err := auth.NewStaticToken(token)
	require.NoError(t, err)

	return authenticator
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/jira/rest/api/latest/issue/TST-1", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "jira-client-go/1.0", request.Header.Get("User-Agent"))

			_ = json.NewEncoder(writer).Encode(map[string]string{"key": "TST-1"})
		}))
		defer server.Close()

		client := jirahttp.NewClient(server.URL+"/jira/", newStaticToken(t, "test-token"))

		resp, err := client.Do(context.Background(), &jirahttp.Request{
			Method: "GET",
			Path:   "/rest/api/latest/issue/TST-1",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "TST-1", result["key"])
	})

	t.Run("absolute URI bypasses base", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/rest/api/latest/version/10000", request.URL.Path)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := jirahttp.NewClient("http://unused.invalid", nil)

		resp, err := client.Get(context.Background(), server.URL+"/rest/api/latest/version/10000", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/rest/api/latest/user", request.URL.Path)
			assert.Equal(t, "username=admin", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := jirahttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &jirahttp.Request{
			Method: "GET",
			Path:   "/rest/api/latest/user",
			Query:  url.Values{"username": []string{"admin"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "1.0", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := jirahttp.NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "/rest/api/latest/version", map[string]string{"name": "1.0"})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("raw body is sent verbatim", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			body, _ := io.ReadAll(request.Body)
			assert.JSONEq(t, `{"body":"hi"}`, string(body))
			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := jirahttp.NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "/comment", []byte(`{"body":"hi"}`))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error status is not a transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"errorMessages":["Issue Does Not Exist"],"errors":{}}`))
		}))
		defer server.Close()

		client := jirahttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/rest/api/latest/issue/NOPE-1", nil)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.Contains(t, string(resp.Body), "Issue Does Not Exist")
	})

	t.Run("connection failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close()

		client := jirahttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/rest/api/latest/serverInfo", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := jirahttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &jirahttp.Request{
			Method:  "GET",
			Path:    "/rest/api/latest/serverInfo",
			Headers: map[string]string{"X-Custom-Header": "custom-value"},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := jirahttp.NewClient(server.URL, nil, jirahttp.WithLogger(logger), jirahttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/rest/api/latest/serverInfo", nil)
		require.NoError(t, err)

		// Should have logged request and response
		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])

		requestFields, _ := logger.logs[0]["fields"].(map[string]interface{})
		responseFields, _ := logger.logs[1]["fields"].(map[string]interface{})
		assert.Equal(t, requestFields["call_id"], responseFields["call_id"])
	})

	t.Run("interceptors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.NotEmpty(t, request.Header.Get("X-Request-Id"))
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		var observed atomic.Int32

		chain := jira.NewInterceptorChain()
		chain.AddRequestInterceptor(jira.RequestIDInterceptor("X-Request-Id"))
		chain.AddResponseInterceptor(func(ctx context.Context, req *jira.Request, resp *jira.Response) error {
			observed.Store(int32(resp.StatusCode))

			return nil
		})

		client := jirahttp.NewClient(server.URL, nil, jirahttp.WithInterceptors(chain))

		_, err := client.Delete(context.Background(), "/rest/api/latest/version/1")
		require.NoError(t, err)
		assert.Equal(t, int32(http.StatusNoContent), observed.Load())
	})

	t.Run("failing request interceptor aborts", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			hits.Add(1)
		}))
		defer server.Close()

		boom := errors.New("refused")
		chain := jira.NewInterceptorChain()
		chain.AddRequestInterceptor(func(ctx context.Context, req *jira.Request) error { return boom })

		client := jirahttp.NewClient(server.URL, nil, jirahttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "/x", nil)
		require.ErrorIs(t, err, boom)
		assert.Zero(t, hits.Load())
	})
}

func TestClient_Issue(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		<-release
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := jirahttp.NewClient(server.URL, nil)

	promise := client.Issue(context.Background(), &jirahttp.Request{Method: http.MethodGet, Path: "/slow"})

	select {
	case <-promise.Done():
		t.Fatal("Issue blocked until completion")
	default:
	}

	close(release)

	resp, err := promise.Claim()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*jirahttp.Client, context.Context) (*jirahttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *jirahttp.Client, ctx context.Context) (*jirahttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *jirahttp.Client, ctx context.Context) (*jirahttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *jirahttp.Client, ctx context.Context) (*jirahttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *jirahttp.Client, ctx context.Context) (*jirahttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := jirahttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("no retries by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := jirahttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("retries on 5xx errors when enabled", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := jirahttp.NewClient(server.URL, nil, jirahttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("exhausted retries return last response", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := jirahttp.NewClient(server.URL, nil, jirahttp.WithRetryConfig(2, 10*time.Millisecond, 20*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)

			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := jirahttp.NewClient(server.URL, nil, jirahttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})
}
