package auth_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/jira-client/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type countingSource struct {
	calls int
	token *oauth2.Token
	err   error
}

func (s *countingSource) Token() (*oauth2.Token, error) {
	s.calls++

	return s.token, s.err
}

func newRequest(t *testing.T) *http.Request {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://localhost/rest/api/latest/serverInfo", nil)
	require.NoError(t, err)

	return req
}

func TestNew_Precedence(t *testing.T) {
	t.Parallel()

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "oauth"})

	tests := []struct {
		name   string
		creds  auth.Credentials
		scheme string
	}{
		{
			name:   "token source wins",
			creds:  auth.Credentials{TokenSource: source, AccessToken: "pat", Username: "admin"},
			scheme: "oauth2",
		},
		{
			name:   "access token before basic",
			creds:  auth.Credentials{AccessToken: "pat", Username: "admin", Password: "admin"},
			scheme: "bearer",
		},
		{
			name:   "basic",
			creds:  auth.Credentials{Username: "admin", Password: "admin"},
			scheme: "basic",
		},
		{
			name:   "anonymous",
			creds:  auth.Credentials{},
			scheme: "anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authenticator, err := auth.New(tt.creds)
			require.NoError(t, err)
			assert.Equal(t, tt.scheme, authenticator.Scheme())
		})
	}
}

func TestBasic(t *testing.T) {
	t.Parallel()

	authenticator, err := auth.NewBasic("admin", "secret")
	require.NoError(t, err)

	req := newRequest(t)
	require.NoError(t, authenticator.Authenticate(context.Background(), req))

	username, password, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "secret", password)

	_, err = auth.NewBasic("", "secret")
	require.ErrorIs(t, err, auth.ErrMissingUsername)
}

func TestStaticToken(t *testing.T) {
	t.Parallel()

	authenticator, err := auth.NewStaticToken("pat-123")
	require.NoError(t, err)

	req := newRequest(t)
	require.NoError(t, authenticator.Authenticate(context.Background(), req))
	assert.Equal(t, "Bearer pat-123", req.Header.Get("Authorization"))

	_, err = auth.NewStaticToken("")
	require.ErrorIs(t, err, auth.ErrEmptyToken)
}

func TestTokenSource(t *testing.T) {
	t.Parallel()

	t.Run("caches valid token", func(t *testing.T) {
		t.Parallel()

		source := &countingSource{token: &oauth2.Token{AccessToken: "abc", TokenType: "bearer"}}

		authenticator, err := auth.NewTokenSource(source)
		require.NoError(t, err)

		for range 3 {
			req := newRequest(t)
			require.NoError(t, authenticator.Authenticate(context.Background(), req))
			assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))
		}

		assert.Equal(t, 1, source.calls)
	})

	t.Run("propagates failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("token endpoint down")
		authenticator, err := auth.NewTokenSource(&countingSource{err: boom})
		require.NoError(t, err)

		err = authenticator.Authenticate(context.Background(), newRequest(t))
		require.ErrorIs(t, err, boom)
	})

	t.Run("nil source", func(t *testing.T) {
		t.Parallel()

		_, err := auth.NewTokenSource(nil)
		require.ErrorIs(t, err, auth.ErrNoTokenSource)
	})
}
