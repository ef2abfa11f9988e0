package jira_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/jira-client/pkg/jira"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *jira.ClientError
		expected string
	}{
		{
			name:     "transport failure",
			err:      jira.NewTransportError(errBoom),
			expected: "jira client error: boom",
		},
		{
			name:     "status without records",
			err:      jira.NewStatusError(http.StatusNotFound, nil),
			expected: "jira client error (status 404)",
		},
		{
			name: "single record",
			err: jira.NewStatusError(http.StatusBadRequest, []jira.ErrorRecord{
				{Field: "summary", Message: "You must specify a summary"},
			}),
			expected: "jira client error (status 400): summary: You must specify a summary",
		},
		{
			name: "multiple records",
			err: jira.NewStatusError(http.StatusBadRequest, []jira.ErrorRecord{
				{Message: "a"},
				{Field: "x", Message: "b"},
			}),
			expected: "jira client error (status 400): multiple errors: [a; x: b]",
		},
		{
			name:     "decode failure keeps status",
			err:      jira.NewDecodeFailure(http.StatusOK, &jira.DecodeError{Path: "$.name", Message: "required field missing"}),
			expected: "jira client error (status 200): $.name: required field missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestClientError_Status(t *testing.T) {
	t.Parallel()

	status, ok := jira.NewTransportError(errBoom).Status()
	assert.False(t, ok)
	assert.Zero(t, status)

	status, ok = jira.NewStatusError(http.StatusConflict, nil).Status()
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, status)
}

func TestClientError_Unwrap(t *testing.T) {
	t.Parallel()

	decodeErr := &jira.DecodeError{Message: "bad date", Cause: errBoom}
	wrapped := fmt.Errorf("get issue: %w", jira.NewDecodeFailure(http.StatusOK, decodeErr))

	require.ErrorIs(t, wrapped, errBoom)
	assert.True(t, jira.IsDecodeError(wrapped))

	clientErr, ok := jira.AsClientError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, clientErr.StatusCode)
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, jira.IsNotFound(jira.NewStatusError(http.StatusNotFound, nil)))
	assert.True(t, jira.IsUnauthorized(jira.NewStatusError(http.StatusUnauthorized, nil)))
	assert.True(t, jira.IsForbidden(jira.NewStatusError(http.StatusForbidden, nil)))
	assert.False(t, jira.IsNotFound(errors.New("plain")))
	assert.Zero(t, jira.StatusCode(errBoom))
}

func TestErrorRecord(t *testing.T) {
	t.Parallel()

	records := []jira.ErrorRecord{{Message: "flat"}, {Field: "name", Message: "taken"}}

	assert.False(t, records[0].IsFieldQualified())
	assert.True(t, records[1].IsFieldQualified())
	assert.Equal(t, "name: taken", records[1].String())
	assert.Equal(t, []string{"flat", "taken"}, jira.Messages(records))
	assert.Equal(t, []string{"flat", "taken"}, jira.NewStatusError(http.StatusBadRequest, records).Messages())
}
