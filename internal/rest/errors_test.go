package rest_test

import (
	"testing"

	"github.com/fivetwenty-io/jira-client/internal/rest"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name:     "error messages only",
			body:     `{"errorMessages":["a","b"]}`,
			expected: []string{"a", "b"},
		},
		{
			name:     "field errors only in key order",
			body:     `{"errors":{"x":"aa","y":"bb"}}`,
			expected: []string{"aa", "bb"},
		},
		{
			name:     "both shapes concatenated without dedup",
			body:     `{"errorMessages":["a","b"],"errors":{"x":"y","z":"z2"}}`,
			expected: []string{"a", "b", "y", "z2"},
		},
		{
			name:     "duplicates are kept",
			body:     `{"errorMessages":["same"],"errors":{"f":"same"}}`,
			expected: []string{"same", "same"},
		},
		{
			name:     "empty members",
			body:     `{"errorMessages":[],"errors":{}}`,
			expected: []string{},
		},
		{
			name:     "messages of another type are skipped",
			body:     `{"errorMessages":"oops","errors":{"x":"y"}}`,
			expected: []string{"y"},
		},
		{
			name:     "field map of another type is skipped",
			body:     `{"errorMessages":["a"],"errors":"flat"}`,
			expected: []string{"a"},
		},
		{
			name:     "null message element is stringified",
			body:     `{"errorMessages":["a",null],"errors":{"x":"y"}}`,
			expected: []string{"a", "null", "y"},
		},
		{
			name:     "non-string message elements are stringified",
			body:     `{"errorMessages":[42,true]}`,
			expected: []string{"42", "true"},
		},
		{
			name:     "unrelated object",
			body:     `{"message":"nope"}`,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records, err := rest.ExtractErrors([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, jira.Messages(records))
		})
	}
}

func TestExtractErrors_KeepsFieldNames(t *testing.T) {
	t.Parallel()

	records, err := rest.ExtractErrors([]byte(`{"errorMessages":["flat"],"errors":{"summary":"required"}}`))
	require.NoError(t, err)
	assert.Equal(t, []jira.ErrorRecord{
		{Message: "flat"},
		{Field: "summary", Message: "required"},
	}, records)
}

func TestExtractErrors_EmptyBody(t *testing.T) {
	t.Parallel()

	for _, body := range [][]byte{nil, {}, []byte("  \n")} {
		records, err := rest.ExtractErrors(body)
		require.NoError(t, err)
		assert.Empty(t, records)
	}
}

func TestExtractErrors_Malformed(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`<html>Bad gateway</html>`, `["a"]`, `"errors"`} {
		_, err := rest.ExtractErrors([]byte(body))
		require.Error(t, err, body)
		assert.True(t, jira.IsDecodeError(err), body)
	}
}
