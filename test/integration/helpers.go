//go:build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/jira-client/pkg/jira"
	"github.com/fivetwenty-io/jira-client/pkg/jiraclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Server     string
	Username   string
	Password   string
	Token      string
	ProjectKey string
	IssueType  int64
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	var issueType int64

	if _, err := fmt.Sscan(os.Getenv("JIRA_ISSUE_TYPE"), &issueType); err != nil {
		issueType = 1
	}

	return &TestConfig{
		Server:     os.Getenv("JIRA_SERVER"),
		Username:   os.Getenv("JIRA_USER"),
		Password:   os.Getenv("JIRA_PASSWORD"),
		Token:      os.Getenv("JIRA_TOKEN"),
		ProjectKey: os.Getenv("JIRA_PROJECT"),
		IssueType:  issueType,
		Verbose:    os.Getenv("JIRA_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when no server is configured
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.Server == "" || c.ProjectKey == "" {
		t.Skip("integration test requires JIRA_SERVER and JIRA_PROJECT")
	}
}

// NewClient builds a client from the test configuration
func (c *TestConfig) NewClient(t *testing.T) jira.Client {
	t.Helper()

	config := &jira.Config{
		ServerURI:   c.Server,
		Username:    c.Username,
		Password:    c.Password,
		AccessToken: c.Token,
	}

	if c.Verbose {
		logger := logrus.New()
		logger.SetLevel(logrus.DebugLevel)

		config.Debug = true
		config.Logger = jira.NewLogrusLogger(logger)
	}

	client, err := jiraclient.New(config)
	require.NoError(t, err)

	return client
}

// GenerateTestName generates a unique name for test resources
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
