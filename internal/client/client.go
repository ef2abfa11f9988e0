package client

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/jira-client/internal/auth"
	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/internal/http"
	"github.com/fivetwenty-io/jira-client/internal/parsers"
	"github.com/fivetwenty-io/jira-client/internal/rest"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// Static errors for err113 compliance.
var (
	ErrServerURIRequired = errors.New("server URI is required")
	ErrInvalidServerURI  = errors.New("server URI must be absolute")
)

// Client implements jira.Client.
type Client struct {
	serverURI  *url.URL
	httpClient *http.Client
	rest       *rest.Client
	logger     jira.Logger

	// Resource clients
	issues       *IssueClient
	projects     *ProjectClient
	versions     *VersionClient
	components   *ComponentClient
	users        *UserClient
	projectRoles *ProjectRolesClient
	metadata     *MetadataClient
	audit        *AuditClient
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *jira.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if len(config.RequestInterceptors) > 0 || len(config.ResponseInterceptors) > 0 {
		chain := jira.NewInterceptorChain()

		for _, interceptor := range config.RequestInterceptors {
			chain.AddRequestInterceptor(interceptor)
		}

		for _, interceptor := range config.ResponseInterceptors {
			chain.AddResponseInterceptor(interceptor)
		}

		httpOpts = append(httpOpts, http.WithInterceptors(chain))
	}

	return httpOpts
}

// New creates a client for config.ServerURI, which must already be an
// absolute URI.
func New(config *jira.Config) (*Client, error) {
	if config.ServerURI == "" {
		return nil, ErrServerURIRequired
	}

	serverURI, err := url.Parse(config.ServerURI)
	if err != nil {
		return nil, fmt.Errorf("parsing server URI: %w", err)
	}

	if !serverURI.IsAbs() || serverURI.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidServerURI, config.ServerURI)
	}

	authenticator, err := auth.New(auth.Credentials{
		TokenSource: config.TokenSource,
		AccessToken: config.AccessToken,
		Username:    config.Username,
		Password:    config.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("configuring authentication: %w", err)
	}

	httpClient := http.NewClient(serverURI.String(), authenticator, createHTTPClientOptions(config)...)

	client := &Client{
		serverURI:  serverURI,
		httpClient: httpClient,
		rest:       rest.NewClient(httpClient, config.Logger),
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.issues = NewIssueClient(c.rest, parsers.NewIssueDecoder(nil))
	c.projects = NewProjectClient(c.rest)
	c.versions = NewVersionClient(c.rest)
	c.components = NewComponentClient(c.rest)
	c.users = NewUserClient(c.rest)
	c.projectRoles = NewProjectRolesClient(c.rest)
	c.metadata = NewMetadataClient(c.rest)
	c.audit = NewAuditClient(c.rest)
}

// ServerURI implements jira.Client.ServerURI.
func (c *Client) ServerURI() *url.URL {
	uri := *c.serverURI

	return &uri
}

// Resource client accessors

// Issues implements jira.Client.Issues.
func (c *Client) Issues() jira.IssueClient {
	return c.issues
}

// Projects implements jira.Client.Projects.
func (c *Client) Projects() jira.ProjectClient {
	return c.projects
}

// Versions implements jira.Client.Versions.
func (c *Client) Versions() jira.VersionClient {
	return c.versions
}

// Components implements jira.Client.Components.
func (c *Client) Components() jira.ComponentClient {
	return c.components
}

// Users implements jira.Client.Users.
func (c *Client) Users() jira.UserClient {
	return c.users
}

// ProjectRoles implements jira.Client.ProjectRoles.
func (c *Client) ProjectRoles() jira.ProjectRolesClient {
	return c.projectRoles
}

// Metadata implements jira.Client.Metadata.
func (c *Client) Metadata() jira.MetadataClient {
	return c.metadata
}

// Audit implements jira.Client.Audit.
func (c *Client) Audit() jira.AuditClient {
	return c.audit
}

// apiPath joins segments below the REST API root. Segments are escaped.
func apiPath(segments ...string) string {
	path := constants.APIPathLatest

	for _, segment := range segments {
		path += "/" + url.PathEscape(segment)
	}

	return path
}

// withQuery appends query to a path that has none.
func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}

	return path + "?" + query.Encode()
}

// resourceWithQuery adds query to a resource URI, keeping its existing
// parameters.
func resourceWithQuery(uri *url.URL, query url.Values) string {
	target := *uri
	values := target.Query()

	for key, vals := range query {
		for _, val := range vals {
			values.Add(key, val)
		}
	}

	target.RawQuery = values.Encode()

	return target.String()
}

// reference lifts a value promise to a pointer promise.
func reference[T any](promise *jira.Promise[T]) *jira.Promise[*T] {
	return jira.Then(promise, func(value T) (*T, error) {
		return &value, nil
	})
}
