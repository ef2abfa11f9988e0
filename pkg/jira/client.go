package jira

import (
	"context"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

// Void is the value of a call that carries no payload.
type Void struct{}

// IssueClient provides access to issues, their watchers and comments.
type IssueClient interface {
	GetIssue(ctx context.Context, key string) *Promise[*Issue]
	CreateIssue(ctx context.Context, input IssueInput) *Promise[*BasicIssue]
	CreateIssues(ctx context.Context, inputs []IssueInput) *Promise[*BasicIssues]
	DeleteIssue(ctx context.Context, key string, deleteSubtasks bool) *Promise[Void]
	GetWatchers(ctx context.Context, watchersURI *url.URL) *Promise[*Watchers]
	AddWatcher(ctx context.Context, watchersURI *url.URL, username string) *Promise[Void]
	RemoveWatcher(ctx context.Context, watchersURI *url.URL, username string) *Promise[Void]
	AddComment(ctx context.Context, commentsURI *url.URL, input CommentInput) *Promise[Void]
}

// ProjectClient provides access to projects.
type ProjectClient interface {
	GetProject(ctx context.Context, key string) *Promise[*Project]
	GetAllProjects(ctx context.Context) *Promise[[]BasicProject]
}

// VersionClient provides access to project versions.
type VersionClient interface {
	GetVersion(ctx context.Context, versionURI *url.URL) *Promise[*Version]
	CreateVersion(ctx context.Context, input VersionInput) *Promise[*Version]
	UpdateVersion(ctx context.Context, versionURI *url.URL, input VersionInput) *Promise[*Version]
	RemoveVersion(ctx context.Context, versionURI *url.URL) *Promise[Void]
}

// ComponentClient provides access to project components.
type ComponentClient interface {
	GetComponent(ctx context.Context, componentURI *url.URL) *Promise[*Component]
	CreateComponent(ctx context.Context, projectKey string, input ComponentInput) *Promise[*Component]
	RemoveComponent(ctx context.Context, componentURI *url.URL) *Promise[Void]
}

// UserClient provides access to users.
type UserClient interface {
	GetUser(ctx context.Context, username string) *Promise[*User]
}

// ProjectRolesClient provides access to project roles.
type ProjectRolesClient interface {
	GetRole(ctx context.Context, roleURI *url.URL) *Promise[*ProjectRole]
	GetRoleByID(ctx context.Context, projectURI *url.URL, roleID int64) *Promise[*ProjectRole]
	GetRoles(ctx context.Context, projectURI *url.URL) *Promise[[]ProjectRole]
}

// MetadataClient provides access to server-wide metadata.
type MetadataClient interface {
	GetServerInfo(ctx context.Context) *Promise[*ServerInfo]
	GetPriority(ctx context.Context, priorityURI *url.URL) *Promise[*Priority]
	GetPriorities(ctx context.Context) *Promise[[]Priority]
	GetResolutions(ctx context.Context) *Promise[[]Resolution]
	GetIssueType(ctx context.Context, issueTypeURI *url.URL) *Promise[*IssueType]
	GetStatus(ctx context.Context, statusURI *url.URL) *Promise[*Status]
}

// AuditClient provides access to the audit log.
type AuditClient interface {
	GetAuditRecords(ctx context.Context, input AuditRecordSearchInput) *Promise[*AuditRecordsData]
	AddAuditRecord(ctx context.Context, input AuditRecordInput) *Promise[Void]
}

// Client is the root client exposing every resource client.
type Client interface {
	Issues() IssueClient
	Projects() ProjectClient
	Versions() VersionClient
	Components() ComponentClient
	Users() UserClient
	ProjectRoles() ProjectRolesClient
	Metadata() MetadataClient
	Audit() AuditClient

	// ServerURI is the normalized base URI every relative path resolves against.
	ServerURI() *url.URL
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a jira.Client.
//
// # Authentication precedence
//
// The concrete client (see pkg/jiraclient) picks exactly one authenticator:
//  1. TokenSource: every request carries a Bearer token obtained from it.
//  2. AccessToken: used directly as a static Bearer token.
//  3. Username/Password: HTTP basic authentication.
//  4. No credentials: requests are sent without authentication.
//
// # Timeouts and retries
//
// Per-request deadlines should be controlled via the context passed to client
// methods. RetryMax defaults to zero; the call pipeline itself never retries,
// a positive value only lets the transport re-send on connection errors and
// 5xx responses.
type Config struct {
	// ServerURI: base URL of the server (e.g., "https://jira.example.com").
	// jiraclient.New trims a trailing slash and adds "https://" if no scheme
	// is present.
	ServerURI string

	Username string
	Password string
	// AccessToken: personal access token sent as a Bearer token.
	AccessToken string
	// TokenSource: OAuth2 token source; takes precedence over every other credential.
	TokenSource oauth2.TokenSource

	HTTPTimeout  time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug     bool
	Logger    Logger
	UserAgent string

	RequestInterceptors  []RequestInterceptor
	ResponseInterceptors []ResponseInterceptor
}
