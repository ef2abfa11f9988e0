package constants

import "errors"

// Configuration errors.
var (
	ErrNoServerConfigured = errors.New("no server configured, use --server or set JIRA_SERVER")
	ErrPasswordRequired   = errors.New("password is required when a username is set")
)

// Validation errors.
var (
	ErrInvalidRoleID       = errors.New("invalid project role id")
	ErrInvalidOutput       = errors.New("invalid output format")
	ErrInvalidVisibility   = errors.New("visibility must be TYPE:VALUE")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD or RFC 3339")
	ErrInvalidResourceURI  = errors.New("resource URI must be absolute")
	ErrInvalidChangedValue = errors.New("changed value must be FIELD=VALUE")
	ErrSummaryRequired     = errors.New("--summary flag is required")
	ErrProjectRequired     = errors.New("--project flag is required")
	ErrIssueTypeRequired   = errors.New("--type flag is required")
	ErrCategoryRequired    = errors.New("--category flag is required")
)
