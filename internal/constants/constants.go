package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as server info probes.
	ShortHTTPTimeout = 10 * time.Second
)

// Transport retry limits. The invocation pipeline itself never retries; these
// only apply when a caller opts in through the configuration.
const (
	// DefaultRetryMax disables transport retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait between transport retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between transport retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit bounds fan-out follow-up fetches.
	DefaultConcurrencyLimit = 4
)

// HTTP status codes the pipeline classifies on.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusCreated represents a created resource.
	HTTPStatusCreated = 201

	// HTTPStatusNoContent represents a successful response without a body.
	HTTPStatusNoContent = 204
)

// Media types and headers.
const (
	// MediaTypeJSON is the content type of every request and response body.
	MediaTypeJSON = "application/json"

	// HeaderContentType is the content type header name.
	HeaderContentType = "Content-Type"

	// HeaderAccept is the accept header name.
	HeaderAccept = "Accept"

	// HeaderRequestID carries the per-call id.
	HeaderRequestID = "X-Request-Id"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "jira-client-go/1.0"
)

// API paths.
const (
	// APIPathLatest is the REST API root relative to the server URI.
	APIPathLatest = "/rest/api/latest"

	// APIPathAuditRecords is the auditing endpoint relative to the server URI.
	APIPathAuditRecords = "/rest/api/2/auditing/record"
)

// Wire date-time layouts. Every layout requires millisecond precision and an
// explicit offset.
const (
	// DateTimeLayout is the layout used when encoding date-times.
	DateTimeLayout = "2006-01-02T15:04:05.000-0700"

	// DateTimeLayoutColon accepts offsets written as +hh:mm or Z.
	DateTimeLayoutColon = "2006-01-02T15:04:05.000Z07:00"

	// DateLayout is used for date-only fields such as version release dates.
	DateLayout = "2006-01-02"
)

// UI and display constants.
const (
	// NotAvailable is printed for absent values.
	NotAvailable = "N/A"

	// DisplayTimeLayout is the layout used in table output.
	DisplayTimeLayout = "2006-01-02 15:04:05"

	// SummaryDisplayLength truncates long summaries in tables.
	SummaryDisplayLength = 50
)

// Format constants.
const (
	// FormatJSON is the JSON output format.
	FormatJSON = "json"

	// FormatYAML is the YAML output format.
	FormatYAML = "yaml"

	// FormatTable is the default table output format.
	FormatTable = "table"
)
