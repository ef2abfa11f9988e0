package jira

import "time"

// VersionInput creates or updates a project version.
type VersionInput struct {
	ProjectKey  string     `json:"project"               yaml:"project"`
	Name        string     `json:"name"                  yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`
	Archived    bool       `json:"archived"              yaml:"archived"`
	Released    bool       `json:"released"              yaml:"released"`
}

// AssigneeType selects the default assignee of a component.
type AssigneeType string

// Assignee types.
const (
	AssigneeProjectDefault AssigneeType = "PROJECT_DEFAULT"
	AssigneeComponentLead  AssigneeType = "COMPONENT_LEAD"
	AssigneeProjectLead    AssigneeType = "PROJECT_LEAD"
	AssigneeUnassigned     AssigneeType = "UNASSIGNED"
)

// ComponentInput creates a component.
type ComponentInput struct {
	Name         string       `json:"name"                   yaml:"name"`
	Description  string       `json:"description,omitempty"  yaml:"description,omitempty"`
	LeadUsername string       `json:"leadUserName,omitempty" yaml:"leadUserName,omitempty"`
	AssigneeType AssigneeType `json:"assigneeType,omitempty" yaml:"assigneeType,omitempty"`
}

// IssueInput creates an issue. Extra holds additional fields keyed by field
// id, e.g. custom fields; they are sent verbatim next to the system fields.
type IssueInput struct {
	ProjectKey   string         `json:"projectKey"            yaml:"projectKey"`
	IssueTypeID  int64          `json:"issueTypeId"           yaml:"issueTypeId"`
	Summary      string         `json:"summary"               yaml:"summary"`
	Description  string         `json:"description,omitempty" yaml:"description,omitempty"`
	Assignee     string         `json:"assignee,omitempty"    yaml:"assignee,omitempty"`
	Priority     string         `json:"priority,omitempty"    yaml:"priority,omitempty"`
	Labels       []string       `json:"labels,omitempty"      yaml:"labels,omitempty"`
	ComponentIDs []int64        `json:"components,omitempty"  yaml:"components,omitempty"`
	Extra        map[string]any `json:"extra,omitempty"       yaml:"extra,omitempty"`
}

// Visibility restricts who can see a comment.
type Visibility struct {
	Type  string `json:"type"  yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// CommentInput adds a comment to an issue.
type CommentInput struct {
	Body       string      `json:"body"                 yaml:"body"`
	Visibility *Visibility `json:"visibility,omitempty" yaml:"visibility,omitempty"`
}

// AuditRecordInput adds an entry to the audit log.
type AuditRecordInput struct {
	Category        string                `json:"category"                  yaml:"category"`
	Summary         string                `json:"summary"                   yaml:"summary"`
	ObjectItem      *AuditAssociatedItem  `json:"objectItem,omitempty"      yaml:"objectItem,omitempty"`
	AssociatedItems []AuditAssociatedItem `json:"associatedItems,omitempty" yaml:"associatedItems,omitempty"`
	ChangedValues   []AuditChangedValue   `json:"changedValues,omitempty"   yaml:"changedValues,omitempty"`
}

// AuditRecordSearchInput filters the audit log. Nil fields are not sent.
type AuditRecordSearchInput struct {
	Offset *int       `url:"offset,omitempty"`
	Limit  *int       `url:"limit,omitempty"`
	Filter string     `url:"filter,omitempty"`
	From   *time.Time `url:"from,omitempty"   layout:"2006-01-02T15:04:05.000-0700"`
	To     *time.Time `url:"to,omitempty"     layout:"2006-01-02T15:04:05.000-0700"`
}
