package jira

import (
	"net/url"
	"time"
)

// ExpandableProperty is a sub-resource the server returns either collapsed,
// reporting only its size, or expanded with the materialized items.
//
// Items is nil when the property is collapsed. When expanded, len(Items) may
// be smaller than Size because the server can paginate.
type ExpandableProperty[T any] struct {
	Size  int `json:"size"            yaml:"size"`
	Items []T `json:"items,omitempty" yaml:"items,omitempty"`
}

// NewExpandableProperty builds a property; pass nil items for a collapsed one.
func NewExpandableProperty[T any](size int, items []T) ExpandableProperty[T] {
	return ExpandableProperty[T]{Size: size, Items: items}
}

// IsExpanded reports whether the items were materialized.
func (p ExpandableProperty[T]) IsExpanded() bool {
	return p.Items != nil
}

// BasicUser is the lightweight user reference embedded in most resources.
type BasicUser struct {
	Self        *url.URL `json:"self"                  yaml:"self"`
	Name        string   `json:"name"                  yaml:"name"`
	DisplayName *string  `json:"displayName,omitempty" yaml:"displayName,omitempty"`
}

// Group is a user group reference.
type Group struct {
	Self *url.URL `json:"self,omitempty" yaml:"self,omitempty"`
	Name string   `json:"name"           yaml:"name"`
}

// User is a full user resource.
type User struct {
	BasicUser

	EmailAddress *string                    `json:"emailAddress,omitempty" yaml:"emailAddress,omitempty"`
	Active       bool                       `json:"active"                 yaml:"active"`
	TimeZone     *string                    `json:"timeZone,omitempty"     yaml:"timeZone,omitempty"`
	AvatarURIs   map[string]*url.URL        `json:"avatarUrls,omitempty"   yaml:"avatarUrls,omitempty"`
	Groups       ExpandableProperty[Group]  `json:"groups"                 yaml:"groups"`
	Roles        ExpandableProperty[string] `json:"applicationRoles"       yaml:"applicationRoles"`
}

// BasicProject is the lightweight project reference.
type BasicProject struct {
	Self *url.URL `json:"self"           yaml:"self"`
	Key  string   `json:"key"            yaml:"key"`
	ID   *int64   `json:"id,omitempty"   yaml:"id,omitempty"`
	Name *string  `json:"name,omitempty" yaml:"name,omitempty"`
}

// Project is a full project resource.
type Project struct {
	BasicProject

	Description *string          `json:"description,omitempty" yaml:"description,omitempty"`
	Lead        BasicUser        `json:"lead"                  yaml:"lead"`
	URI         *url.URL         `json:"url,omitempty"         yaml:"url,omitempty"`
	Versions    []Version        `json:"versions"              yaml:"versions"`
	Components  []BasicComponent `json:"components"            yaml:"components"`
	IssueTypes  []IssueType      `json:"issueTypes"            yaml:"issueTypes"`
}

// Version is a project version.
type Version struct {
	Self        *url.URL   `json:"self"                  yaml:"self"`
	ID          *int64     `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string     `json:"name"                  yaml:"name"`
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Archived    bool       `json:"archived"              yaml:"archived"`
	Released    bool       `json:"released"              yaml:"released"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`
}

// BasicComponent is the lightweight component reference.
type BasicComponent struct {
	Self        *url.URL `json:"self"                  yaml:"self"`
	ID          *int64   `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string   `json:"name"                  yaml:"name"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// Component is a full component resource.
type Component struct {
	BasicComponent

	Lead *BasicUser `json:"lead,omitempty" yaml:"lead,omitempty"`
}

// Watchers lists the users watching an issue.
type Watchers struct {
	Self        *url.URL    `json:"self"       yaml:"self"`
	IsWatching  bool        `json:"isWatching" yaml:"isWatching"`
	WatchCount  int         `json:"watchCount" yaml:"watchCount"`
	WatcherList []BasicUser `json:"watchers"   yaml:"watchers"`
}

// BasicPriority is the lightweight priority reference.
type BasicPriority struct {
	Self *url.URL `json:"self"         yaml:"self"`
	ID   *int64   `json:"id,omitempty" yaml:"id,omitempty"`
	Name string   `json:"name"         yaml:"name"`
}

// Priority is a full priority resource.
type Priority struct {
	BasicPriority

	StatusColor string   `json:"statusColor"       yaml:"statusColor"`
	Description string   `json:"description"       yaml:"description"`
	IconURI     *url.URL `json:"iconUrl,omitempty" yaml:"iconUrl,omitempty"`
}

// Resolution is an issue resolution.
type Resolution struct {
	Self        *url.URL `json:"self"                  yaml:"self"`
	ID          *int64   `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string   `json:"name"                  yaml:"name"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// IssueType is an issue type.
type IssueType struct {
	Self        *url.URL `json:"self"                  yaml:"self"`
	ID          *int64   `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string   `json:"name"                  yaml:"name"`
	IsSubtask   bool     `json:"subtask"               yaml:"subtask"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	IconURI     *url.URL `json:"iconUrl,omitempty"     yaml:"iconUrl,omitempty"`
}

// Status is an issue status.
type Status struct {
	Self        *url.URL `json:"self"                  yaml:"self"`
	ID          *int64   `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string   `json:"name"                  yaml:"name"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	IconURI     *url.URL `json:"iconUrl,omitempty"     yaml:"iconUrl,omitempty"`
}

// Field is a non-system issue field with its type-dependent decoded value.
type Field struct {
	ID    string `json:"id"              yaml:"id"`
	Name  string `json:"name"            yaml:"name"`
	Type  string `json:"type"            yaml:"type"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// Comment is an issue comment.
type Comment struct {
	Self         *url.URL   `json:"self"                   yaml:"self"`
	ID           *int64     `json:"id,omitempty"           yaml:"id,omitempty"`
	Body         string     `json:"body"                   yaml:"body"`
	Author       *BasicUser `json:"author,omitempty"       yaml:"author,omitempty"`
	UpdateAuthor *BasicUser `json:"updateAuthor,omitempty" yaml:"updateAuthor,omitempty"`
	Created      time.Time  `json:"created"                yaml:"created"`
	Updated      time.Time  `json:"updated"                yaml:"updated"`
}

// Attachment is an issue attachment.
type Attachment struct {
	Self         *url.URL   `json:"self"                yaml:"self"`
	Filename     string     `json:"filename"            yaml:"filename"`
	Author       *BasicUser `json:"author,omitempty"    yaml:"author,omitempty"`
	Created      time.Time  `json:"created"             yaml:"created"`
	Size         int64      `json:"size"                yaml:"size"`
	MimeType     string     `json:"mimeType"            yaml:"mimeType"`
	ContentURI   *url.URL   `json:"content"             yaml:"content"`
	ThumbnailURI *url.URL   `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
}

// Worklog is a time tracking entry.
type Worklog struct {
	Self             *url.URL   `json:"self"                   yaml:"self"`
	IssueURI         *url.URL   `json:"issue"                  yaml:"issue"`
	Author           *BasicUser `json:"author,omitempty"       yaml:"author,omitempty"`
	UpdateAuthor     *BasicUser `json:"updateAuthor,omitempty" yaml:"updateAuthor,omitempty"`
	Comment          string     `json:"comment"                yaml:"comment"`
	Created          time.Time  `json:"created"                yaml:"created"`
	Updated          time.Time  `json:"updated"                yaml:"updated"`
	Started          time.Time  `json:"started"                yaml:"started"`
	TimeSpentSeconds int        `json:"timeSpentSeconds"       yaml:"timeSpentSeconds"`
	RoleLevel        *string    `json:"roleLevel,omitempty"    yaml:"roleLevel,omitempty"`
	GroupLevel       *string    `json:"groupLevel,omitempty"   yaml:"groupLevel,omitempty"`
}

// IssueLinkDirection tells which side of a link the issue is on.
type IssueLinkDirection string

// Link directions.
const (
	IssueLinkOutbound IssueLinkDirection = "OUTBOUND"
	IssueLinkInbound  IssueLinkDirection = "INBOUND"
)

// IssueLinkType describes a link between two issues.
type IssueLinkType struct {
	Name        string             `json:"name"        yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	Direction   IssueLinkDirection `json:"direction"   yaml:"direction"`
}

// IssueLink points from an issue to another one.
type IssueLink struct {
	TargetIssueKey string        `json:"targetIssueKey" yaml:"targetIssueKey"`
	TargetIssueURI *url.URL      `json:"targetIssueUri" yaml:"targetIssueUri"`
	Type           IssueLinkType `json:"type"           yaml:"type"`
}

// BasicIssue is the reference returned when an issue is created.
type BasicIssue struct {
	Self *url.URL `json:"self"         yaml:"self"`
	Key  string   `json:"key"          yaml:"key"`
	ID   *int64   `json:"id,omitempty" yaml:"id,omitempty"`
}

// BulkOperationError reports one failed element of a bulk create.
type BulkOperationError struct {
	FailedElementNumber int           `json:"failedElementNumber" yaml:"failedElementNumber"`
	Status              *int          `json:"status,omitempty"    yaml:"status,omitempty"`
	Errors              []ErrorRecord `json:"errors"              yaml:"errors"`
}

// BasicIssues is the result of a bulk create.
type BasicIssues struct {
	Issues []BasicIssue         `json:"issues" yaml:"issues"`
	Errors []BulkOperationError `json:"errors" yaml:"errors"`
}

// Issue is a full issue resource.
//
// Slices documented as optional are nil when the server did not send the
// field at all (e.g. issue linking disabled) and empty when it sent none.
type Issue struct {
	Self             *url.URL                       `json:"self"                       yaml:"self"`
	Key              string                         `json:"key"                        yaml:"key"`
	ID               *int64                         `json:"id,omitempty"               yaml:"id,omitempty"`
	Expandos         []string                       `json:"expand,omitempty"           yaml:"expand,omitempty"`
	Summary          string                         `json:"summary"                    yaml:"summary"`
	Description      *string                        `json:"description,omitempty"      yaml:"description,omitempty"`
	Project          BasicProject                   `json:"project"                    yaml:"project"`
	IssueType        IssueType                      `json:"issueType"                  yaml:"issueType"`
	Status           Status                         `json:"status"                     yaml:"status"`
	Priority         *BasicPriority                 `json:"priority,omitempty"         yaml:"priority,omitempty"`
	Resolution       *Resolution                    `json:"resolution,omitempty"       yaml:"resolution,omitempty"`
	Reporter         *BasicUser                     `json:"reporter,omitempty"         yaml:"reporter,omitempty"`
	Assignee         *BasicUser                     `json:"assignee,omitempty"         yaml:"assignee,omitempty"`
	Created          time.Time                      `json:"created"                    yaml:"created"`
	Updated          time.Time                      `json:"updated"                    yaml:"updated"`
	Watchers         *Watchers                      `json:"watchers,omitempty"         yaml:"watchers,omitempty"`
	FixVersions      []Version                      `json:"fixVersions,omitempty"      yaml:"fixVersions,omitempty"`
	AffectedVersions []Version                      `json:"affectedVersions,omitempty" yaml:"affectedVersions,omitempty"`
	Components       []BasicComponent               `json:"components"                 yaml:"components"`
	Labels           []string                       `json:"labels"                     yaml:"labels"`
	Comments         ExpandableProperty[Comment]    `json:"comments"                   yaml:"comments"`
	Worklogs         ExpandableProperty[Worklog]    `json:"worklogs"                   yaml:"worklogs"`
	Attachments      ExpandableProperty[Attachment] `json:"attachments"                yaml:"attachments"`
	IssueLinks       []IssueLink                    `json:"issueLinks,omitempty"       yaml:"issueLinks,omitempty"`
	Fields           []Field                        `json:"fields"                     yaml:"fields"`
	TransitionsURI   *url.URL                       `json:"transitions,omitempty"      yaml:"transitions,omitempty"`
}

// FieldByID returns the custom field with the given id.
func (i *Issue) FieldByID(id string) (Field, bool) {
	for _, field := range i.Fields {
		if field.ID == id {
			return field, true
		}
	}

	return Field{}, false
}

// BasicProjectRole is the lightweight role reference listed per project.
type BasicProjectRole struct {
	Self *url.URL `json:"self" yaml:"self"`
	Name string   `json:"name" yaml:"name"`
}

// RoleActor is a user or group assigned to a project role.
type RoleActor struct {
	ID          *int64   `json:"id,omitempty"        yaml:"id,omitempty"`
	DisplayName string   `json:"displayName"         yaml:"displayName"`
	Type        string   `json:"type"                yaml:"type"`
	Name        string   `json:"name"                yaml:"name"`
	AvatarURI   *url.URL `json:"avatarUrl,omitempty" yaml:"avatarUrl,omitempty"`
}

// ProjectRole is a full project role with its actors.
type ProjectRole struct {
	BasicProjectRole

	ID          *int64      `json:"id,omitempty"          yaml:"id,omitempty"`
	Description *string     `json:"description,omitempty" yaml:"description,omitempty"`
	Actors      []RoleActor `json:"actors"                yaml:"actors"`
}

// ServerInfo describes the remote server.
type ServerInfo struct {
	BaseURI        *url.URL   `json:"baseUrl"              yaml:"baseUrl"`
	Version        string     `json:"version"              yaml:"version"`
	VersionNumbers []int      `json:"versionNumbers"       yaml:"versionNumbers"`
	BuildNumber    int        `json:"buildNumber"          yaml:"buildNumber"`
	BuildDate      time.Time  `json:"buildDate"            yaml:"buildDate"`
	ServerTime     *time.Time `json:"serverTime,omitempty" yaml:"serverTime,omitempty"`
	ScmInfo        string     `json:"scmInfo"              yaml:"scmInfo"`
	ServerTitle    string     `json:"serverTitle"          yaml:"serverTitle"`
}

// AuditAssociatedItem is an object an audit record refers to.
type AuditAssociatedItem struct {
	ID         *string `json:"id,omitempty"         yaml:"id,omitempty"`
	Name       string  `json:"name"                 yaml:"name"`
	TypeName   string  `json:"typeName"             yaml:"typeName"`
	ParentID   *string `json:"parentId,omitempty"   yaml:"parentId,omitempty"`
	ParentName *string `json:"parentName,omitempty" yaml:"parentName,omitempty"`
}

// AuditChangedValue is one field change recorded by an audit record.
type AuditChangedValue struct {
	FieldName   string  `json:"fieldName"             yaml:"fieldName"`
	ChangedTo   *string `json:"changedTo,omitempty"   yaml:"changedTo,omitempty"`
	ChangedFrom *string `json:"changedFrom,omitempty" yaml:"changedFrom,omitempty"`
}

// AuditRecord is one entry of the audit log.
//
// AssociatedItems and ChangedValues are nil when the server did not send them
// (the record type does not support them) and empty when it sent none.
type AuditRecord struct {
	ID              int64                 `json:"id"                        yaml:"id"`
	Summary         string                `json:"summary"                   yaml:"summary"`
	RemoteAddress   *string               `json:"remoteAddress,omitempty"   yaml:"remoteAddress,omitempty"`
	AuthorKey       *string               `json:"authorKey,omitempty"       yaml:"authorKey,omitempty"`
	Created         time.Time             `json:"created"                   yaml:"created"`
	Category        string                `json:"category"                  yaml:"category"`
	EventSource     *string               `json:"eventSource,omitempty"     yaml:"eventSource,omitempty"`
	Description     *string               `json:"description,omitempty"     yaml:"description,omitempty"`
	ObjectItem      *AuditAssociatedItem  `json:"objectItem,omitempty"      yaml:"objectItem,omitempty"`
	AssociatedItems []AuditAssociatedItem `json:"associatedItems,omitempty" yaml:"associatedItems,omitempty"`
	ChangedValues   []AuditChangedValue   `json:"changedValues,omitempty"   yaml:"changedValues,omitempty"`
}

// AuditRecordsData is one page of audit records.
type AuditRecordsData struct {
	Offset  int           `json:"offset"  yaml:"offset"`
	Limit   int           `json:"limit"   yaml:"limit"`
	Total   int           `json:"total"   yaml:"total"`
	Records []AuditRecord `json:"records" yaml:"records"`
}
