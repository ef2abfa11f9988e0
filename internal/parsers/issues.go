package parsers

import (
	"strings"

	"github.com/fivetwenty-io/jira-client/internal/jsonparse"
	"github.com/fivetwenty-io/jira-client/internal/rest"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// WatchersDecoder decodes the watchers of an issue. The "watches" summary
// embedded in an issue has no watcher list; WatcherList is nil then.
var WatchersDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (*jira.Watchers, error) {
	r := newReader(node)

	watchers := &jira.Watchers{
		Self:        r.self(),
		IsWatching:  r.boolean("isWatching"),
		WatchCount:  int(r.integer("watchCount")),
		WatcherList: optArray(r, "watchers", BasicUserDecoder),
	}

	if r.err != nil {
		return nil, r.err
	}

	return watchers, nil
})

// CommentDecoder decodes an issue comment.
var CommentDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.Comment, error) {
	r := newReader(node)

	comment := jira.Comment{
		Self:         r.self(),
		ID:           r.optInteger("id"),
		Body:         r.optional("body", ""),
		Author:       optObject(r, "author", BasicUserDecoder),
		UpdateAuthor: optObject(r, "updateAuthor", BasicUserDecoder),
		Created:      r.dateTime("created"),
		Updated:      r.dateTime("updated"),
	}

	return comment, r.err
})

// AttachmentDecoder decodes an issue attachment.
var AttachmentDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.Attachment, error) {
	r := newReader(node)

	attachment := jira.Attachment{
		Self:         r.self(),
		Filename:     r.str("filename"),
		Author:       optObject(r, "author", BasicUserDecoder),
		Created:      r.dateTime("created"),
		Size:         r.integer("size"),
		MimeType:     r.str("mimeType"),
		ContentURI:   r.uri("content"),
		ThumbnailURI: r.optURI("thumbnail"),
	}

	return attachment, r.err
})

// WorklogDecoder decodes a worklog entry.
var WorklogDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.Worklog, error) {
	r := newReader(node)

	worklog := jira.Worklog{
		Self:             r.self(),
		IssueURI:         r.optURI("issue"),
		Author:           optObject(r, "author", BasicUserDecoder),
		UpdateAuthor:     optObject(r, "updateAuthor", BasicUserDecoder),
		Comment:          r.optional("comment", ""),
		Created:          r.dateTime("created"),
		Updated:          r.dateTime("updated"),
		Started:          r.dateTime("started"),
		TimeSpentSeconds: int(r.integer("timeSpentSeconds")),
	}

	if visibility := optObject(r, "visibility", visibilityDecoder); visibility != nil {
		switch visibility.Type {
		case "role":
			worklog.RoleLevel = &visibility.Value
		case "group":
			worklog.GroupLevel = &visibility.Value
		}
	}

	return worklog, r.err
})

var visibilityDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.Visibility, error) {
	r := newReader(node)

	visibility := jira.Visibility{
		Type:  r.str("type"),
		Value: r.str("value"),
	}

	return visibility, r.err
})

// IssueLinkDecoder decodes a link from an issue to another one. The
// direction follows whichever of "outwardIssue" and "inwardIssue" is set.
var IssueLinkDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.IssueLink, error) {
	linkType, err := jsonparse.NestedObject(node, "type")
	if err != nil {
		return jira.IssueLink{}, err
	}

	t := newReader(linkType)
	link := jira.IssueLink{Type: jira.IssueLinkType{Name: t.str("name")}}

	target, outbound, err := jsonparse.NestedOptionalObject(node, "outwardIssue")
	if err != nil {
		return jira.IssueLink{}, err
	}

	if outbound {
		link.Type.Direction = jira.IssueLinkOutbound
		link.Type.Description = t.optional("outward", "")
	} else {
		target, err = jsonparse.NestedObject(node, "inwardIssue")
		if err != nil {
			return jira.IssueLink{}, err
		}

		link.Type.Direction = jira.IssueLinkInbound
		link.Type.Description = t.optional("inward", "")
	}

	if t.err != nil {
		return jira.IssueLink{}, t.err
	}

	r := newReader(target)
	link.TargetIssueKey = r.str("key")
	link.TargetIssueURI = r.self()

	return link, r.err
})

// IssueDecoder decodes full issues using the field type registry it was
// built with for non-system fields.
type IssueDecoder struct {
	fields *FieldDecoder
}

// NewIssueDecoder creates an issue decoder.
func NewIssueDecoder(fields *FieldDecoder) *IssueDecoder {
	if fields == nil {
		fields = NewFieldDecoder(DefaultFieldTypes())
	}

	return &IssueDecoder{fields: fields}
}

// Decoder returns the object decoder for issues.
func (d *IssueDecoder) Decoder() jsonparse.Decoder[*jira.Issue] {
	return jsonparse.ObjectDecoder(d.decode)
}

func (d *IssueDecoder) decode(node jsonparse.Node) (*jira.Issue, error) {
	fields, err := jsonparse.NestedObject(node, "fields")
	if err != nil {
		return nil, err
	}

	r := newReader(node)
	f := newReader(fields)

	issue := &jira.Issue{
		Self:             r.self(),
		Key:              r.str("key"),
		ID:               r.optInteger("id"),
		Expandos:         expandos(r.optional("expand", "")),
		TransitionsURI:   r.optURI("transitions"),
		Summary:          f.str("summary"),
		Description:      f.nullable("description"),
		Project:          object(f, "project", BasicProjectDecoder),
		IssueType:        object(f, "issuetype", IssueTypeDecoder),
		Status:           object(f, "status", StatusDecoder),
		Priority:         optObject(f, "priority", BasicPriorityDecoder),
		Resolution:       optObject(f, "resolution", ResolutionDecoder),
		Reporter:         optObject(f, "reporter", BasicUserDecoder),
		Assignee:         optObject(f, "assignee", BasicUserDecoder),
		Created:          f.dateTime("created"),
		Updated:          f.dateTime("updated"),
		Watchers:         flatten(optObject(f, "watches", WatchersDecoder)),
		FixVersions:      optArray(f, "fixVersions", VersionDecoder),
		AffectedVersions: optArray(f, "versions", VersionDecoder),
		Components:       optArray(f, "components", BasicComponentDecoder),
		Labels:           f.optStrings("labels"),
		Comments:         optExpandable(f, "comment", CommentDecoder),
		Worklogs:         optExpandable(f, "worklog", WorklogDecoder),
		Attachments:      optExpandable(f, "attachment", AttachmentDecoder),
		IssueLinks:       optArray(f, "issuelinks", IssueLinkDecoder),
	}

	if r.err != nil {
		return nil, r.err
	}

	if f.err != nil {
		return nil, f.err
	}

	issue.Fields, err = d.fields.IssueFields(node)
	if err != nil {
		return nil, err
	}

	return issue, nil
}

func flatten[T any](value **T) *T {
	if value == nil {
		return nil
	}

	return *value
}

func expandos(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))

	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}

	return values
}

// BasicIssueDecoder decodes the reference returned by issue creation.
var BasicIssueDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.BasicIssue, error) {
	r := newReader(node)

	issue := jira.BasicIssue{
		Self: r.self(),
		Key:  r.str("key"),
		ID:   r.optInteger("id"),
	}

	return issue, r.err
})

var bulkOperationErrorDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.BulkOperationError, error) {
	r := newReader(node)

	result := jira.BulkOperationError{
		FailedElementNumber: int(r.integer("failedElementNumber")),
	}

	if status := r.optInteger("status"); status != nil {
		code := int(*status)
		result.Status = &code
	}

	if r.err != nil {
		return jira.BulkOperationError{}, r.err
	}

	elementErrors, ok, err := jsonparse.NestedOptionalObject(node, "elementErrors")
	if err != nil {
		return jira.BulkOperationError{}, err
	}

	result.Errors = []jira.ErrorRecord{}

	if ok {
		result.Errors, err = rest.ExtractErrorsFrom(elementErrors)
		if err != nil {
			return jira.BulkOperationError{}, err
		}
	}

	return result, nil
})

// BasicIssuesDecoder decodes the result of a bulk create.
var BasicIssuesDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (*jira.BasicIssues, error) {
	r := newReader(node)

	result := &jira.BasicIssues{
		Issues: array(r, "issues", BasicIssueDecoder),
		Errors: optArray(r, "errors", bulkOperationErrorDecoder),
	}

	if r.err != nil {
		return nil, r.err
	}

	if result.Errors == nil {
		result.Errors = []jira.BulkOperationError{}
	}

	return result, nil
})
