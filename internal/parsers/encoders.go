package parsers

import (
	"strconv"

	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/internal/rest"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
	"github.com/goccy/go-json"
)

type versionDocument struct {
	Name        string `json:"name"`
	Project     string `json:"project"`
	Description string `json:"description,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	Archived    bool   `json:"archived"`
	Released    bool   `json:"released"`
}

// VersionInputEncoder encodes a version create or update.
var VersionInputEncoder = rest.JSONEncoder(func(input jira.VersionInput) (any, error) {
	doc := versionDocument{
		Name:        input.Name,
		Project:     input.ProjectKey,
		Description: input.Description,
		Archived:    input.Archived,
		Released:    input.Released,
	}

	if input.ReleaseDate != nil {
		doc.ReleaseDate = input.ReleaseDate.Format(constants.DateLayout)
	}

	return doc, nil
})

type componentDocument struct {
	Name         string `json:"name"`
	Project      string `json:"project"`
	Description  string `json:"description,omitempty"`
	LeadUserName string `json:"leadUserName,omitempty"`
	AssigneeType string `json:"assigneeType,omitempty"`
}

// ComponentInputEncoder encodes a component create for projectKey.
func ComponentInputEncoder(projectKey string) rest.Encoder[jira.ComponentInput] {
	return rest.JSONEncoder(func(input jira.ComponentInput) (any, error) {
		return componentDocument{
			Name:         input.Name,
			Project:      projectKey,
			Description:  input.Description,
			LeadUserName: input.LeadUsername,
			AssigneeType: string(input.AssigneeType),
		}, nil
	})
}

type keyRef struct {
	Key string `json:"key"`
}

type idRef struct {
	ID string `json:"id"`
}

type nameRef struct {
	Name string `json:"name"`
}

type issueDocument struct {
	Fields map[string]any `json:"fields"`
}

func issueFields(input jira.IssueInput) map[string]any {
	fields := make(map[string]any, len(input.Extra)+8)

	for id, value := range input.Extra {
		fields[id] = value
	}

	fields["project"] = keyRef{Key: input.ProjectKey}
	fields["issuetype"] = idRef{ID: strconv.FormatInt(input.IssueTypeID, 10)}
	fields["summary"] = input.Summary

	if input.Description != "" {
		fields["description"] = input.Description
	}

	if input.Assignee != "" {
		fields["assignee"] = nameRef{Name: input.Assignee}
	}

	if input.Priority != "" {
		fields["priority"] = nameRef{Name: input.Priority}
	}

	if len(input.Labels) > 0 {
		fields["labels"] = input.Labels
	}

	if len(input.ComponentIDs) > 0 {
		components := make([]idRef, 0, len(input.ComponentIDs))
		for _, id := range input.ComponentIDs {
			components = append(components, idRef{ID: strconv.FormatInt(id, 10)})
		}

		fields["components"] = components
	}

	return fields
}

// IssueInputEncoder encodes an issue create.
var IssueInputEncoder = rest.JSONEncoder(func(input jira.IssueInput) (any, error) {
	return issueDocument{Fields: issueFields(input)}, nil
})

// IssueInputsEncoder encodes a bulk issue create.
var IssueInputsEncoder = rest.JSONEncoder(func(inputs []jira.IssueInput) (any, error) {
	updates := make([]issueDocument, 0, len(inputs))
	for _, input := range inputs {
		updates = append(updates, issueDocument{Fields: issueFields(input)})
	}

	return struct {
		IssueUpdates []issueDocument `json:"issueUpdates"`
	}{IssueUpdates: updates}, nil
})

// CommentInputEncoder encodes a new comment.
var CommentInputEncoder = rest.JSONEncoder(func(input jira.CommentInput) (any, error) {
	return input, nil
})

// AuditRecordInputEncoder encodes a new audit record.
var AuditRecordInputEncoder = rest.JSONEncoder(func(input jira.AuditRecordInput) (any, error) {
	return input, nil
})

// UsernameEncoder encodes a bare username as a JSON string, the body the
// watcher endpoint expects.
var UsernameEncoder rest.Encoder[string] = func(username string) ([]byte, error) {
	return json.Marshal(username)
}
