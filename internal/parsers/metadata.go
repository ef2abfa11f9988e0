package parsers

import (
	"github.com/fivetwenty-io/jira-client/internal/jsonparse"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// BasicPriorityDecoder decodes a priority reference.
var BasicPriorityDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.BasicPriority, error) {
	r := newReader(node)

	priority := jira.BasicPriority{
		Self: r.self(),
		ID:   r.optInteger("id"),
		Name: r.str("name"),
	}

	return priority, r.err
})

// PriorityDecoder decodes a full priority.
var PriorityDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.Priority, error) {
	basic, err := BasicPriorityDecoder.Decode(node)
	if err != nil {
		return jira.Priority{}, err
	}

	r := newReader(node)

	priority := jira.Priority{
		BasicPriority: basic,
		StatusColor:   r.str("statusColor"),
		Description:   r.str("description"),
		IconURI:       r.optURI("iconUrl"),
	}

	return priority, r.err
})

// ResolutionDecoder decodes a resolution.
var ResolutionDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.Resolution, error) {
	r := newReader(node)

	resolution := jira.Resolution{
		Self:        r.self(),
		ID:          r.optInteger("id"),
		Name:        r.str("name"),
		Description: r.nullable("description"),
	}

	return resolution, r.err
})

// IssueTypeDecoder decodes an issue type.
var IssueTypeDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.IssueType, error) {
	r := newReader(node)

	issueType := jira.IssueType{
		Self:        r.self(),
		ID:          r.optInteger("id"),
		Name:        r.str("name"),
		IsSubtask:   r.boolean("subtask"),
		Description: r.nullable("description"),
		IconURI:     r.optURI("iconUrl"),
	}

	return issueType, r.err
})

// StatusDecoder decodes an issue status.
var StatusDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.Status, error) {
	r := newReader(node)

	status := jira.Status{
		Self:        r.self(),
		ID:          r.optInteger("id"),
		Name:        r.str("name"),
		Description: r.nullable("description"),
		IconURI:     r.optURI("iconUrl"),
	}

	return status, r.err
})

// ServerInfoDecoder decodes the server description.
var ServerInfoDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (*jira.ServerInfo, error) {
	r := newReader(node)

	info := &jira.ServerInfo{
		BaseURI:        r.uri("baseUrl"),
		Version:        r.str("version"),
		VersionNumbers: versionNumbers(r),
		BuildNumber:    int(r.integer("buildNumber")),
		BuildDate:      r.dateTime("buildDate"),
		ServerTime:     r.optDateTime("serverTime"),
		ScmInfo:        r.optional("scmInfo", ""),
		ServerTitle:    r.optional("serverTitle", ""),
	}

	if r.err != nil {
		return nil, r.err
	}

	return info, nil
})

func versionNumbers(r *reader) []int {
	if r.err != nil {
		return nil
	}

	array, ok, err := jsonparse.NestedOptionalArray(r.node, "versionNumbers")
	if err != nil || !ok {
		r.fail(err)

		return nil
	}

	elements, err := array.Elements()
	if err != nil {
		r.fail(err)

		return nil
	}

	numbers := make([]int, 0, len(elements))

	for _, element := range elements {
		value, err := element.Int()
		if err != nil {
			r.fail(err)

			return nil
		}

		numbers = append(numbers, int(value))
	}

	return numbers
}
