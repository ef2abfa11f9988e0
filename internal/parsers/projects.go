package parsers

import (
	"github.com/fivetwenty-io/jira-client/internal/jsonparse"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// BasicProjectDecoder decodes a project reference.
var BasicProjectDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.BasicProject, error) {
	r := newReader(node)

	project := jira.BasicProject{
		Self: r.self(),
		Key:  r.str("key"),
		ID:   r.optInteger("id"),
		Name: r.nullable("name"),
	}

	return project, r.err
})

// BasicProjectsDecoder decodes the list of all projects.
var BasicProjectsDecoder = jsonparse.CollectionOf(BasicProjectDecoder)

// ProjectDecoder decodes a full project.
var ProjectDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (*jira.Project, error) {
	basic, err := BasicProjectDecoder.Decode(node)
	if err != nil {
		return nil, err
	}

	r := newReader(node)

	project := &jira.Project{
		BasicProject: basic,
		Description:  r.nullable("description"),
		Lead:         object(r, "lead", BasicUserDecoder),
		URI:          r.optURI("url"),
		Versions:     optArray(r, "versions", VersionDecoder),
		Components:   optArray(r, "components", BasicComponentDecoder),
		IssueTypes:   optArray(r, "issueTypes", IssueTypeDecoder),
	}

	if r.err != nil {
		return nil, r.err
	}

	return project, nil
})

// VersionDecoder decodes a project version.
var VersionDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.Version, error) {
	r := newReader(node)

	version := jira.Version{
		Self:        r.self(),
		ID:          r.optInteger("id"),
		Name:        r.str("name"),
		Description: r.nullable("description"),
		Archived:    r.boolean("archived"),
		Released:    r.boolean("released"),
		ReleaseDate: r.optDate("releaseDate"),
	}

	return version, r.err
})

// BasicComponentDecoder decodes a component reference.
var BasicComponentDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.BasicComponent, error) {
	r := newReader(node)

	component := jira.BasicComponent{
		Self:        r.self(),
		ID:          r.optInteger("id"),
		Name:        r.str("name"),
		Description: r.nullable("description"),
	}

	return component, r.err
})

// ComponentDecoder decodes a full component.
var ComponentDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (*jira.Component, error) {
	basic, err := BasicComponentDecoder.Decode(node)
	if err != nil {
		return nil, err
	}

	r := newReader(node)

	component := &jira.Component{
		BasicComponent: basic,
		Lead:           optObject(r, "lead", BasicUserDecoder),
	}

	if r.err != nil {
		return nil, r.err
	}

	return component, nil
})
