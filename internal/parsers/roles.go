package parsers

import (
	"github.com/fivetwenty-io/jira-client/internal/jsonparse"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// BasicProjectRolesDecoder decodes the role list of a project, an object
// mapping each role name to the role's URI.
var BasicProjectRolesDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) ([]jira.BasicProjectRole, error) {
	roles := make([]jira.BasicProjectRole, 0)

	err := node.ForEach(func(name string, value jsonparse.Node) error {
		if value.IsNull() || !value.IsScalar() {
			return &jira.DecodeError{Path: value.Path(), Message: "role URI is not a string"}
		}

		uri, err := jsonparse.ParseURI(value.Text())
		if err != nil {
			return err
		}

		roles = append(roles, jira.BasicProjectRole{Self: uri, Name: name})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return roles, nil
})

// RoleActorDecoder decodes a role actor.
var RoleActorDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.RoleActor, error) {
	r := newReader(node)

	actor := jira.RoleActor{
		ID:          r.optInteger("id"),
		DisplayName: r.str("displayName"),
		Type:        r.str("type"),
		Name:        r.str("name"),
		AvatarURI:   r.optURI("avatarUrl"),
	}

	return actor, r.err
})

// ProjectRoleDecoder decodes a full project role.
var ProjectRoleDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (*jira.ProjectRole, error) {
	r := newReader(node)

	role := &jira.ProjectRole{
		BasicProjectRole: jira.BasicProjectRole{
			Self: r.self(),
			Name: r.str("name"),
		},
		ID:          r.optInteger("id"),
		Description: r.nullable("description"),
		Actors:      optArray(r, "actors", RoleActorDecoder),
	}

	if r.err != nil {
		return nil, r.err
	}

	if role.Actors == nil {
		role.Actors = []jira.RoleActor{}
	}

	return role, nil
})
