package parsers

import (
	"net/url"

	"github.com/fivetwenty-io/jira-client/internal/jsonparse"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// BasicUserDecoder decodes the user reference embedded in most resources.
var BasicUserDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.BasicUser, error) {
	r := newReader(node)

	user := jira.BasicUser{
		Self:        r.self(),
		Name:        r.str("name"),
		DisplayName: r.nullable("displayName"),
	}

	return user, r.err
})

// GroupDecoder decodes a group reference.
var GroupDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.Group, error) {
	r := newReader(node)

	group := jira.Group{
		Self: r.optURI("self"),
		Name: r.str("name"),
	}

	return group, r.err
})

var applicationRoleDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (string, error) {
	r := newReader(node)
	name := r.optional("name", r.optional("key", ""))

	return name, r.err
})

// UserDecoder decodes a full user.
var UserDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (*jira.User, error) {
	basic, err := BasicUserDecoder.Decode(node)
	if err != nil {
		return nil, err
	}

	r := newReader(node)

	user := &jira.User{
		BasicUser:    basic,
		EmailAddress: r.nullable("emailAddress"),
		Active:       r.optBoolean("active", true),
		TimeZone:     r.nullable("timeZone"),
		AvatarURIs:   avatarURIs(r),
		Groups:       optExpandable(r, "groups", GroupDecoder),
		Roles:        optExpandable(r, "applicationRoles", applicationRoleDecoder),
	}

	if r.err != nil {
		return nil, r.err
	}

	return user, nil
})

func avatarURIs(r *reader) map[string]*url.URL {
	if r.err != nil {
		return nil
	}

	avatars, ok, err := jsonparse.NestedOptionalObject(r.node, "avatarUrls")
	if err != nil || !ok {
		r.fail(err)

		return nil
	}

	uris := make(map[string]*url.URL)

	r.fail(avatars.ForEach(func(size string, value jsonparse.Node) error {
		uri, err := jsonparse.ParseURI(value.Text())
		if err != nil {
			return err
		}

		uris[size] = uri

		return nil
	}))

	return uris
}
