package jsonparse

import (
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// Field returns the member under key, failing when it is absent or null.
func Field(node Node, key string) (Node, error) {
	if !node.IsObject() {
		return Node{}, node.typeError("object")
	}

	child, ok := node.Get(key)
	if !ok {
		return Node{}, &jira.DecodeError{Path: node.path + "." + key, Message: "required field missing"}
	}

	if child.IsNull() {
		return Node{}, &jira.DecodeError{Path: child.path, Message: "required field is null"}
	}

	return child, nil
}

// OptionalField returns the member under key and false when it is absent
// or null.
func OptionalField(node Node, key string) (Node, bool) {
	child, ok := node.Get(key)
	if !ok || child.IsNull() {
		return Node{}, false
	}

	return child, true
}

// RequiredString reads a non-null scalar and stringifies it.
func RequiredString(node Node, key string) (string, error) {
	child, err := Field(node, key)
	if err != nil {
		return "", err
	}

	if !child.IsScalar() {
		return "", child.typeError("string")
	}

	return child.Text(), nil
}

// NullableString returns nil when key is absent or null, and the
// stringified value otherwise.
func NullableString(node Node, key string) *string {
	child, ok := OptionalField(node, key)
	if !ok {
		return nil
	}

	text := child.Text()

	return &text
}

// OptionalString is NullableString with a default for the absent case.
func OptionalString(node Node, key, defaultValue string) string {
	if value := NullableString(node, key); value != nil {
		return *value
	}

	return defaultValue
}

// RequiredInt reads an integer; numeric strings are accepted.
func RequiredInt(node Node, key string) (int64, error) {
	child, err := Field(node, key)
	if err != nil {
		return 0, err
	}

	return child.Int()
}

// OptionalInt returns nil when key is absent or null.
func OptionalInt(node Node, key string) (*int64, error) {
	child, ok := OptionalField(node, key)
	if !ok {
		return nil, nil
	}

	value, err := child.Int()
	if err != nil {
		return nil, err
	}

	return &value, nil
}

// RequiredBool reads a boolean.
func RequiredBool(node Node, key string) (bool, error) {
	child, err := Field(node, key)
	if err != nil {
		return false, err
	}

	return child.Bool()
}

// OptionalBool returns defaultValue when key is absent or null.
func OptionalBool(node Node, key string, defaultValue bool) (bool, error) {
	child, ok := OptionalField(node, key)
	if !ok {
		return defaultValue, nil
	}

	return child.Bool()
}

// StringCollection reads a required array of strings.
func StringCollection(node Node, key string) ([]string, error) {
	child, err := NestedArray(node, key)
	if err != nil {
		return nil, err
	}

	elements, err := child.Elements()
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(elements))

	for _, element := range elements {
		if element.IsNull() || !element.IsScalar() {
			return nil, element.typeError("string")
		}

		values = append(values, element.Text())
	}

	return values, nil
}

// SelfURI reads the "self" link every resource carries.
func SelfURI(node Node) (*url.URL, error) {
	return RequiredURI(node, "self")
}

// RequiredURI reads and parses a URI.
func RequiredURI(node Node, key string) (*url.URL, error) {
	child, err := Field(node, key)
	if err != nil {
		return nil, err
	}

	return parseURIAt(child.path, child.Text())
}

// OptionalURI returns nil when key is absent or null.
func OptionalURI(node Node, key string) (*url.URL, error) {
	child, ok := OptionalField(node, key)
	if !ok {
		return nil, nil
	}

	return parseURIAt(child.path, child.Text())
}

// ParseURI parses raw as a URI reference.
func ParseURI(raw string) (*url.URL, error) {
	return parseURIAt("", raw)
}

func parseURIAt(path, raw string) (*url.URL, error) {
	uri, err := url.Parse(raw)
	if err != nil {
		return nil, &jira.DecodeError{Path: path, Message: "malformed URI", Cause: err}
	}

	return uri, nil
}

var dateTimeLayouts = []string{
	constants.DateTimeLayout,
	constants.DateTimeLayoutColon,
}

// ParseDateTime strictly parses an ISO-8601 date-time with millisecond
// precision and an explicit offset ("2010-08-17T16:53:15.848+0200",
// "...+02:00" or "...Z"). Anything else fails.
func ParseDateTime(raw string) (time.Time, error) {
	return parseDateTimeAt("", raw)
}

func parseDateTimeAt(path, raw string) (time.Time, error) {
	var firstErr error

	for _, layout := range dateTimeLayouts {
		value, err := time.Parse(layout, raw)
		if err == nil {
			return value, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	return time.Time{}, &jira.DecodeError{Path: path, Message: "malformed date-time", Cause: firstErr}
}

// ParseDate parses a calendar date ("2010-08-25"). A full date-time is
// accepted too.
func ParseDate(raw string) (time.Time, error) {
	if strings.Contains(raw, "T") {
		return ParseDateTime(raw)
	}

	value, err := time.Parse(constants.DateLayout, raw)
	if err != nil {
		return time.Time{}, &jira.DecodeError{Message: "malformed date", Cause: err}
	}

	return value, nil
}

// RequiredDateTime reads and parses a date-time.
func RequiredDateTime(node Node, key string) (time.Time, error) {
	child, err := Field(node, key)
	if err != nil {
		return time.Time{}, err
	}

	return parseDateTimeAt(child.path, child.Text())
}

// OptionalDateTime returns nil when key is absent or null.
func OptionalDateTime(node Node, key string) (*time.Time, error) {
	child, ok := OptionalField(node, key)
	if !ok {
		return nil, nil
	}

	value, err := parseDateTimeAt(child.path, child.Text())
	if err != nil {
		return nil, err
	}

	return &value, nil
}

// OptionalDate returns nil when key is absent or null.
func OptionalDate(node Node, key string) (*time.Time, error) {
	child, ok := OptionalField(node, key)
	if !ok {
		return nil, nil
	}

	value, err := ParseDate(child.Text())
	if err != nil {
		return nil, withPath(err, child.path)
	}

	return &value, nil
}

func withPath(err error, path string) error {
	if decodeErr, ok := err.(*jira.DecodeError); ok && decodeErr.Path == "" { //nolint:errorlint
		decodeErr.Path = path
	}

	return err
}
