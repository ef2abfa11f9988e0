package jsonparse

import (
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// walk resolves every path segment but the last, each of which must be an
// object, and returns the value of the last segment.
func walk(node Node, path []string) (Node, error) {
	if len(path) == 0 {
		return node, nil
	}

	current := node

	for _, segment := range path {
		if !current.IsObject() {
			return Node{}, &jira.DecodeError{
				Path:    current.path,
				Message: "cannot resolve segment \"" + segment + "\": expected object, got " + current.kindName(),
			}
		}

		next, err := Field(current, segment)
		if err != nil {
			return Node{}, err
		}

		current = next
	}

	return current, nil
}

// NestedObject resolves path and requires an object at its end.
func NestedObject(node Node, path ...string) (Node, error) {
	target, err := walk(node, path)
	if err != nil {
		return Node{}, err
	}

	if !target.IsObject() {
		return Node{}, target.typeError("object")
	}

	return target, nil
}

// NestedArray resolves path and requires an array at its end.
func NestedArray(node Node, path ...string) (Node, error) {
	target, err := walk(node, path)
	if err != nil {
		return Node{}, err
	}

	if !target.IsArray() {
		return Node{}, target.typeError("array")
	}

	return target, nil
}

// NestedString resolves path and stringifies the scalar at its end.
func NestedString(node Node, path ...string) (string, error) {
	target, err := walk(node, path)
	if err != nil {
		return "", err
	}

	if !target.IsScalar() {
		return "", target.typeError("string")
	}

	return target.Text(), nil
}

// NestedBoolean resolves path and reads the boolean at its end.
func NestedBoolean(node Node, path ...string) (bool, error) {
	target, err := walk(node, path)
	if err != nil {
		return false, err
	}

	return target.Bool()
}

// NestedOptionalObject returns false when key is absent or null, and fails
// when it holds anything but an object.
func NestedOptionalObject(node Node, key string) (Node, bool, error) {
	child, ok := OptionalField(node, key)
	if !ok {
		return Node{}, false, nil
	}

	if !child.IsObject() {
		return Node{}, false, child.typeError("object")
	}

	return child, true, nil
}

// NestedOptionalArray returns false when key is absent or null, and fails
// when it holds anything but an array.
func NestedOptionalArray(node Node, key string) (Node, bool, error) {
	child, ok := OptionalField(node, key)
	if !ok {
		return Node{}, false, nil
	}

	if !child.IsArray() {
		return Node{}, false, child.typeError("array")
	}

	return child, true, nil
}
