// Package jsonparse provides navigation and typed decoding over JSON
// payloads returned by the server.
//
// A Node distinguishes three situations for an object key: the key is
// absent, the key is present with an explicit null, or the key holds a
// value. Required accessors fail on the first two, nullable accessors map
// both to nil, and optional accessors map both to a default.
package jsonparse

import (
	"strconv"

	"github.com/fivetwenty-io/jira-client/pkg/jira"
	"github.com/tidwall/gjson"
)

const rootPath = "$"

// Node is a JSON value together with its location in the parsed document.
type Node struct {
	result gjson.Result
	path   string
}

// Parse parses body into a Node of any shape.
func Parse(body []byte) (Node, error) {
	if !gjson.ValidBytes(body) {
		return Node{}, &jira.DecodeError{Path: rootPath, Message: "invalid JSON document"}
	}

	return Node{result: gjson.ParseBytes(body), path: rootPath}, nil
}

// ParseObject parses body and requires it to be a JSON object.
func ParseObject(body []byte) (Node, error) {
	node, err := Parse(body)
	if err != nil {
		return Node{}, err
	}

	if !node.IsObject() {
		return Node{}, node.typeError("object")
	}

	return node, nil
}

// ParseArray parses body and requires it to be a JSON array.
func ParseArray(body []byte) (Node, error) {
	node, err := Parse(body)
	if err != nil {
		return Node{}, err
	}

	if !node.IsArray() {
		return Node{}, node.typeError("array")
	}

	return node, nil
}

// Path returns the location of the node, e.g. "$.fields.project".
func (n Node) Path() string {
	return n.path
}

// Raw returns the raw JSON text of the node.
func (n Node) Raw() string {
	return n.result.Raw
}

// IsObject reports whether the node is a JSON object.
func (n Node) IsObject() bool {
	return n.result.IsObject()
}

// IsArray reports whether the node is a JSON array.
func (n Node) IsArray() bool {
	return n.result.IsArray()
}

// IsNull reports whether the node is the JSON null literal.
func (n Node) IsNull() bool {
	return n.result.Type == gjson.Null && n.result.Raw != ""
}

// IsScalar reports whether the node is a string, number, boolean or null.
func (n Node) IsScalar() bool {
	return !n.IsObject() && !n.IsArray()
}

// Get returns the member stored under key. The boolean is false when the
// key is absent; an explicit null is returned as a present null node.
func (n Node) Get(key string) (Node, bool) {
	if !n.IsObject() {
		return Node{}, false
	}

	var (
		found gjson.Result
		ok    bool
	)

	// Exact key comparison, gjson path syntax would treat '.', '*' and '?'
	// in keys as operators.
	n.result.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
			ok = true

			return false
		}

		return true
	})

	if !ok {
		return Node{}, false
	}

	return Node{result: found, path: n.path + "." + key}, true
}

// Has reports whether key is present, null or not.
func (n Node) Has(key string) bool {
	_, ok := n.Get(key)

	return ok
}

// ForEach calls fn for every member of an object in document order and
// stops at the first error.
func (n Node) ForEach(fn func(key string, value Node) error) error {
	if !n.IsObject() {
		return n.typeError("object")
	}

	var err error

	n.result.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		err = fn(key, Node{result: v, path: n.path + "." + key})

		return err == nil
	})

	return err
}

// Elements returns the elements of an array node in order.
func (n Node) Elements() ([]Node, error) {
	if !n.IsArray() {
		return nil, n.typeError("array")
	}

	items := n.result.Array()
	nodes := make([]Node, 0, len(items))

	for i, item := range items {
		nodes = append(nodes, Node{result: item, path: n.path + "[" + strconv.Itoa(i) + "]"})
	}

	return nodes, nil
}

// Text stringifies a non-null node: strings yield their content, any other
// value its raw JSON text.
func (n Node) Text() string {
	if n.result.Type == gjson.String {
		return n.result.Str
	}

	return n.result.Raw
}

// Int converts the node to an integer. Integral numbers and numeric strings
// are accepted.
func (n Node) Int() (int64, error) {
	var raw string

	switch n.result.Type {
	case gjson.Number:
		raw = n.result.Raw
	case gjson.String:
		raw = n.result.Str
	default:
		return 0, n.typeError("integer")
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &jira.DecodeError{Path: n.path, Message: "malformed integer", Cause: err}
	}

	return value, nil
}

// Float converts the node to a float. Numbers and numeric strings are accepted.
func (n Node) Float() (float64, error) {
	var raw string

	switch n.result.Type {
	case gjson.Number:
		raw = n.result.Raw
	case gjson.String:
		raw = n.result.Str
	default:
		return 0, n.typeError("number")
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &jira.DecodeError{Path: n.path, Message: "malformed number", Cause: err}
	}

	return value, nil
}

// Bool converts the node to a boolean. The strings "true" and "false" are
// accepted as well.
func (n Node) Bool() (bool, error) {
	switch n.result.Type {
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	case gjson.String:
		value, err := strconv.ParseBool(n.result.Str)
		if err == nil {
			return value, nil
		}
	case gjson.Null, gjson.Number, gjson.JSON:
	}

	return false, n.typeError("boolean")
}

// Value returns the node as a plain Go value (map, slice, string, float64,
// bool or nil).
func (n Node) Value() any {
	return n.result.Value()
}

func (n Node) typeError(expected string) *jira.DecodeError {
	return &jira.DecodeError{Path: n.path, Message: "expected " + expected + ", got " + n.kindName()}
}

func (n Node) kindName() string {
	switch {
	case n.IsObject():
		return "object"
	case n.IsArray():
		return "array"
	case n.IsNull():
		return "null"
	}

	switch n.result.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Null, gjson.JSON:
	}

	return "nothing"
}
