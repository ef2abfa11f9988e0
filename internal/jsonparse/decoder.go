package jsonparse

import (
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// Kind is the document shape a decoder consumes.
type Kind int

// Decoder kinds.
const (
	KindObject Kind = iota
	KindArray
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindArray {
		return "array"
	}

	return "object"
}

// Decoder turns an object or array node into a T. The kind is fixed when the
// decoder is built and decides how a response body is parsed.
type Decoder[T any] struct {
	kind Kind
	fn   func(Node) (T, error)
}

// ObjectDecoder builds a decoder consuming JSON objects.
func ObjectDecoder[T any](fn func(Node) (T, error)) Decoder[T] {
	return Decoder[T]{kind: KindObject, fn: fn}
}

// ArrayDecoder builds a decoder consuming JSON arrays.
func ArrayDecoder[T any](fn func(Node) (T, error)) Decoder[T] {
	return Decoder[T]{kind: KindArray, fn: fn}
}

// Kind returns the shape the decoder consumes.
func (d Decoder[T]) Kind() Kind {
	return d.kind
}

// Decode checks the node shape and decodes it.
func (d Decoder[T]) Decode(node Node) (T, error) {
	var zero T

	switch d.kind {
	case KindArray:
		if !node.IsArray() {
			return zero, node.typeError("array")
		}
	case KindObject:
		if !node.IsObject() {
			return zero, node.typeError("object")
		}
	}

	return d.fn(node)
}

// DecodeBody parses body as an object or an array according to the
// decoder's kind, then decodes it.
func (d Decoder[T]) DecodeBody(body []byte) (T, error) {
	var (
		node Node
		err  error
		zero T
	)

	if d.kind == KindArray {
		node, err = ParseArray(body)
	} else {
		node, err = ParseObject(body)
	}

	if err != nil {
		return zero, err
	}

	return d.fn(node)
}

// CollectionOf lifts an element decoder to an array decoder preserving
// element order. One bad element fails the whole collection.
func CollectionOf[T any](element Decoder[T]) Decoder[[]T] {
	return ArrayDecoder(func(node Node) ([]T, error) {
		return decodeElements(node, element)
	})
}

// DecodeArray decodes the required array under key with element.
func DecodeArray[T any](node Node, key string, element Decoder[T]) ([]T, error) {
	array, err := NestedArray(node, key)
	if err != nil {
		return nil, err
	}

	return decodeElements(array, element)
}

// DecodeOptionalArray is DecodeArray returning nil when key is absent or null.
func DecodeOptionalArray[T any](node Node, key string, element Decoder[T]) ([]T, error) {
	array, ok, err := NestedOptionalArray(node, key)
	if err != nil || !ok {
		return nil, err
	}

	return decodeElements(array, element)
}

// DecodeObject decodes the required object under key.
func DecodeObject[T any](node Node, key string, decoder Decoder[T]) (T, error) {
	child, err := Field(node, key)
	if err != nil {
		var zero T

		return zero, err
	}

	return decoder.Decode(child)
}

// DecodeOptionalObject returns nil when key is absent or null.
func DecodeOptionalObject[T any](node Node, key string, decoder Decoder[T]) (*T, error) {
	child, ok := OptionalField(node, key)
	if !ok {
		return nil, nil
	}

	value, err := decoder.Decode(child)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func decodeElements[T any](array Node, element Decoder[T]) ([]T, error) {
	elements, err := array.Elements()
	if err != nil {
		return nil, err
	}

	values := make([]T, 0, len(elements))

	for _, node := range elements {
		value, err := element.Decode(node)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return values, nil
}

// ExpandableOf builds a decoder for { "size": n, "items": [...] } nodes. An
// empty items array means the property was not expanded, so Items stays nil.
func ExpandableOf[T any](element Decoder[T]) Decoder[jira.ExpandableProperty[T]] {
	return ObjectDecoder(func(node Node) (jira.ExpandableProperty[T], error) {
		return DecodeExpandable(node, element)
	})
}

// DecodeExpandable decodes an expandable property node.
func DecodeExpandable[T any](node Node, element Decoder[T]) (jira.ExpandableProperty[T], error) {
	size, err := RequiredInt(node, "size")
	if err != nil {
		return jira.ExpandableProperty[T]{}, err
	}

	array, err := NestedArray(node, "items")
	if err != nil {
		return jira.ExpandableProperty[T]{}, err
	}

	elements, err := array.Elements()
	if err != nil {
		return jira.ExpandableProperty[T]{}, err
	}

	if len(elements) == 0 {
		return jira.NewExpandableProperty[T](int(size), nil), nil
	}

	items, err := decodeElements(array, element)
	if err != nil {
		return jira.ExpandableProperty[T]{}, err
	}

	return jira.NewExpandableProperty(int(size), items), nil
}
