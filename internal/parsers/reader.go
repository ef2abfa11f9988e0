// Package parsers holds the decoders and encoders for every resource the
// client exchanges with the server.
package parsers

import (
	"net/url"
	"time"

	"github.com/fivetwenty-io/jira-client/internal/jsonparse"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// reader reads fields off one object node and keeps the first failure, so
// a decoder can read every field and check the error once.
type reader struct {
	node jsonparse.Node
	err  error
}

func newReader(node jsonparse.Node) *reader {
	return &reader{node: node}
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) str(key string) string {
	if r.err != nil {
		return ""
	}

	value, err := jsonparse.RequiredString(r.node, key)
	r.fail(err)

	return value
}

func (r *reader) nullable(key string) *string {
	return jsonparse.NullableString(r.node, key)
}

func (r *reader) optional(key, defaultValue string) string {
	return jsonparse.OptionalString(r.node, key, defaultValue)
}

func (r *reader) integer(key string) int64 {
	if r.err != nil {
		return 0
	}

	value, err := jsonparse.RequiredInt(r.node, key)
	r.fail(err)

	return value
}

func (r *reader) optInteger(key string) *int64 {
	if r.err != nil {
		return nil
	}

	value, err := jsonparse.OptionalInt(r.node, key)
	r.fail(err)

	return value
}

func (r *reader) boolean(key string) bool {
	if r.err != nil {
		return false
	}

	value, err := jsonparse.RequiredBool(r.node, key)
	r.fail(err)

	return value
}

func (r *reader) optBoolean(key string, defaultValue bool) bool {
	if r.err != nil {
		return defaultValue
	}

	value, err := jsonparse.OptionalBool(r.node, key, defaultValue)
	r.fail(err)

	return value
}

func (r *reader) self() *url.URL {
	return r.uri("self")
}

func (r *reader) uri(key string) *url.URL {
	if r.err != nil {
		return nil
	}

	value, err := jsonparse.RequiredURI(r.node, key)
	r.fail(err)

	return value
}

func (r *reader) optURI(key string) *url.URL {
	if r.err != nil {
		return nil
	}

	value, err := jsonparse.OptionalURI(r.node, key)
	r.fail(err)

	return value
}

func (r *reader) dateTime(key string) time.Time {
	if r.err != nil {
		return time.Time{}
	}

	value, err := jsonparse.RequiredDateTime(r.node, key)
	r.fail(err)

	return value
}

func (r *reader) optDateTime(key string) *time.Time {
	if r.err != nil {
		return nil
	}

	value, err := jsonparse.OptionalDateTime(r.node, key)
	r.fail(err)

	return value
}

func (r *reader) optDate(key string) *time.Time {
	if r.err != nil {
		return nil
	}

	value, err := jsonparse.OptionalDate(r.node, key)
	r.fail(err)

	return value
}

func (r *reader) strings(key string) []string {
	if r.err != nil {
		return nil
	}

	value, err := jsonparse.StringCollection(r.node, key)
	r.fail(err)

	return value
}

func (r *reader) optStrings(key string) []string {
	if r.err != nil || !r.has(key) {
		return nil
	}

	return r.strings(key)
}

func (r *reader) has(key string) bool {
	_, ok := jsonparse.OptionalField(r.node, key)

	return ok
}

func object[T any](r *reader, key string, decoder jsonparse.Decoder[T]) T {
	var zero T

	if r.err != nil {
		return zero
	}

	value, err := jsonparse.DecodeObject(r.node, key, decoder)
	r.fail(err)

	return value
}

func optObject[T any](r *reader, key string, decoder jsonparse.Decoder[T]) *T {
	if r.err != nil {
		return nil
	}

	value, err := jsonparse.DecodeOptionalObject(r.node, key, decoder)
	r.fail(err)

	return value
}

func array[T any](r *reader, key string, element jsonparse.Decoder[T]) []T {
	if r.err != nil {
		return nil
	}

	values, err := jsonparse.DecodeArray(r.node, key, element)
	r.fail(err)

	return values
}

func optArray[T any](r *reader, key string, element jsonparse.Decoder[T]) []T {
	if r.err != nil {
		return nil
	}

	values, err := jsonparse.DecodeOptionalArray(r.node, key, element)
	r.fail(err)

	return values
}

// optExpandable decodes an expandable property; a missing one is collapsed
// with size zero.
func optExpandable[T any](r *reader, key string, element jsonparse.Decoder[T]) jira.ExpandableProperty[T] {
	if r.err != nil {
		return jira.ExpandableProperty[T]{}
	}

	child, ok := jsonparse.OptionalField(r.node, key)
	if !ok {
		return jira.ExpandableProperty[T]{}
	}

	value, err := jsonparse.ExpandableOf(element).Decode(child)
	r.fail(err)

	return value
}
