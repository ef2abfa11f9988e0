package rest

import (
	"fmt"

	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
	"github.com/goccy/go-json"
)

// Entity is a serialized request body.
type Entity struct {
	Body        []byte
	ContentType string
}

// Encoder turns a value into wire text.
type Encoder[T any] func(value T) ([]byte, error)

// JSONEncoder builds an Encoder from a function producing a JSON document
// (maps, slices, structs) for the value.
func JSONEncoder[T any](document func(T) (any, error)) Encoder[T] {
	return func(value T) ([]byte, error) {
		doc, err := document(value)
		if err != nil {
			return nil, err
		}

		return json.Marshal(doc)
	}
}

// Serialize encodes value with encoder into a JSON entity. Encoder failures
// are reported as a *jira.ClientError without a status code.
func Serialize[T any](value T, encoder Encoder[T]) (*Entity, error) {
	body, err := encoder(value)
	if err != nil {
		return nil, jira.NewTransportError(fmt.Errorf("%w: %w", jira.ErrEncodeFailed, err))
	}

	return &Entity{Body: body, ContentType: constants.MediaTypeJSON}, nil
}

// RawEntity wraps text that already is JSON.
func RawEntity(text string) *Entity {
	return &Entity{Body: []byte(text), ContentType: constants.MediaTypeJSON}
}

// EmptyEntity is a JSON entity with no body.
func EmptyEntity() *Entity {
	return &Entity{Body: []byte{}, ContentType: constants.MediaTypeJSON}
}
