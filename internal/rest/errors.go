package rest

import (
	"bytes"

	"github.com/fivetwenty-io/jira-client/internal/jsonparse"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// ExtractErrors normalizes an error payload into error records.
//
// An empty body yields no records. Otherwise the body must be a JSON
// object; messages from its "errorMessages" array come first, followed by
// the values of its "errors" field map in document order, each tagged with
// its field name. Either member may be missing or of another type, in which
// case it is skipped. Message elements are stringified, so a null element
// becomes "null". Records are never merged or deduplicated.
func ExtractErrors(body []byte) ([]jira.ErrorRecord, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	node, err := jsonparse.ParseObject(body)
	if err != nil {
		return nil, err
	}

	return ExtractErrorsFrom(node)
}

// ExtractErrorsFrom normalizes an already parsed error collection object,
// e.g. the per-element errors of a bulk operation.
func ExtractErrorsFrom(node jsonparse.Node) ([]jira.ErrorRecord, error) {
	if !node.IsObject() {
		return nil, &jira.DecodeError{Path: node.Path(), Message: "error collection is not an object"}
	}

	records := make([]jira.ErrorRecord, 0)

	// Members of an unexpected type are ignored so the other member still
	// contributes its messages.
	if messages, ok := jsonparse.OptionalField(node, "errorMessages"); ok && messages.IsArray() {
		elements, err := messages.Elements()
		if err != nil {
			return nil, err
		}

		for _, element := range elements {
			records = append(records, jira.ErrorRecord{Message: element.Text()})
		}
	}

	if fieldErrors, ok := jsonparse.OptionalField(node, "errors"); ok && fieldErrors.IsObject() {
		// Key order is the order the server wrote; it is not guaranteed to
		// be stable across server versions.
		err := fieldErrors.ForEach(func(field string, value jsonparse.Node) error {
			if value.IsNull() {
				return nil
			}

			records = append(records, jira.ErrorRecord{Field: field, Message: value.Text()})

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return records, nil
}
